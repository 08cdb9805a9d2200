package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentOutcome is a final result reported by the gateway for an invoice.
type PaymentOutcome string

const (
	PaymentOutcomePaid   PaymentOutcome = "paid"
	PaymentOutcomeFailed PaymentOutcome = "failed"
)

// PaymentEventSource says which path delivered the outcome.
type PaymentEventSource string

const (
	PaymentSourceWebhook   PaymentEventSource = "webhook"
	PaymentSourceCallback  PaymentEventSource = "callback"
	PaymentSourceReconcile PaymentEventSource = "reconcile"
)

// PaymentEvent records that an outcome for an invoice was applied to an order.
// (InvoiceID, Outcome) is unique, which makes applying it at most once.
type PaymentEvent struct {
	ID            uuid.UUID
	InvoiceID     string
	Outcome       PaymentOutcome
	OrderID       uuid.UUID
	TransactionID string
	Source        PaymentEventSource
	CreatedAt     time.Time
}
