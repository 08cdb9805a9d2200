package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidSignature is returned when a webhook signature is missing or wrong.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// GatewayRejectedError carries the gateway's own failure message.
type GatewayRejectedError struct {
	Message string
}

func (e *GatewayRejectedError) Error() string {
	return "payment gateway rejected request: " + e.Message
}

// InvoiceState is the gateway invoice status reduced to what the bridge acts on.
type InvoiceState string

const (
	InvoicePaid    InvoiceState = "paid"
	InvoicePending InvoiceState = "pending"
	InvoiceFailed  InvoiceState = "failed"
	InvoiceUnknown InvoiceState = "unknown"
)

// StatusKeyType says what GetPaymentStatus looks an invoice up by.
type StatusKeyType string

const (
	KeyInvoiceID         StatusKeyType = "InvoiceId"
	KeyPaymentID         StatusKeyType = "PaymentId"
	KeyCustomerReference StatusKeyType = "CustomerReference"
)

// InvoiceItem is one line shown on the hosted checkout page.
type InvoiceItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// PaymentRequest opens a hosted checkout session.
type PaymentRequest struct {
	Amount            decimal.Decimal
	CustomerName      string
	CustomerPhone     string
	CustomerEmail     string
	CustomerReference string // Our order id.
	Items             []InvoiceItem
}

// PaymentSession is a created gateway invoice.
type PaymentSession struct {
	InvoiceID         string
	PaymentURL        string
	CustomerReference string
}

// InvoiceStatus is the gateway's view of an invoice.
type InvoiceStatus struct {
	InvoiceID         string
	CustomerReference string
	State             InvoiceState
	RawStatus         string
	TransactionID     string
}

// PaymentGateway is a hosted-checkout provider.
type PaymentGateway interface {
	// Name identifies the gateway on orders.
	Name() string

	// CreatePayment opens a session. A *GatewayRejectedError means the
	// gateway answered and refused.
	CreatePayment(ctx context.Context, req *PaymentRequest) (*PaymentSession, error)

	// GetPaymentStatus looks an invoice up.
	GetPaymentStatus(ctx context.Context, key string, keyType StatusKeyType) (*InvoiceStatus, error)

	// ParseWebhook verifies the signature and decodes the callback body.
	// It returns ErrInvalidSignature before decoding anything else.
	ParseWebhook(signature string, body []byte) (*InvoiceStatus, error)
}
