package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows staff order listings.
type OrderFilter struct {
	Status entity.OrderStatus // Empty means any.
	Limit  int
	Offset int
}

// OrderRepository persists orders. Only status, payment status, payment stage
// and payment linkage are ever updated.
type OrderRepository interface {
	// Create persists a new order and fills generated fields.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByOwner returns the owner's orders, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error)

	// List returns orders for staff, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateStatus sets the order status only when the current status is from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error

	// LinkPayment stores the gateway session and moves the stage to linked.
	LinkPayment(ctx context.Context, id uuid.UUID, link entity.PaymentLink) error

	// MarkPaid confirms the order and marks it paid.
	MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) error

	// MarkPaymentFailed marks payment failed unless the order is already paid,
	// in which case it returns ErrPaymentAlreadySettled and changes nothing.
	// When cancel is true a pending order is also cancelled.
	MarkPaymentFailed(ctx context.Context, id uuid.UUID, cancel bool) error

	// ListStaleInitiated returns orders stuck in the initiated stage since before olderThan.
	ListStaleInitiated(ctx context.Context, olderThan time.Time, limit int) ([]*entity.Order, error)
}

var (
	// ErrPaymentEventExists is returned when an outcome for an invoice was already applied.
	ErrPaymentEventExists = errors.New("payment event already applied")

	// ErrPaymentAlreadySettled is returned when a failure arrives for a paid order.
	ErrPaymentAlreadySettled = errors.New("payment already settled")
)

// PaymentEventRepository is the ledger of applied gateway outcomes.
type PaymentEventRepository interface {
	// Record inserts the event, or returns ErrPaymentEventExists.
	Record(ctx context.Context, event *entity.PaymentEvent) error
}
