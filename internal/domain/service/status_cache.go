package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PaymentStatusSnapshot is the cached answer of a payment status query.
type PaymentStatusSnapshot struct {
	OrderID       uuid.UUID `json:"orderId"`
	PaymentStatus string    `json:"paymentStatus"`
	OrderStatus   string    `json:"orderStatus"`
	CachedAt      time.Time `json:"-"`
}

// PaymentStatusCache is a read-through cache for payment status queries.
// A miss returns (nil, nil).
type PaymentStatusCache interface {
	Get(ctx context.Context, orderID uuid.UUID) (*PaymentStatusSnapshot, error)
	Set(ctx context.Context, snapshot *PaymentStatusSnapshot) error
	Invalidate(ctx context.Context, orderID uuid.UUID) error
}
