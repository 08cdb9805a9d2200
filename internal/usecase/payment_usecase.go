package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentInput opens a hosted checkout for a new order.
type CreatePaymentInput struct {
	Amount decimal.Decimal
	Order  *entity.OrderDraft
}

// CreatePaymentOutput is what the shopper needs to continue to checkout.
type CreatePaymentOutput struct {
	IsSuccess  bool
	PaymentURL string
	OrderID    uuid.UUID
	InvoiceID  string
}

// PaymentStatusOutput is the payment and fulfillment state of an order.
type PaymentStatusOutput struct {
	OrderID       uuid.UUID
	PaymentStatus entity.PaymentStatus
	OrderStatus   entity.OrderStatus
}

// ReconcileReport counts what one sweep over stale initiated orders did.
type ReconcileReport struct {
	Checked int
	Paid    int
	Failed  int
	Linked  int
	Skipped int
}

// PaymentUsecase bridges orders and the hosted payment gateway.
type PaymentUsecase interface {
	CreatePayment(ctx context.Context, caller *entity.Identity, input *CreatePaymentInput) (*CreatePaymentOutput, error)
	// HandleWebhook applies a signed gateway callback. Replays are no-ops.
	HandleWebhook(ctx context.Context, signature string, body []byte) error
	CheckStatus(ctx context.Context, orderID uuid.UUID) (*PaymentStatusOutput, error)
	// HandleCallback resolves the shopper redirect and returns where to send them next.
	HandleCallback(ctx context.Context, paymentID string) (string, error)
	ReconcileStale(ctx context.Context) (*ReconcileReport, error)
}
