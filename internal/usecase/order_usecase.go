package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderQuery narrows the staff order listing.
type OrderQuery struct {
	Status entity.OrderStatus
	Limit  int
	Offset int
}

// OrderUsecase places and reads orders.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, caller *entity.Identity, draft *entity.OrderDraft) (*entity.Order, error)
	ListOrders(ctx context.Context, caller *entity.Identity) ([]*entity.Order, error)
	// GetOrder returns ErrOrderNotFound for an unknown id and a forbidden
	// error when the caller neither owns the order nor is staff.
	GetOrder(ctx context.Context, caller *entity.Identity, id uuid.UUID) (*entity.Order, error)
	ListAllOrders(ctx context.Context, query OrderQuery) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	// PickupQR returns a PNG for a pickup order the caller may read.
	PickupQR(ctx context.Context, caller *entity.Identity, id uuid.UUID) ([]byte, error)
}
