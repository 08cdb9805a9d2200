package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages an identity's cart one line at a time.
// Every mutation returns the cart as it is after the change.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)
	UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}
