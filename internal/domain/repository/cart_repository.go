package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartItemNotFound is returned when the cart has no line for the product.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository changes one cart line per statement, never the whole cart.
type CartRepository interface {
	// AddItem inserts the line or atomically increments its quantity.
	AddItem(ctx context.Context, item *entity.CartItem) error

	// SetQuantity overwrites the quantity of an existing line.
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// RemoveItem deletes one line.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error

	// Clear deletes every line of the user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error

	// ListItems returns the user's lines, oldest first.
	ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)
}
