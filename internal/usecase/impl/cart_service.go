package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the caller's cart with its subtotal.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	items, err := srv.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return entity.NewCart(items), nil
}

// AddItem adds quantity of an available product, snapshotting its current price.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsAvailable {
		return nil, domainerrors.ErrProductUnavailable
	}

	item := &entity.CartItem{
		UserID:        userID,
		ProductID:     productID,
		Quantity:      quantity,
		PriceSnapshot: product.EffectivePrice(),
	}
	if err := srv.cartRepo.AddItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added", slog.Any("userID", userID), slog.Any("productID", productID), slog.Int("quantity", quantity))

	return srv.GetCart(ctx, userID)
}

// UpdateItem overwrites the quantity of an existing line.
func (srv *cartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if err := srv.cartRepo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return srv.GetCart(ctx, userID)
}

// RemoveItem deletes one line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	if err := srv.cartRepo.RemoveItem(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.GetCart(ctx, userID)
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return entity.NewCart(nil), nil
}
