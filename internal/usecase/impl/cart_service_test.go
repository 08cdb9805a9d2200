package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	return cartServiceFixtures{
		service:     NewCartService(cartRepo, productRepo, newDiscardLogger()),
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_AddItem_SnapshotsEffectivePrice(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	discount := decimal.RequireFromString("4.000")
	product := &entity.Product{ID: uuid.New(), ActualPrice: decimal.RequireFromString("5.000"), DiscountedPrice: &discount, IsAvailable: true}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().
		AddItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.UserID == userID && item.Quantity == 2 && item.PriceSnapshot.Equal(discount)
		})).
		Return(nil)
	fx.cartRepo.EXPECT().ListItems(ctx, userID).Return([]*entity.CartItem{
		{ProductID: product.ID, Quantity: 2, PriceSnapshot: discount},
	}, nil)

	cart, err := fx.service.AddItem(ctx, userID, product.ID, 2)
	require.NoError(t, err)
	assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("8")))
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	ctx := context.Background()
	unavailable := &entity.Product{ID: uuid.New(), ActualPrice: decimal.NewFromInt(1), IsAvailable: false}

	tests := []struct {
		name     string
		quantity int
		setup    func(fx cartServiceFixtures)
		wantErr  error
	}{
		{name: "zero quantity", quantity: 0, setup: func(cartServiceFixtures) {}, wantErr: domainerrors.ErrInvalidQuantity},
		{
			name:     "unknown product",
			quantity: 1,
			setup: func(fx cartServiceFixtures) {
				fx.productRepo.EXPECT().FindByID(ctx, unavailable.ID).Return(nil, repository.ErrProductNotFound)
			},
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name:     "unavailable product",
			quantity: 1,
			setup: func(fx cartServiceFixtures) {
				fx.productRepo.EXPECT().FindByID(ctx, unavailable.ID).Return(unavailable, nil)
			},
			wantErr: domainerrors.ErrProductUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			tt.setup(fx)

			_, err := fx.service.AddItem(ctx, uuid.New(), unavailable.ID, tt.quantity)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCartService_UpdateItem_MissingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	fx.cartRepo.EXPECT().SetQuantity(ctx, userID, productID, 3).Return(repository.ErrCartItemNotFound)

	_, err := fx.service.UpdateItem(ctx, userID, productID, 3)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	fx.cartRepo.EXPECT().RemoveItem(ctx, userID, productID).Return(nil)
	fx.cartRepo.EXPECT().ListItems(ctx, userID).Return(nil, nil)

	cart, err := fx.service.RemoveItem(ctx, userID, productID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().Clear(ctx, userID).Return(nil)

	cart, err := fx.service.Clear(ctx, userID)
	require.NoError(t, err)
	assert.True(t, cart.Subtotal.IsZero())
}
