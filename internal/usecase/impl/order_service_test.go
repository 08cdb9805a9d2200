package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	promoRepo   *mockRepo.MockPromoRepository
	qrCode      *mockSvc.MockQRCodeService
	statusCache *mockSvc.MockPaymentStatusCache
	publisher   *mockSvc.MockEventPublisher
	feed        *mockSvc.MockOrderFeed
	push        *mockSvc.MockNotificationService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		promoRepo:   mockRepo.NewMockPromoRepository(t),
		qrCode:      mockSvc.NewMockQRCodeService(t),
		statusCache: mockSvc.NewMockPaymentStatusCache(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		feed:        mockSvc.NewMockOrderFeed(t),
		push:        mockSvc.NewMockNotificationService(t),
	}

	fx.service = NewOrderService(OrderServiceParams{
		TxManager:    fx.txManager,
		OrderRepo:    fx.orderRepo,
		PromoRepo:    fx.promoRepo,
		QRCode:       fx.qrCode,
		StatusCache:  fx.statusCache,
		Publisher:    fx.publisher,
		Feed:         fx.feed,
		Notification: fx.push,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := shopper()
	draft := testOrderDraft()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	var stored *entity.Order
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { stored = order }).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.Type == service.OrderEventCreated })).
		Return(nil)
	fx.feed.EXPECT().Broadcast(mock.AnythingOfType("*service.OrderEvent")).Return()
	fx.push.EXPECT().SendToTopic(ctx, "staff-orders", "New order", mock.Anything, mock.Anything).Return(nil)

	order, err := fx.service.CreateOrder(ctx, caller, draft)
	require.NoError(t, err)

	assert.Same(t, stored, order)
	assert.Equal(t, caller.UserID, order.OwnerID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusNone, order.PaymentStatus)
	assert.Equal(t, "13", order.TotalAmount.String())
	assert.Len(t, order.LineItems, 2)
}

func TestOrderService_CreateOrder_ValidationStopsBeforePersistence(t *testing.T) {
	fx := createTestOrderService(t)
	draft := testOrderDraft()
	draft.LineItems = nil

	_, err := fx.service.CreateOrder(context.Background(), shopper(), draft)

	require.ErrorIs(t, err, domainerrors.ErrNoProducts)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_PromoRedeemedInTransaction(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	draft := testOrderDraft()
	draft.PromoCode = "eid10"

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txPromoRepo := mockRepo.NewMockPromoRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewPromoRepository().Return(txPromoRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txPromoRepo.EXPECT().Redeem(ctx, "EID10").Return(&entity.Promo{Code: "EID10", CurrentUses: 1}, nil)
	txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Broadcast(mock.Anything).Return()
	fx.push.EXPECT().SendToTopic(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	order, err := fx.service.CreateOrder(ctx, shopper(), draft)
	require.NoError(t, err)
	assert.Equal(t, "EID10", order.PromoCode)
}

func TestOrderService_CreateOrder_PromoRejectedWithReason(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	draft := testOrderDraft()
	draft.PromoCode = "OLD"

	txPromoRepo := mockRepo.NewMockPromoRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewPromoRepository().Return(txPromoRepo)
	txPromoRepo.EXPECT().Redeem(ctx, "OLD").Return(nil, repository.ErrPromoExhausted)
	fx.promoRepo.EXPECT().FindByCode(ctx, "OLD").Return(&entity.Promo{Code: "OLD", IsActive: false}, nil)

	_, err := fx.service.CreateOrder(ctx, shopper(), draft)

	require.ErrorIs(t, err, domainerrors.ErrPromoRejected)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, entity.PromoReasonInactive, appErr.Message())
}

func TestOrderService_CreateOrder_RequiresCaller(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrder(context.Background(), nil, testOrderDraft())

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestOrderService_GetOrder(t *testing.T) {
	owner := shopper()
	order := &entity.Order{ID: uuid.New(), OwnerID: owner.UserID, Status: entity.OrderStatusPending}

	tests := []struct {
		name    string
		caller  *entity.Identity
		found   error
		wantErr error
	}{
		{name: "owner", caller: owner},
		{name: "staff reads any order", caller: &entity.Identity{UserID: uuid.New(), Role: entity.RoleManager}},
		{name: "other shopper is forbidden", caller: shopper(), wantErr: domainerrors.ErrOrderOwnershipViolation},
		{name: "unknown id is not found", caller: owner, found: repository.ErrOrderNotFound, wantErr: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			if tt.found != nil {
				fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(nil, tt.found)
			} else {
				fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			}

			got, err := fx.service.GetOrder(ctx, tt.caller, order.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ID, got.ID)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := shopper()
	orders := []*entity.Order{{ID: uuid.New(), OwnerID: caller.UserID}}

	fx.orderRepo.EXPECT().ListByOwner(ctx, caller.UserID).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_ListAllOrders_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.ListAllOrders(context.Background(), usecase.OrderQuery{Status: "shipped"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OwnerID: uuid.New(), Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).Return(nil)
	fx.statusCache.EXPECT().Invalidate(ctx, order.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventStatusChanged && e.Status == "confirmed"
		})).
		Return(errors.New("bus down"))
	fx.feed.EXPECT().Broadcast(mock.Anything).Return()

	got, err := fx.service.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, got.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusCompleted}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_PickupQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	caller := shopper()
	pickup := &entity.Order{ID: uuid.New(), OwnerID: caller.UserID, Fulfillment: entity.PickupFulfillment()}
	delivery := &entity.Order{
		ID:          uuid.New(),
		OwnerID:     caller.UserID,
		Fulfillment: entity.DeliveryFulfillment(entity.ShippingAddress{City: "hawalli", Area: "salmiya"}),
	}

	fx.orderRepo.EXPECT().FindByID(ctx, pickup.ID).Return(pickup, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, delivery.ID).Return(delivery, nil)
	fx.qrCode.EXPECT().GeneratePickupQR(pickup.ID).Return([]byte("png"), nil)

	png, err := fx.service.PickupQR(ctx, caller, pickup.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.PickupQR(ctx, caller, delivery.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotPickupOrder)
}
