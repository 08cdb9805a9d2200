package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service     *paymentService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	promoRepo   *mockRepo.MockPromoRepository
	gateway     *mockSvc.MockPaymentGateway
	statusCache *mockSvc.MockPaymentStatusCache
	publisher   *mockSvc.MockEventPublisher
	feed        *mockSvc.MockOrderFeed
	push        *mockSvc.MockNotificationService
	now         time.Time
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		promoRepo:   mockRepo.NewMockPromoRepository(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		statusCache: mockSvc.NewMockPaymentStatusCache(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		feed:        mockSvc.NewMockOrderFeed(t),
		push:        mockSvc.NewMockNotificationService(t),
		now:         time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC),
	}

	fx.service = NewPaymentService(PaymentServiceParams{
		TxManager:    fx.txManager,
		OrderRepo:    fx.orderRepo,
		PromoRepo:    fx.promoRepo,
		Gateway:      fx.gateway,
		StatusCache:  fx.statusCache,
		Publisher:    fx.publisher,
		Feed:         fx.feed,
		Notification: fx.push,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*paymentService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

// expectInitiatedOrderStored expects the pre-gateway write and returns a pointer
// that receives the stored order.
func (fx paymentServiceFixtures) expectInitiatedOrderStored(t *testing.T, ctx context.Context) **entity.Order {
	var stored *entity.Order
	txOrderRepo := mockRepo.NewMockOrderRepository(t)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { stored = order }).
		Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil).Once()
	fx.feed.EXPECT().Broadcast(mock.Anything).Return().Once()

	return &stored
}

func TestPaymentService_CreatePayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	caller := shopper()

	fx.gateway.EXPECT().Name().Return("myfatoorah")
	stored := fx.expectInitiatedOrderStored(t, ctx)

	fx.gateway.EXPECT().
		CreatePayment(ctx, mock.MatchedBy(func(req *service.PaymentRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(13)) && len(req.Items) == 2 && req.CustomerName == "Noura"
		})).
		Return(&service.PaymentSession{InvoiceID: "inv-1", PaymentURL: "https://pay.example/inv-1"}, nil)

	fx.orderRepo.EXPECT().
		LinkPayment(ctx, mock.Anything, mock.MatchedBy(func(link entity.PaymentLink) bool {
			return link.PaymentID == "inv-1" && link.PaymentURL == "https://pay.example/inv-1"
		})).
		Return(nil)

	out, err := fx.service.CreatePayment(ctx, caller, &usecase.CreatePaymentInput{
		Amount: decimal.NewFromInt(13),
		Order:  testOrderDraft(),
	})
	require.NoError(t, err)

	order := *stored
	require.NotNil(t, order)
	assert.True(t, out.IsSuccess)
	assert.Equal(t, order.ID, out.OrderID)
	assert.Equal(t, "inv-1", out.InvoiceID)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, entity.PaymentStageInitiated, order.PaymentStage)
	assert.Equal(t, order.ID.String(), order.Payment.CustomerReference)
	assert.Equal(t, "myfatoorah", order.Payment.Gateway)
}

func TestPaymentService_CreatePayment_InvalidAmount(t *testing.T) {
	fx := createTestPaymentService(t)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := fx.service.CreatePayment(context.Background(), shopper(), &usecase.CreatePaymentInput{
			Amount: amount,
			Order:  testOrderDraft(),
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	}
}

func TestPaymentService_CreatePayment_GatewayRejectionIsVerbatim(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().Name().Return("myfatoorah")
	fx.expectInitiatedOrderStored(t, ctx)
	fx.gateway.EXPECT().
		CreatePayment(ctx, mock.Anything).
		Return(nil, &service.GatewayRejectedError{Message: "Invalid customer mobile"})

	_, err := fx.service.CreatePayment(ctx, shopper(), &usecase.CreatePaymentInput{
		Amount: decimal.NewFromInt(13),
		Order:  testOrderDraft(),
	})

	require.ErrorIs(t, err, domainerrors.ErrPaymentRejected)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Invalid customer mobile", appErr.Message())
}

func TestPaymentService_CreatePayment_TransportErrorIsUpstream(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().Name().Return("myfatoorah")
	fx.expectInitiatedOrderStored(t, ctx)
	fx.gateway.EXPECT().CreatePayment(ctx, mock.Anything).Return(nil, errors.New("dial tcp: timeout"))

	_, err := fx.service.CreatePayment(ctx, shopper(), &usecase.CreatePaymentInput{
		Amount: decimal.NewFromInt(20),
		Order:  testOrderDraft(),
	})

	require.ErrorIs(t, err, domainerrors.ErrPaymentGateway)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
	assert.Equal(t, "dial tcp: timeout", appErr.Details())
}

func TestPaymentRequest_ItemizesOnlyMatchingTotals(t *testing.T) {
	order, err := testOrderDraft().Build(uuid.New())
	require.NoError(t, err)

	assert.Len(t, paymentRequest(order, decimal.NewFromInt(13)).Items, 2)
	assert.Empty(t, paymentRequest(order, decimal.NewFromInt(15)).Items)
}

func TestPaymentService_HandleWebhook_InvalidSignature(t *testing.T) {
	fx := createTestPaymentService(t)

	fx.gateway.EXPECT().ParseWebhook("bad", []byte("{}")).Return(nil, service.ErrInvalidSignature)

	err := fx.service.HandleWebhook(context.Background(), "bad", []byte("{}"))

	require.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestPaymentService_HandleWebhook_PaidThenReplay(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OwnerID: uuid.New(), Status: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusPending}
	paid := *order
	paid.Status = entity.OrderStatusConfirmed
	paid.PaymentStatus = entity.PaymentStatusPaid

	status := &service.InvoiceStatus{
		InvoiceID:         "inv-9",
		CustomerReference: order.ID.String(),
		State:             service.InvoicePaid,
		RawStatus:         "Paid",
		TransactionID:     "pay-77",
	}
	fx.gateway.EXPECT().ParseWebhook("sig", mock.Anything).Return(status, nil).Twice()
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Once()
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(&paid, nil).Twice()

	events := mockRepo.NewMockPaymentEventRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewPaymentEventRepository().Return(events)
	fx.factory.EXPECT().NewOrderRepository().Return(txOrderRepo).Once()

	events.EXPECT().
		Record(ctx, mock.MatchedBy(func(e *entity.PaymentEvent) bool {
			return e.InvoiceID == "inv-9" && e.Outcome == entity.PaymentOutcomePaid && e.Source == entity.PaymentSourceWebhook
		})).
		Return(nil).Once()
	events.EXPECT().Record(ctx, mock.Anything).Return(repository.ErrPaymentEventExists).Once()
	txOrderRepo.EXPECT().MarkPaid(ctx, order.ID, "pay-77").Return(nil).Once()

	// Side effects of the first, fresh application only.
	fx.statusCache.EXPECT().Invalidate(ctx, order.ID).Return(nil).Once()
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventPaid && e.Status == "confirmed" && e.PaymentStatus == "paid"
		})).
		Return(nil).Once()
	fx.feed.EXPECT().Broadcast(mock.Anything).Return().Once()
	fx.push.EXPECT().SendToTopic(ctx, "staff-orders", "Order paid", mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, fx.service.HandleWebhook(ctx, "sig", []byte(`{"Data":{}}`)))
	require.NoError(t, fx.service.HandleWebhook(ctx, "sig", []byte(`{"Data":{}}`)))
}

func TestPaymentService_HandleWebhook_FailedMarksPaymentOnly(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}

	status := &service.InvoiceStatus{InvoiceID: "inv-3", CustomerReference: order.ID.String(), State: service.InvoiceFailed}
	fx.gateway.EXPECT().ParseWebhook("sig", mock.Anything).Return(status, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	events := mockRepo.NewMockPaymentEventRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewPaymentEventRepository().Return(events)
	fx.factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	events.EXPECT().Record(ctx, mock.Anything).Return(nil)
	txOrderRepo.EXPECT().MarkPaymentFailed(ctx, order.ID, false).Return(nil)

	fx.statusCache.EXPECT().Invalidate(ctx, order.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.Type == service.OrderEventPaymentFailed })).
		Return(nil)
	fx.feed.EXPECT().Broadcast(mock.Anything).Return()

	require.NoError(t, fx.service.HandleWebhook(ctx, "sig", []byte(`{}`)))
}

func TestPaymentService_HandleWebhook_OtherStatusIsIgnored(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New()}

	status := &service.InvoiceStatus{CustomerReference: order.ID.String(), State: service.InvoicePending, RawStatus: "Pending"}
	fx.gateway.EXPECT().ParseWebhook("sig", mock.Anything).Return(status, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	require.NoError(t, fx.service.HandleWebhook(ctx, "sig", []byte(`{}`)))
}

func TestPaymentService_HandleWebhook_FailedAfterPaidHasNoSideEffects(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusConfirmed, PaymentStatus: entity.PaymentStatusPaid}

	status := &service.InvoiceStatus{InvoiceID: "inv-8", CustomerReference: order.ID.String(), State: service.InvoiceFailed, RawStatus: "Failed"}
	fx.gateway.EXPECT().ParseWebhook("sig", mock.Anything).Return(status, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	events := mockRepo.NewMockPaymentEventRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewPaymentEventRepository().Return(events)
	fx.factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	events.EXPECT().Record(ctx, mock.Anything).Return(nil)
	txOrderRepo.EXPECT().MarkPaymentFailed(ctx, order.ID, false).Return(repository.ErrPaymentAlreadySettled)

	// No cache invalidation, event, feed broadcast or push is expected.
	require.NoError(t, fx.service.HandleWebhook(ctx, "sig", []byte(`{}`)))
}

func TestPaymentService_HandleWebhook_UnusableSignedPayloadIsAcknowledged(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx paymentServiceFixtures)
	}{
		{
			name: "unparsable customer reference",
			setup: func(fx paymentServiceFixtures) {
				fx.gateway.EXPECT().ParseWebhook("sig", mock.Anything).Return(&service.InvoiceStatus{CustomerReference: "not-a-uuid"}, nil)
			},
		},
		{
			name: "unknown order",
			setup: func(fx paymentServiceFixtures) {
				id := uuid.New()
				fx.gateway.EXPECT().ParseWebhook("sig", mock.Anything).Return(&service.InvoiceStatus{CustomerReference: id.String(), State: service.InvoicePaid}, nil)
				fx.orderRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrOrderNotFound)
			},
		},
		{
			name: "no customer reference",
			setup: func(fx paymentServiceFixtures) {
				fx.gateway.EXPECT().ParseWebhook("sig", mock.Anything).Return(nil, errors.New("webhook carries no customer reference"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)
			tt.setup(fx)

			assert.NoError(t, fx.service.HandleWebhook(context.Background(), "sig", []byte(`{}`)))
		})
	}
}

func TestPaymentService_HandleWebhook_StorageErrorSurfaces(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.gateway.EXPECT().ParseWebhook("sig", mock.Anything).Return(&service.InvoiceStatus{CustomerReference: id.String()}, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("connection refused"))

	assert.Error(t, fx.service.HandleWebhook(ctx, "sig", []byte(`{}`)))
}

func TestPaymentService_CheckStatus_ReadThrough(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusConfirmed, PaymentStatus: entity.PaymentStatusPaid}

	fx.statusCache.EXPECT().Get(ctx, order.ID).Return(nil, nil).Once()
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Once()
	fx.statusCache.EXPECT().
		Set(ctx, mock.MatchedBy(func(s *service.PaymentStatusSnapshot) bool {
			return s.OrderID == order.ID && s.PaymentStatus == "paid" && s.OrderStatus == "confirmed"
		})).
		Return(nil).Once()

	out, err := fx.service.CheckStatus(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, out.OrderStatus)

	fx.statusCache.EXPECT().
		Get(ctx, order.ID).
		Return(&service.PaymentStatusSnapshot{OrderID: order.ID, PaymentStatus: "paid", OrderStatus: "confirmed"}, nil).Once()

	out, err = fx.service.CheckStatus(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, out.OrderStatus)
}

func TestPaymentService_CheckStatus_CacheErrorFallsBackToDatabase(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusPending}

	fx.statusCache.EXPECT().Get(ctx, order.ID).Return(nil, errors.New("redis down"))
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.statusCache.EXPECT().Set(ctx, mock.Anything).Return(errors.New("redis down"))

	out, err := fx.service.CheckStatus(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, out.PaymentStatus)
}

func TestPaymentService_HandleCallback_Paid(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}

	status := &service.InvoiceStatus{InvoiceID: "inv-5", CustomerReference: order.ID.String(), State: service.InvoicePaid, TransactionID: "pay-5"}
	fx.gateway.EXPECT().GetPaymentStatus(ctx, "pay-5", service.KeyPaymentID).Return(status, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	events := mockRepo.NewMockPaymentEventRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewPaymentEventRepository().Return(events)
	events.EXPECT().Record(ctx, mock.Anything).Return(repository.ErrPaymentEventExists)

	target, err := fx.service.HandleCallback(ctx, "pay-5")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/payment/success?orderId="+order.ID.String(), target)
}

func TestPaymentService_HandleCallback_Rejected(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().
		GetPaymentStatus(ctx, "nope", service.KeyPaymentID).
		Return(nil, &service.GatewayRejectedError{Message: "Invalid key"})

	target, err := fx.service.HandleCallback(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/payment/failed", target)
}

func TestPaymentService_HandleCallback_TransportErrorCarriesUpstreamMessage(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().
		GetPaymentStatus(ctx, "pay-6", service.KeyPaymentID).
		Return(nil, errors.New("read: connection reset by peer"))

	_, err := fx.service.HandleCallback(ctx, "pay-6")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
	assert.Equal(t, "read: connection reset by peer", appErr.Details())
}

func TestPaymentService_ReconcileStale(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	paidOrder := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, PaymentStage: entity.PaymentStageInitiated}
	neverInvoiced := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, PaymentStage: entity.PaymentStageInitiated}
	stillOpen := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, PaymentStage: entity.PaymentStageInitiated}
	unreachable := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, PaymentStage: entity.PaymentStageInitiated}

	fx.orderRepo.EXPECT().
		ListStaleInitiated(ctx, fx.now.Add(-15*time.Minute), 50).
		Return([]*entity.Order{paidOrder, neverInvoiced, stillOpen, unreachable}, nil)

	fx.gateway.EXPECT().Name().Return("myfatoorah")
	fx.gateway.EXPECT().
		GetPaymentStatus(ctx, paidOrder.ID.String(), service.KeyCustomerReference).
		Return(&service.InvoiceStatus{InvoiceID: "inv-p", CustomerReference: paidOrder.ID.String(), State: service.InvoicePaid, TransactionID: "tx-p"}, nil)
	fx.gateway.EXPECT().
		GetPaymentStatus(ctx, neverInvoiced.ID.String(), service.KeyCustomerReference).
		Return(nil, &service.GatewayRejectedError{Message: "No invoice found"})
	fx.gateway.EXPECT().
		GetPaymentStatus(ctx, stillOpen.ID.String(), service.KeyCustomerReference).
		Return(&service.InvoiceStatus{InvoiceID: "inv-o", CustomerReference: stillOpen.ID.String(), State: service.InvoicePending}, nil)
	fx.gateway.EXPECT().
		GetPaymentStatus(ctx, unreachable.ID.String(), service.KeyCustomerReference).
		Return(nil, errors.New("connection reset"))

	fx.orderRepo.EXPECT().LinkPayment(ctx, paidOrder.ID, mock.Anything).Return(nil)
	fx.orderRepo.EXPECT().LinkPayment(ctx, stillOpen.ID, mock.Anything).Return(nil)

	events := mockRepo.NewMockPaymentEventRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewPaymentEventRepository().Return(events)
	fx.factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	events.EXPECT().Record(ctx, mock.MatchedBy(func(e *entity.PaymentEvent) bool { return e.InvoiceID == "inv-p" })).Return(nil)
	events.EXPECT().
		Record(ctx, mock.MatchedBy(func(e *entity.PaymentEvent) bool {
			return e.InvoiceID == "ref:"+neverInvoiced.ID.String() && e.Source == entity.PaymentSourceReconcile
		})).
		Return(nil)
	txOrderRepo.EXPECT().MarkPaid(ctx, paidOrder.ID, "tx-p").Return(nil)
	txOrderRepo.EXPECT().MarkPaymentFailed(ctx, neverInvoiced.ID, true).Return(nil)

	fx.statusCache.EXPECT().Invalidate(ctx, mock.Anything).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, paidOrder.ID).Return(paidOrder, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, neverInvoiced.ID).Return(neverInvoiced, nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Broadcast(mock.Anything).Return()
	fx.push.EXPECT().SendToTopic(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	report, err := fx.service.ReconcileStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.ReconcileReport{Checked: 4, Paid: 1, Failed: 1, Linked: 1, Skipped: 1}, *report)
}
