package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo   repository.OrderRepository
	writer      *orderWriter
	qrCode      service.QRCodeService
	statusCache service.PaymentStatusCache
	notifier    *orderNotifier
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	PromoRepo    repository.PromoRepository
	QRCode       service.QRCodeService
	StatusCache  service.PaymentStatusCache
	Publisher    service.EventPublisher
	Feed         service.OrderFeed
	Notification service.NotificationService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		writer:      newOrderWriter(params.TxManager, params.PromoRepo),
		qrCode:      params.QRCode,
		statusCache: params.StatusCache,
		notifier:    newOrderNotifier(params.Publisher, params.Feed, params.Notification, staffTopic(params.Config), params.Logger),
		logger:      params.Logger,
	}
}

func staffTopic(cfg *config.Config) string {
	if cfg == nil || cfg.Firebase == nil {
		return ""
	}

	return cfg.Firebase.StaffTopic
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder validates the draft and stores it as a pending order of the caller.
func (srv *orderService) CreateOrder(ctx context.Context, caller *entity.Identity, draft *entity.OrderDraft) (*entity.Order, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	order, err := draft.Build(caller.UserID)
	if err != nil {
		srv.log(ctx).Debug("Order draft rejected", slog.Any("error", err))

		return nil, err
	}

	if err := srv.writer.persist(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created", slog.Any("orderID", order.ID), slog.Any("ownerID", order.OwnerID))
	srv.notifier.emit(ctx, service.OrderEventCreated, order)
	srv.notifier.notifyStaff(ctx, "New order", "A new "+string(order.Fulfillment.Type)+" order was placed", order)

	return order, nil
}

// ListOrders returns the caller's own orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, caller *entity.Identity) ([]*entity.Order, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	orders, err := srv.orderRepo.ListByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order the caller owns, or any order for staff.
func (srv *orderService) GetOrder(ctx context.Context, caller *entity.Identity, id uuid.UUID) (*entity.Order, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	order, err := findOrder(ctx, srv.orderRepo, id)
	if err != nil {
		return nil, err
	}

	if !order.IsOwnedBy(caller.UserID) && !caller.Role.IsStaff() {
		srv.log(ctx).Warn("Order read by non-owner", slog.Any("orderID", id), slog.Any("userID", caller.UserID))

		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	return order, nil
}

// ListAllOrders is the staff listing across owners.
func (srv *orderService) ListAllOrders(ctx context.Context, query usecase.OrderQuery) ([]*entity.Order, error) {
	if query.Status != "" && !query.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(query.Status))
	}

	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{
		Status: query.Status,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order along the staff workflow.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	order, err := findOrder(ctx, srv.orderRepo, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(string(order.Status) + " -> " + string(status))
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, order.Status, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status changed", slog.Any("orderID", id), slog.Any("from", order.Status), slog.Any("to", status))
	order.Status = status

	invalidateStatus(ctx, srv.statusCache, srv.log(ctx), id)
	srv.notifier.emit(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// PickupQR renders the QR code shown at the counter for a pickup order.
func (srv *orderService) PickupQR(ctx context.Context, caller *entity.Identity, id uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if order.Fulfillment.Type != entity.FulfillmentPickup {
		return nil, domainerrors.ErrNotPickupOrder
	}

	png, err := srv.qrCode.GeneratePickupQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

func findOrder(ctx context.Context, orderRepo repository.OrderRepository, id uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func invalidateStatus(ctx context.Context, cache service.PaymentStatusCache, logger *slog.Logger, orderID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, orderID); err != nil {
		logger.Warn("Failed to invalidate payment status cache", slog.Any("orderID", orderID), slog.Any("error", err))
	}
}

// orderWriter inserts new orders, redeeming their promo code in the same transaction.
type orderWriter struct {
	txManager repository.TransactionManager
	promoRepo repository.PromoRepository
	now       func() time.Time
}

func newOrderWriter(txManager repository.TransactionManager, promoRepo repository.PromoRepository) *orderWriter {
	return &orderWriter{txManager: txManager, promoRepo: promoRepo, now: time.Now}
}

func (w *orderWriter) persist(ctx context.Context, order *entity.Order) error {
	err := w.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if order.PromoCode != "" {
			if _, err := factory.NewPromoRepository().Redeem(ctx, order.PromoCode); err != nil {
				return err
			}
		}

		return factory.NewOrderRepository().Create(ctx, order)
	})
	if errors.Is(err, repository.ErrPromoExhausted) {
		return domainerrors.ErrPromoRejected.WithMessage(w.promoReason(ctx, order.PromoCode))
	}
	if err != nil {
		return errors.Wrap(err, "failed to persist order")
	}

	return nil
}

// promoReason explains a failed redemption. It runs after rollback, so it
// reads committed state.
func (w *orderWriter) promoReason(ctx context.Context, code string) string {
	promo, err := w.promoRepo.FindByCode(ctx, code)
	if errors.Is(err, repository.ErrPromoNotFound) {
		return entity.PromoReasonNotFound
	}
	if err != nil {
		return entity.PromoReasonExhausted
	}

	if reason := promo.RejectionReason(w.now()); reason != "" {
		return reason
	}

	return entity.PromoReasonExhausted
}
