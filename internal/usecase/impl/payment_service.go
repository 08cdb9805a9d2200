package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// errOutcomeApplied aborts the ledger transaction when an outcome was already recorded.
var errOutcomeApplied = errors.New("payment outcome already applied")

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	writer      *orderWriter
	gateway     service.PaymentGateway
	statusCache service.PaymentStatusCache
	notifier    *orderNotifier
	cfg         *config.PaymentConfig
	logger      *slog.Logger
	now         func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	PromoRepo    repository.PromoRepository
	Gateway      service.PaymentGateway
	StatusCache  service.PaymentStatusCache
	Publisher    service.EventPublisher
	Feed         service.OrderFeed
	Notification service.NotificationService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		writer:      newOrderWriter(params.TxManager, params.PromoRepo),
		gateway:     params.Gateway,
		statusCache: params.StatusCache,
		notifier:    newOrderNotifier(params.Publisher, params.Feed, params.Notification, staffTopic(params.Config), params.Logger),
		cfg:         params.Config.Payment,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePayment stores the order in the initiated stage, opens a hosted
// checkout and links the invoice to the order.
func (srv *paymentService) CreatePayment(ctx context.Context, caller *entity.Identity, input *usecase.CreatePaymentInput) (*usecase.CreatePaymentOutput, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !input.Amount.IsPositive() {
		return nil, domainerrors.ErrInvalidAmount
	}

	draft := input.Order
	if draft == nil {
		draft = &entity.OrderDraft{}
	}
	order, err := draft.Build(caller.UserID)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = entity.PaymentStatusPending
	order.PaymentStage = entity.PaymentStageInitiated
	order.Payment = entity.PaymentLink{
		Gateway:           srv.gateway.Name(),
		CustomerReference: order.ID.String(),
	}

	if err := srv.writer.persist(ctx, order); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Payment order initiated", slog.Any("orderID", order.ID), slog.String("amount", input.Amount.String()))
	srv.notifier.emit(ctx, service.OrderEventCreated, order)

	session, err := srv.gateway.CreatePayment(ctx, paymentRequest(order, input.Amount))
	if err != nil {
		var rejected *service.GatewayRejectedError
		if errors.As(err, &rejected) {
			srv.log(ctx).Warn("Gateway rejected payment", slog.Any("orderID", order.ID), slog.String("message", rejected.Message))

			return nil, domainerrors.ErrPaymentRejected.WithMessage(rejected.Message)
		}

		srv.log(ctx).Error("Gateway call failed", slog.Any("orderID", order.ID), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentGateway.WithDetails(err.Error())
	}

	link := entity.PaymentLink{
		Gateway:           srv.gateway.Name(),
		PaymentURL:        session.PaymentURL,
		PaymentID:         session.InvoiceID,
		CustomerReference: order.ID.String(),
	}
	if err := srv.orderRepo.LinkPayment(ctx, order.ID, link); err != nil {
		// The shopper can still pay; the reconcile sweep links the invoice later.
		srv.log(ctx).Error("Failed to link payment to order", slog.Any("orderID", order.ID), slog.Any("error", err))
	}

	return &usecase.CreatePaymentOutput{
		IsSuccess:  true,
		PaymentURL: session.PaymentURL,
		OrderID:    order.ID,
		InvoiceID:  session.InvoiceID,
	}, nil
}

// paymentRequest itemizes the invoice only when the lines add up to the
// charged amount, since the gateway rejects a mismatch.
func paymentRequest(order *entity.Order, amount decimal.Decimal) *service.PaymentRequest {
	req := &service.PaymentRequest{
		Amount:            amount,
		CustomerName:      order.Contact.Name,
		CustomerPhone:     order.Contact.Phone,
		CustomerEmail:     order.Contact.Email,
		CustomerReference: order.ID.String(),
	}

	sum := decimal.Zero
	items := make([]service.InvoiceItem, 0, len(order.LineItems))
	for i := range order.LineItems {
		line := &order.LineItems[i]
		sum = sum.Add(line.Subtotal())
		items = append(items, service.InvoiceItem{
			Name:      "Item " + strconv.Itoa(i+1),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	if sum.Equal(amount) {
		req.Items = items
	}

	return req
}

// HandleWebhook verifies and applies a gateway callback.
func (srv *paymentService) HandleWebhook(ctx context.Context, signature string, body []byte) error {
	status, err := srv.gateway.ParseWebhook(signature, body)
	if errors.Is(err, service.ErrInvalidSignature) {
		srv.log(ctx).Warn("Webhook signature rejected")

		return domainerrors.ErrInvalidSignature
	}
	// Signed webhooks are always acknowledged; unusable ones are only logged.
	if err != nil {
		srv.log(ctx).Warn("Webhook payload unusable, ignored", slog.Any("error", err))

		return nil
	}

	order, err := srv.orderByReference(ctx, status.CustomerReference)
	if errors.Is(err, domainerrors.ErrOrderNotFound) {
		srv.log(ctx).Warn("Webhook for unknown order, ignored",
			slog.String("customerReference", status.CustomerReference),
			slog.String("invoiceID", status.InvoiceID),
		)

		return nil
	}
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Webhook received",
		slog.Any("orderID", order.ID),
		slog.String("invoiceID", status.InvoiceID),
		slog.String("status", status.RawStatus),
	)

	switch status.State {
	case service.InvoicePaid:
		_, err = srv.applyOutcome(ctx, order, status, entity.PaymentOutcomePaid, entity.PaymentSourceWebhook, false)
	case service.InvoiceFailed:
		_, err = srv.applyOutcome(ctx, order, status, entity.PaymentOutcomeFailed, entity.PaymentSourceWebhook, false)
	default:
		srv.log(ctx).Debug("Webhook status ignored", slog.String("status", status.RawStatus))
	}

	return err
}

func (srv *paymentService) orderByReference(ctx context.Context, reference string) (*entity.Order, error) {
	orderID, err := uuid.Parse(reference)
	if err != nil {
		return nil, domainerrors.ErrOrderNotFound.WithDetails("unknown customer reference")
	}

	return findOrder(ctx, srv.orderRepo, orderID)
}

// applyOutcome records the outcome in the ledger and transitions the order in
// one transaction. It reports false when the outcome had been applied before,
// in which case nothing else happens.
func (srv *paymentService) applyOutcome(
	ctx context.Context,
	order *entity.Order,
	status *service.InvoiceStatus,
	outcome entity.PaymentOutcome,
	source entity.PaymentEventSource,
	cancel bool,
) (bool, error) {
	invoiceID := status.InvoiceID
	if invoiceID == "" {
		invoiceID = "ref:" + order.ID.String()
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		event := &entity.PaymentEvent{
			ID:            uuid.New(),
			InvoiceID:     invoiceID,
			Outcome:       outcome,
			OrderID:       order.ID,
			TransactionID: status.TransactionID,
			Source:        source,
		}
		if err := factory.NewPaymentEventRepository().Record(ctx, event); err != nil {
			if errors.Is(err, repository.ErrPaymentEventExists) {
				return errOutcomeApplied
			}

			return err
		}

		orderRepo := factory.NewOrderRepository()
		if outcome == entity.PaymentOutcomePaid {
			return orderRepo.MarkPaid(ctx, order.ID, status.TransactionID)
		}

		err := orderRepo.MarkPaymentFailed(ctx, order.ID, cancel)
		if errors.Is(err, repository.ErrPaymentAlreadySettled) {
			// Rolls back the event: a paid order keeps no failure record.
			return errOutcomeApplied
		}

		return err
	})
	if errors.Is(err, errOutcomeApplied) {
		srv.log(ctx).Info("Payment outcome already applied", slog.Any("orderID", order.ID), slog.String("invoiceID", invoiceID), slog.Any("outcome", outcome))

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to apply payment outcome")
	}

	srv.log(ctx).Info("Payment outcome applied", slog.Any("orderID", order.ID), slog.Any("outcome", outcome), slog.Any("source", source))
	srv.afterOutcome(ctx, order.ID, outcome)

	return true, nil
}

// afterOutcome runs the side effects of a freshly committed outcome.
func (srv *paymentService) afterOutcome(ctx context.Context, orderID uuid.UUID, outcome entity.PaymentOutcome) {
	invalidateStatus(ctx, srv.statusCache, srv.log(ctx), orderID)

	order, err := findOrder(ctx, srv.orderRepo, orderID)
	if err != nil {
		srv.log(ctx).Warn("Failed to reload order after payment outcome", slog.Any("orderID", orderID), slog.Any("error", err))

		return
	}

	if outcome == entity.PaymentOutcomePaid {
		srv.notifier.emit(ctx, service.OrderEventPaid, order)
		srv.notifier.notifyStaff(ctx, "Order paid", "Payment received for order "+order.ID.String(), order)

		return
	}

	srv.notifier.emit(ctx, service.OrderEventPaymentFailed, order)
}

// CheckStatus reads the payment and order status through the status cache.
func (srv *paymentService) CheckStatus(ctx context.Context, orderID uuid.UUID) (*usecase.PaymentStatusOutput, error) {
	if srv.statusCache != nil {
		snapshot, err := srv.statusCache.Get(ctx, orderID)
		if err != nil {
			srv.log(ctx).Warn("Payment status cache read failed", slog.Any("orderID", orderID), slog.Any("error", err))
		}
		if snapshot != nil {
			return &usecase.PaymentStatusOutput{
				OrderID:       orderID,
				PaymentStatus: entity.PaymentStatus(snapshot.PaymentStatus),
				OrderStatus:   entity.OrderStatus(snapshot.OrderStatus),
			}, nil
		}
	}

	order, err := findOrder(ctx, srv.orderRepo, orderID)
	if err != nil {
		return nil, err
	}

	if srv.statusCache != nil {
		snapshot := &service.PaymentStatusSnapshot{
			OrderID:       order.ID,
			PaymentStatus: string(order.PaymentStatus),
			OrderStatus:   string(order.Status),
			CachedAt:      srv.now(),
		}
		if err := srv.statusCache.Set(ctx, snapshot); err != nil {
			srv.log(ctx).Warn("Payment status cache write failed", slog.Any("orderID", orderID), slog.Any("error", err))
		}
	}

	return &usecase.PaymentStatusOutput{
		OrderID:       order.ID,
		PaymentStatus: order.PaymentStatus,
		OrderStatus:   order.Status,
	}, nil
}

// HandleCallback settles the order the shopper was redirected back for and
// returns the storefront page to send them to.
func (srv *paymentService) HandleCallback(ctx context.Context, paymentID string) (string, error) {
	if paymentID == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("paymentId is required")
	}

	status, err := srv.gateway.GetPaymentStatus(ctx, paymentID, service.KeyPaymentID)
	if err != nil {
		var rejected *service.GatewayRejectedError
		if errors.As(err, &rejected) {
			return redirectURL(srv.cfg.FailureRedirectURL, ""), nil
		}

		return "", domainerrors.ErrPaymentGateway.WithDetails(err.Error())
	}

	order, err := srv.orderByReference(ctx, status.CustomerReference)
	if err != nil {
		return "", err
	}

	switch status.State {
	case service.InvoicePaid:
		if _, err := srv.applyOutcome(ctx, order, status, entity.PaymentOutcomePaid, entity.PaymentSourceCallback, false); err != nil {
			return "", err
		}

		return redirectURL(srv.cfg.SuccessRedirectURL, order.ID.String()), nil
	case service.InvoiceFailed:
		if _, err := srv.applyOutcome(ctx, order, status, entity.PaymentOutcomeFailed, entity.PaymentSourceCallback, false); err != nil {
			return "", err
		}
	}

	return redirectURL(srv.cfg.FailureRedirectURL, order.ID.String()), nil
}

func redirectURL(base, orderID string) string {
	if orderID == "" {
		return base
	}

	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	query := u.Query()
	query.Set("orderId", orderID)
	u.RawQuery = query.Encode()

	return u.String()
}

// ReconcileStale settles orders whose payment never got past the initiated
// stage, asking the gateway by customer reference.
func (srv *paymentService) ReconcileStale(ctx context.Context) (*usecase.ReconcileReport, error) {
	cutoff := srv.now().Add(-srv.cfg.ReconcileGrace)
	orders, err := srv.orderRepo.ListStaleInitiated(ctx, cutoff, srv.cfg.ReconcileBatchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stale payments")
	}

	report := &usecase.ReconcileReport{}
	for _, order := range orders {
		report.Checked++
		srv.reconcileOne(ctx, order, report)
	}

	if report.Checked > 0 {
		srv.log(ctx).Info("Reconcile sweep finished",
			slog.Int("checked", report.Checked),
			slog.Int("paid", report.Paid),
			slog.Int("failed", report.Failed),
			slog.Int("linked", report.Linked),
			slog.Int("skipped", report.Skipped),
		)
	}

	return report, nil
}

func (srv *paymentService) reconcileOne(ctx context.Context, order *entity.Order, report *usecase.ReconcileReport) {
	logger := srv.log(ctx).With(slog.Any("orderID", order.ID))

	status, err := srv.gateway.GetPaymentStatus(ctx, order.ID.String(), service.KeyCustomerReference)
	if err != nil {
		var rejected *service.GatewayRejectedError
		if !errors.As(err, &rejected) {
			logger.Warn("Gateway lookup failed, will retry next sweep", slog.Any("error", err))
			report.Skipped++

			return
		}

		// No invoice was ever issued for this order.
		status = &service.InvoiceStatus{CustomerReference: order.ID.String(), State: service.InvoiceFailed}
	}

	switch status.State {
	case service.InvoicePaid:
		srv.link(ctx, logger, order, status)
		applied, err := srv.applyOutcome(ctx, order, status, entity.PaymentOutcomePaid, entity.PaymentSourceReconcile, false)
		if err != nil {
			logger.Error("Failed to apply reconciled payment", slog.Any("error", err))
		}
		if !applied {
			report.Skipped++

			return
		}
		report.Paid++
	case service.InvoiceFailed:
		applied, err := srv.applyOutcome(ctx, order, status, entity.PaymentOutcomeFailed, entity.PaymentSourceReconcile, true)
		if err != nil {
			logger.Error("Failed to apply reconciled failure", slog.Any("error", err))
		}
		if !applied {
			report.Skipped++

			return
		}
		report.Failed++
	default:
		if srv.link(ctx, logger, order, status) {
			report.Linked++
		} else {
			report.Skipped++
		}
	}
}

func (srv *paymentService) link(ctx context.Context, logger *slog.Logger, order *entity.Order, status *service.InvoiceStatus) bool {
	if status.InvoiceID == "" {
		return false
	}

	link := entity.PaymentLink{
		Gateway:           srv.gateway.Name(),
		PaymentID:         status.InvoiceID,
		CustomerReference: order.ID.String(),
	}
	if err := srv.orderRepo.LinkPayment(ctx, order.ID, link); err != nil {
		logger.Warn("Failed to link reconciled invoice", slog.Any("error", err))

		return false
	}

	return true
}
