package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultOrderListLimit = 100

// orderRepository implements repository.OrderRepository.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order with its line-item snapshot.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with expanded product summaries.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	orders, err := repo.expand(ctx, []*model.OrderModel{&orderM})
	if err != nil {
		return nil, err
	}

	return orders[0], nil
}

// ListByOwner returns the owner's orders, newest first.
func (repo *orderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by owner")
	}

	return repo.expand(ctx, orderMs)
}

// List returns orders for staff, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultOrderListLimit
	}

	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var orderMs []*model.OrderModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(max(filter.Offset, 0)).
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return repo.expand(ctx, orderMs)
}

// UpdateStatus is a compare-and-set on status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repo.missingOrConflict(ctx, id)
	}

	return nil
}

// LinkPayment stores the gateway session. Only an initiated order can be linked.
func (repo *orderRepository) LinkPayment(ctx context.Context, id uuid.UUID, link entity.PaymentLink) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_stage = ?", id, string(entity.PaymentStageInitiated)).
		Updates(map[string]any{
			"payment_stage":      string(entity.PaymentStageLinked),
			"payment_gateway":    link.Gateway,
			"payment_url":        link.PaymentURL,
			"payment_id":         link.PaymentID,
			"customer_reference": link.CustomerReference,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to link payment")
	}
	if result.RowsAffected == 0 {
		return repo.missingOrConflict(ctx, id)
	}

	return nil
}

// MarkPaid settles the payment and confirms a pending order. Other statuses
// are left as staff set them.
func (repo *orderRepository) MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(entity.PaymentStatusPaid),
			"payment_stage":  string(entity.PaymentStageSettled),
			"transaction_id": transactionID,
			"status":         statusFromPending(entity.OrderStatusConfirmed),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark order paid")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// MarkPaymentFailed records a failed payment. A paid order is never downgraded.
func (repo *orderRepository) MarkPaymentFailed(ctx context.Context, id uuid.UUID, cancel bool) error {
	updates := map[string]any{
		"payment_status": string(entity.PaymentStatusFailed),
		"payment_stage":  string(entity.PaymentStageSettled),
		"updated_at":     time.Now(),
	}
	if cancel {
		updates["status"] = statusFromPending(entity.OrderStatusCancelled)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_status <> ?", id, string(entity.PaymentStatusPaid)).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark payment failed")
	}
	if result.RowsAffected == 0 {
		err := repo.missingOrConflict(ctx, id)
		if errors.Is(err, domainerrors.ErrConflict) {
			return repository.ErrPaymentAlreadySettled
		}

		return err
	}

	return nil
}

// ListStaleInitiated returns initiated orders created before olderThan, oldest first.
func (repo *orderRepository) ListStaleInitiated(ctx context.Context, olderThan time.Time, limit int) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("payment_stage = ? AND created_at < ?", string(entity.PaymentStageInitiated), olderThan).
		Order("created_at ASC").
		Limit(limit).
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stale payments")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// statusFromPending moves a pending order to next and leaves any other status alone.
func statusFromPending(next entity.OrderStatus) clause.Expr {
	return gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END", string(entity.OrderStatusPending), string(next))
}

// missingOrConflict tells a missing row apart from a failed guard.
func (repo *orderRepository) missingOrConflict(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return domainerrors.ErrConflict.WrapMessage("order changed concurrently")
}

func (repo *orderRepository) expand(ctx context.Context, orderMs []*model.OrderModel) ([]*entity.Order, error) {
	seen := make(map[uuid.UUID]struct{})
	var productIDs []uuid.UUID
	for _, orderM := range orderMs {
		for _, item := range orderM.LineItems {
			if _, ok := seen[item.ProductID]; !ok {
				seen[item.ProductID] = struct{}{}
				productIDs = append(productIDs, item.ProductID)
			}
		}
	}

	summaries, err := loadProductSummaries(ctx, repo.db, productIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		order := toOrderDomain(orderM)
		for i := range order.LineItems {
			order.LineItems[i].Product = summaries[order.LineItems[i].ProductID]
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// paymentEventRepository implements repository.PaymentEventRepository.
type paymentEventRepository struct {
	db *gorm.DB
}

// NewPaymentEventRepository is the constructor for paymentEventRepository.
func NewPaymentEventRepository(db *gorm.DB) repository.PaymentEventRepository {
	return &paymentEventRepository{db: db}
}

// Record inserts the event. The unique (invoice_id, outcome) key turns a
// replay into ErrPaymentEventExists.
func (repo *paymentEventRepository) Record(ctx context.Context, event *entity.PaymentEvent) error {
	eventM := &model.PaymentEventModel{
		ID:            event.ID,
		InvoiceID:     event.InvoiceID,
		Outcome:       string(event.Outcome),
		OrderID:       event.OrderID,
		TransactionID: event.TransactionID,
		Source:        string(event.Source),
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPaymentEventExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record payment event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	lineItems := make([]entity.LineItem, 0, len(data.LineItems))
	for _, item := range data.LineItems {
		lineItems = append(lineItems, entity.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Message:   item.Message,
		})
	}

	fulfillment := entity.PickupFulfillment()
	if entity.FulfillmentType(data.FulfillmentType) == entity.FulfillmentDelivery {
		var addr entity.ShippingAddress
		if data.ShippingAddress != nil {
			addr = entity.ShippingAddress(data.ShippingAddress.Data())
		}
		fulfillment = entity.DeliveryFulfillment(addr)
	}

	return &entity.Order{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		LineItems:   lineItems,
		TotalAmount: data.TotalAmount,
		Fulfillment: fulfillment,
		Schedule: entity.Schedule{
			Date:     data.ScheduleDate,
			TimeSlot: entity.TimeSlot(data.TimeSlot),
		},
		Contact: entity.Contact{
			Name:  data.ContactName,
			Phone: data.ContactPhone,
			Email: data.ContactEmail,
		},
		PromoCode:     data.PromoCode,
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		PaymentStage:  entity.PaymentStage(data.PaymentStage),
		Payment: entity.PaymentLink{
			Gateway:           data.PaymentGateway,
			PaymentURL:        data.PaymentURL,
			PaymentID:         data.PaymentID,
			CustomerReference: data.CustomerReference,
			TransactionID:     data.TransactionID,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	lineItems := make(datatypes.JSONSlice[model.LineItemRecord], 0, len(data.LineItems))
	for _, item := range data.LineItems {
		lineItems = append(lineItems, model.LineItemRecord{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Message:   item.Message,
		})
	}

	orderM := &model.OrderModel{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		LineItems:         lineItems,
		TotalAmount:       data.TotalAmount,
		FulfillmentType:   string(data.Fulfillment.Type),
		ScheduleDate:      data.Schedule.Date,
		TimeSlot:          string(data.Schedule.TimeSlot),
		ContactName:       data.Contact.Name,
		ContactPhone:      data.Contact.Phone,
		ContactEmail:      data.Contact.Email,
		PromoCode:         data.PromoCode,
		Status:            string(data.Status),
		PaymentStatus:     string(data.PaymentStatus),
		PaymentStage:      string(data.PaymentStage),
		PaymentGateway:    data.Payment.Gateway,
		PaymentURL:        data.Payment.PaymentURL,
		PaymentID:         data.Payment.PaymentID,
		CustomerReference: data.Payment.CustomerReference,
		TransactionID:     data.Payment.TransactionID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.Fulfillment.Address != nil {
		addr := datatypes.NewJSONType(model.ShippingAddressRecord(*data.Fulfillment.Address))
		orderM.ShippingAddress = &addr
	}

	return orderM
}
