package postgres

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB connects to POSTGRES_DSN and migrates the schema. Rows are keyed
// by fresh uuids and codes, so runs do not interfere with each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN not set")
	}

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func createTestOrder(t *testing.T, db *gorm.DB, status entity.OrderStatus, paymentStatus entity.PaymentStatus) *entity.Order {
	t.Helper()

	order := &entity.Order{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		LineItems: []entity.LineItem{
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("5.500")},
		},
		TotalAmount:   decimal.RequireFromString("5.500"),
		Fulfillment:   entity.PickupFulfillment(),
		Schedule:      entity.Schedule{Date: "2026-10-20", TimeSlot: entity.TimeSlotAfternoon},
		Contact:       entity.Contact{Name: "Noura", Phone: "+96555555555"},
		Status:        status,
		PaymentStatus: paymentStatus,
		PaymentStage:  entity.PaymentStageInitiated,
	}
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), order))

	return order
}

func TestCartRepository_AddItemIncrementsExistingLine(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)
	userID, productID := uuid.New(), uuid.New()

	first := &entity.CartItem{UserID: userID, ProductID: productID, Quantity: 2, PriceSnapshot: decimal.RequireFromString("3.000"), UpdatedAt: time.Now()}
	require.NoError(t, repo.AddItem(ctx, first))
	assert.Equal(t, 2, first.Quantity)

	second := &entity.CartItem{UserID: userID, ProductID: productID, Quantity: 3, PriceSnapshot: decimal.RequireFromString("2.500"), UpdatedAt: time.Now()}
	require.NoError(t, repo.AddItem(ctx, second))
	assert.Equal(t, 5, second.Quantity)

	items, err := repo.ListItems(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("2.5").Equal(items[0].PriceSnapshot))

	assert.ErrorIs(t, repo.SetQuantity(ctx, userID, uuid.New(), 1), repository.ErrCartItemNotFound)
}

func TestCartRepository_ConcurrentAddsAreNotLost(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)
	userID, productID := uuid.New(), uuid.New()

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.AddItem(ctx, &entity.CartItem{UserID: userID, ProductID: productID, Quantity: 1, PriceSnapshot: decimal.NewFromInt(1), UpdatedAt: time.Now()})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	items, err := repo.ListItems(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, writers, items[0].Quantity)
}

func TestPromoRepository_RedeemStopsAtMaxUses(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPromoRepository(db)
	maxUses := 2
	code := "T" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])

	require.NoError(t, repo.Create(ctx, &entity.Promo{
		ID:              uuid.New(),
		Code:            code,
		DiscountPercent: 10,
		MaxUses:         &maxUses,
		ExpiresAt:       time.Now().Add(24 * time.Hour),
		IsActive:        true,
	}))

	redeemed, err := repo.Redeem(ctx, strings.ToLower(code))
	require.NoError(t, err)
	assert.Equal(t, 1, redeemed.CurrentUses)

	redeemed, err = repo.Redeem(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, 2, redeemed.CurrentUses)

	_, err = repo.Redeem(ctx, code)
	assert.ErrorIs(t, err, repository.ErrPromoExhausted)

	stored, err := repo.FindByCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.CurrentUses)
}

func TestOrderRepository_MarkPaidConfirmsOnlyPending(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	tests := []struct {
		name       string
		status     entity.OrderStatus
		wantStatus entity.OrderStatus
	}{
		{name: "pending is confirmed", status: entity.OrderStatusPending, wantStatus: entity.OrderStatusConfirmed},
		{name: "cancelled stays cancelled", status: entity.OrderStatusCancelled, wantStatus: entity.OrderStatusCancelled},
		{name: "completed stays completed", status: entity.OrderStatusCompleted, wantStatus: entity.OrderStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := createTestOrder(t, db, tt.status, entity.PaymentStatusPending)

			require.NoError(t, repo.MarkPaid(ctx, order.ID, "tx-1"))

			stored, err := repo.FindByID(ctx, order.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, stored.Status)
			assert.Equal(t, entity.PaymentStatusPaid, stored.PaymentStatus)
			assert.Equal(t, "tx-1", stored.Payment.TransactionID)
		})
	}

	assert.ErrorIs(t, repo.MarkPaid(ctx, uuid.New(), "tx-2"), repository.ErrOrderNotFound)
}

func TestOrderRepository_MarkPaymentFailed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	t.Run("pending payment is failed and optionally cancelled", func(t *testing.T) {
		kept := createTestOrder(t, db, entity.OrderStatusPending, entity.PaymentStatusPending)
		cancelled := createTestOrder(t, db, entity.OrderStatusPending, entity.PaymentStatusPending)

		require.NoError(t, repo.MarkPaymentFailed(ctx, kept.ID, false))
		require.NoError(t, repo.MarkPaymentFailed(ctx, cancelled.ID, true))

		stored, err := repo.FindByID(ctx, kept.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, stored.Status)
		assert.Equal(t, entity.PaymentStatusFailed, stored.PaymentStatus)

		stored, err = repo.FindByID(ctx, cancelled.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, stored.Status)
	})

	t.Run("paid order is never downgraded", func(t *testing.T) {
		order := createTestOrder(t, db, entity.OrderStatusConfirmed, entity.PaymentStatusPaid)

		err := repo.MarkPaymentFailed(ctx, order.ID, true)
		assert.ErrorIs(t, err, repository.ErrPaymentAlreadySettled)

		stored, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusConfirmed, stored.Status)
		assert.Equal(t, entity.PaymentStatusPaid, stored.PaymentStatus)
	})

	t.Run("missing order", func(t *testing.T) {
		assert.ErrorIs(t, repo.MarkPaymentFailed(ctx, uuid.New(), false), repository.ErrOrderNotFound)
	})
}

func TestPaymentEventRepository_RecordIsUniquePerInvoiceOutcome(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPaymentEventRepository(db)
	orderID := uuid.New()
	invoiceID := "inv-" + uuid.NewString()

	event := func(outcome entity.PaymentOutcome) *entity.PaymentEvent {
		return &entity.PaymentEvent{ID: uuid.New(), InvoiceID: invoiceID, Outcome: outcome, OrderID: orderID, Source: entity.PaymentSourceWebhook}
	}

	require.NoError(t, repo.Record(ctx, event(entity.PaymentOutcomePaid)))
	assert.ErrorIs(t, repo.Record(ctx, event(entity.PaymentOutcomePaid)), repository.ErrPaymentEventExists)
	assert.NoError(t, repo.Record(ctx, event(entity.PaymentOutcomeFailed)))
}

func TestTransactionManager_SettledFailureRollsBackEvent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	order := createTestOrder(t, db, entity.OrderStatusConfirmed, entity.PaymentStatusPaid)
	invoiceID := "inv-" + uuid.NewString()

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewPaymentEventRepository().Record(ctx, &entity.PaymentEvent{
			ID:        uuid.New(),
			InvoiceID: invoiceID,
			Outcome:   entity.PaymentOutcomeFailed,
			OrderID:   order.ID,
			Source:    entity.PaymentSourceWebhook,
		}); err != nil {
			return err
		}

		return factory.NewOrderRepository().MarkPaymentFailed(ctx, order.ID, false)
	})
	require.ErrorIs(t, err, repository.ErrPaymentAlreadySettled)

	var count int64
	require.NoError(t, db.Model(&model.PaymentEventModel{}).Where("invoice_id = ?", invoiceID).Count(&count).Error)
	assert.Zero(t, count)
}
