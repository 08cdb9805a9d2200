package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Payment: &config.PaymentConfig{
			SuccessRedirectURL: "https://shop.example/payment/success",
			FailureRedirectURL: "https://shop.example/payment/failed",
			StatusCacheTTL:     5 * time.Minute,
			ReconcileGrace:     15 * time.Minute,
			ReconcileBatchSize: 50,
		},
		Store: &config.StoreConfig{
			Timezone: "Asia/Kuwait",
		},
		Firebase: &config.FirebaseConfig{
			StaffTopic: "staff-orders",
		},
	}
}

// expectTx makes the transaction manager run its callback against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func testOrderDraft() *entity.OrderDraft {
	return &entity.OrderDraft{
		FulfillmentType: string(entity.FulfillmentPickup),
		Schedule:        entity.Schedule{Date: "2026-10-20", TimeSlot: entity.TimeSlotAfternoon},
		Contact:         entity.Contact{Name: "Noura", Phone: "+96555555555", Email: "noura@example.com"},
		LineItems: []entity.LineItemDraft{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("3.00")},
		},
		TotalAmount: decimal.RequireFromString("13.00"),
	}
}

func shopper() *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleUser}
}
