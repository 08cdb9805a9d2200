package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- City / area ---

// CityAreaInput creates a city with its delivery areas.
type CityAreaInput struct {
	City  string
	Areas []entity.Area
}

// CityAreaUpdate replaces the areas and optionally the active flag.
type CityAreaUpdate struct {
	Areas    []entity.Area
	IsActive *bool
}

// CityAreaUsecase manages the delivery price table.
type CityAreaUsecase interface {
	Create(ctx context.Context, input *CityAreaInput) (*entity.CityArea, error)
	List(ctx context.Context, includeInactive bool) ([]*entity.CityArea, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.CityArea, error)
	Update(ctx context.Context, id uuid.UUID, input *CityAreaUpdate) (*entity.CityArea, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ShippingPrice(ctx context.Context, city, area string) (decimal.Decimal, error)
}

// --- Promo ---

// PromoInput creates or replaces a promo code.
type PromoInput struct {
	Code            string
	DiscountPercent int
	MaxUses         *int
	ExpiresAt       time.Time
	IsActive        *bool // Nil means active.
}

// PromoValidation is the always-200 answer of a promo check.
type PromoValidation struct {
	Success         bool
	Code            string
	DiscountPercent int
	Message         string
}

// PromoUsecase manages promo codes.
type PromoUsecase interface {
	Create(ctx context.Context, input *PromoInput) (*entity.Promo, error)
	List(ctx context.Context) ([]*entity.Promo, error)
	Update(ctx context.Context, id uuid.UUID, input *PromoInput) (*entity.Promo, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Validate(ctx context.Context, code string) (*PromoValidation, error)
}

// --- Closed schedule ---

// ScheduleUsecase records closed days and answers whether the store is closed.
type ScheduleUsecase interface {
	CloseDay(ctx context.Context, date string, closedBy uuid.UUID) (*entity.ClosedDay, error)
	ListClosedDays(ctx context.Context) ([]*entity.ClosedDay, error)
	// StoreStatus evaluates date, or today in the store timezone when empty.
	StoreStatus(ctx context.Context, date string) (*entity.StoreStatus, error)
}
