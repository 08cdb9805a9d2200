package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCityAreaNotFound is returned when a city is not found.
	ErrCityAreaNotFound = errors.New("city not found")
	// ErrDuplicateCity is returned when the city key already exists.
	ErrDuplicateCity = errors.New("city already exists")

	// ErrPromoNotFound is returned when a promo is not found.
	ErrPromoNotFound = errors.New("promo not found")
	// ErrDuplicatePromo is returned when the code already exists.
	ErrDuplicatePromo = errors.New("promo code already exists")
	// ErrPromoExhausted is returned by Redeem when no use is left or the promo is unusable.
	ErrPromoExhausted = errors.New("promo cannot be redeemed")

	// ErrDuplicateClosedDay is returned when the date is already closed.
	ErrDuplicateClosedDay = errors.New("day already closed")
)

// CityAreaRepository persists the delivery price table.
type CityAreaRepository interface {
	Create(ctx context.Context, city *entity.CityArea) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CityArea, error)
	FindByCity(ctx context.Context, city string) (*entity.CityArea, error)
	List(ctx context.Context, includeInactive bool) ([]*entity.CityArea, error)
	Update(ctx context.Context, city *entity.CityArea) error
	// Deactivate is the soft delete.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// PromoRepository persists promo codes.
type PromoRepository interface {
	Create(ctx context.Context, promo *entity.Promo) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Promo, error)
	FindByCode(ctx context.Context, code string) (*entity.Promo, error)
	List(ctx context.Context) ([]*entity.Promo, error)
	Update(ctx context.Context, promo *entity.Promo) error
	// Deactivate is the soft delete.
	Deactivate(ctx context.Context, id uuid.UUID) error
	// Redeem consumes one use in a single conditional statement.
	Redeem(ctx context.Context, code string) (*entity.Promo, error)
}

// ClosedScheduleRepository is append and query only.
type ClosedScheduleRepository interface {
	Append(ctx context.Context, day *entity.ClosedDay) error
	Exists(ctx context.Context, date string) (bool, error)
	List(ctx context.Context) ([]*entity.ClosedDay, error)
}
