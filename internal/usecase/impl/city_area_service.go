package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// cityAreaService implements the CityAreaUsecase interface.
type cityAreaService struct {
	cityRepo repository.CityAreaRepository
	logger   *slog.Logger
}

// NewCityAreaService creates a new city/area service.
func NewCityAreaService(cityRepo repository.CityAreaRepository, logger *slog.Logger) usecase.CityAreaUsecase {
	return &cityAreaService{cityRepo: cityRepo, logger: logger}
}

func (srv *cityAreaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateAreas(areas []entity.Area) error {
	for i := range areas {
		if strings.TrimSpace(areas[i].Name) == "" || areas[i].ShippingPrice.IsNegative() {
			return domainerrors.ErrInvalidAreas
		}
		areas[i].Name = strings.TrimSpace(areas[i].Name)
	}

	return nil
}

// Create adds a city with its areas.
func (srv *cityAreaService) Create(ctx context.Context, input *usecase.CityAreaInput) (*entity.CityArea, error) {
	name := strings.TrimSpace(input.City)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("city is required")
	}
	if err := validateAreas(input.Areas); err != nil {
		return nil, err
	}

	city := &entity.CityArea{City: name, Areas: input.Areas, IsActive: true}
	if city.Areas == nil {
		city.Areas = []entity.Area{}
	}

	if err := srv.cityRepo.Create(ctx, city); err != nil {
		if errors.Is(err, repository.ErrDuplicateCity) {
			return nil, domainerrors.ErrCityAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create city")
	}

	srv.log(ctx).Info("City created", slog.String("city", city.City), slog.Int("areas", len(city.Areas)))

	return city, nil
}

// List returns the cities, active ones only unless includeInactive.
func (srv *cityAreaService) List(ctx context.Context, includeInactive bool) ([]*entity.CityArea, error) {
	cities, err := srv.cityRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}

// Get returns one city.
func (srv *cityAreaService) Get(ctx context.Context, id uuid.UUID) (*entity.CityArea, error) {
	city, err := srv.cityRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCityAreaNotFound) {
		return nil, domainerrors.ErrCityAreaNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find city")
	}

	return city, nil
}

// Update replaces a city's areas and optionally its active flag.
func (srv *cityAreaService) Update(ctx context.Context, id uuid.UUID, input *usecase.CityAreaUpdate) (*entity.CityArea, error) {
	if err := validateAreas(input.Areas); err != nil {
		return nil, err
	}

	city, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Areas != nil {
		city.Areas = input.Areas
	}
	if input.IsActive != nil {
		city.IsActive = *input.IsActive
	}

	if err := srv.cityRepo.Update(ctx, city); err != nil {
		if errors.Is(err, repository.ErrCityAreaNotFound) {
			return nil, domainerrors.ErrCityAreaNotFound
		}

		return nil, errors.Wrap(err, "failed to update city")
	}

	return city, nil
}

// Delete deactivates a city. The row is kept.
func (srv *cityAreaService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.cityRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCityAreaNotFound) {
			return domainerrors.ErrCityAreaNotFound
		}

		return errors.Wrap(err, "failed to deactivate city")
	}

	srv.log(ctx).Info("City deactivated", slog.Any("cityID", id))

	return nil
}

// ShippingPrice is the delivery fee for an active area of an active city.
func (srv *cityAreaService) ShippingPrice(ctx context.Context, cityName, areaName string) (decimal.Decimal, error) {
	city, err := srv.cityRepo.FindByCity(ctx, cityName)
	if errors.Is(err, repository.ErrCityAreaNotFound) {
		return decimal.Zero, domainerrors.ErrCityAreaNotFound
	}
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to find city")
	}
	if !city.IsActive {
		return decimal.Zero, domainerrors.ErrCityAreaNotFound
	}

	area, ok := city.ActiveArea(areaName)
	if !ok {
		return decimal.Zero, domainerrors.ErrAreaNotFound
	}

	return area.ShippingPrice, nil
}
