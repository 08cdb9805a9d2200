package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	minDiscountPercent = 1
	maxDiscountPercent = 90
)

// promoService implements the PromoUsecase interface.
type promoService struct {
	promoRepo repository.PromoRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewPromoService creates a new promo service.
func NewPromoService(promoRepo repository.PromoRepository, logger *slog.Logger) usecase.PromoUsecase {
	return &promoService{promoRepo: promoRepo, logger: logger, now: time.Now}
}

func (srv *promoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validatePromoInput(input *usecase.PromoInput) error {
	if strings.TrimSpace(input.Code) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("code is required")
	}
	if input.DiscountPercent < minDiscountPercent || input.DiscountPercent > maxDiscountPercent {
		return domainerrors.ErrInvalidPromo
	}
	if input.MaxUses != nil && *input.MaxUses < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("maxUses must be at least 1")
	}
	if input.ExpiresAt.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("expiresAt is required")
	}

	return nil
}

// Create adds a promo code. Codes are stored upper-case.
func (srv *promoService) Create(ctx context.Context, input *usecase.PromoInput) (*entity.Promo, error) {
	if err := validatePromoInput(input); err != nil {
		return nil, err
	}

	promo := &entity.Promo{
		Code:            strings.ToUpper(strings.TrimSpace(input.Code)),
		DiscountPercent: input.DiscountPercent,
		MaxUses:         input.MaxUses,
		ExpiresAt:       input.ExpiresAt,
		IsActive:        input.IsActive == nil || *input.IsActive,
	}

	if err := srv.promoRepo.Create(ctx, promo); err != nil {
		if errors.Is(err, repository.ErrDuplicatePromo) {
			return nil, domainerrors.ErrPromoAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create promo")
	}

	srv.log(ctx).Info("Promo created", slog.String("code", promo.Code), slog.Int("discount", promo.DiscountPercent))

	return promo, nil
}

// List returns every promo, active or not.
func (srv *promoService) List(ctx context.Context) ([]*entity.Promo, error) {
	promos, err := srv.promoRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promos")
	}

	return promos, nil
}

// Update replaces a promo's terms. Usage counts are kept.
func (srv *promoService) Update(ctx context.Context, id uuid.UUID, input *usecase.PromoInput) (*entity.Promo, error) {
	if err := validatePromoInput(input); err != nil {
		return nil, err
	}

	promo, err := srv.promoRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPromoNotFound) {
		return nil, domainerrors.ErrPromoNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find promo")
	}

	promo.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	promo.DiscountPercent = input.DiscountPercent
	promo.MaxUses = input.MaxUses
	promo.ExpiresAt = input.ExpiresAt
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}

	if err := srv.promoRepo.Update(ctx, promo); err != nil {
		switch {
		case errors.Is(err, repository.ErrPromoNotFound):
			return nil, domainerrors.ErrPromoNotFound
		case errors.Is(err, repository.ErrDuplicatePromo):
			return nil, domainerrors.ErrPromoAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to update promo")
	}

	return promo, nil
}

// Delete deactivates a promo. The row is kept.
func (srv *promoService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.promoRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPromoNotFound) {
			return domainerrors.ErrPromoNotFound
		}

		return errors.Wrap(err, "failed to deactivate promo")
	}

	srv.log(ctx).Info("Promo deactivated", slog.Any("promoID", id))

	return nil
}

// Validate checks a code without consuming it. Rejections are reported in
// the result, not as errors.
func (srv *promoService) Validate(ctx context.Context, code string) (*usecase.PromoValidation, error) {
	promo, err := srv.promoRepo.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if errors.Is(err, repository.ErrPromoNotFound) {
		return &usecase.PromoValidation{Success: false, Message: entity.PromoReasonNotFound}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find promo")
	}

	if reason := promo.RejectionReason(srv.now()); reason != "" {
		return &usecase.PromoValidation{Success: false, Code: promo.Code, Message: reason}, nil
	}

	return &usecase.PromoValidation{
		Success:         true,
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
	}, nil
}
