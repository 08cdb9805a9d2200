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
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// scheduleService implements the ScheduleUsecase interface.
type scheduleService struct {
	scheduleRepo repository.ClosedScheduleRepository
	closingHour  int
	location     *time.Location
	logger       *slog.Logger
	now          func() time.Time
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(scheduleRepo repository.ClosedScheduleRepository, cfg *config.Config, logger *slog.Logger) usecase.ScheduleUsecase {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		closingHour:  cfg.Store.Cutoff(),
		location:     cfg.Store.Location(),
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *scheduleService) parseDate(date string) (string, error) {
	day, err := time.ParseInLocation(entity.DateLayout, date, srv.location)
	if err != nil {
		return "", domainerrors.ErrInvalidDate.WithDetails(date)
	}

	return day.Format(entity.DateLayout), nil
}

// CloseDay records that the store is closed on date.
func (srv *scheduleService) CloseDay(ctx context.Context, date string, closedBy uuid.UUID) (*entity.ClosedDay, error) {
	normalized, err := srv.parseDate(date)
	if err != nil {
		return nil, err
	}

	day := &entity.ClosedDay{Date: normalized, ClosedBy: closedBy}
	if err := srv.scheduleRepo.Append(ctx, day); err != nil {
		if errors.Is(err, repository.ErrDuplicateClosedDay) {
			return nil, domainerrors.ErrDayAlreadyClosed
		}

		return nil, errors.Wrap(err, "failed to close day")
	}

	srv.log(ctx).Info("Day closed", slog.String("date", normalized), slog.Any("closedBy", closedBy))

	return day, nil
}

// ListClosedDays returns every manually closed day.
func (srv *scheduleService) ListClosedDays(ctx context.Context) ([]*entity.ClosedDay, error) {
	days, err := srv.scheduleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list closed days")
	}

	return days, nil
}

// StoreStatus is closed when the day was closed by hand, or when date is
// today and the closing hour has passed.
func (srv *scheduleService) StoreStatus(ctx context.Context, date string) (*entity.StoreStatus, error) {
	now := srv.now().In(srv.location)
	today := now.Format(entity.DateLayout)

	if date == "" {
		date = today
	}
	normalized, err := srv.parseDate(date)
	if err != nil {
		return nil, err
	}

	manual, err := srv.scheduleRepo.Exists(ctx, normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check closed day")
	}

	afterCutoff := normalized == today && now.Hour() >= srv.closingHour

	return &entity.StoreStatus{
		Date:           normalized,
		IsClosed:       manual || afterCutoff,
		ManuallyClosed: manual,
		AfterCutoff:    afterCutoff,
	}, nil
}
