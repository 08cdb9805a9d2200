package postgres

import (
	"context"
	"strings"
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

// cityAreaRepository implements repository.CityAreaRepository.
type cityAreaRepository struct {
	db *gorm.DB
}

// NewCityAreaRepository is the constructor for cityAreaRepository.
func NewCityAreaRepository(db *gorm.DB) repository.CityAreaRepository {
	return &cityAreaRepository{db: db}
}

func (repo *cityAreaRepository) Create(ctx context.Context, city *entity.CityArea) error {
	cityM := fromCityAreaDomain(city)

	if err := repo.db.WithContext(ctx).Create(cityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCity
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create city")
	}

	city.ID = cityM.ID
	city.City = cityM.City
	city.CreatedAt = cityM.CreatedAt
	city.UpdatedAt = cityM.UpdatedAt

	return nil
}

func (repo *cityAreaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CityArea, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByCity looks a city up by its key, case-insensitively.
func (repo *cityAreaRepository) FindByCity(ctx context.Context, city string) (*entity.CityArea, error) {
	return repo.findOne(ctx, "city = ?", cityKey(city))
}

func (repo *cityAreaRepository) findOne(ctx context.Context, query string, arg any) (*entity.CityArea, error) {
	var cityM model.CityAreaModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityAreaNotFound
		}

		return nil, errors.Wrap(err, "failed to find city")
	}

	return toCityAreaDomain(&cityM), nil
}

func (repo *cityAreaRepository) List(ctx context.Context, includeInactive bool) ([]*entity.CityArea, error) {
	query := repo.db.WithContext(ctx).Model(&model.CityAreaModel{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var cityMs []*model.CityAreaModel
	if err := query.Order("city ASC").Find(&cityMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	cities := make([]*entity.CityArea, 0, len(cityMs))
	for _, cityM := range cityMs {
		cities = append(cities, toCityAreaDomain(cityM))
	}

	return cities, nil
}

// Update replaces the areas and the active flag. The city key is immutable.
func (repo *cityAreaRepository) Update(ctx context.Context, city *entity.CityArea) error {
	cityM := fromCityAreaDomain(city)

	result := repo.db.WithContext(ctx).
		Model(&model.CityAreaModel{}).
		Where("id = ?", city.ID).
		Updates(map[string]any{
			"areas":      cityM.Areas,
			"is_active":  city.IsActive,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update city")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCityAreaNotFound
	}

	return nil
}

func (repo *cityAreaRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return deactivate(ctx, repo.db, &model.CityAreaModel{}, id, repository.ErrCityAreaNotFound)
}

// promoRepository implements repository.PromoRepository.
type promoRepository struct {
	db *gorm.DB
}

// NewPromoRepository is the constructor for promoRepository.
func NewPromoRepository(db *gorm.DB) repository.PromoRepository {
	return &promoRepository{db: db}
}

func (repo *promoRepository) Create(ctx context.Context, promo *entity.Promo) error {
	promoM := fromPromoDomain(promo)

	if err := repo.db.WithContext(ctx).Create(promoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePromo
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPromo
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promo")
	}

	promo.ID = promoM.ID
	promo.Code = promoM.Code
	promo.CreatedAt = promoM.CreatedAt
	promo.UpdatedAt = promoM.UpdatedAt

	return nil
}

func (repo *promoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promo, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByCode looks a promo up by code, case-insensitively.
func (repo *promoRepository) FindByCode(ctx context.Context, code string) (*entity.Promo, error) {
	return repo.findOne(ctx, "code = ?", promoCode(code))
}

func (repo *promoRepository) findOne(ctx context.Context, query string, arg any) (*entity.Promo, error) {
	var promoM model.PromoModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&promoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromoNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo")
	}

	return toPromoDomain(&promoM), nil
}

func (repo *promoRepository) List(ctx context.Context) ([]*entity.Promo, error) {
	var promoMs []*model.PromoModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&promoMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promos")
	}

	promos := make([]*entity.Promo, 0, len(promoMs))
	for _, promoM := range promoMs {
		promos = append(promos, toPromoDomain(promoM))
	}

	return promos, nil
}

// Update overwrites the editable promo fields. Code and usage count are kept.
func (repo *promoRepository) Update(ctx context.Context, promo *entity.Promo) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromoModel{}).
		Where("id = ?", promo.ID).
		Updates(map[string]any{
			"discount_percent": promo.DiscountPercent,
			"max_uses":         promo.MaxUses,
			"expires_at":       promo.ExpiresAt,
			"is_active":        promo.IsActive,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidPromo
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoNotFound
	}

	return nil
}

func (repo *promoRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return deactivate(ctx, repo.db, &model.PromoModel{}, id, repository.ErrPromoNotFound)
}

// Redeem takes one use with a guarded UPDATE, so concurrent orders can never
// push current_uses past max_uses.
func (repo *promoRepository) Redeem(ctx context.Context, code string) (*entity.Promo, error) {
	var promoM model.PromoModel

	result := repo.db.WithContext(ctx).
		Model(&promoM).
		Clauses(clause.Returning{}).
		Where("code = ? AND is_active = ? AND expires_at > ?", promoCode(code), true, time.Now()).
		Where("max_uses IS NULL OR current_uses < max_uses").
		Updates(map[string]any{
			"current_uses": gorm.Expr("current_uses + 1"),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to redeem promo")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPromoExhausted
	}

	return toPromoDomain(&promoM), nil
}

// closedScheduleRepository implements repository.ClosedScheduleRepository.
type closedScheduleRepository struct {
	db *gorm.DB
}

// NewClosedScheduleRepository is the constructor for closedScheduleRepository.
func NewClosedScheduleRepository(db *gorm.DB) repository.ClosedScheduleRepository {
	return &closedScheduleRepository{db: db}
}

func (repo *closedScheduleRepository) Append(ctx context.Context, day *entity.ClosedDay) error {
	dayM := &model.ClosedDayModel{Date: day.Date, ClosedBy: day.ClosedBy}

	if err := repo.db.WithContext(ctx).Create(dayM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateClosedDay
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to close day")
	}

	day.CreatedAt = dayM.CreatedAt

	return nil
}

func (repo *closedScheduleRepository) Exists(ctx context.Context, date string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ClosedDayModel{}).Where("date = ?", date).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check closed day")
	}

	return count > 0, nil
}

func (repo *closedScheduleRepository) List(ctx context.Context) ([]*entity.ClosedDay, error) {
	var dayMs []*model.ClosedDayModel
	if err := repo.db.WithContext(ctx).Order("date ASC").Find(&dayMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list closed days")
	}

	days := make([]*entity.ClosedDay, 0, len(dayMs))
	for _, dayM := range dayMs {
		days = append(days, &entity.ClosedDay{Date: dayM.Date, ClosedBy: dayM.ClosedBy, CreatedAt: dayM.CreatedAt})
	}

	return days, nil
}

// deactivate is the shared soft delete.
func deactivate(ctx context.Context, db *gorm.DB, table any, id uuid.UUID, notFound error) error {
	result := db.WithContext(ctx).
		Model(table).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate record")
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

func promoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// --- Mapper Functions ---

func toCityAreaDomain(data *model.CityAreaModel) *entity.CityArea {
	areas := make([]entity.Area, 0, len(data.Areas))
	for _, area := range data.Areas {
		areas = append(areas, entity.Area(area))
	}

	return &entity.CityArea{
		ID:        data.ID,
		City:      data.City,
		Areas:     areas,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCityAreaDomain(data *entity.CityArea) *model.CityAreaModel {
	areas := make(datatypes.JSONSlice[model.AreaRecord], 0, len(data.Areas))
	for _, area := range data.Areas {
		areas = append(areas, model.AreaRecord(area))
	}

	return &model.CityAreaModel{
		ID:        data.ID,
		City:      cityKey(data.City),
		Areas:     areas,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPromoDomain(data *model.PromoModel) *entity.Promo {
	return &entity.Promo{
		ID:              data.ID,
		Code:            data.Code,
		DiscountPercent: data.DiscountPercent,
		MaxUses:         data.MaxUses,
		CurrentUses:     data.CurrentUses,
		ExpiresAt:       data.ExpiresAt,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromPromoDomain(data *entity.Promo) *model.PromoModel {
	return &model.PromoModel{
		ID:              data.ID,
		Code:            promoCode(data.Code),
		DiscountPercent: data.DiscountPercent,
		MaxUses:         data.MaxUses,
		CurrentUses:     data.CurrentUses,
		ExpiresAt:       data.ExpiresAt,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
