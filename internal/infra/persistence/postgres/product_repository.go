package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements repository.ProductRepository.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// CreateBatch inserts every product in one statement, so either all or none land.
func (repo *productRepository) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	productMs := make([]*model.ProductModel, 0, len(products))
	for _, p := range products {
		productMs = append(productMs, fromProductDomain(p))
	}

	if err := repo.db.WithContext(ctx).Create(&productMs).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create products")
	}

	for i, productM := range productMs {
		products[i].ID = productM.ID
		products[i].CreatedAt = productM.CreatedAt
		products[i].UpdatedAt = productM.UpdatedAt
	}

	return nil
}

// Update overwrites the catalog fields of an existing product, leaving the slug alone.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "category", "category_key", "description", "actual_price", "discounted_price", "images", "image", "is_available", "updated_at").
		Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by id.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a product by its permanent slug.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *productRepository) findOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs returns the products that exist among ids. Missing ids are skipped.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomains(productMs), nil
}

// List returns the catalog, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category_key = ?", strings.ToLower(category))
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}

	var productMs []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productMs), nil
}

// SetAvailability flips is_available.
func (repo *productRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Update("is_available", available)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the row. Orders and carts keep the dangling id.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLocalizedText(r model.LocalizedTextRecord) entity.LocalizedText {
	return entity.LocalizedText{EN: r.EN, AR: r.AR}
}

func fromLocalizedText(t entity.LocalizedText) datatypes.JSONType[model.LocalizedTextRecord] {
	return datatypes.NewJSONType(model.LocalizedTextRecord{EN: t.EN, AR: t.AR})
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        toLocalizedText(data.Name.Data()),
		Category:    toLocalizedText(data.Category.Data()),
		Description: toLocalizedText(data.Description.Data()),
		Slug:        data.Slug,
		ActualPrice: data.ActualPrice,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.DiscountedPrice.Valid {
		discounted := data.DiscountedPrice.Decimal
		product.DiscountedPrice = &discounted
	}

	images := []string(data.Images)
	if len(images) == 0 && data.Image != "" {
		images = []string{data.Image}
	}
	product.SetImages(images)

	return product
}

func toProductDomains(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:          data.ID,
		Name:        fromLocalizedText(data.Name),
		Category:    fromLocalizedText(data.Category),
		CategoryKey: strings.ToLower(strings.TrimSpace(data.Category.EN)),
		Description: fromLocalizedText(data.Description),
		Slug:        data.Slug,
		ActualPrice: data.ActualPrice,
		Images:      datatypes.JSONSlice[string](data.Images),
		Image:       data.Image,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if productM.Images == nil {
		productM.Images = datatypes.JSONSlice[string]{}
	}
	if data.DiscountedPrice != nil {
		productM.DiscountedPrice = decimal.NewNullDecimal(*data.DiscountedPrice)
	}

	return productM
}
