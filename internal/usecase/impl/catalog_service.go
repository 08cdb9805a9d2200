package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	exporter    service.ProductExporter
	logger      *slog.Logger
	now         func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Exporter    service.ProductExporter
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		exporter:    params.Exporter,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateDraft(index int, draft *usecase.ProductDraft) error {
	line := "product " + strconv.Itoa(index+1)
	if !draft.Name.IsComplete() || !draft.Category.IsComplete() || !draft.ActualPrice.IsPositive() {
		return domainerrors.ErrInvalidProduct.WithDetails(line)
	}
	if draft.DiscountedPrice != nil && (draft.DiscountedPrice.IsNegative() || !draft.DiscountedPrice.LessThan(draft.ActualPrice)) {
		return domainerrors.ErrInvalidDiscountPrice.WithDetails(line)
	}

	return nil
}

// CreateProducts validates, uploads images for and persists a batch of products.
// Nothing is persisted and no uploaded object is left behind when any step fails.
func (srv *catalogService) CreateProducts(ctx context.Context, drafts []*usecase.ProductDraft) ([]*entity.Product, error) {
	if len(drafts) == 0 {
		return nil, domainerrors.ErrInvalidProduct.WithDetails("no products provided")
	}
	for i, draft := range drafts {
		if err := validateDraft(i, draft); err != nil {
			return nil, err
		}
	}

	uploader := &batchUploader{store: srv.imageStore}
	now := srv.now()
	products := make([]*entity.Product, len(drafts))
	for i, draft := range drafts {
		urls, err := uploader.uploadAll(ctx, draft)
		if err != nil {
			srv.log(ctx).Error("Image upload failed, cleaning up batch", slog.Int("product", i+1), slog.Any("error", err))
			uploader.cleanup(ctx, srv.log(ctx))

			return nil, domainerrors.ErrImageUploadFailed.WrapMessage(err.Error())
		}

		product := &entity.Product{
			ID:              uuid.New(),
			Name:            draft.Name,
			Category:        draft.Category,
			Description:     draft.Description,
			Slug:            entity.NewSlug(draft.Name.EN, now, i),
			ActualPrice:     draft.ActualPrice,
			DiscountedPrice: draft.DiscountedPrice,
			IsAvailable:     draft.IsAvailable == nil || *draft.IsAvailable,
		}
		product.SetImages(urls)
		products[i] = product
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewProductRepository().CreateBatch(ctx, products)
	})
	if err != nil {
		uploader.cleanup(ctx, srv.log(ctx))
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrConflict.WrapMessage("product slug already exists")
		}

		return nil, errors.Wrap(err, "failed to persist product batch")
	}

	srv.log(ctx).Info("Products created", slog.Int("count", len(products)))

	return products, nil
}

// UpdateProducts replaces the mutable fields of existing products. Slugs never change.
func (srv *catalogService) UpdateProducts(ctx context.Context, updates []*usecase.ProductUpdate) ([]*entity.Product, error) {
	if len(updates) == 0 {
		return nil, domainerrors.ErrInvalidProduct.WithDetails("no products provided")
	}

	existing := make([]*entity.Product, len(updates))
	for i, update := range updates {
		if err := validateDraft(i, &update.ProductDraft); err != nil {
			return nil, err
		}

		product, err := srv.findProduct(ctx, update.ID)
		if err != nil {
			return nil, err
		}
		existing[i] = product
	}

	uploader := &batchUploader{store: srv.imageStore}
	for i, update := range updates {
		urls, err := uploader.uploadAll(ctx, &update.ProductDraft)
		if err != nil {
			srv.log(ctx).Error("Image upload failed, cleaning up batch", slog.Int("product", i+1), slog.Any("error", err))
			uploader.cleanup(ctx, srv.log(ctx))

			return nil, domainerrors.ErrImageUploadFailed.WrapMessage(err.Error())
		}

		product := existing[i]
		product.Name = update.Name
		product.Category = update.Category
		product.Description = update.Description
		product.ActualPrice = update.ActualPrice
		product.DiscountedPrice = update.DiscountedPrice
		if update.IsAvailable != nil {
			product.IsAvailable = *update.IsAvailable
		}
		if len(urls) > 0 {
			product.SetImages(urls)
		}
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()
		for _, product := range existing {
			if err := productRepo.Update(ctx, product); err != nil {
				return errors.Wrapf(err, "failed to update product %s", product.ID)
			}
		}

		return nil
	})
	if err != nil {
		uploader.cleanup(ctx, srv.log(ctx))
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to persist product updates")
	}

	srv.log(ctx).Info("Products updated", slog.Int("count", len(existing)))

	return existing, nil
}

// ListProducts returns the catalog, newest first.
func (srv *catalogService) ListProducts(ctx context.Context, query usecase.ProductQuery) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductFilter{
		Category:      query.Category,
		AvailableOnly: query.AvailableOnly,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return srv.findProduct(ctx, id)
}

// GetProductBySlug returns one product by its permanent slug.
func (srv *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return product, nil
}

// SetAvailability flips whether the product can be added to carts.
func (srv *catalogService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*entity.Product, error) {
	if err := srv.productRepo.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to set availability")
	}

	return srv.findProduct(ctx, id)
}

// DeleteProduct removes a product. Orders and carts keep their snapshots.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// ExportProducts writes the whole catalog as a workbook.
func (srv *catalogService) ExportProducts(ctx context.Context, w io.Writer) (string, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return "", errors.Wrap(err, "failed to list products for export")
	}

	if err := srv.exporter.Export(w, products); err != nil {
		return "", errors.Wrap(err, "failed to export products")
	}

	return srv.exporter.ContentType(), nil
}

func (srv *catalogService) findProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// batchUploader uploads images one at a time and remembers what it stored
// so a failed batch can be removed from the bucket again.
type batchUploader struct {
	store    service.ImageStore
	uploaded []string
}

// uploadAll returns the draft's final image list: linked URLs first, then uploads.
func (u *batchUploader) uploadAll(ctx context.Context, draft *usecase.ProductDraft) ([]string, error) {
	urls := append([]string{}, draft.ImageURLs...)
	for _, upload := range draft.Uploads {
		stored, err := u.store.Upload(ctx, upload.Filename, upload.ContentType, upload.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to upload %s", upload.Filename)
		}
		u.uploaded = append(u.uploaded, stored.Key)
		urls = append(urls, stored.URL)
	}

	return urls, nil
}

func (u *batchUploader) cleanup(ctx context.Context, logger *slog.Logger) {
	for _, key := range u.uploaded {
		if err := u.store.Delete(context.WithoutCancel(ctx), key); err != nil {
			logger.Warn("Failed to delete orphaned image", slog.String("key", key), slog.Any("error", err))
		}
	}
	u.uploaded = nil
}
