package impl

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     *catalogService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	imageStore  *mockSvc.MockImageStore
	exporter    *mockSvc.MockProductExporter
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		imageStore:  mockSvc.NewMockImageStore(t),
		exporter:    mockSvc.NewMockProductExporter(t),
	}
	fx.service = NewCatalogService(CatalogServiceParams{
		TxManager:   fx.txManager,
		ProductRepo: fx.productRepo,
		ImageStore:  fx.imageStore,
		Exporter:    fx.exporter,
		Logger:      newDiscardLogger(),
	}).(*catalogService)
	fx.service.now = func() time.Time { return time.UnixMilli(1760000000000) }

	return fx
}

func cakeDraft(uploads ...usecase.ImageUpload) *usecase.ProductDraft {
	return &usecase.ProductDraft{
		Name:        entity.LocalizedText{EN: "Chocolate Cake", AR: "كيكة شوكولاتة"},
		Category:    entity.LocalizedText{EN: "Cakes", AR: "كيك"},
		ActualPrice: decimal.RequireFromString("8.500"),
		Uploads:     uploads,
	}
}

func TestCatalogService_CreateProducts_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.imageStore.EXPECT().
		Upload(ctx, "a.png", "image/png", []byte("a")).
		Return(&service.StoredImage{Key: "products/a.png", URL: "https://cdn/a.png"}, nil)
	fx.imageStore.EXPECT().
		Upload(ctx, "b.png", "image/png", []byte("b")).
		Return(&service.StoredImage{Key: "products/b.png", URL: "https://cdn/b.png"}, nil)

	txProductRepo := mockRepo.NewMockProductRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProductRepository().Return(txProductRepo)
	txProductRepo.EXPECT().CreateBatch(ctx, mock.AnythingOfType("[]*entity.Product")).Return(nil)

	second := cakeDraft(usecase.ImageUpload{Filename: "b.png", ContentType: "image/png", Data: []byte("b")})
	unavailable := false
	second.IsAvailable = &unavailable

	products, err := fx.service.CreateProducts(ctx, []*usecase.ProductDraft{
		cakeDraft(usecase.ImageUpload{Filename: "a.png", ContentType: "image/png", Data: []byte("a")}),
		second,
	})
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "chocolate-cake-1760000000000-0", products[0].Slug)
	assert.Equal(t, "chocolate-cake-1760000000000-1", products[1].Slug)
	assert.Equal(t, "https://cdn/a.png", products[0].Image)
	assert.Equal(t, []string{"https://cdn/b.png"}, products[1].Images)
	assert.True(t, products[0].IsAvailable)
	assert.False(t, products[1].IsAvailable)
}

func TestCatalogService_CreateProducts_UploadFailureCleansUp(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.imageStore.EXPECT().
		Upload(ctx, "a.png", mock.Anything, mock.Anything).
		Return(&service.StoredImage{Key: "products/a.png", URL: "https://cdn/a.png"}, nil)
	fx.imageStore.EXPECT().
		Upload(ctx, "b.png", mock.Anything, mock.Anything).
		Return(&service.StoredImage{Key: "products/b.png", URL: "https://cdn/b.png"}, nil)
	fx.imageStore.EXPECT().
		Upload(ctx, "c.png", mock.Anything, mock.Anything).
		Return(nil, errors.New("bucket unavailable"))
	fx.imageStore.EXPECT().Delete(mock.Anything, "products/a.png").Return(nil).Once()
	fx.imageStore.EXPECT().Delete(mock.Anything, "products/b.png").Return(errors.New("already gone")).Once()

	_, err := fx.service.CreateProducts(ctx, []*usecase.ProductDraft{
		cakeDraft(usecase.ImageUpload{Filename: "a.png"}, usecase.ImageUpload{Filename: "b.png"}),
		cakeDraft(usecase.ImageUpload{Filename: "c.png"}),
	})

	require.ErrorIs(t, err, domainerrors.ErrImageUploadFailed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateProducts_PersistFailureCleansUp(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.imageStore.EXPECT().
		Upload(ctx, "a.png", mock.Anything, mock.Anything).
		Return(&service.StoredImage{Key: "products/a.png", URL: "https://cdn/a.png"}, nil)
	fx.imageStore.EXPECT().Delete(mock.Anything, "products/a.png").Return(nil)

	txProductRepo := mockRepo.NewMockProductRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProductRepository().Return(txProductRepo)
	txProductRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := fx.service.CreateProducts(ctx, []*usecase.ProductDraft{cakeDraft(usecase.ImageUpload{Filename: "a.png"})})

	require.Error(t, err)
}

func TestCatalogService_CreateProducts_Validation(t *testing.T) {
	discount := decimal.RequireFromString("9")

	tests := []struct {
		name    string
		mutate  func(d *usecase.ProductDraft)
		wantErr error
	}{
		{name: "missing arabic name", mutate: func(d *usecase.ProductDraft) { d.Name.AR = "" }, wantErr: domainerrors.ErrInvalidProduct},
		{name: "missing category", mutate: func(d *usecase.ProductDraft) { d.Category = entity.LocalizedText{} }, wantErr: domainerrors.ErrInvalidProduct},
		{name: "zero price", mutate: func(d *usecase.ProductDraft) { d.ActualPrice = decimal.Zero }, wantErr: domainerrors.ErrInvalidProduct},
		{name: "discount above price", mutate: func(d *usecase.ProductDraft) { d.DiscountedPrice = &discount }, wantErr: domainerrors.ErrInvalidDiscountPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			draft := cakeDraft()
			tt.mutate(draft)

			_, err := fx.service.CreateProducts(context.Background(), []*usecase.ProductDraft{draft})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_UpdateProducts_KeepsSlug(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	existing := &entity.Product{
		ID:     uuid.New(),
		Slug:   "chocolate-cake-1-0",
		Images: []string{"https://cdn/old.png"},
		Image:  "https://cdn/old.png",
	}

	fx.productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	txProductRepo := mockRepo.NewMockProductRepository(t)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProductRepository().Return(txProductRepo)
	txProductRepo.EXPECT().Update(ctx, existing).Return(nil)

	draft := cakeDraft()
	draft.Name.EN = "Dark Chocolate Cake"
	updated, err := fx.service.UpdateProducts(ctx, []*usecase.ProductUpdate{{ID: existing.ID, ProductDraft: *draft}})
	require.NoError(t, err)

	assert.Equal(t, "chocolate-cake-1-0", updated[0].Slug)
	assert.Equal(t, "Dark Chocolate Cake", updated[0].Name.EN)
	assert.Equal(t, "https://cdn/old.png", updated[0].Image)
}

func TestCatalogService_UpdateProducts_UnknownProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	id := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProducts(context.Background(), []*usecase.ProductUpdate{{ID: id, ProductDraft: *cakeDraft()}})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetProductBySlug_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.productRepo.EXPECT().FindBySlug(mock.Anything, "nope").Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProductBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_SetAvailability(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().SetAvailability(ctx, id, false).Return(nil)
	fx.productRepo.EXPECT().FindByID(ctx, id).Return(&entity.Product{ID: id, IsAvailable: false}, nil)

	product, err := fx.service.SetAvailability(ctx, id, false)
	require.NoError(t, err)
	assert.False(t, product.IsAvailable)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	id := uuid.New()

	fx.productRepo.EXPECT().Delete(mock.Anything, id).Return(repository.ErrProductNotFound)

	assert.ErrorIs(t, fx.service.DeleteProduct(context.Background(), id), domainerrors.ErrProductNotFound)
}

func TestCatalogService_ExportProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New()}}

	fx.productRepo.EXPECT().List(ctx, repository.ProductFilter{}).Return(products, nil)
	fx.exporter.EXPECT().
		Export(mock.Anything, products).
		RunAndReturn(func(w io.Writer, _ []*entity.Product) error {
			_, err := w.Write([]byte("xlsx"))

			return err
		})
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	var buf bytes.Buffer
	contentType, err := fx.service.ExportProducts(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", buf.String())
	assert.Contains(t, contentType, "spreadsheetml")
}
