package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"
	"mime/multipart"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// productsFormField carries the JSON drafts of a multipart request. Files in
// "images" belong to the first draft, files in "images[i]" to draft i.
const productsFormField = "products"

// ProductHandler serves the catalog.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(catalogUC usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC}
}

type productRequest struct {
	ID              string               `json:"id,omitempty"`
	Name            entity.LocalizedText `json:"name"`
	Category        entity.LocalizedText `json:"category"`
	Description     entity.LocalizedText `json:"description"`
	ActualPrice     decimal.Decimal      `json:"actualPrice"`
	DiscountedPrice *decimal.Decimal     `json:"discountedPrice"`
	IsAvailable     *bool                `json:"isAvailable"`
	Images          []string             `json:"images"`
}

func (r *productRequest) draft() usecase.ProductDraft {
	return usecase.ProductDraft{
		Name:            r.Name,
		Category:        r.Category,
		Description:     r.Description,
		ActualPrice:     r.ActualPrice,
		DiscountedPrice: r.DiscountedPrice,
		IsAvailable:     r.IsAvailable,
		ImageURLs:       r.Images,
	}
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

// List returns the catalog. Query: category, available=true.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context(), usecase.ProductQuery{
		Category:      c.QueryParam("category"),
		AvailableOnly: c.QueryParam("available") == "true",
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products)
}

// Get returns one product by id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetBySlug returns one product by slug.
func (h *ProductHandler) GetBySlug(c echo.Context) error {
	product, err := h.catalogUC.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Create adds one or many products from JSON or multipart.
func (h *ProductHandler) Create(c echo.Context) error {
	requests, uploads, err := readProductRequests(c)
	if err != nil {
		return err
	}

	drafts := make([]*usecase.ProductDraft, len(requests))
	for i := range requests {
		draft := requests[i].draft()
		draft.Uploads = uploads[i]
		drafts[i] = &draft
	}

	products, err := h.catalogUC.CreateProducts(c.Request().Context(), drafts)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, products)
}

// Update replaces one or many products; every entry needs its id.
func (h *ProductHandler) Update(c echo.Context) error {
	requests, uploads, err := readProductRequests(c)
	if err != nil {
		return err
	}

	updates := make([]*usecase.ProductUpdate, len(requests))
	for i := range requests {
		id, err := uuid.Parse(requests[i].ID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("product " + strconv.Itoa(i+1) + ": id is required")
		}

		update := &usecase.ProductUpdate{ID: id, ProductDraft: requests[i].draft()}
		update.Uploads = uploads[i]
		updates[i] = update
	}

	products, err := h.catalogUC.UpdateProducts(c.Request().Context(), updates)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products)
}

// SetAvailability toggles whether a product can be ordered.
func (h *ProductHandler) SetAvailability(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req availabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.SetAvailability(c.Request().Context(), id, *req.IsAvailable)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Delete removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Export downloads the catalog as a spreadsheet.
func (h *ProductHandler) Export(c echo.Context) error {
	var buf bytes.Buffer
	contentType, err := h.catalogUC.ExportProducts(c.Request().Context(), &buf)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.xlsx"`)

	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}

// readProductRequests accepts a single object or an array, as a JSON body or
// as the products field of a multipart form.
func readProductRequests(c echo.Context) ([]productRequest, [][]usecase.ImageUpload, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return readMultipartProducts(c)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read request body")
	}

	requests, err := decodeProductRequests(body)
	if err != nil {
		return nil, nil, err
	}

	return requests, make([][]usecase.ImageUpload, len(requests)), nil
}

func readMultipartProducts(c echo.Context) ([]productRequest, [][]usecase.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart form")
	}

	values := form.Value[productsFormField]
	if len(values) == 0 {
		return nil, nil, domainerrors.ErrInvalidProduct.WithDetails("no products provided")
	}

	requests, err := decodeProductRequests([]byte(values[0]))
	if err != nil {
		return nil, nil, err
	}

	uploads := make([][]usecase.ImageUpload, len(requests))
	for _, field := range slices.Sorted(maps.Keys(form.File)) {
		index, ok := imageFieldIndex(field)
		if !ok || index >= len(requests) {
			continue
		}
		for _, fh := range form.File[field] {
			upload, err := readUpload(fh)
			if err != nil {
				return nil, nil, err
			}
			uploads[index] = append(uploads[index], upload)
		}
	}

	return requests, uploads, nil
}

func decodeProductRequests(body []byte) ([]productRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, domainerrors.ErrInvalidProduct.WithDetails("no products provided")
	}

	if body[0] == '[' {
		var requests []productRequest
		if err := json.Unmarshal(body, &requests); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("malformed products")
		}

		return requests, nil
	}

	var request productRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed product")
	}

	return []productRequest{request}, nil
}

// imageFieldIndex maps "images" to 0 and "images[i]" to i.
func imageFieldIndex(field string) (int, bool) {
	if field == "images" {
		return 0, true
	}

	inner, ok := strings.CutPrefix(field, "images[")
	if !ok {
		return 0, false
	}
	inner, ok = strings.CutSuffix(inner, "]")
	if !ok {
		return 0, false
	}

	index, err := strconv.Atoi(inner)
	if err != nil || index < 0 {
		return 0, false
	}

	return index, true
}

func readUpload(fh *multipart.FileHeader) (usecase.ImageUpload, error) {
	file, err := fh.Open()
	if err != nil {
		return usecase.ImageUpload{}, errors.Wrapf(err, "failed to open %s", fh.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return usecase.ImageUpload{}, errors.Wrapf(err, "failed to read %s", fh.Filename)
	}

	return usecase.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
