package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PromoHandler serves promo codes.
type PromoHandler struct {
	promoUC usecase.PromoUsecase
}

// NewPromoHandler is the constructor for PromoHandler.
func NewPromoHandler(promoUC usecase.PromoUsecase) *PromoHandler {
	return &PromoHandler{promoUC: promoUC}
}

type promoRequest struct {
	Code            string    `json:"code" validate:"required"`
	DiscountPercent int       `json:"discountPercent" validate:"required"`
	MaxUses         *int      `json:"maxUses"`
	ExpiresAt       time.Time `json:"expiresAt" validate:"required"`
	IsActive        *bool     `json:"isActive"`
}

func (r *promoRequest) input() *usecase.PromoInput {
	return &usecase.PromoInput{
		Code:            r.Code,
		DiscountPercent: r.DiscountPercent,
		MaxUses:         r.MaxUses,
		ExpiresAt:       r.ExpiresAt,
		IsActive:        r.IsActive,
	}
}

type validatePromoRequest struct {
	Code string `json:"code"`
}

type promoValidationResponse struct {
	Success         bool   `json:"success"`
	Code            string `json:"code,omitempty"`
	DiscountPercent int    `json:"discountPercent,omitempty"`
	Message         string `json:"message,omitempty"`
}

// Validate checks a code. Rejections are a 200 with success=false.
func (h *PromoHandler) Validate(c echo.Context) error {
	var req validatePromoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.promoUC.Validate(c.Request().Context(), req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promoValidationResponse{
		Success:         result.Success,
		Code:            result.Code,
		DiscountPercent: result.DiscountPercent,
		Message:         result.Message,
	})
}

// List returns every promo.
func (h *PromoHandler) List(c echo.Context) error {
	promos, err := h.promoUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promos)
}

// Create adds a promo.
func (h *PromoHandler) Create(c echo.Context) error {
	var req promoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	promo, err := h.promoUC.Create(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promo)
}

// Update replaces a promo's terms.
func (h *PromoHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req promoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	promo, err := h.promoUC.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promo)
}

// Delete deactivates a promo.
func (h *PromoHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.promoUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
