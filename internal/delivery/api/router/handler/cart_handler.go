package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the caller's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(cartUC usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// Get returns the cart.
func (h *CartHandler) Get(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), caller.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds a product, increasing the quantity of an existing line.
func (h *CartHandler) AddItem(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), caller.UserID, req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateItem sets the quantity of a line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateItem(c.Request().Context(), caller.UserID, productID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem deletes a line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), caller.UserID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.Clear(c.Request().Context(), caller.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}
