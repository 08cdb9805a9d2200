package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CityHandler serves the delivery price table.
type CityHandler struct {
	cityUC usecase.CityAreaUsecase
}

// NewCityHandler is the constructor for CityHandler.
func NewCityHandler(cityUC usecase.CityAreaUsecase) *CityHandler {
	return &CityHandler{cityUC: cityUC}
}

// areaRequest defaults isActive to true.
type areaRequest struct {
	Name          string          `json:"name" validate:"required"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	IsActive      *bool           `json:"isActive"`
}

type createCityRequest struct {
	City  string        `json:"city" validate:"required"`
	Areas []areaRequest `json:"areas" validate:"dive"`
}

type updateCityRequest struct {
	Areas    []areaRequest `json:"areas" validate:"dive"`
	IsActive *bool         `json:"isActive"`
}

type shippingPriceResponse struct {
	City          string          `json:"city"`
	Area          string          `json:"area"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
}

func toAreas(requests []areaRequest) []entity.Area {
	if requests == nil {
		return nil
	}

	areas := make([]entity.Area, len(requests))
	for i, r := range requests {
		areas[i] = entity.Area{
			Name:          r.Name,
			ShippingPrice: r.ShippingPrice,
			IsActive:      r.IsActive == nil || *r.IsActive,
		}
	}

	return areas
}

// List returns active cities; includeInactive=true adds the rest.
func (h *CityHandler) List(c echo.Context) error {
	cities, err := h.cityUC.List(c.Request().Context(), c.QueryParam("includeInactive") == "true")
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities)
}

// Get returns one city.
func (h *CityHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	city, err := h.cityUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, city)
}

// ShippingPrice returns the delivery fee of an area.
func (h *CityHandler) ShippingPrice(c echo.Context) error {
	city, area := c.Param("city"), c.Param("area")

	price, err := h.cityUC.ShippingPrice(c.Request().Context(), city, area)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shippingPriceResponse{City: city, Area: area, ShippingPrice: price})
}

// Create adds a city.
func (h *CityHandler) Create(c echo.Context) error {
	var req createCityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	city, err := h.cityUC.Create(c.Request().Context(), &usecase.CityAreaInput{City: req.City, Areas: toAreas(req.Areas)})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, city)
}

// Update replaces a city's areas.
func (h *CityHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateCityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	city, err := h.cityUC.Update(c.Request().Context(), id, &usecase.CityAreaUpdate{Areas: toAreas(req.Areas), IsActive: req.IsActive})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, city)
}

// Delete deactivates a city.
func (h *CityHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.cityUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
