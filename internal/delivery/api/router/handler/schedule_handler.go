package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScheduleHandler serves closed days and the store status.
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
}

// NewScheduleHandler is the constructor for ScheduleHandler.
func NewScheduleHandler(scheduleUC usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{scheduleUC: scheduleUC}
}

type closeDayRequest struct {
	Date string `json:"date" validate:"required"`
}

// ListClosed returns the manually closed days.
func (h *ScheduleHandler) ListClosed(c echo.Context) error {
	days, err := h.scheduleUC.ListClosedDays(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, days)
}

// CloseDay closes the store on a date.
func (h *ScheduleHandler) CloseDay(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req closeDayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	day, err := h.scheduleUC.CloseDay(c.Request().Context(), req.Date, caller.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, day)
}

// Status reports whether the store is closed. Query: date, defaults to today.
func (h *ScheduleHandler) Status(c echo.Context) error {
	status, err := h.scheduleUC.StoreStatus(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status)
}
