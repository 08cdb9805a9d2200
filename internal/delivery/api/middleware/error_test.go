package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "validation error keeps details",
			err:         domainerrors.ErrInvalidLineItem.WithDetails("line 2"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_LINE_ITEM",
			wantMessage: "invalid line item",
			wantDetails: "line 2",
		},
		{
			name:        "wrapped app error",
			err:         errors.Wrap(domainerrors.ErrOrderNotFound, "lookup"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "ORDER_NOT_FOUND",
			wantMessage: "order not found",
		},
		{
			name:        "forbidden hides details",
			err:         domainerrors.ErrForbidden.WithDetails("needs admin"),
			wantStatus:  http.StatusForbidden,
			wantCode:    "FORBIDDEN",
			wantMessage: "insufficient role",
		},
		{
			name:        "gateway rejection message is verbatim",
			err:         domainerrors.ErrPaymentRejected.WithMessage("Invalid customer mobile"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PAYMENT_REJECTED",
			wantMessage: "Invalid customer mobile",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error is generic",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
