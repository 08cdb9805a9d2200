package handler

import (
	"io"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PaymentHandler serves the payment bridge.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(paymentUC usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// createPaymentRequest carries the amount to charge and the order to create.
// userInfo is used when the order itself has no contact.
type createPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	UserInfo  entity.Contact  `json:"userInfo"`
	OrderData *orderRequest   `json:"orderData"`
}

type createPaymentResponse struct {
	IsSuccess  bool      `json:"isSuccess"`
	PaymentURL string    `json:"paymentUrl"`
	OrderID    uuid.UUID `json:"orderId"`
	InvoiceID  string    `json:"invoiceId"`
}

type paymentStatusResponse struct {
	OrderID       uuid.UUID            `json:"orderId"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	OrderStatus   entity.OrderStatus   `json:"orderStatus"`
}

// Create opens a hosted checkout for a new order.
func (h *PaymentHandler) Create(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	input := &usecase.CreatePaymentInput{Amount: req.Amount}
	if req.OrderData != nil {
		input.Order = req.OrderData.draft()
		if input.Order.Contact == (entity.Contact{}) {
			input.Order.Contact = req.UserInfo
		}
	}

	output, err := h.paymentUC.CreatePayment(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, createPaymentResponse{
		IsSuccess:  output.IsSuccess,
		PaymentURL: output.PaymentURL,
		OrderID:    output.OrderID,
		InvoiceID:  output.InvoiceID,
	})
}

// Webhook applies a gateway notification. The raw body is needed for the signature.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "failed to read webhook body")
	}

	signature := c.Request().Header.Get(constants.PaymentSignatureHeader)
	if err := h.paymentUC.HandleWebhook(c.Request().Context(), signature, body); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"received": true})
}

// Status returns the payment and order status of an order.
func (h *PaymentHandler) Status(c echo.Context) error {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return err
	}

	status, err := h.paymentUC.CheckStatus(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, paymentStatusResponse{
		OrderID:       status.OrderID,
		PaymentStatus: status.PaymentStatus,
		OrderStatus:   status.OrderStatus,
	})
}

// Callback is where the gateway sends the shopper back after checkout.
func (h *PaymentHandler) Callback(c echo.Context) error {
	target, err := h.paymentUC.HandleCallback(c.Request().Context(), c.QueryParam("paymentId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, target)
}
