package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/realtime"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Hub     *realtime.Hub
}

// OrderHandler serves shopper orders, the admin order desk and its live feed.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	feed    http.Handler
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC, feed: params.Hub}
}

// lineItemRequest is one requested line; product is the product id.
type lineItemRequest struct {
	Product  uuid.UUID       `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Message  string          `json:"message"`
}

// orderRequest is left without validate tags: the domain checks it in a
// fixed order with fixed messages.
type orderRequest struct {
	OrderType       string                  `json:"orderType"`
	Products        []lineItemRequest       `json:"products"`
	Schedule        entity.Schedule         `json:"schedule"`
	UserInfo        entity.Contact          `json:"userInfo"`
	ShippingAddress *entity.ShippingAddress `json:"shippingAddress"`
	TotalAmount     decimal.Decimal         `json:"totalAmount"`
	PromoCode       string                  `json:"promoCode"`
}

func (r *orderRequest) draft() *entity.OrderDraft {
	items := make([]entity.LineItemDraft, len(r.Products))
	for i, p := range r.Products {
		items[i] = entity.LineItemDraft{
			ProductID: p.Product,
			Quantity:  p.Quantity,
			UnitPrice: p.Price,
			Message:   p.Message,
		}
	}

	return &entity.OrderDraft{
		FulfillmentType: r.OrderType,
		Schedule:        r.Schedule,
		Contact:         r.UserInfo,
		LineItems:       items,
		ShippingAddress: r.ShippingAddress,
		TotalAmount:     r.TotalAmount,
		PromoCode:       r.PromoCode,
	}
}

type orderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// Create places an order for the caller.
func (h *OrderHandler) Create(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), caller, req.draft())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// List returns the caller's orders.
func (h *OrderHandler) List(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// Get returns one order the caller may see.
func (h *OrderHandler) Get(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// PickupQR returns the pickup code of an order as PNG.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.orderUC.PickupQR(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListAll returns every order. Query: status, limit, offset.
func (h *OrderHandler) ListAll(c echo.Context) error {
	query := usecase.OrderQuery{Status: entity.OrderStatus(c.QueryParam("status"))}

	var err error
	if query.Limit, err = intQuery(c, "limit"); err != nil {
		return err
	}
	if query.Offset, err = intQuery(c, "offset"); err != nil {
		return err
	}

	orders, err := h.orderUC.ListAllOrders(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateStatus moves an order along its lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req orderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Feed upgrades to a websocket streaming order events.
func (h *OrderHandler) Feed(c echo.Context) error {
	h.feed.ServeHTTP(c.Response(), c.Request())

	return nil
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return value, nil
}
