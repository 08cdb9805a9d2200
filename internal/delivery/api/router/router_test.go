package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/realtime"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type routerFixtures struct {
	echo       *echo.Echo
	tokens     *mockSvc.MockTokenService
	authUC     *mockUC.MockAuthUsecase
	catalogUC  *mockUC.MockCatalogUsecase
	cartUC     *mockUC.MockCartUsecase
	orderUC    *mockUC.MockOrderUsecase
	paymentUC  *mockUC.MockPaymentUsecase
	cityUC     *mockUC.MockCityAreaUsecase
	promoUC    *mockUC.MockPromoUsecase
	scheduleUC *mockUC.MockScheduleUsecase
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func createTestRouter(t *testing.T) *routerFixtures {
	t.Helper()

	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			MaxRequestBodySize: "10MB",
			AllowedOrigins:     []string{"https://shop.example"},
		},
		Auth: &config.AuthConfig{TokenTTL: 24 * time.Hour},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := &routerFixtures{
		tokens:     mockSvc.NewMockTokenService(t),
		authUC:     mockUC.NewMockAuthUsecase(t),
		catalogUC:  mockUC.NewMockCatalogUsecase(t),
		cartUC:     mockUC.NewMockCartUsecase(t),
		orderUC:    mockUC.NewMockOrderUsecase(t),
		paymentUC:  mockUC.NewMockPaymentUsecase(t),
		cityUC:     mockUC.NewMockCityAreaUsecase(t),
		promoUC:    mockUC.NewMockPromoUsecase(t),
		scheduleUC: mockUC.NewMockScheduleUsecase(t),
	}

	hub := realtime.NewHub(realtime.Params{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})

	r := router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC, Config: cfg}),
		ProductHandler:  handler.NewProductHandler(fx.catalogUC),
		CartHandler:     handler.NewCartHandler(fx.cartUC),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: fx.orderUC, Hub: hub}),
		PaymentHandler:  handler.NewPaymentHandler(fx.paymentUC),
		CityHandler:     handler.NewCityHandler(fx.cityUC),
		PromoHandler:    handler.NewPromoHandler(fx.promoUC),
		ScheduleHandler: handler.NewScheduleHandler(fx.scheduleUC),
		AuthMiddleware:  middleware.NewAuthMiddleware(fx.tokens),
	})

	fx.echo = api.NewEcho(cfg, logger)
	r.RegisterRoutes(fx.echo)

	return fx
}

// signIn makes the token service accept a bearer token for role and returns the header value.
func (fx *routerFixtures) signIn(role entity.Role) (string, uuid.UUID) {
	userID := uuid.New()
	token := "token-" + string(role)
	fx.tokens.EXPECT().Validate(token).Return(&service.Claims{UserID: userID, Role: role}, nil).Maybe()

	return "Bearer " + token, userID
}

func (fx *routerFixtures) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var body envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
	}

	return rec, body
}

func jsonRequest(method, target, body, authorization string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return req
}

func TestRoutes_AccessGate(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		role       entity.Role
		setup      func(fx *routerFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "orders need a credential",
			method:     http.MethodGet,
			target:     "/api/orders",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name:       "shopper cannot reach the order desk",
			method:     http.MethodGet,
			target:     "/api/admin/orders",
			role:       entity.RoleUser,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "manager cannot delete products",
			method:     http.MethodDelete,
			target:     "/api/products/" + uuid.NewString(),
			role:       entity.RoleManager,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "manager cannot change roles",
			method:     http.MethodPatch,
			target:     "/api/admin/users/" + uuid.NewString() + "/role",
			role:       entity.RoleManager,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:   "manager lists every order",
			method: http.MethodGet,
			target: "/api/admin/orders?status=pending&limit=10",
			role:   entity.RoleManager,
			setup: func(fx *routerFixtures) {
				fx.orderUC.EXPECT().
					ListAllOrders(mock.Anything, usecase.OrderQuery{Status: entity.OrderStatusPending, Limit: 10}).
					Return([]*entity.Order{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "catalog is public",
			method: http.MethodGet,
			target: "/api/products?available=true",
			setup: func(fx *routerFixtures) {
				fx.catalogUC.EXPECT().
					ListProducts(mock.Anything, usecase.ProductQuery{AvailableOnly: true}).
					Return([]*entity.Product{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "admin deletes a product",
			method: http.MethodDelete,
			target: "/api/products/00000000-0000-0000-0000-000000000001",
			role:   entity.RoleAdmin,
			setup: func(fx *routerFixtures) {
				fx.catalogUC.EXPECT().DeleteProduct(mock.Anything, uuid.MustParse("00000000-0000-0000-0000-000000000001")).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouter(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			authorization := ""
			if tt.role != "" {
				authorization, _ = fx.signIn(tt.role)
			}

			rec, body := fx.do(jsonRequest(tt.method, tt.target, "", authorization))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestRoutes_CookieSession(t *testing.T) {
	fx := createTestRouter(t)
	userID := uuid.New()
	fx.tokens.EXPECT().Validate("cookie-token").Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)
	fx.authUC.EXPECT().Me(mock.Anything, userID).Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: "cookie-token"})

	rec, _ := fx.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_LoginSetsSessionCookie(t *testing.T) {
	fx := createTestRouter(t)
	expiresAt := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	fx.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "sara@example.com", Password: "secret-pass"}).
		Return(&usecase.AuthOutput{Token: "signed", ExpiresAt: expiresAt, User: &entity.User{Email: "sara@example.com"}}, nil)

	rec, body := fx.do(jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"sara@example.com","password":"secret-pass"}`, ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"token":"signed"`)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.AuthCookieName, cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuth_RegisterRejectsInvalidBody(t *testing.T) {
	fx := createTestRouter(t)

	rec, body := fx.do(jsonRequest(http.MethodPost, "/api/auth/register", `{"firstName":"Sara","lastName":"Ali","email":"nope","password":"short"}`, ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "email must be a valid email; password must be at least 8", body.Error.Details)
}

func TestOrders_CreateMapsRequest(t *testing.T) {
	fx := createTestRouter(t)
	authorization, userID := fx.signIn(entity.RoleUser)
	productID := uuid.New()

	fx.orderUC.EXPECT().
		CreateOrder(mock.Anything, &entity.Identity{UserID: userID, Role: entity.RoleUser}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.Identity, draft *entity.OrderDraft) (*entity.Order, error) {
			require.Len(t, draft.LineItems, 1)
			assert.Equal(t, productID, draft.LineItems[0].ProductID)
			assert.Equal(t, 2, draft.LineItems[0].Quantity)
			assert.Equal(t, "pickup", draft.FulfillmentType)
			assert.Equal(t, entity.TimeSlotMorning, draft.Schedule.TimeSlot)
			assert.Equal(t, "SAVE10", draft.PromoCode)

			return &entity.Order{ID: uuid.New(), OwnerID: userID, Status: entity.OrderStatusPending}, nil
		})

	payload := `{
		"orderType": "pickup",
		"products": [{"product": "` + productID.String() + `", "quantity": 2, "price": "4.5"}],
		"schedule": {"date": "2026-10-18", "timeSlot": "10:00-13:00"},
		"userInfo": {"name": "Sara", "phone": "+96550000000", "email": "sara@example.com"},
		"totalAmount": "9",
		"promoCode": "SAVE10"
	}`
	rec, _ := fx.do(jsonRequest(http.MethodPost, "/api/orders", payload, authorization))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrders_CreateReportsDomainMessage(t *testing.T) {
	fx := createTestRouter(t)
	authorization, _ := fx.signIn(entity.RoleUser)
	fx.orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrScheduleRequired)

	rec, body := fx.do(jsonRequest(http.MethodPost, "/api/orders", `{"orderType":"pickup"}`, authorization))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "SCHEDULE_REQUIRED", body.Error.Code)
	assert.Equal(t, "schedule time required", body.Error.Message)
}

func TestOrders_PickupQRIsPNG(t *testing.T) {
	fx := createTestRouter(t)
	authorization, _ := fx.signIn(entity.RoleUser)
	orderID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	fx.orderUC.EXPECT().PickupQR(mock.Anything, mock.Anything, orderID).Return(png, nil)

	rec, _ := fx.do(jsonRequest(http.MethodGet, "/api/orders/"+orderID.String()+"/qr", "", authorization))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestPayments_WebhookPassesRawBodyAndSignature(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "accepted", wantStatus: http.StatusOK},
		{name: "bad signature", err: domainerrors.ErrInvalidSignature, wantStatus: http.StatusUnauthorized},
		{name: "storage failure", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouter(t)
			raw := `{"EventType":1,"Data":{"InvoiceId":42,"TransactionStatus":"SUCCESS"}}`
			fx.paymentUC.EXPECT().HandleWebhook(mock.Anything, "sig-value", []byte(raw)).Return(tt.err)

			req := jsonRequest(http.MethodPost, "/api/payments/webhook", raw, "")
			req.Header.Set(constants.PaymentSignatureHeader, "sig-value")
			rec, body := fx.do(req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.JSONEq(t, `{"received":true}`, string(body.Data))
			}
		})
	}
}

func TestPayments_CallbackRedirects(t *testing.T) {
	fx := createTestRouter(t)
	target := "https://shop.example/payment/success?orderId=" + uuid.NewString()
	fx.paymentUC.EXPECT().HandleCallback(mock.Anything, "pay-1").Return(target, nil)

	rec, _ := fx.do(httptest.NewRequest(http.MethodGet, "/api/payments/callback?paymentId=pay-1", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, target, rec.Header().Get(echo.HeaderLocation))
}

func TestPromos_ValidateRejectionIsOK(t *testing.T) {
	fx := createTestRouter(t)
	fx.promoUC.EXPECT().
		Validate(mock.Anything, "OLD").
		Return(&usecase.PromoValidation{Success: false, Message: "promo code expired"}, nil)

	rec, body := fx.do(jsonRequest(http.MethodPost, "/api/promos/validate", `{"code":"OLD"}`, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"promo code expired"}`, string(body.Data))
}

func TestProducts_CreateFromMultipart(t *testing.T) {
	fx := createTestRouter(t)
	authorization, _ := fx.signIn(entity.RoleManager)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("products", `[
		{"name":{"en":"Cake","ar":"كيكة"},"category":{"en":"Cakes","ar":"كيك"},"actualPrice":"12"},
		{"name":{"en":"Tart","ar":"تارت"},"category":{"en":"Tarts","ar":"تارت"},"actualPrice":"6"}
	]`))
	first, err := form.CreateFormFile("images", "cake.png")
	require.NoError(t, err)
	_, _ = first.Write([]byte("cake-bytes"))
	second, err := form.CreateFormFile("images[1]", "tart.png")
	require.NoError(t, err)
	_, _ = second.Write([]byte("tart-bytes"))
	stray, err := form.CreateFormFile("images[7]", "stray.png")
	require.NoError(t, err)
	_, _ = stray.Write([]byte("ignored"))
	require.NoError(t, form.Close())

	fx.catalogUC.EXPECT().
		CreateProducts(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, drafts []*usecase.ProductDraft) ([]*entity.Product, error) {
			require.Len(t, drafts, 2)
			assert.Equal(t, "Cake", drafts[0].Name.EN)
			require.Len(t, drafts[0].Uploads, 1)
			assert.Equal(t, "cake.png", drafts[0].Uploads[0].Filename)
			assert.Equal(t, []byte("cake-bytes"), drafts[0].Uploads[0].Data)
			require.Len(t, drafts[1].Uploads, 1)
			assert.Equal(t, "tart.png", drafts[1].Uploads[0].Filename)

			return []*entity.Product{{Name: drafts[0].Name}, {Name: drafts[1].Name}}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, authorization)
	rec, _ := fx.do(req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProducts_CreateFromSingleObject(t *testing.T) {
	fx := createTestRouter(t)
	authorization, _ := fx.signIn(entity.RoleAdmin)
	fx.catalogUC.EXPECT().
		CreateProducts(mock.Anything, mock.MatchedBy(func(drafts []*usecase.ProductDraft) bool {
			return len(drafts) == 1 && drafts[0].Name.EN == "Cake" && len(drafts[0].Uploads) == 0
		})).
		Return([]*entity.Product{{}}, nil)

	rec, _ := fx.do(jsonRequest(http.MethodPost, "/api/products",
		`{"name":{"en":"Cake","ar":"كيكة"},"category":{"en":"Cakes","ar":"كيك"},"actualPrice":"12"}`, authorization))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProducts_UpdateNeedsIDs(t *testing.T) {
	fx := createTestRouter(t)
	authorization, _ := fx.signIn(entity.RoleAdmin)

	rec, body := fx.do(jsonRequest(http.MethodPut, "/api/products", `[{"name":{"en":"Cake","ar":"كيكة"}}]`, authorization))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "product 1: id is required", body.Error.Details)
}

func TestCities_ShippingPrice(t *testing.T) {
	fx := createTestRouter(t)
	fx.cityUC.EXPECT().ShippingPrice(mock.Anything, "Capital", "Sharq").Return(decimal.RequireFromString("1.5"), nil)

	rec, body := fx.do(httptest.NewRequest(http.MethodGet, "/api/cities/Capital/areas/Sharq/price", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"city":"Capital","area":"Sharq","shippingPrice":"1.5"}`, string(body.Data))
}

func TestSchedule_CloseDayRecordsCaller(t *testing.T) {
	fx := createTestRouter(t)
	authorization, userID := fx.signIn(entity.RoleManager)
	fx.scheduleUC.EXPECT().
		CloseDay(mock.Anything, "2026-10-20", userID).
		Return(&entity.ClosedDay{Date: "2026-10-20", ClosedBy: userID}, nil)

	rec, _ := fx.do(jsonRequest(http.MethodPost, "/api/schedule/closed", `{"date":"2026-10-20"}`, authorization))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHealth(t *testing.T) {
	fx := createTestRouter(t)

	rec, body := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body.Data))
}
