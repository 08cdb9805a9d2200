package myfatoorah

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{
		MyFatoorah: &config.MyFatoorahConfig{
			BaseURL:       server.URL,
			APIKey:        "api-key",
			WebhookSecret: testWebhookSecret,
			CallbackURL:   "https://shop.example.com/api/payments/callback",
			ErrorURL:      "https://shop.example.com/api/payments/callback",
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresWebhookSecret(t *testing.T) {
	_, err := NewClient(&config.Config{MyFatoorah: &config.MyFatoorahConfig{APIKey: "k"}}, slog.Default())

	assert.Error(t, err)
}

func TestCreatePayment_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/SendPayment", r.URL.Path)
		assert.Equal(t, "Bearer api-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "LNK", body["NotificationOption"])
		assert.Equal(t, "order-1", body["CustomerReference"])
		assert.Equal(t, "KWD", body["DisplayCurrencyIso"])
		assert.InDelta(t, 12.5, body["InvoiceValue"], 0.0001)

		_, _ = w.Write([]byte(`{"IsSuccess":true,"Message":"Invoice Created Successfully!","Data":{"InvoiceId":4242,"InvoiceURL":"https://pay.example.com/ie/4242","CustomerReference":"order-1"}}`))
	})

	session, err := client.CreatePayment(context.Background(), &service.PaymentRequest{
		Amount:            decimal.RequireFromString("12.5"),
		CustomerName:      "Sara",
		CustomerReference: "order-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "4242", session.InvoiceID)
	assert.Equal(t, "https://pay.example.com/ie/4242", session.PaymentURL)
	assert.Equal(t, "order-1", session.CustomerReference)
}

func TestCreatePayment_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"IsSuccess":false,"Message":"Invalid data","ValidationErrors":[{"Name":"CustomerMobile","Error":"Invalid mobile"}],"Data":null}`))
	})

	_, err := client.CreatePayment(context.Background(), &service.PaymentRequest{Amount: decimal.NewFromInt(5)})

	var rejected *service.GatewayRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Invalid data (CustomerMobile: Invalid mobile)", rejected.Message)
}

func TestCreatePayment_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CreatePayment(context.Background(), &service.PaymentRequest{Amount: decimal.NewFromInt(5)})

	require.Error(t, err)
	var rejected *service.GatewayRejectedError
	assert.False(t, errors.As(err, &rejected))
}

func TestGetPaymentStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/GetPaymentStatus", r.URL.Path)

		var body paymentStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CustomerReference", body.KeyType)

		_, _ = w.Write([]byte(`{"IsSuccess":true,"Data":{"InvoiceId":77,"InvoiceStatus":"Paid","CustomerReference":"order-2","InvoiceTransactions":[{"PaymentId":"p-1","TransactionStatus":"Failed"},{"PaymentId":"p-2","TransactionStatus":"Succss"}]}}`))
	})

	status, err := client.GetPaymentStatus(context.Background(), "order-2", service.KeyCustomerReference)
	require.NoError(t, err)
	assert.Equal(t, service.InvoicePaid, status.State)
	assert.Equal(t, "77", status.InvoiceID)
	assert.Equal(t, "p-2", status.TransactionID)
}

func TestInvoiceState(t *testing.T) {
	tests := []struct {
		invoice     string
		transaction string
		want        service.InvoiceState
	}{
		{invoice: "PAID", want: service.InvoicePaid},
		{invoice: "Paid", want: service.InvoicePaid},
		{invoice: "EXPIRED", want: service.InvoiceFailed},
		{invoice: "Canceled", want: service.InvoiceFailed},
		{invoice: "Pending", want: service.InvoicePending},
		{transaction: "SUCCESS", want: service.InvoicePaid},
		{transaction: "FAILED", want: service.InvoiceFailed},
		{invoice: "Refunded", want: service.InvoiceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.invoice+"/"+tt.transaction, func(t *testing.T) {
			assert.Equal(t, tt.want, invoiceState(tt.invoice, tt.transaction))
		})
	}
}
