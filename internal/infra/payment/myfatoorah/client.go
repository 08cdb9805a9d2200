// Package myfatoorah talks to the MyFatoorah REST v2 hosted-checkout API.
package myfatoorah

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL  = "https://apitest.myfatoorah.com"
	defaultTimeout  = 30 * time.Second
	defaultCurrency = "KWD"
	defaultLanguage = "en"

	maxResponseSize = 1 << 20
)

// Client implements service.PaymentGateway.
type Client struct {
	baseURL       string
	apiKey        string
	webhookSecret []byte
	currency      string
	language      string
	callbackURL   string
	errorURL      string
	httpClient    *http.Client
	logger        *slog.Logger
}

// NewClient builds the gateway from config. The webhook secret has no default.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	mf := cfg.MyFatoorah
	if mf == nil || mf.WebhookSecret == "" {
		return nil, errors.New("myFatoorah.webhookSecret must be set")
	}

	client := &Client{
		baseURL:       strings.TrimRight(mf.BaseURL, "/"),
		apiKey:        mf.APIKey,
		webhookSecret: []byte(mf.WebhookSecret),
		currency:      mf.Currency,
		language:      mf.Language,
		callbackURL:   mf.CallbackURL,
		errorURL:      mf.ErrorURL,
		httpClient:    &http.Client{Timeout: mf.Timeout},
		logger:        logger,
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}
	if client.currency == "" {
		client.currency = defaultCurrency
	}
	if client.language == "" {
		client.language = defaultLanguage
	}
	if client.httpClient.Timeout <= 0 {
		client.httpClient.Timeout = defaultTimeout
	}

	return client, nil
}

// NewPaymentGateway is the fx provider.
func NewPaymentGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	return NewClient(cfg, logger)
}

// Name identifies the gateway on orders.
func (c *Client) Name() string {
	return constants.GatewayMyFatoorah
}

type envelope[T any] struct {
	IsSuccess        bool              `json:"IsSuccess"`
	Message          string            `json:"Message"`
	ValidationErrors []validationError `json:"ValidationErrors"`
	Data             T                 `json:"Data"`
}

type validationError struct {
	Name  string `json:"Name"`
	Error string `json:"Error"`
}

type invoiceItem struct {
	ItemName  string      `json:"ItemName"`
	Quantity  int         `json:"Quantity"`
	UnitPrice json.Number `json:"UnitPrice"`
}

type sendPaymentRequest struct {
	CustomerName       string        `json:"CustomerName"`
	NotificationOption string        `json:"NotificationOption"`
	InvoiceValue       json.Number   `json:"InvoiceValue"`
	DisplayCurrencyIso string        `json:"DisplayCurrencyIso"`
	CustomerMobile     string        `json:"CustomerMobile,omitempty"`
	CustomerEmail      string        `json:"CustomerEmail,omitempty"`
	CallBackURL        string        `json:"CallBackUrl,omitempty"`
	ErrorURL           string        `json:"ErrorUrl,omitempty"`
	Language           string        `json:"Language"`
	CustomerReference  string        `json:"CustomerReference"`
	InvoiceItems       []invoiceItem `json:"InvoiceItems,omitempty"`
}

type sendPaymentData struct {
	InvoiceID         json.Number `json:"InvoiceId"`
	InvoiceURL        string      `json:"InvoiceURL"`
	CustomerReference string      `json:"CustomerReference"`
}

type paymentStatusRequest struct {
	Key     string `json:"Key"`
	KeyType string `json:"KeyType"`
}

type invoiceTransaction struct {
	PaymentID         string `json:"PaymentId"`
	TransactionStatus string `json:"TransactionStatus"`
}

type paymentStatusData struct {
	InvoiceID           json.Number          `json:"InvoiceId"`
	InvoiceStatus       string               `json:"InvoiceStatus"`
	CustomerReference   string               `json:"CustomerReference"`
	InvoiceTransactions []invoiceTransaction `json:"InvoiceTransactions"`
}

// CreatePayment sends a payment link request (NotificationOption LNK).
func (c *Client) CreatePayment(ctx context.Context, req *service.PaymentRequest) (*service.PaymentSession, error) {
	body := sendPaymentRequest{
		CustomerName:       req.CustomerName,
		NotificationOption: "LNK",
		InvoiceValue:       json.Number(req.Amount.StringFixed(3)),
		DisplayCurrencyIso: c.currency,
		CustomerMobile:     req.CustomerPhone,
		CustomerEmail:      req.CustomerEmail,
		CallBackURL:        c.callbackURL,
		ErrorURL:           c.errorURL,
		Language:           c.language,
		CustomerReference:  req.CustomerReference,
	}
	for _, item := range req.Items {
		body.InvoiceItems = append(body.InvoiceItems, invoiceItem{
			ItemName:  item.Name,
			Quantity:  item.Quantity,
			UnitPrice: json.Number(item.UnitPrice.StringFixed(3)),
		})
	}

	var resp envelope[sendPaymentData]
	if err := c.post(ctx, "/v2/SendPayment", body, &resp); err != nil {
		return nil, err
	}

	if !resp.IsSuccess {
		return nil, &service.GatewayRejectedError{Message: rejectionMessage(resp.Message, resp.ValidationErrors)}
	}

	return &service.PaymentSession{
		InvoiceID:         resp.Data.InvoiceID.String(),
		PaymentURL:        resp.Data.InvoiceURL,
		CustomerReference: resp.Data.CustomerReference,
	}, nil
}

// GetPaymentStatus looks an invoice up by invoice id, payment id or customer reference.
func (c *Client) GetPaymentStatus(ctx context.Context, key string, keyType service.StatusKeyType) (*service.InvoiceStatus, error) {
	var resp envelope[paymentStatusData]
	if err := c.post(ctx, "/v2/GetPaymentStatus", paymentStatusRequest{Key: key, KeyType: string(keyType)}, &resp); err != nil {
		return nil, err
	}

	if !resp.IsSuccess {
		return nil, &service.GatewayRejectedError{Message: rejectionMessage(resp.Message, resp.ValidationErrors)}
	}

	status := &service.InvoiceStatus{
		InvoiceID:         resp.Data.InvoiceID.String(),
		CustomerReference: resp.Data.CustomerReference,
		RawStatus:         resp.Data.InvoiceStatus,
		State:             invoiceState(resp.Data.InvoiceStatus, ""),
	}
	for _, tx := range resp.Data.InvoiceTransactions {
		if transactionSucceeded(tx.TransactionStatus) {
			status.TransactionID = tx.PaymentID

			break
		}
	}
	if status.TransactionID == "" && keyType == service.KeyPaymentID {
		status.TransactionID = key
	}

	return status, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "myfatoorah %s", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return errors.Wrapf(err, "myfatoorah %s: read response", path)
	}

	c.logger.DebugContext(ctx, "MyFatoorah call",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	// Business rejections come back as 400 with a normal envelope.
	if resp.StatusCode >= http.StatusInternalServerError {
		return errors.Errorf("myfatoorah %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "myfatoorah %s: decode response (status %d)", path, resp.StatusCode)
	}

	return nil
}

func rejectionMessage(message string, validationErrors []validationError) string {
	if len(validationErrors) == 0 {
		return message
	}

	parts := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		parts = append(parts, ve.Name+": "+ve.Error)
	}

	if message == "" {
		return strings.Join(parts, "; ")
	}

	return message + " (" + strings.Join(parts, "; ") + ")"
}

// invoiceState folds the gateway's invoice and transaction statuses.
func invoiceState(invoiceStatus, transactionStatus string) service.InvoiceState {
	switch strings.ToUpper(strings.TrimSpace(invoiceStatus)) {
	case "PAID":
		return service.InvoicePaid
	case "FAILED", "EXPIRED", "CANCELED", "CANCELLED":
		return service.InvoiceFailed
	case "PENDING":
		return service.InvoicePending
	}

	switch {
	case transactionSucceeded(transactionStatus):
		return service.InvoicePaid
	case strings.EqualFold(transactionStatus, "FAILED"), strings.EqualFold(transactionStatus, "CANCELED"):
		return service.InvoiceFailed
	default:
		return service.InvoiceUnknown
	}
}

// transactionSucceeded accepts the gateway's historical "Succss" spelling.
func transactionSucceeded(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "SUCCESS", "SUCCSS":
		return true
	default:
		return false
	}
}
