package myfatoorah

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"sort"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// SignatureHeader carries the webhook HMAC.
const SignatureHeader = "MyFatoorah-Signature"

type webhookBody struct {
	EventType json.Number                `json:"EventType"`
	Event     string                     `json:"Event"`
	DateTime  string                     `json:"DateTime"`
	Data      map[string]json.RawMessage `json:"Data"`
}

// ParseWebhook verifies the signature over Data before trusting any field.
func (c *Client) ParseWebhook(signature string, body []byte) (*service.InvoiceStatus, error) {
	if strings.TrimSpace(signature) == "" {
		return nil, service.ErrInvalidSignature
	}

	var payload webhookBody
	if err := json.Unmarshal(body, &payload); err != nil || payload.Data == nil {
		// An unparsable body cannot carry a valid signature.
		return nil, service.ErrInvalidSignature
	}

	fields := flattenData(payload.Data)
	if !hmac.Equal([]byte(Sign(c.webhookSecret, fields)), []byte(strings.TrimSpace(signature))) {
		return nil, service.ErrInvalidSignature
	}

	status := &service.InvoiceStatus{
		InvoiceID:         fields["InvoiceId"],
		CustomerReference: fields["CustomerReference"],
		RawStatus:         fields["InvoiceStatus"],
		TransactionID:     fields["PaymentId"],
		State:             invoiceState(fields["InvoiceStatus"], fields["TransactionStatus"]),
	}
	if status.RawStatus == "" {
		status.RawStatus = fields["TransactionStatus"]
	}
	if status.CustomerReference == "" {
		return nil, errors.New("webhook carries no customer reference")
	}

	return status, nil
}

// Sign is base64(HMAC-SHA256(secret, "k1=v1,k2=v2,...")) over fields sorted by key.
func Sign(secret []byte, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strings.Join(pairs, ",")))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// flattenData renders every Data property as text: strings unquoted, null
// empty, numbers and booleans as written.
func flattenData(data map[string]json.RawMessage) map[string]string {
	fields := make(map[string]string, len(data))
	for k, raw := range data {
		text := strings.TrimSpace(string(raw))

		var s string
		switch {
		case text == "null":
			text = ""
		case json.Unmarshal(raw, &s) == nil:
			text = s
		}

		fields[k] = text
	}

	return fields
}
