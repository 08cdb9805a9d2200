package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService_Config(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		wantSize  int
		wantLevel qrcode.RecoveryLevel
	}{
		{"no section", &config.Config{}, 256, qrcode.Medium},
		{"custom", &config.Config{QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}}, 512, qrcode.Highest},
		{"low", &config.Config{QRCode: &config.QRCodeConfig{ErrorCorrectionLevel: "L"}}, 256, qrcode.Low},
		{"quartile", &config.Config{QRCode: &config.QRCodeConfig{ErrorCorrectionLevel: "Q"}}, 256, qrcode.High},
		{"unknown level", &config.Config{QRCode: &config.QRCodeConfig{ErrorCorrectionLevel: "X"}}, 256, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := NewQRCodeService(tt.cfg).(*qrcodeService)
			require.True(t, ok)
			assert.Equal(t, tt.wantSize, svc.size)
			assert.Equal(t, tt.wantLevel, svc.level)
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newService(size, "M")

		png, err := svc.GeneratePickupQR(uuid.New())
		require.NoError(t, err)
		assert.Equal(t, pngMagic, png[:4])
	}
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	svc := newService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(PickupPayload{OrderID: orderID.String(), Type: "pickup"})
	require.NoError(t, err)

	got, err := svc.ParsePickupQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, got)
}

func TestQRCodeService_ParsePickupQR_Invalid(t *testing.T) {
	svc := newService(256, "M")

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"not json", "pickup-123", "failed to unmarshal"},
		{"wrong type", `{"orderId":"` + uuid.NewString() + `","type":"subscription"}`, "invalid QR code type"},
		{"bad id", `{"orderId":"nope","type":"pickup"}`, "failed to parse order ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParsePickupQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
