// Package qrcode renders the QR codes shown at in-store pickup.
package qrcode

import (
	"encoding/json"
	"fmt"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	pickupType = "pickup"
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// PickupPayload is the JSON encoded in a pickup QR code.
type PickupPayload struct {
	OrderID string `json:"orderId"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return newService(size, level)
}

func newService(size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{size: size, level: level}
}

// GeneratePickupQR returns a PNG of {"orderId": ..., "type": "pickup"}.
func (s *qrcodeService) GeneratePickupQR(orderID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(PickupPayload{OrderID: orderID.String(), Type: pickupType})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.level)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR reads the order id back from a scanned payload.
func (s *qrcodeService) ParsePickupQR(payload string) (uuid.UUID, error) {
	var data PickupPayload
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != pickupType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	return orderID, nil
}
