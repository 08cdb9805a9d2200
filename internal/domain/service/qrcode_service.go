package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders and reads pickup QR codes.
type QRCodeService interface {
	// GeneratePickupQR returns a PNG encoding the pickup payload for orderID.
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// ParsePickupQR returns the order id encoded in a scanned payload.
	ParsePickupQR(payload string) (uuid.UUID, error)
}
