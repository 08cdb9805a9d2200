package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ClosedDay marks a date on which the store was closed by hand.
type ClosedDay struct {
	Date      string    `json:"date"`
	ClosedBy  uuid.UUID `json:"closedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoreStatus answers "is the store closed on Date".
type StoreStatus struct {
	Date           string `json:"date"`
	IsClosed       bool   `json:"isClosed"`
	ManuallyClosed bool   `json:"manuallyClosed"`
	AfterCutoff    bool   `json:"afterCutoff"`
}
