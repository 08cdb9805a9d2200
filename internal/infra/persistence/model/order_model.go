package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// LineItemRecord is the jsonb snapshot of one purchased product.
type LineItemRecord struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Message   string          `json:"message,omitempty"`
}

// ShippingAddressRecord is the jsonb shape of a delivery address.
type ShippingAddressRecord struct {
	City      string `json:"city"`
	Area      string `json:"area"`
	Block     string `json:"block,omitempty"`
	Street    string `json:"street,omitempty"`
	Building  string `json:"building,omitempty"`
	Floor     string `json:"floor,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                uuid.UUID                                  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID           uuid.UUID                                  `gorm:"type:uuid;not null;index"`
	LineItems         datatypes.JSONSlice[LineItemRecord]        `gorm:"type:jsonb;not null"`
	TotalAmount       decimal.Decimal                            `gorm:"type:numeric(12,3);not null"`
	FulfillmentType   string                                     `gorm:"type:varchar(20);not null"`
	ShippingAddress   *datatypes.JSONType[ShippingAddressRecord] `gorm:"type:jsonb"`
	ScheduleDate      string                                     `gorm:"type:varchar(10);not null"`
	TimeSlot          string                                     `gorm:"type:varchar(20);not null"`
	ContactName       string                                     `gorm:"type:varchar(255);not null"`
	ContactPhone      string                                     `gorm:"type:varchar(50);not null"`
	ContactEmail      string                                     `gorm:"type:varchar(255)"`
	PromoCode         string                                     `gorm:"type:varchar(50)"`
	Status            string                                     `gorm:"type:varchar(20);not null;default:pending;index"`
	PaymentStatus     string                                     `gorm:"type:varchar(20);index"`
	PaymentStage      string                                     `gorm:"type:varchar(20);index"`
	PaymentGateway    string                                     `gorm:"type:varchar(50)"`
	PaymentURL        string                                     `gorm:"type:text"`
	PaymentID         string                                     `gorm:"type:varchar(100);index"`
	CustomerReference string                                     `gorm:"type:varchar(100);index"`
	TransactionID     string                                     `gorm:"type:varchar(100)"`
	CreatedAt         time.Time                                  `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// PaymentEventModel records applied gateway outcomes in 'payment_events'.
// The unique (invoice_id, outcome) index is what makes application idempotent.
type PaymentEventModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InvoiceID     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_payment_events_invoice_outcome"`
	Outcome       string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_payment_events_invoice_outcome"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	TransactionID string    `gorm:"type:varchar(100)"`
	Source        string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentEventModel) TableName() string {
	return "payment_events"
}
