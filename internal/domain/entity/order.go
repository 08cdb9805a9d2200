package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusCompleted, OrderStatusCancelled},
}

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether staff may move an order from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// PaymentStatus tracks money, independently of OrderStatus.
// It is empty for orders placed without the payment bridge.
type PaymentStatus string

const (
	PaymentStatusNone    PaymentStatus = ""
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentStage records how far payment-session creation got.
type PaymentStage string

const (
	// PaymentStageInitiated is written before the gateway is called.
	PaymentStageInitiated PaymentStage = "initiated"
	// PaymentStageLinked means the gateway invoice is stored on the order.
	PaymentStageLinked PaymentStage = "linked"
	// PaymentStageSettled means a final outcome was applied.
	PaymentStageSettled PaymentStage = "settled"
)

// FulfillmentType is how the shopper receives the order.
type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDelivery FulfillmentType = "delivery"
)

// IsValid checks if the fulfillment type is known.
func (t FulfillmentType) IsValid() bool {
	return t == FulfillmentPickup || t == FulfillmentDelivery
}

// TimeSlot is one of the fixed daily fulfillment windows.
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "10:00-13:00"
	TimeSlotAfternoon TimeSlot = "13:00-17:00"
	TimeSlotEvening   TimeSlot = "17:00-21:00"
)

// IsValid checks if the slot is one of the fixed windows.
func (t TimeSlot) IsValid() bool {
	switch t {
	case TimeSlotMorning, TimeSlotAfternoon, TimeSlotEvening:
		return true
	default:
		return false
	}
}

// Schedule is the requested fulfillment day and window.
type Schedule struct {
	Date     string   `json:"date"`
	TimeSlot TimeSlot `json:"timeSlot"`
}

// Contact is who to call about the order.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// ShippingAddress is where a delivery order goes.
type ShippingAddress struct {
	City      string `json:"city"`
	Area      string `json:"area"`
	Block     string `json:"block,omitempty"`
	Street    string `json:"street,omitempty"`
	Building  string `json:"building,omitempty"`
	Floor     string `json:"floor,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Fulfillment is either a pickup or a delivery to an address.
// Build it with PickupFulfillment or DeliveryFulfillment.
type Fulfillment struct {
	Type    FulfillmentType  `json:"type"`
	Address *ShippingAddress `json:"address,omitempty"`
}

// PickupFulfillment is collected in store and never carries an address.
func PickupFulfillment() Fulfillment {
	return Fulfillment{Type: FulfillmentPickup}
}

// DeliveryFulfillment ships to addr.
func DeliveryFulfillment(addr ShippingAddress) Fulfillment {
	return Fulfillment{Type: FulfillmentDelivery, Address: &addr}
}

// LineItem is a snapshot of one purchased product.
type LineItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Message   string          `json:"message,omitempty"`
	Product   *ProductSummary `json:"product,omitempty"` // Expanded on reads; nil if the product is gone.
}

// Subtotal is quantity times the unit price snapshot.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// PaymentLink connects an order to a hosted payment session.
type PaymentLink struct {
	Gateway           string `json:"paymentGateway,omitempty"`
	PaymentURL        string `json:"paymentUrl,omitempty"`
	PaymentID         string `json:"paymentId,omitempty"` // Gateway invoice id.
	CustomerReference string `json:"customerReference,omitempty"`
	TransactionID     string `json:"transactionId,omitempty"` // Gateway payment id of the settling transaction.
}

// Order is a purchase. After creation only Status, PaymentStatus,
// PaymentStage and Payment change.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	OwnerID       uuid.UUID       `json:"ownerId"`
	LineItems     []LineItem      `json:"lineItems"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Fulfillment   Fulfillment     `json:"fulfillment"`
	Schedule      Schedule        `json:"schedule"`
	Contact       Contact         `json:"contact"`
	PromoCode     string          `json:"promoCode,omitempty"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus,omitempty"`
	PaymentStage  PaymentStage    `json:"paymentStage,omitempty"`
	Payment       PaymentLink     `json:"payment"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.OwnerID == userID
}

// ProductIDs returns the distinct products referenced by the order.
func (o *Order) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(o.LineItems))
	ids := make([]uuid.UUID, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}
