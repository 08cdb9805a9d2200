package entity

import (
	"strconv"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemDraft is one requested line of a new order.
type LineItemDraft struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Message   string
}

// OrderDraft is an order as submitted by a shopper, before validation.
// FulfillmentType is kept as the raw string so an unknown value can be
// reported as such.
type OrderDraft struct {
	FulfillmentType string
	Schedule        Schedule
	Contact         Contact
	LineItems       []LineItemDraft
	ShippingAddress *ShippingAddress
	TotalAmount     decimal.Decimal
	PromoCode       string
}

// Validate checks the draft in a fixed order and returns the first failure.
// The first four checks and their messages are part of the public API.
func (d *OrderDraft) Validate() error {
	if len(d.LineItems) == 0 {
		return domainerrors.ErrNoProducts
	}

	if !FulfillmentType(d.FulfillmentType).IsValid() {
		return domainerrors.ErrInvalidOrderType
	}

	if strings.TrimSpace(d.Schedule.Date) == "" || strings.TrimSpace(string(d.Schedule.TimeSlot)) == "" {
		return domainerrors.ErrScheduleRequired
	}

	if strings.TrimSpace(d.Contact.Name) == "" || strings.TrimSpace(d.Contact.Phone) == "" {
		return domainerrors.ErrUserInfoRequired
	}

	switch FulfillmentType(d.FulfillmentType) {
	case FulfillmentDelivery:
		if d.ShippingAddress == nil || strings.TrimSpace(d.ShippingAddress.City) == "" || strings.TrimSpace(d.ShippingAddress.Area) == "" {
			return domainerrors.ErrShippingAddressRequired
		}
	case FulfillmentPickup:
		if d.ShippingAddress != nil {
			return domainerrors.ErrShippingAddressNotAllowed
		}
	}

	for i, item := range d.LineItems {
		if item.ProductID == uuid.Nil || item.Quantity < 1 || item.UnitPrice.IsNegative() {
			return domainerrors.ErrInvalidLineItem.WithDetails("line " + strconv.Itoa(i+1))
		}
	}

	if !d.Schedule.TimeSlot.IsValid() {
		return domainerrors.ErrInvalidTimeSlot
	}

	if d.TotalAmount.IsNegative() {
		return domainerrors.ErrInvalidTotalAmount
	}

	return nil
}

// Build validates the draft and turns it into a pending order owned by ownerID.
// The total is kept as submitted.
func (d *OrderDraft) Build(ownerID uuid.UUID) (*Order, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	fulfillment := PickupFulfillment()
	if FulfillmentType(d.FulfillmentType) == FulfillmentDelivery {
		fulfillment = DeliveryFulfillment(*d.ShippingAddress)
	}

	items := make([]LineItem, len(d.LineItems))
	for i, item := range d.LineItems {
		items[i] = LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Message:   strings.TrimSpace(item.Message),
		}
	}

	return &Order{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		LineItems:   items,
		TotalAmount: d.TotalAmount,
		Fulfillment: fulfillment,
		Schedule:    d.Schedule,
		Contact:     d.Contact,
		PromoCode:   strings.ToUpper(strings.TrimSpace(d.PromoCode)),
		Status:      OrderStatusPending,
	}, nil
}
