package entity

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPickupDraft() *OrderDraft {
	return &OrderDraft{
		FulfillmentType: string(FulfillmentPickup),
		Schedule:        Schedule{Date: "2026-10-20", TimeSlot: TimeSlotMorning},
		Contact:         Contact{Name: "Sara", Phone: "+96550000000"},
		LineItems: []LineItemDraft{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("3.500")},
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("6.000"), Message: "  happy birthday "},
		},
		TotalAmount: decimal.RequireFromString("13.000"),
	}
}

func TestOrderDraft_Validate_Order(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *OrderDraft)
		wantErr error
		wantMsg string
	}{
		{
			name: "empty draft reports missing products first",
			mutate: func(d *OrderDraft) {
				*d = OrderDraft{}
			},
			wantErr: domainerrors.ErrNoProducts,
			wantMsg: "no products provided",
		},
		{
			name: "bad type is reported before missing schedule",
			mutate: func(d *OrderDraft) {
				d.FulfillmentType = "drone"
				d.Schedule = Schedule{}
			},
			wantErr: domainerrors.ErrInvalidOrderType,
			wantMsg: "invalid order type",
		},
		{
			name: "missing schedule is reported before missing contact",
			mutate: func(d *OrderDraft) {
				d.Schedule.TimeSlot = ""
				d.Contact = Contact{}
			},
			wantErr: domainerrors.ErrScheduleRequired,
			wantMsg: "schedule time required",
		},
		{
			name: "missing contact phone",
			mutate: func(d *OrderDraft) {
				d.Contact.Phone = " "
			},
			wantErr: domainerrors.ErrUserInfoRequired,
			wantMsg: "user info required",
		},
		{
			name: "delivery without address",
			mutate: func(d *OrderDraft) {
				d.FulfillmentType = string(FulfillmentDelivery)
			},
			wantErr: domainerrors.ErrShippingAddressRequired,
		},
		{
			name: "pickup with address",
			mutate: func(d *OrderDraft) {
				d.ShippingAddress = &ShippingAddress{City: "kuwait-city", Area: "sharq"}
			},
			wantErr: domainerrors.ErrShippingAddressNotAllowed,
		},
		{
			name: "zero quantity",
			mutate: func(d *OrderDraft) {
				d.LineItems[1].Quantity = 0
			},
			wantErr: domainerrors.ErrInvalidLineItem,
		},
		{
			name: "unknown time slot",
			mutate: func(d *OrderDraft) {
				d.Schedule.TimeSlot = "21:00-23:00"
			},
			wantErr: domainerrors.ErrInvalidTimeSlot,
		},
		{
			name: "negative total",
			mutate: func(d *OrderDraft) {
				d.TotalAmount = decimal.NewFromInt(-1)
			},
			wantErr: domainerrors.ErrInvalidTotalAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validPickupDraft()
			tt.mutate(draft)

			err := draft.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantMsg, appErr.Message())
			}
		})
	}
}

func TestOrderDraft_Validate_LineDetails(t *testing.T) {
	draft := validPickupDraft()
	draft.LineItems[1].ProductID = uuid.Nil

	err := draft.Validate()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "line 2", appErr.Details())
}

func TestOrderDraft_Build_Pickup(t *testing.T) {
	draft := validPickupDraft()
	draft.PromoCode = " eid10 "
	ownerID := uuid.New()

	order, err := draft.Build(ownerID)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, ownerID, order.OwnerID)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, FulfillmentPickup, order.Fulfillment.Type)
	assert.Nil(t, order.Fulfillment.Address)
	assert.Equal(t, "EID10", order.PromoCode)
	require.Len(t, order.LineItems, 2)
	assert.Equal(t, "happy birthday", order.LineItems[1].Message)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("13")))

	sum := decimal.Zero
	for i := range order.LineItems {
		sum = sum.Add(order.LineItems[i].Subtotal())
	}
	assert.True(t, sum.Equal(order.TotalAmount))
}

func TestOrderDraft_Build_Delivery(t *testing.T) {
	draft := validPickupDraft()
	draft.FulfillmentType = string(FulfillmentDelivery)
	draft.ShippingAddress = &ShippingAddress{City: "hawalli", Area: "salmiya", Block: "4"}

	order, err := draft.Build(uuid.New())
	require.NoError(t, err)

	assert.Equal(t, FulfillmentDelivery, order.Fulfillment.Type)
	require.NotNil(t, order.Fulfillment.Address)
	assert.Equal(t, "salmiya", order.Fulfillment.Address.Area)
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusCompleted))
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusCompleted))
	assert.False(t, OrderStatusCompleted.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusPending))
}

func TestOrder_ProductIDs_Distinct(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	order := &Order{LineItems: []LineItem{{ProductID: a}, {ProductID: b}, {ProductID: a}}}

	assert.Equal(t, []uuid.UUID{a, b}, order.ProductIDs())
}
