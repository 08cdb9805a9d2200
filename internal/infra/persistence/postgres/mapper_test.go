package postgres

import (
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestOrderMapper_FulfillmentUnion(t *testing.T) {
	pickup := &entity.Order{
		OwnerID:     uuid.New(),
		Fulfillment: entity.PickupFulfillment(),
		LineItems: []entity.LineItem{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("4.250")},
		},
	}

	pickupM := fromOrderDomain(pickup)
	assert.Nil(t, pickupM.ShippingAddress)
	assert.Equal(t, "pickup", pickupM.FulfillmentType)

	delivery := &entity.Order{
		OwnerID:     uuid.New(),
		Fulfillment: entity.DeliveryFulfillment(entity.ShippingAddress{City: "kuwait city", Area: "Sharq", Block: "3"}),
	}

	deliveryM := fromOrderDomain(delivery)
	require.NotNil(t, deliveryM.ShippingAddress)

	back := toOrderDomain(deliveryM)
	assert.Equal(t, entity.FulfillmentDelivery, back.Fulfillment.Type)
	require.NotNil(t, back.Fulfillment.Address)
	assert.Equal(t, "Sharq", back.Fulfillment.Address.Area)

	back = toOrderDomain(pickupM)
	assert.Nil(t, back.Fulfillment.Address)
	require.Len(t, back.LineItems, 1)
	assert.True(t, back.LineItems[0].UnitPrice.Equal(decimal.RequireFromString("4.25")))
}

func TestProductMapper_LegacyImageAndCategoryKey(t *testing.T) {
	discounted := decimal.NewFromInt(8)
	product := &entity.Product{
		Name:            entity.LocalizedText{EN: "Rose Box", AR: "صندوق ورد"},
		Category:        entity.LocalizedText{EN: " Flowers ", AR: "زهور"},
		ActualPrice:     decimal.NewFromInt(10),
		DiscountedPrice: &discounted,
	}

	productM := fromProductDomain(product)
	assert.Equal(t, "flowers", productM.CategoryKey)
	assert.True(t, productM.DiscountedPrice.Valid)
	assert.NotNil(t, productM.Images)

	legacy := &model.ProductModel{
		Name:  datatypes.NewJSONType(model.LocalizedTextRecord{EN: "Old", AR: "قديم"}),
		Image: "https://cdn.example.com/old.jpg",
	}

	back := toProductDomain(legacy)
	assert.Equal(t, []string{"https://cdn.example.com/old.jpg"}, back.Images)
	assert.Nil(t, back.DiscountedPrice)
}
