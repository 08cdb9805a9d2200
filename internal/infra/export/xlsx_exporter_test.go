package export

import (
	"bytes"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestXLSXExporter_Export(t *testing.T) {
	discounted := decimal.RequireFromString("4.250")
	created := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	products := []*entity.Product{
		{
			ID:              uuid.New(),
			Name:            entity.LocalizedText{EN: "Rose Box", AR: "صندوق ورد"},
			Category:        entity.LocalizedText{EN: "Flowers", AR: "زهور"},
			Slug:            "rose-box-1-0",
			ActualPrice:     decimal.RequireFromString("5.000"),
			DiscountedPrice: &discounted,
			Images:          []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
			IsAvailable:     true,
			CreatedAt:       created,
			UpdatedAt:       created,
		},
		{
			ID:          uuid.New(),
			Name:        entity.LocalizedText{EN: "Tulips", AR: "توليب"},
			Category:    entity.LocalizedText{EN: "Flowers", AR: "زهور"},
			Slug:        "tulips-1-1",
			ActualPrice: decimal.RequireFromString("3.000"),
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}

	exporter := NewProductExporter()
	assert.Equal(t, ContentTypeXLSX, exporter.ContentType())

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(&buf, products))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Products", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "Updated At", sheet.Rows[0].Cells[len(header)-1].Value)

	first := sheet.Rows[1].Cells
	assert.Equal(t, products[0].ID.String(), first[0].Value)
	assert.Equal(t, "rose-box-1-0", first[1].Value)
	assert.Equal(t, "صندوق ورد", first[3].Value)
	assert.Equal(t, "https://cdn/a.jpg\nhttps://cdn/b.jpg", first[11].Value)
	assert.Equal(t, "2026-02-03 04:05:06", first[12].Value)

	second := sheet.Rows[2].Cells
	assert.Equal(t, "Tulips", second[2].Value)
	assert.Empty(t, second[9].Value)
}

func TestXLSXExporter_EmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewProductExporter().Export(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, file.Sheets[0].Rows, 1)
}
