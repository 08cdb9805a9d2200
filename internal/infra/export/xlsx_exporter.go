// Package export writes the product catalog as an Excel workbook.
package export

import (
	"io"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const (
	sheetName       = "Products"
	timestampLayout = "2006-01-02 15:04:05"
)

// ContentTypeXLSX is the media type of the exported workbook.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []string{
	"ID", "Slug", "Name (EN)", "Name (AR)", "Category (EN)", "Category (AR)",
	"Description (EN)", "Description (AR)", "Actual Price", "Discounted Price",
	"Available", "Images", "Created At", "Updated At",
}

type xlsxExporter struct{}

// NewProductExporter returns the xlsx catalog exporter.
func NewProductExporter() service.ProductExporter {
	return xlsxExporter{}
}

func (xlsxExporter) ContentType() string {
	return ContentTypeXLSX
}

// Export writes one header row and one row per product.
func (xlsxExporter) Export(w io.Writer, products []*entity.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "add sheet")
	}

	headerRow := sheet.AddRow()
	for _, title := range header {
		headerRow.AddCell().SetString(title)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID.String())
		row.AddCell().SetString(p.Slug)
		row.AddCell().SetString(p.Name.EN)
		row.AddCell().SetString(p.Name.AR)
		row.AddCell().SetString(p.Category.EN)
		row.AddCell().SetString(p.Category.AR)
		row.AddCell().SetString(p.Description.EN)
		row.AddCell().SetString(p.Description.AR)
		row.AddCell().SetFloat(p.ActualPrice.InexactFloat64())

		discounted := row.AddCell()
		if p.DiscountedPrice != nil {
			discounted.SetFloat(p.DiscountedPrice.InexactFloat64())
		}

		row.AddCell().SetBool(p.IsAvailable)
		row.AddCell().SetString(strings.Join(p.Images, "\n"))
		row.AddCell().SetString(p.CreatedAt.UTC().Format(timestampLayout))
		row.AddCell().SetString(p.UpdatedAt.UTC().Format(timestampLayout))
	}

	return errors.Wrap(file.Write(w), "write workbook")
}
