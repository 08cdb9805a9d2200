package service

import (
	"io"

	"storefront/internal/domain/entity"
)

// ProductExporter writes the catalog as a spreadsheet.
type ProductExporter interface {
	ContentType() string
	Export(w io.Writer, products []*entity.Product) error
}
