// Package report arma el reporte de inventario exportable (PDF, XLSX, JSON, YAML).
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock mostrados en el reporte.
const (
	StatusOK         = "OK"
	StatusLowStock   = "Stock faible"
	StatusOutOfStock = "Rupture"
)

// Row una línea del reporte por producto.
type Row struct {
	SKU      string          `json:"sku" yaml:"sku"`
	Name     string          `json:"name" yaml:"name"`
	Category string          `json:"category" yaml:"category"`
	Supplier string          `json:"supplier" yaml:"supplier"`
	Quantity int             `json:"quantity" yaml:"quantity"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
	Value    decimal.Decimal `json:"value" yaml:"value"`
	Status   string          `json:"status" yaml:"status"`
}

// Report contenido completo del reporte de inventario.
type Report struct {
	Title       string          `json:"title" yaml:"title"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Threshold   int             `json:"low_stock_threshold" yaml:"low_stock_threshold"`
	Categories  int             `json:"categories" yaml:"categories"`
	Suppliers   int             `json:"suppliers" yaml:"suppliers"`
	Rows        []Row           `json:"rows" yaml:"rows"`
	TotalUnits  int             `json:"total_units" yaml:"total_units"`
	TotalValue  decimal.Decimal `json:"total_value" yaml:"total_value"`
	LowStock    int             `json:"low_stock" yaml:"low_stock"`
	OutOfStock  int             `json:"out_of_stock" yaml:"out_of_stock"`
}

// Renderer serializa un Report a un formato binario (PDF, XLSX).
type Renderer interface {
	Render(ctx context.Context, r Report) ([]byte, error)
}
