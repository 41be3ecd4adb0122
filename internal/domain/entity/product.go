package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario.
// CategoryID y SupplierID pueden quedar colgando si se elimina la categoría o el proveedor.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	SupplierID  string          `json:"supplierId"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	SKU         string          `json:"sku"`
	CreatedAt   time.Time       `json:"createdAt"`
}
