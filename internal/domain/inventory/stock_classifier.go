package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

// DefaultLowStockThreshold umbral de stock bajo cuando no se configura otro.
const DefaultLowStockThreshold = 5

// IsOutOfStock indica si el producto está agotado (cantidad cero o negativa).
func IsOutOfStock(p entity.Product) bool {
	return p.Quantity <= 0
}

// IsLowStock indica stock bajo: 0 < cantidad <= umbral. Excluye agotados.
// Un umbral no positivo se reemplaza por DefaultLowStockThreshold.
func IsLowStock(p entity.Product, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return p.Quantity > 0 && p.Quantity <= threshold
}

// TotalValue suma precio × cantidad con aritmética decimal exacta.
func TotalValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

// TotalUnits suma las cantidades de todos los productos.
func TotalUnits(products []entity.Product) int {
	n := 0
	for _, p := range products {
		n += p.Quantity
	}
	return n
}
