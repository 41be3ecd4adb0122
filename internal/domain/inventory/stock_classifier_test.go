package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/domain/inventory"
	"github.com/jhoicas/morefix-stock/internal/domain/seed"
)

func TestClasificacion_Exclusiva(t *testing.T) {
	for q := -1; q <= 10; q++ {
		p := entity.Product{Quantity: q}
		out := inventory.IsOutOfStock(p)
		low := inventory.IsLowStock(p, 5)
		assert.False(t, out && low, "cantidad %d clasificada en ambos", q)
	}
}

func TestIsLowStock_Limites(t *testing.T) {
	assert.False(t, inventory.IsLowStock(entity.Product{Quantity: 0}, 5))
	assert.True(t, inventory.IsLowStock(entity.Product{Quantity: 1}, 5))
	assert.True(t, inventory.IsLowStock(entity.Product{Quantity: 5}, 5))
	assert.False(t, inventory.IsLowStock(entity.Product{Quantity: 6}, 5))
	// umbral no positivo -> 5
	assert.True(t, inventory.IsLowStock(entity.Product{Quantity: 5}, 0))
	assert.True(t, inventory.IsLowStock(entity.Product{Quantity: 2}, 2))
}

func TestTotalValue_Seed(t *testing.T) {
	products := seed.Default().Products

	total := inventory.TotalValue(products)

	assert.True(t, total.Equal(decimal.RequireFromString("19018.53")), "total %s", total)
	assert.Equal(t, 147, inventory.TotalUnits(products))
	assert.True(t, total.Equal(inventory.TotalValue(products)))
}

func TestTotalValue_Vacio(t *testing.T) {
	assert.True(t, inventory.TotalValue(nil).IsZero())
	assert.Equal(t, 0, inventory.TotalUnits(nil))
}
