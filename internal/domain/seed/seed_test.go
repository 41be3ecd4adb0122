package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/morefix-stock/internal/domain/seed"
)

func TestDefault_Cardinalidades(t *testing.T) {
	s := seed.Default()

	assert.Len(t, s.Categories, 7)
	assert.Len(t, s.Suppliers, 3)
	assert.Len(t, s.Products, 12)
	assert.Empty(t, s.ChatMessages)
}

func TestDefault_ReferenciasValidas(t *testing.T) {
	s := seed.Default()
	cats := map[string]bool{}
	for _, c := range s.Categories {
		cats[c.ID] = true
	}
	sups := map[string]bool{}
	for _, sp := range s.Suppliers {
		sups[sp.ID] = true
	}
	skus := map[string]bool{}
	for _, p := range s.Products {
		assert.True(t, cats[p.CategoryID], "categoría de %s", p.ID)
		assert.True(t, sups[p.SupplierID], "proveedor de %s", p.ID)
		require.False(t, skus[p.SKU], "SKU duplicado %s", p.SKU)
		skus[p.SKU] = true
	}
}

func TestDefault_SlicesIndependientes(t *testing.T) {
	a := seed.Default()
	b := seed.Default()

	a.Products[0].Quantity = 999

	assert.Equal(t, 15, b.Products[0].Quantity)
}
