package analytics_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/morefix-stock/internal/application/analytics"
	"github.com/jhoicas/morefix-stock/internal/application/store"
)

func TestGetSummary_Seed(t *testing.T) {
	s := store.New(context.Background(), nil, zerolog.Nop())
	uc := analytics.NewDashboardUseCase(s, 5)

	out := uc.GetSummary()

	assert.Equal(t, 12, out.TotalProducts)
	assert.Equal(t, 7, out.TotalCategories)
	assert.Equal(t, 3, out.TotalSuppliers)
	assert.Equal(t, 147, out.TotalUnits)
	assert.Equal(t, "19018.53", out.StockValue.StringFixed(2))
	assert.Contains(t, out.StockValueLabel, ",53")
	assert.Len(t, out.LowStock, 3)
	assert.Len(t, out.OutOfStock, 2)

	require.Len(t, out.ByCategory, 7)
	// Cinco categorías con 2 productos, luego RAM y SSD con 1, empate por nombre.
	assert.Equal(t, "Accessoires", out.ByCategory[0].CategoryName)
	assert.Equal(t, 50, out.ByCategory[0].Units)
	assert.Equal(t, "RAM", out.ByCategory[5].CategoryName)
	assert.Equal(t, "SSD", out.ByCategory[6].CategoryName)
}

func TestGetSummary_CategoriaBorradaSeAgrupaEnNA(t *testing.T) {
	s := store.New(context.Background(), nil, zerolog.Nop())
	require.True(t, s.DeleteCategory("cat-3"))
	require.True(t, s.DeleteCategory("cat-4"))
	uc := analytics.NewDashboardUseCase(s, 5)

	out := uc.GetSummary()

	require.Len(t, out.ByCategory, 6)
	assert.Equal(t, "N/A", out.ByCategory[0].CategoryName)
	assert.Equal(t, 4, out.ByCategory[0].Products)
	assert.Equal(t, 17, out.ByCategory[0].Units)
}
