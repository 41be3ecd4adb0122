// Package analytics contiene el resumen del tablero de inventario.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/application/usecase"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

// uncategorized etiqueta para productos cuya categoría ya no existe.
const uncategorized = "N/A"

// Inventory lecturas necesarias para el tablero. Lo implementa *store.Store.
type Inventory interface {
	Categories() []entity.Category
	Suppliers() []entity.Supplier
	Products() []entity.Product
	LowStockProducts(threshold int) []entity.Product
	OutOfStockProducts() []entity.Product
	StockValue() decimal.Decimal
	TotalUnits() int
}

// DashboardUseCase genera el resumen del inventario a partir del snapshot en memoria.
type DashboardUseCase struct {
	inv       Inventory
	threshold int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(inv Inventory, lowStockThreshold int) *DashboardUseCase {
	return &DashboardUseCase{inv: inv, threshold: lowStockThreshold}
}

// GetSummary construye el DashboardSummaryDTO: conteos, valor, alertas de stock y
// reparto por categoría (mayor número de productos primero, empate por nombre).
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	categories := uc.inv.Categories()
	products := uc.inv.Products()
	value := uc.inv.StockValue()

	low := usecase.ToProductList(uc.inv.LowStockProducts(uc.threshold), uc.threshold)
	out := usecase.ToProductList(uc.inv.OutOfStockProducts(), uc.threshold)

	return &dto.DashboardSummaryDTO{
		TotalProducts:     len(products),
		TotalCategories:   len(categories),
		TotalSuppliers:    len(uc.inv.Suppliers()),
		TotalUnits:        uc.inv.TotalUnits(),
		StockValue:        value,
		StockValueLabel:   textnorm.FormatEuro(value),
		LowStockThreshold: uc.threshold,
		LowStock:          low.Items,
		OutOfStock:        out.Items,
		ByCategory:        countByCategory(categories, products),
	}
}

func countByCategory(categories []entity.Category, products []entity.Product) []dto.CategoryCountDTO {
	idx := make(map[string]int, len(categories))
	counts := make([]dto.CategoryCountDTO, 0, len(categories)+1)
	for _, c := range categories {
		idx[c.ID] = len(counts)
		counts = append(counts, dto.CategoryCountDTO{CategoryID: c.ID, CategoryName: c.Name})
	}
	for _, p := range products {
		i, ok := idx[p.CategoryID]
		if !ok {
			// Referencia colgante: se agrupa bajo una sola fila.
			i, ok = idx[""]
			if !ok {
				i = len(counts)
				idx[""] = i
				counts = append(counts, dto.CategoryCountDTO{CategoryName: uncategorized})
			}
		}
		counts[i].Products++
		counts[i].Units += p.Quantity
	}
	sort.SliceStable(counts, func(a, b int) bool {
		if counts[a].Products != counts[b].Products {
			return counts[a].Products > counts[b].Products
		}
		return counts[a].CategoryName < counts[b].CategoryName
	})
	return counts
}
