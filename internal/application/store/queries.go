package store

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/domain/inventory"
)

// Categories devuelve las categorías en orden de inserción.
func (s *Store) Categories() []entity.Category {
	return copyOf(s.read().Categories)
}

func (s *Store) Suppliers() []entity.Supplier {
	return copyOf(s.read().Suppliers)
}

func (s *Store) Products() []entity.Product {
	return copyOf(s.read().Products)
}

func (s *Store) ChatMessages() []entity.ChatMessage {
	return copyOf(s.read().ChatMessages)
}

// GetCategoryByID la ausencia no es error: ok=false.
func (s *Store) GetCategoryByID(id string) (entity.Category, bool) {
	for _, c := range s.read().Categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Category{}, false
}

func (s *Store) GetSupplierByID(id string) (entity.Supplier, bool) {
	for _, sp := range s.read().Suppliers {
		if sp.ID == id {
			return sp, true
		}
	}
	return entity.Supplier{}, false
}

func (s *Store) GetProductByID(id string) (entity.Product, bool) {
	for _, p := range s.read().Products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// ProductsByCategory productos con esa categoría, en orden del store.
func (s *Store) ProductsByCategory(categoryID string) []entity.Product {
	return s.filterProducts(func(p entity.Product) bool { return p.CategoryID == categoryID })
}

// LowStockProducts 0 < cantidad <= threshold; threshold <= 0 usa el valor por defecto (5).
func (s *Store) LowStockProducts(threshold int) []entity.Product {
	return s.filterProducts(func(p entity.Product) bool { return inventory.IsLowStock(p, threshold) })
}

// OutOfStockProducts productos con cantidad cero.
func (s *Store) OutOfStockProducts() []entity.Product {
	return s.filterProducts(inventory.IsOutOfStock)
}

// StockValue Σ precio × cantidad, calculado en cada llamada.
func (s *Store) StockValue() decimal.Decimal {
	return inventory.TotalValue(s.read().Products)
}

// TotalUnits suma de cantidades.
func (s *Store) TotalUnits() int {
	return inventory.TotalUnits(s.read().Products)
}

func (s *Store) filterProducts(keep func(entity.Product) bool) []entity.Product {
	out := []entity.Product{}
	for _, p := range s.read().Products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func copyOf[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
