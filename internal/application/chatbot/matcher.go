package chatbot

import (
	"strings"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

// FindProductByName devuelve el primer producto (en orden del store) cuyo nombre normalizado
// contiene el fragmento o está contenido en él. Un fragmento vacío no encuentra nada.
func FindProductByName(products []entity.Product, name string) (entity.Product, bool) {
	return findByName(products, name, func(p entity.Product) string { return p.Name })
}

// FindCategoryByName misma regla que FindProductByName sobre categorías.
func FindCategoryByName(categories []entity.Category, name string) (entity.Category, bool) {
	return findByName(categories, name, func(c entity.Category) string { return c.Name })
}

// FindSupplierByName misma regla sobre proveedores.
func FindSupplierByName(suppliers []entity.Supplier, name string) (entity.Supplier, bool) {
	return findByName(suppliers, name, func(s entity.Supplier) string { return s.Name })
}

func findByName[T any](items []T, name string, nameOf func(T) string) (T, bool) {
	var zero T
	needle := textnorm.Normalize(name)
	if needle == "" {
		return zero, false
	}
	for _, it := range items {
		candidate := textnorm.Normalize(nameOf(it))
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return it, true
		}
	}
	return zero, false
}
