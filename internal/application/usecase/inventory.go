package usecase

import (
	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/domain/inventory"
)

// Inventory operaciones del store que usan los casos de uso CRUD. Lo implementa *store.Store.
type Inventory interface {
	Categories() []entity.Category
	Suppliers() []entity.Supplier
	Products() []entity.Product
	GetCategoryByID(id string) (entity.Category, bool)
	GetSupplierByID(id string) (entity.Supplier, bool)
	GetProductByID(id string) (entity.Product, bool)
	ProductsByCategory(categoryID string) []entity.Product
	LowStockProducts(threshold int) []entity.Product
	OutOfStockProducts() []entity.Product

	AddCategory(name, description string) entity.Category
	UpdateCategory(c entity.Category) bool
	DeleteCategory(id string) bool
	AddSupplier(name, email, phone string) entity.Supplier
	UpdateSupplier(sp entity.Supplier) bool
	DeleteSupplier(id string) bool
	AddProduct(p entity.Product) entity.Product
	UpdateProduct(p entity.Product) bool
	DeleteProduct(id string) bool
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

func toSupplierResponse(s entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{ID: s.ID, Name: s.Name, Email: s.Email, Phone: s.Phone, CreatedAt: s.CreatedAt}
}

// ToProductResponse mapea un producto calculando los flags de stock con el umbral dado.
func ToProductResponse(p entity.Product, threshold int) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		Price:       p.Price,
		Quantity:    p.Quantity,
		SKU:         p.SKU,
		OutOfStock:  inventory.IsOutOfStock(p),
		LowStock:    inventory.IsLowStock(p, threshold),
		CreatedAt:   p.CreatedAt,
	}
}

// ToProductList mapea una lista de productos.
func ToProductList(products []entity.Product, threshold int) dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p, threshold))
	}
	return dto.ProductListResponse{Items: items, Total: len(items)}
}
