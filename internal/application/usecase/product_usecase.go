package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/domain"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	inv       Inventory
	threshold int
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(inv Inventory, lowStockThreshold int) *ProductUseCase {
	return &ProductUseCase{inv: inv, threshold: lowStockThreshold}
}

// Create crea un producto. Categoría y proveedor deben existir; el SKU es único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(in.CategoryID, in.SupplierID); err != nil {
		return nil, err
	}
	sku := strings.TrimSpace(in.SKU)
	if uc.skuTaken(sku, "") {
		return nil, fmt.Errorf("sku %q: %w", sku, domain.ErrDuplicate)
	}
	p := uc.inv.AddProduct(entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		Price:       in.Price,
		Quantity:    in.Quantity,
		SKU:         sku,
	})
	out := ToProductResponse(p, uc.threshold)
	return &out, nil
}

// GetByID obtiene un producto. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, ok := uc.inv.GetProductByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := ToProductResponse(p, uc.threshold)
	return &out, nil
}

// List lista productos; con categoryID no vacío filtra por categoría.
func (uc *ProductUseCase) List(categoryID string) dto.ProductListResponse {
	if categoryID != "" {
		return ToProductList(uc.inv.ProductsByCategory(categoryID), uc.threshold)
	}
	return ToProductList(uc.inv.Products(), uc.threshold)
}

// Update aplica los campos presentes. Cambiar categoría o proveedor exige que existan.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, ok := uc.inv.GetProductByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.CategoryID != nil && *in.CategoryID != p.CategoryID {
		if _, ok := uc.inv.GetCategoryByID(*in.CategoryID); !ok {
			return nil, fmt.Errorf("categoría %q: %w", *in.CategoryID, domain.ErrInvalidInput)
		}
		p.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil && *in.SupplierID != p.SupplierID {
		if _, ok := uc.inv.GetSupplierByID(*in.SupplierID); !ok {
			return nil, fmt.Errorf("proveedor %q: %w", *in.SupplierID, domain.ErrInvalidInput)
		}
		p.SupplierID = *in.SupplierID
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.Quantity = *in.Quantity
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if uc.skuTaken(sku, id) {
			return nil, fmt.Errorf("sku %q: %w", sku, domain.ErrDuplicate)
		}
		p.SKU = sku
	}
	if p.Name == "" || p.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if !uc.inv.UpdateProduct(p) {
		return nil, domain.ErrNotFound
	}
	out := ToProductResponse(p, uc.threshold)
	return &out, nil
}

func (uc *ProductUseCase) Delete(id string) error {
	if !uc.inv.DeleteProduct(id) {
		return domain.ErrNotFound
	}
	return nil
}

// LowStock productos con 0 < cantidad <= threshold; threshold <= 0 usa el configurado.
func (uc *ProductUseCase) LowStock(threshold int) dto.ProductListResponse {
	if threshold <= 0 {
		threshold = uc.threshold
	}
	return ToProductList(uc.inv.LowStockProducts(threshold), threshold)
}

// OutOfStock productos con cantidad <= 0.
func (uc *ProductUseCase) OutOfStock() dto.ProductListResponse {
	return ToProductList(uc.inv.OutOfStockProducts(), uc.threshold)
}

func (uc *ProductUseCase) checkRefs(categoryID, supplierID string) error {
	if _, ok := uc.inv.GetCategoryByID(categoryID); !ok {
		return fmt.Errorf("categoría %q: %w", categoryID, domain.ErrInvalidInput)
	}
	if _, ok := uc.inv.GetSupplierByID(supplierID); !ok {
		return fmt.Errorf("proveedor %q: %w", supplierID, domain.ErrInvalidInput)
	}
	return nil
}

func (uc *ProductUseCase) skuTaken(sku, exceptID string) bool {
	for _, p := range uc.inv.Products() {
		if p.ID != exceptID && strings.EqualFold(p.SKU, sku) {
			return true
		}
	}
	return false
}
