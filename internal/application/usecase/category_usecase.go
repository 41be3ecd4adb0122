package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/domain"
	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	inv       Inventory
	threshold int
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(inv Inventory, lowStockThreshold int) *CategoryUseCase {
	return &CategoryUseCase{inv: inv, threshold: lowStockThreshold}
}

// Create crea una categoría. El nombre es único sin distinguir mayúsculas ni acentos.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.nameTaken(name, "") {
		return nil, fmt.Errorf("categoría %q: %w", name, domain.ErrDuplicate)
	}
	c := uc.inv.AddCategory(name, strings.TrimSpace(in.Description))
	out := toCategoryResponse(c)
	return &out, nil
}

// GetByID obtiene una categoría. Devuelve domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	c, ok := uc.inv.GetCategoryByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// List devuelve todas las categorías en orden de creación.
func (uc *CategoryUseCase) List() []dto.CategoryResponse {
	cats := uc.inv.Categories()
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

// Update aplica los campos presentes en la entrada.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, ok := uc.inv.GetCategoryByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if uc.nameTaken(name, id) {
			return nil, fmt.Errorf("categoría %q: %w", name, domain.ErrDuplicate)
		}
		c.Name = name
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if !uc.inv.UpdateCategory(c) {
		return nil, domain.ErrNotFound
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Delete elimina la categoría. Los productos que la referencian no se modifican.
func (uc *CategoryUseCase) Delete(id string) error {
	if !uc.inv.DeleteCategory(id) {
		return domain.ErrNotFound
	}
	return nil
}

// Products lista los productos de la categoría.
func (uc *CategoryUseCase) Products(id string) (*dto.ProductListResponse, error) {
	if _, ok := uc.inv.GetCategoryByID(id); !ok {
		return nil, domain.ErrNotFound
	}
	out := ToProductList(uc.inv.ProductsByCategory(id), uc.threshold)
	return &out, nil
}

func (uc *CategoryUseCase) nameTaken(name, exceptID string) bool {
	want := textnorm.Normalize(name)
	for _, c := range uc.inv.Categories() {
		if c.ID != exceptID && textnorm.Normalize(c.Name) == want {
			return true
		}
	}
	return false
}
