package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/domain"
	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	inv Inventory
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(inv Inventory) *SupplierUseCase {
	return &SupplierUseCase{inv: inv}
}

// Create crea un proveedor; el nombre no puede repetirse.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.nameTaken(name, "") {
		return nil, fmt.Errorf("proveedor %q: %w", name, domain.ErrDuplicate)
	}
	s := uc.inv.AddSupplier(name, strings.TrimSpace(in.Email), strings.TrimSpace(in.Phone))
	out := toSupplierResponse(s)
	return &out, nil
}

func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	s, ok := uc.inv.GetSupplierByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toSupplierResponse(s)
	return &out, nil
}

func (uc *SupplierUseCase) List() []dto.SupplierResponse {
	sups := uc.inv.Suppliers()
	out := make([]dto.SupplierResponse, 0, len(sups))
	for _, s := range sups {
		out = append(out, toSupplierResponse(s))
	}
	return out
}

// Update aplica los campos presentes en la entrada.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, ok := uc.inv.GetSupplierByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if uc.nameTaken(name, id) {
			return nil, fmt.Errorf("proveedor %q: %w", name, domain.ErrDuplicate)
		}
		s.Name = name
	}
	if in.Email != nil {
		s.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		s.Phone = strings.TrimSpace(*in.Phone)
	}
	if !uc.inv.UpdateSupplier(s) {
		return nil, domain.ErrNotFound
	}
	out := toSupplierResponse(s)
	return &out, nil
}

func (uc *SupplierUseCase) Delete(id string) error {
	if !uc.inv.DeleteSupplier(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *SupplierUseCase) nameTaken(name, exceptID string) bool {
	want := textnorm.Normalize(name)
	for _, s := range uc.inv.Suppliers() {
		if s.ID != exceptID && textnorm.Normalize(s.Name) == want {
			return true
		}
	}
	return false
}
