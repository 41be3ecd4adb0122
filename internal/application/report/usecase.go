package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/morefix-stock/internal/domain"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/domain/inventory"
)

const (
	reportTitle = "MoreFix - État du stock"
	notAvail    = "N/A"
)

// Inventory lecturas del store usadas por el reporte.
type Inventory interface {
	Categories() []entity.Category
	Suppliers() []entity.Supplier
	Products() []entity.Product
}

// UseCase arma el Report y delega el formato en los Renderer configurados.
type UseCase struct {
	inv       Inventory
	pdf       Renderer
	xlsx      Renderer
	threshold int
	now       func() time.Time
}

// NewUseCase construye el caso de uso. pdf o xlsx nil deshabilitan ese formato.
func NewUseCase(inv Inventory, pdf, xlsx Renderer, lowStockThreshold int) *UseCase {
	return &UseCase{
		inv:       inv,
		pdf:       pdf,
		xlsx:      xlsx,
		threshold: lowStockThreshold,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Build arma el reporte con el estado actual del inventario.
func (uc *UseCase) Build() Report {
	cats := uc.inv.Categories()
	sups := uc.inv.Suppliers()
	products := uc.inv.Products()

	catNames := make(map[string]string, len(cats))
	for _, c := range cats {
		catNames[c.ID] = c.Name
	}
	supNames := make(map[string]string, len(sups))
	for _, s := range sups {
		supNames[s.ID] = s.Name
	}

	r := Report{
		Title:       reportTitle,
		GeneratedAt: uc.now(),
		Threshold:   uc.threshold,
		Categories:  len(cats),
		Suppliers:   len(sups),
		Rows:        make([]Row, 0, len(products)),
		TotalUnits:  inventory.TotalUnits(products),
		TotalValue:  inventory.TotalValue(products),
	}
	for _, p := range products {
		status := StatusOK
		switch {
		case inventory.IsOutOfStock(p):
			status = StatusOutOfStock
			r.OutOfStock++
		case inventory.IsLowStock(p, uc.threshold):
			status = StatusLowStock
			r.LowStock++
		}
		r.Rows = append(r.Rows, Row{
			SKU:      p.SKU,
			Name:     p.Name,
			Category: lookup(catNames, p.CategoryID),
			Supplier: lookup(supNames, p.SupplierID),
			Quantity: p.Quantity,
			Price:    p.Price,
			Value:    p.Price.Mul(decimalInt(p.Quantity)),
			Status:   status,
		})
	}
	return r
}

// PDF genera el reporte en PDF y un nombre de archivo con la fecha.
func (uc *UseCase) PDF(ctx context.Context) ([]byte, string, error) {
	return uc.render(ctx, uc.pdf, "pdf")
}

// XLSX genera el reporte como hoja de cálculo.
func (uc *UseCase) XLSX(ctx context.Context) ([]byte, string, error) {
	return uc.render(ctx, uc.xlsx, "xlsx")
}

func (uc *UseCase) render(ctx context.Context, r Renderer, ext string) ([]byte, string, error) {
	if r == nil {
		return nil, "", fmt.Errorf("reporte %s: %w", ext, domain.ErrInvalidInput)
	}
	rep := uc.Build()
	b, err := r.Render(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte %s: %w", ext, err)
	}
	return b, fmt.Sprintf("inventaire-%s.%s", rep.GeneratedAt.Format("20060102"), ext), nil
}

func lookup(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return notAvail
}

func decimalInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }
