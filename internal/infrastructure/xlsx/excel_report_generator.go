// Package xlsx exporta el reporte de inventario como hoja de cálculo con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/morefix-stock/internal/application/report"
)

const (
	sheetStock   = "Stock"
	sheetSummary = "Résumé"
)

var headings = []string{"SKU", "Produit", "Catégorie", "Fournisseur", "Quantité", "Prix (€)", "Valeur (€)", "État"}

// ExcelReportGenerator implementa report.Renderer.
type ExcelReportGenerator struct{}

var _ report.Renderer = (*ExcelReportGenerator)(nil)

func NewExcelReportGenerator() *ExcelReportGenerator { return &ExcelReportGenerator{} }

// Render escribe una hoja con una fila por producto y otra con los totales.
func (g *ExcelReportGenerator) Render(_ context.Context, r report.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetStock); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := writeStock(f, r.Rows); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja resumen: %w", err)
	}
	if err := writeSummary(f, r); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeStock(f *excelize.File, rows []report.Row) error {
	for i, h := range headings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetStock, cell, h); err != nil {
			return fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheetStock, "A1", "H1", bold)
	}

	for i, d := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			d.SKU, d.Name, d.Category, d.Supplier, d.Quantity,
			d.Price.InexactFloat64(), d.Value.InexactFloat64(), d.Status,
		}
		if err := f.SetSheetRow(sheetStock, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	return nil
}

func writeSummary(f *excelize.File, r report.Report) error {
	lines := [][]any{
		{"Rapport", r.Title},
		{"Généré le", r.GeneratedAt.Format("2006-01-02 15:04")},
		{"Produits", len(r.Rows)},
		{"Catégories", r.Categories},
		{"Fournisseurs", r.Suppliers},
		{"Unités", r.TotalUnits},
		{"Valeur du stock (€)", r.TotalValue.Round(2).InexactFloat64()},
		{"Seuil stock faible", r.Threshold},
		{"Stock faible", r.LowStock},
		{"Rupture", r.OutOfStock},
	}
	for i, l := range lines {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetSummary, cell, &l); err != nil {
			return fmt.Errorf("xlsx: resumen: %w", err)
		}
	}
	return nil
}
