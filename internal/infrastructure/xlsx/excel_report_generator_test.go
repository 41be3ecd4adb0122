package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/morefix-stock/internal/application/report"
	"github.com/jhoicas/morefix-stock/internal/infrastructure/xlsx"
)

func TestRender_HojasYFilas(t *testing.T) {
	r := report.Report{
		Title:       "MoreFix - État du stock",
		GeneratedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Rows: []report.Row{
			{SKU: "LOG-GPRO-KB", Name: "Clavier Logitech G Pro", Category: "Claviers", Supplier: "TechDistrib",
				Quantity: 15, Price: decimal.RequireFromString("129.99"), Value: decimal.RequireFromString("1949.85"), Status: report.StatusOK},
		},
		TotalUnits: 15,
		TotalValue: decimal.RequireFromString("1949.85"),
	}

	b, err := xlsx.NewExcelReportGenerator().Render(context.Background(), r)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Stock", "Résumé"}, f.GetSheetList())

	sku, err := f.GetCellValue("Stock", "A2")
	require.NoError(t, err)
	assert.Equal(t, "LOG-GPRO-KB", sku)

	qty, err := f.GetCellValue("Stock", "E2")
	require.NoError(t, err)
	assert.Equal(t, "15", qty)

	units, err := f.GetCellValue("Résumé", "B6")
	require.NoError(t, err)
	assert.Equal(t, "15", units)
}
