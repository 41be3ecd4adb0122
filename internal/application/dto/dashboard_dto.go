package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalCategories int             `json:"total_categories"`
	TotalSuppliers  int             `json:"total_suppliers"`
	TotalUnits      int             `json:"total_units"`
	StockValue      decimal.Decimal `json:"stock_value"`
	StockValueLabel string          `json:"stock_value_label"` // ej: "19 018,53€"

	LowStockThreshold int               `json:"low_stock_threshold"`
	LowStock          []ProductResponse `json:"low_stock"`
	OutOfStock        []ProductResponse `json:"out_of_stock"`

	// Productos por categoría, ordenados de mayor a menor.
	ByCategory []CategoryCountDTO `json:"by_category"`
}

// CategoryCountDTO conteo de productos y unidades de una categoría.
type CategoryCountDTO struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Products     int    `json:"products"`
	Units        int    `json:"units"`
}
