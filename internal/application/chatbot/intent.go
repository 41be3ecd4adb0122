package chatbot

import "github.com/shopspring/decimal"

// Intent petición ya interpretada, lista para ejecutarse contra el inventario.
// La producen tanto los detectores por reglas como el asistente IA.
type Intent interface {
	// Kind identifica la intención en Result.Intent.
	Kind() string
}

// Nombres de intención expuestos en Result.Intent.
const (
	IntentAddStock        = "add_stock"
	IntentSetStock        = "set_stock"
	IntentCreateCategory  = "create_category"
	IntentOutOfStock      = "out_of_stock"
	IntentLowStock        = "low_stock"
	IntentListProducts    = "list_products"
	IntentListCategories  = "list_categories"
	IntentProductInfo     = "product_info"
	IntentStockValue      = "stock_value"
	IntentHelp            = "help"
	IntentUnknown         = "unknown"
	IntentAddProduct      = "add_product"
	IntentDeleteCategory  = "delete_category"
	IntentCreateSupplier  = "create_supplier"
	IntentListSuppliers   = "list_suppliers"
	IntentGeneralQuestion = "general_question"
)

// AddStock suma Quantity al producto que coincida con ProductName.
type AddStock struct {
	ProductName string
	Quantity    int
}

// SetStock fija la cantidad absoluta.
type SetStock struct {
	ProductName string
	Quantity    int
}

// CreateCategory crea la categoría salvo que ya exista una con nombre parecido.
type CreateCategory struct {
	Name        string
	Description string
}

type OutOfStock struct{}

// LowStock Threshold <= 0 usa el umbral del intérprete.
type LowStock struct{ Threshold int }

// ListProducts CategoryName vacío lista todo el inventario.
type ListProducts struct{ CategoryName string }

type ListCategories struct{}

type ProductInfo struct{ ProductName string }

type StockValue struct{}

type Help struct{}

// Unknown ninguna regla reconoció el texto.
type Unknown struct{}

// AddProduct alta completa de producto (solo vía asistente IA).
type AddProduct struct {
	Name         string
	SKU          string
	Description  string
	Price        decimal.Decimal
	Quantity     int
	CategoryName string
	SupplierName string
}

type DeleteCategory struct{ Name string }

type CreateSupplier struct {
	Name  string
	Email string
	Phone string
}

type ListSuppliers struct{}

// GeneralQuestion conversación sin efecto sobre el inventario; Reply es la respuesta del modelo.
type GeneralQuestion struct{ Reply string }

func (AddStock) Kind() string        { return IntentAddStock }
func (SetStock) Kind() string        { return IntentSetStock }
func (CreateCategory) Kind() string  { return IntentCreateCategory }
func (OutOfStock) Kind() string      { return IntentOutOfStock }
func (LowStock) Kind() string        { return IntentLowStock }
func (ListProducts) Kind() string    { return IntentListProducts }
func (ListCategories) Kind() string  { return IntentListCategories }
func (ProductInfo) Kind() string     { return IntentProductInfo }
func (StockValue) Kind() string      { return IntentStockValue }
func (Help) Kind() string            { return IntentHelp }
func (Unknown) Kind() string         { return IntentUnknown }
func (AddProduct) Kind() string      { return IntentAddProduct }
func (DeleteCategory) Kind() string  { return IntentDeleteCategory }
func (CreateSupplier) Kind() string  { return IntentCreateSupplier }
func (ListSuppliers) Kind() string   { return IntentListSuppliers }
func (GeneralQuestion) Kind() string { return IntentGeneralQuestion }
