// Package chatbot interpreta órdenes en francés y las aplica sobre el inventario.
//
// El texto se normaliza, se recorre una lista ordenada de detectores (el primero que
// coincide gana) y la intención resultante se ejecuta con Execute, que también usa el
// asistente IA para aplicar las intenciones que devuelve el modelo.
package chatbot

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/domain/inventory"
	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

// Inventory lo que el intérprete necesita del store.
type Inventory interface {
	Products() []entity.Product
	Categories() []entity.Category
	Suppliers() []entity.Supplier
	GetCategoryByID(id string) (entity.Category, bool)
	GetSupplierByID(id string) (entity.Supplier, bool)
	ProductsByCategory(categoryID string) []entity.Product
	LowStockProducts(threshold int) []entity.Product
	OutOfStockProducts() []entity.Product
	StockValue() decimal.Decimal
	TotalUnits() int
	UpdateProduct(p entity.Product) bool
	AddProduct(p entity.Product) entity.Product
	AddCategory(name, description string) entity.Category
	DeleteCategory(id string) bool
	AddSupplier(name, email, phone string) entity.Supplier
	AddChatMessage(role, content string) entity.ChatMessage
}

// Result resultado de una orden. Action solo se informa en éxito; Intent siempre que una regla
// haya reconocido el texto ("unknown" en el fallback).
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Intent  string `json:"intent,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ProductDetail ficha de producto con las referencias resueltas ("N/A" si cuelgan).
type ProductDetail struct {
	Product      entity.Product `json:"product"`
	CategoryName string         `json:"categoryName"`
	SupplierName string         `json:"supplierName"`
}

// StockValueData valor y unidades totales del inventario.
type StockValueData struct {
	Value decimal.Decimal `json:"value"`
	Units int             `json:"units"`
}

// Interpreter intérprete por reglas. Execute se serializa con mu: cada orden lee y
// escribe el inventario como una sola unidad.
type Interpreter struct {
	inv       Inventory
	threshold int
	detectors []detector
	mu        sync.Locker
}

// Option personaliza el intérprete.
type Option func(*Interpreter)

// WithLowStockThreshold umbral para "stock faible"; valores no positivos usan 5.
func WithLowStockThreshold(n int) Option {
	return func(i *Interpreter) {
		if n > 0 {
			i.threshold = n
		}
	}
}

// WithLock comparte el cerrojo de escritura con otros escritores del inventario (API CRUD).
func WithLock(l sync.Locker) Option {
	return func(i *Interpreter) {
		if l != nil {
			i.mu = l
		}
	}
}

// NewInterpreter construye el intérprete sobre el inventario dado.
func NewInterpreter(inv Inventory, opts ...Option) *Interpreter {
	i := &Interpreter{
		inv:       inv,
		threshold: inventory.DefaultLowStockThreshold,
		detectors: defaultDetectors(),
		mu:        &sync.Mutex{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// LowStockThreshold umbral efectivo.
func (i *Interpreter) LowStockThreshold() int { return i.threshold }

// Parse reconoce la intención del texto sin tocar el inventario. Si la regla reconocida no
// puede extraer sus datos devuelve el Result de fallo listo para mostrar.
func (i *Interpreter) Parse(input string) (Intent, *Result) {
	raw := strings.TrimSpace(input)
	normalized := textnorm.Normalize(raw)
	for _, d := range i.detectors {
		if d.trigger(normalized) {
			return d.parse(raw)
		}
	}
	return Unknown{}, nil
}

// Process interpreta y ejecuta una orden. Nunca devuelve error: los fallos son Results con Success=false.
func (i *Interpreter) Process(input string) Result {
	intent, fail := i.Parse(input)
	if fail != nil {
		return *fail
	}
	return i.Execute(intent)
}

// Chat igual que Process pero registra la pregunta y la respuesta en el historial.
func (i *Interpreter) Chat(input string) Result {
	i.inv.AddChatMessage(entity.RoleUser, strings.TrimSpace(input))
	res := i.Process(input)
	i.inv.AddChatMessage(entity.RoleAssistant, res.Message)
	return res
}

// Execute aplica una intención al inventario.
func (i *Interpreter) Execute(in Intent) Result {
	i.mu.Lock()
	defer i.mu.Unlock()

	switch it := in.(type) {
	case AddStock:
		return i.addStock(it)
	case SetStock:
		return i.setStock(it)
	case CreateCategory:
		return i.createCategory(it)
	case OutOfStock:
		out := i.inv.OutOfStockProducts()
		return succeed(IntentOutOfStock, "query_stock", formatOutOfStock(out), out)
	case LowStock:
		threshold := it.Threshold
		if threshold <= 0 {
			threshold = i.threshold
		}
		low := i.inv.LowStockProducts(threshold)
		return succeed(IntentLowStock, "query_stock", formatLowStock(low, threshold), low)
	case ListProducts:
		return i.listProducts(it)
	case ListCategories:
		cats := i.inv.Categories()
		return succeed(IntentListCategories, "list_categories", formatCategoryList(cats), cats)
	case ProductInfo:
		return i.productInfo(it)
	case StockValue:
		v := StockValueData{Value: i.inv.StockValue(), Units: i.inv.TotalUnits()}
		return succeed(IntentStockValue, "stock_value", formatStockValue(v), v)
	case Help:
		return succeed(IntentHelp, "help", HelpMessage, nil)
	case AddProduct:
		return i.addProduct(it)
	case DeleteCategory:
		return i.deleteCategory(it)
	case CreateSupplier:
		return i.createSupplier(it)
	case ListSuppliers:
		sups := i.inv.Suppliers()
		return succeed(IntentListSuppliers, "list_suppliers", formatSupplierList(sups), sups)
	case GeneralQuestion:
		return Result{Success: true, Message: it.Reply, Intent: it.Kind()}
	default:
		return Result{Success: false, Message: msgFallback, Intent: IntentUnknown}
	}
}

func succeed(intent, action, msg string, data any) Result {
	return Result{Success: true, Message: msg, Action: action, Intent: intent, Data: data}
}

// resolveProduct prueba el fragmento y después su forma singular.
func (i *Interpreter) resolveProduct(fragment string) (entity.Product, bool) {
	products := i.inv.Products()
	if p, found := FindProductByName(products, fragment); found {
		return p, true
	}
	if sg := singular(fragment); sg != fragment {
		return FindProductByName(products, sg)
	}
	return entity.Product{}, false
}

func (i *Interpreter) addStock(it AddStock) Result {
	p, found := i.resolveProduct(it.ProductName)
	if !found {
		return *failure(IntentAddStock, msgAddStockUsage)
	}
	if it.Quantity > math.MaxInt-p.Quantity {
		return *failure(IntentAddStock, msgAddStockUsage)
	}
	p.Quantity = max(p.Quantity+it.Quantity, 0)
	i.inv.UpdateProduct(p)
	return succeed(IntentAddStock, "add_stock",
		fmt.Sprintf("J'ai ajouté %d unité(s) au produit \"%s\". Stock actuel: %d unités.", it.Quantity, p.Name, p.Quantity), p)
}

func (i *Interpreter) setStock(it SetStock) Result {
	p, found := i.resolveProduct(it.ProductName)
	if !found {
		return *failure(IntentSetStock, msgSetStockUsage)
	}
	old := p.Quantity
	p.Quantity = it.Quantity
	i.inv.UpdateProduct(p)
	return succeed(IntentSetStock, "set_stock",
		fmt.Sprintf("Stock de \"%s\" modifié: %d → %d unités.", p.Name, old, it.Quantity), p)
}

func (i *Interpreter) createCategory(it CreateCategory) Result {
	name := strings.TrimSpace(it.Name)
	if name == "" {
		return *failure(IntentCreateCategory, msgCreateCategoryUsage)
	}
	if existing, found := FindCategoryByName(i.inv.Categories(), name); found {
		return *failure(IntentCreateCategory, fmt.Sprintf("La catégorie \"%s\" existe déjà.", existing.Name))
	}
	c := i.inv.AddCategory(name, it.Description)
	return succeed(IntentCreateCategory, "create_category", fmt.Sprintf("Catégorie \"%s\" créée avec succès.", c.Name), c)
}

func (i *Interpreter) listProducts(it ListProducts) Result {
	products := i.inv.Products()
	if strings.TrimSpace(it.CategoryName) != "" {
		c, found := FindCategoryByName(i.inv.Categories(), it.CategoryName)
		if !found {
			return *failure(IntentListProducts, fmt.Sprintf("Catégorie \"%s\" introuvable.", it.CategoryName))
		}
		products = i.inv.ProductsByCategory(c.ID)
	}
	return succeed(IntentListProducts, "list_products", formatProductList(products), products)
}

func (i *Interpreter) productInfo(it ProductInfo) Result {
	p, found := i.resolveProduct(it.ProductName)
	if !found {
		return *failure(IntentProductInfo, msgProductInfoUsage)
	}
	d := ProductDetail{Product: p, CategoryName: "N/A", SupplierName: "N/A"}
	if c, found := i.inv.GetCategoryByID(p.CategoryID); found {
		d.CategoryName = c.Name
	}
	if s, found := i.inv.GetSupplierByID(p.SupplierID); found {
		d.SupplierName = s.Name
	}
	return succeed(IntentProductInfo, "product_info", formatProductInfo(d), d)
}

func (i *Interpreter) addProduct(it AddProduct) Result {
	name := strings.TrimSpace(it.Name)
	if name == "" {
		return *failure(IntentAddProduct, msgAddProductUsage)
	}
	p := entity.Product{
		Name:        name,
		SKU:         strings.TrimSpace(it.SKU),
		Description: it.Description,
		Price:       it.Price,
		Quantity:    max(it.Quantity, 0),
	}
	if it.CategoryName != "" {
		if c, found := FindCategoryByName(i.inv.Categories(), it.CategoryName); found {
			p.CategoryID = c.ID
		}
	}
	if it.SupplierName != "" {
		if s, found := FindSupplierByName(i.inv.Suppliers(), it.SupplierName); found {
			p.SupplierID = s.ID
		}
	}
	added := i.inv.AddProduct(p)
	return succeed(IntentAddProduct, "add_product",
		fmt.Sprintf("Produit \"%s\" ajouté avec %d unité(s).", added.Name, added.Quantity), added)
}

func (i *Interpreter) deleteCategory(it DeleteCategory) Result {
	c, found := FindCategoryByName(i.inv.Categories(), it.Name)
	if !found {
		return *failure(IntentDeleteCategory, fmt.Sprintf("Catégorie \"%s\" introuvable.", it.Name))
	}
	i.inv.DeleteCategory(c.ID)
	return succeed(IntentDeleteCategory, "delete_category", fmt.Sprintf("Catégorie \"%s\" supprimée.", c.Name), c)
}

func (i *Interpreter) createSupplier(it CreateSupplier) Result {
	name := strings.TrimSpace(it.Name)
	if name == "" {
		return *failure(IntentCreateSupplier, msgSupplierUsage)
	}
	if existing, found := FindSupplierByName(i.inv.Suppliers(), name); found {
		return *failure(IntentCreateSupplier, fmt.Sprintf("Le fournisseur \"%s\" existe déjà.", existing.Name))
	}
	s := i.inv.AddSupplier(name, it.Email, it.Phone)
	return succeed(IntentCreateSupplier, "create_supplier", fmt.Sprintf("Fournisseur \"%s\" créé avec succès.", s.Name), s)
}
