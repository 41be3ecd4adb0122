package assistant

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/domain"
)

// Intenciones que puede devolver el modelo.
const (
	IntentUpdateStock     = "UPDATE_STOCK"
	IntentAddProduct      = "ADD_PRODUCT"
	IntentCreateCategory  = "CREATE_CATEGORY"
	IntentDeleteCategory  = "DELETE_CATEGORY"
	IntentCreateSupplier  = "CREATE_SUPPLIER"
	IntentGetLowStock     = "GET_LOW_STOCK"
	IntentGetOutOfStock   = "GET_OUT_OF_STOCK"
	IntentGetProductInfo  = "GET_PRODUCT_INFO"
	IntentGetStockValue   = "GET_STOCK_VALUE"
	IntentListProducts    = "LIST_PRODUCTS"
	IntentListCategories  = "LIST_CATEGORIES"
	IntentListSuppliers   = "LIST_SUPPLIERS"
	IntentGeneralQuestion = "GENERAL_QUESTION"
)

// modelReply JSON que el prompt exige al modelo.
type modelReply struct {
	Intent  string    `json:"intent"`
	Data    replyData `json:"data"`
	Message string    `json:"message"`
}

// replyData unión de los campos de todas las intenciones; los números aceptan 5 o "5".
type replyData struct {
	ProductName  string          `json:"productName"`
	Quantity     decimal.Decimal `json:"quantity"`
	Operation    string          `json:"operation"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description"`
	CategoryName string          `json:"categoryName"`
	SupplierName string          `json:"supplierName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON quita bloques de código markdown y devuelve el primer {...} del texto.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}

// parseReply decodifica la respuesta cruda del modelo.
func parseReply(raw string) (modelReply, error) {
	clean := extractJSON(raw)
	if clean == "" {
		return modelReply{}, fmt.Errorf("%w: sin JSON en la respuesta", domain.ErrAIResponse)
	}
	var r modelReply
	if err := json.Unmarshal([]byte(clean), &r); err != nil {
		return modelReply{}, fmt.Errorf("%w: %v", domain.ErrAIResponse, err)
	}
	r.Intent = strings.ToUpper(strings.TrimSpace(r.Intent))
	return r, nil
}

// toIntent traduce la intención del modelo a la unión que ejecuta el intérprete.
// Una intención desconocida se trata como conversación general.
func (r modelReply) toIntent() chatbot.Intent {
	d := r.Data
	switch r.Intent {
	case IntentUpdateStock:
		qty := int(d.Quantity.IntPart())
		if strings.EqualFold(d.Operation, "set") {
			return chatbot.SetStock{ProductName: d.ProductName, Quantity: qty}
		}
		return chatbot.AddStock{ProductName: d.ProductName, Quantity: qty}
	case IntentAddProduct:
		return chatbot.AddProduct{
			Name:         d.Name,
			SKU:          d.SKU,
			Description:  d.Description,
			Price:        d.Price,
			Quantity:     int(d.Quantity.IntPart()),
			CategoryName: d.CategoryName,
			SupplierName: d.SupplierName,
		}
	case IntentCreateCategory:
		return chatbot.CreateCategory{Name: d.Name, Description: d.Description}
	case IntentDeleteCategory:
		return chatbot.DeleteCategory{Name: d.Name}
	case IntentCreateSupplier:
		return chatbot.CreateSupplier{Name: d.Name, Email: d.Email, Phone: d.Phone}
	case IntentGetLowStock:
		return chatbot.LowStock{}
	case IntentGetOutOfStock:
		return chatbot.OutOfStock{}
	case IntentGetProductInfo:
		return chatbot.ProductInfo{ProductName: d.ProductName}
	case IntentGetStockValue:
		return chatbot.StockValue{}
	case IntentListProducts:
		return chatbot.ListProducts{CategoryName: d.CategoryName}
	case IntentListCategories:
		return chatbot.ListCategories{}
	case IntentListSuppliers:
		return chatbot.ListSuppliers{}
	default:
		return chatbot.GeneralQuestion{Reply: r.Message}
	}
}
