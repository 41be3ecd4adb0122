package chatbot

import (
	"strings"
	"unicode"
)

// detector regla del intérprete: trigger decide sobre el texto normalizado y parse extrae la
// intención del texto original. Un *Result no nil en parse es un fallo terminal.
type detector struct {
	name    string
	trigger func(normalized string) bool
	parse   func(raw string) (Intent, *Result)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hasWordPrefix alguna palabra del texto empieza por uno de los prefijos.
func hasWordPrefix(s string, prefixes ...string) bool {
	for _, w := range strings.FieldsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }) {
		for _, p := range prefixes {
			if strings.HasPrefix(w, p) {
				return true
			}
		}
	}
	return false
}

// defaultDetectors el orden importa: gana el primer trigger que se cumpla.
func defaultDetectors() []detector {
	return []detector{
		{
			name:    IntentAddStock,
			trigger: func(n string) bool { return containsAny(n, "ajoute", "ajouter") },
			parse:   parseAddStock,
		},
		{
			name:    IntentSetStock,
			trigger: func(n string) bool { return hasWordPrefix(n, "change", "met", "modifi", "defini") },
			parse:   parseSetStock,
		},
		{
			name: IntentCreateCategory,
			trigger: func(n string) bool {
				return containsAny(n, "cree", "creer", "nouvelle") && strings.Contains(n, "categorie")
			},
			parse: parseCreateCategory,
		},
		{
			name: IntentOutOfStock,
			trigger: func(n string) bool {
				if containsAny(n, "rupture", "plus en stock") {
					return true
				}
				return strings.Contains(n, "epuise") && !strings.Contains(n, "bientot")
			},
			parse: constant(OutOfStock{}),
		},
		{
			name:    IntentLowStock,
			trigger: func(n string) bool { return containsAny(n, "stock faible", "faible stock", "stock bas", "bientot epuise") },
			parse:   constant(LowStock{}),
		},
		{
			name: IntentListProducts,
			trigger: func(n string) bool {
				return containsAny(n, "liste", "montre", "affiche") && strings.Contains(n, "produit")
			},
			parse: constant(ListProducts{}),
		},
		{
			name: IntentListCategories,
			trigger: func(n string) bool {
				return containsAny(n, "liste", "montre", "affiche") && strings.Contains(n, "categorie")
			},
			parse: constant(ListCategories{}),
		},
		{
			name:    IntentProductInfo,
			trigger: func(n string) bool { return containsAny(n, "info", "detail", "combien") },
			parse:   parseProductInfo,
		},
		{
			name: IntentStockValue,
			trigger: func(n string) bool {
				return strings.Contains(n, "valeur") && containsAny(n, "stock", "inventaire")
			},
			parse: constant(StockValue{}),
		},
		{
			name:    IntentHelp,
			trigger: func(n string) bool { return containsAny(n, "aide", "help", "commande") },
			parse:   constant(Help{}),
		},
	}
}

func constant(in Intent) func(string) (Intent, *Result) {
	return func(string) (Intent, *Result) { return in, nil }
}

func parseAddStock(raw string) (Intent, *Result) {
	qty, rest, ok := extractFirstNumber(raw)
	if !ok {
		return nil, failure(IntentAddStock, msgAddStockUsage)
	}
	fragment := strings.Join(cleanWords(rest, addStockStopwords), " ")
	if fragment == "" {
		return nil, failure(IntentAddStock, msgAddStockUsage)
	}
	return AddStock{ProductName: fragment, Quantity: qty}, nil
}

func parseSetStock(raw string) (Intent, *Result) {
	qty, prefix, ok := extractTargetQuantity(raw)
	if !ok {
		return nil, failure(IntentSetStock, msgSetStockUsage)
	}
	fragment := setStockFragment(prefix)
	if fragment == "" {
		return nil, failure(IntentSetStock, msgSetStockUsage)
	}
	return SetStock{ProductName: fragment, Quantity: qty}, nil
}

func parseCreateCategory(raw string) (Intent, *Result) {
	name, ok := extractCategoryName(raw)
	if !ok {
		return nil, failure(IntentCreateCategory, msgCreateCategoryUsage)
	}
	return CreateCategory{Name: name}, nil
}

func parseProductInfo(raw string) (Intent, *Result) {
	fragment := strings.Join(cleanWords(raw, infoStopwords), " ")
	if fragment == "" {
		return nil, failure(IntentProductInfo, msgProductInfoUsage)
	}
	return ProductInfo{ProductName: fragment}, nil
}

func failure(intent, msg string) *Result {
	return &Result{Success: false, Message: msg, Intent: intent}
}
