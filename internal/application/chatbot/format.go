package chatbot

import (
	"fmt"
	"strings"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

// Mensajes visibles para el usuario (en francés, como la interfaz).
const (
	msgAddStockUsage       = `Je n'ai pas trouvé ce produit. Essayez: "Ajoute 10 [nom du produit]"`
	msgSetStockUsage       = `Je n'ai pas compris. Essayez: "Change le stock de [produit] à [nombre]"`
	msgCreateCategoryUsage = `Essayez: "Crée une catégorie [nom]"`
	msgProductInfoUsage    = `Produit non trouvé. Essayez: "Info sur [nom du produit]"`
	msgFallback            = `Je n'ai pas compris votre demande. Tapez "aide" pour voir les commandes disponibles.`
	msgNoOutOfStock        = "Aucun produit n'est en rupture de stock."
	msgAddProductUsage     = `Précisez au moins le nom du produit à ajouter.`
	msgSupplierUsage       = `Précisez le nom du fournisseur à créer.`

	// WelcomeMessage primer mensaje del asistente en una conversación nueva.
	WelcomeMessage = "Bonjour ! Je suis l'assistant IA de MoreFix. Je peux vous aider à gérer votre stock.\n\nTapez \"aide\" pour voir les commandes disponibles."

	// HelpMessage lista de frases reconocidas.
	HelpMessage = `**Commandes disponibles:**
• "Ajoute [nombre] [produit]" - Ajouter du stock
• "Change le stock de [produit] à [nombre]" - Modifier le stock
• "Crée une catégorie [nom]" - Créer une catégorie
• "Quels produits sont en rupture ?" - Voir les ruptures
• "Stock faible" - Voir les stocks bas
• "Liste les produits" - Lister l'inventaire
• "Info sur [produit]" - Détails d'un produit
• "Valeur du stock" - Valeur totale`
)

const listProductsLimit = 10

func formatOutOfStock(products []entity.Product) string {
	if len(products) == 0 {
		return msgNoOutOfStock
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("• %s (%s)", p.Name, p.SKU))
	}
	return fmt.Sprintf("%d produit(s) en rupture de stock:\n%s", len(products), strings.Join(lines, "\n"))
}

func formatLowStock(products []entity.Product, threshold int) string {
	if len(products) == 0 {
		return fmt.Sprintf("Aucun produit n'a un stock faible (moins de %d unités).", threshold)
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("• %s: %d unité(s)", p.Name, p.Quantity))
	}
	return fmt.Sprintf("%d produit(s) avec stock faible:\n%s", len(products), strings.Join(lines, "\n"))
}

func formatProductList(products []entity.Product) string {
	shown := products
	if len(shown) > listProductsLimit {
		shown = shown[:listProductsLimit]
	}
	lines := make([]string, 0, len(shown))
	for _, p := range shown {
		lines = append(lines, fmt.Sprintf("• %s: %d unité(s) - %s€", p.Name, p.Quantity, p.Price.String()))
	}
	msg := fmt.Sprintf("%d produit(s) en inventaire:\n%s", len(products), strings.Join(lines, "\n"))
	if extra := len(products) - listProductsLimit; extra > 0 {
		msg += fmt.Sprintf("\n... et %d autre(s)", extra)
	}
	return msg
}

func formatCategoryList(categories []entity.Category) string {
	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, "• "+c.Name)
	}
	return fmt.Sprintf("%d catégorie(s):\n%s", len(categories), strings.Join(lines, "\n"))
}

func formatSupplierList(suppliers []entity.Supplier) string {
	lines := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		line := "• " + s.Name
		if s.Email != "" {
			line += " (" + s.Email + ")"
		}
		lines = append(lines, line)
	}
	return fmt.Sprintf("%d fournisseur(s):\n%s", len(suppliers), strings.Join(lines, "\n"))
}

func formatProductInfo(d ProductDetail) string {
	return fmt.Sprintf("**%s**\nSKU: %s\nCatégorie: %s\nFournisseur: %s\nPrix: %s€\nStock: %d unité(s)\n%s",
		d.Product.Name, d.Product.SKU, d.CategoryName, d.SupplierName, d.Product.Price.String(), d.Product.Quantity, d.Product.Description)
}

func formatStockValue(v StockValueData) string {
	return fmt.Sprintf("Valeur totale du stock: %s\nNombre total d'articles: %d", textnorm.FormatEuro(v.Value), v.Units)
}
