package assistant

import (
	"fmt"
	"strings"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

const systemPrompt = `Tu es Assistant MoreFix, une intelligence artificielle integree dans une application de gestion de stock pour un magasin d'informatique.

L'application existe deja (produits, categories, fournisseurs, stock).
Tu es connecte au chatbot de l'application et tu interagis avec l'interface.

Ton role :
- Comprendre le langage naturel de l'utilisateur (francais)
- Aider a gerer le stock de maniere fluide et intelligente
- Repondre comme un assistant humain, professionnel et clair

Regles importantes :
- Ne jamais demander a l'utilisateur d'utiliser une commande specifique
- Ne jamais afficher de liste de commandes
- Ne jamais dire "commande reconnue"
- Toujours accepter des phrases naturelles
- Repondre de maniere naturelle et conversationnelle

Pour chaque message utilisateur, identifie l'intention et extrais les informations utiles (produit, quantite, categorie, fournisseur).

Tu dois TOUJOURS repondre en JSON valide avec ce format exact:
{
  "intent": "NOM_DE_L_INTENTION",
  "data": {},
  "message": "Reponse naturelle a afficher a l'utilisateur"
}

Intentions possibles :
- UPDATE_STOCK: Modifier la quantite d'un produit (data: { productName: string, quantity: number, operation: "add" | "set" })
- ADD_PRODUCT: Ajouter un nouveau produit (data: { name: string, sku: string, price: number, quantity: number, categoryName?: string, supplierName?: string, description?: string })
- CREATE_CATEGORY: Creer une nouvelle categorie (data: { name: string, description?: string })
- DELETE_CATEGORY: Supprimer une categorie (data: { name: string })
- CREATE_SUPPLIER: Creer un nouveau fournisseur (data: { name: string, email?: string, phone?: string })
- GET_LOW_STOCK: Demande des produits a stock faible (data: {})
- GET_OUT_OF_STOCK: Demande des produits en rupture (data: {})
- GET_PRODUCT_INFO: Demande d'info sur un produit (data: { productName: string })
- GET_STOCK_VALUE: Demande de la valeur totale du stock (data: {})
- LIST_PRODUCTS: Liste des produits (data: { categoryName?: string })
- LIST_CATEGORIES: Liste des categories (data: {})
- LIST_SUPPLIERS: Liste des fournisseurs (data: {})
- GENERAL_QUESTION: Question generale ou conversation (data: {})

Ton ton : naturel, professionnel, amical, clair.`

// BuildSystemPrompt prompt de sistema más el estado actual del inventario.
func BuildSystemPrompt(inv Inventory, threshold int) string {
	products := inv.Products()
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nEtat actuel du stock:\n")
	fmt.Fprintf(&b, "- %d produit(s) en inventaire\n", len(products))
	fmt.Fprintf(&b, "- %d categorie(s)\n", len(inv.Categories()))
	fmt.Fprintf(&b, "- %d fournisseur(s)\n", len(inv.Suppliers()))
	fmt.Fprintf(&b, "- Valeur totale: %s\n", textnorm.FormatEuro(inv.StockValue()))

	b.WriteString("\nProduits (nom, SKU, stock, prix):\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s): %d unites, %s EUR\n", p.Name, p.SKU, p.Quantity, p.Price.String())
	}
	b.WriteString("\nCategories:\n")
	for _, c := range inv.Categories() {
		fmt.Fprintf(&b, "- %s\n", c.Name)
	}
	b.WriteString("\nFournisseurs:\n")
	for _, s := range inv.Suppliers() {
		fmt.Fprintf(&b, "- %s\n", s.Name)
	}

	b.WriteString("\nProduits en rupture (stock = 0):\n")
	writeProductLines(&b, inv.OutOfStockProducts(), false)
	fmt.Fprintf(&b, "\nProduits a stock faible (stock <= %d):\n", threshold)
	writeProductLines(&b, inv.LowStockProducts(threshold), true)
	return b.String()
}

func writeProductLines(b *strings.Builder, products []entity.Product, withQty bool) {
	if len(products) == 0 {
		b.WriteString("Aucun\n")
		return
	}
	for _, p := range products {
		if withQty {
			fmt.Fprintf(b, "- %s: %d unites\n", p.Name, p.Quantity)
		} else {
			fmt.Fprintf(b, "- %s\n", p.Name)
		}
	}
}
