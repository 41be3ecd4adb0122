// Package seed contiene el catálogo inicial de la tienda: 7 categorías, 3 proveedores y 12 productos.
// Se usa cuando el backend de persistencia no tiene snapshot guardado o falla al cargarlo.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

// Default devuelve un snapshot nuevo con los datos iniciales; cada llamada crea slices propios.
func Default() entity.Snapshot {
	return At(time.Now().UTC())
}

// At igual que Default pero con CreatedAt fijo, útil en tests.
func At(now time.Time) entity.Snapshot {
	cat := func(id, name, desc string) entity.Category {
		return entity.Category{ID: id, Name: name, Description: desc, CreatedAt: now}
	}
	sup := func(id, name, email, phone string) entity.Supplier {
		return entity.Supplier{ID: id, Name: name, Email: email, Phone: phone, CreatedAt: now}
	}
	prod := func(id, name, desc, categoryID, supplierID, price string, qty int, sku string) entity.Product {
		return entity.Product{
			ID:          id,
			Name:        name,
			Description: desc,
			CategoryID:  categoryID,
			SupplierID:  supplierID,
			Price:       decimal.RequireFromString(price),
			Quantity:    qty,
			SKU:         sku,
			CreatedAt:   now,
		}
	}

	return entity.Snapshot{
		Categories: []entity.Category{
			cat("cat-1", "Claviers", "Claviers mécaniques et membrane"),
			cat("cat-2", "Souris", "Souris gaming et bureautique"),
			cat("cat-3", "CPU", "Processeurs Intel et AMD"),
			cat("cat-4", "GPU", "Cartes graphiques NVIDIA et AMD"),
			cat("cat-5", "RAM", "Mémoire vive DDR4 et DDR5"),
			cat("cat-6", "SSD", "Stockage SSD NVMe et SATA"),
			cat("cat-7", "Accessoires", "Câbles, supports et autres accessoires"),
		},
		Suppliers: []entity.Supplier{
			sup("sup-1", "TechDistrib", "contact@techdistrib.fr", "01 23 45 67 89"),
			sup("sup-2", "InfoPro Supply", "commande@infopro.fr", "01 98 76 54 32"),
			sup("sup-3", "PC Parts Express", "sales@pcparts.com", "01 11 22 33 44"),
		},
		Products: []entity.Product{
			prod("prod-1", "Clavier Logitech G Pro", "Clavier mécanique gaming", "cat-1", "sup-1", "129.99", 15, "LOG-GPRO-KB"),
			prod("prod-2", "Clavier Corsair K70", "Clavier mécanique RGB", "cat-1", "sup-2", "149.99", 8, "COR-K70-RGB"),
			prod("prod-3", "Souris Logitech G502", "Souris gaming haute précision", "cat-2", "sup-1", "79.99", 25, "LOG-G502-MS"),
			prod("prod-4", "Souris Razer DeathAdder", "Souris gaming ergonomique", "cat-2", "sup-3", "69.99", 0, "RAZ-DA-V3"),
			prod("prod-5", "Intel Core i7-13700K", "Processeur 16 coeurs", "cat-3", "sup-2", "419.99", 5, "INT-I7-13K"),
			prod("prod-6", "AMD Ryzen 7 7800X3D", "Processeur gaming", "cat-3", "sup-1", "449.99", 3, "AMD-R7-7800"),
			prod("prod-7", "NVIDIA RTX 4070", "Carte graphique gaming", "cat-4", "sup-2", "599.99", 7, "NV-RTX4070"),
			prod("prod-8", "NVIDIA RTX 3060", "Carte graphique entrée de gamme", "cat-4", "sup-3", "329.99", 2, "NV-RTX3060"),
			prod("prod-9", "Corsair Vengeance 32GB DDR5", "Kit RAM 2x16GB 5600MHz", "cat-5", "sup-1", "149.99", 20, "COR-VEN-32"),
			prod("prod-10", "Samsung 990 Pro 1TB", "SSD NVMe PCIe 4.0", "cat-6", "sup-2", "129.99", 12, "SAM-990-1T"),
			prod("prod-11", "Câble HDMI 2.1 2m", "Câble haute vitesse 4K 120Hz", "cat-7", "sup-3", "19.99", 50, "CAB-HDMI-2M"),
			prod("prod-12", "Support écran ergonomique", "Bras articulé pour moniteur", "cat-7", "sup-1", "39.99", 0, "SUP-MON-ARM"),
		},
		ChatMessages: []entity.ChatMessage{},
	}
}
