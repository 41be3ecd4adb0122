package store

import "github.com/jhoicas/morefix-stock/internal/domain/entity"

// Reduce aplica la acción y devuelve un snapshot nuevo. Nunca modifica los slices de s:
// la colección afectada se reconstruye y las demás se comparten.
func Reduce(s entity.Snapshot, a Action) entity.Snapshot {
	switch act := a.(type) {
	case LoadState:
		return normalize(act.State.Clone())
	case AddCategory:
		s.Categories = appendCopy(s.Categories, act.Category)
	case UpdateCategory:
		s.Categories = replaceByID(s.Categories, act.Category, func(c entity.Category) string { return c.ID })
	case DeleteCategory:
		s.Categories = removeByID(s.Categories, act.ID, func(c entity.Category) string { return c.ID })
	case AddSupplier:
		s.Suppliers = appendCopy(s.Suppliers, act.Supplier)
	case UpdateSupplier:
		s.Suppliers = replaceByID(s.Suppliers, act.Supplier, func(sp entity.Supplier) string { return sp.ID })
	case DeleteSupplier:
		s.Suppliers = removeByID(s.Suppliers, act.ID, func(sp entity.Supplier) string { return sp.ID })
	case AddProduct:
		s.Products = appendCopy(s.Products, act.Product)
	case UpdateProduct:
		s.Products = replaceByID(s.Products, act.Product, func(p entity.Product) string { return p.ID })
	case DeleteProduct:
		s.Products = removeByID(s.Products, act.ID, func(p entity.Product) string { return p.ID })
	case AddChatMessage:
		s.ChatMessages = appendCopy(s.ChatMessages, act.Message)
	}
	return s
}

func appendCopy[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func replaceByID[T any](items []T, item T, id func(T) string) []T {
	target := id(item)
	for i := range items {
		if id(items[i]) == target {
			out := append([]T(nil), items...)
			out[i] = item
			return out
		}
	}
	return items
}

func removeByID[T any](items []T, target string, id func(T) string) []T {
	for i := range items {
		if id(items[i]) == target {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...)
		}
	}
	return items
}

// normalize evita slices nil para que el JSON serialice [] y no null.
func normalize(s entity.Snapshot) entity.Snapshot {
	if s.Categories == nil {
		s.Categories = []entity.Category{}
	}
	if s.Suppliers == nil {
		s.Suppliers = []entity.Supplier{}
	}
	if s.Products == nil {
		s.Products = []entity.Product{}
	}
	if s.ChatMessages == nil {
		s.ChatMessages = []entity.ChatMessage{}
	}
	return s
}
