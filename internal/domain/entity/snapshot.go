package entity

// Snapshot estado completo del inventario; es la unidad de persistencia.
// El formato JSON coincide con el estado guardado por la aplicación web.
type Snapshot struct {
	Categories   []Category    `json:"categories"`
	Suppliers    []Supplier    `json:"suppliers"`
	Products     []Product     `json:"products"`
	ChatMessages []ChatMessage `json:"chatMessages"`
}

// Clone devuelve una copia con slices propios (los elementos son valores).
// Conserva la distinción entre slice nil y vacío.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Categories:   cloneSlice(s.Categories),
		Suppliers:    cloneSlice(s.Suppliers),
		Products:     cloneSlice(s.Products),
		ChatMessages: cloneSlice(s.ChatMessages),
	}
}

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
