package store

import "github.com/jhoicas/morefix-stock/internal/domain/entity"

// Action mutación explícita del inventario. Solo los tipos de este paquete la implementan.
type Action interface {
	isAction()
}

// LoadState reemplaza el estado completo (hidratación desde persistencia o reset).
type LoadState struct{ State entity.Snapshot }

// AddCategory agrega una categoría ya construida (ID y CreatedAt asignados por el Store).
type AddCategory struct{ Category entity.Category }

// UpdateCategory reemplaza la categoría con el mismo ID; no-op si no existe.
type UpdateCategory struct{ Category entity.Category }

// DeleteCategory elimina por ID sin tocar productos.
type DeleteCategory struct{ ID string }

type AddSupplier struct{ Supplier entity.Supplier }
type UpdateSupplier struct{ Supplier entity.Supplier }
type DeleteSupplier struct{ ID string }

type AddProduct struct{ Product entity.Product }
type UpdateProduct struct{ Product entity.Product }
type DeleteProduct struct{ ID string }

// AddChatMessage agrega al historial (sin límite).
type AddChatMessage struct{ Message entity.ChatMessage }

func (LoadState) isAction()      {}
func (AddCategory) isAction()    {}
func (UpdateCategory) isAction() {}
func (DeleteCategory) isAction() {}
func (AddSupplier) isAction()    {}
func (UpdateSupplier) isAction() {}
func (DeleteSupplier) isAction() {}
func (AddProduct) isAction()     {}
func (UpdateProduct) isAction()  {}
func (DeleteProduct) isAction()  {}
func (AddChatMessage) isAction() {}
