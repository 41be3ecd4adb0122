package repository

import (
	"context"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

// SnapshotRepository define el puerto de persistencia del snapshot completo del inventario (DIP).
// Load devuelve (nil, nil) cuando todavía no hay nada guardado bajo la clave configurada.
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, snapshot entity.Snapshot) error
}
