// Package memory persistencia en el propio proceso: útil en desarrollo y tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo guarda el snapshot serializado para que Load devuelva siempre una copia independiente.
type SnapshotRepo struct {
	mu   sync.Mutex
	data []byte
}

// NewSnapshotRepository repositorio vacío.
func NewSnapshotRepository() *SnapshotRepo {
	return &SnapshotRepo{}
}

func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil, nil
	}
	var s entity.Snapshot
	if err := json.Unmarshal(r.data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, s entity.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}
