package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/domain/inventory"
	"github.com/jhoicas/morefix-stock/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

const createSnapshotTable = `
	CREATE TABLE IF NOT EXISTS store_snapshots (
		key           TEXT PRIMARY KEY,
		payload       JSONB NOT NULL,
		product_count INTEGER NOT NULL,
		stock_value   NUMERIC(16,2) NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`

// SnapshotRepo guarda el snapshot completo como JSONB en una fila por clave.
// product_count y stock_value se desnormalizan para consultas SQL rápidas.
type SnapshotRepo struct {
	q   Querier
	key string
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier, key string) *SnapshotRepo {
	return &SnapshotRepo{q: q, key: key}
}

// EnsureSchema crea la tabla si no existe.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, createSnapshotTable); err != nil {
		return fmt.Errorf("create store_snapshots: %w", err)
	}
	return nil
}

// Load devuelve (nil, nil) si no hay fila para la clave.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	var payload []byte
	err := r.q.QueryRow(ctx, `SELECT payload FROM store_snapshots WHERE key = $1`, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	var s entity.Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

// Save hace upsert de la fila completa.
func (r *SnapshotRepo) Save(ctx context.Context, s entity.Snapshot) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	query := `
		INSERT INTO store_snapshots (key, payload, product_count, stock_value, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			product_count = EXCLUDED.product_count,
			stock_value = EXCLUDED.stock_value,
			updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(ctx, query,
		r.key, payload, len(s.Products), inventory.TotalValue(s.Products).Round(2), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}
