package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

const lockTTL = 10 * time.Second

// SnapshotRepo guarda el snapshot como JSON bajo una clave fija. Las escrituras toman un
// lock distribuido "lock:<clave>" para que dos procesos (api y stockctl) no se pisen.
type SnapshotRepo struct {
	rdb    goredis.UniversalClient
	locker *redislock.Client
	key    string
}

// NewSnapshotRepository construye el adaptador sobre un cliente ya conectado.
func NewSnapshotRepository(rdb goredis.UniversalClient, key string) *SnapshotRepo {
	return &SnapshotRepo{rdb: rdb, locker: redislock.New(rdb), key: key}
}

// Load devuelve (nil, nil) si la clave no existe.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	var s entity.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

// Save serializa y escribe el snapshot sin expiración.
func (r *SnapshotRepo) Save(ctx context.Context, s entity.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	lock, err := r.locker.Obtain(ctx, "lock:"+r.key, lockTTL, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return fmt.Errorf("redis lock %s ocupado: %w", r.key, err)
	} else if err != nil {
		return fmt.Errorf("redis lock %s: %w", r.key, err)
	}
	defer func() {
		_ = lock.Release(context.WithoutCancel(ctx))
	}()

	if err := r.rdb.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}
