// Package persistence abre el backend de snapshot configurado en STORE_BACKEND.
package persistence

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/morefix-stock/internal/domain/repository"
	"github.com/jhoicas/morefix-stock/internal/infrastructure/memory"
	"github.com/jhoicas/morefix-stock/internal/infrastructure/postgres"
	"github.com/jhoicas/morefix-stock/internal/infrastructure/redis"
	"github.com/jhoicas/morefix-stock/internal/infrastructure/sqlite"
	"github.com/jhoicas/morefix-stock/pkg/config"
)

// Backend repositorio abierto más la función que libera sus recursos.
type Backend struct {
	Name  string
	Repo  repository.SnapshotRepository
	Close func()
}

// Open conecta con el backend elegido. Un error aquí sí es fatal para el arranque:
// el Store solo tolera fallos de Load, no de configuración.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Backend, error) {
	key := cfg.Store.Key
	switch cfg.Store.Backend {
	case "memory":
		return &Backend{Name: "memory", Repo: memory.NewSnapshotRepository(), Close: func() {}}, nil

	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		repo := postgres.NewSnapshotRepository(pool, key)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("postgres: %w", err)
		}
		log.Info().Str("backend", "postgres").Str("key", key).Msg("persistencia lista")
		return &Backend{Name: "postgres", Repo: repo, Close: pool.Close}, nil

	case "redis":
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info().Str("backend", "redis").Str("addr", cfg.Redis.Addr).Str("key", key).Msg("persistencia lista")
		return &Backend{
			Name:  "redis",
			Repo:  redis.NewSnapshotRepository(rdb, key),
			Close: func() { _ = rdb.Close() },
		}, nil

	case "sqlite":
		repo, err := sqlite.Open(ctx, cfg.SQLite.Path, key)
		if err != nil {
			return nil, err
		}
		log.Info().Str("backend", "sqlite").Str("path", cfg.SQLite.Path).Msg("persistencia lista")
		return &Backend{Name: "sqlite", Repo: repo, Close: func() { _ = repo.Close() }}, nil

	default:
		return nil, fmt.Errorf("STORE_BACKEND desconocido %q", cfg.Store.Backend)
	}
}
