// Package bootstrap arma el núcleo compartido por la API y el CLI:
// persistencia, store, intérprete y asistente IA.
package bootstrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/morefix-stock/internal/application/assistant"
	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/application/store"
	infraai "github.com/jhoicas/morefix-stock/internal/infrastructure/ai"
	"github.com/jhoicas/morefix-stock/internal/infrastructure/persistence"
	"github.com/jhoicas/morefix-stock/pkg/config"
)

// Container dependencias de dominio ya conectadas.
type Container struct {
	Config      *config.Config
	Backend     *persistence.Backend
	Store       *store.Store
	WriteLock   *sync.Mutex
	Interpreter *chatbot.Interpreter
	Assistant   *assistant.UseCase
}

// New abre la persistencia configurada, carga el store y construye intérprete y asistente.
// Un proveedor IA mal configurado no es fatal: el asistente queda deshabilitado.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Container, error) {
	backend, err := persistence.Open(ctx, cfg, log.With().Str("component", "persistence").Logger())
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	st := store.New(ctx, backend.Repo, log.With().Str("component", "store").Logger())
	lock := &sync.Mutex{}
	interp := chatbot.NewInterpreter(st,
		chatbot.WithLowStockThreshold(cfg.Store.LowStockThreshold),
		chatbot.WithLock(lock),
	)

	aiLog := log.With().Str("component", "assistant").Logger()
	llm, err := infraai.NewFromConfig(ctx, cfg.AI)
	if err != nil {
		aiLog.Warn().Err(err).Str("provider", cfg.AI.Provider).Msg("asistente IA deshabilitado")
		llm = nil
	} else if llm != nil {
		aiLog.Info().Str("provider", cfg.AI.Provider).Msg("asistente IA habilitado")
	}
	asst := assistant.NewUseCase(llm, st, interp, time.Duration(cfg.AI.TimeoutSeconds)*time.Second, aiLog)

	return &Container{
		Config:      cfg,
		Backend:     backend,
		Store:       st,
		WriteLock:   lock,
		Interpreter: interp,
		Assistant:   asst,
	}, nil
}

// Close vacía la escritura pendiente del store y libera la persistencia.
func (c *Container) Close(ctx context.Context) error {
	err := c.Store.Close(ctx)
	c.Backend.Close()
	return err
}
