// stockctl es la herramienta de terminal de MoreFix: chat interactivo, órdenes sueltas,
// servidor MCP, exportación del inventario y reinicio de los datos.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/morefix-stock/internal/bootstrap"
	"github.com/jhoicas/morefix-stock/pkg/config"
	"github.com/jhoicas/morefix-stock/pkg/logger"
)

const version = "1.0.0"

var (
	backend  string
	logLevel string
)

// rootCmd comando base
var rootCmd = &cobra.Command{
	Use:           "stockctl",
	Short:         "Gestión del inventario MoreFix desde la terminal",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Backend de persistencia (memory, postgres, redis, sqlite); por defecto STORE_BACKEND")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nivel de log; por defecto LOG_LEVEL")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openCore carga la configuración, aplica los flags globales y abre el inventario.
// Los logs van siempre a stderr: stdout queda para el chat, el JSON exportado o el protocolo MCP.
func openCore(ctx context.Context) (*bootstrap.Container, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if backend != "" {
		cfg.Store.Backend = backend
	}
	if logLevel != "" {
		cfg.App.LogLevel = logLevel
	}

	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Output: os.Stderr,
	})
	core, err := bootstrap.New(ctx, cfg, log.Zerolog())
	if err != nil {
		return nil, nil, err
	}
	return core, log, nil
}

// closeCore guarda el último snapshot antes de salir.
func closeCore(core *bootstrap.Container, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := core.Close(ctx); err != nil {
		log.Error().Err(err).Msg("guardar inventario")
	}
}
