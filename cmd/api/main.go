package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalytics "github.com/jhoicas/morefix-stock/internal/application/analytics"
	"github.com/jhoicas/morefix-stock/internal/application/auth"
	"github.com/jhoicas/morefix-stock/internal/application/report"
	"github.com/jhoicas/morefix-stock/internal/application/usecase"
	"github.com/jhoicas/morefix-stock/internal/bootstrap"
	infrapdf "github.com/jhoicas/morefix-stock/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/morefix-stock/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/morefix-stock/internal/interfaces/http"
	"github.com/jhoicas/morefix-stock/pkg/config"
	"github.com/jhoicas/morefix-stock/pkg/logger"
)

// @title						MoreFix Stock API
// @version					1.0
// @description				Gestión de inventario de MoreFix con intérprete de comandos en francés.
// @BasePath					/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	core, err := bootstrap.New(ctx, cfg, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar inventario")
	}

	threshold := cfg.Store.LowStockThreshold
	categoryUC := usecase.NewCategoryUseCase(core.Store, threshold)
	supplierUC := usecase.NewSupplierUseCase(core.Store)
	productUC := usecase.NewProductUseCase(core.Store, threshold)
	dashboardUC := appanalytics.NewDashboardUseCase(core.Store, threshold)
	reportUC := report.NewUseCase(core.Store,
		infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		infraxlsx.NewExcelReportGenerator(),
		threshold,
	)

	authUC, err := auth.NewAuthUseCase(auth.Admin{
		Email:        cfg.Admin.Email,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configurar administrador")
	}
	if !authUC.Enabled() {
		log.Warn().Msg("ADMIN_PASSWORD vacío: el login queda deshabilitado")
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:     cfg.App.Name,
		DocsPath: cfg.HTTP.DocsPath,
	}, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		ProductUC:   productUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Interpreter: core.Interpreter,
		AssistantUC: core.Assistant,
		ChatLog:     core.Store,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		WriteLock:   core.WriteLock,
	}, log.Component("http"))

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := core.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("guardar inventario")
	}

	log.Info().Msg("aplicación detenida")
}
