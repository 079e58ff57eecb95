package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/weimars70/conta-hencker/internal/application/auth"
	"github.com/weimars70/conta-hencker/internal/application/reporte"
	"github.com/weimars70/conta-hencker/internal/application/usecase"
	infrapdf "github.com/weimars70/conta-hencker/internal/infrastructure/pdf"
	"github.com/weimars70/conta-hencker/internal/infrastructure/storage"
	httpRouter "github.com/weimars70/conta-hencker/internal/interfaces/http"
	"github.com/weimars70/conta-hencker/pkg/config"
	"github.com/weimars70/conta-hencker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	backend := "postgres"
	if cfg.DB.UseSupabase {
		backend = "supabase"
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
		Backend: backend,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backends, err := storage.New(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al backend de datos")
	}
	defer backends.Close()

	empresaUC := usecase.NewEmpresaUseCase(backends.Empresas)
	usuarioUC := usecase.NewUsuarioUseCase(backends.Usuarios)
	accesoUC := usecase.NewAccesoUseCase(backends.Accesos)
	capturaUC := usecase.NewCapturaUseCase(backends.Gateway)
	planUC := usecase.NewPlanContableUseCase(backends.PlanContable)
	contabUC := usecase.NewContabilidadUseCase(backends.Contabilidad)

	// PDF: reporte del plan de cuentas
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := reporte.NewPDFUseCase(backends.Empresas, backends.PlanContable, pdfGenerator)

	authUC := auth.NewAuthUseCase(backends.Usuarios, backends.Accesos, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.LoggingMiddleware(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Conta Hencker API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		EmpresaUC:      empresaUC,
		UsuarioUC:      usuarioUC,
		AccesoUC:       accesoUC,
		CapturaUC:      capturaUC,
		PlanContableUC: planUC,
		ContabilidadUC: contabUC,
		PDFUC:          pdfUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

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

	log.Info().Msg("aplicación detenida")
}
