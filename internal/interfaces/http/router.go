package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/weimars70/conta-hencker/internal/application/auth"
	"github.com/weimars70/conta-hencker/internal/application/reporte"
	"github.com/weimars70/conta-hencker/internal/application/usecase"
	"github.com/weimars70/conta-hencker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	EmpresaUC      *usecase.EmpresaUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	AccesoUC       *usecase.AccesoUseCase
	CapturaUC      *usecase.CapturaUseCase
	PlanContableUC *usecase.PlanContableUseCase
	ContabilidadUC *usecase.ContabilidadUseCase
	PDFUC          *reporte.PDFUseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresas
	empresas := protected.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Patch("/:id", empresaHandler.Update)
	empresas.Delete("/:id", empresaHandler.Delete)

	// Usuarios
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Patch("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Accesos (el recurso se direcciona por usuario; ver entity.Acceso)
	accesos := protected.Group("/accesos")
	accesoHandler := NewAccesoHandler(deps.AccesoUC, deps.Log)
	accesos.Get("/", accesoHandler.List)
	accesos.Post("/", accesoHandler.Create)
	accesos.Get("/validate/:usuario/:empresa", accesoHandler.Validate)
	accesos.Get("/:usuario", accesoHandler.GetByUsuario)
	accesos.Patch("/:usuario", accesoHandler.Update)
	accesos.Delete("/:usuario", accesoHandler.Delete)

	// Captura genérica (tablas de referencia)
	captura := protected.Group("/generic-capture")
	capturaHandler := NewCapturaHandler(deps.CapturaUC)
	captura.Get("/", capturaHandler.List)
	captura.Post("/", capturaHandler.Create)
	captura.Get("/:codigo", capturaHandler.GetOne)
	captura.Patch("/:codigo", capturaHandler.Update)
	captura.Delete("/:codigo", capturaHandler.Delete)

	// Plan contable
	plan := protected.Group("/plan-contable")
	planHandler := NewPlanContableHandler(deps.PlanContableUC)
	plan.Get("/", planHandler.List)
	plan.Post("/registrar", planHandler.Registrar)
	plan.Get("/:cuenta", planHandler.GetByCuenta)

	// Catálogos contables
	contab := protected.Group("/contabilidad")
	contabHandler := NewContabilidadHandler(deps.ContabilidadUC)
	contab.Get("/tipos-documento", contabHandler.TiposDocumento)
	contab.Get("/cuentas-contables", contabHandler.CuentasContables)
	contab.Get("/centros-costos", contabHandler.CentrosCostos)
	contab.Get("/fuentes-contables", contabHandler.FuentesContables)
	contab.Get("/nits", contabHandler.Nits)

	// Reportes PDF
	pdfHandler := NewPDFHandler(deps.PDFUC)
	protected.Get("/pdf/report", pdfHandler.PlanContable)
}
