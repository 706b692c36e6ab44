package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seguimiento-obra/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/lector"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Seguimiento *seguimiento.SeguimientoUseCase
	Lectores    lector.Registro
	AppName     string
	ERPEnabled  bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName, "erp": deps.ERPEnabled})
	})

	api := app.Group("/api")

	// Seguimiento de obra (sin estado: cada request trae los archivos)
	seg := api.Group("/seguimiento")
	h := NewSeguimientoHandler(deps.Seguimiento, deps.Lectores)
	seg.Post("/validar", h.Validar)
	seg.Post("/opciones", h.Opciones)
	seg.Post("/resumen", h.Resumen)
	seg.Post("/analisis", h.Analizar)
	seg.Post("/analisis/obra", h.AnalizarObra)
	seg.Post("/reporte", h.Reporte)
}
