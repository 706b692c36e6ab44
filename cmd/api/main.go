package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/swaggo/swag"

	"github.com/jhoicas/seguimiento-obra/docs"
	"github.com/jhoicas/seguimiento-obra/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-obra/internal/domain/repository"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/lector"
	infrapdf "github.com/jhoicas/seguimiento-obra/internal/infrastructure/pdf"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/postgres"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/seguimiento-obra/internal/interfaces/http"
	"github.com/jhoicas/seguimiento-obra/pkg/config"
	"github.com/jhoicas/seguimiento-obra/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title        Seguimiento de Obra API
// @version      1.0
// @description  Seguimiento de materiales por O.T.: cruce de entradas, salidas y obras, análisis FIFO de lotes y reportes.
// @BasePath     /
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
		Bool("erp", cfg.ERP.Enabled).
		Msg("iniciando aplicación")

	loc, err := cfg.Report.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria de reportes")
	}

	// ERP opcional: sin archivos en el request, los datasets se leen de la base.
	var fuente repository.SnapshotRepository
	if cfg.ERP.Enabled {
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		fuente = postgres.NewERPSource(postgres.NewTxRunner(pool), cfg.ERP, log)
	}

	seguimientoUC := seguimiento.NewSeguimientoUseCase(
		seguimiento.Config{
			Location:    loc,
			DiaPrimero:  cfg.Report.DiaPrimero,
			StrictDates: cfg.Report.StrictDates,
			Workers:     cfg.Report.Workers,
		},
		fuente,
		map[string]seguimiento.ReportGenerator{
			seguimiento.FormatoXLSX: xlsx.NewReportWriter(cfg.App.Name),
			seguimiento.FormatoPDF:  infrapdf.NewLotReportGenerator(cfg.App.Name),
		},
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	} else {
		log.Warn().Str("archivo", swaggerFile).Msg("sin swagger.json: /docs deshabilitado")
	}
	app.Get("/api/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Seguimiento: seguimientoUC,
		Lectores:    lector.Predeterminado(),
		AppName:     cfg.App.Name,
		ERPEnabled:  cfg.ERP.Enabled,
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
