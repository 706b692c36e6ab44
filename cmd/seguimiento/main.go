// seguimiento ejecuta el análisis FIFO de un alcance sobre archivos locales y escribe el reporte.
//
// Uso:
//
//	seguimiento --entradas e.xlsx --salidas s.xlsx --obras o.xlsx \
//	    --obra 123 --material ACERO --articulo "BARRA 12MM" [--formato xlsx|pdf] [--out dir]
//
// Sin --entradas/--salidas/--obras y con ERP_ENABLED=true, los datasets se leen de la base.
// Los logs van a stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/seguimiento-obra/internal/application/dto"
	"github.com/jhoicas/seguimiento-obra/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/domain/repository"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/lector"
	infrapdf "github.com/jhoicas/seguimiento-obra/internal/infrastructure/pdf"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/postgres"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/xlsx"
	"github.com/jhoicas/seguimiento-obra/pkg/config"
	"github.com/jhoicas/seguimiento-obra/pkg/logger"
)

type opciones struct {
	entradas, salidas, obras string
	req                      dto.ReporteRequest
	out                      string
}

func main() {
	op := opciones{}
	fs := pflag.NewFlagSet("seguimiento", pflag.ContinueOnError)
	fs.StringVarP(&op.entradas, "entradas", "e", "", "archivo de entradas (.xlsx o .csv)")
	fs.StringVarP(&op.salidas, "salidas", "s", "", "archivo de salidas (.xlsx o .csv)")
	fs.StringVarP(&op.obras, "obras", "o", "", "archivo de obras (.xlsx o .csv)")
	fs.StringVar(&op.req.Obra, "obra", "", "O.T. a analizar")
	fs.StringVar(&op.req.Material, "material", "", "grupo de material")
	fs.StringVar(&op.req.Articulo, "articulo", "", "artículo")
	fs.StringVarP(&op.req.Formato, "formato", "f", seguimiento.FormatoXLSX, "xlsx | pdf")
	fs.StringVar(&op.out, "out", ".", "directorio de salida")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, op); err != nil {
		log.Error().Err(err).Msg("seguimiento")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, op opciones) error {
	loc, err := cfg.Report.Location()
	if err != nil {
		return err
	}

	snap, err := leerArchivos(op)
	if err != nil {
		return err
	}

	var fuente repository.SnapshotRepository
	if cfg.ERP.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer pool.Close()
		fuente = postgres.NewERPSource(postgres.NewTxRunner(pool), cfg.ERP, log)
	}

	uc := seguimiento.NewSeguimientoUseCase(
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

	archivo, err := uc.Reporte(ctx, snap, op.req)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(op.out, 0o755); err != nil {
		return fmt.Errorf("crear directorio de salida: %w", err)
	}
	destino := filepath.Join(op.out, archivo.Nombre)
	if err := os.WriteFile(destino, archivo.Contenido, 0o644); err != nil {
		return fmt.Errorf("escribir reporte: %w", err)
	}

	t := archivo.Analisis.Totales()
	log.Info().
		Str("report_id", archivo.ID).
		Str("archivo", destino).
		Str("obra", archivo.Analisis.Obra.Numero).
		Int("lotes", t.Lotes).
		Int("agotados", t.LotesAgotados).
		Str("costo_total", t.CostoTotal.StringFixed(2)).
		Str("valor_bodega", t.ValorBodega.StringFixed(2)).
		Msg("reporte escrito")
	for _, adv := range archivo.Analisis.Advertencias {
		log.Warn().Msg(adv)
	}
	return nil
}

// leerArchivos carga los datasets indicados; los que no se pasan quedan en nil.
func leerArchivos(op opciones) (*dataset.Snapshot, error) {
	s := &dataset.Snapshot{}
	for _, a := range []struct {
		ruta, nombre string
		destino      **dataset.Table
	}{
		{op.entradas, dataset.DatasetEntradas, &s.Entradas},
		{op.salidas, dataset.DatasetSalidas, &s.Salidas},
		{op.obras, dataset.DatasetObras, &s.Obras},
	} {
		if a.ruta == "" {
			continue
		}
		t, err := leerArchivo(a.ruta, a.nombre)
		if err != nil {
			return nil, err
		}
		*a.destino = t
	}
	return s, nil
}

func leerArchivo(ruta, nombre string) (*dataset.Table, error) {
	leer, err := lector.Predeterminado().Para(nombre, ruta)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(ruta)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", nombre, err)
	}
	defer f.Close()
	return leer(nombre, f)
}
