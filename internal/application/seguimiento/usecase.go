// Package seguimiento orquesta el seguimiento de obra: carga y cruce de los tres datasets,
// vistas agregadas, análisis FIFO por alcance y exportación de reportes.
package seguimiento

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/seguimiento-obra/internal/domain"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/domain/repository"
	"github.com/jhoicas/seguimiento-obra/pkg/logger"
)

// Config parámetros del análisis (vienen de config.ReportConfig).
type Config struct {
	Location    *time.Location
	DiaPrimero  bool
	StrictDates bool
	Workers     int
	Now         func() time.Time // nil = time.Now
}

// SeguimientoUseCase casos de uso de seguimiento de obra. No guarda estado entre llamadas:
// cada operación trabaja sobre el snapshot que recibe.
type SeguimientoUseCase struct {
	fuente      repository.SnapshotRepository // nil si no hay ERP configurado
	generadores map[string]ReportGenerator
	parser      dataset.Parser
	estricto    bool
	workers     int
	now         func() time.Time
	log         *logger.Logger
}

// NewSeguimientoUseCase construye el caso de uso. fuente puede ser nil: entonces los datasets
// solo llegan como archivos.
func NewSeguimientoUseCase(
	cfg Config,
	fuente repository.SnapshotRepository,
	generadores map[string]ReportGenerator,
	log *logger.Logger,
) *SeguimientoUseCase {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SeguimientoUseCase{
		fuente:      fuente,
		generadores: generadores,
		parser:      dataset.NewParser(cfg.Location, cfg.DiaPrimero),
		estricto:    cfg.StrictDates,
		workers:     cfg.Workers,
		now:         cfg.Now,
		log:         log.Component("seguimiento"),
	}
}

// cargar resuelve el snapshot: el subido si trae algún archivo; si no trae ninguno y hay ERP,
// se lee de la base.
func (uc *SeguimientoUseCase) cargar(ctx context.Context, s *dataset.Snapshot) (*dataset.Snapshot, error) {
	if !sinArchivos(s) {
		return s, nil
	}
	if uc.fuente == nil {
		return nil, domain.ErrMissingInput
	}
	inicio := time.Now()
	erp, err := uc.fuente.Cargar(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar datasets del ERP: %w", err)
	}
	uc.log.Info().
		Int("entradas", erp.Entradas.Len()).
		Int("salidas", erp.Salidas.Len()).
		Int("obras", erp.Obras.Len()).
		Dur("duracion", time.Since(inicio)).
		Msg("snapshot leído del ERP")
	return erp, nil
}

// cruzar carga, valida y cruza. Un error de estructura termina la operación.
func (uc *SeguimientoUseCase) cruzar(ctx context.Context, s *dataset.Snapshot) (*dataset.Snapshot, *dataset.Cruce, error) {
	s, err := uc.cargar(ctx, s)
	if err != nil {
		return nil, nil, err
	}
	c, err := dataset.Cruzar(s)
	if err != nil {
		uc.log.Warn().Err(err).Msg("datasets rechazados")
		return nil, nil, err
	}
	if len(c.Duplicadas) > 0 {
		uc.log.Warn().Strs("ot", c.Duplicadas).Msg("O.T. repetidas en obras: se usa la primera aparición")
	}
	return s, c, nil
}

func sinArchivos(s *dataset.Snapshot) bool {
	return s == nil || (s.Entradas == nil && s.Salidas == nil && s.Obras == nil)
}
