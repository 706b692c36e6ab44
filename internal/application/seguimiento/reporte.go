package seguimiento

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/seguimiento-obra/internal/application/dto"
	"github.com/jhoicas/seguimiento-obra/internal/domain"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/domain/entity"
)

// ArchivoReporte reporte generado listo para descargar o escribir a disco.
type ArchivoReporte struct {
	ID          string
	Nombre      string
	ContentType string
	Contenido   []byte
	Analisis    *Analisis
}

// Reporte calcula el análisis del alcance y lo exporta en el formato pedido (xlsx por defecto).
//
// Retorna:
//   - domain.ErrInvalidInput      si falta obra, material o artículo.
//   - domain.ErrUnsupportedFormat si el formato no tiene generador.
//   - los errores de estructura y calidad de datos del cálculo.
func (uc *SeguimientoUseCase) Reporte(ctx context.Context, s *dataset.Snapshot, req dto.ReporteRequest) (*ArchivoReporte, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	formato := strings.ToLower(strings.TrimSpace(req.Formato))
	if formato == "" {
		formato = FormatoXLSX
	}
	gen, ok := uc.generadores[formato]
	if !ok {
		return nil, fmt.Errorf("%w: %q (use xlsx o pdf)", domain.ErrUnsupportedFormat, formato)
	}

	// ── 1. Cruce y cálculo ────────────────────────────────────────────────────
	_, c, err := uc.cruzar(ctx, s)
	if err != nil {
		return nil, err
	}
	an, err := uc.calcular(c, Alcance{Obra: req.Obra, Material: req.Material, Articulo: req.Articulo})
	if err != nil {
		return nil, err
	}
	an.ID = uuid.New().String()

	// ── 2. Generar archivo ────────────────────────────────────────────────────
	contenido, err := gen.GenerarReporte(ctx, an)
	if err != nil {
		return nil, fmt.Errorf("reporte %s: generación fallida: %w", formato, err)
	}

	nombre := NombreArchivo(an.Obra, an.GeneradoEn, formato)
	uc.log.Info().
		Str("report_id", an.ID).
		Str("archivo", nombre).
		Int("lotes", len(an.Resultado.Lotes)).
		Int("bytes", len(contenido)).
		Msg("reporte generado")

	return &ArchivoReporte{
		ID:          an.ID,
		Nombre:      nombre,
		ContentType: contentTypes[formato],
		Contenido:   contenido,
		Analisis:    an,
	}, nil
}

var noPermitidos = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// NombreArchivo seguimiento_<obra>_<YYYYMMDD_HHMMSS>.<ext>, con el nombre de la obra sin tildes
// ni caracteres fuera de [A-Za-z0-9_-].
func NombreArchivo(o entity.Obra, t time.Time, formato string) string {
	nombre := sanear(o.NombreVisible())
	if nombre == "" {
		nombre = sanear(o.Numero)
	}
	return fmt.Sprintf("seguimiento_%s_%s.%s", nombre, t.Format("20060102_150405"), formato)
}

func sanear(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return strings.Trim(noPermitidos.ReplaceAllString(s, "_"), "_")
}
