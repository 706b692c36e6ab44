package postgres

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/domain/repository"
	"github.com/jhoicas/seguimiento-obra/pkg/config"
	"github.com/jhoicas/seguimiento-obra/pkg/logger"
)

var _ repository.SnapshotRepository = (*ERPSource)(nil)

// ReadOnlyRunner abre la transacción de lectura. Lo implementa TxRunner.
type ReadOnlyRunner interface {
	RunReadOnly(ctx context.Context, fn func(q Querier) error) error
}

// ERPSource arma el snapshot de entradas, salidas y obras con tres consultas del ERP.
// Las columnas de cada consulta deben llamarse como las cabeceras de los archivos exportados.
type ERPSource struct {
	tx  ReadOnlyRunner
	cfg config.ERPConfig
	log *logger.Logger
}

// NewERPSource construye la fuente. log puede ser nil.
func NewERPSource(tx ReadOnlyRunner, cfg config.ERPConfig, log *logger.Logger) *ERPSource {
	if log == nil {
		log = logger.Nop()
	}
	return &ERPSource{tx: tx, cfg: cfg, log: log.Component("erp")}
}

// Cargar ejecuta las tres consultas en la misma transacción.
func (s *ERPSource) Cargar(ctx context.Context) (*dataset.Snapshot, error) {
	snap := &dataset.Snapshot{}
	consultas := []struct {
		nombre  string
		sql     string
		destino **dataset.Table
	}{
		{dataset.DatasetEntradas, s.cfg.EntradasQuery, &snap.Entradas},
		{dataset.DatasetSalidas, s.cfg.SalidasQuery, &snap.Salidas},
		{dataset.DatasetObras, s.cfg.ObrasQuery, &snap.Obras},
	}

	err := s.tx.RunReadOnly(ctx, func(q Querier) error {
		for _, c := range consultas {
			inicio := time.Now()
			t, err := consultar(ctx, q, c.nombre, c.sql)
			if err != nil {
				return err
			}
			*c.destino = t
			s.log.Debug().
				Str("dataset", c.nombre).
				Int("filas", t.Len()).
				Dur("duracion", time.Since(inicio)).
				Msg("consulta ERP")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func consultar(ctx context.Context, q Querier, nombre, sql string) (*dataset.Table, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, errorConsulta(nombre, err)
	}
	t, err := tabla(nombre, rows)
	if err != nil {
		return nil, errorConsulta(nombre, err)
	}
	return t, nil
}

func errorConsulta(nombre string, err error) error {
	switch {
	case isUndefinedTable(err):
		return fmt.Errorf("consulta de %s: la tabla o vista no existe: %w", nombre, err)
	case isInsufficientPrivilege(err):
		return fmt.Errorf("consulta de %s: sin permiso de lectura: %w", nombre, err)
	default:
		return fmt.Errorf("consulta de %s: %w", nombre, err)
	}
}

// tabla vuelca el resultado como texto, igual que un archivo exportado.
func tabla(nombre string, rows pgx.Rows) (*dataset.Table, error) {
	defer rows.Close()

	campos := rows.FieldDescriptions()
	cabecera := make([]string, len(campos))
	for i, f := range campos {
		cabecera[i] = f.Name
	}

	var filas [][]string
	for rows.Next() {
		valores, err := rows.Values()
		if err != nil {
			return nil, err
		}
		fila := make([]string, len(valores))
		for i, v := range valores {
			fila[i] = texto(v)
		}
		filas = append(filas, fila)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dataset.NewTable(nombre, cabecera, filas), nil
}

// texto convierte un valor de pgx a la forma en que aparecería en una celda.
func texto(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case decimal.Decimal:
		return x.String()
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04:05")
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case driver.Valuer:
		dv, err := x.Value()
		if err != nil || dv == nil {
			return ""
		}
		return texto(dv)
	default:
		return fmt.Sprint(x)
	}
}
