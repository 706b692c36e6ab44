package repository

import (
	"context"

	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
)

// SnapshotRepository entrega los tres datasets (entradas, salidas, obras) de una misma lectura.
// Las implementaciones son read-only; cada llamada devuelve un snapshot nuevo.
type SnapshotRepository interface {
	Cargar(ctx context.Context) (*dataset.Snapshot, error)
}
