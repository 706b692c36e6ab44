package http

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/seguimiento-obra/internal/domain"
	"github.com/jhoicas/seguimiento-obra/internal/domain/dataset"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/lector"
)

// Campos multipart de los tres datasets.
const (
	CampoEntradas = "entradas"
	CampoSalidas  = "salidas"
	CampoObras    = "obras"
)

// leerSnapshot arma el snapshot con los archivos presentes en el formulario. Los que falten
// quedan en nil: el caso de uso decide si eso es un error o si se lee del ERP.
func leerSnapshot(c *fiber.Ctx, lectores lector.Registro) (*dataset.Snapshot, error) {
	s := &dataset.Snapshot{}
	campos := []struct {
		campo   string
		nombre  string
		destino **dataset.Table
	}{
		{CampoEntradas, dataset.DatasetEntradas, &s.Entradas},
		{CampoSalidas, dataset.DatasetSalidas, &s.Salidas},
		{CampoObras, dataset.DatasetObras, &s.Obras},
	}
	for _, f := range campos {
		fh, err := c.FormFile(f.campo)
		if err != nil {
			if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
				continue
			}
			return nil, fmt.Errorf("%w: archivo %s: %v", domain.ErrInvalidInput, f.campo, err)
		}
		t, err := leerArchivo(fh, f.nombre, lectores)
		if err != nil {
			return nil, err
		}
		*f.destino = t
	}
	return s, nil
}

func leerArchivo(fh *multipart.FileHeader, nombre string, lectores lector.Registro) (*dataset.Table, error) {
	leer, err := lectores.Para(nombre, fh.Filename)
	if err != nil {
		return nil, err
	}
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", fh.Filename, err)
	}
	defer file.Close()
	return leer(nombre, file)
}
