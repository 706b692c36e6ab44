package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seguimiento-obra/internal/application/dto"
	"github.com/jhoicas/seguimiento-obra/internal/application/seguimiento"
	"github.com/jhoicas/seguimiento-obra/internal/infrastructure/lector"
)

// SeguimientoHandler expone el seguimiento de obra. Cada request trae sus propios archivos;
// el servidor no guarda nada entre llamadas.
type SeguimientoHandler struct {
	uc       *seguimiento.SeguimientoUseCase
	lectores lector.Registro
}

// NewSeguimientoHandler construye el handler.
func NewSeguimientoHandler(uc *seguimiento.SeguimientoUseCase, lectores lector.Registro) *SeguimientoHandler {
	return &SeguimientoHandler{uc: uc, lectores: lectores}
}

// Validar godoc
// @Summary      Validar archivos
// @Description  Comprueba las columnas obligatorias de los tres datasets y devuelve conteos
// @Description  y la lista de O.T. Sin archivos y con ERP habilitado, lee desde la base.
// @Tags         seguimiento
// @Accept       mpfd
// @Produce      json
// @Param        entradas  formData  file  false  "Entradas (.xlsx o .csv)"
// @Param        salidas   formData  file  false  "Salidas (.xlsx o .csv)"
// @Param        obras     formData  file  false  "Obras (.xlsx o .csv)"
// @Success      200  {object}  dto.ValidacionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/seguimiento/validar [post]
func (h *SeguimientoHandler) Validar(c *fiber.Ctx) error {
	snap, err := leerSnapshot(c, h.lectores)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Validar(c.UserContext(), snap)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Opciones godoc
// @Summary      Opciones en cascada
// @Description  O.T. disponibles, grupos de material de la O.T. y artículos del material.
// @Tags         seguimiento
// @Accept       mpfd
// @Produce      json
// @Param        entradas  formData  file    false  "Entradas"
// @Param        salidas   formData  file    false  "Salidas"
// @Param        obras     formData  file    false  "Obras"
// @Param        obra      formData  string  false  "O.T. seleccionada"
// @Param        material  formData  string  false  "Grupo de material seleccionado"
// @Success      200  {object}  dto.OpcionesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/seguimiento/opciones [post]
func (h *SeguimientoHandler) Opciones(c *fiber.Ctx) error {
	var req dto.OpcionesRequest
	if err := parseForm(c, &req); err != nil {
		return invalidBody(c)
	}
	snap, err := leerSnapshot(c, h.lectores)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Opciones(c.UserContext(), snap, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Totales por artículo y por O.T.
// @Description  Vista de entradas o de salidas: listado de movimientos de la O.T. y totales.
// @Tags         seguimiento
// @Accept       mpfd
// @Produce      json
// @Param        entradas  formData  file    false  "Entradas"
// @Param        salidas   formData  file    false  "Salidas"
// @Param        obras     formData  file    false  "Obras"
// @Param        vista     formData  string  true   "entradas | salidas"
// @Param        obra      formData  string  false  "O.T."
// @Success      200  {object}  dto.ResumenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/seguimiento/resumen [post]
func (h *SeguimientoHandler) Resumen(c *fiber.Ctx) error {
	var req dto.ResumenRequest
	if err := parseForm(c, &req); err != nil {
		return invalidBody(c)
	}
	snap, err := leerSnapshot(c, h.lectores)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Resumen(c.UserContext(), snap, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Analizar godoc
// @Summary      Análisis FIFO de lotes
// @Description  Empareja entradas y salidas de la O.T., material y artículo seleccionados.
// @Tags         seguimiento
// @Accept       mpfd
// @Produce      json
// @Param        entradas  formData  file    false  "Entradas"
// @Param        salidas   formData  file    false  "Salidas"
// @Param        obras     formData  file    false  "Obras"
// @Param        obra      formData  string  true   "O.T."
// @Param        material  formData  string  true   "Grupo de material"
// @Param        articulo  formData  string  true   "Artículo"
// @Success      200  {object}  dto.AnalisisResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/seguimiento/analisis [post]
func (h *SeguimientoHandler) Analizar(c *fiber.Ctx) error {
	var req dto.AnalisisRequest
	if err := parseForm(c, &req); err != nil {
		return invalidBody(c)
	}
	snap, err := leerSnapshot(c, h.lectores)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Analizar(c.UserContext(), snap, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AnalizarObra godoc
// @Summary      Análisis FIFO de toda la O.T.
// @Description  Un análisis por cada par material/artículo con movimientos en la O.T.
// @Tags         seguimiento
// @Accept       mpfd
// @Produce      json
// @Param        entradas  formData  file    false  "Entradas"
// @Param        salidas   formData  file    false  "Salidas"
// @Param        obras     formData  file    false  "Obras"
// @Param        obra      formData  string  true   "O.T."
// @Success      200  {object}  dto.AnalisisObraResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/seguimiento/analisis/obra [post]
func (h *SeguimientoHandler) AnalizarObra(c *fiber.Ctx) error {
	var req dto.AnalisisObraRequest
	if err := parseForm(c, &req); err != nil {
		return invalidBody(c)
	}
	snap, err := leerSnapshot(c, h.lectores)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AnalizarObra(c.UserContext(), snap, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reporte godoc
// @Summary      Descargar reporte
// @Description  Análisis de lotes del alcance como xlsx (hojas de lotes y movimientos) o pdf.
// @Tags         seguimiento
// @Accept       mpfd
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        entradas  formData  file    false  "Entradas"
// @Param        salidas   formData  file    false  "Salidas"
// @Param        obras     formData  file    false  "Obras"
// @Param        obra      formData  string  true   "O.T."
// @Param        material  formData  string  true   "Grupo de material"
// @Param        articulo  formData  string  true   "Artículo"
// @Param        formato   formData  string  false  "xlsx (por defecto) | pdf"
// @Success      200  {file}    file
// @Header       200  {string}  X-Report-ID  "ID del reporte"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/seguimiento/reporte [post]
func (h *SeguimientoHandler) Reporte(c *fiber.Ctx) error {
	var req dto.ReporteRequest
	if err := parseForm(c, &req); err != nil {
		return invalidBody(c)
	}
	snap, err := leerSnapshot(c, h.lectores)
	if err != nil {
		return respondError(c, err)
	}
	archivo, err := h.uc.Reporte(c.UserContext(), snap, req)
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(archivo.Nombre)
	c.Set(fiber.HeaderContentType, archivo.ContentType)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(archivo.Contenido)))
	c.Set("X-Report-ID", archivo.ID)
	return c.Send(archivo.Contenido)
}

// parseForm lee los campos del formulario. Un request sin cuerpo (modo ERP) deja req en cero.
func parseForm(c *fiber.Ctx, req any) error {
	if len(c.Request().Header.ContentType()) == 0 {
		return nil
	}
	return c.BodyParser(req)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
}
