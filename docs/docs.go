// Package docs documento OpenAPI de la API (formato de swag init).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/seguimiento/validar": {
            "post": {
                "description": "Comprueba las columnas obligatorias de los tres datasets y devuelve conteos y la lista de O.T.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seguimiento"
                ],
                "summary": "Validar archivos",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Entradas (.xlsx o .csv)",
                        "name": "entradas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Salidas (.xlsx o .csv)",
                        "name": "salidas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Obras (.xlsx o .csv)",
                        "name": "obras",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ValidacionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/seguimiento/opciones": {
            "post": {
                "description": "O.T. disponibles, grupos de material de la O.T. y artículos del material.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seguimiento"
                ],
                "summary": "Opciones en cascada",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Entradas (.xlsx o .csv)",
                        "name": "entradas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Salidas (.xlsx o .csv)",
                        "name": "salidas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Obras (.xlsx o .csv)",
                        "name": "obras",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "O.T. seleccionada",
                        "name": "obra",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Grupo de material seleccionado",
                        "name": "material",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OpcionesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/seguimiento/resumen": {
            "post": {
                "description": "Vista de entradas o de salidas: listado de movimientos de la O.T. y totales.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seguimiento"
                ],
                "summary": "Totales por artículo y por O.T.",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Entradas (.xlsx o .csv)",
                        "name": "entradas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Salidas (.xlsx o .csv)",
                        "name": "salidas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Obras (.xlsx o .csv)",
                        "name": "obras",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "entradas | salidas",
                        "name": "vista",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "O.T.",
                        "name": "obra",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ResumenResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/seguimiento/analisis": {
            "post": {
                "description": "Empareja entradas y salidas de la O.T., material y artículo seleccionados.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seguimiento"
                ],
                "summary": "Análisis FIFO de lotes",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Entradas (.xlsx o .csv)",
                        "name": "entradas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Salidas (.xlsx o .csv)",
                        "name": "salidas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Obras (.xlsx o .csv)",
                        "name": "obras",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "O.T.",
                        "name": "obra",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Grupo de material",
                        "name": "material",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Artículo",
                        "name": "articulo",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AnalisisResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/seguimiento/analisis/obra": {
            "post": {
                "description": "Un análisis por cada par material/artículo con movimientos en la O.T.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "seguimiento"
                ],
                "summary": "Análisis FIFO de toda la O.T.",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Entradas (.xlsx o .csv)",
                        "name": "entradas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Salidas (.xlsx o .csv)",
                        "name": "salidas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Obras (.xlsx o .csv)",
                        "name": "obras",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "O.T.",
                        "name": "obra",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AnalisisObraResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/seguimiento/reporte": {
            "post": {
                "description": "Análisis de lotes del alcance como xlsx (hojas de lotes y movimientos) o pdf.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
                    "application/pdf"
                ],
                "tags": [
                    "seguimiento"
                ],
                "summary": "Descargar reporte",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Entradas (.xlsx o .csv)",
                        "name": "entradas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Salidas (.xlsx o .csv)",
                        "name": "salidas",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Obras (.xlsx o .csv)",
                        "name": "obras",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "O.T.",
                        "name": "obra",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Grupo de material",
                        "name": "material",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Artículo",
                        "name": "articulo",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "xlsx (por defecto) | pdf",
                        "name": "formato",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        },
                        "headers": {
                            "X-Report-ID": {
                                "type": "string",
                                "description": "ID del reporte"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.ObraDTO": {
            "type": "object",
            "properties": {
                "numero": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "centro_costo": {
                    "type": "string"
                }
            }
        },
        "dto.ValidacionResponse": {
            "type": "object",
            "properties": {
                "filas_entradas": {
                    "type": "integer"
                },
                "filas_salidas": {
                    "type": "integer"
                },
                "filas_obras": {
                    "type": "integer"
                },
                "obras": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ObraDTO"
                    }
                },
                "advertencias": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.OpcionesResponse": {
            "type": "object",
            "properties": {
                "obras": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ObraDTO"
                    }
                },
                "materiales": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "articulos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.MovimientoDTO": {
            "type": "object",
            "properties": {
                "fila": {
                    "type": "integer"
                },
                "fecha": {
                    "type": "string"
                },
                "fecha_valida": {
                    "type": "boolean"
                },
                "material": {
                    "type": "string"
                },
                "articulo": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "string"
                },
                "tipo_movimiento": {
                    "type": "string"
                },
                "oth_numero": {
                    "type": "string"
                },
                "oth_nombre": {
                    "type": "string"
                }
            }
        },
        "dto.TotalArticuloDTO": {
            "type": "object",
            "properties": {
                "material": {
                    "type": "string"
                },
                "articulo": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "string"
                }
            }
        },
        "dto.TotalObraDTO": {
            "type": "object",
            "properties": {
                "obra": {
                    "$ref": "#/definitions/dto.ObraDTO"
                },
                "cantidad": {
                    "type": "string"
                },
                "movimientos": {
                    "type": "integer"
                }
            }
        },
        "dto.ResumenResponse": {
            "type": "object",
            "properties": {
                "vista": {
                    "type": "string"
                },
                "obras": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ObraDTO"
                    }
                },
                "obra": {
                    "$ref": "#/definitions/dto.ObraDTO"
                },
                "por_obra": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TotalObraDTO"
                    }
                },
                "por_articulo": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TotalArticuloDTO"
                    }
                },
                "movimientos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MovimientoDTO"
                    }
                },
                "advertencias": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.ConsumoDTO": {
            "type": "object",
            "properties": {
                "fila_salida": {
                    "type": "integer"
                },
                "fecha": {
                    "type": "string",
                    "format": "date-time"
                },
                "cantidad": {
                    "type": "string"
                },
                "precio_unitario": {
                    "type": "string"
                },
                "costo": {
                    "type": "string"
                }
            }
        },
        "dto.LoteDTO": {
            "type": "object",
            "properties": {
                "material": {
                    "type": "string"
                },
                "articulo": {
                    "type": "string"
                },
                "art_codigo": {
                    "type": "string"
                },
                "fila_entrada": {
                    "type": "integer"
                },
                "fecha_entrada": {
                    "type": "string",
                    "format": "date-time"
                },
                "cantidad_lote": {
                    "type": "string"
                },
                "consumido": {
                    "type": "string"
                },
                "residual": {
                    "type": "string"
                },
                "estado": {
                    "type": "string"
                },
                "fecha_agotamiento": {
                    "type": "string",
                    "format": "date-time"
                },
                "dias_agotamiento": {
                    "type": "integer"
                },
                "costo_lote": {
                    "type": "string"
                },
                "valor_bodega": {
                    "type": "string"
                },
                "consumos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ConsumoDTO"
                    }
                }
            }
        },
        "dto.MovimientoLedgerDTO": {
            "type": "object",
            "properties": {
                "fecha": {
                    "type": "string",
                    "format": "date-time"
                },
                "material": {
                    "type": "string"
                },
                "articulo": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "string"
                },
                "tipo_movimiento": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                }
            }
        },
        "dto.TotalesAnalisisDTO": {
            "type": "object",
            "properties": {
                "lotes": {
                    "type": "integer"
                },
                "lotes_agotados": {
                    "type": "integer"
                },
                "cantidad_total": {
                    "type": "string"
                },
                "consumido": {
                    "type": "string"
                },
                "costo_unitario": {
                    "type": "string"
                },
                "residual": {
                    "type": "string"
                },
                "costo_total": {
                    "type": "string"
                },
                "valor_bodega": {
                    "type": "string"
                }
            }
        },
        "dto.AnalisisResponse": {
            "type": "object",
            "properties": {
                "obra": {
                    "$ref": "#/definitions/dto.ObraDTO"
                },
                "material": {
                    "type": "string"
                },
                "articulo": {
                    "type": "string"
                },
                "precio_promedio": {
                    "type": "string"
                },
                "lotes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LoteDTO"
                    }
                },
                "movimientos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MovimientoLedgerDTO"
                    }
                },
                "excluidas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MovimientoDTO"
                    }
                },
                "totales": {
                    "$ref": "#/definitions/dto.TotalesAnalisisDTO"
                },
                "advertencias": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.AnalisisObraResponse": {
            "type": "object",
            "properties": {
                "obra": {
                    "$ref": "#/definitions/dto.ObraDTO"
                },
                "grupos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AnalisisResponse"
                    }
                },
                "totales": {
                    "$ref": "#/definitions/dto.TotalesAnalisisDTO"
                },
                "advertencias": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo metadatos del documento; se pueden ajustar en runtime (Host, BasePath).
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Seguimiento de Obra API",
	Description:      "Seguimiento de materiales por O.T.: cruce de entradas, salidas y obras, análisis FIFO de lotes y reportes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
