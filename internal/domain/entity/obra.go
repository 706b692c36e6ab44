package entity

// NombreObraDesconocida se muestra cuando la O.T. no aparece en el archivo de obras.
const NombreObraDesconocida = "Desconocida"

// Obra orden de trabajo (O.T.) con su centro de costo.
type Obra struct {
	Numero      string
	Nombre      string
	CentroCosto string
}

// NombreVisible devuelve el nombre o el texto por defecto si está vacío.
func (o Obra) NombreVisible() string {
	if o.Nombre == "" {
		return NombreObraDesconocida
	}
	return o.Nombre
}
