package dto

// RegisterEmbarazadaRequest carries the patient fields plus the address that
// is created with her in the same transaction.
type RegisterEmbarazadaRequest struct {
	Nombre       string   `json:"Nombre" validate:"required"`
	DPI          string   `json:"DPI" validate:"required,dpi"`
	Edad         int      `json:"Edad" validate:"required,gte=1,lte=120"`
	Telefono     string   `json:"TELEFONO" validate:"required,telefono_gt"`
	Calle        string   `json:"Calle" validate:"required"`
	Ciudad       string   `json:"Ciudad" validate:"required"`
	Departamento string   `json:"Departamento" validate:"required"`
	Municipio    string   `json:"Municipio" validate:"required"`
	Zona         *string  `json:"Zona"`
	Avenida      *string  `json:"Avenida"`
	NumeroCasa   string   `json:"Numero_Casa" validate:"required,numero_casa"`
	Latitud      *float64 `json:"Latitud"`
	Longitud     *float64 `json:"Longitud"`
}

type RegisterEmbarazadaResponse struct {
	Message      string `json:"message"`
	EmbarazadaID uint   `json:"ID_Embarazada"`
	DireccionID  uint   `json:"ID_Direccion"`
}

type UpdateEmbarazadaRequest struct {
	Nombre   string `json:"Nombre" validate:"required"`
	DPI      string `json:"DPI" validate:"required,dpi"`
	Edad     int    `json:"Edad" validate:"required,gte=1,lte=120"`
	Telefono string `json:"TELEFONO" validate:"required,telefono_gt"`
}
