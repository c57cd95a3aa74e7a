package dto

type CreateDireccionRequest struct {
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

type CreateDireccionResponse struct {
	Message     string `json:"message"`
	DireccionID uint   `json:"ID_Direccion"`
}
