package dto

type CreateRiesgoRequest struct {
	EmbarazadaID uint   `json:"ID_Embarazada" validate:"required"`
	Fecha        string `json:"Fecha_Riesgo" validate:"required"` // YYYY-MM-DD
	Nivel        string `json:"Nivel" validate:"required"`
}

type UpdateRiesgoRequest struct {
	EmbarazadaID uint   `json:"ID_Embarazada" validate:"required"`
	Fecha        string `json:"Fecha_Riesgo" validate:"required"` // YYYY-MM-DD
	Nivel        string `json:"Nivel" validate:"required"`
}
