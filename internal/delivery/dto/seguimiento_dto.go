package dto

type CreateSeguimientoRequest struct {
	EmbarazadaID  uint   `json:"ID_Embarazada" validate:"required"`
	UsuarioID     uint   `json:"ID_Usuario" validate:"required"`
	Fecha         string `json:"Fecha_Seguimiento" validate:"required"` // YYYY-MM-DD
	Observaciones string `json:"Observaciones"`
	SignosAlarma  string `json:"Signos_Alarma"`
}

type UpdateSeguimientoRequest struct {
	EmbarazadaID  uint   `json:"ID_Embarazada" validate:"required"`
	UsuarioID     uint   `json:"ID_Usuario" validate:"required"`
	Fecha         string `json:"Fecha_Seguimiento" validate:"required"` // YYYY-MM-DD
	Observaciones string `json:"Observaciones"`
	SignosAlarma  string `json:"Signos_Alarma"`
}
