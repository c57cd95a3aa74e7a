package entity

import "time"

// Seguimiento is a dated follow-up visit record tied to a patient and the
// staff user who logged it.
type Seguimiento struct {
	ID            uint      `gorm:"column:id_seguimiento;primaryKey;autoIncrement" json:"ID_Seguimiento"`
	EmbarazadaID  uint      `gorm:"column:id_embarazada;not null;index" json:"ID_Embarazada"`
	UsuarioID     uint      `gorm:"column:id_usuario;not null;index" json:"ID_Usuario"`
	Fecha         time.Time `gorm:"column:fecha_seguimiento;type:date;not null" json:"Fecha_Seguimiento"`
	Observaciones string    `gorm:"type:text" json:"Observaciones"`
	SignosAlarma  string    `gorm:"column:signos_alarma;type:text" json:"Signos_Alarma"`
}

func (Seguimiento) TableName() string {
	return "seguimientos"
}
