package entity

import "time"

// Riesgo is a dated risk-level assessment tied to a patient.
type Riesgo struct {
	ID           uint      `gorm:"column:id_riesgo;primaryKey;autoIncrement" json:"ID_Riesgo"`
	EmbarazadaID uint      `gorm:"column:id_embarazada;not null;index" json:"ID_Embarazada"`
	Fecha        time.Time `gorm:"column:fecha_riesgo;type:date;not null" json:"Fecha_Riesgo"`
	Nivel        string    `gorm:"type:varchar(30);not null;index" json:"Nivel"`
}

func (Riesgo) TableName() string {
	return "riesgos"
}
