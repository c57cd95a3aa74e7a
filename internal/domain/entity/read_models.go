package entity

import "time"

// Flat read models for the reporting queries. They are scan targets for raw
// parameterized SELECTs, not tables of their own.

// EmbarazadaConDireccion is one row of the joined patient+address view,
// including the most recent risk level when one exists.
type EmbarazadaConDireccion struct {
	ID           uint     `gorm:"column:id_embarazada" json:"ID_Embarazada"`
	Nombre       string   `gorm:"column:nombre" json:"Nombre"`
	DPI          string   `gorm:"column:dpi" json:"DPI"`
	Edad         int      `gorm:"column:edad" json:"Edad"`
	Telefono     string   `gorm:"column:telefono" json:"TELEFONO"`
	DireccionID  uint     `gorm:"column:id_direccion" json:"ID_Direccion"`
	Calle        string   `gorm:"column:calle" json:"Calle"`
	Ciudad       string   `gorm:"column:ciudad" json:"Ciudad"`
	Departamento string   `gorm:"column:departamento" json:"Departamento"`
	Municipio    string   `gorm:"column:municipio" json:"Municipio"`
	Zona         *string  `gorm:"column:zona" json:"Zona"`
	Avenida      *string  `gorm:"column:avenida" json:"Avenida"`
	NumeroCasa   string   `gorm:"column:numero_casa" json:"Numero_Casa"`
	Latitud      *float64 `gorm:"column:latitud" json:"Latitud"`
	Longitud     *float64 `gorm:"column:longitud" json:"Longitud"`
	UltimoNivel  *string  `gorm:"column:ultimo_nivel" json:"Ultimo_Nivel_Riesgo"`
}

// RiesgoConNombre is a risk row joined with the patient name.
type RiesgoConNombre struct {
	ID               uint      `gorm:"column:id_riesgo" json:"ID_Riesgo"`
	EmbarazadaID     uint      `gorm:"column:id_embarazada" json:"ID_Embarazada"`
	NombreEmbarazada string    `gorm:"column:nombre_embarazada" json:"NombreEmbarazada"`
	Fecha            time.Time `gorm:"column:fecha_riesgo" json:"Fecha_Riesgo"`
	Nivel            string    `gorm:"column:nivel" json:"Nivel"`
}

// RiesgoConteo is the per-level count used by the risk report.
type RiesgoConteo struct {
	Nivel    string `gorm:"column:nivel" json:"Nivel"`
	Cantidad int64  `gorm:"column:cantidad" json:"Cantidad"`
}
