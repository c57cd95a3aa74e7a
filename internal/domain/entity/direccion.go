package entity

// Direccion is the postal/geographic address owned by exactly one Embarazada.
// It is created before, and deleted after, its owning patient record.
type Direccion struct {
	ID           uint     `gorm:"column:id_direccion;primaryKey;autoIncrement" json:"ID_Direccion"`
	Calle        string   `gorm:"type:varchar(150);not null" json:"Calle"`
	Ciudad       string   `gorm:"type:varchar(100);not null" json:"Ciudad"`
	Departamento string   `gorm:"type:varchar(100);not null" json:"Departamento"`
	Municipio    string   `gorm:"type:varchar(100);not null;index" json:"Municipio"`
	Zona         *string  `gorm:"type:varchar(20)" json:"Zona"`
	Avenida      *string  `gorm:"type:varchar(100)" json:"Avenida"`
	NumeroCasa   string   `gorm:"column:numero_casa;type:varchar(20);not null" json:"Numero_Casa"`
	Latitud      *float64 `json:"Latitud"`
	Longitud     *float64 `json:"Longitud"`
}

func (Direccion) TableName() string {
	return "direcciones"
}
