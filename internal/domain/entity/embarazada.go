package entity

// Embarazada is a pregnant patient record. DPI and phone are unique on their
// own; the (name, house number, municipality) triple is enforced by the
// registration workflow rather than a database constraint.
type Embarazada struct {
	ID          uint   `gorm:"column:id_embarazada;primaryKey;autoIncrement" json:"ID_Embarazada"`
	Nombre      string `gorm:"type:varchar(150);not null;index" json:"Nombre"`
	DPI         string `gorm:"column:dpi;type:char(13);uniqueIndex;not null" json:"DPI"`
	Edad        int    `gorm:"not null" json:"Edad"`
	Telefono    string `gorm:"column:telefono;type:char(8);uniqueIndex;not null" json:"TELEFONO"`
	DireccionID uint   `gorm:"column:id_direccion;not null" json:"ID_Direccion"`

	Direccion    *Direccion    `gorm:"foreignKey:DireccionID" json:"Direccion,omitempty"`
	Riesgos      []Riesgo      `gorm:"foreignKey:EmbarazadaID" json:"Riesgos,omitempty"`
	Seguimientos []Seguimiento `gorm:"foreignKey:EmbarazadaID" json:"Seguimientos,omitempty"`
}

func (Embarazada) TableName() string {
	return "embarazadas"
}
