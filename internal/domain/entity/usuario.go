package entity

// Usuario is a system operator account used for login and audit attribution.
type Usuario struct {
	ID                uint   `gorm:"column:id_usuario;primaryKey;autoIncrement" json:"ID_Usuario"`
	Nombre            string `gorm:"type:varchar(100);not null;index" json:"Nombre"`
	Contrasena        string `gorm:"column:contrasena;type:varchar(255);not null" json:"Contraseña"`
	Salt              string `gorm:"type:varchar(64)" json:"Salt"`
	DPI               string `gorm:"column:dpi;type:char(13)" json:"DPI"`
	Telefono          string `gorm:"column:telefono;type:char(8);index" json:"TELEFONO"`
	Rol               string `gorm:"type:varchar(30);not null" json:"Rol"`
	CorreoElectronico string `gorm:"type:varchar(150)" json:"CorreoElectronico"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
