package dto

type CreateUsuarioRequest struct {
	Nombre            string `json:"Nombre" validate:"required"`
	Contrasena        string `json:"Contraseña" validate:"required"`
	DPI               string `json:"DPI" validate:"required,dpi"`
	Telefono          string `json:"TELEFONO" validate:"required,telefono_gt"`
	Salt              string `json:"Salt"`
	Rol               string `json:"Rol" validate:"required"`
	CorreoElectronico string `json:"CorreoElectronico" validate:"omitempty,email"`
}

type UpdateUsuarioRequest struct {
	Nombre            string `json:"Nombre" validate:"required"`
	Contrasena        string `json:"Contraseña" validate:"required"`
	DPI               string `json:"DPI" validate:"required,dpi"`
	Telefono          string `json:"TELEFONO" validate:"required,telefono_gt"`
	Salt              string `json:"Salt"`
	Rol               string `json:"Rol" validate:"required"`
	CorreoElectronico string `json:"CorreoElectronico" validate:"omitempty,email"`
}
