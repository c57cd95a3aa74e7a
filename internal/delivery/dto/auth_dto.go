package dto

// Request DTOs

type LoginRequest struct {
	Nombre     string `json:"Nombre" validate:"required"`
	Contrasena string `json:"Contraseña" validate:"required"`
}

// Response DTOs

// UsuarioSesion is the sanitized user view returned by login and
// check-session: never the stored credential or salt.
type UsuarioSesion struct {
	ID     uint   `json:"ID_Usuario"`
	Nombre string `json:"Nombre"`
	Rol    string `json:"Rol"`
}

type LoginResponse struct {
	Message string         `json:"message"`
	User    *UsuarioSesion `json:"user"`
}

type SessionResponse struct {
	LoggedIn bool           `json:"loggedIn"`
	User     *UsuarioSesion `json:"user,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
