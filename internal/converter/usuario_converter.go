package converter

import (
	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/domain/entity"
)

// UsuarioToSesion strips the credential fields; only id, name and role ever
// leave the login/check-session endpoints.
func UsuarioToSesion(usuario *entity.Usuario) *dto.UsuarioSesion {
	if usuario == nil {
		return nil
	}
	return &dto.UsuarioSesion{
		ID:     usuario.ID,
		Nombre: usuario.Nombre,
		Rol:    usuario.Rol,
	}
}
