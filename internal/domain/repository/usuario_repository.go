package repository

import (
	"mapeo-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	FindAll(db *gorm.DB) ([]entity.Usuario, error)
	FindByID(db *gorm.DB, id uint) (*entity.Usuario, error)
	FindByNombre(db *gorm.DB, nombre string) (*entity.Usuario, error)
	CountByTelefono(db *gorm.DB, telefono string) (int64, error)
	Create(db *gorm.DB, usuario *entity.Usuario) error
	Update(db *gorm.DB, usuario *entity.Usuario) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
