package repository

import (
	"mapeo-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type EmbarazadaRepository interface {
	FindAll(db *gorm.DB) ([]entity.Embarazada, error)
	FindAllConDireccion(db *gorm.DB) ([]entity.EmbarazadaConDireccion, error)
	FindByID(db *gorm.DB, id uint) (*entity.Embarazada, error)

	// The duplicate counters take an id to exclude so updates can skip the
	// record being edited; pass 0 on registration.
	CountByDPI(db *gorm.DB, dpi string, excludeID uint) (int64, error)
	CountByTelefono(db *gorm.DB, telefono string, excludeID uint) (int64, error)
	CountByNombreCasaMunicipio(db *gorm.DB, nombre, numeroCasa, municipio string) (int64, error)

	Create(db *gorm.DB, embarazada *entity.Embarazada) error
	Update(db *gorm.DB, embarazada *entity.Embarazada) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)

	DeleteRiesgosByEmbarazada(db *gorm.DB, embarazadaID uint) error
	DeleteSeguimientosByEmbarazada(db *gorm.DB, embarazadaID uint) error
}
