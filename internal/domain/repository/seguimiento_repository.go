package repository

import (
	"mapeo-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type SeguimientoRepository interface {
	FindAll(db *gorm.DB) ([]entity.Seguimiento, error)
	Create(db *gorm.DB, seguimiento *entity.Seguimiento) error
	Update(db *gorm.DB, seguimiento *entity.Seguimiento) (int64, error)
}
