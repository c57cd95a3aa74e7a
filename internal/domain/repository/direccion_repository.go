package repository

import (
	"mapeo-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DireccionRepository interface {
	FindAll(db *gorm.DB) ([]entity.Direccion, error)
	FindByID(db *gorm.DB, id uint) (*entity.Direccion, error)
	Create(db *gorm.DB, direccion *entity.Direccion) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
