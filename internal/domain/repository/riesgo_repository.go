package repository

import (
	"mapeo-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type RiesgoRepository interface {
	FindAllConNombre(db *gorm.DB) ([]entity.RiesgoConNombre, error)
	CountByNivel(db *gorm.DB) ([]entity.RiesgoConteo, error)
	Create(db *gorm.DB, riesgo *entity.Riesgo) error
	Update(db *gorm.DB, riesgo *entity.Riesgo) (int64, error)
}
