package repository

import (
	"errors"

	"mapeo-backend/internal/domain/entity"
	domainRepo "mapeo-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type direccionRepository struct{}

func NewDireccionRepository() domainRepo.DireccionRepository {
	return &direccionRepository{}
}

func (r *direccionRepository) FindAll(db *gorm.DB) ([]entity.Direccion, error) {
	var direcciones []entity.Direccion
	if err := db.Find(&direcciones).Error; err != nil {
		return nil, err
	}
	return direcciones, nil
}

func (r *direccionRepository) FindByID(db *gorm.DB, id uint) (*entity.Direccion, error) {
	var direccion entity.Direccion
	err := db.Where("id_direccion = ?", id).First(&direccion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &direccion, nil
}

func (r *direccionRepository) Create(db *gorm.DB, direccion *entity.Direccion) error {
	return db.Create(direccion).Error
}

func (r *direccionRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id_direccion = ?", id).Delete(&entity.Direccion{})
	return result.RowsAffected, result.Error
}
