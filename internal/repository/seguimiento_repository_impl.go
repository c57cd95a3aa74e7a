package repository

import (
	"mapeo-backend/internal/domain/entity"
	domainRepo "mapeo-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type seguimientoRepository struct{}

func NewSeguimientoRepository() domainRepo.SeguimientoRepository {
	return &seguimientoRepository{}
}

func (r *seguimientoRepository) FindAll(db *gorm.DB) ([]entity.Seguimiento, error) {
	var seguimientos []entity.Seguimiento
	if err := db.Find(&seguimientos).Error; err != nil {
		return nil, err
	}
	return seguimientos, nil
}

func (r *seguimientoRepository) Create(db *gorm.DB, seguimiento *entity.Seguimiento) error {
	return db.Create(seguimiento).Error
}

func (r *seguimientoRepository) Update(db *gorm.DB, seguimiento *entity.Seguimiento) (int64, error) {
	result := db.Model(&entity.Seguimiento{}).
		Where("id_seguimiento = ?", seguimiento.ID).
		Updates(map[string]interface{}{
			"id_embarazada":     seguimiento.EmbarazadaID,
			"id_usuario":        seguimiento.UsuarioID,
			"fecha_seguimiento": seguimiento.Fecha,
			"observaciones":     seguimiento.Observaciones,
			"signos_alarma":     seguimiento.SignosAlarma,
		})
	return result.RowsAffected, result.Error
}
