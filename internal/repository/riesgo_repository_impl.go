package repository

import (
	"mapeo-backend/internal/domain/entity"
	domainRepo "mapeo-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type riesgoRepository struct{}

func NewRiesgoRepository() domainRepo.RiesgoRepository {
	return &riesgoRepository{}
}

func (r *riesgoRepository) FindAllConNombre(db *gorm.DB) ([]entity.RiesgoConNombre, error) {
	var rows []entity.RiesgoConNombre
	err := db.Raw(`
		SELECT r.id_riesgo, r.id_embarazada, e.nombre AS nombre_embarazada,
		       r.fecha_riesgo, r.nivel
		FROM riesgos r
		INNER JOIN embarazadas e ON r.id_embarazada = e.id_embarazada`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *riesgoRepository) CountByNivel(db *gorm.DB) ([]entity.RiesgoConteo, error) {
	var rows []entity.RiesgoConteo
	err := db.Model(&entity.Riesgo{}).
		Select("nivel, COUNT(*) AS cantidad").
		Group("nivel").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *riesgoRepository) Create(db *gorm.DB, riesgo *entity.Riesgo) error {
	return db.Create(riesgo).Error
}

func (r *riesgoRepository) Update(db *gorm.DB, riesgo *entity.Riesgo) (int64, error) {
	result := db.Model(&entity.Riesgo{}).
		Where("id_riesgo = ?", riesgo.ID).
		Updates(map[string]interface{}{
			"id_embarazada": riesgo.EmbarazadaID,
			"fecha_riesgo":  riesgo.Fecha,
			"nivel":         riesgo.Nivel,
		})
	return result.RowsAffected, result.Error
}
