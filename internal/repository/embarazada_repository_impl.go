package repository

import (
	"errors"

	"mapeo-backend/internal/domain/entity"
	domainRepo "mapeo-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type embarazadaRepository struct{}

func NewEmbarazadaRepository() domainRepo.EmbarazadaRepository {
	return &embarazadaRepository{}
}

func (r *embarazadaRepository) FindAll(db *gorm.DB) ([]entity.Embarazada, error) {
	var embarazadas []entity.Embarazada
	if err := db.Find(&embarazadas).Error; err != nil {
		return nil, err
	}
	return embarazadas, nil
}

// FindAllConDireccion returns the joined patient+address view with the most
// recent risk level per patient. The query takes no caller input, so there is
// nothing to bind.
func (r *embarazadaRepository) FindAllConDireccion(db *gorm.DB) ([]entity.EmbarazadaConDireccion, error) {
	var rows []entity.EmbarazadaConDireccion
	err := db.Raw(`
		SELECT e.id_embarazada, e.nombre, e.dpi, e.edad, e.telefono,
		       d.id_direccion, d.calle, d.ciudad, d.departamento, d.municipio,
		       d.zona, d.avenida, d.numero_casa, d.latitud, d.longitud,
		       (SELECT r.nivel FROM riesgos r
		        WHERE r.id_embarazada = e.id_embarazada
		        ORDER BY r.fecha_riesgo DESC, r.id_riesgo DESC
		        LIMIT 1) AS ultimo_nivel
		FROM embarazadas e
		INNER JOIN direcciones d ON d.id_direccion = e.id_direccion
		ORDER BY e.id_embarazada`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *embarazadaRepository) FindByID(db *gorm.DB, id uint) (*entity.Embarazada, error) {
	var embarazada entity.Embarazada
	err := db.Where("id_embarazada = ?", id).First(&embarazada).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &embarazada, nil
}

func (r *embarazadaRepository) CountByDPI(db *gorm.DB, dpi string, excludeID uint) (int64, error) {
	var count int64
	query := db.Model(&entity.Embarazada{}).Where("dpi = ?", dpi)
	if excludeID != 0 {
		query = query.Where("id_embarazada <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *embarazadaRepository) CountByTelefono(db *gorm.DB, telefono string, excludeID uint) (int64, error) {
	var count int64
	query := db.Model(&entity.Embarazada{}).Where("telefono = ?", telefono)
	if excludeID != 0 {
		query = query.Where("id_embarazada <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *embarazadaRepository) CountByNombreCasaMunicipio(db *gorm.DB, nombre, numeroCasa, municipio string) (int64, error) {
	var count int64
	err := db.Model(&entity.Embarazada{}).
		Joins("INNER JOIN direcciones d ON d.id_direccion = embarazadas.id_direccion").
		Where("embarazadas.nombre = ? AND d.numero_casa = ? AND d.municipio = ?", nombre, numeroCasa, municipio).
		Count(&count).Error
	return count, err
}

func (r *embarazadaRepository) Create(db *gorm.DB, embarazada *entity.Embarazada) error {
	return db.Create(embarazada).Error
}

func (r *embarazadaRepository) Update(db *gorm.DB, embarazada *entity.Embarazada) (int64, error) {
	result := db.Model(&entity.Embarazada{}).
		Where("id_embarazada = ?", embarazada.ID).
		Updates(map[string]interface{}{
			"nombre":   embarazada.Nombre,
			"dpi":      embarazada.DPI,
			"edad":     embarazada.Edad,
			"telefono": embarazada.Telefono,
		})
	return result.RowsAffected, result.Error
}

func (r *embarazadaRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id_embarazada = ?", id).Delete(&entity.Embarazada{})
	return result.RowsAffected, result.Error
}

func (r *embarazadaRepository) DeleteRiesgosByEmbarazada(db *gorm.DB, embarazadaID uint) error {
	return db.Where("id_embarazada = ?", embarazadaID).Delete(&entity.Riesgo{}).Error
}

func (r *embarazadaRepository) DeleteSeguimientosByEmbarazada(db *gorm.DB, embarazadaID uint) error {
	return db.Where("id_embarazada = ?", embarazadaID).Delete(&entity.Seguimiento{}).Error
}
