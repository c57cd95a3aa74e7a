package repository

import (
	"errors"

	"mapeo-backend/internal/domain/entity"
	domainRepo "mapeo-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type usuarioRepository struct{}

func NewUsuarioRepository() domainRepo.UsuarioRepository {
	return &usuarioRepository{}
}

func (r *usuarioRepository) FindAll(db *gorm.DB) ([]entity.Usuario, error) {
	var usuarios []entity.Usuario
	if err := db.Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepository) FindByID(db *gorm.DB, id uint) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := db.Where("id_usuario = ?", id).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) FindByNombre(db *gorm.DB, nombre string) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := db.Where("nombre = ?", nombre).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) CountByTelefono(db *gorm.DB, telefono string) (int64, error) {
	var count int64
	err := db.Model(&entity.Usuario{}).Where("telefono = ?", telefono).Count(&count).Error
	return count, err
}

func (r *usuarioRepository) Create(db *gorm.DB, usuario *entity.Usuario) error {
	return db.Create(usuario).Error
}

func (r *usuarioRepository) Update(db *gorm.DB, usuario *entity.Usuario) (int64, error) {
	result := db.Model(&entity.Usuario{}).
		Where("id_usuario = ?", usuario.ID).
		Updates(map[string]interface{}{
			"nombre":             usuario.Nombre,
			"contrasena":         usuario.Contrasena,
			"salt":               usuario.Salt,
			"dpi":                usuario.DPI,
			"telefono":           usuario.Telefono,
			"rol":                usuario.Rol,
			"correo_electronico": usuario.CorreoElectronico,
		})
	return result.RowsAffected, result.Error
}

func (r *usuarioRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id_usuario = ?", id).Delete(&entity.Usuario{})
	return result.RowsAffected, result.Error
}
