package usecase

import (
	"context"
	"errors"

	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/domain/entity"
	"mapeo-backend/internal/domain/repository"
	"mapeo-backend/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
)

var (
	ErrUsuarioNotFound       = errors.New("usuario no encontrado")
	ErrUsuarioTelefonoExists = errors.New("algún dato único ya está registrado (Nombre, Correo, DPI o Teléfono)")
)

type UsuarioUsecase interface {
	List(ctx context.Context) ([]entity.Usuario, error)
	Create(ctx context.Context, req *dto.CreateUsuarioRequest) error
	Update(ctx context.Context, id uint, req *dto.UpdateUsuarioRequest) error
	Delete(ctx context.Context, id uint) error
}

type usuarioUsecase struct {
	provider    *database.Provider
	log         *logrus.Logger
	usuarioRepo repository.UsuarioRepository
}

func NewUsuarioUsecase(provider *database.Provider, log *logrus.Logger, usuarioRepo repository.UsuarioRepository) UsuarioUsecase {
	return &usuarioUsecase{
		provider:    provider,
		log:         log,
		usuarioRepo: usuarioRepo,
	}
}

func (u *usuarioUsecase) List(ctx context.Context) ([]entity.Usuario, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}
	return u.usuarioRepo.FindAll(db.WithContext(ctx))
}

// Create guards only on the phone number; the other "unique" fields are
// intent, not enforcement.
func (u *usuarioUsecase) Create(ctx context.Context, req *dto.CreateUsuarioRequest) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}
	db = db.WithContext(ctx)

	n, err := u.usuarioRepo.CountByTelefono(db, req.Telefono)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrUsuarioTelefonoExists
	}

	usuario := &entity.Usuario{
		Nombre:            req.Nombre,
		Contrasena:        req.Contrasena,
		Salt:              req.Salt,
		DPI:               req.DPI,
		Telefono:          req.Telefono,
		Rol:               req.Rol,
		CorreoElectronico: req.CorreoElectronico,
	}

	if err := u.usuarioRepo.Create(db, usuario); err != nil {
		u.log.Warnf("Failed to create usuario: %+v", err)
		return err
	}
	return nil
}

func (u *usuarioUsecase) Update(ctx context.Context, id uint, req *dto.UpdateUsuarioRequest) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}

	rows, err := u.usuarioRepo.Update(db.WithContext(ctx), &entity.Usuario{
		ID:                id,
		Nombre:            req.Nombre,
		Contrasena:        req.Contrasena,
		Salt:              req.Salt,
		DPI:               req.DPI,
		Telefono:          req.Telefono,
		Rol:               req.Rol,
		CorreoElectronico: req.CorreoElectronico,
	})
	if err != nil {
		u.log.Warnf("Failed to update usuario %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrUsuarioNotFound
	}
	return nil
}

func (u *usuarioUsecase) Delete(ctx context.Context, id uint) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}

	rows, err := u.usuarioRepo.Delete(db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete usuario %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrUsuarioNotFound
	}
	return nil
}
