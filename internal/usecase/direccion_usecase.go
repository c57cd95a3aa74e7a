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

var ErrDireccionNotFound = errors.New("dirección no encontrada")

type DireccionUsecase interface {
	List(ctx context.Context) ([]entity.Direccion, error)
	Create(ctx context.Context, req *dto.CreateDireccionRequest) (*dto.CreateDireccionResponse, error)
	Delete(ctx context.Context, id uint) error
}

type direccionUsecase struct {
	provider      *database.Provider
	log           *logrus.Logger
	direccionRepo repository.DireccionRepository
}

func NewDireccionUsecase(provider *database.Provider, log *logrus.Logger, direccionRepo repository.DireccionRepository) DireccionUsecase {
	return &direccionUsecase{
		provider:      provider,
		log:           log,
		direccionRepo: direccionRepo,
	}
}

func (u *direccionUsecase) List(ctx context.Context) ([]entity.Direccion, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}
	return u.direccionRepo.FindAll(db.WithContext(ctx))
}

func (u *direccionUsecase) Create(ctx context.Context, req *dto.CreateDireccionRequest) (*dto.CreateDireccionResponse, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}

	direccion := &entity.Direccion{
		Calle:        req.Calle,
		Ciudad:       req.Ciudad,
		Departamento: req.Departamento,
		Municipio:    req.Municipio,
		Zona:         req.Zona,
		Avenida:      req.Avenida,
		NumeroCasa:   req.NumeroCasa,
		Latitud:      req.Latitud,
		Longitud:     req.Longitud,
	}

	if err := u.direccionRepo.Create(db.WithContext(ctx), direccion); err != nil {
		u.log.Warnf("Failed to create direccion: %+v", err)
		return nil, err
	}

	return &dto.CreateDireccionResponse{
		Message:     "Dirección creada correctamente",
		DireccionID: direccion.ID,
	}, nil
}

func (u *direccionUsecase) Delete(ctx context.Context, id uint) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}

	rows, err := u.direccionRepo.Delete(db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete direccion %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDireccionNotFound
	}
	return nil
}
