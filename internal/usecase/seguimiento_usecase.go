package usecase

import (
	"context"
	"errors"
	"time"

	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/domain/entity"
	"mapeo-backend/internal/domain/repository"
	"mapeo-backend/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
)

var ErrSeguimientoNotFound = errors.New("seguimiento no encontrado")

type SeguimientoUsecase interface {
	List(ctx context.Context) ([]entity.Seguimiento, error)
	Create(ctx context.Context, req *dto.CreateSeguimientoRequest) error
	Update(ctx context.Context, id uint, req *dto.UpdateSeguimientoRequest) error
}

type seguimientoUsecase struct {
	provider        *database.Provider
	log             *logrus.Logger
	seguimientoRepo repository.SeguimientoRepository
}

func NewSeguimientoUsecase(provider *database.Provider, log *logrus.Logger, seguimientoRepo repository.SeguimientoRepository) SeguimientoUsecase {
	return &seguimientoUsecase{
		provider:        provider,
		log:             log,
		seguimientoRepo: seguimientoRepo,
	}
}

func (u *seguimientoUsecase) List(ctx context.Context) ([]entity.Seguimiento, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}
	return u.seguimientoRepo.FindAll(db.WithContext(ctx))
}

func (u *seguimientoUsecase) Create(ctx context.Context, req *dto.CreateSeguimientoRequest) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return ErrInvalidDateFormat
	}

	seguimiento := &entity.Seguimiento{
		EmbarazadaID:  req.EmbarazadaID,
		UsuarioID:     req.UsuarioID,
		Fecha:         fecha,
		Observaciones: req.Observaciones,
		SignosAlarma:  req.SignosAlarma,
	}

	if err := u.seguimientoRepo.Create(db.WithContext(ctx), seguimiento); err != nil {
		u.log.Warnf("Failed to create seguimiento: %+v", err)
		return err
	}
	return nil
}

func (u *seguimientoUsecase) Update(ctx context.Context, id uint, req *dto.UpdateSeguimientoRequest) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return ErrInvalidDateFormat
	}

	rows, err := u.seguimientoRepo.Update(db.WithContext(ctx), &entity.Seguimiento{
		ID:            id,
		EmbarazadaID:  req.EmbarazadaID,
		UsuarioID:     req.UsuarioID,
		Fecha:         fecha,
		Observaciones: req.Observaciones,
		SignosAlarma:  req.SignosAlarma,
	})
	if err != nil {
		u.log.Warnf("Failed to update seguimiento %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrSeguimientoNotFound
	}
	return nil
}
