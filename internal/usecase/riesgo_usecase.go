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

var (
	ErrRiesgoNotFound           = errors.New("riesgo no encontrado")
	ErrRiesgoEmbarazadaNotFound = errors.New("la embarazada no existe")
	ErrInvalidDateFormat        = errors.New("formato de fecha inválido, use YYYY-MM-DD")
)

type RiesgoUsecase interface {
	List(ctx context.Context) ([]entity.RiesgoConNombre, error)
	Report(ctx context.Context) ([]entity.RiesgoConteo, error)
	Create(ctx context.Context, req *dto.CreateRiesgoRequest) error
	Update(ctx context.Context, id uint, req *dto.UpdateRiesgoRequest) error
}

type riesgoUsecase struct {
	provider       *database.Provider
	log            *logrus.Logger
	riesgoRepo     repository.RiesgoRepository
	embarazadaRepo repository.EmbarazadaRepository
}

func NewRiesgoUsecase(
	provider *database.Provider,
	log *logrus.Logger,
	riesgoRepo repository.RiesgoRepository,
	embarazadaRepo repository.EmbarazadaRepository,
) RiesgoUsecase {
	return &riesgoUsecase{
		provider:       provider,
		log:            log,
		riesgoRepo:     riesgoRepo,
		embarazadaRepo: embarazadaRepo,
	}
}

func (u *riesgoUsecase) List(ctx context.Context) ([]entity.RiesgoConNombre, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}
	return u.riesgoRepo.FindAllConNombre(db.WithContext(ctx))
}

func (u *riesgoUsecase) Report(ctx context.Context) ([]entity.RiesgoConteo, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}
	return u.riesgoRepo.CountByNivel(db.WithContext(ctx))
}

// Create verifies the referenced patient exists before inserting. The check
// and the insert are separate statements, not one transaction: a patient
// deleted in between slips through to the foreign key. Accepted as-is.
func (u *riesgoUsecase) Create(ctx context.Context, req *dto.CreateRiesgoRequest) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}
	db = db.WithContext(ctx)

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return ErrInvalidDateFormat
	}

	embarazada, err := u.embarazadaRepo.FindByID(db, req.EmbarazadaID)
	if err != nil {
		return err
	}
	if embarazada == nil {
		return ErrRiesgoEmbarazadaNotFound
	}

	riesgo := &entity.Riesgo{
		EmbarazadaID: req.EmbarazadaID,
		Fecha:        fecha,
		Nivel:        req.Nivel,
	}

	if err := u.riesgoRepo.Create(db, riesgo); err != nil {
		u.log.Warnf("Failed to create riesgo: %+v", err)
		return err
	}
	return nil
}

func (u *riesgoUsecase) Update(ctx context.Context, id uint, req *dto.UpdateRiesgoRequest) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return ErrInvalidDateFormat
	}

	rows, err := u.riesgoRepo.Update(db.WithContext(ctx), &entity.Riesgo{
		ID:           id,
		EmbarazadaID: req.EmbarazadaID,
		Fecha:        fecha,
		Nivel:        req.Nivel,
	})
	if err != nil {
		u.log.Warnf("Failed to update riesgo %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrRiesgoNotFound
	}
	return nil
}
