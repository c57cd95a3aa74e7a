package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/domain/entity"
	"mapeo-backend/internal/domain/repository"
	"mapeo-backend/internal/infrastructure/database"
	"mapeo-backend/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDPIExists          = errors.New("el DPI ya está registrado")
	ErrTelefonoExists     = errors.New("el teléfono ya está registrado")
	ErrViviendaExists     = errors.New("ya existe un registro con el mismo nombre, número de casa y municipio")
	ErrEmbarazadaNotFound = errors.New("embarazada no encontrada")
)

type EmbarazadaUsecase interface {
	List(ctx context.Context) ([]entity.Embarazada, error)
	ListConDireccion(ctx context.Context) ([]entity.EmbarazadaConDireccion, error)
	Register(ctx context.Context, req *dto.RegisterEmbarazadaRequest) (*dto.RegisterEmbarazadaResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEmbarazadaRequest) error
	Delete(ctx context.Context, id uint) error
}

type embarazadaUsecase struct {
	provider       *database.Provider
	log            *logrus.Logger
	embarazadaRepo repository.EmbarazadaRepository
	direccionRepo  repository.DireccionRepository
	auditService   service.AuditService
}

func NewEmbarazadaUsecase(
	provider *database.Provider,
	log *logrus.Logger,
	embarazadaRepo repository.EmbarazadaRepository,
	direccionRepo repository.DireccionRepository,
	auditService service.AuditService,
) EmbarazadaUsecase {
	return &embarazadaUsecase{
		provider:       provider,
		log:            log,
		embarazadaRepo: embarazadaRepo,
		direccionRepo:  direccionRepo,
		auditService:   auditService,
	}
}

func (u *embarazadaUsecase) List(ctx context.Context) ([]entity.Embarazada, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}
	return u.embarazadaRepo.FindAll(db.WithContext(ctx))
}

func (u *embarazadaUsecase) ListConDireccion(ctx context.Context) ([]entity.EmbarazadaConDireccion, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}
	return u.embarazadaRepo.FindAllConDireccion(db.WithContext(ctx))
}

// registrationGuard is one uniqueness predicate evaluated inside the
// registration transaction. Guards run in declaration order so conflict
// responses are deterministic; the first hit aborts the transaction.
type registrationGuard struct {
	count    func(tx *gorm.DB) (int64, error)
	conflict error
}

// Register creates the address and the patient as one atomic unit: either
// both rows exist afterwards or neither does.
func (u *embarazadaUsecase) Register(ctx context.Context, req *dto.RegisterEmbarazadaRequest) (*dto.RegisterEmbarazadaResponse, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	guards := []registrationGuard{
		{
			count: func(tx *gorm.DB) (int64, error) {
				return u.embarazadaRepo.CountByDPI(tx, req.DPI, 0)
			},
			conflict: ErrDPIExists,
		},
		{
			count: func(tx *gorm.DB) (int64, error) {
				return u.embarazadaRepo.CountByTelefono(tx, req.Telefono, 0)
			},
			conflict: ErrTelefonoExists,
		},
		{
			count: func(tx *gorm.DB) (int64, error) {
				return u.embarazadaRepo.CountByNombreCasaMunicipio(tx, req.Nombre, req.NumeroCasa, req.Municipio)
			},
			conflict: ErrViviendaExists,
		},
	}

	for _, guard := range guards {
		n, err := guard.count(tx)
		if err != nil {
			u.log.Warnf("Failed registration uniqueness check: %+v", err)
			return nil, err
		}
		if n > 0 {
			return nil, guard.conflict
		}
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

	if err := u.direccionRepo.Create(tx, direccion); err != nil {
		u.log.Warnf("Failed to create direccion: %+v", err)
		return nil, err
	}

	embarazada := &entity.Embarazada{
		Nombre:      req.Nombre,
		DPI:         req.DPI,
		Edad:        req.Edad,
		Telefono:    req.Telefono,
		DireccionID: direccion.ID,
	}

	if err := u.embarazadaRepo.Create(tx, embarazada); err != nil {
		// A concurrent registration can slip past the guards; the unique
		// index decides the winner and the loser gets the conflict.
		if isDuplicateKeyError(err, "dpi") {
			return nil, ErrDPIExists
		}
		if isDuplicateKeyError(err, "telefono") {
			return nil, ErrTelefonoExists
		}
		u.log.Warnf("Failed to create embarazada: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, nil, entity.AuditActionEmbarazadaCreate, "embarazada",
		fmt.Sprint(embarazada.ID), map[string]interface{}{"Nombre": embarazada.Nombre, "DPI": embarazada.DPI}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "dpi") {
			return nil, ErrDPIExists
		}
		if isDuplicateKeyError(err, "telefono") {
			return nil, ErrTelefonoExists
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RegisterEmbarazadaResponse{
		Message:      "Embarazada registrada correctamente",
		EmbarazadaID: embarazada.ID,
		DireccionID:  direccion.ID,
	}, nil
}

// Update runs the duplicate checks outside any transaction. The
// check-then-update window is a known, accepted race; the unique indexes
// still backstop it.
func (u *embarazadaUsecase) Update(ctx context.Context, id uint, req *dto.UpdateEmbarazadaRequest) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}
	db = db.WithContext(ctx)

	n, err := u.embarazadaRepo.CountByDPI(db, req.DPI, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDPIExists
	}

	n, err = u.embarazadaRepo.CountByTelefono(db, req.Telefono, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTelefonoExists
	}

	rows, err := u.embarazadaRepo.Update(db, &entity.Embarazada{
		ID:       id,
		Nombre:   req.Nombre,
		DPI:      req.DPI,
		Edad:     req.Edad,
		Telefono: req.Telefono,
	})
	if err != nil {
		if isDuplicateKeyError(err, "dpi") {
			return ErrDPIExists
		}
		if isDuplicateKeyError(err, "telefono") {
			return ErrTelefonoExists
		}
		u.log.Warnf("Failed to update embarazada %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrEmbarazadaNotFound
	}
	return nil
}

// Delete removes the patient with her risks, follow-ups and address in one
// transaction, children before parent.
func (u *embarazadaUsecase) Delete(ctx context.Context, id uint) error {
	db, err := u.provider.Get()
	if err != nil {
		return err
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	embarazada, err := u.embarazadaRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if embarazada == nil {
		return ErrEmbarazadaNotFound
	}

	if err := u.embarazadaRepo.DeleteRiesgosByEmbarazada(tx, id); err != nil {
		u.log.Warnf("Failed to delete riesgos for embarazada %d: %+v", id, err)
		return err
	}
	if err := u.embarazadaRepo.DeleteSeguimientosByEmbarazada(tx, id); err != nil {
		u.log.Warnf("Failed to delete seguimientos for embarazada %d: %+v", id, err)
		return err
	}
	if _, err := u.embarazadaRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete embarazada %d: %+v", id, err)
		return err
	}
	if embarazada.DireccionID != 0 {
		if _, err := u.direccionRepo.Delete(tx, embarazada.DireccionID); err != nil {
			u.log.Warnf("Failed to delete direccion %d: %+v", embarazada.DireccionID, err)
			return err
		}
	}

	if err := u.auditService.LogDelete(tx, nil, entity.AuditActionEmbarazadaDelete, "embarazada",
		fmt.Sprint(id), map[string]interface{}{"Nombre": embarazada.Nombre, "DPI": embarazada.DPI}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation on the named column/constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
