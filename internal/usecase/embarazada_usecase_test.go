package usecase

import (
	"context"
	"testing"
	"time"

	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/domain/entity"
	"mapeo-backend/internal/infrastructure/database"
	"mapeo-backend/internal/repository"
	"mapeo-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmbarazadaUsecase(t *testing.T) (EmbarazadaUsecase, *database.Provider) {
	t.Helper()
	provider := newTestProvider(t)
	log := testLogger()
	uc := NewEmbarazadaUsecase(
		provider,
		log,
		repository.NewEmbarazadaRepository(),
		repository.NewDireccionRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()),
	)
	return uc, provider
}

func registerRequest() *dto.RegisterEmbarazadaRequest {
	return &dto.RegisterEmbarazadaRequest{
		Nombre:       "María López",
		DPI:          "1234567890123",
		Edad:         27,
		Telefono:     "12345678",
		Calle:        "3a Calle",
		Ciudad:       "Cobán",
		Departamento: "Alta Verapaz",
		Municipio:    "Cobán",
		NumeroCasa:   "12",
	}
}

func rowCounts(t *testing.T, provider *database.Provider) (embarazadas, direcciones int64) {
	t.Helper()
	db, err := provider.Get()
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.Embarazada{}).Count(&embarazadas).Error)
	require.NoError(t, db.Model(&entity.Direccion{}).Count(&direcciones).Error)
	return
}

func TestRegisterCreatesPatientAndAddressTogether(t *testing.T) {
	uc, provider := newEmbarazadaUsecase(t)
	ctx := context.Background()

	result, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.NotZero(t, result.EmbarazadaID)
	assert.NotZero(t, result.DireccionID)

	db, err := provider.Get()
	require.NoError(t, err)

	var embarazada entity.Embarazada
	require.NoError(t, db.Where("id_embarazada = ?", result.EmbarazadaID).First(&embarazada).Error)
	assert.Equal(t, result.DireccionID, embarazada.DireccionID, "patient must reference the address created with her")

	embarazadas, direcciones := rowCounts(t, provider)
	assert.EqualValues(t, 1, embarazadas)
	assert.EqualValues(t, 1, direcciones)
}

func TestRegisterConflictsLeaveNoRows(t *testing.T) {
	uc, provider := newEmbarazadaUsecase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	preEmb, preDir := rowCounts(t, provider)

	testCases := []struct {
		name     string
		mutate   func(*dto.RegisterEmbarazadaRequest)
		expected error
	}{
		{
			name:     "duplicate DPI",
			mutate:   func(r *dto.RegisterEmbarazadaRequest) { r.Telefono = "87654321"; r.Nombre = "Otra Persona" },
			expected: ErrDPIExists,
		},
		{
			name:     "duplicate phone",
			mutate:   func(r *dto.RegisterEmbarazadaRequest) { r.DPI = "9999999999999"; r.Nombre = "Otra Persona" },
			expected: ErrTelefonoExists,
		},
		{
			name:     "duplicate name, house number and municipality",
			mutate:   func(r *dto.RegisterEmbarazadaRequest) { r.DPI = "9999999999999"; r.Telefono = "87654321" },
			expected: ErrViviendaExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := registerRequest()
			tc.mutate(req)

			_, err := uc.Register(ctx, req)
			assert.ErrorIs(t, err, tc.expected)

			postEmb, postDir := rowCounts(t, provider)
			assert.Equal(t, preEmb, postEmb, "conflict must not add patient rows")
			assert.Equal(t, preDir, postDir, "conflict must not leave an orphan address")
		})
	}
}

func TestRegisterGuardOrderIsDeterministic(t *testing.T) {
	uc, _ := newEmbarazadaUsecase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	// A request duplicating every unique field must report the DPI first.
	_, err = uc.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, ErrDPIExists)
}

func TestDeleteCascades(t *testing.T) {
	uc, provider := newEmbarazadaUsecase(t)
	ctx := context.Background()

	result, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	db, err := provider.Get()
	require.NoError(t, err)

	usuario := entity.Usuario{Nombre: "enfermera", Contrasena: "x", Rol: "personal"}
	require.NoError(t, db.Create(&usuario).Error)
	require.NoError(t, db.Create(&entity.Riesgo{
		EmbarazadaID: result.EmbarazadaID,
		Fecha:        time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
		Nivel:        "alto",
	}).Error)
	require.NoError(t, db.Create(&entity.Seguimiento{
		EmbarazadaID:  result.EmbarazadaID,
		UsuarioID:     usuario.ID,
		Fecha:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Observaciones: "control mensual",
	}).Error)

	require.NoError(t, uc.Delete(ctx, result.EmbarazadaID))

	var count int64
	require.NoError(t, db.Model(&entity.Riesgo{}).Where("id_embarazada = ?", result.EmbarazadaID).Count(&count).Error)
	assert.Zero(t, count, "riesgos must be deleted with the patient")
	require.NoError(t, db.Model(&entity.Seguimiento{}).Where("id_embarazada = ?", result.EmbarazadaID).Count(&count).Error)
	assert.Zero(t, count, "seguimientos must be deleted with the patient")
	require.NoError(t, db.Model(&entity.Direccion{}).Where("id_direccion = ?", result.DireccionID).Count(&count).Error)
	assert.Zero(t, count, "address must be deleted with the patient")

	assert.ErrorIs(t, uc.Delete(ctx, result.EmbarazadaID), ErrEmbarazadaNotFound)
}

func TestUpdate(t *testing.T) {
	uc, _ := newEmbarazadaUsecase(t)
	ctx := context.Background()

	first, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	second := registerRequest()
	second.DPI = "9999999999999"
	second.Telefono = "87654321"
	second.Nombre = "Ana Pérez"
	_, err = uc.Register(ctx, second)
	require.NoError(t, err)

	t.Run("keeping own unique fields is not a conflict", func(t *testing.T) {
		// The duplicate checks exclude the record being edited. This is a
		// read-then-update outside a transaction, a known accepted race.
		err := uc.Update(ctx, first.EmbarazadaID, &dto.UpdateEmbarazadaRequest{
			Nombre: "María López de García", DPI: "1234567890123", Edad: 28, Telefono: "12345678",
		})
		assert.NoError(t, err)
	})

	t.Run("taking another record's DPI conflicts", func(t *testing.T) {
		err := uc.Update(ctx, first.EmbarazadaID, &dto.UpdateEmbarazadaRequest{
			Nombre: "María", DPI: "9999999999999", Edad: 28, Telefono: "12345678",
		})
		assert.ErrorIs(t, err, ErrDPIExists)
	})

	t.Run("missing record reports not found", func(t *testing.T) {
		err := uc.Update(ctx, 424242, &dto.UpdateEmbarazadaRequest{
			Nombre: "Nadie", DPI: "1111111111111", Edad: 30, Telefono: "55555555",
		})
		assert.ErrorIs(t, err, ErrEmbarazadaNotFound)
	})
}

func TestListConDireccionIncludesLatestRisk(t *testing.T) {
	uc, provider := newEmbarazadaUsecase(t)
	ctx := context.Background()

	result, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)

	db, err := provider.Get()
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Riesgo{
		EmbarazadaID: result.EmbarazadaID,
		Fecha:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Nivel:        "medio",
	}).Error)
	require.NoError(t, db.Create(&entity.Riesgo{
		EmbarazadaID: result.EmbarazadaID,
		Fecha:        time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		Nivel:        "alto",
	}).Error)

	rows, err := uc.ListConDireccion(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, result.EmbarazadaID, row.ID)
	assert.Equal(t, "Cobán", row.Municipio)
	require.NotNil(t, row.UltimoNivel)
	assert.Equal(t, "alto", *row.UltimoNivel)
}
