package usecase

import (
	"context"
	"testing"

	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeguimientoCreateAndList(t *testing.T) {
	provider := newTestProvider(t)
	uc := NewSeguimientoUsecase(provider, testLogger(), repository.NewSeguimientoRepository())
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &dto.CreateSeguimientoRequest{
		EmbarazadaID:  1,
		UsuarioID:     1,
		Fecha:         "2025-06-15",
		Observaciones: "control mensual",
		SignosAlarma:  "ninguno",
	}))

	t.Run("malformed date", func(t *testing.T) {
		err := uc.Create(ctx, &dto.CreateSeguimientoRequest{
			EmbarazadaID: 1,
			UsuarioID:    1,
			Fecha:        "15-06-2025",
		})
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	seguimientos, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, seguimientos, 1)
	assert.Equal(t, "control mensual", seguimientos[0].Observaciones)
}

func TestSeguimientoUpdate(t *testing.T) {
	provider := newTestProvider(t)
	uc := NewSeguimientoUsecase(provider, testLogger(), repository.NewSeguimientoRepository())
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, &dto.CreateSeguimientoRequest{
		EmbarazadaID: 1,
		UsuarioID:    1,
		Fecha:        "2025-06-15",
	}))

	seguimientos, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, seguimientos, 1)

	require.NoError(t, uc.Update(ctx, seguimientos[0].ID, &dto.UpdateSeguimientoRequest{
		EmbarazadaID:  1,
		UsuarioID:     1,
		Fecha:         "2025-06-20",
		Observaciones: "presión elevada",
		SignosAlarma:  "dolor de cabeza",
	}))

	seguimientos, err = uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "presión elevada", seguimientos[0].Observaciones)
	assert.Equal(t, "dolor de cabeza", seguimientos[0].SignosAlarma)

	assert.ErrorIs(t, uc.Update(ctx, 424242, &dto.UpdateSeguimientoRequest{
		EmbarazadaID: 1, UsuarioID: 1, Fecha: "2025-06-20",
	}), ErrSeguimientoNotFound)
}
