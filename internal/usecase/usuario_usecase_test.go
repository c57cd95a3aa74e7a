package usecase

import (
	"context"
	"testing"

	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsuarioUsecase(t *testing.T) UsuarioUsecase {
	t.Helper()
	provider := newTestProvider(t)
	return NewUsuarioUsecase(provider, testLogger(), repository.NewUsuarioRepository())
}

func createUsuarioRequest() *dto.CreateUsuarioRequest {
	return &dto.CreateUsuarioRequest{
		Nombre:            "comadrona",
		Contrasena:        "secreta123",
		DPI:               "1234567890123",
		Telefono:          "12345678",
		Rol:               "personal",
		CorreoElectronico: "comadrona@example.com",
	}
}

func TestUsuarioCreate(t *testing.T) {
	uc := newUsuarioUsecase(t)
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, createUsuarioRequest()))

	usuarios, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, usuarios, 1)
	assert.Equal(t, "comadrona", usuarios[0].Nombre)

	t.Run("duplicate phone is rejected", func(t *testing.T) {
		req := createUsuarioRequest()
		req.Nombre = "otra"
		req.DPI = "9999999999999"
		assert.ErrorIs(t, uc.Create(ctx, req), ErrUsuarioTelefonoExists)
	})
}

func TestUsuarioUpdateAndDelete(t *testing.T) {
	uc := newUsuarioUsecase(t)
	ctx := context.Background()

	require.NoError(t, uc.Create(ctx, createUsuarioRequest()))
	usuarios, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, usuarios, 1)
	id := usuarios[0].ID

	update := &dto.UpdateUsuarioRequest{
		Nombre:     "comadrona jefa",
		Contrasena: "secreta123",
		DPI:        "1234567890123",
		Telefono:   "12345678",
		Rol:        "admin",
	}
	require.NoError(t, uc.Update(ctx, id, update))

	usuarios, err = uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", usuarios[0].Rol)

	assert.ErrorIs(t, uc.Update(ctx, 424242, update), ErrUsuarioNotFound)

	require.NoError(t, uc.Delete(ctx, id))
	assert.ErrorIs(t, uc.Delete(ctx, id), ErrUsuarioNotFound)
}
