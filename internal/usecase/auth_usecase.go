package usecase

import (
	"context"
	"errors"
	"strconv"

	"mapeo-backend/internal/converter"
	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/domain/entity"
	"mapeo-backend/internal/domain/repository"
	"mapeo-backend/internal/infrastructure/database"
	"mapeo-backend/internal/service"
	"mapeo-backend/pkg/credentials"

	"github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UsuarioSesion, error)
	CheckSession(ctx context.Context, token string) (*dto.SessionResponse, error)
	Logout(ctx context.Context, token string)
}

type authUsecase struct {
	provider     *database.Provider
	log          *logrus.Logger
	usuarioRepo  repository.UsuarioRepository
	verifier     credentials.Verifier
	sessions     service.SessionRegistry
	auditService service.AuditService
}

func NewAuthUsecase(
	provider *database.Provider,
	log *logrus.Logger,
	usuarioRepo repository.UsuarioRepository,
	verifier credentials.Verifier,
	sessions service.SessionRegistry,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		provider:     provider,
		log:          log,
		usuarioRepo:  usuarioRepo,
		verifier:     verifier,
		sessions:     sessions,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UsuarioSesion, error) {
	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}
	db = db.WithContext(ctx)

	usuario, err := u.usuarioRepo.FindByNombre(db, req.Nombre)
	if err != nil {
		u.log.Warnf("Failed to find usuario by nombre: %+v", err)
		return nil, err
	}
	if usuario == nil || !u.verifier.Verify(usuario, req.Contrasena) {
		return nil, ErrInvalidCredentials
	}

	u.sessions.Put(ctx, usuario.ID)

	// Attribution only; a failed audit row must not fail the login.
	if err := u.auditService.LogAuth(db, &usuario.ID, entity.AuditActionUserLogin); err != nil {
		u.log.Warnf("Login audit entry failed for usuario %d", usuario.ID)
	}

	return converter.UsuarioToSesion(usuario), nil
}

// CheckSession resolves the cookie value back to a usuario row. A missing or
// unparseable token and an unmatched row are both "not logged in", never an
// error.
func (u *authUsecase) CheckSession(ctx context.Context, token string) (*dto.SessionResponse, error) {
	if token == "" {
		return &dto.SessionResponse{LoggedIn: false}, nil
	}

	id, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return &dto.SessionResponse{LoggedIn: false}, nil
	}

	db, err := u.provider.Get()
	if err != nil {
		return nil, err
	}

	usuario, err := u.usuarioRepo.FindByID(db.WithContext(ctx), uint(id))
	if err != nil {
		u.log.Warnf("Failed to find usuario %d for session check: %+v", id, err)
		return nil, err
	}
	if usuario == nil {
		return &dto.SessionResponse{LoggedIn: false}, nil
	}

	u.sessions.Refresh(ctx, usuario.ID)

	return &dto.SessionResponse{
		LoggedIn: true,
		User:     converter.UsuarioToSesion(usuario),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if id, err := strconv.ParseUint(token, 10, 64); err == nil {
		u.sessions.Drop(ctx, uint(id))
	}
}
