package credentials

import (
	"crypto/subtle"

	"mapeo-backend/internal/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a presented credential against what is stored for the user.
// The login workflow only depends on this interface, so the storage scheme can
// change without touching its control flow.
type Verifier interface {
	Verify(usuario *entity.Usuario, presented string) bool
}

// PlainVerifier compares the stored credential value directly. This is the
// legacy contract; keep it behind the interface, not as a recommendation.
type PlainVerifier struct{}

func (PlainVerifier) Verify(usuario *entity.Usuario, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(usuario.Contrasena), []byte(presented)) == 1
}

// BcryptVerifier expects the stored credential to be a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(usuario *entity.Usuario, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(presented)) == nil
}

// ForScheme returns the verifier for the configured AUTH_SCHEME,
// defaulting to plain comparison for any unknown value.
func ForScheme(scheme string) Verifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
