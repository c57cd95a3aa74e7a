package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/usecase"
	"mapeo-backend/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase answers with canned results so the handler's HTTP behavior
// can be checked in isolation.
type stubAuthUsecase struct {
	loginUser    *dto.UsuarioSesion
	loginErr     error
	session      *dto.SessionResponse
	loggedOut    []string
	checkedToken string
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UsuarioSesion, error) {
	return s.loginUser, s.loginErr
}

func (s *stubAuthUsecase) CheckSession(ctx context.Context, token string) (*dto.SessionResponse, error) {
	s.checkedToken = token
	return s.session, nil
}

func (s *stubAuthUsecase) Logout(ctx context.Context, token string) {
	s.loggedOut = append(s.loggedOut, token)
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	stub := &stubAuthUsecase{loginUser: &dto.UsuarioSesion{ID: 7, Nombre: "comadrona", Rol: "personal"}}
	h := NewAuthHandler(stub, validator.NewValidator())

	body := `{"Nombre":"comadrona","Contraseña":"secreta123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, "token")
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.Equal(t, "7", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)

	var resp dto.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Login exitoso", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, uint(7), resp.User.ID)
}

func TestLoginRejections(t *testing.T) {
	t.Run("wrong credentials get 401 and no cookie", func(t *testing.T) {
		stub := &stubAuthUsecase{loginErr: usecase.ErrInvalidCredentials}
		h := NewAuthHandler(stub, validator.NewValidator())

		body := `{"Nombre":"comadrona","Contraseña":"mala"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, findCookie(t, rec, "token"))
		assert.Contains(t, rec.Body.String(), "Usuario o contraseña incorrectos")
	})

	t.Run("malformed body gets 400", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthUsecase{}, validator.NewValidator())

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{no es json"))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthUsecase{}, validator.NewValidator())

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"Nombre":"comadrona"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, findCookie(t, rec, "token"))
	})
}

func TestCheckSessionReadsCookie(t *testing.T) {
	stub := &stubAuthUsecase{session: &dto.SessionResponse{
		LoggedIn: true,
		User:     &dto.UsuarioSesion{ID: 7, Nombre: "comadrona", Rol: "personal"},
	}}
	h := NewAuthHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/check-session", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "7"})
	rec := httptest.NewRecorder()
	h.CheckSession(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7", stub.checkedToken)

	var resp dto.SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.LoggedIn)
}

func TestCheckSessionWithoutCookie(t *testing.T) {
	stub := &stubAuthUsecase{session: &dto.SessionResponse{LoggedIn: false}}
	h := NewAuthHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/check-session", nil)
	rec := httptest.NewRecorder()
	h.CheckSession(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, stub.checkedToken)

	var resp dto.SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.LoggedIn)
	assert.Nil(t, resp.User)
}

func TestLogoutClearsCookie(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := NewAuthHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "7"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"7"}, stub.loggedOut)

	cookie := findCookie(t, rec, "token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
