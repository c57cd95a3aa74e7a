package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/usecase"
	"mapeo-backend/pkg/response"
	"mapeo-backend/pkg/validator"
)

const sessionCookieName = "token"

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login checks the credentials and, on success, sets the session cookie whose
// value is the user identifier.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Usuario o contraseña incorrectos")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Error en login: "+err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    strconv.FormatUint(uint64(user.ID), 10),
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	response.JSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login exitoso",
		User:    user,
	})
}

// CheckSession reports whether the cookie still resolves to a user. Absence
// of the cookie is a normal "not logged in", not an error.
func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		token = cookie.Value
	}

	session, err := h.authUsecase.CheckSession(r.Context(), token)
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, dto.SessionResponse{LoggedIn: false})
		return
	}

	response.JSON(w, http.StatusOK, session)
}

// Logout clears the cookie unconditionally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.authUsecase.Logout(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	response.JSON(w, http.StatusOK, dto.MessageResponse{Message: "Sesión cerrada correctamente"})
}
