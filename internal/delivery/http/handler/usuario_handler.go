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

	"github.com/gorilla/mux"
)

type UsuarioHandler struct {
	usuarioUsecase usecase.UsuarioUsecase
	validator      *validator.CustomValidator
}

func NewUsuarioHandler(usuarioUsecase usecase.UsuarioUsecase, validator *validator.CustomValidator) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioUsecase: usuarioUsecase,
		validator:      validator,
	}
}

func (h *UsuarioHandler) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.usuarioUsecase.List(r.Context())
	if err != nil {
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, usuarios)
}

func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.usuarioUsecase.Create(r.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrUsuarioTelefonoExists) {
			response.Text(w, http.StatusBadRequest, "Algún dato único ya está registrado (Nombre, Correo, DPI o Teléfono).")
			return
		}
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Text(w, http.StatusCreated, "Usuario creado correctamente")
}

func (h *UsuarioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Text(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req dto.UpdateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.usuarioUsecase.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, usecase.ErrUsuarioNotFound) {
			response.Text(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Text(w, http.StatusOK, "Usuario actualizado correctamente")
}

func (h *UsuarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Text(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.usuarioUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUsuarioNotFound) {
			response.Text(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Text(w, http.StatusOK, "Usuario eliminado correctamente")
}

// pathID reads the {id} route variable shared by all entity routes.
func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
