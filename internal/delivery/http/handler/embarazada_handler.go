package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mapeo-backend/internal/delivery/dto"
	"mapeo-backend/internal/usecase"
	"mapeo-backend/pkg/response"
	"mapeo-backend/pkg/validator"
)

type EmbarazadaHandler struct {
	embarazadaUsecase usecase.EmbarazadaUsecase
	validator         *validator.CustomValidator
}

func NewEmbarazadaHandler(embarazadaUsecase usecase.EmbarazadaUsecase, validator *validator.CustomValidator) *EmbarazadaHandler {
	return &EmbarazadaHandler{
		embarazadaUsecase: embarazadaUsecase,
		validator:         validator,
	}
}

func (h *EmbarazadaHandler) List(w http.ResponseWriter, r *http.Request) {
	embarazadas, err := h.embarazadaUsecase.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, embarazadas)
}

func (h *EmbarazadaHandler) ListConDireccion(w http.ResponseWriter, r *http.Request) {
	rows, err := h.embarazadaUsecase.ListConDireccion(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, rows)
}

// Register is the transactional registration endpoint: validation first, then
// the atomic address+patient insert. On success it returns both generated ids.
func (h *EmbarazadaHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterEmbarazadaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.embarazadaUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDPIExists),
			errors.Is(err, usecase.ErrTelefonoExists),
			errors.Is(err, usecase.ErrViviendaExists):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

func (h *EmbarazadaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Text(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req dto.UpdateEmbarazadaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.embarazadaUsecase.Update(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDPIExists), errors.Is(err, usecase.ErrTelefonoExists):
			response.Text(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrEmbarazadaNotFound):
			response.Text(w, http.StatusNotFound, "Embarazada no encontrada")
		default:
			response.Text(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Text(w, http.StatusOK, "Embarazada actualizada correctamente")
}

func (h *EmbarazadaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Text(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.embarazadaUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrEmbarazadaNotFound) {
			response.Text(w, http.StatusNotFound, "Embarazada no encontrada")
			return
		}
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Text(w, http.StatusOK, "Embarazada eliminada correctamente")
}
