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

type SeguimientoHandler struct {
	seguimientoUsecase usecase.SeguimientoUsecase
	validator          *validator.CustomValidator
}

func NewSeguimientoHandler(seguimientoUsecase usecase.SeguimientoUsecase, validator *validator.CustomValidator) *SeguimientoHandler {
	return &SeguimientoHandler{
		seguimientoUsecase: seguimientoUsecase,
		validator:          validator,
	}
}

func (h *SeguimientoHandler) List(w http.ResponseWriter, r *http.Request) {
	seguimientos, err := h.seguimientoUsecase.List(r.Context())
	if err != nil {
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, seguimientos)
}

func (h *SeguimientoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSeguimientoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.seguimientoUsecase.Create(r.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrInvalidDateFormat) {
			response.Text(w, http.StatusBadRequest, err.Error())
			return
		}
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Text(w, http.StatusCreated, "Seguimiento registrado correctamente")
}

func (h *SeguimientoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Text(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req dto.UpdateSeguimientoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.seguimientoUsecase.Update(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSeguimientoNotFound):
			response.Text(w, http.StatusNotFound, "Seguimiento no encontrado")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Text(w, http.StatusBadRequest, err.Error())
		default:
			response.Text(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Text(w, http.StatusOK, "Seguimiento actualizado correctamente")
}
