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

type RiesgoHandler struct {
	riesgoUsecase usecase.RiesgoUsecase
	validator     *validator.CustomValidator
}

func NewRiesgoHandler(riesgoUsecase usecase.RiesgoUsecase, validator *validator.CustomValidator) *RiesgoHandler {
	return &RiesgoHandler{
		riesgoUsecase: riesgoUsecase,
		validator:     validator,
	}
}

func (h *RiesgoHandler) List(w http.ResponseWriter, r *http.Request) {
	riesgos, err := h.riesgoUsecase.List(r.Context())
	if err != nil {
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, riesgos)
}

// Report returns the count of risk assessments grouped by level.
func (h *RiesgoHandler) Report(w http.ResponseWriter, r *http.Request) {
	conteos, err := h.riesgoUsecase.Report(r.Context())
	if err != nil {
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, conteos)
}

func (h *RiesgoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRiesgoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.riesgoUsecase.Create(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRiesgoEmbarazadaNotFound):
			response.Text(w, http.StatusBadRequest, "Error: La embarazada no existe")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Text(w, http.StatusBadRequest, err.Error())
		default:
			response.Text(w, http.StatusInternalServerError, "Error: "+err.Error())
		}
		return
	}

	response.Text(w, http.StatusCreated, "Riesgo registrado correctamente")
}

func (h *RiesgoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Text(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req dto.UpdateRiesgoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.riesgoUsecase.Update(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRiesgoNotFound):
			response.Text(w, http.StatusNotFound, "Riesgo no encontrado")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Text(w, http.StatusBadRequest, err.Error())
		default:
			response.Text(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Text(w, http.StatusOK, "Riesgo actualizado correctamente")
}
