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

type DireccionHandler struct {
	direccionUsecase usecase.DireccionUsecase
	validator        *validator.CustomValidator
}

func NewDireccionHandler(direccionUsecase usecase.DireccionUsecase, validator *validator.CustomValidator) *DireccionHandler {
	return &DireccionHandler{
		direccionUsecase: direccionUsecase,
		validator:        validator,
	}
}

func (h *DireccionHandler) List(w http.ResponseWriter, r *http.Request) {
	direcciones, err := h.direccionUsecase.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, direcciones)
}

func (h *DireccionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDireccionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.direccionUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

func (h *DireccionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Text(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.direccionUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrDireccionNotFound) {
			response.Text(w, http.StatusNotFound, "Dirección no encontrada")
			return
		}
		response.Text(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Text(w, http.StatusOK, "Dirección eliminada correctamente")
}
