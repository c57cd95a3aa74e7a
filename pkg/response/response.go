package response

import (
	"encoding/json"
	"net/http"
)

// Sibling endpoints mix plain-text and JSON bodies; both shapes are kept for
// wire compatibility with the deployed frontend. Handlers pick Text or JSON
// per endpoint, everything else goes through these helpers.

// JSON writes v as the whole response body (lists are bare arrays, not wrapped).
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// Text writes a plain-text body, matching the legacy CRUD confirmations.
func Text(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write([]byte(message))
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Error writes a JSON error envelope for the JSON-shaped endpoints.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, errorBody{Error: message})
}

// ValidationError reports per-field failures before any database work happens.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, errorBody{Error: "Datos inválidos", Fields: fields})
}
