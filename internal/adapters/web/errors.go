package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"quitacao-report/internal/app"
	"quitacao-report/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps service errors onto the API taxonomy: invalid input
// is 400, an unknown sale is 404 (informational, not a failure), everything
// else is a data-access failure.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, app.ErrValidation):
		writeError(w, r, err.Error(), "VALIDATION_ERROR", http.StatusBadRequest)
	case errors.Is(err, core.ErrSaleNotFound):
		writeError(w, r, "nenhum detalhe de venda encontrado", "NOT_FOUND", http.StatusNotFound)
	default:
		writeError(w, r, "erro no banco de dados: "+err.Error(), "DATA_ACCESS_ERROR", http.StatusInternalServerError)
	}
}
