package handler

import (
	"encoding/json"
	"net/http"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Response is already committed; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto the HTTP surface:
// validation failures are the client's fault, everything else is a
// store-level problem the client cannot correct.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	if model.IsDataValidation(err) {
		writeError(w, http.StatusBadRequest, err.Error(), logger)
		return
	}
	logger.Error().Err(err).Msg("store error")
	writeError(w, http.StatusInternalServerError, "internal server error", logger)
}

// decodeBody decodes a JSON request body into an untyped payload,
// keeping numbers as json.Number so decimal prices survive the
// boundary without floating-point drift.
func decodeBody(r *http.Request) (any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, model.NewDataValidationError("invalid product: body contained bad or no data: %v", err)
	}
	return payload, nil
}
