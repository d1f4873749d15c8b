package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"boulangerie/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeStoreError maps a store failure onto an HTTP status by its kind and
// writes it out.
func writeStoreError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status := http.StatusInternalServerError
	switch model.KindOf(err) {
	case model.KindRejected:
		status = http.StatusUnprocessableEntity
		if errors.Is(err, model.ErrInvalidCredentials) {
			status = http.StatusUnauthorized
		}
	case model.KindTransient:
		status = http.StatusBadGateway
	case model.KindConfig:
		status = http.StatusServiceUnavailable
	case model.KindNotImplemented:
		status = http.StatusNotImplemented
	}
	writeError(w, status, err.Error(), logger)
}

// localeFrom resolves the request locale from the "locale" query parameter,
// defaulting when absent or unknown.
func localeFrom(r *http.Request) model.Locale {
	return model.ParseLocale(r.URL.Query().Get("locale"))
}

// decodeJSON decodes a request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
