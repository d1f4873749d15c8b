package handler

import (
	"net/http"

	"boulangerie/internal/mailer"

	"github.com/rs/zerolog"
)

// ContactHandler handles the contact form submission.
type ContactHandler struct {
	sender mailer.Sender
	logger zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(sender mailer.Sender, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		sender: sender,
		logger: logger.With().Str("handler", "contact").Logger(),
	}
}

// Send handles POST /api/send-email: validates the form and delivers the
// owner notification.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var msg mailer.ContactMessage
	if err := decodeJSON(r, &msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	if details := msg.Validate(); len(details) > 0 {
		h.logger.Warn().Int("fields", len(details)).Msg("contact form validation failed")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: details})
		return
	}

	if err := h.sender.Send(r.Context(), msg); err != nil {
		writeStoreError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
