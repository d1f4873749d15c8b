package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boulangerie/internal/mailer"
	"boulangerie/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSender records the last delivered message.
type stubSender struct {
	err  error
	last *mailer.ContactMessage
}

func (s *stubSender) Send(_ context.Context, msg mailer.ContactMessage) error {
	s.last = &msg
	return s.err
}

func TestContactHandler_Send(t *testing.T) {
	validBody := `{
		"name": "Maria Puig",
		"email": "maria@example.com",
		"message": "Voldria encarregar una coca per dissabte.",
		"locale": "ca"
	}`

	tests := []struct {
		name           string
		body           string
		sendErr        error
		expectedStatus int
		expectDelivery bool
	}{
		{
			name:           "Valid message delivered",
			body:           validBody,
			expectedStatus: http.StatusOK,
			expectDelivery: true,
		},
		{
			name:           "Validation failure returns field details",
			body:           `{"name": "M", "email": "bad", "message": "curt"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed body",
			body:           `{"name": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing mail configuration",
			body:           validBody,
			sendErr:        model.NewConfig("sendgrid api key is not set"),
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "Transient delivery failure",
			body:           validBody,
			sendErr:        model.NewTransient("sendgrid HTTP 502", nil),
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &stubSender{err: tt.sendErr}
			h := NewContactHandler(sender, zerolog.Nop())

			rec := httptest.NewRecorder()
			h.Send(rec, httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectDelivery {
				require.NotNil(t, sender.last)
				assert.Equal(t, "Maria Puig", sender.last.Name)
			}

			if tt.expectedStatus == http.StatusBadRequest && strings.Contains(tt.body, "curt") {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Contains(t, resp.Details, "name")
				assert.Contains(t, resp.Details, "email")
				assert.Contains(t, resp.Details, "message")
			}
		})
	}
}

func TestContactHandler_MethodNotAllowed(t *testing.T) {
	h := NewContactHandler(&stubSender{}, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Send(rec, httptest.NewRequest(http.MethodGet, "/api/send-email", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
