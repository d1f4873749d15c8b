// Package mailer delivers the contact-form email: server-side validation,
// HTML body built from an embedded template, delivery through SendGrid.
package mailer

import (
	"context"
	"regexp"
	"strings"

	"boulangerie/internal/model"
)

// ContactMessage is the structured contact-form payload.
type ContactMessage struct {
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone,omitempty"`
	Subject string       `json:"subject,omitempty"`
	Message string       `json:"message"`
	Locale  model.Locale `json:"locale,omitempty"`
}

// Sender delivers a validated contact message to the shop owner.
type Sender interface {
	Send(ctx context.Context, msg ContactMessage) error
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the form server-side and returns per-field messages; an
// empty map means the message is valid.
func (m ContactMessage) Validate() map[string]string {
	errors := make(map[string]string)

	name := strings.TrimSpace(m.Name)
	switch {
	case name == "":
		errors["name"] = "name is required"
	case len(name) < 2:
		errors["name"] = "name is too short"
	case len(name) > 80:
		errors["name"] = "name is too long"
	}

	email := strings.TrimSpace(m.Email)
	switch {
	case email == "":
		errors["email"] = "email is required"
	case !emailPattern.MatchString(email):
		errors["email"] = "email is not valid"
	}

	message := strings.TrimSpace(m.Message)
	switch {
	case message == "":
		errors["message"] = "message is required"
	case len(message) < 10:
		errors["message"] = "message is too short"
	case len(message) > 4000:
		errors["message"] = "message is too long"
	}

	if phone := strings.TrimSpace(m.Phone); len(phone) > 20 {
		errors["phone"] = "phone is too long"
	}
	if subject := strings.TrimSpace(m.Subject); len(subject) > 120 {
		errors["subject"] = "subject is too long"
	}

	return errors
}
