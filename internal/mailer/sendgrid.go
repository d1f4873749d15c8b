package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"boulangerie/internal/model"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Config holds transactional-mail settings. Absence is not checked until a
// send is attempted.
type Config struct {
	APIKey     string
	Sender     string
	OwnerEmail string
	ShopName   string
}

// SendGridSender implements Sender over the SendGrid v3 API.
type SendGridSender struct {
	cfg    Config
	logger zerolog.Logger
}

// NewSendGridSender creates the SendGrid-backed sender.
func NewSendGridSender(cfg Config, logger zerolog.Logger) *SendGridSender {
	if cfg.ShopName == "" {
		cfg.ShopName = "Boulangerie Demo"
	}
	return &SendGridSender{
		cfg:    cfg,
		logger: logger.With().Str("component", "mailer").Logger(),
	}
}

func (s *SendGridSender) configured() error {
	if s.cfg.APIKey == "" {
		return model.NewConfig("sendgrid api key is not set")
	}
	if s.cfg.Sender == "" {
		return model.NewConfig("mail sender address is not set")
	}
	if s.cfg.OwnerEmail == "" {
		return model.NewConfig("contact owner address is not set")
	}
	return nil
}

// Send delivers the owner notification for one contact message.
func (s *SendGridSender) Send(ctx context.Context, msg ContactMessage) error {
	if err := s.configured(); err != nil {
		return err
	}

	subject := "[" + s.cfg.ShopName + "] Nou missatge des del web"
	if trimmed := strings.TrimSpace(msg.Subject); trimmed != "" {
		subject = "[" + s.cfg.ShopName + "] " + trimmed
	}

	html := BuildContactEmailHTML(s.cfg.ShopName, msg, time.Now())
	plain := fmt.Sprintf("%s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)

	from := mail.NewEmail(s.cfg.ShopName, s.cfg.Sender)
	to := mail.NewEmail("", s.cfg.OwnerEmail)
	email := mail.NewSingleEmail(from, subject, to, plain, html)
	email.ReplyTo = mail.NewEmail(msg.Name, msg.Email)

	client := sendgrid.NewSendClient(s.cfg.APIKey)
	response, err := client.SendWithContext(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("sendgrid request failed")
		return model.NewTransient("failed to reach sendgrid", err)
	}

	switch {
	case response.StatusCode >= 500:
		s.logger.Error().Int("status", response.StatusCode).Msg("sendgrid server error")
		return model.NewTransient(fmt.Sprintf("sendgrid HTTP %d", response.StatusCode), nil)
	case response.StatusCode >= 400:
		s.logger.Error().
			Int("status", response.StatusCode).
			Str("body", response.Body).
			Msg("sendgrid rejected the message")
		return model.NewRejected(fmt.Sprintf("sendgrid rejected the message (HTTP %d)", response.StatusCode))
	}

	s.logger.Info().
		Int("status", response.StatusCode).
		Str("subject", subject).
		Msg("contact email sent")
	return nil
}
