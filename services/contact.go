package services

import (
	"fmt"

	"github.com/authorpages/author-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Subject     string `json:"subject" validate:"required,min=5"`
	Message     string `json:"message" validate:"required,min=10"`
	InquiryType string `json:"inquiryType" validate:"required,oneof=general collaboration speaking media"`
}

// ContactService relays contact-form submissions to the site owner's inbox.
type ContactService struct {
	logger    zerolog.Logger
	mailer    *Mailer
	recipient string
}

func NewContactService(mailer *Mailer, recipient string) *ContactService {
	return &ContactService{
		logger:    log.With().Str("serviceName", "contactService").Logger(),
		mailer:    mailer,
		recipient: recipient,
	}
}

// Relay forwards msg by email. Validation has already happened at the API
// boundary; this only refuses to run without a configured recipient.
func (s *ContactService) Relay(msg ContactMessage) error {
	if s.recipient == "" {
		return errs.NewInternalError("contact recipient is not configured")
	}

	subject := fmt.Sprintf("[%s] %s", msg.InquiryType, msg.Subject)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)

	if err := s.mailer.Send(subject, body, []string{s.recipient}); err != nil {
		s.logger.Error().Err(err).Msg("Failed to relay contact message")
		return errs.NewInternalError("failed to deliver contact message")
	}

	s.logger.Info().Str("inquiryType", msg.InquiryType).Msg("Contact message relayed")
	return nil
}
