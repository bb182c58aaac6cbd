// Package contact accepts contact-form submissions.
package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// Service validates, stores and relays contact submissions.
type Service struct {
	Repository ports.ContactRepository
	Mailer     ports.Mailer
	// Recipient is the owner's inbox for relayed messages.
	Recipient string
	// Compose builds the relayed message. Required when Mailer is enabled.
	Compose func(to string, req domain.ContactRequest) domain.MailMessage
	Logger  ports.Logger
}

// Submit stores a valid request. Relay failures are logged, never returned.
func (s *Service) Submit(ctx context.Context, req domain.ContactRequest) (domain.ContactReceipt, error) {
	if s.Repository == nil {
		return domain.ContactReceipt{}, errors.New("contact.Service dependencies not satisfied")
	}

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return domain.ContactReceipt{}, err
	}

	saved, err := s.Repository.SaveContact(ctx, req)
	if err != nil {
		return domain.ContactReceipt{}, fmt.Errorf("save contact: %w", err)
	}

	s.relay(ctx, req)

	s.info("contact received", map[string]interface{}{"id": saved.ID})
	return domain.ContactReceipt{Message: domain.ContactSuccessReply, ID: saved.ID}, nil
}

// List returns stored submissions, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Contact, error) {
	if limit <= 0 {
		limit = domain.DefaultContactListLimit
	}
	return s.Repository.Contacts(ctx, limit)
}

func (s *Service) relay(ctx context.Context, req domain.ContactRequest) {
	if s.Mailer == nil || !s.Mailer.Enabled() || s.Recipient == "" || s.Compose == nil {
		return
	}
	if err := s.Mailer.Send(ctx, s.Compose(s.Recipient, req)); err != nil && s.Logger != nil {
		s.Logger.Error("contact relay failed", err, map[string]interface{}{"recipient": s.Recipient})
	}
}

func (s *Service) info(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Info(msg, fields)
	}
}
