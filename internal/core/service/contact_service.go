package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

// Mailer sends operator notifications. Backed by SendGrid in production.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// ContactService persists contact-form submissions and notifies operators.
type ContactService struct {
	repo   ports.ContactRepository
	mailer Mailer
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, mailer Mailer, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, mailer: mailer, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, input ports.SubmitContactInput) (*domain.Contact, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, domain.ErrValidation
	}

	contact, err := s.repo.Insert(ctx, &domain.Contact{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	// Notification failure must not fail the submission.
	if s.mailer != nil {
		if err := s.mailer.Send(ctx, "New contact form submission from "+contact.Name, contact.Message); err != nil {
			s.logger.Warn().Err(err).Str("contact_id", contact.ID).Msg("failed to send contact notification")
		}
	}

	s.logger.Info().Str("contact_id", contact.ID).Msg("contact submission stored")
	return contact, nil
}

func (s *ContactService) List(ctx context.Context, page, limit int) (*ports.ContactPage, error) {
	page, limit = normalizePage(page, limit)

	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ContactPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
