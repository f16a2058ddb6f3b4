package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

type stubContactRepo struct {
	contacts []*domain.Contact
	nextID   int
}

func (r *stubContactRepo) Insert(_ context.Context, contact *domain.Contact) (*domain.Contact, error) {
	r.nextID++
	copy := *contact
	copy.ID = fmt.Sprintf("contact_%d", r.nextID)
	r.contacts = append(r.contacts, &copy)
	clone := copy
	return &clone, nil
}

func (r *stubContactRepo) List(_ context.Context, page, limit int) ([]*domain.Contact, int64, error) {
	out := make([]*domain.Contact, 0, len(r.contacts))
	for i := len(r.contacts) - 1; i >= 0; i-- {
		out = append(out, r.contacts[i])
	}
	return out, int64(len(r.contacts)), nil
}

type stubMailer struct {
	sent []string
	err  error
}

func (m *stubMailer) Send(_ context.Context, subject, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, subject)
	return nil
}

func TestContactService_Submit(t *testing.T) {
	repo := &stubContactRepo{}
	mailer := &stubMailer{}
	svc := NewContactService(repo, mailer, zerolog.Nop())

	contact, err := svc.Submit(context.Background(), ports.SubmitContactInput{
		Name:    "Vera",
		Email:   "vera@example.com",
		Message: "Is pickup available?",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if contact.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(mailer.sent))
	}
}

func TestContactService_Submit_Validation(t *testing.T) {
	svc := NewContactService(&stubContactRepo{}, nil, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), ports.SubmitContactInput{Name: "Vera"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestContactService_Submit_MailFailureIsNotFatal(t *testing.T) {
	repo := &stubContactRepo{}
	mailer := &stubMailer{err: errors.New("sendgrid down")}
	svc := NewContactService(repo, mailer, zerolog.Nop())

	contact, err := svc.Submit(context.Background(), ports.SubmitContactInput{
		Name:    "Wes",
		Email:   "wes@example.com",
		Message: "hello",
	})
	if err != nil {
		t.Fatalf("submission must survive mail failure: %v", err)
	}
	if contact == nil || len(repo.contacts) != 1 {
		t.Fatalf("submission not stored")
	}
}

func TestContactService_List(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, nil, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), ports.SubmitContactInput{
			Name:    "X",
			Email:   "x@example.com",
			Message: fmt.Sprintf("message %d", i),
		}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	page, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("expected 3 submissions, got %d", page.Total)
	}
	if page.Items[0].Message != "message 2" {
		t.Fatalf("expected newest first, got %q", page.Items[0].Message)
	}
}
