package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
)

type ContactMessageStore interface {
	FindAll(ctx context.Context) ([]*models.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*models.ContactMessage, error)
	Add(ctx context.Context, m *models.ContactMessage) (string, error)
	Merge(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactMessageService struct {
	store  ContactMessageStore
	logger zerolog.Logger
}

func NewContactMessageService(store ContactMessageStore) ContactMessageService {
	return ContactMessageService{
		store:  store,
		logger: log.With().Str("serviceName", "contactMessageService").Logger(),
	}
}

func (s ContactMessageService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	messages, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list", "contact messages", err)
	}
	return messages, nil
}

func (s ContactMessageService) Create(ctx context.Context, in ContactMessageInput) (*models.ContactMessage, error) {
	switch {
	case in.Name == "":
		return nil, errs.NewMissingFieldError("name")
	case in.Email == "":
		return nil, errs.NewMissingFieldError("email")
	case in.Subject == "":
		return nil, errs.NewMissingFieldError("subject")
	case in.Message == "":
		return nil, errs.NewMissingFieldError("message")
	}
	if !ValidateEmail(in.Email) {
		return nil, errs.NewValidationError("email", "not a valid email address")
	}

	now := time.Now().UTC()
	message := &models.ContactMessage{
		Name:      Sanitize(in.Name),
		Email:     in.Email,
		Subject:   Sanitize(in.Subject),
		Message:   Sanitize(in.Message),
		Status:    models.MessageUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.store.Add(ctx, message)
	if err != nil {
		return nil, errs.NewStoreError("create", "contact message", err)
	}
	message.ID = id
	return message, nil
}

// MarkRead flips an unread message to read
func (s ContactMessageService) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "contact message", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("contact message")
	}

	fields := map[string]any{
		"status":    models.MessageRead,
		"updatedAt": time.Now().UTC(),
	}
	if err := s.store.Merge(ctx, id, fields); err != nil {
		return nil, errs.NewStoreError("update", "contact message", err)
	}

	updated, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "contact message", err)
	}
	return updated, nil
}

func (s ContactMessageService) Delete(ctx context.Context, id string) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return errs.NewStoreError("find", "contact message", err)
	}
	if existing == nil {
		return errs.NewNotFound("contact message")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return errs.NewStoreError("delete", "contact message", err)
	}
	return nil
}
