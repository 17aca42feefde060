package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
)

type ApplicationStore interface {
	FindAll(ctx context.Context) ([]*models.Application, error)
	FindByID(ctx context.Context, id string) (*models.Application, error)
	Add(ctx context.Context, a *models.Application) (string, error)
	Merge(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type ApplicationInput struct {
	PersonalInfo  models.PersonalInfo `json:"personalInfo"`
	QuizResults   *models.QuizResults `json:"quizResults"`
	InterviewSlot string              `json:"interviewSlot"`
}

func validApplicationStatus(s string) bool {
	switch s {
	case models.ApplicationPending, models.ApplicationReviewed, models.ApplicationAccepted, models.ApplicationRejected:
		return true
	}
	return false
}

type ApplicationService struct {
	store  ApplicationStore
	logger zerolog.Logger
}

func NewApplicationService(store ApplicationStore) ApplicationService {
	return ApplicationService{
		store:  store,
		logger: log.With().Str("serviceName", "applicationService").Logger(),
	}
}

func (s ApplicationService) List(ctx context.Context) ([]*models.Application, error) {
	applications, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list", "applications", err)
	}
	return applications, nil
}

func (s ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	application, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "application", err)
	}
	if application == nil {
		return nil, errs.NewNotFound("application")
	}
	return application, nil
}

func (s ApplicationService) Create(ctx context.Context, in ApplicationInput) (*models.Application, error) {
	p := in.PersonalInfo
	switch {
	case p.FullName == "":
		return nil, errs.NewMissingFieldError("personalInfo.fullName")
	case p.Email == "":
		return nil, errs.NewMissingFieldError("personalInfo.email")
	case p.Phone == "":
		return nil, errs.NewMissingFieldError("personalInfo.phone")
	case p.College == "":
		return nil, errs.NewMissingFieldError("personalInfo.college")
	case p.Branch == "":
		return nil, errs.NewMissingFieldError("personalInfo.branch")
	case p.Year == "":
		return nil, errs.NewMissingFieldError("personalInfo.year")
	case p.PreferredRole == "":
		return nil, errs.NewMissingFieldError("personalInfo.preferredRole")
	case p.Motivation == "":
		return nil, errs.NewMissingFieldError("personalInfo.motivation")
	}
	if !ValidateEmail(p.Email) {
		return nil, errs.NewValidationError("personalInfo.email", "not a valid email address")
	}

	now := time.Now().UTC()
	application := &models.Application{
		PersonalInfo: models.PersonalInfo{
			FullName:      Sanitize(p.FullName),
			Email:         p.Email,
			Phone:         Sanitize(p.Phone),
			College:       Sanitize(p.College),
			Branch:        Sanitize(p.Branch),
			Year:          Sanitize(p.Year),
			PreferredRole: Sanitize(p.PreferredRole),
			Experience:    Sanitize(p.Experience),
			Motivation:    Sanitize(p.Motivation),
		},
		QuizResults:   in.QuizResults,
		InterviewSlot: Sanitize(in.InterviewSlot),
		Status:        models.ApplicationPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.store.Add(ctx, application)
	if err != nil {
		return nil, errs.NewStoreError("create", "application", err)
	}
	application.ID = id
	return application, nil
}

// UpdateStatus is the only mutation applications allow after creation
func (s ApplicationService) UpdateStatus(ctx context.Context, id, status string) (*models.Application, error) {
	if !validApplicationStatus(status) {
		return nil, errs.NewValidationError("status", "must be pending, reviewed, accepted or rejected")
	}
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "application", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("application")
	}

	fields := map[string]any{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}
	if err := s.store.Merge(ctx, id, fields); err != nil {
		return nil, errs.NewStoreError("update", "application", err)
	}

	updated, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "application", err)
	}
	return updated, nil
}

func (s ApplicationService) Delete(ctx context.Context, id string) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return errs.NewStoreError("find", "application", err)
	}
	if existing == nil {
		return errs.NewNotFound("application")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return errs.NewStoreError("delete", "application", err)
	}
	return nil
}
