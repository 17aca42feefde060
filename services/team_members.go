package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
	"github.com/vedanta-tech/team-site-backend/storage"
)

// TeamMemberStore is the slice of the document store this service needs
type TeamMemberStore interface {
	FindAll(ctx context.Context) ([]*models.TeamMember, error)
	FindByID(ctx context.Context, id string) (*models.TeamMember, error)
	Add(ctx context.Context, m *models.TeamMember) (string, error)
	Merge(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type TeamMemberInput struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Email       string   `json:"email"`
	LinkedIn    string   `json:"linkedin"`
	GitHub      string   `json:"github"`
}

// TeamMemberUpdate carries merge semantics: nil means "leave untouched"
type TeamMemberUpdate struct {
	Name        *string  `json:"name"`
	Role        *string  `json:"role"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	Email       *string  `json:"email"`
	LinkedIn    *string  `json:"linkedin"`
	GitHub      *string  `json:"github"`
}

type TeamMemberService struct {
	store  TeamMemberStore
	assets AssetStore
	logger zerolog.Logger
}

func NewTeamMemberService(store TeamMemberStore, assets AssetStore) TeamMemberService {
	return TeamMemberService{
		store:  store,
		assets: assets,
		logger: log.With().Str("serviceName", "teamMemberService").Logger(),
	}
}

func (s TeamMemberService) List(ctx context.Context) ([]*models.TeamMember, error) {
	members, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list", "team members", err)
	}
	return members, nil
}

func (s TeamMemberService) Get(ctx context.Context, id string) (*models.TeamMember, error) {
	member, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "team member", err)
	}
	if member == nil {
		return nil, errs.NewNotFound("team member")
	}
	return member, nil
}

func (s TeamMemberService) Create(ctx context.Context, in TeamMemberInput, image *Upload) (*models.TeamMember, error) {
	if in.Name == "" {
		return nil, errs.NewMissingFieldError("name")
	}
	if in.Role == "" {
		return nil, errs.NewMissingFieldError("role")
	}
	if in.Email != "" && !ValidateEmail(in.Email) {
		return nil, errs.NewValidationError("email", "not a valid email address")
	}

	now := time.Now().UTC()
	member := &models.TeamMember{
		Name:        Sanitize(in.Name),
		Role:        Sanitize(in.Role),
		Description: Sanitize(in.Description),
		Skills:      SanitizeAll(in.Skills),
		Email:       in.Email,
		LinkedIn:    in.LinkedIn,
		GitHub:      in.GitHub,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var uploaded []string
	if image != nil {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.TeamMembersFolder, []Upload{*image})
		if err != nil {
			return nil, err
		}
		uploaded = urls
		member.ImageURL = urls[0]
	}

	id, err := s.store.Add(ctx, member)
	if err != nil {
		deleteAssets(ctx, s.assets, s.logger, uploaded)
		return nil, errs.NewStoreError("create", "team member", err)
	}
	member.ID = id
	return member, nil
}

func (s TeamMemberService) Update(ctx context.Context, id string, upd TeamMemberUpdate, image *Upload) (*models.TeamMember, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "team member", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("team member")
	}

	fields := map[string]any{}
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, errs.NewValidationError("name", "must not be empty")
		}
		fields["name"] = Sanitize(*upd.Name)
	}
	if upd.Role != nil {
		fields["role"] = Sanitize(*upd.Role)
	}
	if upd.Description != nil {
		fields["description"] = Sanitize(*upd.Description)
	}
	if upd.Skills != nil {
		fields["skills"] = SanitizeAll(upd.Skills)
	}
	if upd.Email != nil {
		if *upd.Email != "" && !ValidateEmail(*upd.Email) {
			return nil, errs.NewValidationError("email", "not a valid email address")
		}
		fields["email"] = *upd.Email
	}
	if upd.LinkedIn != nil {
		fields["linkedin"] = *upd.LinkedIn
	}
	if upd.GitHub != nil {
		fields["github"] = *upd.GitHub
	}

	if image != nil {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.TeamMembersFolder, []Upload{*image})
		if err != nil {
			return nil, err
		}
		fields["imageUrl"] = urls[0]
	}
	fields["updatedAt"] = time.Now().UTC()

	if err := s.store.Merge(ctx, id, fields); err != nil {
		return nil, errs.NewStoreError("update", "team member", err)
	}

	updated, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "team member", err)
	}
	return updated, nil
}

// Delete removes the member's image first, best-effort, then the document
func (s TeamMemberService) Delete(ctx context.Context, id string) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return errs.NewStoreError("find", "team member", err)
	}
	if existing == nil {
		return errs.NewNotFound("team member")
	}
	if existing.ImageURL != "" {
		deleteAssets(ctx, s.assets, s.logger, []string{existing.ImageURL})
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return errs.NewStoreError("delete", "team member", err)
	}
	return nil
}
