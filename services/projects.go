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

type ProjectStore interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
	FindByID(ctx context.Context, id string) (*models.Project, error)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	Add(ctx context.Context, p *models.Project) (string, error)
	Merge(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type ProjectInput struct {
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Description    string     `json:"description"`
	Content        string     `json:"content"`
	Category       string     `json:"category"`
	Status         string     `json:"status"`
	Technologies   []string   `json:"technologies"`
	TeamMembers    []string   `json:"teamMembers"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	GitHubURL      string     `json:"githubUrl"`
	LiveURL        string     `json:"liveUrl"`
	Featured       bool       `json:"featured"`
	SEOTitle       string     `json:"seoTitle"`
	SEODescription string     `json:"seoDescription"`
}

type ProjectUpdate struct {
	Title          *string    `json:"title"`
	Slug           *string    `json:"slug"`
	Description    *string    `json:"description"`
	Content        *string    `json:"content"`
	Category       *string    `json:"category"`
	Status         *string    `json:"status"`
	Technologies   []string   `json:"technologies"`
	TeamMembers    []string   `json:"teamMembers"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	GitHubURL      *string    `json:"githubUrl"`
	LiveURL        *string    `json:"liveUrl"`
	Featured       *bool      `json:"featured"`
	SEOTitle       *string    `json:"seoTitle"`
	SEODescription *string    `json:"seoDescription"`
}

func validProjectStatus(s string) bool {
	switch s {
	case models.ProjectUpcoming, models.ProjectOngoing, models.ProjectCompleted, models.ProjectPaused:
		return true
	}
	return false
}

type ProjectService struct {
	store  ProjectStore
	assets AssetStore
	logger zerolog.Logger
}

func NewProjectService(store ProjectStore, assets AssetStore) ProjectService {
	return ProjectService{
		store:  store,
		assets: assets,
		logger: log.With().Str("serviceName", "projectService").Logger(),
	}
}

func (s ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list", "projects", err)
	}
	return projects, nil
}

// Resolve looks up a project by slug first, falling back to a direct id
// lookup; not found only when both miss.
func (s ProjectService) Resolve(ctx context.Context, idOrSlug string) (*models.Project, error) {
	project, err := s.store.FindBySlug(ctx, idOrSlug)
	if err != nil {
		return nil, errs.NewStoreError("find", "project", err)
	}
	if project == nil {
		project, err = s.store.FindByID(ctx, idOrSlug)
		if err != nil {
			return nil, errs.NewStoreError("find", "project", err)
		}
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	return project, nil
}

func (s ProjectService) Create(ctx context.Context, in ProjectInput, images []Upload) (*models.Project, error) {
	if in.Title == "" {
		return nil, errs.NewMissingFieldError("title")
	}
	if !validProjectStatus(in.Status) {
		return nil, errs.NewValidationError("status", "must be upcoming, ongoing, completed or paused")
	}
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if slug == "" {
		return nil, errs.NewValidationError("title", "yields an empty slug")
	}

	now := time.Now().UTC()
	project := &models.Project{
		Title:          Sanitize(in.Title),
		Slug:           slug,
		Description:    Sanitize(in.Description),
		Content:        in.Content, // HTML body, trusted-admin authored
		Category:       Sanitize(in.Category),
		Status:         in.Status,
		Technologies:   SanitizeAll(in.Technologies),
		TeamMembers:    SanitizeAll(in.TeamMembers),
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		GitHubURL:      in.GitHubURL,
		LiveURL:        in.LiveURL,
		Featured:       in.Featured,
		SEOTitle:       Sanitize(in.SEOTitle),
		SEODescription: Sanitize(in.SEODescription),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var uploaded []string
	if len(images) > 0 {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.ProjectsFolder, images)
		if err != nil {
			return nil, err
		}
		uploaded = urls
		project.Images = urls
		project.FeaturedImage = urls[0]
	}

	id, err := s.store.Add(ctx, project)
	if err != nil {
		deleteAssets(ctx, s.assets, s.logger, uploaded)
		return nil, errs.NewStoreError("create", "project", err)
	}
	project.ID = id
	return project, nil
}

func (s ProjectService) Update(ctx context.Context, id string, upd ProjectUpdate, images []Upload) (*models.Project, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "project", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("project")
	}

	fields := map[string]any{}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, errs.NewValidationError("title", "must not be empty")
		}
		fields["title"] = Sanitize(*upd.Title)
		if upd.Slug == nil {
			slug := Slugify(*upd.Title)
			if slug == "" {
				return nil, errs.NewValidationError("title", "yields an empty slug")
			}
			fields["slug"] = slug
		}
	}
	if upd.Slug != nil {
		if *upd.Slug == "" {
			return nil, errs.NewValidationError("slug", "must not be empty")
		}
		fields["slug"] = *upd.Slug
	}
	if upd.Description != nil {
		fields["description"] = Sanitize(*upd.Description)
	}
	if upd.Content != nil {
		fields["content"] = *upd.Content
	}
	if upd.Category != nil {
		fields["category"] = Sanitize(*upd.Category)
	}
	if upd.Status != nil {
		if !validProjectStatus(*upd.Status) {
			return nil, errs.NewValidationError("status", "must be upcoming, ongoing, completed or paused")
		}
		fields["status"] = *upd.Status
	}
	if upd.Technologies != nil {
		fields["technologies"] = SanitizeAll(upd.Technologies)
	}
	if upd.TeamMembers != nil {
		fields["teamMembers"] = SanitizeAll(upd.TeamMembers)
	}
	if upd.StartDate != nil {
		fields["startDate"] = *upd.StartDate
	}
	if upd.EndDate != nil {
		fields["endDate"] = *upd.EndDate
	}
	if upd.GitHubURL != nil {
		fields["githubUrl"] = *upd.GitHubURL
	}
	if upd.LiveURL != nil {
		fields["liveUrl"] = *upd.LiveURL
	}
	if upd.Featured != nil {
		fields["featured"] = *upd.Featured
	}
	if upd.SEOTitle != nil {
		fields["seoTitle"] = Sanitize(*upd.SEOTitle)
	}
	if upd.SEODescription != nil {
		fields["seoDescription"] = Sanitize(*upd.SEODescription)
	}

	// new uploads replace the image array wholesale, never append
	if len(images) > 0 {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.ProjectsFolder, images)
		if err != nil {
			return nil, err
		}
		fields["images"] = urls
		fields["featuredImage"] = urls[0]
	}
	fields["updatedAt"] = time.Now().UTC()

	if err := s.store.Merge(ctx, id, fields); err != nil {
		return nil, errs.NewStoreError("update", "project", err)
	}

	updated, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "project", err)
	}
	return updated, nil
}

// Delete removes every referenced asset first, best-effort, then the document
func (s ProjectService) Delete(ctx context.Context, id string) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return errs.NewStoreError("find", "project", err)
	}
	if existing == nil {
		return errs.NewNotFound("project")
	}
	deleteAssets(ctx, s.assets, s.logger, existing.Images)
	if err := s.store.Delete(ctx, id); err != nil {
		return errs.NewStoreError("delete", "project", err)
	}
	return nil
}
