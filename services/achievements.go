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

type AchievementStore interface {
	FindAll(ctx context.Context) ([]*models.Achievement, error)
	FindByID(ctx context.Context, id string) (*models.Achievement, error)
	FindBySlug(ctx context.Context, slug string) (*models.Achievement, error)
	Add(ctx context.Context, a *models.Achievement) (string, error)
	Merge(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type AchievementInput struct {
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	Category     string    `json:"category"`
	Position     string    `json:"position"`
	Prize        string    `json:"prize"`
	TeamMembers  []string  `json:"teamMembers"`
	Technologies []string  `json:"technologies"`
	Highlights   []string  `json:"highlights"`
}

type AchievementUpdate struct {
	Title        *string    `json:"title"`
	Slug         *string    `json:"slug"`
	Description  *string    `json:"description"`
	Date         *time.Time `json:"date"`
	Location     *string    `json:"location"`
	Category     *string    `json:"category"`
	Position     *string    `json:"position"`
	Prize        *string    `json:"prize"`
	TeamMembers  []string   `json:"teamMembers"`
	Technologies []string   `json:"technologies"`
	Highlights   []string   `json:"highlights"`
}

type AchievementService struct {
	store  AchievementStore
	assets AssetStore
	logger zerolog.Logger
}

func NewAchievementService(store AchievementStore, assets AssetStore) AchievementService {
	return AchievementService{
		store:  store,
		assets: assets,
		logger: log.With().Str("serviceName", "achievementService").Logger(),
	}
}

func (s AchievementService) List(ctx context.Context) ([]*models.Achievement, error) {
	achievements, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list", "achievements", err)
	}
	return achievements, nil
}

// Resolve looks up an achievement by slug first, falling back to a direct
// id lookup; not found only when both miss.
func (s AchievementService) Resolve(ctx context.Context, idOrSlug string) (*models.Achievement, error) {
	achievement, err := s.store.FindBySlug(ctx, idOrSlug)
	if err != nil {
		return nil, errs.NewStoreError("find", "achievement", err)
	}
	if achievement == nil {
		achievement, err = s.store.FindByID(ctx, idOrSlug)
		if err != nil {
			return nil, errs.NewStoreError("find", "achievement", err)
		}
	}
	if achievement == nil {
		return nil, errs.NewNotFound("achievement")
	}
	return achievement, nil
}

func (s AchievementService) Create(ctx context.Context, in AchievementInput, images []Upload) (*models.Achievement, error) {
	if in.Title == "" {
		return nil, errs.NewMissingFieldError("title")
	}
	if in.Category == "" {
		return nil, errs.NewMissingFieldError("category")
	}
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if slug == "" {
		return nil, errs.NewValidationError("title", "yields an empty slug")
	}

	now := time.Now().UTC()
	achievement := &models.Achievement{
		Title:        Sanitize(in.Title),
		Slug:         slug,
		Description:  Sanitize(in.Description),
		Date:         in.Date,
		Location:     Sanitize(in.Location),
		Category:     Sanitize(in.Category),
		Position:     Sanitize(in.Position),
		Prize:        Sanitize(in.Prize),
		TeamMembers:  SanitizeAll(in.TeamMembers),
		Technologies: SanitizeAll(in.Technologies),
		Highlights:   SanitizeAll(in.Highlights),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var uploaded []string
	if len(images) > 0 {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.AchievementsFolder, images)
		if err != nil {
			return nil, err
		}
		uploaded = urls
		achievement.Images = urls
		achievement.FeaturedImage = urls[0]
	}

	id, err := s.store.Add(ctx, achievement)
	if err != nil {
		deleteAssets(ctx, s.assets, s.logger, uploaded)
		return nil, errs.NewStoreError("create", "achievement", err)
	}
	achievement.ID = id
	return achievement, nil
}

func (s AchievementService) Update(ctx context.Context, id string, upd AchievementUpdate, images []Upload) (*models.Achievement, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "achievement", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("achievement")
	}

	fields := map[string]any{}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, errs.NewValidationError("title", "must not be empty")
		}
		fields["title"] = Sanitize(*upd.Title)
		// regenerate the slug only when the caller does not pin one
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
	if upd.Date != nil {
		fields["date"] = *upd.Date
	}
	if upd.Location != nil {
		fields["location"] = Sanitize(*upd.Location)
	}
	if upd.Category != nil {
		fields["category"] = Sanitize(*upd.Category)
	}
	if upd.Position != nil {
		fields["position"] = Sanitize(*upd.Position)
	}
	if upd.Prize != nil {
		fields["prize"] = Sanitize(*upd.Prize)
	}
	if upd.TeamMembers != nil {
		fields["teamMembers"] = SanitizeAll(upd.TeamMembers)
	}
	if upd.Technologies != nil {
		fields["technologies"] = SanitizeAll(upd.Technologies)
	}
	if upd.Highlights != nil {
		fields["highlights"] = SanitizeAll(upd.Highlights)
	}

	// new uploads replace the image array wholesale, never append
	if len(images) > 0 {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.AchievementsFolder, images)
		if err != nil {
			return nil, err
		}
		fields["images"] = urls
		fields["featuredImage"] = urls[0]
	}
	fields["updatedAt"] = time.Now().UTC()

	if err := s.store.Merge(ctx, id, fields); err != nil {
		return nil, errs.NewStoreError("update", "achievement", err)
	}

	updated, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "achievement", err)
	}
	return updated, nil
}

// Delete removes every referenced asset first, best-effort, then the document
func (s AchievementService) Delete(ctx context.Context, id string) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return errs.NewStoreError("find", "achievement", err)
	}
	if existing == nil {
		return errs.NewNotFound("achievement")
	}
	deleteAssets(ctx, s.assets, s.logger, existing.Images)
	if err := s.store.Delete(ctx, id); err != nil {
		return errs.NewStoreError("delete", "achievement", err)
	}
	return nil
}
