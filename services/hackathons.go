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

type HackathonStore interface {
	FindAll(ctx context.Context) ([]*models.Hackathon, error)
	FindByID(ctx context.Context, id string) (*models.Hackathon, error)
	Add(ctx context.Context, h *models.Hackathon) (string, error)
	Merge(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type HackathonInput struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
	Result       string    `json:"result"`
	Technologies []string  `json:"technologies"`
	TeamSize     int       `json:"teamSize"`
	Prize        string    `json:"prize"`
}

type HackathonUpdate struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Date         *time.Time `json:"date"`
	Location     *string    `json:"location"`
	Status       *string    `json:"status"`
	Result       *string    `json:"result"`
	Technologies []string   `json:"technologies"`
	TeamSize     *int       `json:"teamSize"`
	Prize        *string    `json:"prize"`
}

func validHackathonStatus(s string) bool {
	return s == models.HackathonUpcoming || s == models.HackathonOngoing || s == models.HackathonCompleted
}

type HackathonService struct {
	store  HackathonStore
	assets AssetStore
	logger zerolog.Logger
}

func NewHackathonService(store HackathonStore, assets AssetStore) HackathonService {
	return HackathonService{
		store:  store,
		assets: assets,
		logger: log.With().Str("serviceName", "hackathonService").Logger(),
	}
}

func (s HackathonService) List(ctx context.Context) ([]*models.Hackathon, error) {
	hackathons, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errs.NewStoreError("list", "hackathons", err)
	}
	return hackathons, nil
}

func (s HackathonService) Get(ctx context.Context, id string) (*models.Hackathon, error) {
	hackathon, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "hackathon", err)
	}
	if hackathon == nil {
		return nil, errs.NewNotFound("hackathon")
	}
	return hackathon, nil
}

func (s HackathonService) Create(ctx context.Context, in HackathonInput, image *Upload) (*models.Hackathon, error) {
	if in.Title == "" {
		return nil, errs.NewMissingFieldError("title")
	}
	if !validHackathonStatus(in.Status) {
		return nil, errs.NewValidationError("status", "must be upcoming, ongoing or completed")
	}

	now := time.Now().UTC()
	hackathon := &models.Hackathon{
		Title:        Sanitize(in.Title),
		Description:  Sanitize(in.Description),
		Date:         in.Date,
		Location:     Sanitize(in.Location),
		Status:       in.Status,
		Result:       Sanitize(in.Result),
		Technologies: SanitizeAll(in.Technologies),
		TeamSize:     in.TeamSize,
		Prize:        Sanitize(in.Prize),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var uploaded []string
	if image != nil {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.HackathonsFolder, []Upload{*image})
		if err != nil {
			return nil, err
		}
		uploaded = urls
		hackathon.ImageURL = urls[0]
	}

	id, err := s.store.Add(ctx, hackathon)
	if err != nil {
		deleteAssets(ctx, s.assets, s.logger, uploaded)
		return nil, errs.NewStoreError("create", "hackathon", err)
	}
	hackathon.ID = id
	return hackathon, nil
}

func (s HackathonService) Update(ctx context.Context, id string, upd HackathonUpdate, image *Upload) (*models.Hackathon, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "hackathon", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("hackathon")
	}

	fields := map[string]any{}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, errs.NewValidationError("title", "must not be empty")
		}
		fields["title"] = Sanitize(*upd.Title)
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
	if upd.Status != nil {
		if !validHackathonStatus(*upd.Status) {
			return nil, errs.NewValidationError("status", "must be upcoming, ongoing or completed")
		}
		fields["status"] = *upd.Status
	}
	if upd.Result != nil {
		fields["result"] = Sanitize(*upd.Result)
	}
	if upd.Technologies != nil {
		fields["technologies"] = SanitizeAll(upd.Technologies)
	}
	if upd.TeamSize != nil {
		fields["teamSize"] = *upd.TeamSize
	}
	if upd.Prize != nil {
		fields["prize"] = Sanitize(*upd.Prize)
	}

	if image != nil {
		urls, err := uploadAll(ctx, s.assets, s.logger, storage.HackathonsFolder, []Upload{*image})
		if err != nil {
			return nil, err
		}
		fields["imageUrl"] = urls[0]
	}
	fields["updatedAt"] = time.Now().UTC()

	if err := s.store.Merge(ctx, id, fields); err != nil {
		return nil, errs.NewStoreError("update", "hackathon", err)
	}

	updated, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreError("find", "hackathon", err)
	}
	return updated, nil
}

func (s HackathonService) Delete(ctx context.Context, id string) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return errs.NewStoreError("find", "hackathon", err)
	}
	if existing == nil {
		return errs.NewNotFound("hackathon")
	}
	if existing.ImageURL != "" {
		deleteAssets(ctx, s.assets, s.logger, []string{existing.ImageURL})
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return errs.NewStoreError("delete", "hackathon", err)
	}
	return nil
}
