package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
)

// SettingsStore is the singleton slice of the document store. Update must
// fail with an error satisfying errs.IsNotFound when the document does not
// exist yet, so the service can fall back to a creating write.
type SettingsStore interface {
	Get(ctx context.Context, key string) (models.Settings, error)
	Update(ctx context.Context, key string, fields map[string]any) error
	Create(ctx context.Context, key string, fields map[string]any) error
}

type SettingsService struct {
	store  SettingsStore
	logger zerolog.Logger
}

func NewSettingsService(store SettingsStore) SettingsService {
	return SettingsService{
		store:  store,
		logger: log.With().Str("serviceName", "settingsService").Logger(),
	}
}

// Get returns the singleton for key, nil when it has never been written.
// Absence means "use caller-side defaults" and is not an error.
func (s SettingsService) Get(ctx context.Context, key string) (models.Settings, error) {
	if !models.KnownSettingsKey(key) {
		return nil, errs.NewValidationError("key", "unknown settings key")
	}
	settings, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, errs.NewStoreError("get", "settings", err)
	}
	return settings, nil
}

// Update merge-patches the singleton for key. The store has no upsert, so
// this is a two-attempt state machine: try the merge update first and,
// only when that fails because the document does not exist, fall back to a
// creating write. createdAt is stamped in the creating branch alone;
// updatedAt advances on every call.
func (s SettingsService) Update(ctx context.Context, key string, patch map[string]any) (models.Settings, error) {
	if !models.KnownSettingsKey(key) {
		return nil, errs.NewValidationError("key", "unknown settings key")
	}
	if len(patch) == 0 {
		return nil, errs.NewMissingFieldError("patch")
	}

	now := time.Now().UTC()
	fields := make(map[string]any, len(patch)+2)
	for k, v := range patch {
		if text, ok := v.(string); ok {
			v = Sanitize(text)
		}
		fields[k] = v
	}
	delete(fields, "createdAt") // never caller-supplied
	fields["updatedAt"] = now

	err := s.store.Update(ctx, key, fields)
	if err != nil {
		if !errs.IsNotFound(err) {
			return nil, errs.NewStoreError("update", "settings", err)
		}
		fields["createdAt"] = now
		if err := s.store.Create(ctx, key, fields); err != nil {
			return nil, errs.NewStoreError("create", "settings", err)
		}
	}

	settings, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, errs.NewStoreError("get", "settings", err)
	}
	return settings, nil
}

// Sitemap returns the typed view of the "sitemap" singleton, with zero
// values for anything never configured.
func (s SettingsService) Sitemap(ctx context.Context) (models.SitemapSettings, error) {
	raw, err := s.Get(ctx, models.SettingsSitemap)
	if err != nil {
		return models.SitemapSettings{}, err
	}
	var cfg models.SitemapSettings
	if raw == nil {
		return cfg, nil
	}
	if v, ok := raw["baseUrl"].(string); ok {
		cfg.BaseURL = v
	}
	if v, ok := raw["includeBlogs"].(bool); ok {
		cfg.IncludeBlogs = v
	}
	if v, ok := raw["includeAchievements"].(bool); ok {
		cfg.IncludeAchievements = v
	}
	if v, ok := raw["includeProjects"].(bool); ok {
		cfg.IncludeProjects = v
	}
	return cfg, nil
}
