package services

import (
	"context"
	"testing"
	"time"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
)

type fakeSettingsStore struct {
	docs map[string]map[string]any
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{docs: map[string]map[string]any{}}
}

func (f *fakeSettingsStore) Get(ctx context.Context, key string) (models.Settings, error) {
	doc, ok := f.docs[key]
	if !ok {
		return nil, nil
	}
	out := make(models.Settings, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out, nil
}

func (f *fakeSettingsStore) Update(ctx context.Context, key string, fields map[string]any) error {
	doc, ok := f.docs[key]
	if !ok {
		return errs.NewNotFound("settings document")
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (f *fakeSettingsStore) Create(ctx context.Context, key string, fields map[string]any) error {
	doc := make(map[string]any, len(fields))
	for k, v := range fields {
		doc[k] = v
	}
	f.docs[key] = doc
	return nil
}

func TestSettingsUpdateCreatesMissingSingleton(t *testing.T) {
	store := newFakeSettingsStore()
	service := NewSettingsService(store)
	ctx := context.Background()

	settings, err := service.Update(ctx, models.SettingsSEO, map[string]any{"siteTitle": "Team Site"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	createdAt, ok := settings["createdAt"].(time.Time)
	if !ok {
		t.Fatal("expected createdAt stamped on the creating write")
	}
	updatedAt, ok := settings["updatedAt"].(time.Time)
	if !ok {
		t.Fatal("expected updatedAt stamped")
	}
	if !createdAt.Equal(updatedAt) {
		t.Errorf("expected createdAt == updatedAt on first write, got %v vs %v", createdAt, updatedAt)
	}
	if settings["siteTitle"] != "Team Site" {
		t.Errorf("expected siteTitle persisted, got %v", settings["siteTitle"])
	}
}

func TestSettingsUpdateLeavesCreatedAtUntouched(t *testing.T) {
	store := newFakeSettingsStore()
	service := NewSettingsService(store)
	ctx := context.Background()

	first, err := service.Update(ctx, models.SettingsSEO, map[string]any{"siteTitle": "v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	createdAt := first["createdAt"].(time.Time)

	time.Sleep(2 * time.Millisecond)

	second, err := service.Update(ctx, models.SettingsSEO, map[string]any{"siteTitle": "v2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second["createdAt"].(time.Time).Equal(createdAt) {
		t.Errorf("expected createdAt untouched, got %v vs %v", second["createdAt"], createdAt)
	}
	if !second["updatedAt"].(time.Time).After(createdAt) {
		t.Errorf("expected updatedAt to advance past %v, got %v", createdAt, second["updatedAt"])
	}
	if second["siteTitle"] != "v2" {
		t.Errorf("expected merged patch, got %v", second["siteTitle"])
	}
}

func TestSettingsCreatedAtNeverCallerSupplied(t *testing.T) {
	store := newFakeSettingsStore()
	service := NewSettingsService(store)
	ctx := context.Background()

	bogus := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	settings, err := service.Update(ctx, models.SettingsUI, map[string]any{
		"theme":     "dark",
		"createdAt": bogus,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings["createdAt"].(time.Time).Equal(bogus) {
		t.Error("expected caller-supplied createdAt to be discarded")
	}
}

func TestSettingsGetAbsenceIsNotAnError(t *testing.T) {
	service := NewSettingsService(newFakeSettingsStore())

	settings, err := service.Get(context.Background(), models.SettingsWelcome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != nil {
		t.Errorf("expected nil for an unwritten singleton, got %v", settings)
	}
}

func TestSettingsUnknownKeyRejected(t *testing.T) {
	service := NewSettingsService(newFakeSettingsStore())
	ctx := context.Background()

	if _, err := service.Get(ctx, "mystery"); !errs.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := service.Update(ctx, "mystery", map[string]any{"a": 1}); !errs.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSettingsSitemapTypedView(t *testing.T) {
	store := newFakeSettingsStore()
	service := NewSettingsService(store)
	ctx := context.Background()

	_, err := service.Update(ctx, models.SettingsSitemap, map[string]any{
		"baseUrl":         "https://team.example.org",
		"includeBlogs":    true,
		"includeProjects": false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := service.Sitemap(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://team.example.org" {
		t.Errorf("expected base url, got %q", cfg.BaseURL)
	}
	if !cfg.IncludeBlogs || cfg.IncludeProjects || cfg.IncludeAchievements {
		t.Errorf("unexpected toggles: %+v", cfg)
	}
}
