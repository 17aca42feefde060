package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/models"
	"github.com/vedanta-tech/team-site-backend/services"
)

type fakeSettingsStore struct {
	docs map[string]map[string]any
	err  error
}

func (f *fakeSettingsStore) Get(ctx context.Context, key string) (models.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[key]
	if !ok {
		return nil, nil
	}
	return models.Settings(doc), nil
}

func (f *fakeSettingsStore) Update(ctx context.Context, key string, fields map[string]any) error {
	if _, ok := f.docs[key]; !ok {
		return errs.NewNotFound("settings document")
	}
	for k, v := range fields {
		f.docs[key][k] = v
	}
	return nil
}

func (f *fakeSettingsStore) Create(ctx context.Context, key string, fields map[string]any) error {
	if f.docs == nil {
		f.docs = map[string]map[string]any{}
	}
	f.docs[key] = fields
	return nil
}

type fakeBlogSource struct {
	blogs []*models.Blog
	err   error
}

func (f fakeBlogSource) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	return f.blogs, f.err
}

type fakeAchievementSource struct{}

func (fakeAchievementSource) List(ctx context.Context) ([]*models.Achievement, error) {
	return nil, nil
}

type fakeProjectSource struct{}

func (fakeProjectSource) List(ctx context.Context) ([]*models.Project, error) {
	return nil, nil
}

func newSitemapHandlerForTest(settingsStore *fakeSettingsStore, blogs fakeBlogSource) sitemapHandler {
	settings := services.NewSettingsService(settingsStore)
	sitemap := services.NewSitemapService(blogs, fakeAchievementSource{}, fakeProjectSource{})
	return newSitemapHandler(sitemap, settings, "https://default.example.org")
}

func TestServeSitemapOK(t *testing.T) {
	store := &fakeSettingsStore{docs: map[string]map[string]any{
		"sitemap": {"baseUrl": "https://team.example.org", "includeBlogs": true},
	}}
	blogs := fakeBlogSource{blogs: []*models.Blog{
		{ID: "b1", Slug: "hello", Status: models.BlogPublished, CreatedAt: time.Now().UTC()},
	}}
	handler := newSitemapHandlerForTest(store, blogs)

	req := httptest.NewRequest(http.MethodGet, "/api/sitemap", nil)
	rec := httptest.NewRecorder()
	handler.serveSitemap()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("expected application/xml, got %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=3600" {
		t.Errorf("unexpected Cache-Control %q", cc)
	}
	if !strings.Contains(rec.Body.String(), "<loc>https://team.example.org/blog/hello</loc>") {
		t.Errorf("expected blog entry in sitemap, got %s", rec.Body.String())
	}
}

func TestServeSitemapDefaultBaseURL(t *testing.T) {
	handler := newSitemapHandlerForTest(&fakeSettingsStore{}, fakeBlogSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/sitemap", nil)
	rec := httptest.NewRecorder()
	handler.serveSitemap()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<loc>https://default.example.org/</loc>") {
		t.Error("expected fallback base url in static entries")
	}
}

func TestServeSitemapMethodNotAllowed(t *testing.T) {
	handler := newSitemapHandlerForTest(&fakeSettingsStore{}, fakeBlogSource{})

	req := httptest.NewRequest(http.MethodPost, "/api/sitemap", nil)
	rec := httptest.NewRecorder()
	handler.serveSitemap()(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("malformed body: %v", err)
	}
	if body["message"] != "Method not allowed" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestServeSitemapSettingsFailure(t *testing.T) {
	store := &fakeSettingsStore{err: fmt.Errorf("backend down")}
	handler := newSitemapHandlerForTest(store, fakeBlogSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/sitemap", nil)
	rec := httptest.NewRecorder()
	handler.serveSitemap()(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("malformed body: %v", err)
	}
	if body["error"] != "Failed to generate sitemap" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}
