package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/vedanta-tech/team-site-backend/services"
)

func settingsRequest(method, key string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/settings/"+key, nil)
	} else {
		req = httptest.NewRequest(method, "/api/settings/"+key, strings.NewReader(body))
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("key", key)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetSettingsReturnsDocument(t *testing.T) {
	store := &fakeSettingsStore{docs: map[string]map[string]any{
		"welcome": {"heading": "Build With Us"},
	}}
	handler := newSettingsHandler(services.NewSettingsService(store))

	rec := httptest.NewRecorder()
	handler.getSettings()(rec, settingsRequest(http.MethodGet, "welcome", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"heading":"Build With Us"`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestGetSettingsUnwrittenSingletonIsNull(t *testing.T) {
	handler := newSettingsHandler(services.NewSettingsService(&fakeSettingsStore{}))

	rec := httptest.NewRecorder()
	handler.getSettings()(rec, settingsRequest(http.MethodGet, "welcome", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for an unwritten singleton, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Errorf("expected null body, got %q", body)
	}
}

func TestGetSettingsUnknownKey(t *testing.T) {
	handler := newSettingsHandler(services.NewSettingsService(&fakeSettingsStore{}))

	rec := httptest.NewRecorder()
	handler.getSettings()(rec, settingsRequest(http.MethodGet, "nonsense", ""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown key, got %d", rec.Code)
	}
}

func TestUpdateSettingsCreatesOnFirstWrite(t *testing.T) {
	store := &fakeSettingsStore{}
	handler := newSettingsHandler(services.NewSettingsService(store))

	rec := httptest.NewRecorder()
	handler.updateSettings()(rec, settingsRequest(http.MethodPut, "seo", `{"title":"Vedanta Tech"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if store.docs["seo"]["title"] != "Vedanta Tech" {
		t.Errorf("expected stored title, got %v", store.docs["seo"])
	}
}
