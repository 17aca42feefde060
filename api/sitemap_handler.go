package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/services"
)

type sitemapHandler struct {
	responder      Responder
	logger         zerolog.Logger
	sitemap        services.SitemapService
	settings       services.SettingsService
	defaultBaseURL string
}

func newSitemapHandler(sitemap services.SitemapService, settings services.SettingsService, defaultBaseURL string) sitemapHandler {
	logger := log.With().Str("handlerName", "sitemapHandler").Logger()

	return sitemapHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		sitemap:        sitemap,
		settings:       settings,
		defaultBaseURL: defaultBaseURL,
	}
}

// serveSitemap renders the sitemap from the stored sitemap settings. The
// response shapes here are fixed wire contracts consumed by crawlers and
// the frontend, hence the literal JSON bodies.
func (h sitemapHandler) serveSitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusMethodNotAllowed)
			h.responder.WriteJSON(w, map[string]string{"message": "Method not allowed"})
			return
		}

		cfg, err := h.settings.Sitemap(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to load sitemap settings")
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			h.responder.WriteJSON(w, map[string]string{"error": "Failed to generate sitemap"})
			return
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = h.defaultBaseURL
		}

		xml, err := h.sitemap.Generate(r.Context(), cfg)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to generate sitemap")
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			h.responder.WriteJSON(w, map[string]string{"error": "Failed to generate sitemap"})
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(xml)); err != nil {
			h.logger.Error().Err(err).Msg("error writing sitemap response")
		}
	}
}
