package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/services"
)

type settingsHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.SettingsService
}

func newSettingsHandler(service services.SettingsService) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

func (h settingsHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing settings key"))
			return
		}

		// An unwritten singleton serializes as null; clients fall back to
		// their own defaults.
		settings, err := h.service.Get(r.Context(), key)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}

// updateSettings merges the posted fields into the singleton, creating it
// on first write.
func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing settings key"))
			return
		}

		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if len(patch) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("empty settings patch"))
			return
		}

		settings, err := h.service.Update(r.Context(), key, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}
