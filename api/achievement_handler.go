package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/services"
)

type achievementHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.AchievementService
}

func newAchievementHandler(service services.AchievementService) achievementHandler {
	logger := log.With().Str("handlerName", "achievementHandler").Logger()

	return achievementHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

func (h achievementHandler) getAllAchievements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievements, err := h.service.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, achievements)
	}
}

// getAchievement accepts either a document ID or a slug.
func (h achievementHandler) getAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idOrSlug := chi.URLParam(r, "achievementID")
		if idOrSlug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing achievementID"))
			return
		}

		achievement, err := h.service.Resolve(r.Context(), idOrSlug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, achievement)
	}
}

func (h achievementHandler) createAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.AchievementInput
		uploads, err := decodePayload(r, &input, "images")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUploads(uploads)

		achievement, err := h.service.Create(r.Context(), input, uploads)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, achievement)
	}
}

func (h achievementHandler) updateAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievementID := chi.URLParam(r, "achievementID")
		if achievementID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing achievementID"))
			return
		}

		var update services.AchievementUpdate
		uploads, err := decodePayload(r, &update, "images")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUploads(uploads)

		achievement, err := h.service.Update(r.Context(), achievementID, update, uploads)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, achievement)
	}
}

func (h achievementHandler) deleteAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievementID := chi.URLParam(r, "achievementID")
		if achievementID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing achievementID"))
			return
		}

		if err := h.service.Delete(r.Context(), achievementID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "achievement deleted successfully",
		})
	}
}
