package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/services"
)

type hackathonHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.HackathonService
}

func newHackathonHandler(service services.HackathonService) hackathonHandler {
	logger := log.With().Str("handlerName", "hackathonHandler").Logger()

	return hackathonHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

func (h hackathonHandler) getAllHackathons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hackathons, err := h.service.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, hackathons)
	}
}

func (h hackathonHandler) getHackathon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hackathonID := chi.URLParam(r, "hackathonID")
		if hackathonID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing hackathonID"))
			return
		}

		hackathon, err := h.service.Get(r.Context(), hackathonID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, hackathon)
	}
}

func (h hackathonHandler) createHackathon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.HackathonInput
		uploads, err := decodePayload(r, &input, "image")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUploads(uploads)

		hackathon, err := h.service.Create(r.Context(), input, firstUpload(uploads))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, hackathon)
	}
}

func (h hackathonHandler) updateHackathon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hackathonID := chi.URLParam(r, "hackathonID")
		if hackathonID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing hackathonID"))
			return
		}

		var update services.HackathonUpdate
		uploads, err := decodePayload(r, &update, "image")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUploads(uploads)

		hackathon, err := h.service.Update(r.Context(), hackathonID, update, firstUpload(uploads))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, hackathon)
	}
}

func (h hackathonHandler) deleteHackathon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hackathonID := chi.URLParam(r, "hackathonID")
		if hackathonID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing hackathonID"))
			return
		}

		if err := h.service.Delete(r.Context(), hackathonID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "hackathon deleted successfully",
		})
	}
}
