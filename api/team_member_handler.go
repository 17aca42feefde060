package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/services"
)

type teamMemberHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.TeamMemberService
}

func newTeamMemberHandler(service services.TeamMemberService) teamMemberHandler {
	logger := log.With().Str("handlerName", "teamMemberHandler").Logger()

	return teamMemberHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

func (h teamMemberHandler) getAllTeamMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := h.service.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, members)
	}
}

func (h teamMemberHandler) getTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID := chi.URLParam(r, "memberID")
		if memberID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing memberID"))
			return
		}

		member, err := h.service.Get(r.Context(), memberID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, member)
	}
}

func (h teamMemberHandler) createTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.TeamMemberInput
		uploads, err := decodePayload(r, &input, "image")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUploads(uploads)

		member, err := h.service.Create(r.Context(), input, firstUpload(uploads))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, member)
	}
}

func (h teamMemberHandler) updateTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID := chi.URLParam(r, "memberID")
		if memberID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing memberID"))
			return
		}

		var update services.TeamMemberUpdate
		uploads, err := decodePayload(r, &update, "image")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUploads(uploads)

		member, err := h.service.Update(r.Context(), memberID, update, firstUpload(uploads))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, member)
	}
}

func (h teamMemberHandler) deleteTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID := chi.URLParam(r, "memberID")
		if memberID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing memberID"))
			return
		}

		if err := h.service.Delete(r.Context(), memberID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "team member deleted successfully",
		})
	}
}
