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

// EmailSender dispatches the transactional emails behind the public forms.
type EmailSender interface {
	SendContact(p services.ContactPayload) error
	SendApplication(p services.ApplicationPayload) error
}

type applicationHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.ApplicationService
	mailer    EmailSender
}

func newApplicationHandler(service services.ApplicationService, mailer EmailSender) applicationHandler {
	logger := log.With().Str("handlerName", "applicationHandler").Logger()

	return applicationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
		mailer:    mailer,
	}
}

// submitApplication is the public join-form endpoint. The application is
// stored first; the notification emails are best effort and never fail the
// submission.
func (h applicationHandler) submitApplication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.ApplicationInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		application, err := h.service.Create(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.mailer != nil {
			p := application.PersonalInfo
			if err := h.mailer.SendApplication(services.ApplicationPayload{
				FullName:      p.FullName,
				Email:         p.Email,
				Phone:         p.Phone,
				College:       p.College,
				Branch:        p.Branch,
				Year:          p.Year,
				PreferredRole: p.PreferredRole,
				Experience:    p.Experience,
				Motivation:    p.Motivation,
			}); err != nil {
				h.logger.Error().Err(err).Str("applicationID", application.ID).Msg("failed to relay application emails")
			}
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, application)
	}
}

func (h applicationHandler) getAllApplications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applications, err := h.service.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, applications)
	}
}

func (h applicationHandler) getApplication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applicationID := chi.URLParam(r, "applicationID")
		if applicationID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing applicationID"))
			return
		}

		application, err := h.service.Get(r.Context(), applicationID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, application)
	}
}

type applicationStatusRequest struct {
	Status string `json:"status"`
}

// updateApplicationStatus is the only mutation an application supports.
func (h applicationHandler) updateApplicationStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applicationID := chi.URLParam(r, "applicationID")
		if applicationID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing applicationID"))
			return
		}

		var req applicationStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		application, err := h.service.UpdateStatus(r.Context(), applicationID, req.Status)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, application)
	}
}

func (h applicationHandler) deleteApplication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applicationID := chi.URLParam(r, "applicationID")
		if applicationID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing applicationID"))
			return
		}

		if err := h.service.Delete(r.Context(), applicationID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "application deleted successfully",
		})
	}
}
