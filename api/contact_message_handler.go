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

type contactMessageHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.ContactMessageService
	mailer    EmailSender
}

func newContactMessageHandler(service services.ContactMessageService, mailer EmailSender) contactMessageHandler {
	logger := log.With().Str("handlerName", "contactMessageHandler").Logger()

	return contactMessageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
		mailer:    mailer,
	}
}

// submitContactMessage is the public contact-form endpoint. The message is
// stored first; the notification emails are best effort.
func (h contactMessageHandler) submitContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.ContactMessageInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		message, err := h.service.Create(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.mailer != nil {
			if err := h.mailer.SendContact(services.ContactPayload{
				Name:    message.Name,
				Email:   message.Email,
				Subject: message.Subject,
				Message: message.Message,
			}); err != nil {
				h.logger.Error().Err(err).Str("messageID", message.ID).Msg("failed to relay contact emails")
			}
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, message)
	}
}

func (h contactMessageHandler) getAllContactMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.service.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

func (h contactMessageHandler) markContactMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID := chi.URLParam(r, "messageID")
		if messageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing messageID"))
			return
		}

		message, err := h.service.MarkRead(r.Context(), messageID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

func (h contactMessageHandler) deleteContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID := chi.URLParam(r, "messageID")
		if messageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing messageID"))
			return
		}

		if err := h.service.Delete(r.Context(), messageID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}
