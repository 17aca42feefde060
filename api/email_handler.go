package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/metrics"
	"github.com/vedanta-tech/team-site-backend/services"
)

type emailHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    EmailSender
}

func newEmailHandler(mailer EmailSender) emailHandler {
	logger := log.With().Str("handlerName", "emailHandler").Logger()

	return emailHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

type sendEmailRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// sendEmail is the standalone relay endpoint. Its response shapes are a
// fixed wire contract consumed by the public forms, hence the literal
// JSON bodies instead of the Responder error format.
func (h emailHandler) sendEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
			return
		case http.MethodPost:
		default:
			h.writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req sendEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeMessage(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		if req.Type == "" || len(req.Data) == 0 {
			h.writeMessage(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		var err error
		switch req.Type {
		case "contact":
			var payload services.ContactPayload
			if jsonErr := json.Unmarshal(req.Data, &payload); jsonErr != nil {
				h.writeMessage(w, http.StatusBadRequest, "Missing required fields")
				return
			}
			err = h.mailer.SendContact(payload)
		case "application":
			var payload services.ApplicationPayload
			if jsonErr := json.Unmarshal(req.Data, &payload); jsonErr != nil {
				h.writeMessage(w, http.StatusBadRequest, "Missing required fields")
				return
			}
			err = h.mailer.SendApplication(payload)
		default:
			h.writeMessage(w, http.StatusBadRequest, "Invalid email type")
			return
		}

		if err != nil {
			metrics.EmailsFailed.Inc()
			h.logger.Error().Err(err).Str("type", req.Type).Msg("failed to send email")

			status := http.StatusBadGateway
			message := "Failed to send email"
			var apiErr *errs.ApiErr
			if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
				status = apiErr.StatusCode
				message = apiErr.Error()
			}
			h.writeMessage(w, status, message)
			return
		}

		metrics.EmailsSent.Inc()
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Emails sent successfully",
		})
	}
}

func (h emailHandler) writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	h.responder.WriteJSON(w, map[string]string{"message": message})
}
