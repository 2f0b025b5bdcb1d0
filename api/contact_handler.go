package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sandeeph2706/portfolio-backend/database"
	"github.com/sandeeph2706/portfolio-backend/errs"
	"github.com/sandeeph2706/portfolio-backend/metrics"
	"github.com/sandeeph2706/portfolio-backend/models"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
}

func newContactHandler(contactRepo *database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

// createContact validates the four required fields and persists the
// message. Missing fields are collected and reported together; storage
// failures come back as a generic 500 with the cause only logged.
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.rejectContact(w, errs.NewMalformedPayloadError("contact", err), "Invalid request body.")
			return
		}

		if missing := missingContactFields(payload); len(missing) > 0 {
			apiErr := errs.NewMissingRequiredFieldError(strings.Join(missing, ", "))
			h.rejectContact(w, apiErr, "Missing required fields: "+strings.Join(missing, ", "))
			return
		}

		contact := models.Contact{
			Name:    payload.Name,
			Email:   payload.Email,
			Subject: payload.Subject,
			Message: payload.Message,
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			apiErr := errs.NewInternalError("failed to store contact message", err)
			h.rejectContact(w, apiErr, "Failed to send message. Please try again.")
			return
		}

		metrics.IncrementContactMessages("accepted")
		h.responder.WriteJSON(w, ContactResponse{
			Success: true,
			Message: "Message sent successfully!",
		})
	}
}

// missingContactFields returns the names of empty required fields in
// payload order so the rejection message is deterministic.
func missingContactFields(payload ContactRequest) []string {
	required := []struct {
		name  string
		value string
	}{
		{"name", payload.Name},
		{"email", payload.Email},
		{"subject", payload.Subject},
		{"message", payload.Message},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// rejectContact writes a failed contact response in the {success, message}
// shape the frontend expects, keeping the status code and logged cause on
// the typed error.
func (h contactHandler) rejectContact(w http.ResponseWriter, apiErr *errs.ApiErr, message string) {
	if apiErr.StatusCode >= http.StatusInternalServerError {
		metrics.IncrementContactMessages("failed")
		h.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	} else {
		metrics.IncrementContactMessages("rejected")
		h.logger.Warn().Msg(apiErr.GetFullError())
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.StatusCode)
	h.responder.WriteJSON(w, ContactResponse{
		Success: false,
		Message: message,
	})
}
