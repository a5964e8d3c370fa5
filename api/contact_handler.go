package api

import (
	"encoding/json"
	"net/http"

	"github.com/authorpages/author-site-backend/errs"
	"github.com/authorpages/author-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder      Responder
	logger         zerolog.Logger
	contactService *services.ContactService
}

func newContactHandler(contactService *services.ContactService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		contactService: contactService,
	}
}

// submitContact validates and relays a contact-form submission. The route is
// rate limited per IP; see routes.go.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg services.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validatePayload(msg); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.contactService.Relay(msg); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message received",
		})
	}
}
