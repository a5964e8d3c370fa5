package api

import (
	"encoding/json"
	"net/http"

	"github.com/authorpages/author-site-backend/database"
	"github.com/authorpages/author-site-backend/errs"
	"github.com/authorpages/author-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type statusHandler struct {
	responder  Responder
	logger     zerolog.Logger
	statusRepo *database.BlogStatusRepo
}

func newStatusHandler(statusRepo *database.BlogStatusRepo) statusHandler {
	logger := log.With().Str("handlerName", "statusHandler").Logger()

	return statusHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		statusRepo: statusRepo,
	}
}

// getAllStatuses lists the status vocabulary, including operator-added rows.
func (h statusHandler) getAllStatuses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses, err := h.statusRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceError("list", "blog_status", err))
			return
		}

		h.responder.WriteJSON(w, statuses)
	}
}

// createStatus adds a row to the status vocabulary. The table is open; only
// lifecycle transitions are restricted to the known names.
func (h statusHandler) createStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload statusRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validatePayload(payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		status := models.BlogStatus{Name: payload.Name}
		if err := h.statusRepo.Add(&status); err != nil {
			h.responder.WriteError(w, errs.NewPersistenceError("create", "blog_status", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, status)
	}
}
