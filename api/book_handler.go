package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/authorpages/author-site-backend/errs"
	"github.com/authorpages/author-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type bookHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newBookHandler() bookHandler {
	logger := log.With().Str("handlerName", "bookHandler").Logger()

	return bookHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// getAllBooks serves the static books catalog.
func (h bookHandler) getAllBooks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, services.ListBooks())
	}
}

// getBook serves a single book by slug.
func (h bookHandler) getBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "bookSlug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing bookSlug"))
			return
		}

		book, err := services.FindBookBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, book)
	}
}
