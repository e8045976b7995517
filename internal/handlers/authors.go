package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spellcms/spellcms/internal/services"
	"github.com/spellcms/spellcms/internal/store"
	"github.com/spellcms/spellcms/types"
)

// AuthorHandler provides HTTP handlers for the authors collection.
type AuthorHandler struct {
	authorService *services.AuthorService
}

// NewAuthorHandler constructs a handler with the provided service.
func NewAuthorHandler(authorService *services.AuthorService) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// AuthorRouter registers author routes on the given router.
func AuthorRouter(r chi.Router, authorService *services.AuthorService) {
	handler := NewAuthorHandler(authorService)

	r.Get("/", handler.ListAuthors)
	r.Post("/", handler.CreateAuthor)
	r.Route("/{authorID}", func(r chi.Router) {
		r.Get("/", handler.GetAuthor)
		r.Put("/", handler.UpdateAuthor)
		r.Delete("/", handler.DeleteAuthor)
	})
}

func (h *AuthorHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authorService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list authors")
		return
	}
	writeJSON(w, http.StatusOK, authors)
}

func (h *AuthorHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r, "authorID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	author, err := h.authorService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "author not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch author")
		return
	}
	writeJSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var author types.Author
	if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	author.ID = 0

	created, err := h.authorService.Create(r.Context(), author)
	if err != nil {
		if errors.Is(err, services.ErrMissingName) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create author")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *AuthorHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r, "authorID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var author types.Author
	if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	author.ID = id

	updated, err := h.authorService.Update(r.Context(), author)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "author not found")
			return
		}
		if errors.Is(err, services.ErrMissingName) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update author")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AuthorHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r, "authorID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authorService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "author not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete author")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
