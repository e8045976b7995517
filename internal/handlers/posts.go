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

// PostHandler provides HTTP handlers for the posts collection.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler constructs a handler with the provided service.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRouter registers post routes on the given router.
func PostRouter(r chi.Router, postService *services.PostService) {
	handler := NewPostHandler(postService)

	r.Get("/", handler.ListPosts)
	r.Post("/", handler.CreatePost)
	r.Route("/{postID}", func(r chi.Router) {
		r.Get("/", handler.GetPost)
		r.Put("/", handler.UpdatePost)
		r.Delete("/", handler.DeletePost)
	})
}

func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var post types.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	post.ID = 0

	created, err := h.postService.Create(r.Context(), post)
	if err != nil {
		if isPostValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var post types.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	post.ID = id

	updated, err := h.postService.Update(r.Context(), post)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		if isPostValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update post")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.postService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func isPostValidationError(err error) bool {
	return errors.Is(err, services.ErrMissingFields) ||
		errors.Is(err, services.ErrInvalidStatus) ||
		errors.Is(err, services.ErrUnknownAuthor) ||
		errors.Is(err, services.ErrUnknownCategory)
}
