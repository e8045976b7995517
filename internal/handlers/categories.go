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

// CategoryHandler provides HTTP handlers for the categories collection.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler constructs a handler with the provided service.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRouter registers category routes on the given router.
func CategoryRouter(r chi.Router, categoryService *services.CategoryService) {
	handler := NewCategoryHandler(categoryService)

	r.Get("/", handler.ListCategories)
	r.Post("/", handler.CreateCategory)
	r.Route("/{categoryID}", func(r chi.Router) {
		r.Get("/", handler.GetCategory)
		r.Put("/", handler.UpdateCategory)
		r.Delete("/", handler.DeleteCategory)
	})
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r, "categoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category types.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	category.ID = 0

	created, err := h.categoryService.Create(r.Context(), category)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, services.ErrMissingName) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r, "categoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var category types.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	category.ID = id

	updated, err := h.categoryService.Update(r.Context(), category)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		if errors.Is(err, services.ErrSlugTaken) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, services.ErrMissingName) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update category")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseRecordID(r, "categoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
