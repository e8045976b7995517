package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spellcms/spellcms/internal/storage"
)

const (
	maxUploadBytes     = 8 << 20
	maxMultipartMemory = 8 << 20
	formFieldFile      = "file"
)

// MediaHandler accepts cover image and avatar uploads and stores them in
// object storage. The returned URL is what the post or author record
// carries.
type MediaHandler struct {
	storage *storage.Storage
}

// NewMediaHandler constructs a handler over the configured storage.
func NewMediaHandler(st *storage.Storage) *MediaHandler {
	return &MediaHandler{storage: st}
}

// MediaRouter registers media routes on the given router.
func MediaRouter(r chi.Router, st *storage.Storage) {
	handler := NewMediaHandler(st)
	r.Post("/", handler.Upload)
}

// MediaResponse is the payload returned after a successful upload.
type MediaResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile(formFieldFile)
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := readFileLimited(file, maxUploadBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key := storage.NewKey(header.Filename)
	url, err := h.storage.Put(r.Context(), key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	writeJSON(w, http.StatusCreated, MediaResponse{URL: url, Key: key})
}

func readFileLimited(reader io.Reader, limit int64) ([]byte, error) {
	limited := io.LimitReader(reader, limit+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, errors.New("failed to read upload")
	}
	if int64(len(data)) > limit {
		return nil, errors.New("uploaded file too large")
	}
	return data, nil
}
