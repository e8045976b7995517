package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type contextKey string

const contextSubjectKey contextKey = "sub"

// ErrorResponse is the error payload for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func userIDFromContext(ctx context.Context) (int64, error) {
	value := ctx.Value(contextSubjectKey)
	subject, ok := value.(string)
	if !ok {
		return 0, errors.New("missing subject")
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(subject), 10, 64)
	if err != nil || parsed < 1 {
		return 0, errors.New("invalid subject")
	}
	return parsed, nil
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func parseRecordID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid record id")
	}
	return id, nil
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
