package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecoleta/registrar/internal/form"
	"github.com/ecoleta/registrar/internal/images"
	"github.com/ecoleta/registrar/internal/storage"
)

// SessionFactory creates activated form sessions
type SessionFactory interface {
	NewSession(ctx context.Context) *form.Session
}

type Handler struct {
	sessionStore *storage.SessionStore
	previews     *images.PreviewStore
	sessions     SessionFactory
	fetcher      *images.Fetcher
}

func New(sessions SessionFactory, previews *images.PreviewStore, fetcher *images.Fetcher) *Handler {
	return &Handler{
		sessionStore: storage.New(),
		previews:     previews,
		sessions:     sessions,
		fetcher:      fetcher,
	}
}

// Register mounts the form API on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/forms", h.HandleCreateSession)
	mux.HandleFunc("GET /api/forms/{id}", h.HandleSessionDetail)
	mux.HandleFunc("DELETE /api/forms/{id}", h.HandleDeleteSession)
	mux.HandleFunc("PATCH /api/forms/{id}/contact", h.HandleContact)
	mux.HandleFunc("PUT /api/forms/{id}/region", h.HandleRegion)
	mux.HandleFunc("PUT /api/forms/{id}/locality", h.HandleLocality)
	mux.HandleFunc("POST /api/forms/{id}/items/{item}/toggle", h.HandleToggleItem)
	mux.HandleFunc("PUT /api/forms/{id}/position", h.HandlePosition)
	mux.HandleFunc("PUT /api/forms/{id}/center", h.HandleCenter)
	mux.HandleFunc("POST /api/forms/{id}/image", h.HandleUpload)
	mux.HandleFunc("POST /api/forms/{id}/submit", h.HandleSubmit)
	mux.HandleFunc("GET /api/previews/{ref}", h.HandlePreview)
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	if code >= http.StatusInternalServerError {
		slog.Error(message)
	} else {
		slog.Debug(message, "status", code)
	}
	h.writeJSON(w, code, map[string]string{"error": message})
}

// writeFormError maps form validation errors to 400 and anything else to 500
func (h *Handler) writeFormError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, form.ErrClosed):
		h.writeError(w, err.Error(), http.StatusGone)
	case errors.Is(err, form.ErrUnknownRegion),
		errors.Is(err, form.ErrUnknownLocality),
		errors.Is(err, form.ErrUnknownCategory),
		errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrInvalidCoordinate),
		errors.Is(err, form.ErrNoImage),
		errors.Is(err, images.ErrNotImage),
		errors.Is(err, images.ErrTooLarge):
		h.writeError(w, err.Error(), http.StatusBadRequest)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, r *http.Request) (*form.Session, bool) {
	session, exists := h.sessionStore.Get(r.PathValue("id"))
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}
