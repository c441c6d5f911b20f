package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type sessionResponse struct {
	ID    string `json:"id"`
	State any    `json:"state"`
}

// HandleCreateSession opens a new form and runs its load tasks
func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()
	session := h.sessions.NewSession(r.Context())
	h.sessionStore.Set(sessionID, session)

	slog.Info("Form session created", "session_id", sessionID)
	h.writeJSON(w, http.StatusCreated, sessionResponse{ID: sessionID, State: session.State()})
}

func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, sessionResponse{ID: r.PathValue("id"), State: session.State()})
}

// HandleDeleteSession discards a form and its staged preview
func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.getSessionOrError(w, r); !ok {
		return
	}
	h.sessionStore.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
