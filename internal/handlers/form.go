package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecoleta/registrar/internal/form"
	"github.com/ecoleta/registrar/internal/models"
)

func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var request struct {
		Field string `json:"field"` // "name", "email", "whatsapp"
		Value string `json:"value"`
	}
	if !h.decodeJSON(w, r, &request) {
		return
	}

	if err := session.UpdateContact(form.ContactField(request.Field), request.Value); err != nil {
		h.writeFormError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, session.State().Contact)
}

func (h *Handler) HandleRegion(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var request struct {
		ID string `json:"id"`
	}
	if !h.decodeJSON(w, r, &request) {
		return
	}

	if err := session.SelectRegion(r.Context(), request.ID); err != nil {
		h.writeFormError(w, err)
		return
	}

	st := session.State()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"selected_region": st.SelectedRegion,
		"localities":      st.Localities,
	})
}

func (h *Handler) HandleLocality(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var request struct {
		Name string `json:"name"`
	}
	if !h.decodeJSON(w, r, &request) {
		return
	}

	if err := session.SelectLocality(request.Name); err != nil {
		h.writeFormError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"selected_locality": request.Name})
}

func (h *Handler) HandleToggleItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	itemID, err := strconv.Atoi(r.PathValue("item"))
	if err != nil {
		h.writeError(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	selected, err := session.ToggleItem(itemID)
	if err != nil {
		h.writeFormError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"item":           itemID,
		"selected":       selected,
		"selected_items": session.State().SelectedItems,
	})
}

// HandlePosition records a map click
func (h *Handler) HandlePosition(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var c models.Coordinate
	if !h.decodeJSON(w, r, &c) {
		return
	}

	if err := session.MarkPosition(c); err != nil {
		h.writeFormError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, session.State().MarkedPosition)
}

// HandleCenter records the browser's device position as the default map
// center. The server's own locator only knows where the server is.
func (h *Handler) HandleCenter(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var c models.Coordinate
	if !h.decodeJSON(w, r, &c) {
		return
	}

	if err := session.CenterOn(c); err != nil {
		h.writeFormError(w, err)
		return
	}

	st := session.State()
	h.writeJSON(w, http.StatusOK, map[string]models.Coordinate{
		"default_center":  st.DefaultCenter,
		"marked_position": st.MarkedPosition,
	})
}

// HandleSubmit posts the form to the registry. A successful submission
// leaves the form, so the session is discarded; a failed one keeps it.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	created, err := session.Submit(r.Context())
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadGateway)
		return
	}

	sessionID := r.PathValue("id")
	h.sessionStore.Delete(sessionID)
	slog.Info("Form submitted", "session_id", sessionID, "point_id", created.ID)

	h.writeJSON(w, http.StatusCreated, map[string]any{
		"point": created,
		"route": form.LandingRoute,
	})
}
