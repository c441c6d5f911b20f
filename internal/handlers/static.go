package handlers

import (
	"net/http"
	"strconv"
)

// HandlePreview serves the content behind a preview reference
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	preview, ok := h.previews.Get(r.PathValue("ref"))
	if !ok {
		h.writeError(w, "Preview not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", preview.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(preview.Data)))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(preview.Data)
}
