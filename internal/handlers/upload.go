package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/ecoleta/registrar/internal/images"
	"github.com/ecoleta/registrar/internal/models"
)

// HandleUpload stages a photo, either as a multipart file or as a JSON
// body carrying an image URL
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var img *models.ImageFile
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		img, ok = h.imageFromURL(w, r)
	} else {
		img, ok = h.imageFromFile(w, r)
	}
	if !ok {
		return
	}

	ref, err := session.StageImage(img)
	if err != nil {
		h.writeFormError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"preview_ref": ref,
		"preview_url": "/api/previews/" + ref,
		"image":       img,
	})
}

func (h *Handler) imageFromURL(w http.ResponseWriter, r *http.Request) (*models.ImageFile, bool) {
	var request struct {
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if request.ImageURL == "" {
		h.writeError(w, "image_url is required", http.StatusBadRequest)
		return nil, false
	}

	img, err := h.fetcher.Download(r.Context(), request.ImageURL)
	if err != nil {
		h.writeError(w, "Failed to process image URL: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return img, true
}

func (h *Handler) imageFromFile(w http.ResponseWriter, r *http.Request) (*models.ImageFile, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		file, header, err = r.FormFile("file")
		if err != nil {
			h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
			return nil, false
		}
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, images.MaxImageSize+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}

	img, err := images.NewImageFile(header.Filename, data)
	if err != nil {
		h.writeFormError(w, err)
		return nil, false
	}
	return img, true
}
