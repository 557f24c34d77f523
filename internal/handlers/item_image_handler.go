package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"arendaBack/internal/models"
	"arendaBack/internal/services"
)

type ItemImageHandler struct {
	Service *services.ItemImageService
}

// CreateItemImage accepts a multipart form with an item_id field and an
// image file, pushes the file to object storage and stores the URL.
func (h *ItemImageHandler) CreateItemImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	itemID, err := strconv.Atoi(r.FormValue("item_id"))
	if err != nil {
		writeFieldError(w, http.StatusBadRequest, "item_id", "invalid item")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeFieldError(w, http.StatusBadRequest, "image", "This field is required.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	image, err := h.Service.UploadItemImage(r.Context(), itemID, data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, models.ErrItemNotFound) {
			writeFieldError(w, http.StatusBadRequest, "item_id", "invalid item")
			return
		}
		log.Printf("CreateItemImage error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	writeJSON(w, http.StatusCreated, image)
}

func (h *ItemImageHandler) GetAllItemImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.Service.GetAllItemImages(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get images")
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *ItemImageHandler) GetItemImageByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid image ID")
		return
	}

	image, err := h.Service.GetItemImageByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrItemImageNotFound) {
			writeError(w, http.StatusNotFound, "image not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get image")
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *ItemImageHandler) DeleteItemImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid image ID")
		return
	}

	if err := h.Service.DeleteItemImage(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrItemImageNotFound) {
			writeError(w, http.StatusNotFound, "image not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete image")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
