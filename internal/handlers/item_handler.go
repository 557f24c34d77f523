package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"arendaBack/internal/models"
	"arendaBack/internal/services"
)

type ItemHandler struct {
	Service *services.ItemService
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ownerID, _ := identityFromContext(r)

	created, err := h.Service.CreateItem(r.Context(), ownerID, item)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		log.Printf("CreateItem error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	var categoryID *int
	if categoryStr := r.URL.Query().Get("category"); categoryStr != "" {
		id, err := strconv.Atoi(categoryStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid category filter")
			return
		}
		categoryID = &id
	}

	items, err := h.Service.GetItems(r.Context(), categoryID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.Service.GetItemByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	item.ID = id

	updated, err := h.Service.UpdateItem(r.Context(), item)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, models.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
