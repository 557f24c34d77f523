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

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Service.CreateReview(r.Context(), review)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, models.ErrAlreadyReviewed) {
			writeError(w, http.StatusConflict, "booking already reviewed")
			return
		}
		if errors.Is(err, models.ErrBookingNotFound) {
			writeFieldError(w, http.StatusBadRequest, "booking_id", "invalid booking")
			return
		}
		log.Printf("CreateReview error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	userID, _ := identityFromContext(r)

	reviews, err := h.Service.GetReviews(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	userID, _ := identityFromContext(r)

	review, err := h.Service.GetReviewByID(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, models.ErrReviewNotFound) || errors.Is(err, models.ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "review not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get review")
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	review.ID = id

	updated, err := h.Service.UpdateReview(r.Context(), review)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, models.ErrReviewNotFound) {
			writeError(w, http.StatusNotFound, "review not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	if err := h.Service.DeleteReview(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			writeError(w, http.StatusNotFound, "review not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
