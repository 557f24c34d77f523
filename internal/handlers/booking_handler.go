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

type BookingHandler struct {
	Service *services.BookingService
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	renterID, _ := identityFromContext(r)

	booking, err := h.Service.CreateBooking(r.Context(), renterID, req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, models.ErrItemNotFound) {
			writeFieldError(w, http.StatusBadRequest, "item_id", "invalid item")
			return
		}
		log.Printf("CreateBooking error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	booking, err := h.Service.ConfirmBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		if errors.Is(err, models.ErrBookingProcessed) {
			writeError(w, http.StatusBadRequest, "booking already processed")
			return
		}
		log.Printf("ConfirmBooking error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": booking.Status})
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	booking, err := h.Service.CancelBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		if errors.Is(err, models.ErrBookingNotCancelable) {
			writeError(w, http.StatusBadRequest, "cannot cancel a completed booking")
			return
		}
		log.Printf("CancelBooking error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	// rejected when it was pending, cancelled when it was confirmed
	writeJSON(w, http.StatusOK, map[string]string{"status": booking.Status})
}

func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID, role := identityFromContext(r)

	bookings, err := h.Service.GetBookings(r.Context(), userID, isStaff(role))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	booking, err := h.Service.GetBookingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get booking")
		return
	}

	// Non-staff identities only see their own bookings.
	userID, role := identityFromContext(r)
	if !isStaff(role) && booking.UserID != userID {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req models.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.Service.UpdateBooking(r.Context(), id, req)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		if errors.Is(err, models.ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	writeJSON(w, http.StatusOK, booking)
}
