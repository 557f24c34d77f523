package services

import (
	"context"
	"time"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
)

type BookingService struct {
	BookingRepo *repositories.BookingRepository
	ItemRepo    *repositories.ItemRepository
}

// parseBookingDates validates the date pair of a booking request. The end
// date must be strictly after the start date; equal dates are rejected.
func parseBookingDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(models.BookingDateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, models.NewValidationError("start_date", "invalid date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(models.BookingDateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, models.NewValidationError("end_date", "invalid date, expected YYYY-MM-DD")
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, models.NewValidationError("end_date", "end date must be after start date")
	}
	return start, end, nil
}

// CreateBooking validates the date range, binds the renter to the
// authenticated identity and persists the booking in the pending state.
// When the client did not supply a total price, it is derived here, once,
// from the item's current price per day: a snapshot that later item price
// changes never touch. No availability check is made against other bookings
// of the same item.
func (s *BookingService) CreateBooking(ctx context.Context, renterID int, req models.CreateBookingRequest) (models.Booking, error) {
	start, end, err := parseBookingDates(req.StartDate, req.EndDate)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		ItemID:    req.ItemID,
		UserID:    renterID,
		StartDate: start,
		EndDate:   end,
		Status:    models.BookingStatusPending,
	}

	if req.TotalPrice != nil {
		booking.TotalPrice = *req.TotalPrice
	} else {
		item, err := s.ItemRepo.GetItemByID(ctx, req.ItemID)
		if err != nil {
			return models.Booking{}, err
		}
		days := int(end.Sub(start) / (24 * time.Hour))
		booking.TotalPrice = item.PricePerDay * float64(days)
	}

	return s.BookingRepo.CreateBooking(ctx, booking)
}

// ConfirmBooking moves a pending booking to confirmed. Any other current
// status is a conflict and leaves the booking untouched.
func (s *BookingService) ConfirmBooking(ctx context.Context, id int) (models.Booking, error) {
	ok, err := s.BookingRepo.UpdateStatusFrom(ctx, id, models.BookingStatusPending, models.BookingStatusConfirmed)
	if err != nil {
		return models.Booking{}, err
	}
	if ok {
		return s.BookingRepo.GetBookingByID(ctx, id)
	}

	// The CAS missed: either the booking does not exist or it already left
	// the pending state.
	if _, err := s.BookingRepo.GetBookingByID(ctx, id); err != nil {
		return models.Booking{}, err
	}
	return models.Booking{}, models.ErrBookingProcessed
}

// CancelBooking rejects a pending booking or cancels a confirmed one.
// Terminal states stay as they are and report a conflict.
func (s *BookingService) CancelBooking(ctx context.Context, id int) (models.Booking, error) {
	ok, err := s.BookingRepo.UpdateStatusFrom(ctx, id, models.BookingStatusPending, models.BookingStatusRejected)
	if err != nil {
		return models.Booking{}, err
	}
	if ok {
		return s.BookingRepo.GetBookingByID(ctx, id)
	}

	ok, err = s.BookingRepo.UpdateStatusFrom(ctx, id, models.BookingStatusConfirmed, models.BookingStatusCancelled)
	if err != nil {
		return models.Booking{}, err
	}
	if ok {
		return s.BookingRepo.GetBookingByID(ctx, id)
	}

	if _, err := s.BookingRepo.GetBookingByID(ctx, id); err != nil {
		return models.Booking{}, err
	}
	return models.Booking{}, models.ErrBookingNotCancelable
}

// GetBookings returns every booking for staff and only the caller's own
// bookings for everybody else.
func (s *BookingService) GetBookings(ctx context.Context, userID int, staff bool) ([]models.Booking, error) {
	if staff {
		return s.BookingRepo.GetAllBookings(ctx)
	}
	return s.BookingRepo.GetBookingsByUserID(ctx, userID)
}

func (s *BookingService) GetBookingByID(ctx context.Context, id int) (models.Booking, error) {
	return s.BookingRepo.GetBookingByID(ctx, id)
}

// UpdateBooking edits the date range. The total price is never recomputed
// here: it stays the snapshot taken at creation.
func (s *BookingService) UpdateBooking(ctx context.Context, id int, req models.UpdateBookingRequest) (models.Booking, error) {
	start, end, err := parseBookingDates(req.StartDate, req.EndDate)
	if err != nil {
		return models.Booking{}, err
	}
	return s.BookingRepo.UpdateBookingDates(ctx, id, start, end)
}
