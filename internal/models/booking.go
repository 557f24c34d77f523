package models

import "time"

// Booking statuses. pending is the initial state; rejected, cancelled and
// completed are terminal. Nothing in the API moves a booking to completed.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

const BookingDateLayout = "2006-01-02"

type Booking struct {
	ID         int       `json:"id"`
	ItemID     int       `json:"item_id"`
	UserID     int       `json:"user_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateBookingRequest struct {
	ItemID     int      `json:"item_id"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	TotalPrice *float64 `json:"total_price"`
}

type UpdateBookingRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
