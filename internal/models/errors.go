package models

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("models: user not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrItemImageNotFound  = errors.New("item image not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrUserDisabled       = errors.New("account disabled")
	ErrSessionNotFound    = errors.New("session not found")

	// Booking state machine conflicts.
	ErrBookingProcessed     = errors.New("booking already processed")
	ErrBookingNotCancelable = errors.New("cannot cancel a completed booking")

	// One review per booking.
	ErrAlreadyReviewed = errors.New("booking already reviewed")
)

// ValidationError is a field-level input error. Handlers render it as
// {"errors": {field: message}}.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
