package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"arendaBack/internal/models"
)

func newBookingRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &BookingRepository{DB: db}, mock
}

func TestUpdateStatusFromWins(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(models.BookingStatusConfirmed, 5, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdateStatusFrom(context.Background(), 5, models.BookingStatusPending, models.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatusFrom returned error: %v", err)
	}
	if !ok {
		t.Error("expected the transition to win")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateStatusFromLoses(t *testing.T) {
	repo, mock := newBookingRepo(t)

	// A racing transition already moved the row; the WHERE clause matches
	// nothing.
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(models.BookingStatusConfirmed, 5, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.UpdateStatusFrom(context.Background(), 5, models.BookingStatusPending, models.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatusFrom returned error: %v", err)
	}
	if ok {
		t.Error("expected the transition to lose")
	}
}

func TestCreateBookingMapsUnknownItem(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

	_, err := repo.CreateBooking(context.Background(), models.Booking{
		ItemID:    99,
		UserID:    7,
		StartDate: time.Now(),
		EndDate:   time.Now().Add(24 * time.Hour),
		Status:    models.BookingStatusPending,
	})
	if !errors.Is(err, models.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateBookingDatesLeavesPriceAlone(t *testing.T) {
	repo, mock := newBookingRepo(t)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	// Only the two dates and the id travel with the UPDATE.
	mock.ExpectExec("UPDATE bookings SET start_date").
		WithArgs(start, end, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "user_id", "start_date", "end_date", "status", "total_price", "created_at"}).
			AddRow(5, 3, 7, start, end, models.BookingStatusPending, 300.00, time.Now()))

	booking, err := repo.UpdateBookingDates(context.Background(), 5, start, end)
	if err != nil {
		t.Fatalf("UpdateBookingDates returned error: %v", err)
	}
	if booking.TotalPrice != 300.00 {
		t.Errorf("total price changed: %v", booking.TotalPrice)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
