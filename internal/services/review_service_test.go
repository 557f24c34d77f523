package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
)

func newReviewService(t *testing.T) (*ReviewService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := &ReviewService{
		ReviewRepo:  &repositories.ReviewRepository{DB: db},
		BookingRepo: &repositories.BookingRepository{DB: db},
	}
	return svc, mock
}

func TestCreateReviewRatingBounds(t *testing.T) {
	svc, mock := newReviewService(t)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.CreateReview(context.Background(), models.Review{BookingID: 5, Rating: rating})

		var validationErr *models.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error for rating %d, got %v", rating, err)
		}
		if validationErr.Field != "rating" {
			t.Errorf("expected rating field error, got %q", validationErr.Field)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database access: %v", err)
	}
}

func TestCreateReviewAcceptsBoundaryRatings(t *testing.T) {
	svc, mock := newReviewService(t)

	for i, rating := range []int{1, 5} {
		mock.ExpectExec("INSERT INTO reviews").
			WithArgs(5+i, rating, "", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))

		review, err := svc.CreateReview(context.Background(), models.Review{BookingID: 5 + i, Rating: rating})
		if err != nil {
			t.Fatalf("CreateReview(%d) returned error: %v", rating, err)
		}
		if review.Rating != rating {
			t.Errorf("unexpected rating %d", review.Rating)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateReviewDuplicateBooking(t *testing.T) {
	svc, mock := newReviewService(t)

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(5, 4, "great", sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '5' for key 'reviews.booking_id'"})

	_, err := svc.CreateReview(context.Background(), models.Review{BookingID: 5, Rating: 4, Comment: "great"})
	if !errors.Is(err, models.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}

func TestCreateReviewUnknownBooking(t *testing.T) {
	svc, mock := newReviewService(t)

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(99, 4, "", sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

	_, err := svc.CreateReview(context.Background(), models.Review{BookingID: 99, Rating: 4})
	if !errors.Is(err, models.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestGetReviewByIDScopedToOwnBooking(t *testing.T) {
	svc, mock := newReviewService(t)

	mock.ExpectQuery("SELECT id, booking_id, rating, comment, created_at FROM reviews WHERE id").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "rating", "comment", "created_at"}).
			AddRow(2, 5, 4, "great", time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "user_id", "start_date", "end_date", "status", "total_price", "created_at"}).
			AddRow(5, 3, 8, time.Now(), time.Now().Add(24*time.Hour), models.BookingStatusCompleted, 300.00, time.Now()))

	// The booking belongs to user 8; user 7 must not see the review.
	_, err := svc.GetReviewByID(context.Background(), 2, 7)
	if !errors.Is(err, models.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound for foreign booking, got %v", err)
	}
}

func TestGetReviewsScopedToRenter(t *testing.T) {
	svc, mock := newReviewService(t)

	mock.ExpectQuery("SELECT (.+) FROM reviews r").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "rating", "comment", "created_at"}).
			AddRow(2, 5, 4, "great", time.Now()))

	reviews, err := svc.GetReviews(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetReviews returned error: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
