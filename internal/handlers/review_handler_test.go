package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
	"arendaBack/internal/services"
)

func newReviewHandler(t *testing.T) (*ReviewHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	handler := &ReviewHandler{
		Service: &services.ReviewService{
			ReviewRepo:  &repositories.ReviewRepository{DB: db},
			BookingRepo: &repositories.BookingRepository{DB: db},
		},
	}
	return handler, mock
}

func TestGetReviewsScopedForEveryRole(t *testing.T) {
	for _, role := range []string{"user", "admin"} {
		t.Run(role, func(t *testing.T) {
			handler, mock := newReviewHandler(t)

			// The renter-filtered query runs regardless of role.
			mock.ExpectQuery("SELECT (.+) FROM reviews r").
				WithArgs(7).
				WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "rating", "comment", "created_at"}).
					AddRow(2, 5, 4, "great", time.Now()))

			req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
			req = withIdentity(req, 7, role)
			rec := httptest.NewRecorder()

			handler.GetReviews(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("review list was not scoped to the caller: %v", err)
			}
		})
	}
}

func TestGetReviewByIDHidesForeignBookingFromAdmin(t *testing.T) {
	handler, mock := newReviewHandler(t)

	mock.ExpectQuery("SELECT id, booking_id, rating, comment, created_at FROM reviews WHERE id").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "rating", "comment", "created_at"}).
			AddRow(2, 5, 4, "great", time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "user_id", "start_date", "end_date", "status", "total_price", "created_at"}).
			AddRow(5, 3, 8, time.Now(), time.Now().Add(24*time.Hour), models.BookingStatusCompleted, 300.00, time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/reviews/2?:id=2", nil)
	req = withIdentity(req, 7, "admin")
	rec := httptest.NewRecorder()

	handler.GetReviewByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a review on a foreign booking, got %d: %s", rec.Code, rec.Body.String())
	}
}
