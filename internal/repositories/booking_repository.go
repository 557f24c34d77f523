package repositories

import (
	"context"
	"database/sql"
	"time"

	"arendaBack/internal/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	query := `
        INSERT INTO bookings (item_id, user_id, start_date, end_date, status, total_price, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	booking.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		booking.ItemID, booking.UserID, booking.StartDate, booking.EndDate,
		booking.Status, booking.TotalPrice, booking.CreatedAt,
	)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			return models.Booking{}, models.ErrItemNotFound
		}
		return models.Booking{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	booking.ID = int(id)
	return booking, nil
}

func (r *BookingRepository) GetBookingByID(ctx context.Context, id int) (models.Booking, error) {
	var booking models.Booking
	query := `
        SELECT id, item_id, user_id, start_date, end_date, status, total_price, created_at
        FROM bookings
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&booking.ID, &booking.ItemID, &booking.UserID, &booking.StartDate,
		&booking.EndDate, &booking.Status, &booking.TotalPrice, &booking.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Booking{}, models.ErrBookingNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (r *BookingRepository) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	query := `
        SELECT id, item_id, user_id, start_date, end_date, status, total_price, created_at
        FROM bookings
        ORDER BY created_at DESC
    `
	return r.queryBookings(ctx, query)
}

func (r *BookingRepository) GetBookingsByUserID(ctx context.Context, userID int) ([]models.Booking, error) {
	query := `
        SELECT id, item_id, user_id, start_date, end_date, status, total_price, created_at
        FROM bookings
        WHERE user_id = ?
        ORDER BY created_at DESC
    `
	return r.queryBookings(ctx, query, userID)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err := rows.Scan(
			&booking.ID, &booking.ItemID, &booking.UserID, &booking.StartDate,
			&booking.EndDate, &booking.Status, &booking.TotalPrice, &booking.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// UpdateStatusFrom flips the booking status in a single compare-and-set
// statement. Two racing transitions cannot both match the WHERE clause, so
// exactly one of them wins.
func (r *BookingRepository) UpdateStatusFrom(ctx context.Context, id int, from, to string) (bool, error) {
	query := `UPDATE bookings SET status = ? WHERE id = ? AND status = ?`
	result, err := r.DB.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// UpdateBookingDates changes the date range only. Status and total_price are
// deliberately untouched: the price is a snapshot taken at creation.
func (r *BookingRepository) UpdateBookingDates(ctx context.Context, id int, startDate, endDate time.Time) (models.Booking, error) {
	query := `UPDATE bookings SET start_date = ?, end_date = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, startDate, endDate, id)
	if err != nil {
		return models.Booking{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Booking{}, err
	}
	if rowsAffected == 0 {
		return models.Booking{}, models.ErrBookingNotFound
	}
	return r.GetBookingByID(ctx, id)
}
