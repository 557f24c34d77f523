package repositories

import (
	"context"
	"database/sql"
	"time"

	"arendaBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	query := `INSERT INTO reviews (booking_id, rating, comment, created_at) VALUES (?, ?, ?, ?)`
	review.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query, review.BookingID, review.Rating, review.Comment, review.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return models.Review{}, models.ErrAlreadyReviewed
		}
		if isForeignKeyConstraintError(err) {
			return models.Review{}, models.ErrBookingNotFound
		}
		return models.Review{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}
	review.ID = int(id)
	return review, nil
}

func (r *ReviewRepository) GetReviewByID(ctx context.Context, id int) (models.Review, error) {
	var review models.Review
	query := `SELECT id, booking_id, rating, comment, created_at FROM reviews WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&review.ID, &review.BookingID, &review.Rating, &review.Comment, &review.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Review{}, models.ErrReviewNotFound
	}
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// GetReviewsByRenter returns reviews attached to bookings created by the
// given user.
func (r *ReviewRepository) GetReviewsByRenter(ctx context.Context, userID int) ([]models.Review, error) {
	query := `
        SELECT r.id, r.booking_id, r.rating, r.comment, r.created_at
        FROM reviews r
        JOIN bookings b ON r.booking_id = b.id
        WHERE b.user_id = ?
        ORDER BY r.created_at DESC
    `
	return r.queryReviews(ctx, query, userID)
}

func (r *ReviewRepository) queryReviews(ctx context.Context, query string, args ...interface{}) ([]models.Review, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		err := rows.Scan(&review.ID, &review.BookingID, &review.Rating, &review.Comment, &review.CreatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	query := `UPDATE reviews SET rating = ?, comment = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, review.Rating, review.Comment, review.ID)
	if err != nil {
		return models.Review{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Review{}, err
	}
	if rowsAffected == 0 {
		return models.Review{}, models.ErrReviewNotFound
	}
	return r.GetReviewByID(ctx, review.ID)
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}
