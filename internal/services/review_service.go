package services

import (
	"context"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
)

type ReviewService struct {
	ReviewRepo  *repositories.ReviewRepository
	BookingRepo *repositories.BookingRepository
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return models.NewValidationError("rating", "rating must be between 1 and 5")
	}
	return nil
}

func (s *ReviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if err := validateRating(review.Rating); err != nil {
		return models.Review{}, err
	}
	return s.ReviewRepo.CreateReview(ctx, review)
}

// GetReviews lists reviews on the caller's own bookings. Nobody, staff
// included, reads reviews outside their own bookings through this surface.
func (s *ReviewService) GetReviews(ctx context.Context, userID int) ([]models.Review, error) {
	return s.ReviewRepo.GetReviewsByRenter(ctx, userID)
}

// GetReviewByID hides reviews on other identities' bookings behind a
// not-found, the same shape a scoped queryset gives.
func (s *ReviewService) GetReviewByID(ctx context.Context, id, userID int) (models.Review, error) {
	review, err := s.ReviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return models.Review{}, err
	}

	booking, err := s.BookingRepo.GetBookingByID(ctx, review.BookingID)
	if err != nil {
		return models.Review{}, err
	}
	if booking.UserID != userID {
		return models.Review{}, models.ErrReviewNotFound
	}
	return review, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if err := validateRating(review.Rating); err != nil {
		return models.Review{}, err
	}
	return s.ReviewRepo.UpdateReview(ctx, review)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id int) error {
	return s.ReviewRepo.DeleteReview(ctx, id)
}
