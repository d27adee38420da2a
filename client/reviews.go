package client

import (
	"context"

	"camerahive/models"
)

func (s *Session) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	var out models.Review
	resp, err := s.request().SetContext(ctx).SetBody(review).SetResult(&out).Post("/reviews")
	if err := normalize(resp, err); err != nil {
		return models.Review{}, err
	}
	return out, nil
}

func (s *Session) RentalReviews(ctx context.Context, rentalID string) ([]models.Review, error) {
	var reviews []models.Review
	resp, err := s.request().SetContext(ctx).SetResult(&reviews).Get("/reviews/rental/" + rentalID)
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AllReviews returns every review; admin only on the API side.
func (s *Session) AllReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	resp, err := s.request().SetContext(ctx).SetResult(&reviews).Get("/reviews")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return reviews, nil
}
