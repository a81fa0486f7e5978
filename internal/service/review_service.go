package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ChesterTeam/UniMarket/internal/model"
	"github.com/ChesterTeam/UniMarket/internal/repository"
)

// ReviewService contains business logic for seller reviews. Creating a
// review recomputes the seller's aggregate rating and pushes the new value
// into the denormalized copies the catalog reads.
type ReviewService struct {
	reviews  *repository.ReviewRepository
	listings *repository.ListingRepository
	users    *repository.UserRepository
}

func NewReviewService(
	reviews *repository.ReviewRepository,
	listings *repository.ListingRepository,
	users *repository.UserRepository,
) *ReviewService {
	return &ReviewService{reviews: reviews, listings: listings, users: users}
}

// CreateReview stores a review for the seller of the given listing and
// refreshes the seller's rating everywhere it is denormalized.
func (s *ReviewService) CreateReview(ctx context.Context, reviewerID, listingID string, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.CreateReview: %w", err)
	}
	if listing.SellerID == reviewerID {
		return nil, fmt.Errorf("%w: cannot review your own listing", ErrInvalidInput)
	}

	rev := &model.Review{
		ID:         uuid.NewString(),
		ListingID:  listingID,
		SellerID:   listing.SellerID,
		ReviewerID: reviewerID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  model.Now(),
	}
	if err := s.reviews.Insert(ctx, rev); err != nil {
		return nil, fmt.Errorf("ReviewService.CreateReview: %w", err)
	}

	avg, count, err := s.reviews.SellerAggregate(ctx, listing.SellerID)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.CreateReview: %w", err)
	}
	if err := s.users.UpdateRating(ctx, listing.SellerID, avg, count); err != nil {
		return nil, fmt.Errorf("ReviewService.CreateReview: %w", err)
	}
	if err := s.listings.UpdateSellerRating(ctx, listing.SellerID, avg); err != nil {
		return nil, fmt.Errorf("ReviewService.CreateReview: %w", err)
	}
	return rev, nil
}

// ListReviews returns the reviews left on a listing, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, listingID string) ([]model.Review, error) {
	exists, err := s.listings.Exists(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.ListReviews: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("ReviewService.ListReviews: %w", repository.ErrNotFound)
	}
	reviews, err := s.reviews.ByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.ListReviews: %w", err)
	}
	return reviews, nil
}
