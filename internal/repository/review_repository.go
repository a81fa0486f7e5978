package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ChesterTeam/UniMarket/internal/model"
)

// ReviewRepository persists seller reviews.
type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Insert(ctx context.Context, rev *model.Review) error {
	const q = `
		INSERT INTO reviews
			(id, listing_id, seller_id, reviewer_id, rating, comment, created_at)
		VALUES
			(:id, :listing_id, :seller_id, :reviewer_id, :rating, :comment, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, q, rev); err != nil {
		return fmt.Errorf("ReviewRepository.Insert: %w", err)
	}
	return nil
}

// ByListing returns all reviews left on a listing, newest first.
func (r *ReviewRepository) ByListing(ctx context.Context, listingID string) ([]model.Review, error) {
	var reviews []model.Review
	q := r.db.Rebind(`
		SELECT * FROM reviews WHERE listing_id = ?
		ORDER BY created_at DESC, id DESC`)
	if err := r.db.SelectContext(ctx, &reviews, q, listingID); err != nil {
		return nil, fmt.Errorf("ReviewRepository.ByListing: %w", err)
	}
	return reviews, nil
}

// SellerAggregate recomputes the average rating and review count for a
// seller across all their listings.
func (r *ReviewRepository) SellerAggregate(ctx context.Context, sellerID string) (float64, int, error) {
	var agg struct {
		Avg   float64 `db:"avg_rating"`
		Count int     `db:"review_count"`
	}
	q := r.db.Rebind(`
		SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(1) AS review_count
		FROM reviews WHERE seller_id = ?`)
	if err := r.db.GetContext(ctx, &agg, q, sellerID); err != nil {
		return 0, 0, fmt.Errorf("ReviewRepository.SellerAggregate: %w", err)
	}
	return agg.Avg, agg.Count, nil
}
