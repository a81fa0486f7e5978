package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ChesterTeam/UniMarket/internal/model"
)

// ListingRepository persists listings. Queries are written with ?
// placeholders and rebound per driver so the same implementation serves the
// embedded SQLite store and Postgres.
type ListingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// All returns the complete, current collection. The query engine does its
// own filtering; there is deliberately no pushdown here.
func (r *ListingRepository) All(ctx context.Context) ([]model.Listing, error) {
	var list []model.Listing
	const q = `SELECT * FROM listings ORDER BY created_at ASC, id ASC`
	if err := r.db.SelectContext(ctx, &list, q); err != nil {
		return nil, fmt.Errorf("ListingRepository.All: %w", err)
	}
	return list, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	var l model.Listing
	q := r.db.Rebind(`SELECT * FROM listings WHERE id = ?`)
	if err := r.db.GetContext(ctx, &l, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ListingRepository.GetByID: %w", err)
	}
	return &l, nil
}

// ByUser returns all listings owned by userID, newest first.
func (r *ListingRepository) ByUser(ctx context.Context, userID string) ([]model.Listing, error) {
	var list []model.Listing
	q := r.db.Rebind(`SELECT * FROM listings WHERE seller_id = ? ORDER BY created_at DESC`)
	if err := r.db.SelectContext(ctx, &list, q, userID); err != nil {
		return nil, fmt.Errorf("ListingRepository.ByUser: %w", err)
	}
	return list, nil
}

func (r *ListingRepository) Create(ctx context.Context, l *model.Listing) error {
	const q = `
		INSERT INTO listings
			(id, title, description, price, category, condition,
			 seller_id, seller_name, seller_rating, images, status,
			 created_at, updated_at)
		VALUES
			(:id, :title, :description, :price, :category, :condition,
			 :seller_id, :seller_name, :seller_rating, :images, :status,
			 :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, q, l); err != nil {
		return fmt.Errorf("ListingRepository.Create: %w", err)
	}
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, l *model.Listing) error {
	const q = `
		UPDATE listings SET
			title         = :title,
			description   = :description,
			price         = :price,
			category      = :category,
			condition     = :condition,
			seller_name   = :seller_name,
			seller_rating = :seller_rating,
			images        = :images,
			status        = :status,
			updated_at    = :updated_at
		WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, q, l)
	if err != nil {
		return fmt.Errorf("ListingRepository.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a listing permanently. There is no tombstone.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	q := r.db.Rebind(`DELETE FROM listings WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("ListingRepository.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ListingRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	q := r.db.Rebind(`SELECT COUNT(1) FROM listings WHERE id = ?`)
	if err := r.db.GetContext(ctx, &count, q, id); err != nil {
		return false, fmt.Errorf("ListingRepository.Exists: %w", err)
	}
	return count > 0, nil
}

// UpdateSellerRating rewrites the denormalized rating on every listing a
// seller owns, keeping catalog rows consistent after a review lands.
func (r *ListingRepository) UpdateSellerRating(ctx context.Context, sellerID string, rating float64) error {
	q := r.db.Rebind(`UPDATE listings SET seller_rating = ? WHERE seller_id = ?`)
	if _, err := r.db.ExecContext(ctx, q, rating, sellerID); err != nil {
		return fmt.Errorf("ListingRepository.UpdateSellerRating: %w", err)
	}
	return nil
}
