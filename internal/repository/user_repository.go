package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ChesterTeam/UniMarket/internal/model"
)

// UserRepository persists users. Users are created at registration and never
// deleted; listings orphaned by out-of-band deletion are tolerated upstream.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	const q = `
		INSERT INTO users
			(id, name, email, password, rating, reviews, avatar,
			 join_date, created_at, updated_at)
		VALUES
			(:id, :name, :email, :password, :rating, :reviews, :avatar,
			 :join_date, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, q, u); err != nil {
		return fmt.Errorf("UserRepository.Create: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	q := r.db.Rebind(`SELECT * FROM users WHERE id = ?`)
	if err := r.db.GetContext(ctx, &u, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UserRepository.GetByID: %w", err)
	}
	return &u, nil
}

// GetByEmail looks a user up by the login key.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	q := r.db.Rebind(`SELECT * FROM users WHERE email = ?`)
	if err := r.db.GetContext(ctx, &u, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UserRepository.GetByEmail: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) All(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY created_at ASC`); err != nil {
		return nil, fmt.Errorf("UserRepository.All: %w", err)
	}
	return users, nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatar string) error {
	q := r.db.Rebind(`UPDATE users SET avatar = ?, updated_at = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, q, avatar, model.Now(), id)
	if err != nil {
		return fmt.Errorf("UserRepository.UpdateAvatar: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRating stores a recalculated aggregate rating and review count.
func (r *UserRepository) UpdateRating(ctx context.Context, id string, rating float64, reviews int) error {
	q := r.db.Rebind(`UPDATE users SET rating = ?, reviews = ?, updated_at = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, q, rating, reviews, model.Now(), id)
	if err != nil {
		return fmt.Errorf("UserRepository.UpdateRating: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
