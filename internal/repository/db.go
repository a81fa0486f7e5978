package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Open connects to the backing database. When databaseURL is set a Postgres
// connection is used; otherwise an embedded SQLite file at sqlitePath serves
// as the local store. The schema is created on first open.
func Open(databaseURL, sqlitePath string, log *zap.Logger) (*sqlx.DB, error) {
	if databaseURL != "" {
		db, err := sqlx.Connect("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("repository.Open: postgres connect: %w", err)
		}
		log.Info("connected to postgres")
		if err := migrate(db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}

	if dir := filepath.Dir(sqlitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("repository.Open: create data dir: %w", err)
		}
	}
	db, err := sqlx.Connect("sqlite3", sqlitePath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("repository.Open: sqlite connect: %w", err)
	}
	// Single writer connection; WAL keeps readers unblocked during writes.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Warn("failed to enable WAL", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		log.Warn("failed to set synchronous=NORMAL", zap.Error(err))
	}
	log.Info("opened sqlite store", zap.String("path", sqlitePath))
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		rating     REAL NOT NULL DEFAULT 0,
		reviews    INTEGER NOT NULL DEFAULT 0,
		avatar     TEXT NOT NULL DEFAULT '',
		join_date  TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS listings (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		price         INTEGER NOT NULL,
		category      TEXT NOT NULL,
		condition     TEXT NOT NULL,
		seller_id     TEXT NOT NULL,
		seller_name   TEXT NOT NULL DEFAULT '',
		seller_rating REAL NOT NULL DEFAULT 0,
		images        TEXT NOT NULL DEFAULT '[]',
		status        TEXT NOT NULL DEFAULT 'active',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_seller ON listings (seller_id)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id            TEXT PRIMARY KEY,
		listing_id    TEXT NOT NULL,
		sender_id     TEXT NOT NULL,
		receiver_id   TEXT NOT NULL,
		body          TEXT NOT NULL,
		is_read       BOOLEAN NOT NULL DEFAULT FALSE,
		is_auto_reply BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_listing ON messages (listing_id)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id          TEXT PRIMARY KEY,
		listing_id  TEXT NOT NULL,
		seller_id   TEXT NOT NULL,
		reviewer_id TEXT NOT NULL,
		rating      INTEGER NOT NULL,
		comment     TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_seller ON reviews (seller_id)`,
}

func migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("repository.migrate: %w", err)
		}
	}
	return nil
}

// Seed inserts the initial users and sample listings on an empty database,
// mirroring the catalog the browser client shipped with. Existing data is
// never touched.
func Seed(ctx context.Context, db *sqlx.DB, log *zap.Logger) error {
	var users int
	if err := db.GetContext(ctx, &users, "SELECT COUNT(1) FROM users"); err != nil {
		return fmt.Errorf("repository.Seed: count users: %w", err)
	}
	if users > 0 {
		return nil
	}

	userRepo := NewUserRepository(db)
	listingRepo := NewListingRepository(db)
	for _, u := range seedUsers {
		u := u
		if err := userRepo.Create(ctx, &u); err != nil {
			return fmt.Errorf("repository.Seed: %w", err)
		}
	}
	for _, l := range seedListings {
		l := l
		if err := listingRepo.Create(ctx, &l); err != nil {
			return fmt.Errorf("repository.Seed: %w", err)
		}
	}
	log.Info("seeded initial data",
		zap.Int("users", len(seedUsers)),
		zap.Int("listings", len(seedListings)))
	return nil
}
