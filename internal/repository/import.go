package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ChesterTeam/UniMarket/internal/model"
)

// legacyListing covers both historical shapes the browser client wrote:
// the newer records carry top-level userId/userName/userRating, older ones
// nest the same data under a seller object. Some dumps contain both.
type legacyListing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *int     `json:"price"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	UserID      string   `json:"userId"`
	UserName    string   `json:"userName"`
	UserRating  *float64 `json:"userRating"`
	Seller      *struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Rating *float64 `json:"rating"`
	} `json:"seller"`
	Images    []string `json:"images"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// ImportResult reports what an import run did.
type ImportResult struct {
	Imported int
	Skipped  []string
}

// Import ingests a browser localStorage listing dump (a JSON array),
// normalizes each record into the canonical shape and inserts it. Records
// missing an id, title or price, or carrying an unparsable createdAt, are
// rejected here so malformed data never reaches the query engine. Records
// whose id already exists are skipped.
func (r *ListingRepository) Import(ctx context.Context, rd io.Reader) (*ImportResult, error) {
	var raw []legacyListing
	if err := json.NewDecoder(rd).Decode(&raw); err != nil {
		return nil, fmt.Errorf("ListingRepository.Import: decode: %w", err)
	}

	res := &ImportResult{}
	for i, rec := range raw {
		l, reason := normalizeLegacy(&rec)
		if reason != "" {
			res.Skipped = append(res.Skipped, fmt.Sprintf("record %d (%s): %s", i, rec.ID, reason))
			continue
		}
		exists, err := r.Exists(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("ListingRepository.Import: %w", err)
		}
		if exists {
			res.Skipped = append(res.Skipped, fmt.Sprintf("record %d (%s): duplicate id", i, rec.ID))
			continue
		}
		if err := r.Create(ctx, l); err != nil {
			return nil, fmt.Errorf("ListingRepository.Import: %w", err)
		}
		res.Imported++
	}
	return res, nil
}

// normalizeLegacy resolves the two historical field layouts into one
// canonical listing. Ownership prefers the top-level userId, the rating
// prefers the nested seller.rating; both mirror the precedence the browser
// client's lookup chains used.
func normalizeLegacy(rec *legacyListing) (*model.Listing, string) {
	if rec.ID == "" {
		return nil, "missing id"
	}
	if rec.Title == "" {
		return nil, "missing title"
	}
	if rec.Price == nil {
		return nil, "missing price"
	}
	if *rec.Price < 0 {
		return nil, "negative price"
	}

	sellerID := rec.UserID
	sellerName := rec.UserName
	if rec.Seller != nil {
		if sellerID == "" {
			sellerID = rec.Seller.ID
		}
		if sellerName == "" {
			sellerName = rec.Seller.Name
		}
	}
	if sellerID == "" {
		return nil, "missing seller reference"
	}

	var rating float64
	switch {
	case rec.Seller != nil && rec.Seller.Rating != nil:
		rating = *rec.Seller.Rating
	case rec.UserRating != nil:
		rating = *rec.UserRating
	}

	createdAt := rec.CreatedAt
	if createdAt == "" {
		return nil, "missing createdAt"
	}
	if _, err := model.ParseTime(createdAt); err != nil {
		return nil, "unparsable createdAt"
	}
	updatedAt := rec.UpdatedAt
	if updatedAt == "" {
		updatedAt = createdAt
	} else if _, err := model.ParseTime(updatedAt); err != nil {
		return nil, "unparsable updatedAt"
	}

	status := rec.Status
	if status == "" {
		status = model.StatusActive
	}
	if !model.ValidStatus(status) {
		return nil, "unknown status"
	}

	return &model.Listing{
		ID:           rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		Price:        *rec.Price,
		Category:     rec.Category,
		Condition:    rec.Condition,
		SellerID:     sellerID,
		SellerName:   sellerName,
		SellerRating: rating,
		Images:       rec.Images,
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, ""
}
