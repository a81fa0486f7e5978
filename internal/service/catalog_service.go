package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ChesterTeam/UniMarket/internal/catalog"
	"github.com/ChesterTeam/UniMarket/internal/model"
	"github.com/ChesterTeam/UniMarket/internal/repository"
)

// CatalogService owns listing lifecycle and catalog queries. Every search
// reads the collection wholesale from the store and hands it to the query
// engine; the store never filters.
type CatalogService struct {
	listings *repository.ListingRepository
	users    *repository.UserRepository
}

func NewCatalogService(listings *repository.ListingRepository, users *repository.UserRepository) *CatalogService {
	return &CatalogService{listings: listings, users: users}
}

// Search runs a catalog query against the current collection.
func (s *CatalogService) Search(ctx context.Context, spec catalog.FilterSpec) (*catalog.Result, error) {
	all, err := s.listings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("CatalogService.Search: %w", err)
	}
	return catalog.Query(all, spec)
}

// Suggest returns autocomplete entries for a partial search query.
func (s *CatalogService) Suggest(ctx context.Context, query string, limit int) ([]catalog.Suggestion, error) {
	all, err := s.listings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("CatalogService.Suggest: %w", err)
	}
	return catalog.Suggest(all, query, limit), nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*model.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("CatalogService.Get: %w", err)
	}
	return l, nil
}

// UserListings returns the listings owned by a user.
func (s *CatalogService) UserListings(ctx context.Context, userID string) ([]model.Listing, error) {
	list, err := s.listings.ByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("CatalogService.UserListings: %w", err)
	}
	return list, nil
}

// CreateListingInput carries the caller-supplied fields of a new listing.
type CreateListingInput struct {
	Title       string
	Description string
	Price       int
	Category    string
	Condition   string
	Images      []string
	Status      string
}

// Create validates the input, verifies the seller exists and stores a new
// listing with the seller's name and rating denormalized onto it.
func (s *CatalogService) Create(ctx context.Context, sellerID string, in CreateListingInput) (*model.Listing, error) {
	if err := validateListingInput(&in); err != nil {
		return nil, err
	}

	seller, err := s.users.GetByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: seller %s not found", ErrInvalidInput, sellerID)
		}
		return nil, fmt.Errorf("CatalogService.Create: %w", err)
	}

	now := model.Now()
	l := &model.Listing{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		Condition:    in.Condition,
		SellerID:     seller.ID,
		SellerName:   seller.Name,
		SellerRating: seller.Rating,
		Images:       in.Images,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.listings.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("CatalogService.Create: %w", err)
	}
	return l, nil
}

// UpdateListingInput carries the mutable listing fields. Nil pointers leave
// the stored value untouched.
type UpdateListingInput struct {
	Title       *string
	Description *string
	Price       *int
	Category    *string
	Condition   *string
	Images      []string
	Status      *string
}

// Update applies a partial update to a listing the user owns. Identity and
// ownership are immutable.
func (s *CatalogService) Update(ctx context.Context, userID, id string, in UpdateListingInput) (*model.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("CatalogService.Update: %w", err)
	}
	if l.SellerID != userID {
		return nil, ErrForbidden
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		l.Title = *in.Title
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
		}
		l.Price = *in.Price
	}
	if in.Category != nil {
		if !model.ValidCategory(*in.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *in.Category)
		}
		l.Category = *in.Category
	}
	if in.Condition != nil {
		if !model.ValidCondition(*in.Condition) {
			return nil, fmt.Errorf("%w: unknown condition %q", ErrInvalidInput, *in.Condition)
		}
		l.Condition = *in.Condition
	}
	if in.Images != nil {
		l.Images = in.Images
	}
	if in.Status != nil {
		if !model.ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
		}
		l.Status = *in.Status
	}
	l.UpdatedAt = model.Now()

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("CatalogService.Update: %w", err)
	}
	return l, nil
}

// Delete removes a listing the user owns. Hard delete, no tombstone.
func (s *CatalogService) Delete(ctx context.Context, userID, id string) error {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("CatalogService.Delete: %w", err)
	}
	if l.SellerID != userID {
		return ErrForbidden
	}
	if err := s.listings.Delete(ctx, id); err != nil {
		return fmt.Errorf("CatalogService.Delete: %w", err)
	}
	return nil
}

// RefreshSellerRating re-resolves a listing's denormalized rating from the
// user store, for callers that consider the stored copy stale. A seller who
// no longer exists leaves the listing untouched; orphaned listings are
// tolerated.
func (s *CatalogService) RefreshSellerRating(ctx context.Context, id string) (*model.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("CatalogService.RefreshSellerRating: %w", err)
	}
	seller, err := s.users.GetByID(ctx, l.SellerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return l, nil
		}
		return nil, fmt.Errorf("CatalogService.RefreshSellerRating: %w", err)
	}
	if l.SellerRating == seller.Rating && l.SellerName == seller.Name {
		return l, nil
	}
	l.SellerRating = seller.Rating
	l.SellerName = seller.Name
	l.UpdatedAt = model.Now()
	if err := s.listings.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("CatalogService.RefreshSellerRating: %w", err)
	}
	return l, nil
}

func validateListingInput(in *CreateListingInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if !model.ValidCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
	}
	if !model.ValidCondition(in.Condition) {
		return fmt.Errorf("%w: unknown condition %q", ErrInvalidInput, in.Condition)
	}
	if in.Status == "" {
		in.Status = model.StatusActive
	}
	if !model.ValidStatus(in.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	return nil
}
