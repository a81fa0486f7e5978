package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChesterTeam/UniMarket/internal/catalog"
	"github.com/ChesterTeam/UniMarket/internal/model"
	"github.com/ChesterTeam/UniMarket/internal/repository"
)

func TestCreateListingDenormalizesSeller(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.listings, env.users)
	ctx := context.Background()

	seller := env.addUser(t, "u1", "Anna", 4.6)

	l, err := svc.Create(ctx, seller.ID, CreateListingInput{
		Title:     "Calculus Textbook",
		Price:     500,
		Category:  model.CategoryTextbooks,
		Condition: model.ConditionExcellent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Anna", l.SellerName)
	assert.Equal(t, 4.6, l.SellerRating)
	assert.Equal(t, model.StatusActive, l.Status)

	stored, err := env.listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.SellerRating, stored.SellerRating)
}

func TestCreateListingValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.listings, env.users)
	ctx := context.Background()
	env.addUser(t, "u1", "Anna", 0)

	cases := []struct {
		name string
		in   CreateListingInput
	}{
		{"empty title", CreateListingInput{Title: "  ", Price: 1, Category: model.CategoryTextbooks, Condition: model.ConditionGood}},
		{"negative price", CreateListingInput{Title: "X", Price: -1, Category: model.CategoryTextbooks, Condition: model.ConditionGood}},
		{"unknown category", CreateListingInput{Title: "X", Price: 1, Category: "vehicles", Condition: model.ConditionGood}},
		{"unknown condition", CreateListingInput{Title: "X", Price: 1, Category: model.CategoryTextbooks, Condition: "mint"}},
		{"unknown status", CreateListingInput{Title: "X", Price: 1, Category: model.CategoryTextbooks, Condition: model.ConditionGood, Status: "pending"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "u1", tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Unknown seller is an input error, not an internal one.
	_, err := svc.Create(ctx, "ghost", CreateListingInput{
		Title: "X", Price: 1, Category: model.CategoryTextbooks, Condition: model.ConditionGood,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateListingOwnership(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.listings, env.users)
	ctx := context.Background()

	env.addUser(t, "u1", "Anna", 0)
	l := env.addListing(t, "l1", "u1", 500)

	newPrice := 450
	_, err := svc.Update(ctx, "intruder", l.ID, UpdateListingInput{Price: &newPrice})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(ctx, "u1", l.ID, UpdateListingInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 450, updated.Price)
	assert.Equal(t, "u1", updated.SellerID)
}

func TestUpdateListingPartialFields(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.listings, env.users)
	ctx := context.Background()

	env.addUser(t, "u1", "Anna", 0)
	l := env.addListing(t, "l1", "u1", 500)

	status := model.StatusSold
	updated, err := svc.Update(ctx, "u1", l.ID, UpdateListingInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.StatusSold, updated.Status)
	// Untouched fields survive.
	assert.Equal(t, l.Title, updated.Title)
	assert.Equal(t, 500, updated.Price)

	bad := "pending"
	_, err = svc.Update(ctx, "u1", l.ID, UpdateListingInput{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteListingOwnership(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.listings, env.users)
	ctx := context.Background()

	env.addUser(t, "u1", "Anna", 0)
	l := env.addListing(t, "l1", "u1", 500)

	assert.ErrorIs(t, svc.Delete(ctx, "intruder", l.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, "u1", l.ID))

	err := svc.Delete(ctx, "u1", l.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSearchRunsQueryEngine(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.listings, env.users)
	ctx := context.Background()

	env.addUser(t, "u1", "Anna", 0)
	env.addListing(t, "l1", "u1", 100)
	env.addListing(t, "l2", "u1", 300)
	env.addListing(t, "l3", "u1", 200)

	min := 150
	res, err := svc.Search(ctx, catalog.FilterSpec{
		Category: "all",
		MinPrice: &min,
		Sort:     catalog.SortPriceAsc,
		Page:     1,
		PageSize: catalog.DefaultPageSize,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "l3", res.Items[0].ID)
	assert.Equal(t, "l2", res.Items[1].ID)
}

func TestRefreshSellerRating(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.listings, env.users)
	ctx := context.Background()

	env.addUser(t, "u1", "Anna", 4.0)
	l := env.addListing(t, "l1", "u1", 500)
	assert.Zero(t, l.SellerRating)

	refreshed, err := svc.RefreshSellerRating(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, refreshed.SellerRating)
	assert.Equal(t, "Anna", refreshed.SellerName)

	// A listing whose seller is gone stays as-is.
	orphan := env.addListing(t, "l2", "ghost", 100)
	got, err := svc.RefreshSellerRating(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, orphan.SellerRating, got.SellerRating)
}
