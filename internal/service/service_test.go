package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ChesterTeam/UniMarket/internal/model"
	"github.com/ChesterTeam/UniMarket/internal/repository"
)

type testEnv struct {
	users    *repository.UserRepository
	listings *repository.ListingRepository
	messages *repository.MessageRepository
	reviews  *repository.ReviewRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repository.Open("", ":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &testEnv{
		users:    repository.NewUserRepository(db),
		listings: repository.NewListingRepository(db),
		messages: repository.NewMessageRepository(db),
		reviews:  repository.NewReviewRepository(db),
	}
}

func (e *testEnv) addUser(t *testing.T, id, name string, rating float64) *model.User {
	t.Helper()
	now := model.Now()
	u := &model.User{
		ID:        id,
		Name:      name,
		Email:     id + "@example.com",
		Password:  "password123",
		Rating:    rating,
		JoinDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) addListing(t *testing.T, id, sellerID string, price int) *model.Listing {
	t.Helper()
	now := model.Now()
	l := &model.Listing{
		ID:        id,
		Title:     "Listing " + id,
		Price:     price,
		Category:  model.CategoryTextbooks,
		Condition: model.ConditionGood,
		SellerID:  sellerID,
		Status:    model.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, e.listings.Create(context.Background(), l))
	return l
}
