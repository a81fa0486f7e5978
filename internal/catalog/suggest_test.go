package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChesterTeam/UniMarket/internal/model"
)

func TestSuggestMatchesCategoriesAndTitles(t *testing.T) {
	listings := []model.Listing{
		{Title: "Chemistry Textbook Set", Status: model.StatusActive},
		{Title: "Textbook Stand", Status: model.StatusActive},
		{Title: "Old Textbook", Status: model.StatusSold},
	}

	got := Suggest(listings, "textbook", 0)
	texts := []string{}
	for _, s := range got {
		texts = append(texts, s.Text)
	}
	// Category label first, then active titles; sold listings are skipped.
	assert.Equal(t, []string{"textbooks", "Chemistry Textbook Set", "Textbook Stand"}, texts)
	assert.Equal(t, "category", got[0].Type)
	assert.Equal(t, "listing", got[1].Type)
}

func TestSuggestDeduplicatesAndCaps(t *testing.T) {
	listings := make([]model.Listing, 0, 10)
	for i := 0; i < 10; i++ {
		listings = append(listings,
			model.Listing{Title: "Lamp", Status: model.StatusActive},
			model.Listing{Title: "Desk Lamp", Status: model.StatusActive},
		)
	}
	got := Suggest(listings, "lamp", 0)
	assert.Len(t, got, 2)

	got = Suggest(listings, "lamp", 1)
	assert.Len(t, got, 1)
}

func TestSuggestEmptyQuery(t *testing.T) {
	assert.Nil(t, Suggest(nil, "  ", 0))
}
