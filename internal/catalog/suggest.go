package catalog

import (
	"strings"

	"github.com/ChesterTeam/UniMarket/internal/model"
)

// DefaultSuggestionLimit caps autocomplete responses, matching the six
// entries the search dropdown renders.
const DefaultSuggestionLimit = 6

// Suggestion is one autocomplete entry. Type distinguishes category labels
// from live listing titles.
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

var categoryLabels = []string{
	model.CategoryTextbooks,
	model.CategorySupplies,
	model.CategoryRental,
	model.CategoryServices,
}

// Suggest returns up to limit search suggestions for query: category labels
// first, then titles of active listings, matched case-insensitively as
// substrings and deduplicated. An empty query yields nothing.
func Suggest(listings []model.Listing, query string, limit int) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	q := strings.ToLower(query)

	var out []Suggestion
	seen := make(map[string]bool)

	for _, c := range categoryLabels {
		if len(out) >= limit {
			return out
		}
		if strings.Contains(c, q) && !seen[c] {
			seen[c] = true
			out = append(out, Suggestion{Text: c, Type: "category"})
		}
	}
	for _, l := range listings {
		if len(out) >= limit {
			return out
		}
		if l.Status != "" && l.Status != model.StatusActive {
			continue
		}
		key := strings.ToLower(l.Title)
		if strings.Contains(key, q) && !seen[key] {
			seen[key] = true
			out = append(out, Suggestion{Text: l.Title, Type: "listing"})
		}
	}
	return out
}
