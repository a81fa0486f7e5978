// Package catalog implements the query engine for the listing catalog:
// a pure filter/sort/paginate pipeline over an in-memory collection.
// It replaces the three near-duplicate filter implementations the browser
// client carried (catalog controller, storage search, simulated API) with
// one canonical set of rules.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ChesterTeam/UniMarket/internal/model"
)

// Sort keys accepted by FilterSpec. Any other value leaves the filtered
// collection in insertion order.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortDateAsc   = "date-asc"
	SortDateDesc  = "date-desc"
	SortRating    = "rating"
)

// DefaultPageSize is applied when pagination is requested without an
// explicit page size.
const DefaultPageSize = 12

// FilterSpec is an ephemeral query input, built fresh from request state on
// every call. Zero values disable the corresponding predicate: empty or
// "all" category, empty search, nil price bounds, empty condition set and
// zero rating all match everything.
type FilterSpec struct {
	Category   string
	Search     string
	MinPrice   *int
	MaxPrice   *int
	Conditions []string
	MinRating  float64
	Sort       string

	// Page is 1-indexed. Zero disables slicing; the full filtered
	// collection is returned.
	Page     int
	PageSize int
}

// Result is a filtered, sorted and optionally sliced view of the catalog.
// Total and TotalPages are computed from the pre-slice filtered count.
type Result struct {
	Items      []model.Listing `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
}

// IntegrityError reports a stored record whose data cannot support the
// requested query, e.g. an unparsable createdAt under a date sort. It is
// surfaced instead of silently producing wrong ordering; the caller decides
// whether to skip the record or abort.
type IntegrityError struct {
	ListingID string
	Field     string
	Value     string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("listing %s: malformed %s %q", e.ListingID, e.Field, e.Value)
}

// Query applies spec to listings and returns the matching subset in the
// requested order. The input slice is never mutated. All active predicates
// combine conjunctively; an inverted price range therefore yields an empty
// result rather than an error.
func Query(listings []model.Listing, spec FilterSpec) (*Result, error) {
	filtered := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(&l, &spec) {
			filtered = append(filtered, l)
		}
	}

	if err := sortListings(filtered, spec.Sort); err != nil {
		return nil, err
	}

	total := len(filtered)
	if spec.Page <= 0 {
		return &Result{Items: filtered, Total: total, Page: 1, TotalPages: 1}, nil
	}

	pageSize := spec.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (total + pageSize - 1) / pageSize

	start := (spec.Page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &Result{
		Items:      filtered[start:end],
		Total:      total,
		Page:       spec.Page,
		TotalPages: totalPages,
	}, nil
}

func matches(l *model.Listing, spec *FilterSpec) bool {
	if spec.Category != "" && spec.Category != "all" && l.Category != spec.Category {
		return false
	}
	if spec.MinPrice != nil && l.Price < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && l.Price > *spec.MaxPrice {
		return false
	}
	if len(spec.Conditions) > 0 && !contains(spec.Conditions, l.Condition) {
		return false
	}
	if spec.MinRating > 0 && l.SellerRating < spec.MinRating {
		return false
	}
	if spec.Search != "" {
		q := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(l.Title), q) &&
			!strings.Contains(strings.ToLower(l.Description), q) {
			return false
		}
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// sortListings orders the filtered collection in place. Every sort is
// stable, so records that compare equal keep their relative order.
func sortListings(listings []model.Listing, key string) error {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price > listings[j].Price
		})
	case SortRating:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].SellerRating > listings[j].SellerRating
		})
	case SortDateAsc, SortDateDesc:
		return sortByDate(listings, key == SortDateDesc)
	}
	// Unknown or empty key: insertion order preserved.
	return nil
}

// sortByDate parses every createdAt up front so a malformed timestamp
// aborts the query with an IntegrityError instead of feeding unspecified
// ordering into the comparison.
func sortByDate(listings []model.Listing, desc bool) error {
	type keyed struct {
		listing model.Listing
		at      time.Time
	}
	keys := make([]keyed, len(listings))
	for i, l := range listings {
		at, err := model.ParseTime(l.CreatedAt)
		if err != nil {
			return &IntegrityError{ListingID: l.ID, Field: "createdAt", Value: l.CreatedAt}
		}
		keys[i] = keyed{listing: l, at: at}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if desc {
			return keys[i].at.After(keys[j].at)
		}
		return keys[i].at.Before(keys[j].at)
	})
	for i, k := range keys {
		listings[i] = k.listing
	}
	return nil
}
