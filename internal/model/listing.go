package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Listing categories.
const (
	CategoryTextbooks = "textbooks"
	CategorySupplies  = "supplies"
	CategoryRental    = "rental"
	CategoryServices  = "services"
)

// Listing conditions.
const (
	ConditionNew       = "new"
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
)

// Listing statuses.
const (
	StatusActive   = "active"
	StatusSold     = "sold"
	StatusDraft    = "draft"
	StatusArchived = "archived"
)

// Listing represents one item for sale, rent or service. SellerName and
// SellerRating are denormalized copies of the owner's profile so a catalog
// page renders without a join; ReviewService keeps them current.
type Listing struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Price        int       `db:"price" json:"price"`
	Category     string    `db:"category" json:"category"`
	Condition    string    `db:"condition" json:"condition"`
	SellerID     string    `db:"seller_id" json:"sellerId"`
	SellerName   string    `db:"seller_name" json:"sellerName"`
	SellerRating float64   `db:"seller_rating" json:"sellerRating"`
	Images       ImageList `db:"images" json:"images"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    string    `db:"created_at" json:"createdAt"`
	UpdatedAt    string    `db:"updated_at" json:"updatedAt"`
}

// ImageList is an ordered sequence of image data URIs or remote URLs,
// stored as a JSON array in a single text column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("ImageList.Value: %w", err)
	}
	return string(b), nil
}

func (l *ImageList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("ImageList.Scan: unsupported type %T", src)
	}
}

// ValidCategory reports whether c is one of the known listing categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryTextbooks, CategorySupplies, CategoryRental, CategoryServices:
		return true
	}
	return false
}

// ValidCondition reports whether c is one of the known listing conditions.
func ValidCondition(c string) bool {
	switch c {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionFair:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known listing statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusSold, StatusDraft, StatusArchived:
		return true
	}
	return false
}

// ParseTime parses a stored timestamp. Records written by this service carry
// RFC3339, but imported browser data may carry a bare calendar date.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse timestamp %q", s)
	}
	return t, nil
}

// Now returns the current time in the storage timestamp format.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
