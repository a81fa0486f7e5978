package model

// Review represents a buyer's review of a seller, left on one of the
// seller's listings.
type Review struct {
	ID         string `db:"id" json:"id"`
	ListingID  string `db:"listing_id" json:"listingId"`
	SellerID   string `db:"seller_id" json:"sellerId"`
	ReviewerID string `db:"reviewer_id" json:"reviewerId"`
	Rating     int    `db:"rating" json:"rating"`
	Comment    string `db:"comment" json:"comment"`
	CreatedAt  string `db:"created_at" json:"createdAt"`
}
