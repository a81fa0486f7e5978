package model

// Message is one chat message tied to a listing. IsAutoReply marks messages
// generated by the reply simulator rather than a real participant.
type Message struct {
	ID          string `db:"id" json:"id"`
	ListingID   string `db:"listing_id" json:"listingId"`
	SenderID    string `db:"sender_id" json:"senderId"`
	ReceiverID  string `db:"receiver_id" json:"receiverId"`
	Body        string `db:"body" json:"body"`
	Read        bool   `db:"is_read" json:"read"`
	IsAutoReply bool   `db:"is_auto_reply" json:"isAutoReply"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}
