package model

// User represents a registered participant. The password is stored exactly
// as supplied at registration; the Public view strips it before anything
// leaves the service.
type User struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Email     string  `db:"email" json:"email"`
	Password  string  `db:"password" json:"-"`
	Rating    float64 `db:"rating" json:"rating"`
	Reviews   int     `db:"reviews" json:"reviews"`
	Avatar    string  `db:"avatar" json:"avatar,omitempty"`
	JoinDate  string  `db:"join_date" json:"joinDate"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
	UpdatedAt string  `db:"updated_at" json:"updatedAt"`
}
