package domain

import "time"

type User struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	FullName    string    `json:"full_name"`
	Position    string    `json:"position"` // "RECEIVING", "SHIPPING", "IT" or "MANAGEMENT"
	Description string    `json:"description"`
	Status      string    `json:"status"` // "ACTIVE" or "INACTIVE"
	LastLogin   time.Time `json:"last_login"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Actor is the verified identity behind a scan request, taken from the
// JWT claims. The workflow trusts it once the middleware has verified
// the token.
type Actor struct {
	UserID   uint
	Username string
	Position string
}
