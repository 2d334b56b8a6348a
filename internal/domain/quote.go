package domain

import "time"

// Quote is a point-in-time pricing request. It has no status lifecycle:
// creation and deletion are the only transitions.
type Quote struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
