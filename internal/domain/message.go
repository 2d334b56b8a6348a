package domain

import "time"

// Message is an internal inbox item. IsRead defaults to false and is
// flipped by marking or by viewing the message detail.
type Message struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
