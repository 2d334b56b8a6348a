package inbox

// AddMessageRequest creates an inbox item directly (internal contact
// flows).
type AddMessageRequest struct {
	Sender   string `form:"sender" json:"sender"`
	Receiver string `form:"receiver" json:"receiver"`
	Subject  string `form:"subject" json:"subject"`
	Content  string `form:"content" json:"content"`
}

// ReplyRequest answers an existing message; the reply is addressed to the
// original sender.
type ReplyRequest struct {
	Subject string `form:"subject" json:"subject"`
	Content string `form:"content" json:"content"`
}

// UpdateReadStatusRequest sets the read flag explicitly, in either
// direction.
type UpdateReadStatusRequest struct {
	IsRead bool `form:"is_read" json:"is_read"`
}
