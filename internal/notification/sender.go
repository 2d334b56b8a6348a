package notification

import "context"

// Email is an outbound notification. Plain text only; the landing page
// has no templated mail.
type Email struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// Sender delivers an email. Implementations can be swapped (SendGrid,
// SMTP, log-only) without changing callers. Delivery is best-effort:
// callers treat a returned error as a warning, never as a reason to roll
// back an admitted record.
type Sender interface {
	Send(ctx context.Context, msg Email) error
}
