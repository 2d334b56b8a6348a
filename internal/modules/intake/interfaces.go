package intake

import (
	"context"

	"windowupgrades/internal/domain"
	"windowupgrades/internal/notification"
)

// LeadRepository defines lead persistence used by intake.
type LeadRepository interface {
	Create(ctx context.Context, l *domain.Lead) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// QuoteRepository defines quote persistence used by intake.
type QuoteRepository interface {
	Create(ctx context.Context, q *domain.Quote) error
}

// Notifier delivers the best-effort confirmation after an admission.
type Notifier interface {
	Send(ctx context.Context, msg notification.Email) error
}
