package dashboard

import (
	"context"
	"time"

	"windowupgrades/internal/domain"
	"windowupgrades/internal/repository"
)

type LeadReader interface {
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.LeadStatus) (int, error)
	Recent(ctx context.Context, n int) ([]*domain.Lead, error)
}

type QuoteReader interface {
	Count(ctx context.Context) (int, error)
}

type OrderReader interface {
	CountByStatus(ctx context.Context, status domain.OrderStatus) (int, error)
	SumAmountForRange(ctx context.Context, from, to time.Time) (float64, error)
	All(ctx context.Context) ([]*domain.Order, error)
}

type ProjectReader interface {
	CountByStatus(ctx context.Context, status domain.ProjectStatus) (int, error)
	TopStyles(ctx context.Context, n int) ([]repository.StyleCount, error)
}
