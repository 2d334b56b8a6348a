package admin

import (
	"context"

	"windowupgrades/internal/domain"
)

type LeadRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
	Delete(ctx context.Context, id int64) error
}

type QuoteRepository interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Quote, int, error)
	Delete(ctx context.Context, id int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Order, int, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id int64) error
}

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Project, int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
}
