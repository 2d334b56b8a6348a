package inbox

import (
	"context"

	"windowupgrades/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id int64) (*domain.Message, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Message, int, error)
	SetRead(ctx context.Context, id int64, read bool) error
	Delete(ctx context.Context, id int64) error
}
