package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"windowupgrades/internal/domain"

	"gorm.io/gorm"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// No unique index on email: repeat quote requests from the same address
// are allowed, unlike leads.
type quoteModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:255"`
	Email     string    `gorm:"column:email;size:254;index"`
	Phone     *string   `gorm:"column:phone;size:15"`
	Details   *string   `gorm:"column:details;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (quoteModel) TableName() string { return "quotes" }

func toDomainQuote(m quoteModel) *domain.Quote {
	var phone, details string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Details != nil {
		details = *m.Details
	}

	return &domain.Quote{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     phone,
		Details:   details,
		CreatedAt: m.CreatedAt,
	}
}

func toQuoteModel(q *domain.Quote) quoteModel {
	var phone, details *string
	if q.Phone != "" {
		v := q.Phone
		phone = &v
	}
	if q.Details != "" {
		v := q.Details
		details = &v
	}

	return quoteModel{
		ID:        q.ID,
		Name:      q.Name,
		Email:     strings.TrimSpace(strings.ToLower(q.Email)),
		Phone:     phone,
		Details:   details,
		CreatedAt: q.CreatedAt,
	}
}

func (r *QuoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	m := toQuoteModel(q)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	q.ID = m.ID
	q.Email = m.Email
	q.CreatedAt = m.CreatedAt
	return nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	var m quoteModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainQuote(m), nil
}

func (r *QuoteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Quote, int, error) {
	var models []quoteModel
	var total int64

	if err := r.db.WithContext(ctx).Model(&quoteModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	quotes := make([]*domain.Quote, 0, len(models))
	for _, m := range models {
		quotes = append(quotes, toDomainQuote(m))
	}
	return quotes, int(total), nil
}

func (r *QuoteRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&quoteModel{}).Count(&count).Error
	return int(count), err
}

func (r *QuoteRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&quoteModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
