package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"windowupgrades/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when the store-level unique index on
// leads.email rejects an insert. It backstops the application-level
// pre-check under concurrent submissions.
var ErrDuplicateEmail = errors.New("lead email already exists")

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:100"`
	Email     string    `gorm:"column:email;size:254;uniqueIndex"`
	Phone     *string   `gorm:"column:phone;size:15"`
	Service   string    `gorm:"column:service;size:100"`
	Status    string    `gorm:"column:status;size:50;index"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) *domain.Lead {
	var phone string
	if m.Phone != nil {
		phone = *m.Phone
	}

	return &domain.Lead{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     phone,
		Service:   domain.ServiceType(m.Service),
		Status:    domain.LeadStatus(m.Status),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	email := strings.TrimSpace(strings.ToLower(l.Email))

	var phone *string
	if l.Phone != "" {
		v := l.Phone
		phone = &v
	}

	return leadModel{
		ID:        l.ID,
		Name:      l.Name,
		Email:     email,
		Phone:     phone,
		Service:   string(l.Service),
		Status:    string(l.Status),
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
	}
}

// Create inserts a lead. A unique-index violation on email is translated
// to ErrDuplicateEmail.
func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	l.ID = m.ID
	l.Email = m.Email
	l.CreatedAt = m.CreatedAt
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var m leadModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainLead(m), nil
}

// ExistsByEmail reports whether an active lead already holds the address.
func (r *LeadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	var count int64
	err := r.db.WithContext(ctx).
		Model(&leadModel{}).
		Where("email = ? AND is_active = ?", email, true).
		Count(&count).Error
	return count > 0, err
}

// List returns leads newest first.
func (r *LeadRepository) List(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error) {
	var models []leadModel
	var total int64

	if err := r.db.WithContext(ctx).Model(&leadModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	leads := make([]*domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, toDomainLead(m))
	}
	return leads, int(total), nil
}

// Recent returns the n newest leads.
func (r *LeadRepository) Recent(ctx context.Context, n int) ([]*domain.Lead, error) {
	var models []leadModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	leads := make([]*domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, toDomainLead(m))
	}
	return leads, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&leadModel{}).Count(&count).Error
	return int(count), err
}

func (r *LeadRepository) CountByStatus(ctx context.Context, status domain.LeadStatus) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&leadModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return int(count), err
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	res := r.db.WithContext(ctx).
		Model(&leadModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&leadModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// isUniqueViolation matches both the postgres driver error (code 23505)
// and the sqlite constraint message used in local development.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
