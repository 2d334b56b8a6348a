package repository

import (
	"context"
	"errors"

	"windowupgrades/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	WindowStyle string `gorm:"column:window_style;size:100;index"`
	Status      string `gorm:"column:status;size:50;index"`
}

func (projectModel) TableName() string { return "projects" }

func toDomainProject(m projectModel) *domain.Project {
	return &domain.Project{
		ID:          m.ID,
		WindowStyle: m.WindowStyle,
		Status:      domain.ProjectStatus(m.Status),
	}
}

// StyleCount is one row of the popular-styles leaderboard.
type StyleCount struct {
	WindowStyle string `json:"window_style"`
	Count       int    `json:"count"`
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	m := projectModel{WindowStyle: p.WindowStyle, Status: string(p.Status)}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var m projectModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainProject(m), nil
}

func (r *ProjectRepository) List(ctx context.Context, limit, offset int) ([]*domain.Project, int, error) {
	var models []projectModel
	var total int64

	if err := r.db.WithContext(ctx).Model(&projectModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	projects := make([]*domain.Project, 0, len(models))
	for _, m := range models {
		projects = append(projects, toDomainProject(m))
	}
	return projects, int(total), nil
}

func (r *ProjectRepository) CountByStatus(ctx context.Context, status domain.ProjectStatus) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return int(count), err
}

// TopStyles returns the n most frequent window styles, ties broken by
// first appearance so repeated computations stay stable.
func (r *ProjectRepository) TopStyles(ctx context.Context, n int) ([]StyleCount, error) {
	var rows []struct {
		WindowStyle string
		StyleCount  int
	}

	err := r.db.WithContext(ctx).
		Model(&projectModel{}).
		Select("window_style, COUNT(*) AS style_count, MIN(id) AS first_id").
		Group("window_style").
		Order("style_count DESC, first_id ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]StyleCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, StyleCount{WindowStyle: row.WindowStyle, Count: row.StyleCount})
	}
	return out, nil
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	res := r.db.WithContext(ctx).
		Model(&projectModel{}).
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
