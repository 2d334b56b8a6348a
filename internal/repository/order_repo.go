package repository

import (
	"context"
	"errors"
	"time"

	"windowupgrades/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderModel struct {
	ID     int64     `gorm:"column:id;primaryKey"`
	Date   time.Time `gorm:"column:date;index"`
	Amount float64   `gorm:"column:amount"`
	Status string    `gorm:"column:status;size:50;index"`
}

func (orderModel) TableName() string { return "orders" }

func toDomainOrder(m orderModel) *domain.Order {
	return &domain.Order{
		ID:     m.ID,
		Date:   m.Date,
		Amount: m.Amount,
		Status: domain.OrderStatus(m.Status),
	}
}

func toOrderModel(o *domain.Order) orderModel {
	return orderModel{
		ID:     o.ID,
		Date:   o.Date,
		Amount: o.Amount,
		Status: string(o.Status),
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	m := toOrderModel(o)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	o.ID = m.ID
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var m orderModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainOrder(m), nil
}

func (r *OrderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, int, error) {
	var models []orderModel
	var total int64

	if err := r.db.WithContext(ctx).Model(&orderModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*domain.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, toDomainOrder(m))
	}
	return orders, int(total), nil
}

// All returns every order, oldest first. The dashboard re-scans this on
// each computation; order volume for a single business stays small.
func (r *OrderRepository) All(ctx context.Context) ([]*domain.Order, error) {
	var models []orderModel
	err := r.db.WithContext(ctx).Order("date ASC, id ASC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, toDomainOrder(m))
	}
	return orders, nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status domain.OrderStatus) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return int(count), err
}

// SumAmountForRange sums order amounts with date in [from, to).
func (r *OrderRepository) SumAmountForRange(ctx context.Context, from, to time.Time) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Select("SUM(amount)").
		Where("date >= ? AND date < ?", from, to).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domain.Order) error {
	res := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"date":   o.Date,
			"amount": o.Amount,
			"status": string(o.Status),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&orderModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
