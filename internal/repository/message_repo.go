package repository

import (
	"context"
	"errors"
	"time"

	"windowupgrades/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

type messageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Sender    string    `gorm:"column:sender;size:100"`
	Receiver  string    `gorm:"column:receiver;size:100"`
	Subject   string    `gorm:"column:subject;size:200"`
	Content   string    `gorm:"column:content;type:text"`
	IsRead    bool      `gorm:"column:is_read"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (messageModel) TableName() string { return "messages" }

func toDomainMessage(m messageModel) *domain.Message {
	return &domain.Message{
		ID:        m.ID,
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		Subject:   m.Subject,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	m := messageModel{
		Sender:    msg.Sender,
		Receiver:  msg.Receiver,
		Subject:   msg.Subject,
		Content:   msg.Content,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	msg.ID = m.ID
	msg.CreatedAt = m.CreatedAt
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	var m messageModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainMessage(m), nil
}

// List returns messages newest first.
func (r *MessageRepository) List(ctx context.Context, limit, offset int) ([]*domain.Message, int, error) {
	var models []messageModel
	var total int64

	if err := r.db.WithContext(ctx).Model(&messageModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	msgs := make([]*domain.Message, 0, len(models))
	for _, m := range models {
		msgs = append(msgs, toDomainMessage(m))
	}
	return msgs, int(total), nil
}

// SetRead updates the read flag. Writing the current value is harmless,
// which keeps mark-as-read idempotent.
func (r *MessageRepository) SetRead(ctx context.Context, id int64, read bool) error {
	res := r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("id = ?", id).
		Update("is_read", read)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing row from an unchanged one.
		var count int64
		if err := r.db.WithContext(ctx).Model(&messageModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&messageModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
