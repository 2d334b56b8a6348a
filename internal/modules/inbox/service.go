package inbox

import (
	"context"
	"strings"
	"time"

	"windowupgrades/internal/domain"
)

const defaultPageSize = 50

// Service owns message read-state and lifecycle.
type Service struct {
	messages MessageRepository
}

func NewService(messages MessageRepository) *Service {
	return &Service{messages: messages}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.Message, int, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.messages.List(ctx, limit, offset)
}

// View returns a message and marks it read in the same operation. This is
// a deliberate dual-purpose call: opening the detail view is what flips
// the unread flag.
func (s *Service) View(ctx context.Context, id int64) (*domain.Message, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrNotFound
	}

	if !msg.IsRead {
		if err := s.messages.SetRead(ctx, id, true); err != nil {
			return nil, err
		}
		msg.IsRead = true
	}

	return msg, nil
}

// MarkRead flips is_read to true. Already-read messages are a no-op.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrNotFound
	}
	if msg.IsRead {
		return nil
	}
	return s.messages.SetRead(ctx, id, true)
}

// UpdateReadStatus sets the flag explicitly; unlike MarkRead it can reset
// a message to unread.
func (s *Service) UpdateReadStatus(ctx context.Context, id int64, read bool) error {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrNotFound
	}
	return s.messages.SetRead(ctx, id, read)
}

func (s *Service) Add(ctx context.Context, req AddMessageRequest) (*domain.Message, error) {
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrValidation
	}

	msg := &domain.Message{
		Sender:    req.Sender,
		Receiver:  req.Receiver,
		Subject:   req.Subject,
		Content:   req.Content,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Reply creates a new message addressed back to the original sender.
func (s *Service) Reply(ctx context.Context, actor domain.Actor, id int64, req ReplyRequest) (*domain.Message, error) {
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrValidation
	}

	original, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, ErrNotFound
	}

	reply := &domain.Message{
		Sender:    actor.Name,
		Receiver:  original.Sender,
		Subject:   req.Subject,
		Content:   req.Content,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.IsStaff {
		return ErrForbidden
	}
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrNotFound
	}
	return s.messages.Delete(ctx, id)
}
