package inbox

import (
	"context"
	"testing"

	"windowupgrades/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	if msg != nil && args.Error(0) == nil {
		msg.ID = 501
	}
	return args.Error(0)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageRepository) List(ctx context.Context, limit, offset int) ([]*domain.Message, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*domain.Message), args.Int(1), args.Error(2)
}

func (m *MockMessageRepository) SetRead(ctx context.Context, id int64, read bool) error {
	args := m.Called(ctx, id, read)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestView_MarksUnreadMessageRead(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Message{ID: 1, IsRead: false}, nil)
	repo.On("SetRead", mock.Anything, int64(1), true).Return(nil)

	msg, err := svc.View(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, msg.IsRead)
	repo.AssertCalled(t, "SetRead", mock.Anything, int64(1), true)
}

func TestView_ReadMessageNoWrite(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Message{ID: 1, IsRead: true}, nil)

	msg, err := svc.View(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, msg.IsRead)
	repo.AssertNotCalled(t, "SetRead", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkRead_Idempotent(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewService(repo)

	state := &domain.Message{ID: 2, IsRead: false}
	repo.On("GetByID", mock.Anything, int64(2)).Return(state, nil)
	repo.On("SetRead", mock.Anything, int64(2), true).Run(func(args mock.Arguments) {
		state.IsRead = true
	}).Return(nil)

	// first call flips the flag
	assert.NoError(t, svc.MarkRead(context.Background(), 2))
	assert.True(t, state.IsRead)

	// second call is a no-op, no error
	assert.NoError(t, svc.MarkRead(context.Background(), 2))
	repo.AssertNumberOfCalls(t, "SetRead", 1)
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)

	assert.ErrorIs(t, svc.MarkRead(context.Background(), 9), ErrNotFound)
}

func TestUpdateReadStatus_CanReset(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Message{ID: 3, IsRead: true}, nil)
	repo.On("SetRead", mock.Anything, int64(3), false).Return(nil)

	assert.NoError(t, svc.UpdateReadStatus(context.Background(), 3, false))
	repo.AssertCalled(t, "SetRead", mock.Anything, int64(3), false)
}

func TestReply_AddressesOriginalSender(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(4)).Return(&domain.Message{ID: 4, Sender: "jane@example.com"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)

	actor := domain.Actor{ID: 1, Name: "admin", IsStaff: true}
	reply, err := svc.Reply(context.Background(), actor, 4, ReplyRequest{Subject: "Re: quote", Content: "On it."})

	assert.NoError(t, err)
	assert.Equal(t, "admin", reply.Sender)
	assert.Equal(t, "jane@example.com", reply.Receiver)
	assert.False(t, reply.IsRead)
}

func TestDelete_NonStaffForbidden(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewService(repo)

	err := svc.Delete(context.Background(), domain.Actor{IsStaff: false}, 5)
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Staff(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Message{ID: 5}, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), domain.Actor{IsStaff: true}, 5))
}

func TestAdd_RequiresSubjectAndContent(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), AddMessageRequest{Subject: "", Content: "hi"})
	assert.ErrorIs(t, err, ErrValidation)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	msg, err := svc.Add(context.Background(), AddMessageRequest{Sender: "site", Receiver: "office", Subject: "Hello", Content: "hi"})
	assert.NoError(t, err)
	assert.Equal(t, int64(501), msg.ID)
}
