package reports

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"windowupgrades/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLeadReader struct {
	mock.Mock
}

func (m *MockLeadReader) List(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*domain.Lead), args.Int(1), args.Error(2)
}

type MockQuoteReader struct {
	mock.Mock
}

func (m *MockQuoteReader) List(ctx context.Context, limit, offset int) ([]*domain.Quote, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*domain.Quote), args.Int(1), args.Error(2)
}

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) List(ctx context.Context, limit, offset int) ([]*domain.Order, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*domain.Order), args.Int(1), args.Error(2)
}

func TestRows_CollectsAllKinds(t *testing.T) {
	leads := new(MockLeadReader)
	quotes := new(MockQuoteReader)
	orders := new(MockOrderReader)
	svc := NewService(leads, quotes, orders)

	created := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	leads.On("List", mock.Anything, mock.Anything, 0).Return([]*domain.Lead{
		{Name: "John", Email: "john@example.com", Service: domain.ServiceRoofRepair, Status: domain.LeadNew, CreatedAt: created},
	}, 1, nil)
	quotes.On("List", mock.Anything, mock.Anything, 0).Return([]*domain.Quote{
		{Name: "Jane", Email: "jane@example.com", CreatedAt: created},
	}, 1, nil)
	orders.On("List", mock.Anything, mock.Anything, 0).Return([]*domain.Order{
		{ID: 3, Amount: 250.5, Status: domain.OrderCompleted, Date: created},
	}, 1, nil)

	rows, err := svc.Rows(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Lead: John", rows[0].Title)
	assert.Equal(t, "Quote: Jane", rows[1].Title)
	assert.Equal(t, "Order #3", rows[2].Title)
	assert.Contains(t, rows[2].Details, "250.50")
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{
		{Title: "Lead: John", Details: "john@example.com", CreatedAt: time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)},
	}

	err := WriteCSV(&buf, rows)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "Title,Details,Created At", lines[0])
	assert.Equal(t, "Lead: John,john@example.com,2026-08-01 09:30", lines[1])
}

func TestWriteCSV_EmptyStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Title,Details,Created At\n", buf.String())
}
