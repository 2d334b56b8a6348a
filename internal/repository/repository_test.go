package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"windowupgrades/internal/database"
	"windowupgrades/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestLeadRepository_UniqueEmail(t *testing.T) {
	db := testDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	lead := &domain.Lead{
		Name:      "John",
		Email:     "john@example.com",
		Service:   domain.ServiceWindowReplacement,
		Status:    domain.LeadNew,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, lead))
	assert.NotZero(t, lead.ID)

	// the unique index rejects a second lead with the same address
	dup := &domain.Lead{
		Name:      "John Again",
		Email:     "JOHN@example.com", // emails are stored lowercased
		Service:   domain.ServiceWindowReplacement,
		Status:    domain.LeadNew,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLeadRepository_ExistsByEmail(t *testing.T) {
	db := testDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Lead{
		Name: "John", Email: "john@example.com",
		Service: domain.ServiceRoofRepair, Status: domain.LeadNew,
		IsActive: true, CreatedAt: time.Now(),
	}))

	exists, err := repo.ExistsByEmail(ctx, "John@Example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "other@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLeadRepository_RecentOrdering(t *testing.T) {
	db := testDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Lead{
			Name:      "Lead",
			Email:     "lead" + string(rune('a'+i)) + "@example.com",
			Service:   domain.ServiceWindowReplacement,
			Status:    domain.LeadNew,
			IsActive:  true,
			CreatedAt: base.AddDate(0, 0, i),
		}))
	}

	recent, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	// newest first
	assert.True(t, recent[0].CreatedAt.After(recent[4].CreatedAt))
	assert.Equal(t, "leadg@example.com", recent[0].Email)
}

func TestOrderRepository_SumAmountForRange(t *testing.T) {
	db := testDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	thisMonth := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := thisMonth.AddDate(0, 1, 0)

	for _, o := range []*domain.Order{
		{Date: thisMonth.AddDate(0, 0, 4), Amount: 100.00, Status: domain.OrderCompleted},
		{Date: thisMonth.AddDate(0, 0, 20), Amount: 250.50, Status: domain.OrderPending},
		{Date: thisMonth.AddDate(0, -1, 10), Amount: 50.00, Status: domain.OrderCompleted}, // last month
	} {
		require.NoError(t, repo.Create(ctx, o))
	}

	total, err := repo.SumAmountForRange(ctx, thisMonth, nextMonth)
	require.NoError(t, err)
	assert.Equal(t, 350.50, total)
}

func TestOrderRepository_SumEmptyRangeIsZero(t *testing.T) {
	db := testDB(t)
	repo := NewOrderRepository(db)

	total, err := repo.SumAmountForRange(context.Background(),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestProjectRepository_TopStyles(t *testing.T) {
	db := testDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	// Bay x3, Casement x2, then four singles; the two-way tie among
	// singles resolves by first appearance
	for _, style := range []string{"Bay", "Casement", "Bay", "Sliding", "Awning", "Bay", "Casement", "Picture", "Double Hung"} {
		require.NoError(t, repo.Create(ctx, &domain.Project{WindowStyle: style, Status: domain.ProjectCompleted}))
	}

	top, err := repo.TopStyles(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, StyleCount{WindowStyle: "Bay", Count: 3}, top[0])
	assert.Equal(t, StyleCount{WindowStyle: "Casement", Count: 2}, top[1])
	assert.Equal(t, StyleCount{WindowStyle: "Sliding", Count: 1}, top[2])
	assert.Equal(t, StyleCount{WindowStyle: "Awning", Count: 1}, top[3])
	assert.Equal(t, StyleCount{WindowStyle: "Picture", Count: 1}, top[4])
}

func TestMessageRepository_SetRead(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	msg := &domain.Message{
		Sender: "jane@example.com", Receiver: "office",
		Subject: "Hello", Content: "Hi there", CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, msg))

	require.NoError(t, repo.SetRead(ctx, msg.ID, true))
	got, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	// setting the same value again is not an error
	require.NoError(t, repo.SetRead(ctx, msg.ID, true))

	// and it can be reset
	require.NoError(t, repo.SetRead(ctx, msg.ID, false))
	got, err = repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRead)

	assert.ErrorIs(t, repo.SetRead(ctx, 9999, true), gorm.ErrRecordNotFound)
}

func TestQuoteRepository_DuplicateEmailAllowed(t *testing.T) {
	db := testDB(t)
	repo := NewQuoteRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Quote{
			Name: "Jane", Email: "jane@example.com", CreatedAt: time.Now(),
		}))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
