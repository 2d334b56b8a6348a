package dashboard

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"windowupgrades/internal/domain"
)

const (
	topStylesLimit   = 5
	recentLeadsLimit = 5
)

// Service computes dashboard metrics on demand. A failing query degrades
// to a zeroed snapshot instead of an error page: the dashboard prefers
// availability over completeness, and the fault goes to the log.
type Service struct {
	leads    LeadReader
	quotes   QuoteReader
	orders   OrderReader
	projects ProjectReader
	logger   *log.Logger
	now      func() time.Time
}

func NewService(leads LeadReader, quotes QuoteReader, orders OrderReader, projects ProjectReader, logger *log.Logger) *Service {
	return &Service{
		leads:    leads,
		quotes:   quotes,
		orders:   orders,
		projects: projects,
		logger:   logger,
		now:      time.Now,
	}
}

// Compute re-scans the record store and builds the full metrics snapshot.
func (s *Service) Compute(ctx context.Context) Metrics {
	m, err := s.compute(ctx)
	if err != nil {
		s.logger.Printf("dashboard query failed, serving zeroed metrics: %v", err)
		return zeroMetrics()
	}
	return m
}

func (s *Service) compute(ctx context.Context) (Metrics, error) {
	m := zeroMetrics()
	var err error

	if m.NewLeadsCount, err = s.leads.CountByStatus(ctx, domain.LeadNew); err != nil {
		return m, fmt.Errorf("new leads: %w", err)
	}
	if m.PendingOrdersCount, err = s.orders.CountByStatus(ctx, domain.OrderPending); err != nil {
		return m, fmt.Errorf("pending orders: %w", err)
	}
	if m.CompletedProjectsCount, err = s.projects.CountByStatus(ctx, domain.ProjectCompleted); err != nil {
		return m, fmt.Errorf("completed projects: %w", err)
	}
	if m.TotalQuotes, err = s.quotes.Count(ctx); err != nil {
		return m, fmt.Errorf("quotes: %w", err)
	}
	if m.OrdersInProgress, err = s.orders.CountByStatus(ctx, domain.OrderInProgress); err != nil {
		return m, fmt.Errorf("orders in progress: %w", err)
	}
	if m.SalesCompleted, err = s.orders.CountByStatus(ctx, domain.OrderCompleted); err != nil {
		return m, fmt.Errorf("sales completed: %w", err)
	}

	from, to := monthBounds(s.now())
	if m.MonthlyRevenue, err = s.orders.SumAmountForRange(ctx, from, to); err != nil {
		return m, fmt.Errorf("monthly revenue: %w", err)
	}
	m.MonthlyRevenue = round2(m.MonthlyRevenue)

	totalLeads, err := s.leads.Count(ctx)
	if err != nil {
		return m, fmt.Errorf("total leads: %w", err)
	}
	if totalLeads > 0 {
		m.ConversionRate = round2(float64(m.SalesCompleted) / float64(totalLeads) * 100)
	}

	if m.PopularWindowStyles, err = s.projects.TopStyles(ctx, topStylesLimit); err != nil {
		return m, fmt.Errorf("popular styles: %w", err)
	}

	orders, err := s.orders.All(ctx)
	if err != nil {
		return m, fmt.Errorf("sales chart: %w", err)
	}
	m.SalesChartLabels, m.SalesChartData = salesByMonth(orders)

	recents, err := s.leads.Recent(ctx, recentLeadsLimit)
	if err != nil {
		return m, fmt.Errorf("recent leads: %w", err)
	}
	m.RecentLeads = recents

	return m, nil
}

// salesByMonth groups order amounts by calendar month number (1-12),
// irrespective of year. Months without orders are omitted.
func salesByMonth(orders []*domain.Order) ([]string, []float64) {
	totals := make(map[int]float64)
	for _, o := range orders {
		totals[int(o.Date.Month())] += o.Amount
	}

	months := make([]int, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Ints(months)

	labels := make([]string, 0, len(months))
	data := make([]float64, 0, len(months))
	for _, month := range months {
		labels = append(labels, fmt.Sprintf("Month %d", month))
		data = append(data, round2(totals[month]))
	}
	return labels, data
}

// monthBounds returns [first of the month, first of the next month).
func monthBounds(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
