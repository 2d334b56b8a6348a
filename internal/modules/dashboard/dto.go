package dashboard

import (
	"windowupgrades/internal/domain"
	"windowupgrades/internal/repository"
)

// Metrics is the read model behind the admin dashboard. It is recomputed
// from the record store on every call; nothing here is cached.
type Metrics struct {
	NewLeadsCount          int     `json:"new_leads_count"`
	PendingOrdersCount     int     `json:"pending_orders_count"`
	CompletedProjectsCount int     `json:"completed_projects_count"`
	MonthlyRevenue         float64 `json:"monthly_revenue"`
	TotalQuotes            int     `json:"total_quotes"`
	OrdersInProgress       int     `json:"orders_in_progress"`
	SalesCompleted         int     `json:"sales_completed"`
	ConversionRate         float64 `json:"conversion_rate"`

	PopularWindowStyles []repository.StyleCount `json:"popular_window_styles"`
	SalesChartLabels    []string                `json:"sales_chart_labels"`
	SalesChartData      []float64               `json:"sales_chart_data"`
	RecentLeads         []*domain.Lead          `json:"recent_leads"`
}

// zeroMetrics is the safe default served when any underlying query
// fails: real zeros and empty lists, never fabricated numbers.
func zeroMetrics() Metrics {
	return Metrics{
		PopularWindowStyles: []repository.StyleCount{},
		SalesChartLabels:    []string{},
		SalesChartData:      []float64{},
		RecentLeads:         []*domain.Lead{},
	}
}
