package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"windowupgrades/internal/domain"
)

const exportBatch = 1000

// Row is one line of the activity report. Column order is fixed: Title,
// Details, Created At.
type Row struct {
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type LeadReader interface {
	List(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error)
}

type QuoteReader interface {
	List(ctx context.Context, limit, offset int) ([]*domain.Quote, int, error)
}

type OrderReader interface {
	List(ctx context.Context, limit, offset int) ([]*domain.Order, int, error)
}

// Service builds the report-row sequence consumed by the CSV export.
type Service struct {
	leads  LeadReader
	quotes QuoteReader
	orders OrderReader
}

func NewService(leads LeadReader, quotes QuoteReader, orders OrderReader) *Service {
	return &Service{leads: leads, quotes: quotes, orders: orders}
}

// Rows collects leads, quotes and orders into one flat report.
func (s *Service) Rows(ctx context.Context) ([]Row, error) {
	var rows []Row

	leads, _, err := s.leads.List(ctx, exportBatch, 0)
	if err != nil {
		return nil, err
	}
	for _, l := range leads {
		rows = append(rows, Row{
			Title:     fmt.Sprintf("Lead: %s", l.Name),
			Details:   fmt.Sprintf("%s | %s | %s", l.Email, l.Service, l.Status),
			CreatedAt: l.CreatedAt,
		})
	}

	quotes, _, err := s.quotes.List(ctx, exportBatch, 0)
	if err != nil {
		return nil, err
	}
	for _, q := range quotes {
		rows = append(rows, Row{
			Title:     fmt.Sprintf("Quote: %s", q.Name),
			Details:   q.Email,
			CreatedAt: q.CreatedAt,
		})
	}

	orders, _, err := s.orders.List(ctx, exportBatch, 0)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		rows = append(rows, Row{
			Title:     fmt.Sprintf("Order #%d", o.ID),
			Details:   fmt.Sprintf("$%.2f | %s", o.Amount, o.Status),
			CreatedAt: o.Date,
		})
	}

	return rows, nil
}

// WriteCSV emits the header row followed by one row per record.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Title", "Details", "Created At"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.Title, r.Details, r.CreatedAt.Format("2006-01-02 15:04")}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
