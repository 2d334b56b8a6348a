package admin

import (
	"context"
	"math"
	"strings"
	"time"

	"windowupgrades/internal/domain"
	"windowupgrades/internal/validation"
)

const defaultPageSize = 50

// Service implements staff record management: listing, status changes,
// order edits and deletes. Deletes are terminal and require the staff
// capability; everything else trusts the admin surface it is mounted on.
type Service struct {
	leads    LeadRepository
	quotes   QuoteRepository
	orders   OrderRepository
	projects ProjectRepository
}

func NewService(leads LeadRepository, quotes QuoteRepository, orders OrderRepository, projects ProjectRepository) *Service {
	return &Service{
		leads:    leads,
		quotes:   quotes,
		orders:   orders,
		projects: projects,
	}
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// --- Leads ---

func (s *Service) ListLeads(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error) {
	limit, offset = normalizePage(limit, offset)
	return s.leads.List(ctx, limit, offset)
}

func (s *Service) GetLead(ctx context.Context, id int64) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound
	}
	return lead, nil
}

// SetLeadStatus applies an admin override. The status set is validated
// but no transition order is enforced; this is advisory workflow state.
func (s *Service) SetLeadStatus(ctx context.Context, id int64, req SetLeadStatusRequest) error {
	status := domain.LeadStatus(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return ErrValidation
	}

	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return ErrNotFound
	}

	return s.leads.UpdateStatus(ctx, id, status)
}

func (s *Service) DeleteLead(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.IsStaff {
		return ErrForbidden
	}
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return ErrNotFound
	}
	return s.leads.Delete(ctx, id)
}

// --- Quotes ---

func (s *Service) ListQuotes(ctx context.Context, limit, offset int) ([]*domain.Quote, int, error) {
	limit, offset = normalizePage(limit, offset)
	return s.quotes.List(ctx, limit, offset)
}

// CreateQuote records a staff-entered quote under the same field rules as
// the public form. Quote emails carry no uniqueness rule here either.
func (s *Service) CreateQuote(ctx context.Context, req CreateQuoteRequest) (*domain.Quote, error) {
	errs := validation.Quote(validation.QuoteInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Details: req.Details,
	})
	if !errs.Ok() {
		return nil, ErrValidation
	}

	quote := &domain.Quote{
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Phone:     req.Phone,
		Details:   req.Details,
		CreatedAt: time.Now(),
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *Service) DeleteQuote(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.IsStaff {
		return ErrForbidden
	}
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quote == nil {
		return ErrNotFound
	}
	return s.quotes.Delete(ctx, id)
}

// --- Orders ---

func (s *Service) ListOrders(ctx context.Context, limit, offset int) ([]*domain.Order, int, error) {
	limit, offset = normalizePage(limit, offset)
	return s.orders.List(ctx, limit, offset)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	order, err := orderFromRequest(req.Date, req.Amount, req.Status)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrder replaces date, amount and status in one edit, mirroring the
// admin edit form.
func (s *Service) UpdateOrder(ctx context.Context, id int64, req UpdateOrderRequest) (*domain.Order, error) {
	existing, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	order, err := orderFromRequest(req.Date, req.Amount, req.Status)
	if err != nil {
		return nil, err
	}
	order.ID = id

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.IsStaff {
		return ErrForbidden
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrNotFound
	}
	return s.orders.Delete(ctx, id)
}

// --- Projects ---

func (s *Service) ListProjects(ctx context.Context, limit, offset int) ([]*domain.Project, int, error) {
	limit, offset = normalizePage(limit, offset)
	return s.projects.List(ctx, limit, offset)
}

func (s *Service) CreateProject(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	style := strings.TrimSpace(req.WindowStyle)
	status := domain.ProjectStatus(req.Status)
	if style == "" || !status.Valid() {
		return nil, ErrValidation
	}

	project := &domain.Project{WindowStyle: style, Status: status}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *Service) SetProjectStatus(ctx context.Context, id int64, req SetProjectStatusRequest) error {
	status := domain.ProjectStatus(req.Status)
	if !status.Valid() {
		return ErrValidation
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrNotFound
	}

	return s.projects.UpdateStatus(ctx, id, status)
}

func orderFromRequest(date string, amount float64, status string) (*domain.Order, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrValidation
	}
	if amount < 0 {
		return nil, ErrValidation
	}
	st := domain.OrderStatus(status)
	if !st.Valid() {
		return nil, ErrValidation
	}

	return &domain.Order{
		Date:   day,
		Amount: math.Round(amount*100) / 100,
		Status: st,
	}, nil
}
