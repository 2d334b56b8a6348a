package intake

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"windowupgrades/internal/domain"
	"windowupgrades/internal/notification"
	"windowupgrades/internal/repository"
	"windowupgrades/internal/validation"
)

const duplicateEmailReason = "This email is already registered."

// Service handles public submissions: validate, persist, then notify
// best-effort. Validation never touches storage; persistence happens
// exactly once, after validation fully passes.
type Service struct {
	leads      LeadRepository
	quotes     QuoteRepository
	notifier   Notifier
	notifyAddr string // business inbox for quote alerts
	logger     *log.Logger
}

func NewService(leads LeadRepository, quotes QuoteRepository, notifier Notifier, notifyAddr string, logger *log.Logger) *Service {
	return &Service{
		leads:      leads,
		quotes:     quotes,
		notifier:   notifier,
		notifyAddr: notifyAddr,
		logger:     logger,
	}
}

// SubmitLead admits a lead from the landing page. Duplicate email is a
// rejection, not an error; the store's unique index backstops the
// pre-check under concurrent submissions.
func (s *Service) SubmitLead(ctx context.Context, req SubmitLeadRequest) (*LeadOutcome, error) {
	errs := validation.Lead(validation.LeadInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
	})
	if !errs.Ok() {
		return &LeadOutcome{State: StateRejected, Reasons: errs}, nil
	}

	exists, err := s.leads.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return rejectedDuplicate(), nil
	}

	service := domain.ServiceType(req.Service)
	if service == "" {
		service = domain.ServiceWindowReplacement
	}

	lead := &domain.Lead{
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   service,
		Status:    domain.LeadNew,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return rejectedDuplicate(), nil
		}
		return nil, err
	}

	state := s.notify(ctx, notification.Email{
		To:      lead.Email,
		ToName:  lead.Name,
		Subject: "Thank you for contacting Window Upgrades",
		Body:    fmt.Sprintf("Hi %s,\n\nThank you for reaching out! We'll contact you soon.", lead.Name),
	})

	return &LeadOutcome{State: state, Lead: lead}, nil
}

// QuickLead admits an email-only submission as an anonymous lead.
func (s *Service) QuickLead(ctx context.Context, req QuickLeadRequest) (*LeadOutcome, error) {
	return s.SubmitLead(ctx, SubmitLeadRequest{Name: "Anonymous", Email: req.Email})
}

// SubmitQuote admits a quote request. Quotes carry no uniqueness rule:
// resubmitting the same email is allowed by design.
func (s *Service) SubmitQuote(ctx context.Context, req SubmitQuoteRequest) (*QuoteOutcome, error) {
	errs := validation.Quote(validation.QuoteInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Details: req.Details,
	})
	if !errs.Ok() {
		return &QuoteOutcome{State: StateRejected, Reasons: errs}, nil
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

	state := s.notify(ctx, notification.Email{
		To:      s.notifyAddr,
		Subject: "New Quote Request",
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s", quote.Name, quote.Email, quote.Phone, quote.Details),
	})

	return &QuoteOutcome{State: state, Quote: quote}, nil
}

// notify sends at most one email per admitted record. Failure degrades to
// a warning-level outcome and never rolls back the write.
func (s *Service) notify(ctx context.Context, msg notification.Email) State {
	if s.notifier == nil || msg.To == "" {
		return StateAdmitted
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Printf("notification failed to=%s: %v", msg.To, err)
		return StateAdmittedNotifyFailed
	}
	return StateAdmitted
}

func rejectedDuplicate() *LeadOutcome {
	return &LeadOutcome{
		State:     StateRejected,
		Duplicate: true,
		Reasons:   validation.Errors{"email": duplicateEmailReason},
	}
}
