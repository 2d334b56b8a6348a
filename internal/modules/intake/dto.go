package intake

import (
	"windowupgrades/internal/domain"
	"windowupgrades/internal/validation"
)

// SubmitLeadRequest carries the public lead form.
type SubmitLeadRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Service string `form:"service" json:"service"`
}

// SubmitQuoteRequest carries the public quote-request form.
type SubmitQuoteRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Details string `form:"message" json:"message"`
}

// QuickLeadRequest is the footer email-capture form: a single address,
// admitted as an anonymous lead.
type QuickLeadRequest struct {
	Email string `form:"email" json:"email"`
}

type State string

const (
	StateAdmitted State = "admitted"
	// StateAdmittedNotifyFailed means the record was persisted but the
	// confirmation email could not be sent. Never fatal to the submitter.
	StateAdmittedNotifyFailed State = "admitted_notify_failed"
	StateRejected             State = "rejected"
)

// LeadOutcome is the result of a lead submission. Reasons is field-keyed
// for form redisplay; a rejected outcome never carries a partial record.
type LeadOutcome struct {
	State     State             `json:"state"`
	Lead      *domain.Lead      `json:"lead,omitempty"`
	Reasons   validation.Errors `json:"reasons,omitempty"`
	Duplicate bool              `json:"-"`
}

// QuoteOutcome is the result of a quote submission.
type QuoteOutcome struct {
	State   State             `json:"state"`
	Quote   *domain.Quote     `json:"quote,omitempty"`
	Reasons validation.Errors `json:"reasons,omitempty"`
}

func (o *LeadOutcome) Admitted() bool  { return o.State != StateRejected }
func (o *QuoteOutcome) Admitted() bool { return o.State != StateRejected }
