package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLead_Valid(t *testing.T) {
	errs := Lead(LeadInput{
		Name:    "John Smith",
		Email:   "john@example.com",
		Phone:   "123456789",
		Service: "window_replacement",
	})
	assert.True(t, errs.Ok())
}

func TestLead_NameTooShort(t *testing.T) {
	errs := Lead(LeadInput{Name: "J", Email: "john@example.com"})
	assert.False(t, errs.Ok())
	assert.Contains(t, errs, "name")
}

func TestLead_EmailRequired(t *testing.T) {
	errs := Lead(LeadInput{Name: "John"})
	assert.Contains(t, errs, "email")
}

func TestLead_EmailSyntax(t *testing.T) {
	for _, bad := range []string{"not-an-email", "a@", "@b.com", "a b@c.com"} {
		errs := Lead(LeadInput{Name: "John", Email: bad})
		assert.Contains(t, errs, "email", "email %q should be rejected", bad)
	}
}

func TestLead_PhoneRules(t *testing.T) {
	// 5 digits is below the minimum
	errs := Lead(LeadInput{Name: "John", Email: "john@example.com", Phone: "12345"})
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs["phone"], "9 to 15 digits")

	// 9 digits is the minimum accepted length
	errs = Lead(LeadInput{Name: "John", Email: "john@example.com", Phone: "123456789"})
	assert.True(t, errs.Ok())

	// leading + is allowed
	errs = Lead(LeadInput{Name: "John", Email: "john@example.com", Phone: "+77011234567"})
	assert.True(t, errs.Ok())

	// 16 digits is too long
	errs = Lead(LeadInput{Name: "John", Email: "john@example.com", Phone: "1234567890123456"})
	assert.Contains(t, errs, "phone")

	// 15 digits is the longest accepted form
	errs = Lead(LeadInput{Name: "John", Email: "john@example.com", Phone: "123456789012345"})
	assert.True(t, errs.Ok())

	// the plus counts toward the 15-character column limit
	errs = Lead(LeadInput{Name: "John", Email: "john@example.com", Phone: "+123456789012345"})
	assert.Contains(t, errs, "phone")
	errs = Lead(LeadInput{Name: "John", Email: "john@example.com", Phone: "+12345678901234"})
	assert.True(t, errs.Ok())

	// non-digits are rejected
	errs = Lead(LeadInput{Name: "John", Email: "john@example.com", Phone: "12345abcd"})
	assert.Contains(t, errs, "phone")
}

func TestLead_PhoneOptional(t *testing.T) {
	errs := Lead(LeadInput{Name: "John", Email: "john@example.com"})
	assert.True(t, errs.Ok())
}

func TestLead_UnknownService(t *testing.T) {
	errs := Lead(LeadInput{Name: "John", Email: "john@example.com", Service: "siding"})
	assert.Contains(t, errs, "service")
}

func TestQuote_Valid(t *testing.T) {
	errs := Quote(QuoteInput{Name: "Jane", Email: "jane@example.com", Details: "3 windows, back of house"})
	assert.True(t, errs.Ok())
}

func TestQuote_MissingFields(t *testing.T) {
	errs := Quote(QuoteInput{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
}
