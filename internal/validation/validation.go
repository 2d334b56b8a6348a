package validation

import (
	"regexp"
	"strings"

	"windowupgrades/internal/domain"
)

// Errors maps a field name to a human-readable reason, suitable for
// redisplaying the submitted form. An empty map means the input passed.
type Errors map[string]string

func (e Errors) Ok() bool { return len(e) == 0 }

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)
	phoneRe = regexp.MustCompile(`^\+?\d{9,15}$`)
)

const (
	minNameLen = 2
	// maxPhoneLen matches the varchar(15) phone columns; "+" counts
	// toward the limit, so "+" plus 15 digits is rejected.
	maxPhoneLen = 15
)

// LeadInput is the raw public lead submission before admission.
type LeadInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
}

// QuoteInput is the raw quote request before admission.
type QuoteInput struct {
	Name    string
	Email   string
	Phone   string
	Details string
}

// Lead checks field constraints only; email uniqueness is a storage
// concern and is checked by the intake service against the repository.
func Lead(in LeadInput) Errors {
	errs := Errors{}

	if len(strings.TrimSpace(in.Name)) < minNameLen {
		errs["name"] = "Name must be at least 2 characters long."
	}
	validateEmail(errs, in.Email)
	validatePhone(errs, in.Phone)
	if in.Service != "" && !domain.ServiceType(in.Service).Valid() {
		errs["service"] = "Select a valid service."
	}

	return errs
}

// Quote checks quote-request fields. There is no uniqueness rule for
// quote emails.
func Quote(in QuoteInput) Errors {
	errs := Errors{}

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required."
	}
	validateEmail(errs, in.Email)
	validatePhone(errs, in.Phone)

	return errs
}

// Email reports whether s is a syntactically valid address.
func Email(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

func validateEmail(errs Errors, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs["email"] = "Email is required."
		return
	}
	if !emailRe.MatchString(email) {
		errs["email"] = "Enter a valid email address."
	}
}

// Phone is optional everywhere it appears; an empty value always passes.
func validatePhone(errs Errors, phone string) {
	if phone == "" {
		return
	}
	if len(phone) > maxPhoneLen || !phoneRe.MatchString(phone) {
		errs["phone"] = "Enter a valid phone number with up to 15 characters and 9 to 15 digits."
	}
}
