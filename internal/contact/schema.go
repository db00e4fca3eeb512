package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Submission is a validated contact form payload. It is constructed per
// request, transformed into a lead email, and discarded; nothing is persisted.
//
// JSON field names match the browser form exactly. The client runs the same
// constraints for instant feedback; the server re-validates at the trust
// boundary so the two can never disagree about what "valid" means.
type Submission struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Sector       string `json:"sector"`
	Maintenance  string `json:"maintenance"`
	Budget       string `json:"budget"`
	Cinematic    bool   `json:"cinematic"`
	Message      string `json:"message"`
	Lang         string `json:"lang"`
	Honeypot     string `json:"_honeypot"`
	CaptchaToken string `json:"turnstileToken"`
}

// IsBot reports whether the hidden honeypot field was populated. A non-empty
// honeypot is a bot signal, not a validation error.
func (s *Submission) IsBot() bool {
	return s.Honeypot != ""
}

// Field constraints, shared verbatim with the browser-side schema.
const (
	MinNameLen    = 2
	MaxNameLen    = 100
	MaxEmailLen   = 254
	MaxPhoneLen   = 20
	MaxMessageLen = 2000
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{M}\s'.\-]+$`)
	phonePattern = regexp.MustCompile(`^[+\d\s()\-]*$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var (
	sectorValues      = []string{"", "Industry", "Creative", "Personal", "Business"}
	maintenanceValues = []string{"managed", "handover", "undecided"}
	budgetValues      = []string{"", "$1K–$3K", "$3K–$5K", "$5K–$10K", "$10K+"}
	langValues        = []string{"en", "es"}
)

// ErrMalformedBody indicates the request body was not parseable JSON at all,
// as opposed to JSON that fails field validation.
var ErrMalformedBody = errors.New("contact: malformed request body")

// Issue describes a single field-level validation violation.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a submission. Validation
// is all-or-nothing: a submission is valid iff there are zero issues.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact: validation failed with %d issue(s)", len(e.Issues))
}

// FieldErrors returns the first message per field, for rendering next to
// form inputs. First violation wins when a field has multiple issues.
func (e *ValidationError) FieldErrors() map[string]string {
	out := make(map[string]string, len(e.Issues))
	for _, issue := range e.Issues {
		if _, seen := out[issue.Field]; !seen {
			out[issue.Field] = issue.Message
		}
	}
	return out
}

// submissionWire distinguishes absent fields from explicit zero values so
// defaults apply only when a field was omitted.
type submissionWire struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Sector       *string `json:"sector"`
	Maintenance  *string `json:"maintenance"`
	Budget       *string `json:"budget"`
	Cinematic    *bool   `json:"cinematic"`
	Message      *string `json:"message"`
	Lang         *string `json:"lang"`
	Honeypot     *string `json:"_honeypot"`
	CaptchaToken *string `json:"turnstileToken"`
}

// ParseAndValidate parses raw JSON and validates every field against the
// shared schema. On success it returns a fully-typed Submission with defaults
// applied (maintenance "undecided", cinematic false, lang "en"). On failure it
// returns either ErrMalformedBody or a *ValidationError listing each
// violating field.
func ParseAndValidate(raw []byte) (*Submission, error) {
	var wire submissionWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, &ValidationError{Issues: []Issue{{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("Expected %s", typeErr.Type.Kind()),
			}}}
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	name := strVal(wire.Name)
	switch {
	case utf8.RuneCountInString(name) < MinNameLen:
		add("name", "Name must be at least 2 characters")
	case utf8.RuneCountInString(name) > MaxNameLen:
		add("name", "Name must be under 100 characters")
	case !namePattern.MatchString(name):
		add("name", "Name contains invalid characters")
	}

	email := strVal(wire.Email)
	switch {
	case !emailPattern.MatchString(email):
		add("email", "Invalid email address")
	case len(email) > MaxEmailLen:
		add("email", "Email is too long")
	}

	phone := strVal(wire.Phone)
	switch {
	case utf8.RuneCountInString(phone) > MaxPhoneLen:
		add("phone", "Phone number is too long")
	case !phonePattern.MatchString(phone):
		add("phone", "Invalid phone format")
	}

	sector := strVal(wire.Sector)
	if !oneOf(sector, sectorValues) {
		add("sector", "Invalid sector")
	}

	maintenance := "undecided"
	if wire.Maintenance != nil {
		maintenance = *wire.Maintenance
		if !oneOf(maintenance, maintenanceValues) {
			add("maintenance", "Invalid maintenance mode")
		}
	}

	budget := strVal(wire.Budget)
	if !oneOf(budget, budgetValues) {
		add("budget", "Invalid budget range")
	}

	message := strVal(wire.Message)
	if utf8.RuneCountInString(message) > MaxMessageLen {
		add("message", "Message must be under 2,000 characters")
	}

	lang := "en"
	if wire.Lang != nil {
		lang = *wire.Lang
		if !oneOf(lang, langValues) {
			add("lang", "Invalid language")
		}
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	return &Submission{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Sector:       sector,
		Maintenance:  maintenance,
		Budget:       budget,
		Cinematic:    boolVal(wire.Cinematic),
		Message:      message,
		Lang:         lang,
		Honeypot:     strVal(wire.Honeypot),
		CaptchaToken: strVal(wire.CaptchaToken),
	}, nil
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolVal(p *bool) bool {
	return p != nil && *p
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
