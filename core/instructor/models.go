package instructor

import (
	"regexp"
	"strings"
	"time"

	"github.com/kyalo/elimu/core"
)

var nowFunc = time.Now // mockable

// emailRegex is presentation-only: a conventional local@domain.tld shape.
// Invalid emails are representable and flagged, never rejected.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Instructor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// Initials returns the uppercased first letters of the first and last name
// tokens; single-token names yield a single letter.
func (i *Instructor) Initials() string {
	tokens := strings.Fields(i.Name)
	if len(tokens) == 0 {
		return ""
	}
	first := strings.ToUpper(tokens[0][:1])
	if len(tokens) == 1 {
		return first
	}
	return first + strings.ToUpper(tokens[len(tokens)-1][:1])
}

// IsValidEmail drives a warning badge; it never blocks storage.
func (i *Instructor) IsValidEmail() bool {
	return emailRegex.MatchString(i.Email)
}

// EmailDomain returns the part after the first "@"; "" if no "@" is present.
func (i *Instructor) EmailDomain() string {
	at := strings.Index(i.Email, "@")
	if at < 0 {
		return ""
	}
	return i.Email[at+1:]
}

// MatchesSearch does a case-insensitive substring match against name, email or
// email domain. An empty query matches everything.
func (i *Instructor) MatchesSearch(query string) bool {
	query = core.CleanString(query, true /* lower */)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(i.Name), query) ||
		strings.Contains(strings.ToLower(i.Email), query) ||
		strings.Contains(strings.ToLower(i.EmailDomain()), query)
}

// NewInstructor contains information needed to create a new Instructor.
// Email format is deliberately not validated here (see IsValidEmail);
// only uniqueness is enforced, by Validate.
type NewInstructor struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

func (ni *NewInstructor) Validate(svc *Service) error {
	ni.Name = core.CleanString(ni.Name)
	ni.Email = core.CleanString(ni.Email, true /* lower */)

	if err := core.Validate.Struct(ni); err != nil {
		return err
	}
	return svc.checkUniqueness(ni.Email)
}

// UpdateInstructor defines what information may be provided to modify an existing Instructor.
type UpdateInstructor struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

func (ui *UpdateInstructor) Validate(origInst Instructor, svc *Service) error {
	ui.Name = core.CleanString(ui.Name)
	ui.Email = core.CleanString(ui.Email, true /* lower */)

	if err := core.Validate.Struct(ui); err != nil {
		return err
	}
	return svc.checkUniqueness(ui.Email, origInst)
}

type QueryFilter struct {
	Search string `query:"search"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
