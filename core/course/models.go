package course

import (
	"math"
	"strings"
	"time"

	"github.com/kyalo/elimu/core"
)

var nowFunc = time.Now // mockable

// Status is derived from the current time and the stored date range; it is never persisted.
type Status string

const (
	StatusUpcoming Status = "Upcoming"
	StatusActive   Status = "Active"
	StatusEnded    Status = "Ended"
)

type Course struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   string    `json:"start_date"` // YYYY-MM-DD; may be blank
	EndDate     string    `json:"end_date"`   // YYYY-MM-DD; may be blank
	CreatorID   string    `json:"creator_id"`
	Instructors []string  `json:"instructors"` // display names, not ids
	CreatedAt   time.Time `json:"created_at"`  // UTC
	UpdatedAt   time.Time `json:"updated_at"`  // UTC
}

// DurationInDays returns the absolute span between StartDate and EndDate in whole
// days, rounded up. Missing or unparseable dates yield 0.
func (c *Course) DurationInDays() int {
	start, ok := core.ParseDate(c.StartDate)
	if !ok {
		return 0
	}
	end, ok := core.ParseDate(c.EndDate)
	if !ok {
		return 0
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Status reports the course phase relative to the wall clock. It is evaluated
// fresh on every call so a course moves from Upcoming to Active with no explicit
// transition.
func (c *Course) Status() Status {
	return c.StatusAt(nowFunc())
}

// StatusAt is the pure form of Status: before StartDate yields Upcoming, within
// the inclusive [StartDate, EndDate] range yields Active, anything else
// (including unparseable dates) falls through to Ended.
func (c *Course) StatusAt(now time.Time) Status {
	start, startOK := core.ParseDate(c.StartDate)
	if startOK && now.Before(start) {
		return StatusUpcoming
	}
	end, endOK := core.ParseDate(c.EndDate)
	if startOK && endOK && !now.Before(start) && !now.After(end) {
		return StatusActive
	}
	return StatusEnded
}

// FormatDate renders a stored date for display; blank/invalid input yields "".
func (c *Course) FormatDate(date string) string {
	return core.FormatDate(date)
}

// InstructorsDisplay joins instructor names with ", ".
func (c *Course) InstructorsDisplay() string {
	return strings.Join(c.Instructors, ", ")
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date" validate:"dateonly"`
	EndDate     string   `json:"end_date" validate:"dateonly"`
	CreatorID   string   `json:"creator_id"`
	Instructors []string `json:"instructors"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Description = core.CleanString(nc.Description)
	nc.StartDate = core.CleanString(nc.StartDate)
	nc.EndDate = core.CleanString(nc.EndDate)
	nc.CreatorID = core.CleanString(nc.CreatorID)
	nc.Instructors = cleanInstructors(nc.Instructors)
	return core.Validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing Course.
// Edits are full replacements; only the id is preserved.
type UpdateCourse struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date" validate:"dateonly"`
	EndDate     string   `json:"end_date" validate:"dateonly"`
	CreatorID   string   `json:"creator_id"`
	Instructors []string `json:"instructors"`
}

func (uc *UpdateCourse) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	uc.Description = core.CleanString(uc.Description)
	uc.StartDate = core.CleanString(uc.StartDate)
	uc.EndDate = core.CleanString(uc.EndDate)
	uc.CreatorID = core.CleanString(uc.CreatorID)
	uc.Instructors = cleanInstructors(uc.Instructors)
	return core.Validate.Struct(uc)
}

func cleanInstructors(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if name = core.CleanString(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	return cleaned
}

type QueryFilter struct {
	Search      string `query:"search"`
	Status      Status `query:"status"`
	CreatedFrom string `query:"created_from"` // YYYY-MM-DD, inclusive
	CreatedTo   string `query:"created_to"`   // YYYY-MM-DD, inclusive
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Status == "" && qf.CreatedFrom == "" && qf.CreatedTo == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = Status(core.CleanString(string(qf.Status)))
	qf.CreatedFrom = core.CleanString(qf.CreatedFrom)
	qf.CreatedTo = core.CleanString(qf.CreatedTo)
}

// MatchesCreatedRange reports whether createdAt falls within the filter's
// creation-date window. Bounds are whole days, inclusive; unparseable bounds
// are ignored.
func (qf *QueryFilter) MatchesCreatedRange(createdAt time.Time) bool {
	if from, ok := core.ParseDate(qf.CreatedFrom); ok && createdAt.Before(from) {
		return false
	}
	if to, ok := core.ParseDate(qf.CreatedTo); ok && !createdAt.Before(to.AddDate(0, 0, 1)) {
		return false
	}
	return true
}
