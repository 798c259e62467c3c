package lesson

import (
	"net/url"
	"strings"
	"time"

	"github.com/kyalo/elimu/core"
)

var nowFunc = time.Now // mockable

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

var AllStatuses = []Status{StatusDraft, StatusPublished, StatusArchived}

// ParseStatus maps loosely-typed external input onto the enum;
// anything unrecognized defaults to draft.
func ParseStatus(s string) Status {
	switch Status(core.CleanString(s, true /* lower */)) {
	case StatusPublished:
		return StatusPublished
	case StatusArchived:
		return StatusArchived
	default:
		return StatusDraft
	}
}

const noVideoFileName = "No video"

type Lesson struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Status      Status    `json:"status"`
	PublishDate string    `json:"publish_date"` // YYYY-MM-DD; blank until first publish
	VideoURL    string    `json:"video_url"`    // free-form; not guaranteed to parse
	CourseID    string    `json:"course_id"`    // not integrity-checked
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

func (l *Lesson) IsDraft() bool     { return l.Status == StatusDraft }
func (l *Lesson) IsPublished() bool { return l.Status == StatusPublished }
func (l *Lesson) IsArchived() bool  { return l.Status == StatusArchived }

// Publish returns a published copy. PublishDate is stamped with today unless an
// explicit date is supplied, so republishing refreshes the date.
func (l Lesson) Publish(explicitDate ...string) Lesson {
	date := today()
	if len(explicitDate) > 0 {
		if d := core.CleanString(explicitDate[0]); d != "" {
			date = d
		}
	}
	l.Status = StatusPublished
	l.PublishDate = date
	l.UpdatedAt = nowFunc().UTC()
	return l
}

// Archive returns an archived copy. PublishDate is untouched.
func (l Lesson) Archive() Lesson {
	l.Status = StatusArchived
	l.UpdatedAt = nowFunc().UTC()
	return l
}

// MakeDraft returns a draft copy. PublishDate is untouched so a restored lesson
// keeps its prior publish date.
func (l Lesson) MakeDraft() Lesson {
	l.Status = StatusDraft
	l.UpdatedAt = nowFunc().UTC()
	return l
}

// UpdateStatus is the generic transition: every state reaches every other state.
// Entering published from a non-published state stamps PublishDate with today.
func (l Lesson) UpdateStatus(newStatus Status) Lesson {
	if newStatus == StatusPublished && l.Status != StatusPublished {
		l.PublishDate = today()
	}
	l.Status = newStatus
	l.UpdatedAt = nowFunc().UTC()
	return l
}

// IsScheduled reports whether the lesson is published with a publish date still in the future.
func (l *Lesson) IsScheduled() bool {
	return l.IsScheduledAt(nowFunc())
}

func (l *Lesson) IsScheduledAt(now time.Time) bool {
	if l.Status != StatusPublished {
		return false
	}
	date, ok := core.ParseDate(l.PublishDate)
	if !ok {
		return false
	}
	return date.After(now)
}

// FormattedPublishDate renders PublishDate for display; blank yields "Not published".
func (l *Lesson) FormattedPublishDate() string {
	if l.PublishDate == "" {
		return "Not published"
	}
	return core.FormatDate(l.PublishDate)
}

// VideoFileName extracts the last path segment of VideoURL, best effort.
// Unparseable URLs fall back to a raw split on "/"; an empty URL yields "No video".
func (l *Lesson) VideoFileName() string {
	if l.VideoURL == "" {
		return noVideoFileName
	}
	if u, err := url.Parse(l.VideoURL); err == nil && u.IsAbs() && u.Host != "" {
		return lastSegment(u.Path)
	}
	return lastSegment(l.VideoURL)
}

func lastSegment(s string) string {
	parts := strings.Split(s, "/")
	if last := parts[len(parts)-1]; last != "" {
		return last
	}
	return "video"
}

func today() string {
	return nowFunc().UTC().Format(core.DateLayout)
}

// NewLesson contains information needed to create a new Lesson.
type NewLesson struct {
	Title       string `json:"title" validate:"required"`
	Status      string `json:"status"` // unrecognized values default to draft
	PublishDate string `json:"publish_date" validate:"dateonly"`
	VideoURL    string `json:"video_url"`
	CourseID    string `json:"course_id"`
	CreatorID   string `json:"creator_id"`
}

func (nl *NewLesson) Validate() error {
	nl.Title = core.CleanString(nl.Title)
	nl.Status = core.CleanString(nl.Status, true /* lower */)
	nl.PublishDate = core.CleanString(nl.PublishDate)
	nl.VideoURL = core.CleanString(nl.VideoURL)
	nl.CourseID = core.CleanString(nl.CourseID)
	nl.CreatorID = core.CleanString(nl.CreatorID)
	return core.Validate.Struct(nl)
}

// UpdateLesson defines what information may be provided to modify an existing Lesson.
// Edits are full replacements; only the id is preserved.
type UpdateLesson struct {
	Title       string `json:"title" validate:"required"`
	Status      string `json:"status"`
	PublishDate string `json:"publish_date" validate:"dateonly"`
	VideoURL    string `json:"video_url"`
	CourseID    string `json:"course_id"`
	CreatorID   string `json:"creator_id"`
}

func (ul *UpdateLesson) Validate() error {
	ul.Title = core.CleanString(ul.Title)
	ul.Status = core.CleanString(ul.Status, true /* lower */)
	ul.PublishDate = core.CleanString(ul.PublishDate)
	ul.VideoURL = core.CleanString(ul.VideoURL)
	ul.CourseID = core.CleanString(ul.CourseID)
	ul.CreatorID = core.CleanString(ul.CreatorID)
	return core.Validate.Struct(ul)
}

type QueryFilter struct {
	CourseID string `query:"course_id"`
	Status   string `query:"status"`
	Search   string `query:"search"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.CourseID == "" && qf.Status == "" && qf.Search == ""
}

func (qf *QueryFilter) Clean() {
	qf.CourseID = core.CleanString(qf.CourseID)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	qf.Search = core.CleanString(qf.Search)
}
