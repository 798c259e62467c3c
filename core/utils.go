package core

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format entities store (form-input layer sends it raw).
const DateLayout = "2006-01-02"

const displayDateLayout = "Jan 2, 2006"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ParseDate parses a stored calendar date. Blank or malformed input reports ok=false;
// callers degrade to a neutral default instead of erroring.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDate renders a stored date for display ("Jan 2, 2006").
// Blank/invalid input yields "".
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return t.Format(displayDateLayout)
}
