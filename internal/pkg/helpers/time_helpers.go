package helpers

import "time"

// DateLayout is the wire format for date-only values.
const DateLayout = "2006-01-02"

// FormatDate renders a time as a date-only string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a date-only string. The time portion is zero and the
// location UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns the current date truncated to midnight UTC. Used for the
// server-side enrolment date default, computed once per record at creation.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
