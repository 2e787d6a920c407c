package codec

import (
	"fmt"
	"time"
)

// DateLayout is the date format used in portal query parameters and payloads.
const DateLayout = "2006-01-02"

// FormatDate renders t as a portal date.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// ParseDate accepts a portal date or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("codec: invalid date %q: %w", s, err)
	}
	return t, nil
}
