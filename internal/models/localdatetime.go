package models

import (
	"fmt"
	"strings"
	"time"
)

// LocalDateTime serializes as ISO-8601 without a zone suffix
// (e.g. "2025-03-14T09:26:53"), the format the frontend expects.
type LocalDateTime time.Time

const localDateTimeLayout = "2006-01-02T15:04:05"

// MarshalJSON implements json.Marshaler.
func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(localDateTimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts both the plain layout
// and variants carrying fractional seconds.
func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	for _, layout := range []string{localDateTimeLayout, "2006-01-02T15:04:05.999999999", time.RFC3339} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = LocalDateTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q", s)
}

// Time returns the underlying time.Time.
func (t LocalDateTime) Time() time.Time {
	return time.Time(t)
}
