package activity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by the export.
const DateLayout = "2006-01-02"

// ParseDate parses a Date cell, strictly YYYY-MM-DD, into a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	return t, nil
}

// TruncateDay drops the time-of-day component, keeping the calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDistance coerces a Distance cell to a number. Empty or malformed text yields NaN and
// ok=false; it never fails.
func ParseDistance(s string) (v float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}

// ParseElapsed converts "HH:MM:SS" to whole seconds as h*3600 + m*60 + s. The text must split
// into exactly three non-negative integer fields.
func ParseElapsed(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: want HH:MM:SS, got %d field(s)", ErrElapsedTimeFormat, len(parts))
	}
	var f [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: field %d %q is not a non-negative integer", ErrElapsedTimeFormat, i+1, p)
		}
		f[i] = n
	}
	return f[0]*3600 + f[1]*60 + f[2], nil
}
