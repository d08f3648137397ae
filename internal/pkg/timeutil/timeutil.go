package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layouts used across the API for calendar dates and times of day.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MinutesPerDay is the number of minutes in a civil day.
const MinutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" string into minutes since midnight.
// Seconds suffixes ("HH:MM:SS") are tolerated and ignored.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}

	return hour*60 + minute, nil
}

// IsClock reports whether s is a valid "HH:MM" time of day.
func IsClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// TruncateToDay normalizes t to midnight UTC of its calendar day.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysInclusive returns the number of calendar days covered by the inclusive
// range [start, end]. Equal dates count as one day.
func DaysInclusive(start, end time.Time) int {
	s := TruncateToDay(start)
	e := TruncateToDay(end)
	return int(e.Sub(s).Hours()/24) + 1
}

// DateWithin reports whether date falls inside the inclusive range [start, end],
// comparing calendar days only. A single date is a one-day range.
func DateWithin(date, start, end time.Time) bool {
	return RangesOverlap(date, date, start, end)
}

// RangesOverlap reports whether the inclusive date ranges [aStart, aEnd] and
// [bStart, bEnd] intersect. Ranges that merely touch are overlapping.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !TruncateToDay(aStart).After(TruncateToDay(bEnd)) &&
		!TruncateToDay(aEnd).Before(TruncateToDay(bStart))
}
