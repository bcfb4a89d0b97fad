package timeutil

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:mm")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
)

// Accepts zero-padded 24h times only: "09:00" yes, "9:00" no.
var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// TimeOfDay is a wall-clock time without a date. Comparisons use
// minutes since midnight.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func IsValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmtTwoDigits(t.Hour) + ":" + fmtTwoDigits(t.Minute)
}

func fmtTwoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// InRange reports whether check lies within [from, to], inclusive on both
// ends. Exact boundary times count as inside.
func InRange(check, from, to TimeOfDay) bool {
	return check.Minutes() >= from.Minutes() && check.Minutes() <= to.Minutes()
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc. Impossible
// calendar dates are rejected.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// ValidateDateRange reports whether from <= to.
func ValidateDateRange(from, to time.Time) bool {
	return !from.After(to)
}

// At resolves a time-of-day on date's calendar day in loc.
func At(date time.Time, t TimeOfDay, loc *time.Location) time.Time {
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, loc)
}

// StartOfDay returns local midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay returns the last representable second of t's calendar day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Second)
}

// Format renders t in loc using the given layout.
func Format(t time.Time, layout string, loc *time.Location) string {
	return t.In(loc).Format(layout)
}
