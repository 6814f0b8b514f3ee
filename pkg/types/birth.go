package types

import (
	"errors"
	"time"
)

// Traditional Thai weekday labels. A birth chart is keyed by the weekday
// label, not the calendar weekday: the caller may supply the label
// explicitly (some charts use sunset-based day boundaries), but a label
// that contradicts the civil weekday of the date is rejected.
const (
	WeekdaySunday    = "อาทิตย์"
	WeekdayMonday    = "จันทร์"
	WeekdayTuesday   = "อังคาร"
	WeekdayWednesday = "พุธ"
	WeekdayThursday  = "พฤหัสบดี"
	WeekdayFriday    = "ศุกร์"
	WeekdaySaturday  = "เสาร์"
)

// BirthInput validation errors.
var (
	ErrDateZero        = errors.New("birth date must not be zero")
	ErrUnknownWeekday  = errors.New("unknown weekday label")
	ErrWeekdayMismatch = errors.New("weekday label does not match birth date")
)

// BirthInput carries the birth date and the optional explicit weekday
// label for a chart request. Created once per request and never mutated.
type BirthInput struct {
	Date         time.Time
	WeekdayLabel string // empty means "derive from Date"
}

// NewBirthInput constructs a BirthInput. The weekday label, when present,
// is checked for being a known label; consistency against the date is the
// generator's job since it owns the weekday tables.
func NewBirthInput(date time.Time, weekdayLabel string) (BirthInput, error) {
	if date.IsZero() {
		return BirthInput{}, ErrDateZero
	}
	if weekdayLabel != "" && !knownWeekdays[weekdayLabel] {
		return BirthInput{}, ErrUnknownWeekday
	}
	return BirthInput{Date: date, WeekdayLabel: weekdayLabel}, nil
}

// knownWeekdays is the set of recognized weekday labels.
var knownWeekdays = map[string]bool{
	WeekdaySunday:    true,
	WeekdayMonday:    true,
	WeekdayTuesday:   true,
	WeekdayWednesday: true,
	WeekdayThursday:  true,
	WeekdayFriday:    true,
	WeekdaySaturday:  true,
}
