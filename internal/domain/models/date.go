package models

import (
	"fmt"
	"time"
)

// ISODate is the calendar date layout used across sources and renderers.
const ISODate = "2006-01-02"

// Date is a pure calendar date (no time of day, no zone). Month stepping is
// done with explicit clamping arithmetic instead of time.Time.AddDate, whose
// month-overflow behavior (Jan 31 + 1 month = Mar 2/3) is not what a monthly
// series wants.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a date without validation; callers parse via ParseDate when
// the input is untrusted.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Equal reports whether both dates name the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// AddMonths returns the date months after d with the same day-of-month,
// clamped to the last day of the target month when the original day does not
// exist there (Jan 31 + 1 month = Feb 28/29). Negative month counts use
// floor semantics.
func (d Date) AddMonths(months int) Date {
	total := d.Month - 1 + months
	year := d.Year + floorDiv(total, 12)
	month := floorMod(total, 12) + 1
	day := d.Day
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{Year: year, Month: month, Day: day}
}

// DaysInMonth returns the number of days in the given month, leap years
// included.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// MarshalJSON renders the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts an ISO date string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a JSON string, got %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
