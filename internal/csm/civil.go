package csm

import (
	"fmt"
	"time"
)

// CivilTime is a calendar date and a time of day at minute precision with no
// associated zone offset. It may be ambiguous or non-existent relative to a
// real time zone.
type CivilTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// CivilOf returns the civil minute of t as observed in t's location.
// Seconds and sub-seconds are truncated.
func CivilOf(t time.Time) CivilTime {
	year, month, day := t.Date()
	return CivilTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// In returns the civil time interpreted in loc. For a civil time that is
// ambiguous or missing in loc the choice of offset is left to time.Date.
func (c CivilTime) In(loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, 0, 0, loc)
}

// UTC returns the civil time read as if it were a UTC wall clock.
func (c CivilTime) UTC() time.Time {
	return c.In(time.UTC)
}

// AddMinutes returns c shifted by n minutes of calendar arithmetic.
func (c CivilTime) AddMinutes(n int) CivilTime {
	return CivilOf(c.UTC().Add(time.Duration(n) * time.Minute))
}

// Compare returns -1, 0 or +1 depending on whether c is before, equal to or
// after o.
func (c CivilTime) Compare(o CivilTime) int {
	pairs := [...][2]int{
		{c.Year, o.Year},
		{int(c.Month), int(o.Month)},
		{c.Day, o.Day},
		{c.Hour, o.Hour},
		{c.Minute, o.Minute},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// Before reports whether c is strictly before o.
func (c CivilTime) Before(o CivilTime) bool {
	return c.Compare(o) < 0
}

// Weekday returns the day of the week of the civil date.
func (c CivilTime) Weekday() time.Weekday {
	return weekday(c.Year, c.Month, c.Day)
}

func (c CivilTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d", c.Year, int(c.Month), c.Day, c.Hour, c.Minute)
}
