package csm

import "time"

// DayMatcher decides whether a calendar date satisfies the day-of-month and
// day-of-week fields of a schedule.
//
// When both fields are explicit (neither text starts with "*"), a date
// matches if either field matches. When at least one of them is
// wildcard-led, both must match; a plain "*" therefore acts as no
// constraint, and "*/n" narrows the other field.
type DayMatcher struct {
	dayOfMonth Field
	dayOfWeek  Field
	intersect  bool
}

// NewDayMatcher returns a new DayMatcher. The day-of-week field holds
// values in [0, 6] with Sunday as 0.
func NewDayMatcher(dayOfMonth, dayOfWeek Field, domWildcardLed, dowWildcardLed bool) *DayMatcher {
	return &DayMatcher{
		dayOfMonth: dayOfMonth,
		dayOfWeek:  dayOfWeek,
		intersect:  domWildcardLed || dowWildcardLed,
	}
}

// Intersects reports whether dates must satisfy both day fields.
func (m *DayMatcher) Intersects() bool {
	return m.intersect
}

// Matches reports whether the given date satisfies the day fields.
func (m *DayMatcher) Matches(year int, month time.Month, day int) bool {
	return m.matches(day, weekday(year, month, day))
}

func (m *DayMatcher) matches(day int, wd time.Weekday) bool {
	domHit := m.dayOfMonth.Matches(day)
	dowHit := m.dayOfWeek.Matches(int(wd))
	if m.intersect {
		return domHit && dowHit
	}
	return domHit || dowHit
}

// nextInMonth returns the first matching day >= day within the month.
// It returns false if the month is exhausted.
func (m *DayMatcher) nextInMonth(year int, month time.Month, day int) (int, bool) {
	last := DaysIn(year, month)
	if day > last {
		return 0, false
	}
	wd := weekday(year, month, day)
	for ; day <= last; day++ {
		if m.matches(day, wd) {
			return day, true
		}
		wd = (wd + 1) % 7
	}
	return 0, false
}
