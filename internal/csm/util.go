package csm

import "time"

// Field is a sorted, non-empty set of allowed values for one cron field.
type Field interface {
	// Matches reports whether v is an allowed value.
	Matches(v int) bool

	// NextAtOrAfter returns the first allowed value that is >= v.
	// It returns false if v exceeds the largest allowed value.
	NextAtOrAfter(v int) (int, bool)

	// Min returns the smallest allowed value.
	Min() int
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func weekday(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}
