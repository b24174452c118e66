package csm

import "time"

// CronStateMachine finds the civil minutes that satisfy a set of cron
// fields. It holds a cursor: every call to Next returns the first matching
// civil minute strictly after the cursor and moves the cursor there.
type CronStateMachine struct {
	minute   Field
	hour     Field
	day      *DayMatcher
	month    Field
	maxYears int
	cursor   CivilTime
}

// NewCronStateMachine returns a new CronStateMachine positioned at cursor.
// A search that finds nothing within maxYears years of its starting point
// gives up.
func NewCronStateMachine(minute, hour Field, day *DayMatcher, month Field,
	maxYears int, cursor CivilTime) *CronStateMachine {
	return &CronStateMachine{
		minute:   minute,
		hour:     hour,
		day:      day,
		month:    month,
		maxYears: maxYears,
		cursor:   cursor,
	}
}

// Cursor returns the current position of the state machine.
func (csm *CronStateMachine) Cursor() CivilTime {
	return csm.cursor
}

// Seek moves the cursor to c. The next match will be strictly after c.
func (csm *CronStateMachine) Seek(c CivilTime) {
	csm.cursor = c
}

// Next advances the cursor to the next matching civil minute and returns it.
// It returns false, leaving the cursor untouched, if no match exists within
// the configured number of years.
func (csm *CronStateMachine) Next() (CivilTime, bool) {
	next, ok := csm.nextAfter(csm.cursor)
	if ok {
		csm.cursor = next
	}
	return next, ok
}

func (csm *CronStateMachine) nextAfter(from CivilTime) (CivilTime, bool) {
	year, month, day := from.Year, from.Month, from.Day
	hour, minute := from.Hour, from.Minute+1

	// normalize the starting point, most carries are handled in the loop
	if minute > 59 {
		minute = 0
		hour++
	}
	if hour > 23 {
		hour = 0
		day++
	}

	limit := from.Year + csm.maxYears
	for year <= limit {
		nextMonth, ok := csm.month.NextAtOrAfter(int(month))
		if !ok {
			year++
			month, day, hour, minute = time.Month(csm.month.Min()), 1, 0, 0
			continue
		}
		if time.Month(nextMonth) != month {
			month, day, hour, minute = time.Month(nextMonth), 1, 0, 0
		}

		nextDay, ok := csm.day.nextInMonth(year, month, day)
		if !ok {
			month, day, hour, minute = month+1, 1, 0, 0
			if month > time.December {
				month = time.January
				year++
			}
			continue
		}
		if nextDay != day {
			day, hour, minute = nextDay, 0, 0
		}

		nextHour, ok := csm.hour.NextAtOrAfter(hour)
		if !ok {
			day, hour, minute = day+1, 0, 0
			continue
		}
		if nextHour != hour {
			hour, minute = nextHour, 0
		}

		nextMinute, ok := csm.minute.NextAtOrAfter(minute)
		if !ok {
			hour, minute = hour+1, 0
			if hour > 23 {
				day, hour = day+1, 0
			}
			continue
		}

		return CivilTime{
			Year:   year,
			Month:  month,
			Day:    day,
			Hour:   hour,
			Minute: nextMinute,
		}, true
	}

	return CivilTime{}, false
}
