package csm

import (
	"sort"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/reugn/go-crondst/internal/assert"
)

type sortedField []int

func (f sortedField) Matches(v int) bool {
	i := sort.SearchInts(f, v)
	return i < len(f) && f[i] == v
}

func (f sortedField) NextAtOrAfter(v int) (int, bool) {
	i := sort.SearchInts(f, v)
	if i == len(f) {
		return 0, false
	}
	return f[i], true
}

func (f sortedField) Min() int {
	return f[0]
}

func span(from, to int) sortedField {
	values := make(sortedField, 0, to-from+1)
	for i := from; i <= to; i++ {
		values = append(values, i)
	}
	return values
}

func civil(year int, month time.Month, day, hour, minute int) CivilTime {
	return CivilTime{year, month, day, hour, minute}
}

func newMachine(minute, hour, dom, month, dow sortedField, domStar, dowStar bool,
	cursor CivilTime) *CronStateMachine {
	days := NewDayMatcher(dom, dow, domStar, dowStar)
	return NewCronStateMachine(minute, hour, days, month, 50, cursor)
}

func collect(t *testing.T, csm *CronStateMachine, n int) []CivilTime {
	t.Helper()
	result := make([]CivilTime, 0, n)
	for i := 0; i < n; i++ {
		next, ok := csm.Next()
		if !ok {
			t.Fatalf("search exhausted after %d matches", i)
		}
		result = append(result, next)
	}
	return result
}

func TestNextEveryMinute(t *testing.T) {
	t.Parallel()
	csm := newMachine(span(0, 59), span(0, 23), span(1, 31), span(1, 12), span(0, 6),
		true, true, civil(2023, time.December, 31, 23, 58))
	assert.Equal(t, collect(t, csm, 3), []CivilTime{
		civil(2023, time.December, 31, 23, 59),
		civil(2024, time.January, 1, 0, 0),
		civil(2024, time.January, 1, 0, 1),
	})
}

func TestNextWorkedExample(t *testing.T) {
	t.Parallel()
	csm := newMachine(sortedField{0, 1}, sortedField{2, 3}, span(1, 31), span(1, 12), span(0, 6),
		true, true, civil(2077, time.December, 10, 2, 0))
	assert.Equal(t, collect(t, csm, 4), []CivilTime{
		civil(2077, time.December, 10, 2, 1),
		civil(2077, time.December, 10, 3, 0),
		civil(2077, time.December, 10, 3, 1),
		civil(2077, time.December, 11, 2, 0),
	})
}

func TestNextCarry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		minute   sortedField
		hour     sortedField
		dom      sortedField
		month    sortedField
		dow      sortedField
		domStar  bool
		dowStar  bool
		cursor   CivilTime
		expected []CivilTime
	}{
		{
			name:   "31st of every month",
			minute: sortedField{0}, hour: sortedField{12}, dom: sortedField{31},
			month: span(1, 12), dow: span(0, 6), dowStar: true,
			cursor: civil(2023, time.January, 31, 12, 0),
			expected: []CivilTime{
				civil(2023, time.March, 31, 12, 0),
				civil(2023, time.May, 31, 12, 0),
				civil(2023, time.July, 31, 12, 0),
			},
		},
		{
			name:   "leap day",
			minute: sortedField{2, 4}, hour: sortedField{12}, dom: sortedField{29},
			month: sortedField{2}, dow: span(0, 6), dowStar: true,
			cursor: civil(2023, time.February, 28, 12, 0),
			expected: []CivilTime{
				civil(2024, time.February, 29, 12, 2),
				civil(2024, time.February, 29, 12, 4),
				civil(2028, time.February, 29, 12, 2),
			},
		},
		{
			name:   "year carry",
			minute: sortedField{0}, hour: sortedField{0}, dom: sortedField{1},
			month: sortedField{3, 6}, dow: span(0, 6), dowStar: true,
			cursor: civil(2023, time.June, 1, 0, 0),
			expected: []CivilTime{
				civil(2024, time.March, 1, 0, 0),
				civil(2024, time.June, 1, 0, 0),
			},
		},
		{
			name:   "hour carry resets minute",
			minute: sortedField{15, 45}, hour: sortedField{9, 17}, dom: span(1, 31),
			month: span(1, 12), dow: span(0, 6), domStar: true, dowStar: true,
			cursor: civil(2023, time.May, 31, 17, 45),
			expected: []CivilTime{
				civil(2023, time.June, 1, 9, 15),
				civil(2023, time.June, 1, 9, 45),
				civil(2023, time.June, 1, 17, 15),
			},
		},
		{
			name:   "union of explicit day fields",
			minute: sortedField{0}, hour: sortedField{0}, dom: sortedField{15},
			month: span(1, 12), dow: sortedField{int(time.Monday)},
			cursor: civil(2023, time.October, 1, 0, 0),
			expected: []CivilTime{
				civil(2023, time.October, 2, 0, 0),
				civil(2023, time.October, 9, 0, 0),
				civil(2023, time.October, 15, 0, 0),
				civil(2023, time.October, 16, 0, 0),
			},
		},
		{
			name:   "intersection with wildcard-led day of month",
			minute: sortedField{30}, hour: sortedField{3}, dom: sortedField{1},
			month: span(1, 12), dow: sortedField{int(time.Monday)}, domStar: true,
			cursor: civil(2023, time.February, 28, 12, 0),
			expected: []CivilTime{
				civil(2023, time.May, 1, 3, 30),
				civil(2024, time.January, 1, 3, 30),
				civil(2024, time.April, 1, 3, 30),
			},
		},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			csm := newMachine(test.minute, test.hour, test.dom, test.month, test.dow,
				test.domStar, test.dowStar, test.cursor)
			assert.Equal(t, collect(t, csm, len(test.expected)), test.expected)
		})
	}
}

func TestNextExhausted(t *testing.T) {
	t.Parallel()
	// the 31st of February never exists
	cursor := civil(2023, time.January, 1, 0, 0)
	csm := newMachine(sortedField{0}, sortedField{0}, sortedField{31}, sortedField{2},
		span(0, 6), false, true, cursor)
	_, ok := csm.Next()
	assert.Equal(t, ok, false)
	assert.Equal(t, csm.Cursor(), cursor)
}

func TestSeek(t *testing.T) {
	t.Parallel()
	csm := newMachine(sortedField{0}, span(0, 23), span(1, 31), span(1, 12), span(0, 6),
		true, true, civil(2023, time.November, 5, 1, 0))
	next, ok := csm.Next()
	assert.Equal(t, ok, true)
	assert.Equal(t, next, civil(2023, time.November, 5, 2, 0))

	csm.Seek(civil(2023, time.November, 5, 0, 59))
	next, ok = csm.Next()
	assert.Equal(t, ok, true)
	assert.Equal(t, next, civil(2023, time.November, 5, 1, 0))
}

func TestDayMatcher(t *testing.T) {
	t.Parallel()
	explicit := NewDayMatcher(span(1, 5), span(1, 5), false, false)
	// 2023-10-07 is a Saturday, 2023-10-09 is a Monday
	assert.Equal(t, explicit.Matches(2023, time.October, 3), true)
	assert.Equal(t, explicit.Matches(2023, time.October, 9), true)
	assert.Equal(t, explicit.Matches(2023, time.October, 7), false)
	assert.Equal(t, explicit.Intersects(), false)

	filter := NewDayMatcher(span(1, 31), span(1, 3), true, false)
	assert.Equal(t, filter.Matches(2023, time.October, 9), true)
	assert.Equal(t, filter.Matches(2023, time.October, 12), false)
	assert.Equal(t, filter.Intersects(), true)
}

func TestCivilTime(t *testing.T) {
	t.Parallel()
	c := civil(2024, time.February, 29, 23, 59)
	assert.Equal(t, c.AddMinutes(1), civil(2024, time.March, 1, 0, 0))
	assert.Equal(t, c.AddMinutes(-1440), civil(2024, time.February, 28, 23, 59))
	assert.Equal(t, c.Weekday(), time.Thursday)
	assert.Equal(t, c.String(), "2024-02-29T23:59")
	assert.Equal(t, c.Compare(c), 0)
	assert.Equal(t, c.Before(c.AddMinutes(1)), true)
	assert.Equal(t, c.AddMinutes(1).Before(c), false)

	ny, err := time.LoadLocation("America/New_York")
	assert.IsNil(t, err)
	instant := time.Date(2023, time.November, 5, 6, 30, 45, 0, time.UTC)
	assert.Equal(t, CivilOf(instant.In(ny)), civil(2023, time.November, 5, 1, 30))
	assert.Equal(t, DaysIn(2023, time.February), 28)
	assert.Equal(t, DaysIn(2000, time.February), 29)
	assert.Equal(t, DaysIn(1900, time.February), 28)
}
