package crondst

import (
	"fmt"
	"strings"
	"time"

	"github.com/reugn/go-crondst/internal/csm"
)

// MaxExpressionLength is the maximum accepted length of a cron expression
// in bytes.
const MaxExpressionLength = 1000

// Schedule is a parsed five-field cron expression.
//
// Besides the allowed values of each field, a Schedule records which fields
// are wildcard-led, that is, whose text starts with "*" (as in "*" and
// "*/15"). This is a syntactic property: "0-59" allows the same minutes as
// "*" but is not wildcard-led. It selects the day matching rule and the
// daylight saving time policy of the schedule.
//
// A Schedule is immutable and safe for concurrent use.
type Schedule struct {
	expression string
	fields     [5]*FieldSet
	wildcard   [5]bool
	days       *csm.DayMatcher
}

// Parse parses a cron expression of five whitespace separated fields:
//
//	<minute> <hour> <day-of-month> <month> <day-of-week>
//
// Each field is a comma separated list of terms. A term is a value, a range
// "N-M", or "*", optionally followed by "/step". A range whose start is
// greater than its end wraps around the domain, e.g. hour "22-2". "N/step"
// stands for "N-max/step". Months and days of the week accept three-letter
// English names, case-insensitive. Day of week 7 is Sunday, same as 0.
//
// When both the day-of-month and the day-of-week field are explicit, a day
// matches if either field matches. When at least one of them is
// wildcard-led, both must match.
//
// Parse returns an error wrapping ErrInvalidExpression when the expression
// is malformed or can never fire.
func Parse(expression string) (*Schedule, error) {
	if len(expression) > MaxExpressionLength {
		return nil, invalidExpressionError(
			fmt.Sprintf("length exceeds %d characters", MaxExpressionLength))
	}
	tokens := strings.Fields(expression)
	if len(tokens) != len(cronFields) {
		return nil, invalidExpressionError(
			fmt.Sprintf("expected five fields separated by whitespace, got %d", len(tokens)))
	}

	schedule := &Schedule{expression: strings.Join(tokens, " ")}
	for i, token := range tokens {
		set, err := parseField(token, cronFields[i])
		if err != nil {
			return nil, err
		}
		schedule.fields[i] = set
		schedule.wildcard[i] = strings.HasPrefix(token, "*")
	}
	schedule.days = csm.NewDayMatcher(
		schedule.fields[dayOfMonthIndex],
		schedule.fields[dayOfWeekIndex],
		schedule.wildcard[dayOfMonthIndex],
		schedule.wildcard[dayOfWeekIndex],
	)

	if !schedule.satisfiable() {
		return nil, invalidExpressionError("results in no triggers")
	}

	return schedule, nil
}

// MustParse is like Parse but panics if the expression cannot be parsed.
func MustParse(expression string) *Schedule {
	schedule, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return schedule
}

// satisfiable reports whether some month allows some listed day of month.
// Only a wildcard-led day-of-week field can leave the day of month
// without an alternative.
func (s *Schedule) satisfiable() bool {
	if !s.wildcard[dayOfWeekIndex] {
		return true
	}
	firstDay := s.fields[dayOfMonthIndex].Min()
	for _, month := range s.fields[monthIndex].values {
		// 2000 is a leap year
		if firstDay <= csm.DaysIn(2000, time.Month(month)) {
			return true
		}
	}
	return false
}

// Minute returns the allowed minutes, in [0, 59].
func (s *Schedule) Minute() *FieldSet { return s.fields[minuteIndex] }

// Hour returns the allowed hours, in [0, 23].
func (s *Schedule) Hour() *FieldSet { return s.fields[hourIndex] }

// DayOfMonth returns the allowed days of the month, in [1, 31].
func (s *Schedule) DayOfMonth() *FieldSet { return s.fields[dayOfMonthIndex] }

// Month returns the allowed months, in [1, 12].
func (s *Schedule) Month() *FieldSet { return s.fields[monthIndex] }

// DayOfWeek returns the allowed days of the week, in [0, 6] with Sunday as 0.
func (s *Schedule) DayOfWeek() *FieldSet { return s.fields[dayOfWeekIndex] }

// MinuteWildcardLed reports whether the minute field starts with "*".
func (s *Schedule) MinuteWildcardLed() bool { return s.wildcard[minuteIndex] }

// HourWildcardLed reports whether the hour field starts with "*".
func (s *Schedule) HourWildcardLed() bool { return s.wildcard[hourIndex] }

// DayOfMonthWildcardLed reports whether the day-of-month field starts with "*".
func (s *Schedule) DayOfMonthWildcardLed() bool { return s.wildcard[dayOfMonthIndex] }

// DayOfWeekWildcardLed reports whether the day-of-week field starts with "*".
func (s *Schedule) DayOfWeekWildcardLed() bool { return s.wildcard[dayOfWeekIndex] }

// IsWildcard reports whether the schedule is a wildcard job, i.e. its minute
// or hour field is wildcard-led. Wildcard jobs follow the wall clock through
// daylight saving time transitions: they skip minutes that do not exist and
// fire twice on minutes that occur twice. Other jobs are fixed-time jobs:
// they fire once at the end of a skipped interval and only once on minutes
// that occur twice.
func (s *Schedule) IsWildcard() bool {
	return s.wildcard[minuteIndex] || s.wildcard[hourIndex]
}

// MatchesDay reports whether the calendar date of t, as observed in t's
// location, satisfies the day-of-month, day-of-week and month fields.
func (s *Schedule) MatchesDay(t time.Time) bool {
	year, month, day := t.Date()
	return s.fields[monthIndex].Matches(int(month)) && s.days.Matches(year, month, day)
}

// Next returns the first trigger instant strictly after the given time,
// in the location of after.
// It returns false if no trigger exists within DefaultMaxYearsBetweenMatches
// years.
func (s *Schedule) Next(after time.Time) (time.Time, bool) {
	return s.Iter(after).Next()
}

// String returns the expression with its fields separated by single spaces.
func (s *Schedule) String() string {
	return s.expression
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s *Schedule) MarshalText() ([]byte, error) {
	return []byte(s.expression), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Schedule) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

func (s *Schedule) machine(cursor csm.CivilTime, maxYears int) *csm.CronStateMachine {
	return csm.NewCronStateMachine(
		s.fields[minuteIndex],
		s.fields[hourIndex],
		s.days,
		s.fields[monthIndex],
		maxYears,
		cursor,
	)
}
