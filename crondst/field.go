package crondst

import (
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

// FieldSet is the sorted set of values allowed by a single cron field.
// A FieldSet is immutable once parsed.
type FieldSet struct {
	min    int
	max    int
	values []int
	mask   uint64
}

func newFieldSet(min, max int, mask uint64) *FieldSet {
	values := make([]int, 0, bits.OnesCount64(mask))
	for v := min; v <= max; v++ {
		if mask&(1<<uint(v)) != 0 {
			values = append(values, v)
		}
	}
	return &FieldSet{
		min:    min,
		max:    max,
		values: values,
		mask:   mask,
	}
}

// Matches reports whether v is an allowed value.
func (f *FieldSet) Matches(v int) bool {
	return v >= f.min && v <= f.max && f.mask&(1<<uint(v)) != 0
}

// NextAtOrAfter returns the first allowed value that is >= v.
// It returns false if v exceeds the largest allowed value, in which case
// the caller must carry into the next more significant field.
func (f *FieldSet) NextAtOrAfter(v int) (int, bool) {
	i := sort.SearchInts(f.values, v)
	if i == len(f.values) {
		return 0, false
	}
	return f.values[i], true
}

// Min returns the smallest allowed value.
func (f *FieldSet) Min() int {
	return f.values[0]
}

// Max returns the largest allowed value.
func (f *FieldSet) Max() int {
	return f.values[len(f.values)-1]
}

// Domain returns the bounds of the field's domain.
func (f *FieldSet) Domain() (min, max int) {
	return f.min, f.max
}

// Values returns a copy of the allowed values in increasing order.
func (f *FieldSet) Values() []int {
	values := make([]int, len(f.values))
	copy(values, f.values)
	return values
}

// Full reports whether every value of the domain is allowed.
func (f *FieldSet) Full() bool {
	return len(f.values) == f.max-f.min+1
}

func (f *FieldSet) String() string {
	return strings.Trim(strings.Join(strings.Fields(fmt.Sprint(f.values)), ","), "[]")
}

// cronField describes the syntax and the domain of one cron field.
type cronField struct {
	name  string
	min   int
	max   int
	names map[string]int
	// sundayAlias folds the value 7 onto 0
	sundayAlias bool
}

var (
	monthNames = map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}
	dayNames = map[string]int{
		"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
	}

	// <minute> <hour> <day-of-month> <month> <day-of-week>
	cronFields = [...]cronField{
		{name: "minute", min: 0, max: 59},
		{name: "hour", min: 0, max: 23},
		{name: "day-of-month", min: 1, max: 31},
		{name: "month", min: 1, max: 12, names: monthNames},
		{name: "day-of-week", min: 0, max: 7, names: dayNames, sundayAlias: true},
	}
)

const (
	minuteIndex = iota
	hourIndex
	dayOfMonthIndex
	monthIndex
	dayOfWeekIndex
)

// parseField parses the text of a single field into a FieldSet.
func parseField(text string, field cronField) (*FieldSet, error) {
	var mask uint64
	for _, term := range strings.Split(text, ",") {
		values, err := field.parseTerm(term)
		if err != nil {
			return nil, invalidExpressionError(fmt.Sprintf("bad %s %q: %s", field.name, term, err))
		}
		for _, v := range values {
			mask |= 1 << uint(v)
		}
	}

	max := field.max
	if field.sundayAlias {
		if mask&(1<<7) != 0 {
			mask = mask&^(1<<7) | 1
		}
		max = 6
	}
	if mask == 0 {
		return nil, invalidExpressionError(fmt.Sprintf("bad %s %q: no values", field.name, text))
	}

	return newFieldSet(field.min, max, mask), nil
}

// parseTerm resolves one list element: a value, a range, "*", each
// optionally followed by "/step".
func (f cronField) parseTerm(term string) ([]int, error) {
	base, stepText, hasStep := strings.Cut(term, "/")
	step := 1
	if hasStep {
		var err error
		if step, err = parseNumber(stepText); err != nil || step <= 0 {
			return nil, fmt.Errorf("step %q must be a positive integer", stepText)
		}
	}

	switch {
	case base == "*":
		return fillStep(f.min, f.max, step), nil

	case strings.Contains(base, "-"):
		lowText, highText, _ := strings.Cut(base, "-")
		low, err := f.value(lowText)
		if err != nil {
			return nil, err
		}
		high, err := f.value(highText)
		if err != nil {
			return nil, err
		}
		if low > high {
			return fillWrapped(low, high, f.min, f.max, step), nil
		}
		return fillStep(low, high, step), nil

	default:
		v, err := f.value(base)
		if err != nil {
			return nil, err
		}
		if hasStep {
			return fillStep(v, f.max, step), nil
		}
		return []int{v}, nil
	}
}

// value parses a number or a name and checks it against the domain.
func (f cronField) value(text string) (int, error) {
	v, err := parseNumber(text)
	if err != nil {
		named, ok := f.names[strings.ToLower(text)]
		if !ok {
			return 0, fmt.Errorf("unknown value %q", text)
		}
		v = named
	}
	if !inScope(v, f.min, f.max) {
		return 0, fmt.Errorf("value %d out of range [%d, %d]", v, f.min, f.max)
	}
	return v, nil
}

// parseNumber accepts unsigned decimal integers only.
func parseNumber(text string) (int, error) {
	if text == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(text)
}

func fillStep(from, to, step int) []int {
	values := make([]int, 0, (to-from)/step+1)
	for v := from; v <= to; v += step {
		values = append(values, v)
	}
	return values
}

// fillWrapped fills a range whose low end is greater than its high end by
// continuing past the domain maximum at the domain minimum.
func fillWrapped(low, high, min, max, step int) []int {
	size := max - min + 1
	length := high - low + size
	values := make([]int, 0, length/step+1)
	for i := 0; i <= length; i += step {
		v := low + i
		if v > max {
			v -= size
		}
		values = append(values, v)
	}
	return values
}

func inScope(i, min, max int) bool {
	return i >= min && i <= max
}
