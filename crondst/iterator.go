package crondst

import (
	"time"

	"github.com/reugn/go-crondst/internal/csm"
	"github.com/reugn/go-crondst/logger"
)

// DefaultMaxYearsBetweenMatches is the default limit on the number of years
// searched for the next trigger.
const DefaultMaxYearsBetweenMatches = 50

// CivilTime is a calendar date and a time of day at minute precision with no
// associated zone offset.
type CivilTime = csm.CivilTime

// IteratorOptions configures an Iterator.
type IteratorOptions struct {
	// Location is the time zone whose wall clock the schedule follows.
	// When nil, the location of the start instant is used.
	Location *time.Location

	// MaxYearsBetweenMatches limits how many years the search for the next
	// trigger may advance before the iterator reports exhaustion.
	// Zero or a negative value selects DefaultMaxYearsBetweenMatches.
	MaxYearsBetweenMatches int

	// Logger receives trace records of daylight saving time decisions.
	// When nil, nothing is logged.
	Logger logger.Logger
}

// Iterator produces the trigger instants of a Schedule in increasing order.
//
// An Iterator is a forward-only cursor: it cannot be rewound, a new one
// must be created for a different start instant. It is not safe for
// concurrent use; independent iterators over the same Schedule are.
type Iterator struct {
	schedule *Schedule
	resolver dstResolver
	machine  *csm.CronStateMachine
	logger   logger.Logger
	ledger   ledger
}

// ledger remembers what the iterator has emitted.
type ledger struct {
	// the last emitted instant, or the start instant
	instant time.Time
	// the latest backward transition whose repeated wall clock interval
	// has been replayed
	replayed time.Time
}

// Iter returns an Iterator over the trigger instants strictly after start,
// following the wall clock of start's location.
func (s *Schedule) Iter(start time.Time) *Iterator {
	return s.IterWithOptions(start, IteratorOptions{})
}

// IterInZone is like Iter but follows the wall clock of the named time zone.
// The error of time.LoadLocation is returned unchanged.
func (s *Schedule) IterInZone(start time.Time, name string) (*Iterator, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return s.IterWithOptions(start, IteratorOptions{Location: loc}), nil
}

// IterWithOptions returns an Iterator over the trigger instants strictly
// after start, configured as specified.
func (s *Schedule) IterWithOptions(start time.Time, opts IteratorOptions) *Iterator {
	loc := opts.Location
	if loc == nil {
		loc = start.Location()
	}
	maxYears := opts.MaxYearsBetweenMatches
	if maxYears <= 0 {
		maxYears = DefaultMaxYearsBetweenMatches
	}
	log := opts.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}

	start = start.In(loc)
	cursor := csm.CivilOf(start)
	return &Iterator{
		schedule: s,
		resolver: dstResolver{loc: loc, wildcard: s.IsWildcard()},
		machine:  s.machine(cursor, maxYears),
		logger:   log,
		ledger:   ledger{instant: start},
	}
}

// Next returns the next trigger instant, in the iterator's location.
// It returns false once no trigger exists within the configured number of
// years; the iterator stays exhausted from then on.
func (it *Iterator) Next() (time.Time, bool) {
	for {
		candidate, ok := it.machine.Next()
		if !ok {
			it.logger.Warn("No trigger within search limit",
				"schedule", it.schedule.expression, "after", it.machine.Cursor())
			return time.Time{}, false
		}

		next, outcome := it.resolver.resolve(candidate, it.ledger.instant)
		switch outcome {
		case outcomeSuppressed, outcomeSkipped:
			it.logger.Trace("Dropped candidate",
				"schedule", it.schedule.expression, "candidate", candidate, "outcome", outcome)
			continue
		case outcomeSnapped, outcomeSecond:
			it.logger.Trace("Resolved candidate",
				"schedule", it.schedule.expression, "candidate", candidate,
				"outcome", outcome, "instant", next)
		}

		if it.resolver.wildcard && it.replay(next) {
			continue
		}

		it.ledger.instant = next
		return next, true
	}
}

// replay checks whether the wall clock was turned back between the last
// emitted instant and next. If the repeated interval has not been replayed
// yet, it moves the cursor back to the start of the interval and returns
// true.
func (it *Iterator) replay(next time.Time) bool {
	t := it.ledger.instant
	for {
		_, end := t.ZoneBounds()
		if end.IsZero() || end.After(next) {
			return false
		}
		_, before := t.Zone()
		_, after := end.Zone()
		if after < before && end.After(it.ledger.replayed) {
			it.ledger.replayed = end
			repeated := csm.CivilOf(end)
			it.machine.Seek(repeated.AddMinutes(-1))
			it.logger.Trace("Replaying repeated wall clock interval",
				"schedule", it.schedule.expression, "transition", end, "from", repeated)
			return true
		}
		t = end
	}
}

// Take returns up to n next trigger instants.
func (it *Iterator) Take(n int) []time.Time {
	result := make([]time.Time, 0, n)
	for len(result) < n {
		next, ok := it.Next()
		if !ok {
			break
		}
		result = append(result, next)
	}
	return result
}

// All returns a sequence of the remaining trigger instants, suitable for
// a range-over-func loop.
func (it *Iterator) All() func(yield func(time.Time) bool) {
	return func(yield func(time.Time) bool) {
		for {
			next, ok := it.Next()
			if !ok || !yield(next) {
				return
			}
		}
	}
}

// Cursor returns the civil time the next search starts after.
func (it *Iterator) Cursor() CivilTime {
	return it.machine.Cursor()
}

// Last returns the last emitted instant, or the start instant if nothing
// has been emitted yet.
func (it *Iterator) Last() time.Time {
	return it.ledger.instant
}

// Location returns the time zone followed by the iterator.
func (it *Iterator) Location() *time.Location {
	return it.resolver.loc
}
