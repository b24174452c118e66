package crondst

import (
	"time"

	"github.com/reugn/go-crondst/internal/csm"
)

// Zone offsets in the tz database stay well within this bound; it limits
// the zone periods inspected around a civil time.
const maxZoneOffset = 18 * time.Hour

type resolutionKind int

const (
	// the civil time occurs exactly once
	resolvedUnique resolutionKind = iota
	// the civil time occurs twice, clocks were turned back
	resolvedAmbiguous
	// the civil time never occurs, clocks were turned forward
	resolvedMissing
)

// resolution describes how a civil time maps onto the timeline of a
// location.
type resolution struct {
	kind resolutionKind
	// first occurrence, unique and ambiguous only
	first time.Time
	// second occurrence, ambiguous only
	second time.Time
	// the first instant after the skipped interval, missing only
	gapEnd time.Time
}

// resolveCivil maps a civil time to its occurrences in loc.
//
// A civil time read with offset o occurs at the instant wall - o, which is
// valid only if that instant lies in a zone period using offset o. Every
// zone period around the civil time is checked, so transitions of any
// length are handled without assuming a one hour shift.
func resolveCivil(c csm.CivilTime, loc *time.Location) resolution {
	wall := c.UTC()
	limit := wall.Add(maxZoneOffset)

	var (
		found  []time.Time
		gapEnd time.Time
	)
	for t := wall.Add(-maxZoneOffset).In(loc); ; {
		start, end := t.ZoneBounds()
		_, offset := t.Zone()
		instant := wall.Add(-time.Duration(offset) * time.Second)

		switch {
		case !start.IsZero() && instant.Before(start):
			// the clock jumped over the civil time when this period began
			if gapEnd.IsZero() {
				gapEnd = start
			}
		case end.IsZero() || instant.Before(end):
			found = append(found, instant.In(loc))
		}

		if end.IsZero() || end.After(limit) {
			break
		}
		t = end
	}

	switch len(found) {
	case 0:
		return resolution{kind: resolvedMissing, gapEnd: gapEnd.In(loc)}
	case 1:
		return resolution{kind: resolvedUnique, first: found[0]}
	default:
		return resolution{kind: resolvedAmbiguous, first: found[0], second: found[1]}
	}
}

type outcome int

const (
	outcomeExact outcome = iota
	outcomeFirst
	outcomeSecond
	outcomeSnapped
	outcomeSuppressed
	outcomeSkipped
)

func (o outcome) String() string {
	switch o {
	case outcomeExact:
		return "exact"
	case outcomeFirst:
		return "first occurrence"
	case outcomeSecond:
		return "second occurrence"
	case outcomeSnapped:
		return "snapped to end of gap"
	case outcomeSuppressed:
		return "suppressed"
	default:
		return "skipped"
	}
}

// dstResolver applies the daylight saving time policy of a schedule to
// candidate civil times.
type dstResolver struct {
	loc      *time.Location
	wildcard bool
}

// resolve returns the instant to emit for the candidate, if any, strictly
// after last.
//
// Wildcard jobs follow the wall clock: a repeated civil time yields both
// occurrences and a missing one yields nothing. Fixed-time jobs fire on the
// first occurrence of a repeated civil time only, and a missing civil time
// fires at the end of the gap.
func (r dstResolver) resolve(c csm.CivilTime, last time.Time) (time.Time, outcome) {
	res := resolveCivil(c, r.loc)
	switch res.kind {
	case resolvedUnique:
		if res.first.After(last) {
			return res.first, outcomeExact
		}
	case resolvedAmbiguous:
		if res.first.After(last) {
			return res.first, outcomeFirst
		}
		if r.wildcard && res.second.After(last) {
			return res.second, outcomeSecond
		}
	case resolvedMissing:
		if r.wildcard {
			return time.Time{}, outcomeSkipped
		}
		if res.gapEnd.After(last) {
			return res.gapEnd, outcomeSnapped
		}
	}
	return time.Time{}, outcomeSuppressed
}
