package crondst

import (
	"fmt"
	"time"

	"github.com/reugn/go-crondst/logger"
)

// Trigger computes the fire times of a job.
type Trigger interface {
	// NextFireTime returns the next fire time after prev, both in Unix
	// nanoseconds. It returns ErrTriggerExpired when there is none.
	NextFireTime(prev int64) (int64, error)

	// Description returns a human-readable description of the trigger.
	Description() string
}

// CronTrigger is a Trigger firing on the schedule of a cron expression,
// following the wall clock of a location through daylight saving time
// transitions.
//
// A CronTrigger holds no iteration state: NextFireTime may be called with
// any prev, in any order, from multiple goroutines.
type CronTrigger struct {
	schedule *Schedule
	location *time.Location
	logger   logger.Logger
}

var _ Trigger = (*CronTrigger)(nil)

// NewCronTrigger returns a new CronTrigger using the UTC time zone.
func NewCronTrigger(expression string) (*CronTrigger, error) {
	return NewCronTriggerWithLoc(expression, time.UTC)
}

// NewCronTriggerWithLoc returns a new CronTrigger with the given
// time.Location.
func NewCronTriggerWithLoc(expression string, location *time.Location) (*CronTrigger, error) {
	if location == nil {
		return nil, illegalArgumentError("location is nil")
	}
	schedule, err := Parse(expression)
	if err != nil {
		return nil, err
	}
	return &CronTrigger{
		schedule: schedule,
		location: location,
		logger:   logger.NoOpLogger{},
	}, nil
}

// WithLogger sets the logger receiving the trace records of the trigger's
// computations and returns the trigger.
func (ct *CronTrigger) WithLogger(l logger.Logger) *CronTrigger {
	if l == nil {
		l = logger.NoOpLogger{}
	}
	ct.logger = l
	return ct
}

// NextFireTime returns the next time at which the CronTrigger is scheduled
// to fire.
func (ct *CronTrigger) NextFireTime(prev int64) (int64, error) {
	it := ct.schedule.IterWithOptions(time.Unix(0, prev), IteratorOptions{
		Location: ct.location,
		Logger:   ct.logger,
	})
	next, ok := it.Next()
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrTriggerExpired, ct.schedule)
	}
	return next.UnixNano(), nil
}

// Schedule returns the parsed cron expression of the trigger.
func (ct *CronTrigger) Schedule() *Schedule {
	return ct.schedule
}

// Description returns the description of the cron trigger.
func (ct *CronTrigger) Description() string {
	return fmt.Sprintf("CronTrigger::%s::%s", ct.schedule, ct.location)
}
