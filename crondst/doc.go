/*
Package crondst computes the trigger instants of five-field cron expressions
in a time zone, with well-defined behavior across daylight saving time
transitions.

A Schedule is parsed once and iterated any number of times:

	schedule, err := crondst.Parse("30 2 * * *")
	if err != nil {
		return err
	}
	it, err := schedule.IterInZone(time.Now(), "America/New_York")
	if err != nil {
		return err
	}
	for _, next := range it.Take(5) {
		fmt.Println(next)
	}

Candidates are searched as civil (wall clock) times and then mapped onto
the timeline of the location. The mapping depends on the kind of job.

A wildcard job has a minute or hour field starting with "*". It follows the
wall clock: minutes skipped by a forward transition do not fire, and minutes
repeated by a backward transition fire twice, once per occurrence.

Any other job is a fixed-time job. A fixed-time job whose time falls into a
skipped interval fires once at the first instant after the interval, and a
fixed-time job whose time is repeated fires on the first occurrence only.

In both cases the emitted instants are strictly increasing.
*/
package crondst
