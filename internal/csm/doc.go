// Package csm is an internal package focused on solving a single task.
// Given a civil (zone-less) date-time and a set of cron fields, what is the
// first following civil minute that fits the fields?
//
// A civil date-time can be thought of as a mixed-radix number
// (https://en.wikipedia.org/wiki/Mixed_radix). CronStateMachine.Next
// (cron_state_machine.go) walks the fields from most significant (month) to
// least significant (minute). A field that has no valid value left carries
// into the next more significant field and resets every less significant
// field to its minimum, so the search never scans minute by minute.
//
// The "day" digit does not have a constant radix: it depends on the month
// and the year, and it is constrained by two cron fields at once. DayMatcher
// (day_matcher.go) owns that rule.
//
// Nothing in this package knows about time zones. Resolving a civil minute
// to an instant is the caller's job.
package csm
