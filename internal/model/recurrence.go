package model

import (
	"fmt"
	"strings"
	"time"
)

// RecurrenceKind is the closed set of recurrence rules.
type RecurrenceKind string

const (
	RecurDaily        RecurrenceKind = "daily"
	RecurInterval     RecurrenceKind = "interval"
	RecurSpecificDays RecurrenceKind = "specific_days"
)

// Recurrence describes when a task is active. Exactly one rule applies,
// selected by Kind; the other fields are meaningful only for their kind.
type Recurrence struct {
	Kind RecurrenceKind `json:"type"`

	// EveryNDays is the interval length for RecurInterval, counted from
	// the task's anchor date. Values below 2 behave as daily.
	EveryNDays int `json:"intervalDays,omitempty"`

	// DaysOfWeek lists the active weekdays for RecurSpecificDays. An
	// empty list matches no day at all.
	DaysOfWeek []time.Weekday `json:"daysOfWeek,omitempty"`
}

// Daily returns the every-day recurrence.
func Daily() Recurrence {
	return Recurrence{Kind: RecurDaily}
}

// EveryNDays returns an interval recurrence active every n days.
func EveryNDays(n int) Recurrence {
	return Recurrence{Kind: RecurInterval, EveryNDays: n}
}

// OnDays returns a weekday recurrence active on the given days.
func OnDays(days ...time.Weekday) Recurrence {
	return Recurrence{Kind: RecurSpecificDays, DaysOfWeek: days}
}

// Validate checks the recurrence is one of the known kinds with sane
// parameters.
func (r Recurrence) Validate() error {
	switch r.Kind {
	case RecurDaily:
		return nil
	case RecurInterval:
		if r.EveryNDays < 0 {
			return fmt.Errorf("interval days must not be negative, got %d", r.EveryNDays)
		}
		return nil
	case RecurSpecificDays:
		for _, d := range r.DaysOfWeek {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("invalid weekday %d", d)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown recurrence type %q", r.Kind)
	}
}

// Contains reports whether the weekday is in DaysOfWeek.
func (r Recurrence) Contains(day time.Weekday) bool {
	for _, d := range r.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

var dayAbbrev = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// Label renders the recurrence for display, like "DAILY", "EVERY 3
// DAYS" or "MO/WE/FR". A specific-days rule with no days reads "NEVER".
func (r Recurrence) Label() string {
	switch r.Kind {
	case RecurInterval:
		if r.EveryNDays <= 1 {
			return "DAILY"
		}
		return fmt.Sprintf("EVERY %d DAYS", r.EveryNDays)
	case RecurSpecificDays:
		if len(r.DaysOfWeek) == 0 {
			return "NEVER"
		}
		parts := make([]string, len(r.DaysOfWeek))
		for i, d := range r.DaysOfWeek {
			parts[i] = dayAbbrev[d%7]
		}
		return strings.Join(parts, "/")
	default:
		return "DAILY"
	}
}
