// Package schedule contains the recurrence, alarm, countdown and
// completion logic that decides when tasks are due and when alarms
// fire.
package schedule

import (
	"time"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
)

// IsActiveOn reports whether the recurrence rule matches the given
// calendar date. The anchor is the task's creation date and only
// matters for interval rules: an every-N-days task is active on days
// that are a whole multiple of N days after its anchor. N of 1 (or
// less, for legacy data) behaves as daily.
func IsActiveOn(rec model.Recurrence, anchor, date time.Time) bool {
	switch rec.Kind {
	case model.RecurInterval:
		if rec.EveryNDays <= 1 {
			return true
		}
		days := daysBetween(anchor, date)
		return days >= 0 && days%rec.EveryNDays == 0
	case model.RecurSpecificDays:
		return rec.Contains(date.Weekday())
	default:
		return true
	}
}

// IsSatisfiedOn reports whether the task is already marked done for the
// given date.
func IsSatisfiedOn(task model.Task, date time.Time) bool {
	return task.CompletedOn(date)
}

// IsDueToday reports whether the task is actionable on the given date:
// its recurrence is active and it has not been completed. A task
// without an alarm time is still due in this sense; it just never arms
// the alarm clock.
func IsDueToday(task model.Task, today time.Time) bool {
	return IsActiveOn(task.Recurrence, task.AnchorDate(), today) && !IsSatisfiedOn(task, today)
}

// daysBetween counts whole calendar days from a to b. The dates are
// re-anchored in UTC so daylight-saving shifts cannot skew the count.
func daysBetween(a, b time.Time) int {
	am := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bm := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bm.Sub(am).Hours() / 24)
}
