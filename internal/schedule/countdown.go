package schedule

import (
	"fmt"
	"time"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
)

// NextDue scans for the nearest task later today: it must have an alarm
// time, be active and unsatisfied today, and its time of day must be
// strictly after now. Ties on identical times go to the earlier task in
// slice order. The scan is stateless and recomputed in full on every
// call so edits, additions and completions are reflected immediately.
//
// Returns the winning task, the seconds until its alarm, and whether
// any candidate exists.
func NextDue(tasks []model.Task, now time.Time) (*model.Task, int, bool) {
	nowSeconds := now.Hour()*3600 + now.Minute()*60 + now.Second()

	var best *model.Task
	bestDiff := 0

	for i := range tasks {
		task := tasks[i]
		if task.Time == "" {
			continue
		}
		if !IsDueToday(task, now) {
			continue
		}

		clock, err := model.ParseClock(task.Time)
		if err != nil {
			// Stored times are validated on entry; skip anything
			// that slipped past.
			continue
		}

		diff := clock.SecondsFromMidnight() - nowSeconds
		if diff <= 0 {
			continue
		}
		if best == nil || diff < bestDiff {
			best = &tasks[i]
			bestDiff = diff
		}
	}

	if best == nil {
		return nil, 0, false
	}
	return best, bestDiff, true
}

// FormatCountdown renders a seconds count as zero-padded "HH:MM:SS".
func FormatCountdown(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
