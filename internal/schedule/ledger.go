package schedule

import (
	"time"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/sound"
)

// ToggleCompletion flips the task's done state for the given date and
// returns the updated task. Marking done appends the date, bumps the
// streak and plays the completion cue; unmarking removes the date and
// decrements the streak, floored at zero, with no cue. Both paths
// stamp LastCompletedAt.
//
// The streak is an incrementally maintained counter, not a derived
// contiguous-run value; toggling non-adjacent dates can drift it away
// from true consecutive-day semantics. The analytics package derives
// the self-healing variant from CompletedDates when display needs it.
func ToggleCompletion(task model.Task, date time.Time, player sound.Player) model.Task {
	day := date.Format(model.DateLayout)

	if task.CompletedOn(date) {
		kept := make([]string, 0, len(task.CompletedDates))
		for _, d := range task.CompletedDates {
			if d != day {
				kept = append(kept, d)
			}
		}
		task.CompletedDates = kept
		if task.Streak > 0 {
			task.Streak--
		}
	} else {
		task.CompletedDates = append(task.CompletedDates, day)
		task.Streak++
		if player != nil {
			player.PlayCompletion()
		}
	}

	task.LastCompletedAt = date.UnixMilli()
	return task
}
