package schedule

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/notify"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/sound"
)

// AlarmClock owns the single global firing slot and the per-minute
// trigger bookkeeping. It is driven once per second by Tick but scans
// for triggers only when the wall-clock minute changes, so a trigger
// can fire at most once per minute regardless of tick rate.
//
// The clock is injected so the minute-boundary logic is testable
// without real time.
type AlarmClock struct {
	now      func() time.Time
	player   sound.Player
	notifier notify.Notifier

	lastMinute string
	firing     *model.Task
}

// NewAlarmClock builds an alarm clock reading time from now and
// invoking the given side-effect collaborators when an alarm fires.
func NewAlarmClock(now func() time.Time, player sound.Player, notifier notify.Notifier) *AlarmClock {
	return &AlarmClock{
		now:      now,
		player:   player,
		notifier: notifier,
	}
}

// Firing returns the task whose alarm is currently sounding, or nil.
// At most one task fires at a time.
func (a *AlarmClock) Firing() *model.Task {
	return a.firing
}

// Tick evaluates alarm triggers for the current instant. It is safe to
// call every second; the scan runs only on the first tick of each
// minute. settings gates whether alarms and their side effects are
// allowed at all. A disabled minute is still consumed, matching the
// once-per-minute contract.
//
// Arbitration: tasks are scanned in slice order and the first armed
// task whose time matches the current minute wins the firing slot.
// Later matches in the same minute are skipped for this occurrence.
func (a *AlarmClock) Tick(tasks []model.Task, settings model.Settings) {
	now := a.now()
	minute := now.Format("15:04")
	if minute == a.lastMinute {
		return
	}
	a.lastMinute = minute

	if !settings.AlarmsEnabled {
		return
	}

	today := now
	for i := range tasks {
		task := tasks[i]
		if task.Time != minute {
			continue
		}
		if !IsDueToday(task, today) {
			continue
		}
		if a.firing != nil {
			// Slot already taken; this occurrence is skipped.
			continue
		}

		a.firing = &task
		log.Info().Str("task", task.Title).Str("minute", minute).Msg("alarm firing")

		if settings.SoundEnabled {
			a.player.StartAlarmLoop()
		}
		if settings.NotificationsEnabled {
			a.notifier.Notify("EchoTrack EXECUTE", "PROTOCOL: "+task.Title)
		}
	}
}

// Dismiss acknowledges the active alarm: the sound loop stops and the
// firing slot clears. Dismissal never completes the task; the task
// re-arms for its next due occurrence. Calling Dismiss with no active
// alarm is a no-op.
func (a *AlarmClock) Dismiss() {
	if a.firing == nil {
		return
	}
	a.player.StopAlarmLoop()
	a.firing = nil
}
