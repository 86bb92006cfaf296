package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/notify"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/sound"
)

// fakeClock steps through a scripted sequence of instants.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) set(t time.Time) { c.now = t }

func newTestAlarm(start time.Time) (*AlarmClock, *fakeClock, *sound.Recorder, *notify.Recorder) {
	clock := &fakeClock{now: start}
	player := &sound.Recorder{}
	notifier := &notify.Recorder{}
	return NewAlarmClock(clock.Now, player, notifier), clock, player, notifier
}

func TestAlarmClock_FiresExactlyOnceAcrossMinuteBoundary(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	task := taskWith("gym", "08:00", model.Daily(), created)
	tasks := []model.Task{task}
	settings := model.DefaultSettings()

	start := dateAt(2025, time.July, 2, 7, 59).Add(59 * time.Second)
	alarm, clock, player, notifier := newTestAlarm(start)

	// 07:59:59 through 08:01:00, one tick per second.
	for i := 0; i <= 61; i++ {
		clock.set(start.Add(time.Duration(i) * time.Second))
		alarm.Tick(tasks, settings)
	}

	require.NotNil(t, alarm.Firing())
	assert.Equal(t, "gym", alarm.Firing().Title)
	assert.Equal(t, 1, player.LoopStarts)
	assert.Equal(t, 1, notifier.Count())
}

func TestAlarmClock_CompletedTaskNeverFires(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	task := taskWith("gym", "08:00", model.Daily(), created)
	today := dateAt(2025, time.July, 2, 7, 0)
	task = ToggleCompletion(task, today, nil)

	alarm, clock, player, _ := newTestAlarm(dateAt(2025, time.July, 2, 7, 59))
	clock.set(dateAt(2025, time.July, 2, 8, 0))
	alarm.Tick([]model.Task{task}, model.DefaultSettings())

	assert.Nil(t, alarm.Firing())
	assert.Equal(t, 0, player.LoopStarts)
}

func TestAlarmClock_InactiveWeekdayNeverFires(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	// 2025-07-02 is a Wednesday; task only runs Mondays.
	task := taskWith("gym", "08:00", model.OnDays(time.Monday), created)

	alarm, clock, _, notifier := newTestAlarm(dateAt(2025, time.July, 2, 7, 59))
	clock.set(dateAt(2025, time.July, 2, 8, 0))
	alarm.Tick([]model.Task{task}, model.DefaultSettings())

	assert.Nil(t, alarm.Firing())
	assert.Equal(t, 0, notifier.Count())
}

func TestAlarmClock_SharedMinuteArbitration(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	first := taskWith("first", "09:00", model.Daily(), created)
	second := taskWith("second", "09:00", model.Daily(), created)
	tasks := []model.Task{first, second}
	settings := model.DefaultSettings()

	alarm, clock, player, notifier := newTestAlarm(dateAt(2025, time.July, 2, 8, 59))
	alarm.Tick(tasks, settings)

	clock.set(dateAt(2025, time.July, 2, 9, 0))
	alarm.Tick(tasks, settings)

	// Exactly one winner, by stable order.
	require.NotNil(t, alarm.Firing())
	assert.Equal(t, "first", alarm.Firing().Title)
	assert.Equal(t, 1, player.LoopStarts)
	assert.Equal(t, 1, notifier.Count())

	// Dismissing the winner does not revive the loser this minute.
	alarm.Dismiss()
	assert.Nil(t, alarm.Firing())
	assert.Equal(t, 1, player.LoopStops)

	clock.set(dateAt(2025, time.July, 2, 9, 0).Add(30 * time.Second))
	alarm.Tick(tasks, settings)
	assert.Nil(t, alarm.Firing())

	// And the minute is fully consumed: 09:01 does not re-fire either.
	clock.set(dateAt(2025, time.July, 2, 9, 1))
	alarm.Tick(tasks, settings)
	assert.Nil(t, alarm.Firing())
	assert.Equal(t, 1, player.LoopStarts)
}

func TestAlarmClock_SlotHeldAcrossMinutesBlocksNewFirings(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	early := taskWith("early", "09:00", model.Daily(), created)
	late := taskWith("late", "09:01", model.Daily(), created)
	tasks := []model.Task{early, late}
	settings := model.DefaultSettings()

	alarm, clock, player, _ := newTestAlarm(dateAt(2025, time.July, 2, 8, 59))
	clock.set(dateAt(2025, time.July, 2, 9, 0))
	alarm.Tick(tasks, settings)
	require.NotNil(t, alarm.Firing())
	assert.Equal(t, "early", alarm.Firing().Title)

	// The undismissed alarm holds the slot through the next minute.
	clock.set(dateAt(2025, time.July, 2, 9, 1))
	alarm.Tick(tasks, settings)
	assert.Equal(t, "early", alarm.Firing().Title)
	assert.Equal(t, 1, player.LoopStarts)
}

func TestAlarmClock_DisabledAlarmsConsumeTheMinute(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	task := taskWith("gym", "08:00", model.Daily(), created)
	settings := model.DefaultSettings()
	settings.AlarmsEnabled = false

	alarm, clock, player, notifier := newTestAlarm(dateAt(2025, time.July, 2, 7, 59))
	clock.set(dateAt(2025, time.July, 2, 8, 0))
	alarm.Tick([]model.Task{task}, settings)

	assert.Nil(t, alarm.Firing())
	assert.Equal(t, 0, player.LoopStarts)
	assert.Equal(t, 0, notifier.Count())

	// Re-enabling later in the same minute does not retrigger.
	settings.AlarmsEnabled = true
	clock.set(dateAt(2025, time.July, 2, 8, 0).Add(30 * time.Second))
	alarm.Tick([]model.Task{task}, settings)
	assert.Nil(t, alarm.Firing())
}

func TestAlarmClock_SoundDisabledStillFiresAndNotifies(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	task := taskWith("gym", "08:00", model.Daily(), created)
	settings := model.DefaultSettings()
	settings.SoundEnabled = false

	alarm, clock, player, notifier := newTestAlarm(dateAt(2025, time.July, 2, 7, 59))
	clock.set(dateAt(2025, time.July, 2, 8, 0))
	alarm.Tick([]model.Task{task}, settings)

	require.NotNil(t, alarm.Firing())
	assert.Equal(t, 0, player.LoopStarts)
	assert.Equal(t, 1, notifier.Count())
}

func TestAlarmClock_DismissWhenIdleIsNoop(t *testing.T) {
	alarm, _, player, _ := newTestAlarm(dateAt(2025, time.July, 2, 8, 0))
	alarm.Dismiss()
	assert.Equal(t, 0, player.LoopStops)
}

func TestAlarmClock_RearmsOnNextDueOccurrence(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	task := taskWith("gym", "08:00", model.Daily(), created)
	settings := model.DefaultSettings()

	alarm, clock, player, _ := newTestAlarm(dateAt(2025, time.July, 2, 7, 59))
	clock.set(dateAt(2025, time.July, 2, 8, 0))
	alarm.Tick([]model.Task{task}, settings)
	require.NotNil(t, alarm.Firing())
	alarm.Dismiss()

	// Next day, same minute: fires again.
	clock.set(dateAt(2025, time.July, 3, 7, 59))
	alarm.Tick([]model.Task{task}, settings)
	clock.set(dateAt(2025, time.July, 3, 8, 0))
	alarm.Tick([]model.Task{task}, settings)

	require.NotNil(t, alarm.Firing())
	assert.Equal(t, 2, player.LoopStarts)
}
