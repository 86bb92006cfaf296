package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/sound"
)

func TestToggleCompletion_MarkAndUnmark(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	today := dateAt(2025, time.July, 2, 10, 0)
	player := &sound.Recorder{}

	task := taskWith("water plants", "", model.Daily(), created)
	task.Streak = 4

	task = ToggleCompletion(task, today, player)
	assert.Equal(t, []string{"2025-07-02"}, task.CompletedDates)
	assert.Equal(t, 5, task.Streak)
	assert.Equal(t, 1, player.Completions)
	assert.Equal(t, today.UnixMilli(), task.LastCompletedAt)

	task = ToggleCompletion(task, today, player)
	assert.Empty(t, task.CompletedDates)
	assert.Equal(t, 4, task.Streak)
	// No cue on the remove path.
	assert.Equal(t, 1, player.Completions)
}

func TestToggleCompletion_IsItsOwnInverseOnDates(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	today := dateAt(2025, time.July, 10, 9, 0)

	task := taskWith("journal", "", model.Daily(), created)
	task.CompletedDates = []string{"2025-07-08", "2025-07-09"}

	once := ToggleCompletion(task, today, nil)
	twice := ToggleCompletion(once, today, nil)
	assert.Equal(t, task.CompletedDates, twice.CompletedDates)
}

func TestToggleCompletion_StreakFloorBreaksSymmetry(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	today := dateAt(2025, time.July, 2, 10, 0)

	task := taskWith("meditate", "", model.Daily(), created)
	require.Equal(t, 0, task.Streak)

	// On: 0 -> 1. Off: 1 -> 0. Off again from another date at 0 stays 0.
	on := ToggleCompletion(task, today, nil)
	assert.Equal(t, 1, on.Streak)
	off := ToggleCompletion(on, today, nil)
	assert.Equal(t, 0, off.Streak)

	// Removing a stale date with streak already at zero floors at zero,
	// it does not go to -1.
	off.CompletedDates = []string{"2025-06-30"}
	floored := ToggleCompletion(off, dateAt(2025, time.June, 30, 10, 0), nil)
	assert.Equal(t, 0, floored.Streak)
	assert.Empty(t, floored.CompletedDates)
}

func TestToggleCompletion_OnlyRemovesTheGivenDate(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	task := taskWith("run", "", model.Daily(), created)
	task.CompletedDates = []string{"2025-07-01", "2025-07-02", "2025-07-03"}
	task.Streak = 3

	task = ToggleCompletion(task, dateAt(2025, time.July, 2, 23, 0), nil)
	assert.Equal(t, []string{"2025-07-01", "2025-07-03"}, task.CompletedDates)
	assert.Equal(t, 2, task.Streak)
}
