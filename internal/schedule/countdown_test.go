package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
)

func TestNextDue_PicksNearestFutureTask(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	now := dateAt(2025, time.July, 2, 8, 0)

	taskA := taskWith("taskA", "10:00", model.Daily(), created)
	taskB := ToggleCompletion(taskWith("taskB", "09:30", model.Daily(), created), now, nil)
	taskC := taskWith("taskC", "", model.Daily(), created)

	task, secs, ok := NextDue([]model.Task{taskA, taskB, taskC}, now)
	require.True(t, ok)
	assert.Equal(t, "taskA", task.Title)
	assert.Equal(t, 7200, secs)
}

func TestNextDue_NoneWhenAllDoneOrUntimed(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	now := dateAt(2025, time.July, 2, 8, 0)

	done := ToggleCompletion(taskWith("done", "09:00", model.Daily(), created), now, nil)
	untimed := taskWith("untimed", "", model.Daily(), created)

	_, _, ok := NextDue([]model.Task{done, untimed}, now)
	assert.False(t, ok)
}

func TestNextDue_PastTimesAreExcluded(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	now := dateAt(2025, time.July, 2, 12, 0)

	morning := taskWith("morning", "08:00", model.Daily(), created)
	evening := taskWith("evening", "18:30", model.Daily(), created)

	task, secs, ok := NextDue([]model.Task{morning, evening}, now)
	require.True(t, ok)
	assert.Equal(t, "evening", task.Title)
	assert.Equal(t, 6*3600+30*60, secs)
}

func TestNextDue_ExactCurrentSecondIsNotFuture(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	now := dateAt(2025, time.July, 2, 9, 0)

	task := taskWith("now", "09:00", model.Daily(), created)
	_, _, ok := NextDue([]model.Task{task}, now)
	assert.False(t, ok)
}

func TestNextDue_TieBrokenByStableOrder(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	now := dateAt(2025, time.July, 2, 8, 0)

	first := taskWith("first", "09:00", model.Daily(), created)
	second := taskWith("second", "09:00", model.Daily(), created)

	task, _, ok := NextDue([]model.Task{first, second}, now)
	require.True(t, ok)
	assert.Equal(t, "first", task.Title)
}

func TestNextDue_InactiveWeekdayExcluded(t *testing.T) {
	created := dateAt(2025, time.July, 1, 6, 0)
	// 2025-07-02 is a Wednesday.
	now := dateAt(2025, time.July, 2, 8, 0)

	monday := taskWith("monday-only", "10:00", model.OnDays(time.Monday), created)
	_, _, ok := NextDue([]model.Task{monday}, now)
	assert.False(t, ok)
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatCountdown(0))
	assert.Equal(t, "00:00:59", FormatCountdown(59))
	assert.Equal(t, "02:00:00", FormatCountdown(7200))
	assert.Equal(t, "01:02:03", FormatCountdown(3723))
	assert.Equal(t, "27:46:39", FormatCountdown(99999))
}
