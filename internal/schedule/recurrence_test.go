package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
)

func dateAt(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.Local)
}

func taskWith(title, timeStr string, rec model.Recurrence, created time.Time) model.Task {
	return model.Task{
		ID:             title,
		Title:          title,
		Time:           timeStr,
		GroupID:        model.DefaultGroupID,
		Recurrence:     rec,
		CompletedDates: []string{},
		Priority:       model.PriorityNormal,
		CreatedAt:      created.UnixMilli(),
	}
}

func TestIsActiveOn_Daily(t *testing.T) {
	anchor := dateAt(2024, time.January, 1, 0, 0)
	for i := 0; i < 10; i++ {
		d := anchor.AddDate(0, 0, i)
		assert.True(t, IsActiveOn(model.Daily(), anchor, d))
	}
}

func TestIsActiveOn_SpecificDaysMatchesWeekdayOverProbeWindow(t *testing.T) {
	// 400 consecutive days crossing the 2024 leap boundary.
	rec := model.OnDays(time.Monday, time.Wednesday, time.Friday)
	anchor := dateAt(2023, time.December, 1, 0, 0)

	for i := 0; i < 400; i++ {
		d := anchor.AddDate(0, 0, i)
		want := d.Weekday() == time.Monday ||
			d.Weekday() == time.Wednesday ||
			d.Weekday() == time.Friday
		assert.Equalf(t, want, IsActiveOn(rec, anchor, d),
			"date %s weekday %s", d.Format(model.DateLayout), d.Weekday())
	}
}

func TestIsActiveOn_EmptySpecificDaysMatchesNothing(t *testing.T) {
	rec := model.Recurrence{Kind: model.RecurSpecificDays}
	anchor := dateAt(2025, time.March, 1, 0, 0)
	for i := 0; i < 7; i++ {
		assert.False(t, IsActiveOn(rec, anchor, anchor.AddDate(0, 0, i)))
	}
}

func TestIsActiveOn_IntervalAnchoredEveryNDays(t *testing.T) {
	anchor := dateAt(2025, time.June, 10, 0, 0)
	rec := model.EveryNDays(3)

	assert.True(t, IsActiveOn(rec, anchor, anchor))
	assert.False(t, IsActiveOn(rec, anchor, anchor.AddDate(0, 0, 1)))
	assert.False(t, IsActiveOn(rec, anchor, anchor.AddDate(0, 0, 2)))
	assert.True(t, IsActiveOn(rec, anchor, anchor.AddDate(0, 0, 3)))
	assert.True(t, IsActiveOn(rec, anchor, anchor.AddDate(0, 0, 30)))
	// Dates before the anchor are never active.
	assert.False(t, IsActiveOn(rec, anchor, anchor.AddDate(0, 0, -3)))
}

func TestIsActiveOn_IntervalOfOneBehavesAsDaily(t *testing.T) {
	anchor := dateAt(2025, time.June, 10, 0, 0)
	rec := model.EveryNDays(1)
	for i := 0; i < 14; i++ {
		assert.True(t, IsActiveOn(rec, anchor, anchor.AddDate(0, 0, i)))
	}
}

func TestIsDueToday_CompletionSuppressesDueness(t *testing.T) {
	created := dateAt(2025, time.July, 1, 8, 0)
	task := taskWith("stretch", "07:00", model.Daily(), created)
	today := dateAt(2025, time.July, 3, 12, 0)

	require.True(t, IsDueToday(task, today))

	task = ToggleCompletion(task, today, nil)
	assert.False(t, IsDueToday(task, today))

	// Next calendar day the task is due again.
	assert.True(t, IsDueToday(task, today.AddDate(0, 0, 1)))
}

func TestIsDueToday_TaskWithoutTimeIsStillDue(t *testing.T) {
	created := dateAt(2025, time.July, 1, 8, 0)
	task := taskWith("read", "", model.Daily(), created)
	assert.True(t, IsDueToday(task, dateAt(2025, time.July, 2, 9, 0)))
}

func TestParseClock_RejectsMalformedInput(t *testing.T) {
	for _, bad := range []string{"", "8:00", "25:00", "12:60", "ab:cd", "12-30", "12:3", "123:0"} {
		_, err := model.ParseClock(bad)
		assert.Errorf(t, err, "input %q", bad)
	}
}

func TestParseClock_AcceptsValidInput(t *testing.T) {
	c, err := model.ParseClock("08:05")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Hour)
	assert.Equal(t, 5, c.Minute)
	assert.Equal(t, 8*3600+5*60, c.SecondsFromMidnight())
	assert.Equal(t, "08:05", c.String())

	c, err = model.ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59", c.String())
}
