package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
)

func newMemStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})
	return s
}

func TestSQLiteStore_TasksRoundTrip(t *testing.T) {
	s := newMemStore(t)

	assert.Empty(t, s.LoadTasks())

	task, err := model.NewTask("gym", "07:00", "", model.Daily(), time.Now())
	require.NoError(t, err)
	task.CompletedDates = []string{"2025-07-01"}
	task.Streak = 1

	require.NoError(t, s.SaveTasks([]model.Task{task}))

	loaded := s.LoadTasks()
	require.Len(t, loaded, 1)
	assert.Equal(t, task.ID, loaded[0].ID)
	assert.Equal(t, "gym", loaded[0].Title)
	assert.Equal(t, "07:00", loaded[0].Time)
	assert.Equal(t, []string{"2025-07-01"}, loaded[0].CompletedDates)
	assert.Equal(t, model.RecurDaily, loaded[0].Recurrence.Kind)
}

func TestSQLiteStore_SaveIsFullReplacement(t *testing.T) {
	s := newMemStore(t)

	a, err := model.NewTask("a", "", "", model.Daily(), time.Now())
	require.NoError(t, err)
	b, err := model.NewTask("b", "", "", model.Daily(), time.Now())
	require.NoError(t, err)

	require.NoError(t, s.SaveTasks([]model.Task{a, b}))
	require.NoError(t, s.SaveTasks([]model.Task{b}))

	loaded := s.LoadTasks()
	require.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].Title)
}

func TestSQLiteStore_CorruptPayloadFallsBackToEmpty(t *testing.T) {
	s := newMemStore(t)

	_, err := s.db.Exec(
		"INSERT INTO documents (key, payload) VALUES (?, ?)",
		KeyTasks, "{not json",
	)
	require.NoError(t, err)

	assert.Empty(t, s.LoadTasks())
}

func TestSQLiteStore_MissingGroupIDBackfilled(t *testing.T) {
	s := newMemStore(t)

	// Simulate a pre-grouping payload written by an older version.
	_, err := s.db.Exec(
		"INSERT INTO documents (key, payload) VALUES (?, ?)",
		KeyTasks,
		`[{"id":"t1","title":"old","recurrence":{"type":"daily"},"completedDates":[],"streak":0,"priority":"normal","createdAt":0}]`,
	)
	require.NoError(t, err)

	loaded := s.LoadTasks()
	require.Len(t, loaded, 1)
	assert.Equal(t, model.DefaultGroupID, loaded[0].GroupID)
}

func TestSQLiteStore_SeedsDefaultGroupAndFolder(t *testing.T) {
	s := newMemStore(t)

	groups := s.LoadGroups()
	require.Len(t, groups, 1)
	assert.Equal(t, model.DefaultGroupID, groups[0].ID)

	folders := s.LoadFolders()
	require.Len(t, folders, 1)
	assert.Equal(t, "General", folders[0].Name)
}

func TestSQLiteStore_SettingsRoundTrip(t *testing.T) {
	s := newMemStore(t)

	settings := s.LoadSettings()
	assert.True(t, settings.AlarmsEnabled)

	settings.SoundEnabled = false
	require.NoError(t, s.SaveSettings(settings))

	reloaded := s.LoadSettings()
	assert.False(t, reloaded.SoundEnabled)
	assert.True(t, reloaded.NotificationsEnabled)
}

func TestSQLiteStore_SavingsRoundTrip(t *testing.T) {
	s := newMemStore(t)

	goal := model.SavingsGoal{
		ID:           "g1",
		Name:         "Vacation",
		TargetAmount: 1200,
		Currency:     "USD",
		CreatedAt:    time.Now().UnixMilli(),
	}
	require.NoError(t, s.SaveGoals([]model.SavingsGoal{goal}))

	log := model.SavingsLog{
		ID: "l1", GoalID: "g1", Amount: 50,
		Date: "2025-07-01", Type: model.SavingsDeposit,
	}
	require.NoError(t, s.SaveLogs([]model.SavingsLog{log}))

	goals := s.LoadGoals()
	require.Len(t, goals, 1)
	assert.Equal(t, "Vacation", goals[0].Name)

	logs := s.LoadLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, 50.0, logs[0].Amount)
}
