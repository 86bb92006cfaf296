package store

import "github.com/AdeShaq/SUPERSCHEDULER/internal/model"

// Collection keys. One JSON document per collection, full replacement
// on every save, last write wins.
const (
	KeyTasks    = "echotrack_tasks"
	KeyGroups   = "echotrack_groups"
	KeyNotes    = "echotrack_notes"
	KeyFolders  = "echotrack_folders"
	KeyGoals    = "echotrack_goals"
	KeyLogs     = "echotrack_savings_logs"
	KeySettings = "echotrack_settings"
)

// Store is the synchronous persistence contract shared by the
// scheduling engine and the UI. Loads never fail on missing or corrupt
// data; they fall back to an empty collection.
type Store interface {
	LoadTasks() []model.Task
	SaveTasks(tasks []model.Task) error

	LoadGroups() []model.ScheduleGroup
	SaveGroups(groups []model.ScheduleGroup) error

	LoadNotes() []model.Note
	SaveNotes(notes []model.Note) error

	LoadFolders() []model.Folder
	SaveFolders(folders []model.Folder) error

	LoadGoals() []model.SavingsGoal
	SaveGoals(goals []model.SavingsGoal) error

	LoadLogs() []model.SavingsLog
	SaveLogs(logs []model.SavingsLog) error

	LoadSettings() model.Settings
	SaveSettings(s model.Settings) error
}
