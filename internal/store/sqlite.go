package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
)

// SQLiteStore implements the Store interface over a local SQLite
// database holding one JSON document per collection key.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// loadDocument unmarshals the JSON payload stored under key into dst.
// Missing keys and corrupt payloads leave dst untouched; corruption is
// logged, never surfaced as a failure.
func (s *SQLiteStore) loadDocument(key string, dst any) {
	var payload string
	err := s.db.Get(&payload, "SELECT payload FROM documents WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("loading collection")
		return
	}

	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("corrupt collection payload, using empty")
	}
}

// saveDocument replaces the JSON payload stored under key.
func (s *SQLiteStore) saveDocument(key string, src any) error {
	payload, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", key, err)
	}

	const query = `
		INSERT INTO documents (key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`

	if _, err := s.db.Exec(query, key, string(payload)); err != nil {
		return fmt.Errorf("saving collection %s: %w", key, err)
	}
	return nil
}

// LoadTasks returns the stored task collection. Tasks missing a group
// (written before grouping existed) are assigned the default group.
func (s *SQLiteStore) LoadTasks() []model.Task {
	tasks := []model.Task{}
	s.loadDocument(KeyTasks, &tasks)
	for i := range tasks {
		if tasks[i].GroupID == "" {
			tasks[i].GroupID = model.DefaultGroupID
		}
	}
	return tasks
}

// SaveTasks replaces the stored task collection.
func (s *SQLiteStore) SaveTasks(tasks []model.Task) error {
	return s.saveDocument(KeyTasks, tasks)
}

// LoadGroups returns the stored groups, seeding the default group when
// none exist.
func (s *SQLiteStore) LoadGroups() []model.ScheduleGroup {
	groups := []model.ScheduleGroup{}
	s.loadDocument(KeyGroups, &groups)
	if len(groups) == 0 {
		groups = []model.ScheduleGroup{{ID: model.DefaultGroupID, Name: "GENERAL"}}
	}
	return groups
}

// SaveGroups replaces the stored groups.
func (s *SQLiteStore) SaveGroups(groups []model.ScheduleGroup) error {
	return s.saveDocument(KeyGroups, groups)
}

// LoadNotes returns the stored vault notes.
func (s *SQLiteStore) LoadNotes() []model.Note {
	notes := []model.Note{}
	s.loadDocument(KeyNotes, &notes)
	return notes
}

// SaveNotes replaces the stored vault notes.
func (s *SQLiteStore) SaveNotes(notes []model.Note) error {
	return s.saveDocument(KeyNotes, notes)
}

// LoadFolders returns the stored folders, seeding the default folder
// when none exist.
func (s *SQLiteStore) LoadFolders() []model.Folder {
	folders := []model.Folder{}
	s.loadDocument(KeyFolders, &folders)
	if len(folders) == 0 {
		folders = []model.Folder{{ID: "default", Name: "General"}}
	}
	return folders
}

// SaveFolders replaces the stored folders.
func (s *SQLiteStore) SaveFolders(folders []model.Folder) error {
	return s.saveDocument(KeyFolders, folders)
}

// LoadGoals returns the stored savings goals.
func (s *SQLiteStore) LoadGoals() []model.SavingsGoal {
	goals := []model.SavingsGoal{}
	s.loadDocument(KeyGoals, &goals)
	return goals
}

// SaveGoals replaces the stored savings goals.
func (s *SQLiteStore) SaveGoals(goals []model.SavingsGoal) error {
	return s.saveDocument(KeyGoals, goals)
}

// LoadLogs returns the stored savings ledger entries.
func (s *SQLiteStore) LoadLogs() []model.SavingsLog {
	logs := []model.SavingsLog{}
	s.loadDocument(KeyLogs, &logs)
	return logs
}

// SaveLogs replaces the stored savings ledger entries.
func (s *SQLiteStore) SaveLogs(logs []model.SavingsLog) error {
	return s.saveDocument(KeyLogs, logs)
}

// LoadSettings returns the stored settings, or defaults when unset.
func (s *SQLiteStore) LoadSettings() model.Settings {
	settings := model.DefaultSettings()
	s.loadDocument(KeySettings, &settings)
	return settings
}

// SaveSettings replaces the stored settings.
func (s *SQLiteStore) SaveSettings(settings model.Settings) error {
	return s.saveDocument(KeySettings, settings)
}
