package model

// Settings holds user toggles persisted alongside the collections.
// Alarms and notifications default to enabled.
type Settings struct {
	SoundEnabled         bool `json:"soundEnabled"`
	AlarmsEnabled        bool `json:"alarmsEnabled"`
	NotificationsEnabled bool `json:"notificationsEnabled"`
}

// DefaultSettings returns the out-of-the-box toggle state.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:         true,
		AlarmsEnabled:        true,
		NotificationsEnabled: true,
	}
}
