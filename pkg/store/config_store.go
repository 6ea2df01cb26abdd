package store

import (
	"fyne.io/fyne/v2"
	"github.com/borgmon/study-timetable/pkg/models"
)

const (
	prefAutoStart           = "auto_start"
	prefNotificationSeconds = "notification_seconds"
	prefChimeOnAdd          = "chime_on_add"
)

// ConfigStore handles settings persistence using Fyne preferences
type ConfigStore struct {
	app      fyne.App
	defaults *models.Config
}

// NewConfigStore creates a new ConfigStore. Values missing from the
// preferences fall back to defaults.
func NewConfigStore(app fyne.App, defaults *models.Config) *ConfigStore {
	if defaults == nil {
		defaults = models.DefaultConfig()
	}
	return &ConfigStore{app: app, defaults: defaults}
}

// Load loads configuration from preferences
func (cs *ConfigStore) Load() *models.Config {
	prefs := cs.app.Preferences()

	return &models.Config{
		AutoStart:           prefs.BoolWithFallback(prefAutoStart, cs.defaults.AutoStart),
		NotificationSeconds: prefs.IntWithFallback(prefNotificationSeconds, cs.defaults.NotificationSeconds),
		ChimeOnAdd:          prefs.BoolWithFallback(prefChimeOnAdd, cs.defaults.ChimeOnAdd),
	}
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	prefs := cs.app.Preferences()

	prefs.SetBool(prefAutoStart, config.AutoStart)
	prefs.SetInt(prefNotificationSeconds, config.NotificationSeconds)
	prefs.SetBool(prefChimeOnAdd, config.ChimeOnAdd)
}
