package models

import "time"

const (
	DefaultNotificationSeconds = 3
	MaxNotificationSeconds     = 30
)

// Config holds application settings. The timetable itself is never stored here.
type Config struct {
	AutoStart           bool `json:"auto_start"`
	NotificationSeconds int  `json:"notification_seconds"` // how long a notification stays visible
	ChimeOnAdd          bool `json:"chime_on_add"`         // play a short tone after a successful add
}

// DefaultConfig returns the settings used before anything has been saved.
func DefaultConfig() *Config {
	return &Config{
		NotificationSeconds: DefaultNotificationSeconds,
	}
}

// NotificationDuration clamps NotificationSeconds into a usable range
func (c *Config) NotificationDuration() time.Duration {
	secs := c.NotificationSeconds
	if secs <= 0 {
		secs = DefaultNotificationSeconds
	}
	if secs > MaxNotificationSeconds {
		secs = MaxNotificationSeconds
	}
	return time.Duration(secs) * time.Second
}
