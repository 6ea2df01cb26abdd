package main

import (
	"strings"

	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyDebug               = "debug"
	keyNotificationSeconds = "notification-seconds"
	keyChimeOnAdd          = "chime-on-add"
)

// newSettings wires defaults, TIMETABLE_* environment variables and the
// command line flags into one viper instance.
func newSettings(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("timetable")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyDebug, false)
	v.SetDefault(keyNotificationSeconds, models.DefaultNotificationSeconds)
	v.SetDefault(keyChimeOnAdd, false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// defaultConfig returns the settings used when the user has not saved any
func defaultConfig(v *viper.Viper) *models.Config {
	cfg := models.DefaultConfig()
	cfg.NotificationSeconds = v.GetInt(keyNotificationSeconds)
	cfg.ChimeOnAdd = v.GetBool(keyChimeOnAdd)
	return cfg
}

// applyOverrides lets an explicit flag or environment variable win over the
// saved preferences for this run.
func applyOverrides(v *viper.Viper, cfg *models.Config) {
	if v.IsSet(keyNotificationSeconds) {
		cfg.NotificationSeconds = v.GetInt(keyNotificationSeconds)
	}
	if v.IsSet(keyChimeOnAdd) {
		cfg.ChimeOnAdd = v.GetBool(keyChimeOnAdd)
	}
}
