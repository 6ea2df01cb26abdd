package main

import (
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
	"go.uber.org/zap"
)

func autostartApp() (*autostart.App, error) {
	// Get the executable path
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve symlinks if any
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	return &autostart.App{
		Name:        "study-timetable",
		DisplayName: "Study Timetable",
		Exec:        []string{execPath},
	}, nil
}

func setupAutostart(enable bool, logger *zap.Logger) error {
	app, err := autostartApp()
	if err != nil {
		return err
	}

	if enable == app.IsEnabled() {
		return nil
	}

	if enable {
		if err := app.Enable(); err != nil {
			logger.Error("failed to enable autostart", zap.Error(err))
			return err
		}
		logger.Info("autostart enabled")
	} else {
		if err := app.Disable(); err != nil {
			logger.Error("failed to disable autostart", zap.Error(err))
			return err
		}
		logger.Info("autostart disabled")
	}

	return nil
}
