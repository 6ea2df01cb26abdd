package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/study-timetable/pkg/models"
	"go.uber.org/zap"
)

const savedMessage = "Settings saved successfully"

var notificationSecondOptions = []string{"2 sec", "3 sec", "5 sec", "10 sec", "30 sec"}

type SettingsWindow struct {
	window fyne.Window
	app    fyne.App
	config *models.Config
	logger *zap.Logger
	onSave func(*models.Config)

	autoStartCheck     *widget.Check
	notificationSelect *widget.Select
	chimeCheck         *widget.Check

	// UI state
	saveStatusLabel *widget.Label
	saveButton      *widget.Button
}

func NewSettingsWindow(app fyne.App, config *models.Config, logger *zap.Logger, onSave func(*models.Config)) *SettingsWindow {
	sw := &SettingsWindow{
		app:    app,
		config: config,
		logger: logger,
		onSave: onSave,
	}

	sw.window = app.NewWindow("Study Timetable - Settings")
	sw.buildUI()

	return sw
}

func (sw *SettingsWindow) buildUI() {
	sw.autoStartCheck = widget.NewCheck("Launch at login", func(bool) {
		sw.updateSaveButtonState()
	})
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)

	sw.notificationSelect = widget.NewSelect(notificationSecondOptions, func(string) {
		sw.updateSaveButtonState()
	})
	sw.notificationSelect.SetSelected(formatSeconds(sw.config.NotificationSeconds))

	sw.chimeCheck = widget.NewCheck("Play a chime after adding a subject", func(bool) {
		sw.updateSaveButtonState()
	})
	sw.chimeCheck.SetChecked(sw.config.ChimeOnAdd)

	// Storage root URI display (read-only)
	storageURIEntry := widget.NewEntry()
	storageURIEntry.SetText(sw.app.Storage().RootURI().String())
	storageURIEntry.Disable()

	openStorageButton := widget.NewButton("Open in File Manager", sw.openStorage)

	notificationHelp := widget.NewLabel("How long add and remove messages stay visible")
	notificationHelp.Importance = widget.MediumImportance

	storageHelp := widget.NewLabel("Settings are stored here. The timetable itself is kept in memory only.")
	storageHelp.Wrapping = fyne.TextWrapWord
	storageHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Auto Start:"),
		sw.autoStartCheck,

		container.NewVBox(widget.NewLabel("Notifications:"), notificationHelp),
		container.NewVBox(sw.notificationSelect, sw.chimeCheck),

		container.NewVBox(widget.NewLabel("Storage Location:"), storageHelp),
		container.NewBorder(nil, container.NewPadded(openStorageButton), nil, nil, storageURIEntry),
	)

	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveStatusLabel.Importance = widget.SuccessImportance

	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance
	sw.saveButton.Disable() // Initially disabled until changes are made

	closeButton := widget.NewButton("Close", sw.handleClose)

	buttonRow := container.NewBorder(nil, nil,
		container.NewHBox(sw.saveButton, sw.saveStatusLabel),
		closeButton,
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		container.NewPadded(container.NewVScroll(container.NewVBox(
			widget.NewLabel("General Settings"),
			widget.NewSeparator(),
			form,
		))),
	)

	sw.window.SetContent(content)
	sw.window.Resize(fyne.NewSize(560, 360))
	sw.window.CenterOnScreen()
	sw.window.SetCloseIntercept(sw.handleClose)
}

func (sw *SettingsWindow) save() {
	sw.saveButton.Disable()
	sw.setStatus("Saving...", widget.MediumImportance)

	newConfig := sw.getConfigFromUI()
	go func() {
		if err := setupAutostart(newConfig.AutoStart, sw.logger); err != nil {
			fyne.Do(func() {
				sw.setStatus("Error: Failed to set autostart", widget.DangerImportance)
				sw.updateSaveButtonState()
			})
			return
		}

		fyne.Do(func() {
			if sw.onSave != nil {
				sw.onSave(newConfig)
			}
			sw.config = newConfig
			sw.setStatus(savedMessage, widget.SuccessImportance)
			sw.updateSaveButtonState()

			// Clear success message after 3 seconds
			time.AfterFunc(3*time.Second, func() {
				fyne.Do(func() {
					if sw.saveStatusLabel.Text == savedMessage {
						sw.setStatus("", widget.SuccessImportance)
					}
				})
			})
		})
	}()
}

func (sw *SettingsWindow) setStatus(text string, importance widget.Importance) {
	sw.saveStatusLabel.Importance = importance
	sw.saveStatusLabel.SetText(text)
}

func (sw *SettingsWindow) getConfigFromUI() *models.Config {
	return &models.Config{
		AutoStart:           sw.autoStartCheck.Checked,
		NotificationSeconds: parseSeconds(sw.notificationSelect.Selected, sw.config.NotificationSeconds),
		ChimeOnAdd:          sw.chimeCheck.Checked,
	}
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

// updateSaveButtonState enables the save button only when the UI differs
// from the saved config
func (sw *SettingsWindow) updateSaveButtonState() {
	if sw.saveButton == nil || sw.notificationSelect == nil || sw.chimeCheck == nil {
		return
	}
	if sw.hasChanges() {
		sw.saveButton.Enable()
	} else {
		sw.saveButton.Disable()
	}
}

func (sw *SettingsWindow) hasChanges() bool {
	current := sw.getConfigFromUI()
	return *current != *sw.config
}

// handleClose handles window close with unsaved changes check
func (sw *SettingsWindow) handleClose() {
	if !sw.hasChanges() {
		sw.window.Close()
		return
	}
	dialog.ShowConfirm("Unsaved Changes",
		"You have unsaved changes. Are you sure you want to close?",
		func(confirmed bool) {
			if confirmed {
				sw.window.Close()
			}
		}, sw.window)
}

func (sw *SettingsWindow) openStorage() {
	path := sw.app.Storage().RootURI().Path()
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		sw.logger.Warn("unsupported OS for file manager", zap.String("os", runtime.GOOS))
		return
	}

	if err := cmd.Start(); err != nil {
		sw.logger.Error("error opening file manager", zap.Error(err))
	}
}

// formatSeconds renders a duration setting as a select option
func formatSeconds(secs int) string {
	return fmt.Sprintf("%d sec", secs)
}

// parseSeconds parses "5 sec" -> 5, falling back on malformed input
func parseSeconds(option string, fallback int) int {
	var val int
	if _, err := fmt.Sscanf(option, "%d sec", &val); err != nil || val <= 0 {
		return fallback
	}
	return val
}
