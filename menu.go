package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/borgmon/study-timetable/pkg/calendar"
	"github.com/borgmon/study-timetable/pkg/models"
	"go.uber.org/zap"
)

func (st *StudyTimetable) buildMainMenu() *fyne.MainMenu {
	exportItem := fyne.NewMenuItem("Export iCalendar...", st.showExportDialog)
	settingsItem := fyne.NewMenuItem("Settings...", st.showSettingsWindow)

	// Fyne appends its own Quit item to the first menu
	return fyne.NewMainMenu(
		fyne.NewMenu("File", exportItem, fyne.NewMenuItemSeparator(), settingsItem),
	)
}

func (st *StudyTimetable) showExportDialog() {
	slots := st.plannerView.Planner().Occupied()
	if len(slots) == 0 {
		dialog.ShowInformation("Nothing to Export", "Add at least one subject before exporting.", st.window)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, st.window)
			return
		}
		if writer == nil {
			return // cancelled
		}

		go func() {
			defer writer.Close()
			exportErr := calendar.Encode(writer, slots, time.Now())

			fyne.Do(func() {
				if exportErr != nil {
					st.logger.Error("export failed", zap.String("uri", writer.URI().String()), zap.Error(exportErr))
					dialog.ShowError(exportErr, st.window)
					return
				}
				st.logger.Info("timetable exported", zap.String("uri", writer.URI().String()), zap.Int("events", len(slots)))
				st.plannerView.Notify(st.notifications.Push(models.NotificationSuccess, "Exported",
					fmt.Sprintf("Exported %d subjects to %s", len(slots), writer.URI().Name())))
			})
		}()
	}, st.window)

	save.SetFileName("study-timetable.ics")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	save.Show()
}
