package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/study-timetable/pkg/models"
)

const trayUpcomingLimit = 5

func (st *StudyTimetable) setupSystemTray() {
	st.updateSystemTrayMenu()
}

func (st *StudyTimetable) updateSystemTrayMenu() {
	desk, ok := st.app.(desktop.App)
	if !ok || st.plannerView == nil {
		return
	}

	menuItems := []*fyne.MenuItem{
		fyne.NewMenuItem("Open Timetable", st.showMainWindow),
		fyne.NewMenuItemSeparator(),
	}

	upcoming := upcomingSlots(st.plannerView.Planner().Occupied(), time.Now(), trayUpcomingLimit)
	if len(upcoming) > 0 {
		headerItem := fyne.NewMenuItem("Up Next:", nil)
		headerItem.Disabled = true
		menuItems = append(menuItems, headerItem)

		for _, slot := range upcoming {
			item := fyne.NewMenuItem(fmt.Sprintf("  %s - %s", slot.Time, truncateString(slot.Subject, 35)), nil)
			item.Disabled = true
			menuItems = append(menuItems, item)
		}
		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Settings", st.showSettingsWindow),
		fyne.NewMenuItem("Quit", st.quit),
	)

	desk.SetSystemTrayMenu(fyne.NewMenu("Study Timetable", menuItems...))
	desk.SetSystemTrayIcon(theme.HistoryIcon())
}

// upcomingSlots returns up to limit occupied slots that have not ended yet
// today, in day order.
func upcomingSlots(occupied []models.Slot, now time.Time, limit int) []models.Slot {
	current := now.Hour()*60 + now.Minute()
	out := []models.Slot{}

	for _, slot := range occupied {
		// A slot is still relevant until its half hour is over
		if slot.Time.Minutes()+30 <= current {
			continue
		}
		out = append(out, slot)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// truncateString truncates a string to maxLen characters, adding "..." if needed
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
