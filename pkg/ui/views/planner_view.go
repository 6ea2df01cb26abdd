// Package views assembles the planner window content from the components.
package views

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/borgmon/study-timetable/pkg/notify"
	"github.com/borgmon/study-timetable/pkg/planner"
	"github.com/borgmon/study-timetable/pkg/ui/components"
	"go.uber.org/zap"
)

const (
	Title          = "24-Hour Study Timetable"
	AddButtonText  = "Add to Timetable"
	clearHoldTime  = 2 * time.Second
	subjectHint    = "Enter subject"
	timetableTitle = "Your Timetable"
)

// PlannerView is the main window content: the add form, the 48-slot list
// and the notification area.
type PlannerView struct {
	planner       *planner.Planner
	notifications *components.NotificationArea
	logger        *zap.Logger

	hourSelect   *widget.Select
	minuteSelect *widget.Select
	subjectEntry *widget.Entry
	addButton    *widget.Button
	clearButton  *components.HoldButton
	summaryLabel *widget.Label
	slotList     *components.SlotList

	content fyne.CanvasObject

	// OnAdded is called after a subject was committed
	OnAdded func(label models.TimeLabel, subject string)
	// OnChanged is called after every schedule mutation
	OnChanged func()
}

// NewPlannerView builds the view around a fresh, empty planner
func NewPlannerView(queue *notify.Queue, logger *zap.Logger) *PlannerView {
	if logger == nil {
		logger = zap.NewNop()
	}
	pv := &PlannerView{
		planner:       planner.New(queue, logger),
		notifications: components.NewNotificationArea(queue),
		logger:        logger,
	}
	pv.buildUI()
	return pv
}

// Content returns the root canvas object of the view
func (pv *PlannerView) Content() fyne.CanvasObject {
	return pv.content
}

// Planner exposes the state owner, for menus and the tray
func (pv *PlannerView) Planner() *planner.Planner {
	return pv.planner
}

// Notify shows a notification produced outside the planner, e.g. by export
func (pv *PlannerView) Notify(n models.Notification) {
	pv.notifications.Show(n)
}

func (pv *PlannerView) buildUI() {
	entry := pv.planner.Entry()

	title := canvas.NewText(Title, theme.Color(theme.ColorNameForeground))
	title.TextSize = 28
	title.TextStyle.Bold = true
	title.Alignment = fyne.TextAlignCenter

	pv.hourSelect = widget.NewSelect(models.Hours, func(hour string) {
		pv.planner.SetHour(hour)
	})
	pv.hourSelect.SetSelected(entry.SelectedHour)

	pv.minuteSelect = widget.NewSelect(models.Minutes, func(minute string) {
		pv.planner.SetMinute(minute)
	})
	pv.minuteSelect.SetSelected(entry.SelectedMinute)

	pv.subjectEntry = widget.NewEntry()
	pv.subjectEntry.SetPlaceHolder(subjectHint)
	pv.subjectEntry.OnChanged = func(text string) {
		pv.planner.SetSubject(text)
	}
	// Enter in the subject field commits like the button
	pv.subjectEntry.OnSubmitted = func(string) {
		pv.commit()
	}

	pv.addButton = widget.NewButtonWithIcon(AddButtonText, theme.ContentAddIcon(), pv.commit)
	pv.addButton.Importance = widget.HighImportance

	timeRow := container.NewGridWithColumns(2,
		widget.NewForm(widget.NewFormItem("Hour", pv.hourSelect)),
		widget.NewForm(widget.NewFormItem("Minute", pv.minuteSelect)),
	)

	form := container.NewVBox(
		timeRow,
		widget.NewForm(widget.NewFormItem("Subject", pv.subjectEntry)),
		pv.addButton,
	)

	pv.summaryLabel = widget.NewLabel(pv.planner.Summary())
	pv.summaryLabel.Importance = widget.MediumImportance

	pv.clearButton = components.NewHoldButton("Hold to Clear", clearHoldTime, pv.clear)

	listTitle := widget.NewLabel(timetableTitle)
	listTitle.TextStyle.Bold = true

	listHeader := container.NewBorder(nil, nil,
		container.NewHBox(listTitle, pv.summaryLabel),
		pv.clearButton,
	)

	var listContent *fyne.Container
	pv.slotList, listContent = components.NewSlotList(pv.planner.Slots(), components.SlotListConfig{
		OnDelete: pv.deleteSlot,
		Header:   listHeader,
	})

	top := container.NewVBox(
		container.NewPadded(title),
		form,
		widget.NewSeparator(),
	)

	pv.content = container.NewPadded(container.NewBorder(
		top,
		pv.notifications.Container(),
		nil,
		nil,
		listContent,
	))

	pv.refresh()
}

func (pv *PlannerView) commit() {
	label := pv.planner.Entry().TimeLabel()
	n, err := pv.planner.Commit()
	pv.notifications.Show(n)
	if err != nil {
		return
	}

	subject, _ := pv.planner.Subject(label)
	pv.subjectEntry.SetText(pv.planner.Entry().SubjectDraft)
	pv.refresh()
	pv.slotList.ScrollTo(label)

	if pv.OnAdded != nil {
		pv.OnAdded(label, subject)
	}
}

func (pv *PlannerView) deleteSlot(label models.TimeLabel) {
	pv.notifications.Show(pv.planner.Delete(label))
	pv.refresh()
}

func (pv *PlannerView) clear() {
	n, cleared := pv.planner.Clear()
	if !cleared {
		return
	}
	pv.notifications.Show(n)
	pv.refresh()
}

// refresh re-renders every row from the schedule
func (pv *PlannerView) refresh() {
	pv.slotList.SetSlots(pv.planner.Slots())
	pv.summaryLabel.SetText(pv.planner.Summary())

	if len(pv.planner.Occupied()) == 0 {
		pv.clearButton.Disable()
	} else {
		pv.clearButton.Enable()
	}

	if pv.OnChanged != nil {
		pv.OnChanged()
	}
}
