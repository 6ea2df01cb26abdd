package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/study-timetable/pkg/models"
)

// EmptyText is shown in place of a subject for unassigned slots.
const EmptyText = "Empty"

// SlotView renders one timetable row: the time, the subject or "Empty", and a
// delete button when the slot is occupied.
type SlotView struct {
	widget.BaseWidget
	OnDelete func()

	slot         models.Slot
	timeLabel    *widget.Label
	subjectLabel *widget.Label
	deleteButton *widget.Button
}

// NewSlotView creates a row for slot
func NewSlotView(slot models.Slot, onDelete func()) *SlotView {
	s := &SlotView{
		timeLabel:    widget.NewLabel(""),
		subjectLabel: widget.NewLabel(""),
	}
	s.timeLabel.TextStyle.Bold = true
	s.subjectLabel.Truncation = fyne.TextTruncateEllipsis
	s.deleteButton = widget.NewButtonWithIcon("", theme.CancelIcon(), s.requestDelete)
	s.deleteButton.Importance = widget.LowImportance

	s.ExtendBaseWidget(s)
	s.Update(slot, onDelete)
	return s
}

// Update replaces the row's inputs so list rows can be reused
func (s *SlotView) Update(slot models.Slot, onDelete func()) {
	s.slot = slot
	s.OnDelete = onDelete

	s.timeLabel.SetText(slot.Time.String())
	if slot.IsEmpty {
		s.subjectLabel.TextStyle.Italic = true
		s.subjectLabel.Importance = widget.LowImportance
		s.subjectLabel.SetText(EmptyText)
		s.deleteButton.Hide()
	} else {
		s.subjectLabel.TextStyle.Italic = false
		s.subjectLabel.Importance = widget.MediumImportance
		s.subjectLabel.SetText(slot.Subject)
		s.deleteButton.Show()
	}
}

// Slot returns the row's current inputs
func (s *SlotView) Slot() models.Slot {
	return s.slot
}

func (s *SlotView) requestDelete() {
	// The button is hidden for empty slots; guard against stale taps anyway.
	if s.slot.IsEmpty || s.OnDelete == nil {
		return
	}
	s.OnDelete()
}

// CreateRenderer implements fyne.Widget
func (s *SlotView) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewBorder(nil, nil, s.timeLabel, s.deleteButton, s.subjectLabel)
	return widget.NewSimpleRenderer(row)
}
