package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/study-timetable/pkg/models"
)

// SlotList shows one SlotView per time slot of the day
type SlotList struct {
	list     *widget.List
	slots    []models.Slot
	onDelete func(models.TimeLabel)
}

// SlotListConfig configures the slot list
type SlotListConfig struct {
	OnDelete func(models.TimeLabel) // Called when a row's delete button is tapped
	Header   fyne.CanvasObject      // Shown above the list (optional)
}

// NewSlotList creates the list component and the container that lays it out
func NewSlotList(slots []models.Slot, config SlotListConfig) (*SlotList, *fyne.Container) {
	sl := &SlotList{
		slots:    slots,
		onDelete: config.OnDelete,
	}

	sl.list = widget.NewList(
		func() int {
			return len(sl.slots)
		},
		func() fyne.CanvasObject {
			return NewSlotView(models.Slot{Time: "00:00", IsEmpty: true}, nil)
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= len(sl.slots) {
				return
			}
			slot := sl.slots[i]
			o.(*SlotView).Update(slot, func() {
				if sl.onDelete != nil {
					sl.onDelete(slot.Time)
				}
			})
		})

	// Rows are not selectable; deletion happens through the row button.
	sl.list.OnSelected = func(id widget.ListItemID) {
		sl.list.Unselect(id)
	}

	listWithBorder := container.NewBorder(
		widget.NewSeparator(),
		widget.NewSeparator(),
		nil,
		nil,
		sl.list,
	)

	if config.Header == nil {
		return sl, listWithBorder
	}
	return sl, container.NewBorder(config.Header, nil, nil, nil, listWithBorder)
}

// SetSlots replaces the rendered rows and refreshes
func (sl *SlotList) SetSlots(slots []models.Slot) {
	sl.slots = slots
	sl.list.Refresh()
}

// Slots returns the rows currently rendered
func (sl *SlotList) Slots() []models.Slot {
	return sl.slots
}

// ScrollTo scrolls the list to the row for label
func (sl *SlotList) ScrollTo(label models.TimeLabel) {
	if i := label.Index(); i >= 0 && i < len(sl.slots) {
		sl.list.ScrollTo(i)
	}
}
