package components

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/borgmon/study-timetable/pkg/notify"
)

// NotificationArea renders the active notifications of a queue, newest last
type NotificationArea struct {
	queue *notify.Queue
	box   *fyne.Container
}

// NewNotificationArea creates an area bound to queue
func NewNotificationArea(queue *notify.Queue) *NotificationArea {
	return &NotificationArea{
		queue: queue,
		box:   container.NewVBox(),
	}
}

// Container returns the canvas object to place in a layout
func (na *NotificationArea) Container() *fyne.Container {
	return na.box
}

// Show renders n and schedules its removal once the queue's TTL passes
func (na *NotificationArea) Show(n models.Notification) {
	na.Refresh()
	if n.ID == "" {
		return
	}
	time.AfterFunc(na.queue.TTL(), func() {
		fyne.Do(func() {
			na.queue.Expire()
			na.Refresh()
		})
	})
}

// Refresh rebuilds the labels from the queue
func (na *NotificationArea) Refresh() {
	active := na.queue.Active()
	objects := make([]fyne.CanvasObject, 0, len(active))
	for _, n := range active {
		objects = append(objects, notificationLabel(n))
	}
	na.box.Objects = objects
	na.box.Refresh()
}

// Messages returns the text of each visible notification
func (na *NotificationArea) Messages() []string {
	out := make([]string, 0, len(na.box.Objects))
	for _, o := range na.box.Objects {
		if label, ok := o.(*widget.Label); ok {
			out = append(out, label.Text)
		}
	}
	return out
}

func notificationLabel(n models.Notification) *widget.Label {
	label := widget.NewLabel(n.Title + ": " + n.Message)
	label.Wrapping = fyne.TextWrapWord
	switch n.Kind {
	case models.NotificationError:
		label.Importance = widget.DangerImportance
	case models.NotificationSuccess:
		label.Importance = widget.SuccessImportance
	default:
		label.Importance = widget.WarningImportance
	}
	return label
}
