// Package planner owns the timetable state behind the planner window: the
// schedule, the add form and the notifications produced by each action.
package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/borgmon/study-timetable/pkg/notify"
	"github.com/borgmon/study-timetable/pkg/store"
	"go.uber.org/zap"
)

// ErrEmptySubject is returned by Commit when the draft is blank.
var ErrEmptySubject = errors.New("please enter a subject name")

const emptySubjectMessage = "Please enter a subject name"

// Planner holds one timetable and its pending entry
type Planner struct {
	store         *store.TimetableStore
	entry         models.PendingEntry
	notifications *notify.Queue
	logger        *zap.Logger
}

// New creates a planner with an empty schedule
func New(notifications *notify.Queue, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		store:         store.NewTimetableStore(),
		entry:         models.NewPendingEntry(),
		notifications: notifications,
		logger:        logger,
	}
}

// Entry returns the current form state
func (p *Planner) Entry() models.PendingEntry {
	return p.entry
}

// SetHour selects the hour. Values outside the hour domain are ignored.
func (p *Planner) SetHour(hour string) {
	if !models.IsHour(hour) {
		p.logger.Warn("ignoring hour outside domain", zap.String("hour", hour))
		return
	}
	p.entry.SelectedHour = hour
}

// SetMinute selects the minute. Values outside the minute domain are ignored.
func (p *Planner) SetMinute(minute string) {
	if !models.IsMinute(minute) {
		p.logger.Warn("ignoring minute outside domain", zap.String("minute", minute))
		return
	}
	p.entry.SelectedMinute = minute
}

// SetSubject replaces the subject draft
func (p *Planner) SetSubject(subject string) {
	p.entry.SubjectDraft = subject
}

// Commit assigns the drafted subject to the selected slot.
//
// A blank draft leaves the schedule and the form untouched and returns
// ErrEmptySubject along with the error notification. On success the draft is
// cleared while the hour and minute stay selected.
func (p *Planner) Commit() (models.Notification, error) {
	subject := strings.TrimSpace(p.entry.SubjectDraft)
	if subject == "" {
		p.logger.Debug("commit rejected: empty subject")
		return p.notify(models.NotificationError, "Error", emptySubjectMessage), ErrEmptySubject
	}

	label := p.entry.TimeLabel()
	if err := p.store.Set(label, subject); err != nil {
		p.logger.Error("commit failed", zap.String("slot", label.String()), zap.Error(err))
		return p.notify(models.NotificationError, "Error", err.Error()), err
	}

	p.entry.SubjectDraft = ""
	p.logger.Info("subject added", zap.String("slot", label.String()), zap.String("subject", subject))

	return p.notify(models.NotificationSuccess, "Success",
		fmt.Sprintf("Added %s at %s", subject, label)), nil
}

// Delete removes the subject at label. Removing an empty slot leaves the
// schedule unchanged.
func (p *Planner) Delete(label models.TimeLabel) models.Notification {
	if p.store.Remove(label) {
		p.logger.Info("subject removed", zap.String("slot", label.String()))
	} else {
		p.logger.Debug("remove on empty slot", zap.String("slot", label.String()))
	}
	return p.notify(models.NotificationRemoved, "Removed",
		fmt.Sprintf("Removed subject at %s", label))
}

// Clear empties the whole schedule. It reports false, without notifying,
// when there was nothing to clear.
func (p *Planner) Clear() (models.Notification, bool) {
	n := p.store.Clear()
	if n == 0 {
		return models.Notification{}, false
	}
	p.logger.Info("timetable cleared", zap.Int("count", n))
	return p.notify(models.NotificationRemoved, "Cleared",
		fmt.Sprintf("Cleared %d %s", n, plural(n, "subject"))), true
}

// Slots renders the 48 rows of the day from the current schedule
func (p *Planner) Slots() []models.Slot {
	return p.store.Slots()
}

// Occupied returns the planned rows in day order
func (p *Planner) Occupied() []models.Slot {
	return p.store.Occupied()
}

// Subject returns the subject at label, if any
func (p *Planner) Subject(label models.TimeLabel) (string, bool) {
	return p.store.Get(label)
}

// Summary describes how much of the day is planned
func (p *Planner) Summary() string {
	return fmt.Sprintf("%d of %d slots planned", p.store.Len(), models.SlotsPerDay)
}

func (p *Planner) notify(kind models.NotificationKind, title, message string) models.Notification {
	if p.notifications == nil {
		return models.Notification{Kind: kind, Title: title, Message: message}
	}
	return p.notifications.Push(kind, title, message)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
