package store

import (
	"errors"
	"sync"

	"github.com/borgmon/study-timetable/pkg/models"
)

// ErrUnknownTimeLabel is returned when a key is not one of the day's slots.
var ErrUnknownTimeLabel = errors.New("unknown time label")

// TimetableStore holds the in-memory schedule: one subject per time label
type TimetableStore struct {
	mu sync.RWMutex

	// Map of time label to subject. A present key always has a non-empty subject.
	subjects map[models.TimeLabel]string
}

// NewTimetableStore creates an empty TimetableStore
func NewTimetableStore() *TimetableStore {
	return &TimetableStore{
		subjects: make(map[models.TimeLabel]string),
	}
}

// Set assigns a subject to a slot, replacing any previous subject
func (ts *TimetableStore) Set(label models.TimeLabel, subject string) error {
	if !label.Valid() {
		return ErrUnknownTimeLabel
	}
	if subject == "" {
		return errors.New("subject must not be empty")
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.subjects[label] = subject
	return nil
}

// Remove deletes the slot's subject. It reports whether anything was removed.
func (ts *TimetableStore) Remove(label models.TimeLabel) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.subjects[label]; !exists {
		return false
	}
	delete(ts.subjects, label)
	return true
}

// Get returns the subject for a slot
func (ts *TimetableStore) Get(label models.TimeLabel) (string, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	subject, ok := ts.subjects[label]
	return subject, ok
}

// Len returns the number of occupied slots
func (ts *TimetableStore) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return len(ts.subjects)
}

// Clear removes every entry and returns how many there were
func (ts *TimetableStore) Clear() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	n := len(ts.subjects)
	ts.subjects = make(map[models.TimeLabel]string)
	return n
}

// Snapshot returns a copy of the schedule
func (ts *TimetableStore) Snapshot() map[models.TimeLabel]string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	out := make(map[models.TimeLabel]string, len(ts.subjects))
	for k, v := range ts.subjects {
		out[k] = v
	}
	return out
}

// Slots returns one row per day slot, in day order
func (ts *TimetableStore) Slots() []models.Slot {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	labels := models.AllTimeLabels()
	slots := make([]models.Slot, len(labels))
	for i, label := range labels {
		subject, ok := ts.subjects[label]
		slots[i] = models.Slot{
			Time:    label,
			Subject: subject,
			IsEmpty: !ok,
		}
	}
	return slots
}

// Occupied returns the occupied slots in day order
func (ts *TimetableStore) Occupied() []models.Slot {
	var out []models.Slot
	for _, slot := range ts.Slots() {
		if !slot.IsEmpty {
			out = append(out, slot)
		}
	}
	return out
}
