package models

import "fmt"

// SlotsPerDay is 24 hours * 2 half-hour slots.
const SlotsPerDay = 48

// Hours is the selectable hour domain, "00" through "23".
var Hours = func() []string {
	hours := make([]string, 24)
	for i := range hours {
		hours[i] = fmt.Sprintf("%02d", i)
	}
	return hours
}()

// Minutes is the selectable minute domain.
var Minutes = []string{"00", "30"}

// TimeLabel identifies one half-hour slot as "HH:MM"
type TimeLabel string

var allTimeLabels = func() []TimeLabel {
	labels := make([]TimeLabel, 0, SlotsPerDay)
	for _, h := range Hours {
		for _, m := range Minutes {
			labels = append(labels, NewTimeLabel(h, m))
		}
	}
	return labels
}()

var labelIndex = func() map[TimeLabel]int {
	idx := make(map[TimeLabel]int, SlotsPerDay)
	for i, l := range allTimeLabels {
		idx[l] = i
	}
	return idx
}()

// NewTimeLabel joins an hour and a minute into a label. It does not validate.
func NewTimeLabel(hour, minute string) TimeLabel {
	return TimeLabel(hour + ":" + minute)
}

// AllTimeLabels returns the 48 labels of a day in ascending order.
// The returned slice is a copy.
func AllTimeLabels() []TimeLabel {
	labels := make([]TimeLabel, len(allTimeLabels))
	copy(labels, allTimeLabels)
	return labels
}

// Valid reports whether the label is one of the generated day slots
func (l TimeLabel) Valid() bool {
	_, ok := labelIndex[l]
	return ok
}

// Index returns the position of the label in the day, or -1.
func (l TimeLabel) Index() int {
	if i, ok := labelIndex[l]; ok {
		return i
	}
	return -1
}

// Minutes returns minutes from midnight, or -1 for an invalid label.
func (l TimeLabel) Minutes() int {
	i := l.Index()
	if i < 0 {
		return -1
	}
	return i * 30
}

func (l TimeLabel) String() string {
	return string(l)
}

// Slot is the render model for one timetable row
type Slot struct {
	Time    TimeLabel
	Subject string
	IsEmpty bool
}

// PendingEntry holds the add form state
type PendingEntry struct {
	SelectedHour   string
	SelectedMinute string
	SubjectDraft   string
}

// NewPendingEntry returns the form state shown on first render.
func NewPendingEntry() PendingEntry {
	return PendingEntry{
		SelectedHour:   Hours[0],
		SelectedMinute: Minutes[0],
	}
}

// TimeLabel returns the label the entry would commit to
func (p PendingEntry) TimeLabel() TimeLabel {
	return NewTimeLabel(p.SelectedHour, p.SelectedMinute)
}

// IsHour reports whether s is in the hour domain.
func IsHour(s string) bool {
	return contains(Hours, s)
}

// IsMinute reports whether s is in the minute domain.
func IsMinute(s string) bool {
	return contains(Minutes, s)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
