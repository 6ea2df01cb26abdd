package planner

import (
	"testing"
	"time"

	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/borgmon/study-timetable/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestPlanner(t *testing.T) (*Planner, *notify.Queue) {
	q := notify.NewQueue(time.Minute)
	return New(q, zaptest.NewLogger(t)), q
}

func commitAt(t *testing.T, p *Planner, hour, minute, subject string) models.Notification {
	t.Helper()
	p.SetHour(hour)
	p.SetMinute(minute)
	p.SetSubject(subject)
	n, err := p.Commit()
	require.NoError(t, err)
	return n
}

func TestCommitRejectsBlankSubject(t *testing.T) {
	for _, draft := range []string{"", "   ", "\t\n"} {
		p, q := newTestPlanner(t)
		p.SetHour("09")
		p.SetSubject(draft)

		n, err := p.Commit()

		assert.ErrorIs(t, err, ErrEmptySubject)
		assert.Equal(t, models.NotificationError, n.Kind)
		assert.Equal(t, "Please enter a subject name", n.Message)
		assert.Empty(t, p.Occupied())
		assert.Equal(t, draft, p.Entry().SubjectDraft)
		assert.Equal(t, 1, q.Len())
	}
}

func TestCommitAddsSubject(t *testing.T) {
	p, _ := newTestPlanner(t)

	n := commitAt(t, p, "09", "00", "Math")

	subject, ok := p.Subject("09:00")
	assert.True(t, ok)
	assert.Equal(t, "Math", subject)
	assert.Equal(t, models.NotificationSuccess, n.Kind)
	assert.Equal(t, "Added Math at 09:00", n.Message)

	entry := p.Entry()
	assert.Empty(t, entry.SubjectDraft)
	assert.Equal(t, "09", entry.SelectedHour)
	assert.Equal(t, "00", entry.SelectedMinute)

	slots := p.Slots()
	assert.Equal(t, models.Slot{Time: "09:00", Subject: "Math"}, slots[18])
}

func TestCommitTrimsSubject(t *testing.T) {
	p, _ := newTestPlanner(t)

	n := commitAt(t, p, "10", "30", "  History ")

	subject, _ := p.Subject("10:30")
	assert.Equal(t, "History", subject)
	assert.Equal(t, "Added History at 10:30", n.Message)
}

func TestCommitLastWriteWins(t *testing.T) {
	p, _ := newTestPlanner(t)

	commitAt(t, p, "09", "00", "Math")
	commitAt(t, p, "09", "00", "Physics")

	subject, _ := p.Subject("09:00")
	assert.Equal(t, "Physics", subject)
	assert.Len(t, p.Occupied(), 1)
}

func TestDeleteRemovesOnlyThatSlot(t *testing.T) {
	p, _ := newTestPlanner(t)
	commitAt(t, p, "09", "00", "Math")
	commitAt(t, p, "09", "30", "Biology")

	n := p.Delete("09:00")

	assert.Equal(t, models.NotificationRemoved, n.Kind)
	assert.Equal(t, "Removed subject at 09:00", n.Message)
	_, ok := p.Subject("09:00")
	assert.False(t, ok)
	assert.True(t, p.Slots()[18].IsEmpty)

	subject, ok := p.Subject("09:30")
	assert.True(t, ok)
	assert.Equal(t, "Biology", subject)
}

func TestDeleteEmptySlotLeavesScheduleUnchanged(t *testing.T) {
	p, _ := newTestPlanner(t)
	commitAt(t, p, "07", "00", "Art")

	before := p.Slots()
	p.Delete("12:00")

	assert.Equal(t, before, p.Slots())
}

func TestSetHourIgnoresValuesOutsideDomain(t *testing.T) {
	p, _ := newTestPlanner(t)

	p.SetHour("24")
	p.SetMinute("15")

	assert.Equal(t, models.NewPendingEntry().TimeLabel(), p.Entry().TimeLabel())
}

func TestSlotsArePureFunctionOfSchedule(t *testing.T) {
	p, _ := newTestPlanner(t)
	commitAt(t, p, "13", "30", "Chemistry")

	first := p.Slots()
	second := p.Slots()
	assert.Equal(t, first, second)

	labels := models.AllTimeLabels()
	require.Len(t, first, len(labels))
	for i, slot := range first {
		assert.Equal(t, labels[i], slot.Time)
		if slot.Time != "13:30" {
			assert.True(t, slot.IsEmpty)
			assert.Empty(t, slot.Subject)
		}
	}
}

func TestClear(t *testing.T) {
	p, _ := newTestPlanner(t)

	_, cleared := p.Clear()
	assert.False(t, cleared)

	commitAt(t, p, "06", "00", "Math")
	commitAt(t, p, "06", "30", "Physics")
	assert.Equal(t, "2 of 48 slots planned", p.Summary())

	n, cleared := p.Clear()
	assert.True(t, cleared)
	assert.Equal(t, "Cleared 2 subjects", n.Message)
	assert.Empty(t, p.Occupied())
	assert.Equal(t, "0 of 48 slots planned", p.Summary())
}

func TestNilQueueStillReturnsNotification(t *testing.T) {
	p := New(nil, nil)
	p.SetSubject("Math")

	n, err := p.Commit()

	require.NoError(t, err)
	assert.Equal(t, "Added Math at 00:00", n.Message)
	assert.Empty(t, n.ID)
}
