package store

import (
	"testing"

	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetableStoreSetOverwrites(t *testing.T) {
	ts := NewTimetableStore()

	require.NoError(t, ts.Set("09:00", "Math"))
	require.NoError(t, ts.Set("09:00", "Physics"))

	subject, ok := ts.Get("09:00")
	assert.True(t, ok)
	assert.Equal(t, "Physics", subject)
	assert.Equal(t, 1, ts.Len())
}

func TestTimetableStoreRejectsUnknownLabel(t *testing.T) {
	ts := NewTimetableStore()

	assert.ErrorIs(t, ts.Set("09:15", "Math"), ErrUnknownTimeLabel)
	assert.Error(t, ts.Set("09:00", ""))
	assert.Equal(t, 0, ts.Len())
}

func TestTimetableStoreRemove(t *testing.T) {
	ts := NewTimetableStore()
	require.NoError(t, ts.Set("09:00", "Math"))
	require.NoError(t, ts.Set("10:30", "History"))

	assert.True(t, ts.Remove("09:00"))
	assert.False(t, ts.Remove("09:00"))

	_, ok := ts.Get("09:00")
	assert.False(t, ok)
	subject, ok := ts.Get("10:30")
	assert.True(t, ok)
	assert.Equal(t, "History", subject)
}

func TestTimetableStoreSlots(t *testing.T) {
	ts := NewTimetableStore()
	require.NoError(t, ts.Set("00:30", "Reading"))

	slots := ts.Slots()
	require.Len(t, slots, models.SlotsPerDay)
	assert.Equal(t, models.Slot{Time: "00:00", IsEmpty: true}, slots[0])
	assert.Equal(t, models.Slot{Time: "00:30", Subject: "Reading"}, slots[1])

	occupied := ts.Occupied()
	require.Len(t, occupied, 1)
	assert.Equal(t, models.TimeLabel("00:30"), occupied[0].Time)
}

func TestTimetableStoreClearAndSnapshot(t *testing.T) {
	ts := NewTimetableStore()
	require.NoError(t, ts.Set("08:00", "Chemistry"))
	require.NoError(t, ts.Set("20:00", "Biology"))

	snap := ts.Snapshot()
	snap["08:00"] = "changed"
	subject, _ := ts.Get("08:00")
	assert.Equal(t, "Chemistry", subject)

	assert.Equal(t, 2, ts.Clear())
	assert.Equal(t, 0, ts.Len())
	assert.Equal(t, 0, ts.Clear())
}
