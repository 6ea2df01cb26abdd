package calendar

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, 9, 2, 15, 4, 5, 0, time.UTC)

func testSlots() []models.Slot {
	return []models.Slot{
		{Time: "00:00", IsEmpty: true},
		{Time: "09:00", Subject: "Math"},
		{Time: "21:30", Subject: "Physics, lab; notes"},
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testSlots(), testDay))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	summary, err := events[0].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Math", summary)

	start, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)), "start %s", start)

	end, err := events[0].DateTimeEnd(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, end.Sub(start))

	summary, err = events[1].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Physics, lab; notes", summary)

	rule := events[1].Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rule)
	assert.Contains(t, rule.Value, "FREQ=DAILY")
}

func TestEncodeEmptyTimetable(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []models.Slot{{Time: "00:00", IsEmpty: true}}, testDay)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Zero(t, buf.Len())
}

func TestBuildCalendarRejectsInvalidLabel(t *testing.T) {
	_, err := BuildCalendar([]models.Slot{{Time: "09:15", Subject: "Math"}}, testDay)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncodeWrapsWriteErrors(t *testing.T) {
	err := Encode(failingWriter{}, testSlots(), testDay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode calendar")
	assert.Contains(t, err.Error(), "disk full")
}
