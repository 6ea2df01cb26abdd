package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTimeLabelsOrder(t *testing.T) {
	labels := AllTimeLabels()
	require.Len(t, labels, SlotsPerDay)

	assert.Equal(t, TimeLabel("00:00"), labels[0])
	assert.Equal(t, TimeLabel("00:30"), labels[1])
	assert.Equal(t, TimeLabel("09:00"), labels[18])
	assert.Equal(t, TimeLabel("23:30"), labels[47])

	seen := make(map[TimeLabel]bool)
	for i, l := range labels {
		assert.False(t, seen[l], "duplicate label %s", l)
		seen[l] = true
		assert.Equal(t, i, l.Index())
		if i > 0 {
			assert.Less(t, labels[i-1].Minutes(), l.Minutes())
		}
	}
}

func TestAllTimeLabelsReturnsCopy(t *testing.T) {
	labels := AllTimeLabels()
	labels[0] = "bogus"
	assert.Equal(t, TimeLabel("00:00"), AllTimeLabels()[0])
}

func TestTimeLabelValid(t *testing.T) {
	assert.True(t, TimeLabel("13:30").Valid())
	assert.False(t, TimeLabel("13:15").Valid())
	assert.False(t, TimeLabel("24:00").Valid())
	assert.False(t, TimeLabel("9:00").Valid())
	assert.Equal(t, -1, TimeLabel("").Minutes())
	assert.Equal(t, 13*60+30, TimeLabel("13:30").Minutes())
}

func TestPendingEntryDefaults(t *testing.T) {
	p := NewPendingEntry()
	assert.Equal(t, "00", p.SelectedHour)
	assert.Equal(t, "00", p.SelectedMinute)
	assert.Empty(t, p.SubjectDraft)
	assert.Equal(t, TimeLabel("00:00"), p.TimeLabel())
}

func TestDomains(t *testing.T) {
	assert.Len(t, Hours, 24)
	assert.True(t, IsHour("07"))
	assert.False(t, IsHour("7"))
	assert.True(t, IsMinute("30"))
	assert.False(t, IsMinute("15"))
}

func TestNotificationDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, DefaultConfig().NotificationDuration())
	assert.Equal(t, 3*time.Second, (&Config{NotificationSeconds: -1}).NotificationDuration())
	assert.Equal(t, 10*time.Second, (&Config{NotificationSeconds: 10}).NotificationDuration())
	assert.Equal(t, 30*time.Second, (&Config{NotificationSeconds: 90}).NotificationDuration())
}
