package components

import (
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

// stepClock is shared with the button's ticker goroutine
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestHoldButton(t *testing.T, onConfirmed func()) (*HoldButton, *stepClock) {
	test.NewTempApp(t)
	clock := &stepClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	b := NewHoldButton("Hold to clear", 2*time.Second, onConfirmed)
	b.now = clock.Now
	test.NewTempWindow(t, b)
	return b, clock
}

func TestHoldButtonConfirmsAfterHold(t *testing.T) {
	confirmed := 0
	b, clock := newTestHoldButton(t, func() { confirmed++ })

	b.MouseDown(nil)
	clock.Advance(time.Second)
	b.tick()
	assert.InDelta(t, 0.5, b.Progress(), 0.001)
	assert.Zero(t, confirmed)

	clock.Advance(time.Second)
	b.tick()
	assert.Equal(t, 1, confirmed)
	assert.Zero(t, b.Progress())

	// A finished hold does not fire again
	b.tick()
	assert.Equal(t, 1, confirmed)
}

func TestHoldButtonReleaseCancels(t *testing.T) {
	confirmed := 0
	b, clock := newTestHoldButton(t, func() { confirmed++ })

	b.MouseDown(nil)
	clock.Advance(1500 * time.Millisecond)
	b.tick()
	b.MouseUp(nil)

	clock.Advance(time.Second)
	b.tick()
	assert.Zero(t, confirmed)
	assert.Zero(t, b.Progress())
}

func TestHoldButtonDisabled(t *testing.T) {
	confirmed := 0
	b, clock := newTestHoldButton(t, func() { confirmed++ })

	b.Disable()
	assert.True(t, b.Disabled())
	b.MouseDown(nil)
	clock.Advance(3 * time.Second)
	b.tick()
	assert.Zero(t, confirmed)

	b.Enable()
	b.MouseDown(nil)
	clock.Advance(3 * time.Second)
	b.tick()
	b.MouseUp(nil)
	assert.Equal(t, 1, confirmed)
}
