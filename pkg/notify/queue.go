// Package notify keeps the transient notifications shown after user actions.
package notify

import (
	"sync"
	"time"

	"github.com/borgmon/study-timetable/pkg/models"
	"github.com/google/uuid"
)

// DefaultCapacity bounds how many notifications are visible at once.
const DefaultCapacity = 5

// Queue is a FIFO of notifications that expire after a fixed duration
type Queue struct {
	mu       sync.RWMutex
	items    []models.Notification
	ttl      time.Duration
	capacity int

	// Now is injectable for testing
	Now func() time.Time
}

// NewQueue creates a queue whose entries live for ttl
func NewQueue(ttl time.Duration) *Queue {
	return &Queue{
		ttl:      ttl,
		capacity: DefaultCapacity,
		Now:      time.Now,
	}
}

// TTL returns how long an entry stays active
func (q *Queue) TTL() time.Duration {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.ttl
}

// SetTTL changes the lifetime of entries pushed from now on and of those
// still queued.
func (q *Queue) SetTTL(ttl time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ttl = ttl
}

// Push enqueues a notification and returns it. When the queue is full the
// oldest entry is dropped.
func (q *Queue) Push(kind models.NotificationKind, title, message string) models.Notification {
	n := models.Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: q.Now(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, n)
	if len(q.items) > q.capacity {
		q.items = q.items[len(q.items)-q.capacity:]
	}
	return n
}

// Active returns unexpired notifications, oldest first
func (q *Queue) Active() []models.Notification {
	q.mu.RLock()
	defer q.mu.RUnlock()

	now := q.Now()
	out := make([]models.Notification, 0, len(q.items))
	for _, n := range q.items {
		if !q.expired(n, now) {
			out = append(out, n)
		}
	}
	return out
}

// Latest returns the newest unexpired notification
func (q *Queue) Latest() (models.Notification, bool) {
	active := q.Active()
	if len(active) == 0 {
		return models.Notification{}, false
	}
	return active[len(active)-1], true
}

// Expire drops expired entries and returns how many were removed
func (q *Queue) Expire() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.Now()
	kept := q.items[:0]
	for _, n := range q.items {
		if !q.expired(n, now) {
			kept = append(kept, n)
		}
	}
	removed := len(q.items) - len(kept)
	q.items = kept
	return removed
}

// Dismiss removes a notification by ID
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of queued entries, expired or not
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.items)
}

func (q *Queue) expired(n models.Notification, now time.Time) bool {
	return !now.Before(n.CreatedAt.Add(q.ttl))
}
