package models

import "time"

// NotificationKind selects how a notification is styled
type NotificationKind string

const (
	NotificationError   NotificationKind = "Error"
	NotificationSuccess NotificationKind = "Success"
	NotificationRemoved NotificationKind = "Removed"
)

// Notification is a transient message shown after a user action
type Notification struct {
	ID        string           // Unique identifier (UUID)
	Kind      NotificationKind // Display style
	Title     string           // Short heading
	Message   string           // Body text
	CreatedAt time.Time        // When the notification was queued
}
