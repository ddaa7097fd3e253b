// Package notify defines user-facing notifications raised by domain events.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a short message shown to the user, typically as a toast.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}
