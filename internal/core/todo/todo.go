// Package todo defines the task list domain model and its in-memory store.
package todo

import "time"

// Status represents the lifecycle state of a task. It is derived from
// Task.Completed and exists for display and JSON output.
type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusCompleted  Status = "completed"
)

// Task is a single to-do entry.
type Task struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Status returns the task's current state.
func (t Task) Status() Status {
	if t.Completed {
		return StatusCompleted
	}
	return StatusIncomplete
}

// ChangeKind identifies which transition produced a Change.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeToggled ChangeKind = "toggled"
	ChangeDeleted ChangeKind = "deleted"
	ChangeCleared ChangeKind = "cleared"
	ChangeInput   ChangeKind = "input"
)

// Change describes a single state transition of a Store. Listeners receive
// it after the store has been updated.
type Change struct {
	Kind ChangeKind
	// Task is the affected task. For ChangeDeleted it is the task as it was
	// before removal. Zero for ChangeCleared and ChangeInput.
	Task Task
	// Removed is the number of tasks dropped by ChangeCleared.
	Removed int
	// Input is the pending input after the change.
	Input   string
	Summary Summary
}
