package eventbus

import (
	"fmt"

	"github.com/colonyops/tasklist/internal/core/notify"
	"github.com/colonyops/tasklist/internal/core/todo"
)

// NotificationRouter maps domain events to user-facing notifications.
type NotificationRouter struct {
	bus *EventBus
}

// NewNotificationRouter constructs a router for event-to-notification mappings.
func NewNotificationRouter(bus *EventBus) *NotificationRouter {
	return &NotificationRouter{bus: bus}
}

// Register subscribes all supported event mappings.
func (r *NotificationRouter) Register() {
	if r == nil || r.bus == nil {
		return
	}

	r.bus.SubscribeChange(EventTaskAdded, func(c todo.Change) {
		r.notifyf(notify.LevelInfo, "added %q", c.Task.Text)
	})

	r.bus.SubscribeChange(EventTaskToggled, func(c todo.Change) {
		if c.Task.Completed {
			r.notifyf(notify.LevelInfo, "completed %q (%d%%)", c.Task.Text, c.Summary.Percent)
			return
		}
		r.notifyf(notify.LevelInfo, "reopened %q", c.Task.Text)
	})

	r.bus.SubscribeChange(EventTaskDeleted, func(c todo.Change) {
		r.notifyf(notify.LevelWarning, "deleted %q", c.Task.Text)
	})

	r.bus.SubscribeChange(EventTasksCleared, func(c todo.Change) {
		r.notifyf(notify.LevelWarning, "cleared %d %s", c.Removed, plural(c.Removed, "task", "tasks"))
	})
}

func (r *NotificationRouter) notifyf(level notify.Level, format string, args ...any) {
	r.bus.PublishNotificationPublished(NotificationPublishedPayload{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
