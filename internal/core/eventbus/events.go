// Package eventbus provides a synchronous publish/subscribe event bus that
// fans task list changes out to loggers, notification routers and views.
package eventbus

import (
	"sync"

	"github.com/colonyops/tasklist/internal/core/notify"
	"github.com/colonyops/tasklist/internal/core/todo"
)

// Event is the name of a published event.
type Event string

// Keep list sorted A-Z
const (
	EventInputChanged          Event = "input.changed"
	EventNotificationPublished Event = "notification.published"
	EventTaskAdded             Event = "task.added"
	EventTaskDeleted           Event = "task.deleted"
	EventTaskToggled           Event = "task.toggled"
	EventTasksCleared          Event = "tasks.cleared"
)

// Events lists every event the bus can carry.
var Events = []Event{
	EventInputChanged,
	EventNotificationPublished,
	EventTaskAdded,
	EventTaskDeleted,
	EventTaskToggled,
	EventTasksCleared,
}

// NotificationPublishedPayload is emitted when a user-facing notification
// should be shown.
type NotificationPublishedPayload struct {
	Level   notify.Level
	Message string
}

// EventForChange maps a store change kind to its event name.
func EventForChange(kind todo.ChangeKind) (Event, bool) {
	switch kind {
	case todo.ChangeAdded:
		return EventTaskAdded, true
	case todo.ChangeToggled:
		return EventTaskToggled, true
	case todo.ChangeDeleted:
		return EventTaskDeleted, true
	case todo.ChangeCleared:
		return EventTasksCleared, true
	case todo.ChangeInput:
		return EventInputChanged, true
	default:
		return "", false
	}
}

// EventBus dispatches events to subscribers inline on the publisher's
// goroutine, in subscription order.
type EventBus struct {
	mu    sync.RWMutex
	subs  map[Event][]func(any)
	hooks hooks
}

// New creates an empty bus.
func New() *EventBus {
	return &EventBus{
		subs: make(map[Event][]func(any)),
	}
}

// Attach forwards every change of store onto the bus. The returned function
// detaches it.
func Attach(bus *EventBus, store *todo.Store) func() {
	return store.Subscribe(bus.PublishChange)
}

// PublishChange publishes a store change under its event name.
func (bus *EventBus) PublishChange(c todo.Change) {
	event, ok := EventForChange(c.Kind)
	if !ok {
		return
	}
	bus.send(event, c)
}

// SubscribeChange registers fn for a task list event. Events that do not
// carry a todo.Change are never delivered to fn.
func (bus *EventBus) SubscribeChange(event Event, fn func(todo.Change)) {
	bus.subscribe(event, func(payload any) {
		if c, ok := payload.(todo.Change); ok {
			fn(c)
		}
	})
}

// SubscribeChanges registers fn for every task list event.
func (bus *EventBus) SubscribeChanges(fn func(Event, todo.Change)) {
	for _, event := range Events {
		if event == EventNotificationPublished {
			continue
		}
		bus.SubscribeChange(event, func(c todo.Change) { fn(event, c) })
	}
}

// PublishNotificationPublished publishes a user-facing notification.
func (bus *EventBus) PublishNotificationPublished(p NotificationPublishedPayload) {
	bus.send(EventNotificationPublished, p)
}

// SubscribeNotificationPublished registers fn for user-facing notifications.
func (bus *EventBus) SubscribeNotificationPublished(fn func(NotificationPublishedPayload)) {
	bus.subscribe(EventNotificationPublished, func(payload any) {
		if p, ok := payload.(NotificationPublishedPayload); ok {
			fn(p)
		}
	})
}

func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()

	bus.runOnSubscribe(event)
}

func (bus *EventBus) dispatch(event Event, payload any) {
	bus.mu.RLock()
	subs := make([]func(any), len(bus.subs[event]))
	copy(subs, bus.subs[event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		bus.call(event, payload, fn)
	}
}

func (bus *EventBus) call(event Event, payload any, fn func(any)) {
	defer func() {
		if r := recover(); r != nil {
			bus.runOnPanic(event, payload, r)
		}
	}()
	fn(payload)
}
