package eventbus_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/colonyops/tasklist/internal/core/eventbus"
	"github.com/colonyops/tasklist/internal/core/eventbus/testbus"
	"github.com/colonyops/tasklist/internal/core/todo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttach_PublishesStoreChanges(t *testing.T) {
	tb := testbus.New(t)
	store := todo.NewStore()
	detach := eventbus.Attach(tb.EventBus, store)

	store.SetPendingInput("Buy milk")
	task, _ := store.Submit()
	store.Toggle(task.ID)
	store.Delete(task.ID)
	store.Add("again")
	store.ClearAll()

	assert.Equal(t, []eventbus.Event{
		eventbus.EventInputChanged,
		eventbus.EventTaskAdded,
		eventbus.EventTaskToggled,
		eventbus.EventTaskDeleted,
		eventbus.EventTaskAdded,
		eventbus.EventTasksCleared,
	}, tb.Names())

	tb.Reset()
	detach()
	store.Add("detached")
	assert.Empty(t, tb.Events())
}

func TestAttach_NoopsPublishNothing(t *testing.T) {
	tb := testbus.New(t)
	store := todo.NewStore()
	eventbus.Attach(tb.EventBus, store)

	store.Add("   ")
	store.Toggle(7)
	store.Delete(7)
	store.ClearAll()

	assert.Empty(t, tb.Events())
}

func TestSubscribeChange_ReceivesOnlyItsEvent(t *testing.T) {
	bus := eventbus.New()
	store := todo.NewStore()
	eventbus.Attach(bus, store)

	var toggled []todo.Change
	bus.SubscribeChange(eventbus.EventTaskToggled, func(c todo.Change) {
		toggled = append(toggled, c)
	})

	task, _ := store.Add("a")
	store.Toggle(task.ID)

	require.Len(t, toggled, 1)
	assert.True(t, toggled[0].Task.Completed)
	assert.Equal(t, 100, toggled[0].Summary.Percent)
}

func TestSubscribeChanges_SkipsNotifications(t *testing.T) {
	bus := eventbus.New()
	eventbus.NewNotificationRouter(bus).Register()
	store := todo.NewStore()
	eventbus.Attach(bus, store)

	var seen []eventbus.Event
	bus.SubscribeChanges(func(e eventbus.Event, _ todo.Change) {
		seen = append(seen, e)
	})

	store.Add("a")

	assert.Equal(t, []eventbus.Event{eventbus.EventTaskAdded}, seen)
}

func TestEventBus_PanickingSubscriberRunsHook(t *testing.T) {
	bus := eventbus.New()

	var panicked []eventbus.Event
	bus.OnPanic(func(e eventbus.Event, _ any, _ any) { panicked = append(panicked, e) })

	calls := 0
	bus.SubscribeChange(eventbus.EventTaskAdded, func(todo.Change) { panic("boom") })
	bus.SubscribeChange(eventbus.EventTaskAdded, func(todo.Change) { calls++ })

	bus.PublishChange(todo.Change{Kind: todo.ChangeAdded})

	assert.Equal(t, 1, calls)
	assert.Equal(t, []eventbus.Event{eventbus.EventTaskAdded}, panicked)
}

func TestEventBus_OnSubscribe(t *testing.T) {
	bus := eventbus.New()

	var subscribed []eventbus.Event
	bus.OnSubscribe(func(e eventbus.Event) { subscribed = append(subscribed, e) })

	bus.SubscribeNotificationPublished(func(eventbus.NotificationPublishedPayload) {})

	assert.Equal(t, []eventbus.Event{eventbus.EventNotificationPublished}, subscribed)
}

func TestEventForChange(t *testing.T) {
	_, ok := eventbus.EventForChange(todo.ChangeKind("bogus"))
	assert.False(t, ok)

	e, ok := eventbus.EventForChange(todo.ChangeCleared)
	assert.True(t, ok)
	assert.Equal(t, eventbus.EventTasksCleared, e)
}

func TestRegisterDebugLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	bus := eventbus.New()
	eventbus.RegisterDebugLogger(bus, logger)
	store := todo.NewStore()
	eventbus.Attach(bus, store)

	store.SetPendingInput("x")
	task, _ := store.Submit()
	store.Toggle(task.ID)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "input changes are below debug level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "task.toggled", entry["event"])
	assert.EqualValues(t, 1, entry["task_id"])
	assert.EqualValues(t, 100, entry["percent"])
	assert.Equal(t, "event fired", entry["message"])
}
