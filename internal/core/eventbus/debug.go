package eventbus

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasklist/internal/core/todo"
)

// RegisterDebugLogger registers bus hooks that log all event activity.
// Task events are logged at debug level with the resulting summary; input
// changes fire on every keystroke and are logged at trace level.
func RegisterDebugLogger(bus *EventBus, logger zerolog.Logger) {
	bus.OnPublish(func(event Event, payload any) {
		level := zerolog.DebugLevel
		if event == EventInputChanged {
			level = zerolog.TraceLevel
		}

		e := logger.WithLevel(level).Str("event", string(event))
		if c, ok := payload.(todo.Change); ok {
			if c.Task.ID != 0 {
				e = e.Int("task_id", c.Task.ID)
			}
			e = e.Int("completed", c.Summary.Completed).
				Int("total", c.Summary.Total).
				Int("percent", c.Summary.Percent)
		}
		e.Msg("event fired")
	})

	bus.OnPanic(func(event Event, _ any, recovered any) {
		logger.Error().
			Str("event", string(event)).
			Str("panic", fmt.Sprint(recovered)).
			Msg("subscriber panicked")
	})
}
