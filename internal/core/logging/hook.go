package logging

import (
	"github.com/rs/zerolog"
)

// contextFields are copied from an event's context onto the event, each
// under its key name.
var contextFields = []contextKey{sessionIDKey, commandKey}

// ContextHook tags log events with the session id and command name carried
// by the event's context. Set the context with Event.Ctx.
type ContextHook struct{}

func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	for _, k := range contextFields {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			e.Str(string(k), v)
		}
	}
}
