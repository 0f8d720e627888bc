package events

import (
	"context"

	"go.uber.org/zap"
)

// Event is anything the application publishes for asynchronous consumers.
type Event interface {
	Name() string
	// Key identifies the aggregate the event belongs to.
	Key() string
	Payload() any
}

// Dispatcher is fire-and-forget: delivery failures are logged by the
// implementation and never returned to the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

// LogDispatcher only logs events. Used when no broker is configured.
type LogDispatcher struct {
	log *zap.Logger
}

func NewLogDispatcher(log *zap.Logger) *LogDispatcher {
	return &LogDispatcher{log: log.With(zap.String("dispatcher", "log"))}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, event Event) {
	d.log.Info("Event dispatched",
		zap.String("event", event.Name()),
		zap.String("key", event.Key()),
		zap.Any("payload", event.Payload()),
	)
}
