package hooks

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/plugkit/internal/ctxlog"
)

// DefaultPriority matches the host platform's default hook priority.
const DefaultPriority = 10

// ActionFunc is a callback registered against a lifecycle event.
type ActionFunc func(ctx context.Context, args ...any) error

// action pairs a callback with its ordering metadata.
type action struct {
	priority int
	seq      int
	fn       ActionFunc
}

// Bus dispatches named lifecycle events to registered callbacks. A Bus is
// owned by a single plugin instance; per the plugin's request-scoped
// execution model it is not safe for concurrent use.
type Bus struct {
	actions map[string][]action
	fired   map[string]int
	seq     int
}

// NewBus creates an empty action bus.
func NewBus() *Bus {
	return &Bus{
		actions: make(map[string][]action),
		fired:   make(map[string]int),
	}
}

// AddAction registers fn to run when event fires. Lower priorities run
// first; equal priorities run in registration order.
func (b *Bus) AddAction(event string, priority int, fn ActionFunc) {
	if fn == nil {
		panic(fmt.Sprintf("hooks: nil action registered for event '%s'", event))
	}
	b.seq++
	b.actions[event] = append(b.actions[event], action{priority: priority, seq: b.seq, fn: fn})
}

// DoAction fires an event, invoking every registered callback with args.
// The first callback error aborts the dispatch and is returned wrapped with
// the event name. The event counts as fired even when a callback fails.
func (b *Bus) DoAction(ctx context.Context, event string, args ...any) error {
	b.fired[event]++

	acts := b.actions[event]
	if len(acts) == 0 {
		ctxlog.FromContext(ctx).Debug("Event fired with no listeners.", "event", event)
		return nil
	}

	ordered := make([]action, len(acts))
	copy(ordered, acts)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].priority != ordered[j].priority {
			return ordered[i].priority < ordered[j].priority
		}
		return ordered[i].seq < ordered[j].seq
	})

	ctxlog.FromContext(ctx).Debug("Dispatching event.", "event", event, "listeners", len(ordered))
	for _, a := range ordered {
		if err := a.fn(ctx, args...); err != nil {
			return fmt.Errorf("action for event '%s' failed: %w", event, err)
		}
	}
	return nil
}

// Did reports how many times an event has fired.
func (b *Bus) Did(event string) int {
	return b.fired[event]
}

// Has reports whether any callback is registered for an event.
func (b *Bus) Has(event string) bool {
	return len(b.actions[event]) > 0
}
