package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"slices"

	"AirwallexPayments/internal/domain/order"
)

// Handler applies one event kind to an order.
type Handler interface {
	Execute(ctx context.Context, data json.RawMessage) error
}

type HandlerFunc func(ctx context.Context, data json.RawMessage) error

func (f HandlerFunc) Execute(ctx context.Context, data json.RawMessage) error {
	return f(ctx, data)
}

// Registry routes events to handlers by name. It is read-only after construction.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry(handlers map[string]Handler) *Registry {
	return &Registry{handlers: maps.Clone(handlers)}
}

// NewDefaultRegistry wires every supported event to its handler.
func NewDefaultRegistry(repo order.OrderRepo, releaser Releaser) *Registry {
	return NewRegistry(map[string]Handler{
		EventCaptureRequested: NewCaptureHandler(repo),
		EventAuthorized:       NewAuthorizeHandler(repo),
		EventIntentSucceeded:  NewSuccessHandler(repo),
		EventAttemptFailed:    NewFailHandler(repo, releaser),
		EventRefundSucceeded:  NewRefundHandler(repo),
		EventDisputeCreated:   NewDisputeHandler(repo),
	})
}

// Dispatch runs the handler registered for the event name and reports whether one existed.
// Unknown names succeed without side effects. Handler errors are returned unchanged.
func (r *Registry) Dispatch(ctx context.Context, ev Event) (bool, error) {
	h, ok := r.handlers[ev.Name]
	if !ok {
		slog.DebugContext(ctx, "No handler registered, event ignored", "event_name", ev.Name, "event_id", ev.ID)
		return false, nil
	}
	return true, h.Execute(ctx, ev.Data)
}

func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.handlers))
}
