package crud

import "context"

// Listener is notified after a session committed a change
type Listener interface {
	OnDataChanged(ctx context.Context)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ctx context.Context)

// OnDataChanged calls f(ctx)
func (f ListenerFunc) OnDataChanged(ctx context.Context) { f(ctx) }

// Hub is the change channel of a single editor session. It fires at most
// once: Publish hands the signal to the current listeners and forgets them.
type Hub struct {
	listeners []Listener
}

// Subscribe appends l. Subscribing the same listener twice makes it fire twice.
func (h *Hub) Subscribe(l Listener) {
	if l == nil {
		return
	}
	h.listeners = append(h.listeners, l)
}

// Publish calls every listener in subscription order and drops the list
func (h *Hub) Publish(ctx context.Context) {
	listeners := h.listeners
	h.listeners = nil
	for _, l := range listeners {
		l.OnDataChanged(ctx)
	}
}

// Len returns the number of pending listeners
func (h *Hub) Len() int {
	return len(h.listeners)
}
