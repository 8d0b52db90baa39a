package events

import (
	"context"
	"sync"
)

// Handler receives every published event; handlers type-switch on the
// events they care about.
type Handler func(ctx context.Context, ev Event)

// Bus publishes auction events to subscribed handlers.
type Bus interface {
	Publish(ctx context.Context, ev Event)
	Subscribe(h Handler)
}

// InProcBus dispatches events synchronously to all subscribers, in
// subscription order. Publishers must not hold a per-auction lock while
// publishing, since subscribers (the auto-bid agent) may place bids of
// their own.
type InProcBus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewInProcBus creates an empty in-process bus.
func NewInProcBus() *InProcBus {
	return &InProcBus{}
}

// Subscribe registers a handler for all subsequent events.
func (b *InProcBus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers ev to every subscriber.
func (b *InProcBus) Publish(ctx context.Context, ev Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, ev)
	}
}
