// Package event provides the in-process event bus that carries domain
// events from the write paths to subscribers such as the placement summary
// cache invalidator.
package event

import (
	"context"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"go.uber.org/zap"
)

// InMemoryEventBus delivers events synchronously within the process. A
// failing or panicking subscriber is logged and skipped; publishing never
// fails because of a subscriber.
type InMemoryEventBus struct {
	subs   *subscriberSet
	logger *zap.Logger
}

func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		subs:   newSubscriberSet(),
		logger: logger,
	}
}

// Publish delivers each event to its subscribers in registration order.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, e := range events {
		for _, handler := range b.subs.matching(e.EventType()) {
			if err := b.deliver(ctx, handler, e); err != nil {
				b.logger.Error("Event handler failed",
					zap.String("event_type", e.EventType()),
					zap.String("event_id", e.EventID().String()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// Subscribe registers a handler. With no explicit event types the handler's
// own EventTypes() decide what it receives; an empty result subscribes it to
// everything.
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.subs.add(handler, eventTypes)
	b.logger.Debug("Event handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes a handler from every event type.
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.subs.remove(handler)
	b.logger.Debug("Event handler unsubscribed")
}

// Start implements shared.EventBus. The synchronous bus has no background
// machinery to spin up.
func (b *InMemoryEventBus) Start(context.Context) error {
	b.logger.Info("Event bus started")
	return nil
}

// Stop implements shared.EventBus.
func (b *InMemoryEventBus) Stop(context.Context) error {
	b.logger.Info("Event bus stopped")
	return nil
}

func (b *InMemoryEventBus) deliver(ctx context.Context, handler shared.EventHandler, e shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked",
				zap.String("event_type", e.EventType()),
				zap.Any("panic", r),
			)
		}
	}()
	return handler.Handle(ctx, e)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
