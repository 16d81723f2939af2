package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func newTestEvent(eventType string) shared.DomainEvent {
	e := shared.NewBaseDomainEvent(eventType, "Student", uuid.New())
	return &e
}

func TestInMemoryEventBus_PublishAndSubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	t.Run("delivers to type-specific handler", func(t *testing.T) {
		handler := &recordingHandler{types: []string{"StudentCreated"}}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), newTestEvent("StudentCreated"))

		require.NoError(t, err)
		assert.Len(t, handler.received, 1)

		bus.Unsubscribe(handler)
	})

	t.Run("skips handlers for other types", func(t *testing.T) {
		handler := &recordingHandler{types: []string{"StudentCreated"}}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), newTestEvent("StudentDeleted"))

		require.NoError(t, err)
		assert.Empty(t, handler.received)

		bus.Unsubscribe(handler)
	})

	t.Run("wildcard handler receives everything", func(t *testing.T) {
		handler := &recordingHandler{}
		bus.Subscribe(handler)

		require.NoError(t, bus.Publish(context.Background(),
			newTestEvent("StudentCreated"),
			newTestEvent("StudentDeleted"),
		))

		assert.Len(t, handler.received, 2)

		bus.Unsubscribe(handler)
	})

	t.Run("handler errors do not fail publishing", func(t *testing.T) {
		failing := &recordingHandler{types: []string{"StudentCreated"}, err: errors.New("boom")}
		ok := &recordingHandler{types: []string{"StudentCreated"}}
		bus.Subscribe(failing)
		bus.Subscribe(ok)

		err := bus.Publish(context.Background(), newTestEvent("StudentCreated"))

		require.NoError(t, err)
		assert.Len(t, ok.received, 1)

		bus.Unsubscribe(failing)
		bus.Unsubscribe(ok)
	})
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	require.NoError(t, bus.Start(context.Background()))
	require.NoError(t, bus.Stop(context.Background()))
}

type panickingHandler struct{}

func (panickingHandler) Handle(context.Context, shared.DomainEvent) error {
	panic("subscriber blew up")
}

func (panickingHandler) EventTypes() []string { return nil }

func TestInMemoryEventBus_SurvivesPanickingHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	after := &recordingHandler{types: []string{"StudentCreated"}}
	bus.Subscribe(panickingHandler{})
	bus.Subscribe(after)

	err := bus.Publish(context.Background(), newTestEvent("StudentCreated"))

	require.NoError(t, err)
	assert.Len(t, after.received, 1)
}
