package event

import (
	"sync"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
)

// subscriberSet tracks which handlers want which event types. Handlers
// registered without any types receive every event.
type subscriberSet struct {
	mu     sync.RWMutex
	byType map[string][]shared.EventHandler
	all    []shared.EventHandler
}

func newSubscriberSet() *subscriberSet {
	return &subscriberSet{byType: make(map[string][]shared.EventHandler)}
}

func (s *subscriberSet) add(handler shared.EventHandler, eventTypes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(eventTypes) == 0 {
		s.all = append(s.all, handler)
		return
	}
	for _, et := range eventTypes {
		s.byType[et] = append(s.byType[et], handler)
	}
}

func (s *subscriberSet) remove(handler shared.EventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = without(s.all, handler)
	for et, hs := range s.byType {
		if trimmed := without(hs, handler); len(trimmed) > 0 {
			s.byType[et] = trimmed
		} else {
			delete(s.byType, et)
		}
	}
}

// matching returns the handlers to invoke for an event type, catch-all
// subscribers included.
func (s *subscriberSet) matching(eventType string) []shared.EventHandler {
	s.mu.RLock()
	defer s.mu.RUnlock()

	typed := s.byType[eventType]
	out := make([]shared.EventHandler, 0, len(typed)+len(s.all))
	out = append(out, typed...)
	return append(out, s.all...)
}

func without(hs []shared.EventHandler, target shared.EventHandler) []shared.EventHandler {
	out := hs[:0:0]
	for _, h := range hs {
		if h != target {
			out = append(out, h)
		}
	}
	return out
}
