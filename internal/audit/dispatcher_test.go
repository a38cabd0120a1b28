package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *memorySink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(Event{Action: "appointment_created", Entity: "appointment"})
	d.Dispatch(Event{Action: "appointment_conflict", Entity: "appointment"})
	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, "appointment_created", sink.events[0].Action)
	assert.Equal(t, "appointment_conflict", sink.events[1].Action)
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &memorySink{err: errors.New("db down")}
	d := NewDispatcher(sink, nil)

	d.Dispatch(Event{Action: "appointment_created"})
	d.Close()
	d.Close()

	assert.Len(t, sink.events, 1)
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}
