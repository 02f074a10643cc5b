package adapter

import (
	"context"
	"errors"
	"sync"

	"github.com/opencane/edged/pkg/protocol"
)

// Mock is an in-memory adapter for tests and local development. Events are
// injected by the test; sent commands are recorded for inspection.
type Mock struct {
	events chan protocol.Envelope

	mu      sync.Mutex
	sent    []protocol.Envelope
	stopped bool
}

var _ Adapter = (*Mock)(nil)

// NewMock creates a mock adapter with a buffered event queue.
func NewMock() *Mock {
	return &Mock{events: make(chan protocol.Envelope, 128)}
}

func (m *Mock) Name() string      { return "mock" }
func (m *Mock) Transport() string { return "memory" }

func (m *Mock) Start(context.Context) error { return nil }

// Stop closes the event stream. Safe to call more than once.
func (m *Mock) Stop(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.stopped {
		m.stopped = true
		close(m.events)
	}
	return nil
}

func (m *Mock) Events() <-chan protocol.Envelope { return m.events }

// Send records the command.
func (m *Mock) Send(_ context.Context, cmd protocol.Envelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return errors.New("mock adapter is stopped")
	}
	m.sent = append(m.sent, cmd.Clone())
	return nil
}

// Inject queues one device event as if it arrived from the transport.
func (m *Mock) Inject(event protocol.Envelope) error {
	m.mu.Lock()
	stopped := m.stopped
	m.mu.Unlock()
	if stopped {
		return errors.New("mock adapter is stopped")
	}
	m.events <- event
	return nil
}

// Sent returns a copy of all commands submitted so far.
func (m *Mock) Sent() []protocol.Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]protocol.Envelope, len(m.sent))
	copy(out, m.sent)
	return out
}

// SentTypes returns the command types in submission order.
func (m *Mock) SentTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.sent))
	for _, cmd := range m.sent {
		types = append(types, cmd.Type)
	}
	return types
}
