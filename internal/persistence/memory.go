package persistence

import (
	"sync"

	"github.com/suderio/svarog/internal/engine"
)

// MemoryStore keeps the log in memory. Events still pass through the JSON
// encoding so a replay sees exactly what a file store would return.
type MemoryStore struct {
	mu    sync.Mutex
	lines [][]byte
}

// NewMemoryStore creates an empty in-memory log.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Append(evt engine.Event) error {
	line, err := encodeEvent(evt)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.lines = append(m.lines, line)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Load() ([]engine.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make([]engine.Event, 0, len(m.lines))
	for _, line := range m.lines {
		evt, err := decodeEvent(line)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}

func (m *MemoryStore) Close() error { return nil }

// Len returns the number of stored events.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}
