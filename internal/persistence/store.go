package persistence

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/suderio/svarog/internal/engine"
)

// EventWrapper facilitates serialization of polymorphic events
type EventWrapper struct {
	Type  engine.EventType `json:"type"`
	Event json.RawMessage  `json:"data"`
}

// Store handles append-only storing of event log.
type Store struct {
	mu   sync.Mutex
	file *os.File
}

// NewStore opens or creates the file at path for appending lines
func NewStore(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	return &Store{file: file}, nil
}

// Append takes an Event interface and marshals it to jsonl log.
func (s *Store) Append(evt engine.Event) error {
	line, err := encodeEvent(evt)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return s.file.Sync()
}

// Load replays all jsonl strings and unpacks them to Event slice.
func (s *Store) Load() ([]engine.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, err
	}

	var events []engine.Event
	scanner := bufio.NewScanner(s.file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		evt, err := decodeEvent(scanner.Bytes())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, evt)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Close handles safe shutdown.
func (s *Store) Close() error {
	return s.file.Close()
}

func encodeEvent(evt engine.Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", evt.Type(), err)
	}
	return json.Marshal(EventWrapper{Type: evt.Type(), Event: data})
}

func decodeEvent(raw []byte) (engine.Event, error) {
	var wrapper EventWrapper
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode wrapper: %w", err)
	}

	var evt engine.Event
	switch wrapper.Type {
	case engine.EventCreatureSpawned:
		evt = &engine.CreatureSpawnedEvent{}
	case engine.EventCreatureRemoved:
		evt = &engine.CreatureRemovedEvent{}
	case engine.EventHealthAction:
		evt = &engine.HealthActionEvent{}
	case engine.EventDiceRolled:
		evt = &engine.DiceRolledEvent{}
	default:
		return nil, fmt.Errorf("unknown event type in log: %s", wrapper.Type)
	}

	if err := json.Unmarshal(wrapper.Event, evt); err != nil {
		return nil, fmt.Errorf("failed to parse event data into specific type: %w", err)
	}
	return evt, nil
}
