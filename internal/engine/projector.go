package engine

import "fmt"

// Projector folds an event log into a GameState.
type Projector struct{}

// NewProjector creates a standard projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Build replays events over an empty table.
func (p *Projector) Build(events []Event) (*GameState, error) {
	state := NewGameState()
	if err := p.Apply(state, events...); err != nil {
		return nil, err
	}
	return state, nil
}

// Apply replays events over state in order and stops at the first one that
// fails. Events before the failing one stay applied.
func (p *Projector) Apply(state *GameState, events ...Event) error {
	for i, evt := range events {
		if err := evt.Apply(state); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, evt.Type(), err)
		}
	}
	return nil
}
