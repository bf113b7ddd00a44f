package engine

import (
	"fmt"
	"strings"
)

type EventType string

const (
	EventCreatureSpawned EventType = "CreatureSpawned"
	EventCreatureRemoved EventType = "CreatureRemoved"
	EventHealthAction    EventType = "HealthAction"
	EventDiceRolled      EventType = "DiceRolled"
	EventHint            EventType = "Hint"
)

// Event is the building block of the event sourced session.
type Event interface {
	Type() EventType
	Apply(state *GameState) error
	Message() string
}

// CreatureSpawnedEvent puts a creature with an empty health bar on the table.
type CreatureSpawnedEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (e *CreatureSpawnedEvent) Type() EventType { return EventCreatureSpawned }
func (e *CreatureSpawnedEvent) Apply(state *GameState) error {
	if _, ok := state.Creatures[e.ID]; ok {
		return fmt.Errorf("creature %s already spawned", e.ID)
	}
	name := e.Name
	if name == "" {
		name = e.ID
	}
	state.add(&Creature{ID: e.ID, Name: name, Health: NewHealth()})
	return nil
}
func (e *CreatureSpawnedEvent) Message() string {
	if e.Name != "" && e.Name != e.ID {
		return fmt.Sprintf("%s (%s) joined.", e.ID, e.Name)
	}
	return fmt.Sprintf("%s joined.", e.ID)
}

// CreatureRemovedEvent takes a creature off the table.
type CreatureRemovedEvent struct {
	ID string `json:"id"`
}

func (e *CreatureRemovedEvent) Type() EventType { return EventCreatureRemoved }
func (e *CreatureRemovedEvent) Apply(state *GameState) error {
	if _, ok := state.Creatures[e.ID]; !ok {
		return fmt.Errorf("creature %s not found", e.ID)
	}
	state.remove(e.ID)
	return nil
}
func (e *CreatureRemovedEvent) Message() string { return fmt.Sprintf("%s left.", e.ID) }

// HealthActionEvent runs one action against a creature's health bar.
// Responses are filled in by Apply and are never persisted: replaying the
// same actions always yields the same responses.
type HealthActionEvent struct {
	CreatureID string     `json:"creature_id"`
	Action     Action     `json:"action"`
	Responses  []Response `json:"-"`
}

func (e *HealthActionEvent) Type() EventType { return EventHealthAction }
func (e *HealthActionEvent) Apply(state *GameState) error {
	c, ok := state.Creatures[e.CreatureID]
	if !ok {
		return fmt.Errorf("creature %s not found", e.CreatureID)
	}
	e.Responses = c.Health.Execute(e.Action)
	return nil
}
func (e *HealthActionEvent) Message() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s", e.CreatureID, e.Action))
	for _, r := range e.Responses {
		if r.Kind == ResponseNone {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n├─ %s", r.Message()))
	}
	return sb.String()
}

// DiceRolledEvent records a roll for display. It does not touch the state.
type DiceRolledEvent struct {
	ActorID  string `json:"actor_id"`
	Dice     string `json:"dice"`
	Total    int    `json:"total"`
	RawRolls []int  `json:"raw_rolls"`
	Kept     []int  `json:"kept,omitempty"`
	Dropped  []int  `json:"dropped,omitempty"`
	Modifier int    `json:"modifier,omitempty"`
}

func (e *DiceRolledEvent) Type() EventType              { return EventDiceRolled }
func (e *DiceRolledEvent) Apply(state *GameState) error { return nil }
func (e *DiceRolledEvent) Message() string {
	var sb strings.Builder
	if e.ActorID != "" {
		sb.WriteString(fmt.Sprintf("%s rolled %s: %d\n", e.ActorID, e.Dice, e.Total))
	} else {
		sb.WriteString(fmt.Sprintf("rolled %s: %d\n", e.Dice, e.Total))
	}
	if len(e.RawRolls) > 0 {
		sb.WriteString(fmt.Sprintf("├─ Raw: %v\n", e.RawRolls))
	}
	if len(e.Dropped) > 0 {
		sb.WriteString(fmt.Sprintf("├─ Kept: %v\n", e.Kept))
		sb.WriteString(fmt.Sprintf("├─ Dropped: %v\n", e.Dropped))
	}
	if e.Modifier != 0 {
		sb.WriteString(fmt.Sprintf("├─ Modifier: %+d\n", e.Modifier))
	}
	return strings.TrimSpace(sb.String())
}

// HintEvent carries query output, and is never saved to the store.
type HintEvent struct {
	MessageStr string
}

func (e *HintEvent) Type() EventType              { return EventHint }
func (e *HintEvent) Apply(state *GameState) error { return nil }
func (e *HintEvent) Message() string              { return e.MessageStr }

// Persistent reports whether an event belongs in the log.
func Persistent(e Event) bool {
	return e.Type() != EventHint
}
