package engine

import "sort"

// GameState is the projection of a session: every creature on the table
// and the order in which they were spawned.
type GameState struct {
	Creatures map[string]*Creature `json:"creatures"`
	Order     []string             `json:"order"`
}

// Creature owns one health bar. Creatures never share dice.
type Creature struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Health *Health `json:"health" yaml:"health"`
}

// NewGameState creates an empty table.
func NewGameState() *GameState {
	return &GameState{
		Creatures: make(map[string]*Creature),
		Order:     make([]string, 0),
	}
}

// Creature looks up a creature by id.
func (s *GameState) Creature(id string) (*Creature, bool) {
	c, ok := s.Creatures[id]
	return c, ok
}

// List returns creatures in spawn order.
func (s *GameState) List() []*Creature {
	out := make([]*Creature, 0, len(s.Order))
	for _, id := range s.Order {
		if c, ok := s.Creatures[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// IDs returns the creature ids sorted alphabetically.
func (s *GameState) IDs() []string {
	ids := make([]string, 0, len(s.Creatures))
	for id := range s.Creatures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *GameState) add(c *Creature) {
	s.Creatures[c.ID] = c
	s.Order = append(s.Order, c.ID)
}

func (s *GameState) remove(id string) {
	delete(s.Creatures, id)
	for i, o := range s.Order {
		if o == id {
			s.Order = append(s.Order[:i], s.Order[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of the state.
func (s *GameState) Clone() *GameState {
	c := &GameState{
		Creatures: make(map[string]*Creature, len(s.Creatures)),
		Order:     append(make([]string, 0, len(s.Order)), s.Order...),
	}
	for id, cr := range s.Creatures {
		c.Creatures[id] = &Creature{ID: cr.ID, Name: cr.Name, Health: cr.Health.Clone()}
	}
	return c
}
