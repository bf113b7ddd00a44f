package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suderio/svarog/internal/engine"
)

// Snapshot is the saved form of every health bar on the table. It keeps
// die order, values, status payloads and effort exactly.
type Snapshot struct {
	Creatures []*engine.Creature `json:"creatures" yaml:"creatures"`
}

// NewSnapshot copies the state in spawn order.
func NewSnapshot(state *engine.GameState) *Snapshot {
	snap := &Snapshot{Creatures: make([]*engine.Creature, 0, len(state.Order))}
	for _, c := range state.List() {
		snap.Creatures = append(snap.Creatures, &engine.Creature{
			ID:     c.ID,
			Name:   c.Name,
			Health: c.Health.Clone(),
		})
	}
	return snap
}

// State rebuilds a game state from the snapshot.
func (s *Snapshot) State() (*engine.GameState, error) {
	state := engine.NewGameState()
	for _, c := range s.Creatures {
		if c.ID == "" {
			return nil, fmt.Errorf("snapshot creature without id")
		}
		if _, ok := state.Creatures[c.ID]; ok {
			return nil, fmt.Errorf("snapshot creature %s appears twice", c.ID)
		}
		health := c.Health
		if health == nil {
			health = engine.NewHealth()
		}
		for i, d := range health.HitDice {
			if d == nil {
				return nil, fmt.Errorf("snapshot creature %s: hit die %d is empty", c.ID, i)
			}
		}
		state.Creatures[c.ID] = &engine.Creature{ID: c.ID, Name: c.Name, Health: health.Clone()}
		state.Order = append(state.Order, c.ID)
	}
	return state, nil
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("unsupported snapshot format %q (use .json, .yaml or .yml)", filepath.Ext(path))
}

// EncodeSnapshot writes JSON or YAML picked by the file extension.
func EncodeSnapshot(path string, snap *Snapshot) ([]byte, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	if f == formatYAML {
		return yaml.Marshal(snap)
	}
	return json.MarshalIndent(snap, "", "  ")
}

// SaveSnapshot writes the snapshot to path.
func SaveSnapshot(path string, snap *Snapshot) error {
	data, err := EncodeSnapshot(path, snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if f == formatYAML {
		err = yaml.Unmarshal(data, &snap)
	} else {
		err = json.Unmarshal(data, &snap)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	return &snap, nil
}
