package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/svarog/internal/engine"
)

func sampleState(t *testing.T) *engine.GameState {
	t.Helper()
	state, err := engine.NewProjector().Build([]engine.Event{
		&engine.CreatureSpawnedEvent{ID: "knight", Name: "Sir Kay"},
		&engine.HealthActionEvent{CreatureID: "knight", Action: engine.Create(10)},
		&engine.HealthActionEvent{CreatureID: "knight", Action: engine.Fortify(3)},
		&engine.HealthActionEvent{CreatureID: "knight", Action: engine.Create(8)},
		&engine.HealthActionEvent{CreatureID: "knight", Action: engine.AddStatus(engine.Stifled(2))},
		&engine.HealthActionEvent{CreatureID: "knight", Action: engine.Break()},
		&engine.HealthActionEvent{CreatureID: "knight", Action: engine.Chip(5)},
		&engine.CreatureSpawnedEvent{ID: "goblin"},
		&engine.HealthActionEvent{CreatureID: "goblin", Action: engine.Create(4)},
		&engine.HealthActionEvent{CreatureID: "goblin", Action: engine.Drain()},
	})
	require.NoError(t, err)
	state.Creatures["goblin"].Health.Die(0).Effort = engine.CommittedFor(engine.CommitTurn, 2)
	return state
}

func TestSnapshotRoundTrip(t *testing.T) {
	state := sampleState(t)

	for _, name := range []string{"snap.json", "snap.yaml", "snap.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveSnapshot(path, NewSnapshot(state)))

			snap, err := LoadSnapshot(path)
			require.NoError(t, err)

			restored, err := snap.State()
			require.NoError(t, err)
			assert.Equal(t, state.Order, restored.Order)
			for _, id := range state.Order {
				assert.Equal(t, state.Creatures[id], restored.Creatures[id], id)
			}
		})
	}
}

func TestSnapshotJSONShape(t *testing.T) {
	data, err := EncodeSnapshot("x.json", NewSnapshot(sampleState(t)))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"fortified:3"`)
	assert.Contains(t, string(data), `"stifled:2"`)
	assert.Contains(t, string(data), `"turn:2"`)
	assert.Contains(t, string(data), `"hit_dice"`)
}

func TestSnapshotRejectsUnknownExtension(t *testing.T) {
	_, err := EncodeSnapshot("snap.toml", &Snapshot{})
	assert.ErrorContains(t, err, "unsupported snapshot format")
}

func TestSnapshotStateRejectsDuplicates(t *testing.T) {
	snap := &Snapshot{Creatures: []*engine.Creature{{ID: "a"}, {ID: "a"}}}
	_, err := snap.State()
	assert.ErrorContains(t, err, "appears twice")
}

func TestSnapshotStateRejectsNullHitDie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	content := "creatures:\n  - id: ghost\n    health:\n      hit_dice: [null]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)

	_, err = snap.State()
	assert.ErrorContains(t, err, "hit die 0 is empty")
}
