package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectorBuild(t *testing.T) {
	events := []Event{
		&CreatureSpawnedEvent{ID: "goblin1", Name: "Goblin"},
		&CreatureSpawnedEvent{ID: "knight"},
		&HealthActionEvent{CreatureID: "goblin1", Action: Create(6)},
		&HealthActionEvent{CreatureID: "goblin1", Action: Create(4)},
		&HealthActionEvent{CreatureID: "knight", Action: Create(10)},
		&HealthActionEvent{CreatureID: "goblin1", Action: Chip(7)},
		&DiceRolledEvent{Dice: "1d6", Total: 3, RawRolls: []int{3}},
		&HealthActionEvent{CreatureID: "knight", Action: Fortify(1)},
	}

	state, err := NewProjector().Build(events)
	require.NoError(t, err)

	assert.Equal(t, []string{"goblin1", "knight"}, state.Order)

	goblin, ok := state.Creature("goblin1")
	require.True(t, ok)
	assert.Equal(t, "Goblin", goblin.Name)
	assert.Equal(t, 3, goblin.Health.Current())
	assert.Equal(t, 10, goblin.Health.Total())

	knight, ok := state.Creature("knight")
	require.True(t, ok)
	assert.Equal(t, "knight", knight.Name)
	assert.Equal(t, 1, knight.Health.Last().Armor())
}

func TestProjectorRecordsResponses(t *testing.T) {
	chip := &HealthActionEvent{CreatureID: "a", Action: Chip(10)}
	_, err := NewProjector().Build([]Event{
		&CreatureSpawnedEvent{ID: "a"},
		&HealthActionEvent{CreatureID: "a", Action: Create(6)},
		&HealthActionEvent{CreatureID: "a", Action: Create(6)},
		chip,
	})
	require.NoError(t, err)

	assert.Equal(t, []Response{ChipResponse(1, 4), ChipResponse(0, 0)}, chip.Responses)
	assert.Contains(t, chip.Message(), "hit die #1")
}

func TestProjectorCreaturesAreIndependent(t *testing.T) {
	state, err := NewProjector().Build([]Event{
		&CreatureSpawnedEvent{ID: "a"},
		&CreatureSpawnedEvent{ID: "b"},
		&HealthActionEvent{CreatureID: "a", Action: Create(6)},
		&HealthActionEvent{CreatureID: "b", Action: Create(6)},
		&HealthActionEvent{CreatureID: "a", Action: Drain()},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, state.Creatures["a"].Health.Current())
	assert.Equal(t, 6, state.Creatures["b"].Health.Current())
}

func TestProjectorRemoveAndErrors(t *testing.T) {
	state, err := NewProjector().Build([]Event{
		&CreatureSpawnedEvent{ID: "a"},
		&CreatureSpawnedEvent{ID: "b"},
		&CreatureRemovedEvent{ID: "a"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, state.Order)
	assert.Equal(t, []string{"b"}, state.IDs())

	_, err = NewProjector().Build([]Event{&HealthActionEvent{CreatureID: "ghost", Action: Create(4)}})
	assert.ErrorContains(t, err, "ghost")

	_, err = NewProjector().Build([]Event{&CreatureSpawnedEvent{ID: "a"}, &CreatureSpawnedEvent{ID: "a"}})
	assert.ErrorContains(t, err, "already spawned")
}

func TestProjectorApplyIsIncremental(t *testing.T) {
	p := NewProjector()
	state, err := p.Build([]Event{&CreatureSpawnedEvent{ID: "a"}})
	require.NoError(t, err)

	require.NoError(t, p.Apply(state, &HealthActionEvent{CreatureID: "a", Action: Create(8)}))
	err = p.Apply(state,
		&HealthActionEvent{CreatureID: "a", Action: Chip(3)},
		&HealthActionEvent{CreatureID: "nobody", Action: Chip(1)},
	)
	assert.ErrorContains(t, err, "event 1")
	assert.Equal(t, 5, state.Creatures["a"].Health.Current())
}
