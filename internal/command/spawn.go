package command

import (
	"errors"
	"fmt"

	"github.com/suderio/svarog/internal/data"
	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
)

// ExecuteSpawn puts a creature on the table. With a template the creature
// is built die by die.
func ExecuteSpawn(cmd *parser.SpawnCmd, state *engine.GameState, loader *data.Loader) ([]engine.Event, error) {
	if _, ok := state.Creature(cmd.Creature); ok {
		return nil, fmt.Errorf("creature %s is already on the table", cmd.Creature)
	}

	if cmd.Template == "" {
		return []engine.Event{&engine.CreatureSpawnedEvent{ID: cmd.Creature}}, nil
	}

	if loader == nil {
		return nil, fmt.Errorf("no template loader configured")
	}
	tmpl, err := loader.LoadTemplate(cmd.Template)
	if err != nil {
		if errors.Is(err, data.ErrTemplateNotFound) {
			if guess := parser.Suggest(cmd.Template, loader.ListTemplates()); guess != "" {
				return nil, fmt.Errorf("%w (did you mean %s?)", err, guess)
			}
		}
		return nil, err
	}

	actions, err := tmpl.Actions()
	if err != nil {
		return nil, err
	}

	events := []engine.Event{&engine.CreatureSpawnedEvent{ID: cmd.Creature, Name: tmpl.Name}}
	for _, a := range actions {
		events = append(events, &engine.HealthActionEvent{CreatureID: cmd.Creature, Action: a})
	}
	return events, nil
}

// ExecuteDespawn takes a creature off the table.
func ExecuteDespawn(cmd *parser.DespawnCmd, state *engine.GameState) ([]engine.Event, error) {
	if _, ok := state.Creature(cmd.Creature); !ok {
		return nil, unknownCreature(cmd.Creature, state)
	}
	return []engine.Event{&engine.CreatureRemovedEvent{ID: cmd.Creature}}, nil
}
