package command

import (
	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
)

// ExecuteRoll rolls dice for display. Nothing on the table changes.
func ExecuteRoll(roll *parser.RollCmd) (engine.Event, error) {
	name := ""
	if roll.Actor != nil {
		name = roll.Actor.Name
	}

	res, err := engine.Roll(roll.Dice.Raw)
	if err != nil {
		return nil, err
	}

	return rolledEvent(name, roll.Dice.Raw, res), nil
}
