package command

import (
	"errors"
	"fmt"

	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
)

var (
	// ErrNoTarget is returned when a command names no creature and no
	// default creature is configured.
	ErrNoTarget = errors.New("no target creature")
	// ErrUnknownCreature is returned for creature ids not on the table.
	ErrUnknownCreature = errors.New("unknown creature")
)

// ResolveTarget picks the creature a command acts on: the named one, or
// fallback when the command omits "to:".
func ResolveTarget(name, fallback string, state *engine.GameState) (*engine.Creature, error) {
	if name == "" {
		name = fallback
	}
	if name == "" {
		return nil, ErrNoTarget
	}
	if c, ok := state.Creature(name); ok {
		return c, nil
	}
	return nil, unknownCreature(name, state)
}

func unknownCreature(name string, state *engine.GameState) error {
	if guess := parser.Suggest(name, state.IDs()); guess != "" {
		return fmt.Errorf("%w: %s (did you mean %s?)", ErrUnknownCreature, name, guess)
	}
	return fmt.Errorf("%w: %s", ErrUnknownCreature, name)
}

// rollAmount turns an amount into an integer. Dice amounts also yield the
// roll event that explains the number.
func rollAmount(expr *parser.DiceExpr, actor string) (int, engine.Event, error) {
	res, err := engine.Roll(expr.Raw)
	if err != nil {
		return 0, nil, err
	}
	if res.IsFlat() {
		return res.Total, nil, nil
	}
	return res.Total, rolledEvent(actor, expr.Raw, res), nil
}

func rolledEvent(actor, dice string, res engine.RollResult) *engine.DiceRolledEvent {
	return &engine.DiceRolledEvent{
		ActorID:  actor,
		Dice:     dice,
		Total:    res.Total,
		RawRolls: res.RawRolls,
		Kept:     res.Kept,
		Dropped:  res.Dropped,
		Modifier: res.Modifier,
	}
}
