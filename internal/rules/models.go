package rules

import "github.com/suderio/svarog/internal/engine"

// RollFunc evaluates a dice expression (e.g. "1d20") and returns the total.
// It is injected to allow deterministic testing.
type RollFunc func(dice string) int

// DefaultRoll rolls through engine.Roll. Invalid expressions roll 0.
func DefaultRoll(dice string) int {
	res, err := engine.Roll(dice)
	if err != nil {
		return 0
	}
	return res.Total
}
