package engine

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidDice is returned for expressions that are neither a plain
// integer nor dice notation.
var ErrInvalidDice = errors.New("invalid dice expression")

var mockDiceQueue []int

// MockDice prepares a sequence of deterministic results for the next calls to Roll
func MockDice(results []int) {
	mockDiceQueue = results
}

// ResetMockDice clears the deterministic queue
func ResetMockDice() {
	mockDiceQueue = nil
}

// RollResult contains the finalized answer alongside the raw rolls used
type RollResult struct {
	Total    int
	RawRolls []int
	Kept     []int
	Dropped  []int
	Modifier int
}

// IsFlat reports whether the result came from a plain integer.
func (r RollResult) IsFlat() bool { return len(r.RawRolls) == 0 }

// diceSpec is a parsed NdS expression.
type diceSpec struct {
	count    int
	sides    int
	keep     int
	lowest   bool
	modifier int
}

// maxDice bounds the number of dice in one expression.
const maxDice = 1000

var diceRegex = regexp.MustCompile(`(?i)^(\d*)d(\d+)(k[hl]\d+|[ad])?([+-]\d+)?$`)

func parseDice(raw string) (diceSpec, error) {
	m := diceRegex.FindStringSubmatch(raw)
	if m == nil {
		return diceSpec{}, fmt.Errorf("%w: %s", ErrInvalidDice, raw)
	}

	spec := diceSpec{count: 1}
	if m[1] != "" {
		spec.count, _ = strconv.Atoi(m[1])
	}
	spec.sides, _ = strconv.Atoi(m[2])
	if spec.count <= 0 {
		return diceSpec{}, fmt.Errorf("%w: cannot roll zero dice", ErrInvalidDice)
	}
	if spec.count > maxDice {
		return diceSpec{}, fmt.Errorf("%w: cannot roll more than %d dice", ErrInvalidDice, maxDice)
	}
	if spec.sides <= 0 {
		return diceSpec{}, fmt.Errorf("%w: cannot roll a die with 0 sides", ErrInvalidDice)
	}
	spec.keep = spec.count

	switch mode := strings.ToLower(m[3]); {
	case mode == "a":
		spec.count, spec.keep = 2, 1
	case mode == "d":
		spec.count, spec.keep, spec.lowest = 2, 1, true
	case mode != "":
		spec.lowest = mode[1] == 'l'
		spec.keep, _ = strconv.Atoi(mode[2:])
		spec.keep = min(spec.keep, spec.count)
	}

	if m[4] != "" {
		spec.modifier, _ = strconv.Atoi(m[4])
	}
	return spec, nil
}

// Roll evaluates a plain integer ("7") or dice notation such as "2d6+1",
// "4d6kh3", "1d20a" (advantage) or "1d20d" (disadvantage).
func Roll(expr string) (RollResult, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(expr), " ", "")
	if raw == "" {
		return RollResult{}, fmt.Errorf("%w: empty", ErrInvalidDice)
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return RollResult{Total: n}, nil
	}

	spec, err := parseDice(raw)
	if err != nil {
		return RollResult{}, err
	}

	res := RollResult{RawRolls: make([]int, spec.count), Modifier: spec.modifier}
	for i := range res.RawRolls {
		res.RawRolls[i] = rollDie(spec.sides)
	}

	// best first, RawRolls keeps roll order
	ranked := slices.Clone(res.RawRolls)
	slices.Sort(ranked)
	if !spec.lowest {
		slices.Reverse(ranked)
	}
	res.Kept = ranked[:spec.keep]
	if spec.keep < len(ranked) {
		res.Dropped = ranked[spec.keep:]
	}

	res.Total = spec.modifier
	for _, v := range res.Kept {
		res.Total += v
	}
	return res, nil
}

// rollDie takes the next queued mock result or a uniform value in [1, sides].
func rollDie(sides int) int {
	if len(mockDiceQueue) > 0 {
		v := mockDiceQueue[0]
		mockDiceQueue = mockDiceQueue[1:]
		return v
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(sides)))
	if err != nil {
		return 1
	}
	return int(n.Int64()) + 1
}
