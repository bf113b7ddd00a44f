package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// CommitmentKind is what a hit die has committed its effort to.
type CommitmentKind string

const (
	CommitTurn      CommitmentKind = "turn"
	CommitEncounter CommitmentKind = "encounter"
	CommitRest      CommitmentKind = "rest"
)

// Effort tracks whether a hit die has committed resources for the current
// turn, encounter or rest. The zero value is uncommitted.
//
// No action reads or changes effort yet; it is carried so that saved
// health bars keep it.
type Effort struct {
	Commitment CommitmentKind
	Turns      int
}

// Uncommitted returns the default effort.
func Uncommitted() Effort { return Effort{} }

// CommittedFor returns an effort committed to the given kind. Turns is only
// kept for turn commitments.
func CommittedFor(kind CommitmentKind, turns int) Effort {
	if kind != CommitTurn {
		turns = 0
	}
	return Effort{Commitment: kind, Turns: turns}
}

// IsCommitted reports whether any commitment is held.
func (e Effort) IsCommitted() bool { return e.Commitment != "" }

func (e Effort) String() string {
	switch e.Commitment {
	case "":
		return "uncommitted"
	case CommitTurn:
		return fmt.Sprintf("%s:%d", e.Commitment, e.Turns)
	default:
		return string(e.Commitment)
	}
}

// MarshalText encodes the effort as "uncommitted", "turn:N", "encounter" or "rest".
func (e Effort) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText decodes the text form.
func (e *Effort) UnmarshalText(text []byte) error {
	name, turns, hasTurns := strings.Cut(strings.ToLower(strings.TrimSpace(string(text))), ":")
	switch CommitmentKind(name) {
	case "", "uncommitted":
		*e = Uncommitted()
	case CommitTurn:
		n := 0
		if hasTurns {
			var err error
			if n, err = strconv.Atoi(turns); err != nil {
				return fmt.Errorf("invalid turn commitment %q: %w", text, err)
			}
		}
		*e = CommittedFor(CommitTurn, n)
	case CommitEncounter, CommitRest:
		*e = CommittedFor(CommitmentKind(name), 0)
	default:
		return fmt.Errorf("unknown effort %q", text)
	}
	return nil
}

// Influence is a placeholder for effects a hit die exerts on its neighbours.
// None are defined.
type Influence struct{}
