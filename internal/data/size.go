package data

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DieSize is the capacity of a hit die. Templates write it as a number
// (6) or in die notation ("d6").
type DieSize int

// ParseDieSize reads "6", "d6" or "D6".
func ParseDieSize(s string) (DieSize, error) {
	raw := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "d")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid die size %q", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("die size must be positive, got %q", s)
	}
	return DieSize(n), nil
}

func (d DieSize) String() string { return fmt.Sprintf("d%d", int(d)) }

// UnmarshalYAML accepts both integer and string scalars.
func (d *DieSize) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: die size must be a scalar", node.Line)
	}
	size, err := ParseDieSize(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = size
	return nil
}

// MarshalYAML writes die notation.
func (d DieSize) MarshalYAML() (any, error) {
	return d.String(), nil
}
