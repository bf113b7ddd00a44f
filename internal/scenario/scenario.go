// Package scenario runs scripted commands against a fresh in-memory session
// and checks CEL expectations after every step.
package scenario

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Scenario is a YAML script:
//
//	name: goblin falls
//	target: grunk
//	creatures:
//	  grunk: goblin
//	steps:
//	  - do: chip 8
//	    expect: ["health.current == 2"]
type Scenario struct {
	Name      string            `yaml:"name" validate:"required"`
	Target    string            `yaml:"target"`
	DataDirs  []string          `yaml:"data_dirs"`
	Creatures map[string]string `yaml:"creatures"`
	Steps     []Step            `yaml:"steps" validate:"required,min=1,dive"`
}

// Step is one command, or a ';' separated script, and what must hold
// after it ran.
type Step struct {
	Do     string   `yaml:"do" validate:"required"`
	Target string   `yaml:"target"`
	Expect []string `yaml:"expect"`
	// Error, when set, is a substring the command's error must contain.
	Error string `yaml:"error"`
}

// Validate checks the struct rules.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return nil
}

// CreatureIDs returns the spawned creature ids sorted, the order in which
// they are put on the table.
func (s *Scenario) CreatureIDs() []string {
	ids := make([]string, 0, len(s.Creatures))
	for id := range s.Creatures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Parse decodes and validates a scenario.
func Parse(raw []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a scenario from disk.
func LoadFile(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
