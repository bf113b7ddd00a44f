package data

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/suderio/svarog/internal/engine"
)

var validate = validator.New()

// Template describes the hit dice a creature starts with.
type Template struct {
	Name    string        `yaml:"name" validate:"required"`
	HitDice []DieTemplate `yaml:"hit_dice" validate:"required,min=1,dive"`
}

// DieTemplate is one hit die of a template, left to right.
type DieTemplate struct {
	Size     DieSize  `yaml:"size" validate:"gte=1"`
	Statuses []string `yaml:"statuses,omitempty"`
}

// Validate checks struct rules and that every status tag parses.
func (t *Template) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("template %s: %w", t.Name, err)
	}
	for i, d := range t.HitDice {
		for _, s := range d.Statuses {
			if _, err := engine.ParseStatus(s); err != nil {
				return fmt.Errorf("template %s hit die %d: %w", t.Name, i, err)
			}
		}
	}
	return nil
}

// Actions builds the template die by die: each Create is followed by the
// statuses of that die, so status actions land on the die just created.
func (t *Template) Actions() ([]engine.Action, error) {
	var actions []engine.Action
	for i, d := range t.HitDice {
		actions = append(actions, engine.Create(int(d.Size)))
		for _, s := range d.Statuses {
			status, err := engine.ParseStatus(s)
			if err != nil {
				return nil, fmt.Errorf("template %s hit die %d: %w", t.Name, i, err)
			}
			actions = append(actions, engine.AddStatus(status))
		}
	}
	return actions, nil
}

// Total returns the summed capacity of the template.
func (t *Template) Total() int {
	sum := 0
	for _, d := range t.HitDice {
		sum += int(d.Size)
	}
	return sum
}
