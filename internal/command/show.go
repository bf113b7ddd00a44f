package command

import (
	"fmt"
	"strings"

	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
)

// ExecuteShow describes one creature or the whole table.
func ExecuteShow(cmd *parser.ShowCmd, state *engine.GameState) ([]engine.Event, error) {
	if cmd.Creature != "" {
		c, ok := state.Creature(cmd.Creature)
		if !ok {
			return nil, unknownCreature(cmd.Creature, state)
		}
		return []engine.Event{&engine.HintEvent{MessageStr: DescribeCreature(c)}}, nil
	}

	creatures := state.List()
	if len(creatures) == 0 {
		return []engine.Event{&engine.HintEvent{MessageStr: "No creatures on the table."}}, nil
	}

	lines := make([]string, 0, len(creatures))
	for _, c := range creatures {
		lines = append(lines, DescribeCreature(c))
	}
	return []engine.Event{&engine.HintEvent{MessageStr: strings.Join(lines, "\n")}}, nil
}

// DescribeCreature renders "id (name) current/total: [6/6 fortified:1] [0/4 empty]".
func DescribeCreature(c *engine.Creature) string {
	label := c.ID
	if c.Name != "" && c.Name != c.ID {
		label = fmt.Sprintf("%s (%s)", c.ID, c.Name)
	}
	return fmt.Sprintf("%s %d/%d: %s", label, c.Health.Current(), c.Health.Total(), DescribeHealth(c.Health))
}

// DescribeHealth renders every die left to right.
func DescribeHealth(h *engine.Health) string {
	if h.Len() == 0 {
		return "no hit dice"
	}
	parts := make([]string, 0, h.Len())
	for _, d := range h.HitDice {
		text := d.Value.String()
		if tags := d.Statuses.Strings(); len(tags) > 0 {
			text += " " + strings.Join(tags, " ")
		}
		parts = append(parts, "["+text+"]")
	}
	return strings.Join(parts, " ")
}
