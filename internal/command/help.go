package command

import (
	"fmt"
	"strings"

	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
)

var summaries = map[string]string{
	"spawn":   "Puts a creature on the table, optionally built from a template.",
	"despawn": "Takes a creature off the table.",
	"create":  "Appends a hit die of the given size to the right.",
	"chip":    "Deals damage from the right-most die, spilling leftwards.",
	"heal":    "Restores points from the left-most die, spilling rightwards.",
	"fortify": "Adds armor charges to the right-most die.",
	"add":     "Tags the right-most die with a status.",
	"remove":  "Removes a status from the right-most die.",
	"drain":   "Empties the right-most die that still has points.",
	"break":   "Voids the right-most die that is not void yet.",
	"mend":    "Repairs the left-most void die.",
	"shatter": "Destroys the right-most die.",
	"roll":    "Calculates dice expressions (e.g., 3d6+2).",
	"show":    "Shows the health of one creature or of the whole table.",
	"check":   "Evaluates a CEL expression over health, creatures and responses.",
	"help":    "Shows available commands or detailed info on a specific one.",
}

// ExecuteHelp provides guidance on command usage
func ExecuteHelp(cmd *parser.HelpCmd) ([]engine.Event, error) {
	if cmd.Command != "" {
		usage, ok := parser.Usage(cmd.Command)
		if !ok {
			if guess := parser.Suggest(cmd.Command, parser.Keywords()); guess != "" {
				return nil, fmt.Errorf("unknown command: %s (did you mean %s?)", cmd.Command, guess)
			}
			return nil, fmt.Errorf("unknown command: %s", cmd.Command)
		}
		kw := strings.ToLower(cmd.Command)
		msg := fmt.Sprintf("Command: %s\nUsage: %s\nSummary: %s", kw, usage, summaries[kw])
		return []engine.Event{&engine.HintEvent{MessageStr: msg}}, nil
	}

	var sb strings.Builder
	sb.WriteString("Available Commands:\n")
	for _, k := range parser.Keywords() {
		sb.WriteString(fmt.Sprintf(" - %s: %s\n", k, summaries[k]))
	}
	return []engine.Event{&engine.HintEvent{MessageStr: strings.TrimSpace(sb.String())}}, nil
}
