package command

import (
	"fmt"

	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
	"github.com/suderio/svarog/internal/rules"
)

// ExecuteCheck evaluates an expression against a creature. Without a
// target the formula only sees the roster and the last responses.
func ExecuteCheck(cmd *parser.CheckCmd, ctx *Context) ([]engine.Event, error) {
	if ctx.Evaluator == nil {
		return nil, fmt.Errorf("no evaluator configured")
	}

	var target *engine.Creature
	name := parser.TargetName(cmd.Target)
	if name != "" {
		c, err := ResolveTarget(name, "", ctx.State)
		if err != nil {
			return nil, err
		}
		target = c
	} else if c, ok := ctx.State.Creature(ctx.DefaultTarget); ok {
		target = c
	}

	out, err := ctx.Evaluator.Eval(cmd.Expression, rules.BuildContext(ctx.State, target, ctx.LastResponses))
	if err != nil {
		return nil, err
	}

	return []engine.Event{&engine.HintEvent{MessageStr: fmt.Sprintf("%s => %v", cmd.Expression, out)}}, nil
}
