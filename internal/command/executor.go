package command

import (
	"fmt"

	"github.com/suderio/svarog/internal/data"
	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
	"github.com/suderio/svarog/internal/rules"
)

// Context is what a command may read while it is resolved. Commands never
// mutate it; they only return events.
type Context struct {
	State         *engine.GameState
	Loader        *data.Loader
	Evaluator     *rules.Evaluator
	DefaultTarget string
	LastResponses []engine.Response
}

// Execute resolves a parsed command into the events it produces. The
// events are not applied.
func Execute(cmd *parser.Command, ctx *Context) ([]engine.Event, error) {
	switch {
	case cmd.Health != nil:
		return ExecuteHealth(cmd.Health, ctx.DefaultTarget, ctx.State)
	case cmd.Status != nil:
		return ExecuteStatus(cmd.Status, ctx.DefaultTarget, ctx.State)
	case cmd.Scan != nil:
		return ExecuteScan(cmd.Scan, ctx.DefaultTarget, ctx.State)
	case cmd.Spawn != nil:
		return ExecuteSpawn(cmd.Spawn, ctx.State, ctx.Loader)
	case cmd.Despawn != nil:
		return ExecuteDespawn(cmd.Despawn, ctx.State)
	case cmd.Roll != nil:
		evt, err := ExecuteRoll(cmd.Roll)
		if err != nil {
			return nil, fmt.Errorf("roll execution error: %w", err)
		}
		return []engine.Event{evt}, nil
	case cmd.Show != nil:
		return ExecuteShow(cmd.Show, ctx.State)
	case cmd.Check != nil:
		return ExecuteCheck(cmd.Check, ctx)
	case cmd.Help != nil:
		return ExecuteHelp(cmd.Help)
	}
	return nil, fmt.Errorf("empty command")
}
