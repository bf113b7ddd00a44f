package command

import (
	"fmt"
	"strings"

	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/parser"
)

// ExecuteHealth handles create, chip, heal and fortify.
func ExecuteHealth(cmd *parser.HealthCmd, fallback string, state *engine.GameState) ([]engine.Event, error) {
	target, err := ResolveTarget(parser.TargetName(cmd.Target), fallback, state)
	if err != nil {
		return nil, err
	}

	amount, rolled, err := rollAmount(cmd.Amount, target.ID)
	if err != nil {
		return nil, err
	}

	var action engine.Action
	switch cmd.Name() {
	case "create":
		action = engine.Create(amount)
	case "chip":
		action = engine.Chip(amount)
	case "heal":
		action = engine.Heal(amount)
	case "fortify":
		action = engine.Fortify(amount)
	default:
		return nil, fmt.Errorf("unsupported health command %s", cmd.Keyword)
	}

	var events []engine.Event
	if rolled != nil {
		events = append(events, rolled)
	}
	return append(events, &engine.HealthActionEvent{CreatureID: target.ID, Action: action}), nil
}

// ExecuteStatus handles add and remove.
func ExecuteStatus(cmd *parser.StatusCmd, fallback string, state *engine.GameState) ([]engine.Event, error) {
	target, err := ResolveTarget(parser.TargetName(cmd.Target), fallback, state)
	if err != nil {
		return nil, err
	}

	status, err := statusFor(cmd)
	if err != nil {
		return nil, err
	}

	action := engine.AddStatus(status)
	if cmd.Name() == "remove" {
		action = engine.RemoveStatus(status)
	}
	return []engine.Event{&engine.HealthActionEvent{CreatureID: target.ID, Action: action}}, nil
}

// statusFor reads the status of an add or remove. Remove matches by kind,
// so a payload is optional there.
func statusFor(cmd *parser.StatusCmd) (engine.Status, error) {
	text := strings.ToLower(cmd.Status)
	if cmd.Amount != nil {
		text = fmt.Sprintf("%s:%d", text, *cmd.Amount)
	} else if cmd.Name() == "remove" && engine.StatusKind(text).HasPayload() {
		text += ":0"
	}

	status, err := engine.ParseStatus(text)
	if err != nil {
		names := make([]string, 0, len(engine.StatusKinds))
		for _, k := range engine.StatusKinds {
			names = append(names, string(k))
		}
		if guess := parser.Suggest(cmd.Status, names); guess != "" && guess != text {
			return engine.Status{}, fmt.Errorf("%w (did you mean %s?)", err, guess)
		}
		return engine.Status{}, err
	}
	return status, nil
}

// ExecuteScan handles drain, break, mend and shatter.
func ExecuteScan(cmd *parser.ScanCmd, fallback string, state *engine.GameState) ([]engine.Event, error) {
	target, err := ResolveTarget(parser.TargetName(cmd.Target), fallback, state)
	if err != nil {
		return nil, err
	}

	var action engine.Action
	switch cmd.Name() {
	case "drain":
		action = engine.Drain()
	case "break":
		action = engine.Break()
	case "mend":
		action = engine.Mend()
	case "shatter":
		action = engine.Shatter()
	default:
		return nil, fmt.Errorf("unsupported command %s", cmd.Keyword)
	}
	return []engine.Event{&engine.HealthActionEvent{CreatureID: target.ID, Action: action}}, nil
}
