package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/suderio/svarog/internal/persistence"
	"github.com/suderio/svarog/internal/rules"
	"github.com/suderio/svarog/internal/session"
)

// Failure is one expectation that did not hold.
type Failure struct {
	Step       int
	Command    string
	Expression string
	Reason     string
}

func (f Failure) String() string {
	if f.Expression == "" {
		return fmt.Sprintf("step %d (%s): %s", f.Step, f.Command, f.Reason)
	}
	return fmt.Sprintf("step %d (%s): expected %s: %s", f.Step, f.Command, f.Expression, f.Reason)
}

// Result reports how a scenario went.
type Result struct {
	Name     string
	Steps    int
	Failures []Failure
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool { return len(r.Failures) == 0 }

// Error joins the failures, or returns nil when the scenario passed.
func (r *Result) Error() error {
	if r.Passed() {
		return nil
	}
	lines := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		lines[i] = f.String()
	}
	return fmt.Errorf("scenario %q failed:\n%s", r.Name, strings.Join(lines, "\n"))
}

// Runner executes scenarios.
type Runner struct {
	DataDirs []string
	RollFunc rules.RollFunc
	Logger   *slog.Logger
}

// Run plays the scenario step by step. Setup problems are returned as
// errors; failed expectations go into the result and do not stop the run.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sess, err := session.NewSession(persistence.NewMemoryStore(), session.Options{
		DataDirs:      append(append([]string(nil), sc.DataDirs...), r.DataDirs...),
		DefaultTarget: sc.Target,
		RollFunc:      r.RollFunc,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	for _, id := range sc.CreatureIDs() {
		spawn := "spawn " + id
		if tmpl := sc.Creatures[id]; tmpl != "" {
			spawn += " as: " + tmpl
		}
		if _, err := sess.Execute(spawn); err != nil {
			return nil, fmt.Errorf("scenario %q setup: %w", sc.Name, err)
		}
	}

	res := &Result{Name: sc.Name}
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Steps++
		n := i + 1

		_, err := sess.ExecuteScript(step.Do)
		switch {
		case step.Error != "" && err == nil:
			res.Failures = append(res.Failures, Failure{Step: n, Command: step.Do, Reason: fmt.Sprintf("expected error containing %q", step.Error)})
			continue
		case step.Error != "" && !strings.Contains(err.Error(), step.Error):
			res.Failures = append(res.Failures, Failure{Step: n, Command: step.Do, Reason: fmt.Sprintf("error %q does not contain %q", err, step.Error)})
			continue
		case step.Error == "" && err != nil:
			res.Failures = append(res.Failures, Failure{Step: n, Command: step.Do, Reason: err.Error()})
			continue
		}

		state := sess.State()
		targetID := step.Target
		if targetID == "" {
			targetID = sc.Target
		}
		target, _ := state.Creature(targetID)
		evalCtx := rules.BuildContext(state, target, sess.LastResponses())

		for _, expr := range step.Expect {
			ok, err := sess.Evaluator().EvalBool(expr, evalCtx)
			if err != nil {
				res.Failures = append(res.Failures, Failure{Step: n, Command: step.Do, Expression: expr, Reason: err.Error()})
				continue
			}
			if !ok {
				res.Failures = append(res.Failures, Failure{Step: n, Command: step.Do, Expression: expr, Reason: "false"})
			}
		}
	}

	logger.Debug("scenario finished", "name", sc.Name, "steps", res.Steps, "failures", len(res.Failures))
	return res, nil
}

// RunFile loads and runs one scenario file.
func (r *Runner) RunFile(ctx context.Context, path string) (*Result, error) {
	sc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, sc)
}
