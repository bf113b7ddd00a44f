package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types/ref"
)

// Evaluator wraps a CEL environment configured for health queries.
type Evaluator struct {
	env      *cel.Env
	rollFunc RollFunc
}

// NewEvaluator creates a CEL environment with the health variables and the
// roll function. A nil rollFunc uses DefaultRoll.
func NewEvaluator(rollFunc RollFunc) (*Evaluator, error) {
	if rollFunc == nil {
		rollFunc = DefaultRoll
	}

	env, err := newEnv(rollFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	return &Evaluator{env: env, rollFunc: rollFunc}, nil
}

// Eval compiles and evaluates a CEL expression against the given context.
// The context is a map of variable name → value that will be available in the formula.
func (ev *Evaluator) Eval(formula string, ctx map[string]any) (any, error) {
	env, err := ev.extendEnvForContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("CEL env extension error: %w", err)
	}

	ast, issues := env.Compile(formula)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("CEL compile error: %w", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program error: %w", err)
	}

	out, _, err := prg.Eval(withDefaults(ctx))
	if err != nil {
		return nil, fmt.Errorf("CEL eval error: %w", err)
	}

	return convertRefVal(out), nil
}

// EvalBool evaluates a formula that must produce a boolean.
func (ev *Evaluator) EvalBool(formula string, ctx map[string]any) (bool, error) {
	out, err := ev.Eval(formula, ctx)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %T, expected bool", formula, out)
	}
	return b, nil
}

// extendEnvForContext creates a child CEL environment that includes
// declarations for any variables in the context that are not in the base
// environment.
func (ev *Evaluator) extendEnvForContext(ctx map[string]any) (*cel.Env, error) {
	var opts []cel.EnvOption
	for key := range ctx {
		if predeclaredVars[key] {
			continue
		}
		opts = append(opts, cel.Variable(key, cel.DynType))
	}
	if len(opts) == 0 {
		return ev.env, nil
	}
	return ev.env.Extend(opts...)
}

// withDefaults fills predeclared variables missing from ctx so formulas
// never hit an unbound reference.
func withDefaults(ctx map[string]any) map[string]any {
	out := make(map[string]any, len(ctx)+len(predeclaredVars))
	out["health"] = map[string]any{}
	out["creatures"] = map[string]any{}
	out["responses"] = []any{}
	out["target"] = ""
	for k, v := range ctx {
		out[k] = v
	}
	return out
}

// convertRefVal converts a CEL ref.Val to a native Go value, recursively handling
// maps and lists so that downstream code can use standard Go type assertions.
func convertRefVal(val ref.Val) any {
	native := val.Value()
	switch v := native.(type) {
	case map[ref.Val]ref.Val:
		result := make(map[string]any, len(v))
		for mk, mv := range v {
			result[fmt.Sprintf("%v", mk.Value())] = convertRefVal(mv)
		}
		return result
	case []ref.Val:
		result := make([]any, len(v))
		for i, rv := range v {
			result[i] = convertRefVal(rv)
		}
		return result
	default:
		return native
	}
}
