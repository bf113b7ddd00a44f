package rules

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"
)

// predeclaredVars is the set of variables declared in the base CEL environment.
var predeclaredVars = map[string]bool{
	"health": true, "creatures": true, "responses": true, "target": true,
}

// newEnv declares the health variables and the roll function.
func newEnv(rollFunc RollFunc) (*cel.Env, error) {
	return cel.NewEnv(
		ext.Strings(),
		ext.Lists(),

		cel.Variable("health", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("creatures", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("responses", cel.ListType(cel.MapType(cel.StringType, cel.DynType))),
		cel.Variable("target", cel.StringType),

		cel.Function("roll",
			cel.Overload("roll_string",
				[]*cel.Type{cel.StringType},
				cel.IntType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					s, ok := arg.Value().(string)
					if !ok {
						return types.NewErr("roll expects a dice string")
					}
					return types.Int(rollFunc(s))
				}),
			),
		),
	)
}
