package rules

import (
	"github.com/suderio/svarog/internal/engine"
)

// HealthToMap converts a health bar into the map view formulas see:
// health.dice[i].current, health.current, health.length and so on.
func HealthToMap(h *engine.Health) map[string]any {
	if h == nil {
		h = engine.NewHealth()
	}
	dice := make([]any, 0, h.Len())
	for _, d := range h.HitDice {
		dice = append(dice, dieToMap(d))
	}
	return map[string]any{
		"dice":    dice,
		"current": int64(h.Current()),
		"total":   int64(h.Total()),
		"length":  int64(h.Len()),
	}
}

func dieToMap(d *engine.HitDie) map[string]any {
	statuses := make([]any, 0, d.Statuses.Len())
	for _, s := range d.Statuses.Strings() {
		statuses = append(statuses, s)
	}
	return map[string]any{
		"total":     int64(d.Value.Total()),
		"current":   int64(d.Value.Current()),
		"statuses":  statuses,
		"fortified": int64(d.Armor()),
		"empty":     d.Statuses.Has(engine.StatusEmpty),
		"void":      d.Statuses.Has(engine.StatusVoid),
		"effort":    d.Effort.String(),
	}
}

// CreatureToMap converts a creature for CEL evaluation.
func CreatureToMap(c *engine.Creature) map[string]any {
	if c == nil {
		return map[string]any{}
	}
	return map[string]any{
		"id":     c.ID,
		"name":   c.Name,
		"health": HealthToMap(c.Health),
	}
}

// ResponsesToList converts the responses of the last action.
func ResponsesToList(responses []engine.Response) []any {
	out := make([]any, 0, len(responses))
	for _, r := range responses {
		out = append(out, map[string]any{
			"kind":   string(r.Kind),
			"index":  int64(r.Index),
			"amount": int64(r.Amount),
		})
	}
	return out
}

// BuildContext creates the evaluation context for a target creature. target
// may be nil when the formula only looks at the roster.
func BuildContext(state *engine.GameState, target *engine.Creature, responses []engine.Response) map[string]any {
	creatures := map[string]any{}
	if state != nil {
		for id, c := range state.Creatures {
			creatures[id] = CreatureToMap(c)
		}
	}

	ctx := map[string]any{
		"creatures": creatures,
		"responses": ResponsesToList(responses),
	}
	if target != nil {
		ctx["health"] = HealthToMap(target.Health)
		ctx["target"] = target.ID
	}
	return ctx
}
