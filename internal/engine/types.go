// Package engine implements the hit dice health engine.
// A creature's health is an ordered row of hit dice; each die is a bounded
// pool of points with status tags that change how damage, healing and special
// actions spill across the row. Every action produces an ordered list of
// responses and is fully deterministic.
package engine

import "fmt"

// --- Actions ---

// ActionKind names a health action.
type ActionKind string

const (
	// ActionCreate appends a hit die of some size to the right of the row.
	ActionCreate ActionKind = "create"
	// ActionAddStatus adds a status to the right-most hit die.
	ActionAddStatus ActionKind = "add_status"
	// ActionRemoveStatus removes a status from the right-most hit die.
	ActionRemoveStatus ActionKind = "remove_status"
	// ActionChip reduces the right-most hit die, spilling leftwards.
	ActionChip ActionKind = "chip"
	// ActionHeal restores the left-most hit die, spilling rightwards.
	ActionHeal ActionKind = "heal"
	// ActionDrain empties the right-most non-empty hit die.
	ActionDrain ActionKind = "drain"
	// ActionBreak voids the right-most non-void hit die.
	ActionBreak ActionKind = "break"
	// ActionMend removes void from the left-most void hit die.
	ActionMend ActionKind = "mend"
	// ActionShatter removes the right-most hit die.
	ActionShatter ActionKind = "shatter"
	// ActionFortify adds armor charges to the right-most hit die.
	ActionFortify ActionKind = "fortify"
)

// Action is a request to change health. Amount is used by Create, Chip,
// Heal and Fortify; Status by AddStatus and RemoveStatus.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Amount int        `json:"amount,omitempty"`
	Status Status     `json:"status,omitzero"`
}

// Create builds a Create action.
func Create(size int) Action { return Action{Kind: ActionCreate, Amount: size} }

// AddStatus builds an AddStatus action.
func AddStatus(s Status) Action { return Action{Kind: ActionAddStatus, Status: s} }

// RemoveStatus builds a RemoveStatus action.
func RemoveStatus(s Status) Action { return Action{Kind: ActionRemoveStatus, Status: s} }

// Chip builds a Chip action.
func Chip(n int) Action { return Action{Kind: ActionChip, Amount: n} }

// Heal builds a Heal action.
func Heal(n int) Action { return Action{Kind: ActionHeal, Amount: n} }

// Drain builds a Drain action.
func Drain() Action { return Action{Kind: ActionDrain} }

// Break builds a Break action.
func Break() Action { return Action{Kind: ActionBreak} }

// Mend builds a Mend action.
func Mend() Action { return Action{Kind: ActionMend} }

// Shatter builds a Shatter action.
func Shatter() Action { return Action{Kind: ActionShatter} }

// Fortify builds a Fortify action.
func Fortify(n int) Action { return Action{Kind: ActionFortify, Amount: n} }

func (a Action) String() string {
	switch a.Kind {
	case ActionCreate, ActionChip, ActionHeal, ActionFortify:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Amount)
	case ActionAddStatus, ActionRemoveStatus:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Status)
	}
	return string(a.Kind)
}

// --- Responses ---

// ResponseKind names the outcome of an action.
type ResponseKind string

const (
	ResponseNone      ResponseKind = "none"
	ResponseCreate    ResponseKind = "create"
	ResponseChip      ResponseKind = "chip"
	ResponseHeal      ResponseKind = "heal"
	ResponseDrain     ResponseKind = "drain"
	ResponseBreak     ResponseKind = "break"
	ResponseMend      ResponseKind = "mend"
	ResponseShatter   ResponseKind = "shatter"
	ResponseFortified ResponseKind = "fortified"
	ResponseRecovery  ResponseKind = "recovery"
)

// DieResponse is what a single hit die reports after an action.
// Amount is the spillover for Chip and Heal and the armor total for Fortified.
type DieResponse struct {
	Kind   ResponseKind
	Amount int
}

// Response is what a health bar reports for one hit die. Index is the
// position of the die that produced it; a shattered die reports the
// position it held before removal.
type Response struct {
	Kind   ResponseKind `json:"kind"`
	Index  int          `json:"index"`
	Amount int          `json:"amount,omitempty"`
}

// NoResponse is the response of an action that changed nothing.
var NoResponse = Response{Kind: ResponseNone}

// CreateResponse reports a new hit die at index.
func CreateResponse(index int) Response { return Response{Kind: ResponseCreate, Index: index} }

// ChipResponse reports a chip on index with rest spilling over.
func ChipResponse(index, rest int) Response {
	return Response{Kind: ResponseChip, Index: index, Amount: rest}
}

// HealResponse reports a heal on index with rest spilling over.
func HealResponse(index, rest int) Response {
	return Response{Kind: ResponseHeal, Index: index, Amount: rest}
}

// DrainResponse reports a drained hit die.
func DrainResponse(index int) Response { return Response{Kind: ResponseDrain, Index: index} }

// BreakResponse reports a broken hit die.
func BreakResponse(index int) Response { return Response{Kind: ResponseBreak, Index: index} }

// MendResponse reports a mended hit die.
func MendResponse(index int) Response { return Response{Kind: ResponseMend, Index: index} }

// ShatterResponse reports a removed hit die.
func ShatterResponse(index int) Response { return Response{Kind: ResponseShatter, Index: index} }

// FortifiedResponse reports the armor charges now held by index.
func FortifiedResponse(index, armor int) Response {
	return Response{Kind: ResponseFortified, Index: index, Amount: armor}
}

// RecoveryResponse reports a hit die that withstood the action.
func RecoveryResponse(index int) Response { return Response{Kind: ResponseRecovery, Index: index} }

// at places a die response at a position in the row.
func (r DieResponse) at(index int) Response {
	if r.Kind == ResponseNone {
		return NoResponse
	}
	return Response{Kind: r.Kind, Index: index, Amount: r.Amount}
}

func (r Response) String() string {
	switch r.Kind {
	case ResponseNone:
		return "none"
	case ResponseChip, ResponseHeal, ResponseFortified:
		return fmt.Sprintf("%s(%d, %d)", r.Kind, r.Index, r.Amount)
	}
	return fmt.Sprintf("%s(%d)", r.Kind, r.Index)
}

// Message describes the response for display.
func (r Response) Message() string {
	die := r.Index + 1
	switch r.Kind {
	case ResponseCreate:
		return fmt.Sprintf("hit die #%d created", die)
	case ResponseChip:
		if r.Amount > 0 {
			return fmt.Sprintf("hit die #%d chipped, %d spills over", die, r.Amount)
		}
		return fmt.Sprintf("hit die #%d chipped", die)
	case ResponseHeal:
		if r.Amount > 0 {
			return fmt.Sprintf("hit die #%d healed, %d spills over", die, r.Amount)
		}
		return fmt.Sprintf("hit die #%d healed", die)
	case ResponseDrain:
		return fmt.Sprintf("hit die #%d drained", die)
	case ResponseBreak:
		return fmt.Sprintf("hit die #%d broken", die)
	case ResponseMend:
		return fmt.Sprintf("hit die #%d mended", die)
	case ResponseShatter:
		return fmt.Sprintf("hit die #%d shattered", die)
	case ResponseFortified:
		return fmt.Sprintf("hit die #%d fortified (%d)", die, r.Amount)
	case ResponseRecovery:
		return fmt.Sprintf("hit die #%d recovered", die)
	}
	return "nothing happens"
}
