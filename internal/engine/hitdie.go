package engine

// HitDie is one pool of health with its own status tags.
type HitDie struct {
	Value      Value       `json:"value" yaml:"value"`
	Effort     Effort      `json:"effort" yaml:"effort"`
	Statuses   StatusSet   `json:"statuses" yaml:"statuses"`
	Influences []Influence `json:"-" yaml:"-"`
}

// NewHitDie creates a full, uncommitted hit die without statuses.
func NewHitDie(size int) *HitDie {
	return &HitDie{
		Value:    NewValue(size),
		Effort:   Uncommitted(),
		Statuses: make(StatusSet),
	}
}

// Execute applies one action to the die and reports the outcome.
//
// After the action itself, a die left at zero reacts: a Fortified die spends
// one armor charge to heal completely, otherwise a Temporary die reports
// that it shatters, otherwise the die is marked Empty.
func (d *HitDie) Execute(action Action) DieResponse {
	if d.Statuses == nil {
		d.Statuses = make(StatusSet)
	}

	response := d.react(action)

	if d.Value.IsEmpty() {
		if armor, ok := d.Statuses.Get(StatusFortified); ok {
			d.Statuses.Remove(Fortified(armor))
			d.Execute(Heal(d.Value.Total()))
			if armor > 1 {
				d.Statuses.Insert(Fortified(armor - 1))
			}
			return DieResponse{Kind: ResponseRecovery}
		}
		if d.Statuses.Has(StatusTemporary) {
			return DieResponse{Kind: ResponseShatter}
		}
		d.Statuses.Insert(Empty())
	}

	return response
}

func (d *HitDie) react(action Action) DieResponse {
	switch action.Kind {
	case ActionChip:
		if action.Amount > 0 {
			return DieResponse{Kind: ResponseChip, Amount: d.Value.Reduce(action.Amount)}
		}
	case ActionHeal:
		if action.Amount > 0 {
			d.Statuses.Remove(Empty())
			return DieResponse{Kind: ResponseHeal, Amount: d.Value.Add(action.Amount)}
		}
	case ActionAddStatus:
		if !action.Status.IsZero() {
			d.Statuses.Insert(action.Status)
		}
	case ActionRemoveStatus:
		d.Statuses.Remove(action.Status)
	case ActionDrain:
		if d.Statuses.Has(StatusGuarded) {
			return DieResponse{Kind: ResponseRecovery}
		}
		d.Value.Empty()
		return DieResponse{Kind: ResponseDrain}
	case ActionBreak:
		if d.Statuses.Has(StatusGuarded) {
			return DieResponse{Kind: ResponseRecovery}
		}
		d.Statuses.Insert(Void())
		return DieResponse{Kind: ResponseBreak}
	case ActionMend:
		d.Statuses.Remove(Void())
		return DieResponse{Kind: ResponseMend}
	case ActionFortify:
		armor, _ := d.Statuses.Get(StatusFortified)
		armor += action.Amount
		d.Statuses.Insert(Fortified(armor))
		return DieResponse{Kind: ResponseFortified, Amount: armor}
	}
	return DieResponse{Kind: ResponseNone}
}

// Armor returns the Fortified charges held by the die.
func (d *HitDie) Armor() int {
	n, _ := d.Statuses.Get(StatusFortified)
	return n
}

// Clone returns an independent copy of the die.
func (d *HitDie) Clone() *HitDie {
	c := *d
	c.Statuses = d.Statuses.Clone()
	c.Influences = append([]Influence(nil), d.Influences...)
	return &c
}
