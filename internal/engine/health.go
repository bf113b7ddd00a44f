package engine

// Health is an ordered row of hit dice. Index 0 is the left-most die.
// Dice are only appended by Create and only removed by shattering.
//
// A Health is not safe for concurrent use; separate Health values share
// nothing and can be driven from separate goroutines.
type Health struct {
	HitDice []*HitDie `json:"hit_dice" yaml:"hit_dice"`
}

// NewHealth creates an empty health bar.
func NewHealth() *Health {
	return &Health{HitDice: make([]*HitDie, 0)}
}

// Len returns the number of hit dice.
func (h *Health) Len() int { return len(h.HitDice) }

// Die returns the hit die at index, or nil when out of range.
func (h *Health) Die(index int) *HitDie {
	if index < 0 || index >= len(h.HitDice) {
		return nil
	}
	return h.HitDice[index]
}

// Last returns the right-most hit die, or nil when there is none.
func (h *Health) Last() *HitDie {
	return h.Die(len(h.HitDice) - 1)
}

// Current sums the points left across all dice.
func (h *Health) Current() int {
	sum := 0
	for _, d := range h.HitDice {
		sum += d.Value.Current()
	}
	return sum
}

// Total sums the capacity of all dice.
func (h *Health) Total() int {
	sum := 0
	for _, d := range h.HitDice {
		sum += d.Value.Total()
	}
	return sum
}

// Execute applies an action to the row and returns the responses in the
// order the dice produced them. Non-positive amounts, an empty row and scans
// that find no eligible die all yield a single NoResponse.
func (h *Health) Execute(action Action) []Response {
	if len(h.HitDice) == 0 && action.Kind != ActionCreate {
		return []Response{NoResponse}
	}

	switch action.Kind {
	case ActionCreate:
		if action.Amount > 0 {
			h.HitDice = append(h.HitDice, NewHitDie(action.Amount))
			return []Response{CreateResponse(len(h.HitDice) - 1)}
		}
	case ActionAddStatus, ActionRemoveStatus:
		// a status change never removes the die, even one that would shatter
		h.HitDice[len(h.HitDice)-1].Execute(action)
	case ActionChip:
		if action.Amount > 0 {
			return h.chip(action.Amount)
		}
	case ActionHeal:
		if action.Amount > 0 {
			return h.heal(action.Amount)
		}
	case ActionDrain:
		if i, ok := h.lastIndex(func(d *HitDie) bool { return !d.Statuses.Has(StatusEmpty) }); ok {
			response := h.HitDice[i].Execute(action)
			h.settle(i, response)
			return []Response{response.at(i)}
		}
	case ActionBreak:
		if i, ok := h.lastIndex(func(d *HitDie) bool { return !d.Statuses.Has(StatusVoid) }); ok {
			response := h.HitDice[i].Execute(action)
			h.settle(i, response)
			return []Response{response.at(i)}
		}
	case ActionMend:
		if i, ok := h.firstIndex(func(d *HitDie) bool { return d.Statuses.Has(StatusVoid) }); ok {
			h.HitDice[i].Execute(action)
			return []Response{MendResponse(i)}
		}
	case ActionFortify:
		last := len(h.HitDice) - 1
		return []Response{h.HitDice[last].Execute(action).at(last)}
	case ActionShatter:
		h.HitDice = h.HitDice[:len(h.HitDice)-1]
		return []Response{ShatterResponse(len(h.HitDice))}
	}

	return []Response{NoResponse}
}

// chip damages right to left until the damage is absorbed, a die recovers
// or shatters, or the left-most die has been hit.
func (h *Health) chip(damage int) []Response {
	var result []Response
	for last := len(h.HitDice) - 1; ; last-- {
		response := h.HitDice[last].Execute(Chip(damage))
		result = append(result, response.at(last))

		if response.Kind == ResponseShatter {
			h.remove(last)
			return result
		}
		if response.Kind != ResponseChip || response.Amount == 0 || last == 0 {
			return result
		}
		damage = response.Amount
	}
}

// heal restores left to right until the healing is absorbed or the
// right-most die has been healed.
func (h *Health) heal(restoration int) []Response {
	var result []Response
	for first := 0; ; first++ {
		response := h.HitDice[first].Execute(Heal(restoration))
		result = append(result, response.at(first))

		if response.Kind != ResponseHeal || response.Amount == 0 || first == len(h.HitDice)-1 {
			return result
		}
		restoration = response.Amount
	}
}

// settle removes a die that reported it shatters.
func (h *Health) settle(index int, response DieResponse) {
	if response.Kind == ResponseShatter {
		h.remove(index)
	}
}

func (h *Health) remove(index int) {
	h.HitDice = append(h.HitDice[:index], h.HitDice[index+1:]...)
}

// lastIndex finds the right-most die matching eligible.
func (h *Health) lastIndex(eligible func(*HitDie) bool) (int, bool) {
	for i := len(h.HitDice) - 1; i >= 0; i-- {
		if eligible(h.HitDice[i]) {
			return i, true
		}
	}
	return 0, false
}

// firstIndex finds the left-most die matching eligible.
func (h *Health) firstIndex(eligible func(*HitDie) bool) (int, bool) {
	for i, d := range h.HitDice {
		if eligible(d) {
			return i, true
		}
	}
	return 0, false
}

// Clone returns an independent copy of the row.
func (h *Health) Clone() *Health {
	c := &Health{HitDice: make([]*HitDie, len(h.HitDice))}
	for i, d := range h.HitDice {
		c.HitDice[i] = d.Clone()
	}
	return c
}
