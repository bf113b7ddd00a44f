package engine

import (
	"encoding/json"
	"fmt"
)

// Value is a bounded pool of points. Current always stays within [0, Total].
type Value struct {
	total   int
	current int
}

// NewValue creates a full pool of the given size.
func NewValue(total int) Value {
	if total < 0 {
		total = 0
	}
	return Value{total: total, current: total}
}

// Total returns the pool capacity.
func (v Value) Total() int { return v.total }

// Current returns the points left in the pool.
func (v Value) Current() int { return v.current }

// IsEmpty reports whether no points are left.
func (v Value) IsEmpty() bool { return v.current == 0 }

// Reduce removes n points and returns what could not be removed.
func (v *Value) Reduce(n int) int {
	v.current -= n
	if v.current < 0 {
		rest := -v.current
		v.current = 0
		return rest
	}
	return 0
}

// Add restores n points and returns what did not fit.
func (v *Value) Add(n int) int {
	v.current += n
	if v.current > v.total {
		rest := v.current - v.total
		v.current = v.total
		return rest
	}
	return 0
}

// Empty drops the pool to zero.
func (v *Value) Empty() { v.current = 0 }

// Reset refills the pool.
func (v *Value) Reset() { v.current = v.total }

func (v Value) String() string {
	return fmt.Sprintf("%d/%d", v.current, v.total)
}

type valueJSON struct {
	Total   int `json:"total" yaml:"total"`
	Current int `json:"current" yaml:"current"`
}

func (v valueJSON) value() (Value, error) {
	if v.Total < 0 || v.Current < 0 || v.Current > v.Total {
		return Value{}, fmt.Errorf("invalid value %d/%d", v.Current, v.Total)
	}
	return Value{total: v.Total, current: v.Current}, nil
}

// MarshalJSON encodes the pool as {"total": T, "current": C}.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(valueJSON{Total: v.total, Current: v.current})
}

// UnmarshalJSON decodes {"total": T, "current": C}, rejecting out-of-bounds pools.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw valueJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := raw.value()
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (v Value) MarshalYAML() (any, error) {
	return valueJSON{Total: v.total, Current: v.current}, nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var raw valueJSON
	if err := unmarshal(&raw); err != nil {
		return err
	}
	decoded, err := raw.value()
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
