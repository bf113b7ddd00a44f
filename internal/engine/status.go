package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownStatus is returned when a status name cannot be parsed.
var ErrUnknownStatus = errors.New("unknown status")

// StatusKind names a hit die status tag.
type StatusKind string

const (
	// StatusVoid marks a hit die that has no influence.
	StatusVoid StatusKind = "void"
	// StatusEmpty marks a hit die with zero points in it.
	StatusEmpty StatusKind = "empty"
	// StatusGrafted marks a hit die that gives no effort.
	StatusGrafted StatusKind = "grafted"
	// StatusTemporary marks a hit die that shatters once empty.
	StatusTemporary StatusKind = "temporary"
	// StatusGuarded marks a hit die that can't be drained or broken.
	StatusGuarded StatusKind = "guarded"
	// StatusFortified carries armor charges; each charge restores the die
	// once when it would become empty.
	StatusFortified StatusKind = "fortified"
	// StatusStifled carries the number of turns the die gives no effort.
	StatusStifled StatusKind = "stifled"
	// StatusCracked carries the turn interval of a recurring chip.
	StatusCracked StatusKind = "cracked"
	// StatusMending carries the turn interval of a recurring heal.
	StatusMending StatusKind = "mending"
)

// StatusKinds lists every kind in declaration order.
var StatusKinds = []StatusKind{
	StatusVoid,
	StatusEmpty,
	StatusGrafted,
	StatusTemporary,
	StatusGuarded,
	StatusFortified,
	StatusStifled,
	StatusCracked,
	StatusMending,
}

var kindOrder = func() map[StatusKind]int {
	order := make(map[StatusKind]int, len(StatusKinds))
	for i, k := range StatusKinds {
		order[k] = i
	}
	return order
}()

// Valid reports whether k is a known kind.
func (k StatusKind) Valid() bool {
	_, ok := kindOrder[k]
	return ok
}

// HasPayload reports whether the kind carries a numeric value.
func (k StatusKind) HasPayload() bool {
	switch k {
	case StatusFortified, StatusStifled, StatusCracked, StatusMending:
		return true
	}
	return false
}

// Status is a single tag attached to a hit die. Amount is only meaningful
// for kinds with a payload.
type Status struct {
	Kind   StatusKind
	Amount int
}

// Void returns the Void tag.
func Void() Status { return Status{Kind: StatusVoid} }

// Empty returns the Empty tag.
func Empty() Status { return Status{Kind: StatusEmpty} }

// Grafted returns the Grafted tag.
func Grafted() Status { return Status{Kind: StatusGrafted} }

// Temporary returns the Temporary tag.
func Temporary() Status { return Status{Kind: StatusTemporary} }

// Guarded returns the Guarded tag.
func Guarded() Status { return Status{Kind: StatusGuarded} }

// Fortified returns a Fortified tag with n armor charges.
func Fortified(n int) Status { return Status{Kind: StatusFortified, Amount: n} }

// Stifled returns a Stifled tag lasting n turns.
func Stifled(n int) Status { return Status{Kind: StatusStifled, Amount: n} }

// Cracked returns a Cracked tag with an interval of n turns.
func Cracked(n int) Status { return Status{Kind: StatusCracked, Amount: n} }

// Mending returns a Mending tag with an interval of n turns.
func Mending(n int) Status { return Status{Kind: StatusMending, Amount: n} }

// IsZero reports whether the status is unset.
func (s Status) IsZero() bool { return s.Kind == "" }

func (s Status) String() string {
	if s.Kind.HasPayload() {
		return fmt.Sprintf("%s:%d", s.Kind, s.Amount)
	}
	return string(s.Kind)
}

// ParseStatus reads the text form "name" or "name:N".
func ParseStatus(text string) (Status, error) {
	name, amount, hasAmount := strings.Cut(strings.TrimSpace(text), ":")
	kind := StatusKind(strings.ToLower(name))
	if !kind.Valid() {
		return Status{}, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
	}
	s := Status{Kind: kind}
	if !kind.HasPayload() {
		if hasAmount {
			return Status{}, fmt.Errorf("status %s takes no value", kind)
		}
		return s, nil
	}
	if !hasAmount {
		return Status{}, fmt.Errorf("status %s requires a value, e.g. %s:1", kind, kind)
	}
	n, err := strconv.Atoi(amount)
	if err != nil {
		return Status{}, fmt.Errorf("invalid value for status %s: %w", kind, err)
	}
	s.Amount = n
	return s, nil
}

// MarshalText encodes the status in its text form.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, s.Kind)
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes the text form.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// StatusSet holds at most one tag per kind.
type StatusSet map[StatusKind]int

// NewStatusSet builds a set from the given tags; later tags of the same
// kind replace earlier ones.
func NewStatusSet(statuses ...Status) StatusSet {
	set := make(StatusSet, len(statuses))
	for _, s := range statuses {
		set.Insert(s)
	}
	return set
}

// Has reports whether a tag of the given kind is present.
func (s StatusSet) Has(kind StatusKind) bool {
	_, ok := s[kind]
	return ok
}

// Get returns the payload of the given kind.
func (s StatusSet) Get(kind StatusKind) (int, bool) {
	n, ok := s[kind]
	return n, ok
}

// Contains reports whether exactly this tag, payload included, is present.
func (s StatusSet) Contains(status Status) bool {
	n, ok := s[status.Kind]
	return ok && n == status.Amount
}

// Insert adds the tag, replacing the payload of an existing tag of the same kind.
func (s StatusSet) Insert(status Status) {
	if status.Kind.HasPayload() {
		s[status.Kind] = status.Amount
		return
	}
	s[status.Kind] = 0
}

// Remove drops the tag of the status' kind, whatever its payload.
func (s StatusSet) Remove(status Status) {
	delete(s, status.Kind)
}

// Len returns the number of tags.
func (s StatusSet) Len() int { return len(s) }

// List returns the tags in declaration order.
func (s StatusSet) List() []Status {
	list := make([]Status, 0, len(s))
	for kind, n := range s {
		st := Status{Kind: kind}
		if kind.HasPayload() {
			st.Amount = n
		}
		list = append(list, st)
	}
	sort.Slice(list, func(i, j int) bool { return kindOrder[list[i].Kind] < kindOrder[list[j].Kind] })
	return list
}

// Strings returns the text form of every tag in declaration order.
func (s StatusSet) Strings() []string {
	list := s.List()
	out := make([]string, len(list))
	for i, st := range list {
		out[i] = st.String()
	}
	return out
}

// Clone returns an independent copy.
func (s StatusSet) Clone() StatusSet {
	c := make(StatusSet, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// MarshalJSON encodes the set as an ordered list of text tags.
func (s StatusSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON decodes a list of text tags.
func (s *StatusSet) UnmarshalJSON(data []byte) error {
	var list []Status
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = NewStatusSet(list...)
	return nil
}

// MarshalYAML encodes the set as an ordered list of text tags.
func (s StatusSet) MarshalYAML() (any, error) {
	return s.Strings(), nil
}

// UnmarshalYAML decodes a list of text tags.
func (s *StatusSet) UnmarshalYAML(unmarshal func(any) error) error {
	var list []string
	if err := unmarshal(&list); err != nil {
		return err
	}
	set := make(StatusSet, len(list))
	for _, text := range list {
		st, err := ParseStatus(text)
		if err != nil {
			return err
		}
		set.Insert(st)
	}
	*s = set
	return nil
}
