package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"void", Void(), false},
		{"Temporary", Temporary(), false},
		{"fortified:3", Fortified(3), false},
		{"cracked:2", Cracked(2), false},
		{"fortified", Status{}, true},
		{"guarded:1", Status{}, true},
		{"stifled:x", Status{}, true},
		{"sturdy", Status{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusUnknownIsSentinel(t *testing.T) {
	_, err := ParseStatus("sturdy")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStatusSetKeyedByKind(t *testing.T) {
	set := NewStatusSet(Fortified(1), Guarded())
	set.Insert(Fortified(4))

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(Fortified(4)))
	assert.False(t, set.Contains(Fortified(1)))
	assert.True(t, set.Has(StatusGuarded))

	set.Remove(Fortified(9))
	assert.False(t, set.Has(StatusFortified))
}

func TestStatusSetListIsOrdered(t *testing.T) {
	set := NewStatusSet(Mending(2), Void(), Fortified(1), Empty())
	assert.Equal(t, []string{"void", "empty", "fortified:1", "mending:2"}, set.Strings())
}

func TestStatusSetEncoding(t *testing.T) {
	set := NewStatusSet(Stifled(2), Temporary(), Fortified(3))

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `["temporary","fortified:3","stifled:2"]`, string(data))

	var back StatusSet
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, set, back)

	out, err := yaml.Marshal(set)
	require.NoError(t, err)
	var fromYAML StatusSet
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, set, fromYAML)
}

func TestEffortText(t *testing.T) {
	for _, e := range []Effort{Uncommitted(), CommittedFor(CommitTurn, 2), CommittedFor(CommitEncounter, 5), CommittedFor(CommitRest, 0)} {
		text, err := e.MarshalText()
		require.NoError(t, err)

		var back Effort
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, e, back, string(text))
	}

	var e Effort
	assert.Error(t, e.UnmarshalText([]byte("forever")))
}
