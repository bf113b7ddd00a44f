package session

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/svarog/internal/engine"
	"github.com/suderio/svarog/internal/persistence"
)

func newSession(t *testing.T, store Store) *Session {
	t.Helper()
	s, err := NewSession(store, Options{DefaultTarget: "self"})
	require.NoError(t, err)
	return s
}

func TestSessionExecute(t *testing.T) {
	store := persistence.NewMemoryStore()
	s := newSession(t, store)

	_, err := s.ExecuteScript("spawn self; create 6; create 6")
	require.NoError(t, err)

	events, err := s.Execute("chip 10")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, []engine.Response{engine.ChipResponse(1, 4), engine.ChipResponse(0, 0)}, s.LastResponses())

	self, ok := s.State().Creature("self")
	require.True(t, ok)
	assert.Equal(t, 2, self.Health.Current())
	assert.Equal(t, 4, store.Len())
}

func TestSessionHintsAreNotPersisted(t *testing.T) {
	store := persistence.NewMemoryStore()
	s := newSession(t, store)

	_, err := s.ExecuteScript("spawn self; create 4")
	require.NoError(t, err)
	before := store.Len()

	events, err := s.Execute("show self")
	require.NoError(t, err)
	assert.Equal(t, engine.EventHint, events[0].Type())

	_, err = s.Execute(`check "health.current == 4"`)
	require.NoError(t, err)
	assert.Equal(t, before, store.Len())
	assert.Equal(t, []engine.Response{engine.CreateResponse(0)}, s.LastResponses())
}

func TestSessionRejectsUnknownCreature(t *testing.T) {
	s := newSession(t, persistence.NewMemoryStore())

	_, err := s.Execute("chip 3 to: nobody")
	assert.ErrorIs(t, err, ErrUnknownCreature)
}

func TestSessionCommandsAreAtomic(t *testing.T) {
	store := persistence.NewMemoryStore()
	s := newSession(t, store)

	_, err := s.Execute("spawn grunk as: goblin")
	require.NoError(t, err)
	count := store.Len()

	_, err = s.Execute("spawn grunk as: knight")
	assert.Error(t, err)
	assert.Equal(t, count, store.Len())

	grunk, _ := s.State().Creature("grunk")
	assert.Equal(t, 10, grunk.Health.Total())
}

func TestSessionRebuildFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")

	store, err := persistence.NewStore(path)
	require.NoError(t, err)
	s := newSession(t, store)

	engine.MockDice([]int{3, 4})
	defer engine.ResetMockDice()

	_, err = s.ExecuteScript(`
		spawn hero as: knight
		chip 2d6 to: hero
		add temporary to: hero
		break to: hero
	`)
	require.NoError(t, err)
	want := s.State().Clone()
	require.NoError(t, s.Close())

	store, err = persistence.NewStore(path)
	require.NoError(t, err)
	replayed := newSession(t, store)
	defer replayed.Close()

	assert.Equal(t, want, replayed.State())
	assert.Nil(t, replayed.LastResponses())
}

func TestSessionScriptStopsAtFirstError(t *testing.T) {
	s := newSession(t, persistence.NewMemoryStore())

	events, err := s.ExecuteScript("spawn self; create 4; chip banana; create 8")
	assert.ErrorContains(t, err, "command 3 (chip banana)")
	assert.Len(t, events, 2)

	self, _ := s.State().Creature("self")
	assert.Equal(t, 1, self.Health.Len())
}

func TestSessionLogsActions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := NewSession(persistence.NewMemoryStore(), Options{DefaultTarget: "self", Logger: logger})
	require.NoError(t, err)

	_, err = s.ExecuteScript("spawn self; create 6")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "health action")
	assert.Contains(t, buf.String(), "creature=self")
}
