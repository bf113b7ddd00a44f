package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/svarog/internal/persistence"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCampaignCreateLoadExport(t *testing.T) {
	worlds := t.TempDir()

	out, err := run(t, "--worlds-dir", worlds, "campaign", "create", "eberron", "sharn")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(worlds, "eberron", "sharn", "log.jsonl"))

	app, err := openSession("eberron", "sharn")
	require.NoError(t, err)
	_, err = app.ExecuteScript("spawn grunk as: goblin; chip 2 to: grunk")
	require.NoError(t, err)
	require.NoError(t, app.Close())

	out, err = run(t, "--worlds-dir", worlds, "campaign", "load", "eberron", "sharn")
	require.NoError(t, err)
	assert.Contains(t, out, "Creatures: 1")
	assert.Contains(t, out, "grunk (Goblin) 8/10")

	snap := filepath.Join(t.TempDir(), "table.yaml")
	_, err = run(t, "--worlds-dir", worlds, "campaign", "export", "eberron", "sharn", snap)
	require.NoError(t, err)
	loaded, err := persistence.LoadSnapshot(snap)
	require.NoError(t, err)
	require.Len(t, loaded.Creatures, 1)
	assert.Equal(t, 8, loaded.Creatures[0].Health.Current())

	out, err = run(t, "--worlds-dir", worlds, "campaign", "list", "eberron")
	require.NoError(t, err)
	assert.Equal(t, "sharn\n", out)
}

func TestCampaignLoadMissing(t *testing.T) {
	_, err := run(t, "--worlds-dir", t.TempDir(), "campaign", "load", "nowhere", "nothing")
	assert.ErrorIs(t, err, persistence.ErrCampaignNotFound)
}

func TestRunPlain(t *testing.T) {
	worlds := t.TempDir()
	_, err := run(t, "--worlds-dir", worlds, "campaign", "create", "w", "c")
	require.NoError(t, err)

	app, err := openSession("w", "c")
	require.NoError(t, err)
	defer app.Close()

	in := strings.NewReader("spawn self\ncreate 6; chip 2\nchip banana\nexit\ncreate 4\n")
	var out bytes.Buffer
	require.NoError(t, runPlain(app, in, &out))

	assert.Contains(t, out.String(), "Error:")
	self, ok := app.State().Creature("self")
	require.True(t, ok)
	assert.Equal(t, 1, self.Health.Len())
	assert.Equal(t, 4, self.Health.Current())
}

func TestScenarioRun(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
name: wrong math
target: self
creatures:
  self: ""
steps:
  - do: create 6
    expect:
      - "health.current == 5"
`), 0644))

	out, err := run(t, "--worlds-dir", t.TempDir(), "scenario", "run", "-q", "../internal/scenario/testdata/spill.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed")

	out, err = run(t, "--worlds-dir", t.TempDir(), "scenario", "run", "-q", bad)
	assert.Error(t, err)
	assert.Contains(t, out, "health.current == 5")
	assert.Contains(t, out, "0 passed, 1 failed")
}

func TestCompletions(t *testing.T) {
	creatures := []string{"goblin", "grunk", "self"}
	templates := []string{"goblin", "knight", "skeleton"}

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"ch", []string{"chip ", "check "}},
		{"chip 3 to: g", []string{"chip 3 to: goblin", "chip 3 to: grunk"}},
		{"roll 1d20 by: se", []string{"roll 1d20 by: self"}},
		{"spawn orc as: k", []string{"spawn orc as: knight"}},
		{"add fo", []string{"add fortified "}},
		{"add fortified:1 ", nil},
		{"chip 3 ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, completions(tt.in, creatures, templates))
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
