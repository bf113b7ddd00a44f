package scenario

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	r := &Runner{}
	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			res, err := r.RunFile(context.Background(), f)
			require.NoError(t, err)
			assert.NoError(t, res.Error())
			assert.True(t, res.Passed())
		})
	}
}

func TestRunReportsFailures(t *testing.T) {
	sc, err := Parse([]byte(`
name: wrong expectations
target: self
creatures:
  self: ""
steps:
  - do: create 4
    expect: ["health.current == 5", "health.current == 4"]
  - do: chip banana
  - do: heal 1
    expect: ["health.current +"]
`))
	require.NoError(t, err)

	res, err := (&Runner{}).Run(context.Background(), sc)
	require.NoError(t, err)
	assert.False(t, res.Passed())
	require.Len(t, res.Failures, 3)

	assert.Equal(t, Failure{Step: 1, Command: "create 4", Expression: "health.current == 5", Reason: "false"}, res.Failures[0])
	assert.Equal(t, 2, res.Failures[1].Step)
	assert.Contains(t, res.Failures[2].Reason, "CEL compile error")
	assert.ErrorContains(t, res.Error(), "step 1 (create 4): expected health.current == 5: false")
}

func TestRunUsesRollFunc(t *testing.T) {
	sc, err := Parse([]byte(`
name: rolls
target: self
creatures:
  self: ""
steps:
  - do: create 8
    expect: ["roll('1d20') == 20"]
`))
	require.NoError(t, err)

	res, err := (&Runner{RollFunc: func(string) int { return 20 }}).Run(context.Background(), sc)
	require.NoError(t, err)
	assert.True(t, res.Passed())
}

func TestRunSetupErrors(t *testing.T) {
	sc, err := Parse([]byte("name: x\ncreatures:\n  a: dragon\nsteps:\n  - do: show\n"))
	require.NoError(t, err)

	_, err = (&Runner{}).Run(context.Background(), sc)
	assert.ErrorContains(t, err, "setup")
}

func TestRunHonoursContext(t *testing.T) {
	sc, err := Parse([]byte("name: x\nsteps:\n  - do: show\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&Runner{}).Run(ctx, sc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseValidates(t *testing.T) {
	_, err := Parse([]byte("name: empty\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("steps:\n  - do: show\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("name: x\nsteps:\n  - expect: [true]\n"))
	assert.Error(t, err)
}

func TestCreatureIDsSorted(t *testing.T) {
	sc := &Scenario{Creatures: map[string]string{"zed": "", "amy": "goblin", "bob": ""}}
	assert.Equal(t, []string{"amy", "bob", "zed"}, sc.CreatureIDs())
}
