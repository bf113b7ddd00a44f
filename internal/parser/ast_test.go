package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/svarog/internal/parser"
)

func TestParseHealthCommands(t *testing.T) {
	tests := []struct {
		input   string
		keyword string
		amount  string
		target  string
	}{
		{"create 6", "create", "6", ""},
		{"chip 4 to: goblin", "chip", "4", "goblin"},
		{"HEAL 2d6+1 TO: knight", "heal", "2d6+1", "knight"},
		{"fortify 1 to: skeleton-2", "fortify", "1", "skeleton-2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := parser.Parse(tt.input)
			require.NoError(t, err)
			require.NotNil(t, cmd.Health)

			assert.Equal(t, tt.keyword, cmd.Keyword())
			assert.Equal(t, tt.amount, cmd.Health.Amount.Raw)
			assert.Equal(t, tt.target, parser.TargetName(cmd.Health.Target))
		})
	}
}

func TestParseStatusCommands(t *testing.T) {
	cmd, err := parser.Parse("add fortified 2 to: goblin")
	require.NoError(t, err)
	require.NotNil(t, cmd.Status)
	assert.Equal(t, "add", cmd.Keyword())
	assert.Equal(t, "fortified", cmd.Status.Status)
	require.NotNil(t, cmd.Status.Amount)
	assert.Equal(t, 2, *cmd.Status.Amount)
	assert.Equal(t, "goblin", cmd.Status.Target.Name)

	cmd, err = parser.Parse("add stifled:3")
	require.NoError(t, err)
	require.NotNil(t, cmd.Status.Amount)
	assert.Equal(t, 3, *cmd.Status.Amount)

	cmd, err = parser.Parse("remove guarded to: knight")
	require.NoError(t, err)
	assert.Equal(t, "remove", cmd.Keyword())
	assert.Nil(t, cmd.Status.Amount)
	assert.Equal(t, "knight", cmd.Status.Target.Name)
}

func TestParseScanCommands(t *testing.T) {
	for _, kw := range []string{"drain", "break", "mend", "shatter"} {
		t.Run(kw, func(t *testing.T) {
			cmd, err := parser.Parse(kw)
			require.NoError(t, err)
			require.NotNil(t, cmd.Scan)
			assert.Equal(t, kw, cmd.Keyword())
			assert.Nil(t, cmd.Scan.Target)

			cmd, err = parser.Parse(kw + " to: goblin")
			require.NoError(t, err)
			assert.Equal(t, "goblin", cmd.Scan.Target.Name)
		})
	}
}

func TestParseRosterCommands(t *testing.T) {
	cmd, err := parser.Parse("spawn grunk as: goblin")
	require.NoError(t, err)
	require.NotNil(t, cmd.Spawn)
	assert.Equal(t, "grunk", cmd.Spawn.Creature)
	assert.Equal(t, "goblin", cmd.Spawn.Template)

	cmd, err = parser.Parse("spawn hero")
	require.NoError(t, err)
	assert.Empty(t, cmd.Spawn.Template)

	cmd, err = parser.Parse("despawn hero")
	require.NoError(t, err)
	assert.Equal(t, "hero", cmd.Despawn.Creature)
}

func TestParseQueries(t *testing.T) {
	cmd, err := parser.Parse("roll 4d6kh3 by: hero")
	require.NoError(t, err)
	require.NotNil(t, cmd.Roll)
	assert.Equal(t, "4d6kh3", cmd.Roll.Dice.Raw)
	assert.Equal(t, "hero", cmd.Roll.Actor.Name)
	assert.False(t, cmd.Roll.Dice.IsFlat())

	cmd, err = parser.Parse("show")
	require.NoError(t, err)
	require.NotNil(t, cmd.Show)
	assert.Empty(t, cmd.Show.Creature)

	cmd, err = parser.Parse(`check "health.current > 3 && 'void' in health.dice[0].statuses" to: hero`)
	require.NoError(t, err)
	require.NotNil(t, cmd.Check)
	assert.Equal(t, "health.current > 3 && 'void' in health.dice[0].statuses", cmd.Check.Expression)
	assert.Equal(t, "hero", cmd.Check.Target.Name)

	cmd, err = parser.Parse("help chip")
	require.NoError(t, err)
	assert.Equal(t, "chip", cmd.Help.Command)
}

func TestParseErrors(t *testing.T) {
	_, err := parser.Parse("chip to: goblin")
	assert.ErrorIs(t, err, parser.ErrSyntax)
	assert.ErrorContains(t, err, "chip <amount> [to: <creature>]")

	_, err = parser.Parse("chp 3")
	assert.ErrorContains(t, err, "did you mean chip?")

	_, err = parser.Parse("")
	assert.ErrorIs(t, err, parser.ErrSyntax)
}

func TestSuggest(t *testing.T) {
	names := []string{"goblin", "knight", "skeleton"}
	assert.Equal(t, "goblin", parser.Suggest("gobin", names))
	assert.Equal(t, "knight", parser.Suggest("KNIGHT", names))
	assert.Equal(t, "", parser.Suggest("dragon", names))
	assert.Equal(t, "", parser.Suggest("", names))
}

func TestUsageCoversKeywords(t *testing.T) {
	for _, kw := range parser.Keywords() {
		_, ok := parser.Usage(kw)
		assert.True(t, ok, kw)
	}
}
