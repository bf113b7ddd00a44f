package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollBasic(t *testing.T) {
	res, err := Roll("3d6")
	require.NoError(t, err)
	require.Len(t, res.RawRolls, 3)

	for _, v := range res.RawRolls {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestRollPlainInteger(t *testing.T) {
	res, err := Roll(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, res.Total)
	assert.True(t, res.IsFlat())
}

func TestRollAdvantage(t *testing.T) {
	MockDice([]int{4, 17})
	defer ResetMockDice()

	res, err := Roll("1d20a")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 17}, res.RawRolls)
	assert.Equal(t, []int{17}, res.Kept)
	assert.Equal(t, []int{4}, res.Dropped)
	assert.Equal(t, 17, res.Total)
}

func TestRollDisadvantage(t *testing.T) {
	MockDice([]int{4, 17})
	defer ResetMockDice()

	res, err := Roll("1d20d")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
}

func TestRollModifier(t *testing.T) {
	res, err := Roll("1d1+5")
	require.NoError(t, err)
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, 5, res.Modifier)
}

func TestRollKeepDrop(t *testing.T) {
	MockDice([]int{3, 6, 1, 5})
	defer ResetMockDice()

	res, err := Roll("4d6kh3")
	require.NoError(t, err)
	assert.Len(t, res.RawRolls, 4)
	assert.Equal(t, []int{6, 5, 3}, res.Kept)
	assert.Equal(t, []int{1}, res.Dropped)
	assert.Equal(t, 14, res.Total)
}

func TestRollInvalid(t *testing.T) {
	for _, expr := range []string{"", "d", "2x6", "0d6", "1d0", "1001d6", "999999999d6", "fortified"} {
		t.Run(expr, func(t *testing.T) {
			_, err := Roll(expr)
			assert.ErrorIs(t, err, ErrInvalidDice)
		})
	}
}
