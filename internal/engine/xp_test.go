package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelTableShape(t *testing.T) {
	th := Thresholds()
	require.Len(t, th, MaxLevel())
	assert.Equal(t, 51, MaxLevel())
	assert.Equal(t, 0, th[0])
	for i := 1; i < len(th); i++ {
		assert.Greater(t, th[i], th[i-1], "threshold %d not increasing", i)
	}

	th[0] = 999
	assert.Equal(t, 0, Thresholds()[0], "Thresholds must return a copy")
}

func TestLevelForBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{-10, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{450, 4},
		{699, 4},
		{700, 5},
		{63700, 50},
		{64999, 50},
		{65000, 51},
		{1_000_000, 51},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFor(tc.xp), "LevelFor(%d)", tc.xp)
	}
}

func TestLevelForIsMonotonic(t *testing.T) {
	prev := LevelFor(0)
	for xp := 0; xp <= 70_000; xp += 7 {
		got := LevelFor(xp)
		require.GreaterOrEqual(t, got, 1)
		require.GreaterOrEqual(t, got, prev, "LevelFor(%d) decreased", xp)
		prev = got
	}
}

func TestXPToNextLevel(t *testing.T) {
	assert.Equal(t, 100, XPToNextLevel(0))
	assert.Equal(t, 1, XPToNextLevel(99))
	assert.Equal(t, 150, XPToNextLevel(100))
	assert.Equal(t, 0, XPToNextLevel(65000))
	assert.Equal(t, 0, XPToNextLevel(90000))
}

func TestThresholdForClamps(t *testing.T) {
	assert.Equal(t, 0, ThresholdFor(0))
	assert.Equal(t, 0, ThresholdFor(1))
	assert.Equal(t, 450, ThresholdFor(4))
	assert.Equal(t, 65000, ThresholdFor(MaxLevel()+3))
}

func TestSuggestedRewards(t *testing.T) {
	for _, d := range Difficulties() {
		xp, gold, err := SuggestedRewards(d)
		require.NoError(t, err, d.String())
		assert.Positive(t, xp)
		assert.Positive(t, gold)
	}
	xp, gold, err := SuggestedRewards(DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, 500, xp)
	assert.Equal(t, 150, gold)

	_, _, err = SuggestedRewards(Difficulty(0))
	assert.Error(t, err)
}

func TestParseCategoryAndDifficulty(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCategory("  agi ")
	require.NoError(t, err)
	assert.Equal(t, CategoryAgility, got)

	_, err = ParseCategory("Charisma")
	assert.True(t, IsValidation(err))

	for _, d := range Difficulties() {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	legacy, err := ParseDifficulty("Daily")
	require.NoError(t, err)
	assert.Equal(t, DifficultyDaily, legacy)

	_, err = ParseDifficulty("Mythic")
	assert.True(t, IsValidation(err))
}

func TestEnumTextMarshalling(t *testing.T) {
	b, err := CategorySpirit.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Spirit", string(b))

	var c Category
	require.NoError(t, c.UnmarshalText([]byte("domain")))
	assert.Equal(t, CategoryDomain, c)

	_, err = Category(0).MarshalText()
	assert.Error(t, err)

	var d Difficulty
	require.NoError(t, d.UnmarshalText([]byte("legendary")))
	assert.Equal(t, DifficultyLegendary, d)
	assert.Error(t, d.UnmarshalText([]byte("impossible")))
}
