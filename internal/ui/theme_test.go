package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hunterline/internal/engine"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[-----]", ProgressBar(0, 10, 5))
	assert.Equal(t, "[##---]", ProgressBar(4, 10, 5))
	assert.Equal(t, "[#####]", ProgressBar(99, 10, 5))
	assert.Equal(t, "[-----]", ProgressBar(-3, 10, 5))
	assert.Equal(t, "[###]", ProgressBar(1, 0, 1))
}

func TestLevelProgress(t *testing.T) {
	into, span := LevelProgress(0)
	assert.Equal(t, 0, into)
	assert.Equal(t, 100, span)

	into, span = LevelProgress(300)
	assert.Equal(t, 50, into)
	assert.Equal(t, 200, span)

	into, span = LevelProgress(engine.ThresholdFor(engine.MaxLevel()) + 10)
	assert.Zero(t, into)
	assert.Zero(t, span)
}

func TestStatIconCoversEveryCategory(t *testing.T) {
	for _, c := range engine.Categories() {
		assert.NotEqual(t, IconQuest, StatIcon(c), c.String())
	}
}
