package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuests(t *testing.T) {
	quests := []Quest{
		{ID: "1", Name: "Morning Run"},
		{ID: "2", Name: "Leg Day"},
		{ID: "3", Name: "Read a Chapter"},
	}

	assert.Equal(t, quests, SearchQuests(quests, "  "))

	got := SearchQuests(quests, "LEG")
	require.NotEmpty(t, got)
	assert.Equal(t, "2", got[0].ID)

	got = SearchQuests(quests, "chap")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	assert.Empty(t, SearchQuests(quests, "zzz"))
}
