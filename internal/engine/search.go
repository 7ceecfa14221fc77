package engine

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// questNames adapts a quest slice to fuzzy.Source.
type questNames []Quest

func (q questNames) Len() int            { return len(q) }
func (q questNames) String(i int) string { return strings.ToLower(q[i].Name) }

// SearchQuests fuzzy-matches query against quest names, best match first.
// An empty query returns quests unchanged.
func SearchQuests(quests []Quest, query string) []Quest {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return quests
	}
	matches := fuzzy.FindFrom(query, questNames(quests))
	out := make([]Quest, 0, len(matches))
	for _, m := range matches {
		out = append(out, quests[m.Index])
	}
	return out
}
