package api

import "hunterline/internal/engine"

type statView struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	TotalXP       int    `json:"total_xp"`
	XPToNextLevel int    `json:"xp_to_next_level"`
}

type hunterView struct {
	Name          string     `json:"name"`
	Gold          int        `json:"gold"`
	GlobalLevel   int        `json:"global_level"`
	GlobalXP      int        `json:"global_xp"`
	XPToNextLevel int        `json:"xp_to_next_level"`
	Stats         []statView `json:"stats"`
}

func newHunterView(h *engine.Hunter) hunterView {
	v := hunterView{
		Name:          h.Name,
		Gold:          h.Gold,
		GlobalLevel:   h.GlobalLevel(),
		GlobalXP:      h.GlobalXP(),
		XPToNextLevel: h.GlobalXPToNextLevel(),
	}
	for _, s := range h.Stats() {
		v.Stats = append(v.Stats, statView{
			Name:          s.Name(),
			Level:         s.Level(),
			TotalXP:       s.TotalXP,
			XPToNextLevel: s.XPToNextLevel(),
		})
	}
	return v
}

type questListView struct {
	Total      int            `json:"total"`
	StatFilter string         `json:"stat_filter,omitempty"`
	Query      string         `json:"query,omitempty"`
	Quests     []engine.Quest `json:"quests"`
}

type completionView struct {
	QuestID     string          `json:"quest_id"`
	QuestName   string          `json:"quest_name"`
	Rewards     rewardsView     `json:"rewards"`
	Progression progressionView `json:"progression"`
	Hunter      statusView      `json:"hunter_status"`
	Logged      bool            `json:"logged"`
}

type rewardsView struct {
	XPGained     int    `json:"xp_gained"`
	GoldGained   int    `json:"gold_gained"`
	StatAffected string `json:"stat_affected"`
}

type progressionView struct {
	StatLevelBefore   int  `json:"stat_level_before"`
	StatLevelAfter    int  `json:"stat_level_after"`
	LeveledUp         bool `json:"leveled_up"`
	GlobalLevelBefore int  `json:"global_level_before"`
	GlobalLevelAfter  int  `json:"global_level_after"`
}

type statusView struct {
	TotalGold   int `json:"total_gold"`
	GlobalLevel int `json:"global_level"`
}

func newCompletionView(res *engine.CompleteResult) completionView {
	return completionView{
		QuestID:   res.QuestID,
		QuestName: res.QuestName,
		Rewards: rewardsView{
			XPGained:     res.XPGained,
			GoldGained:   res.GoldGained,
			StatAffected: res.Stat.String(),
		},
		Progression: progressionView{
			StatLevelBefore:   res.LevelBefore,
			StatLevelAfter:    res.LevelAfter,
			LeveledUp:         res.LeveledUp,
			GlobalLevelBefore: res.GlobalLevelBefore,
			GlobalLevelAfter:  res.GlobalLevelAfter,
		},
		Hunter: statusView{
			TotalGold:   res.TotalGold,
			GlobalLevel: res.GlobalLevelAfter,
		},
		Logged: res.Logged,
	}
}

type logView struct {
	Entries []engine.QuestLog       `json:"entries"`
	Totals  engine.CompletionTotals `json:"totals"`
}

type achievementsView struct {
	Earned       int                  `json:"earned"`
	Total        int                  `json:"total"`
	Achievements []engine.Achievement `json:"achievements"`
}
