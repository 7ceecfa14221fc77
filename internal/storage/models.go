package storage

import "time"

// Hunter is the persisted profile. Stats holds one row per category; the
// engine decides which names are valid.
type Hunter struct {
	Name  string
	Gold  int
	Stats []StatXP
}

type StatXP struct {
	Name    string `json:"name"`
	TotalXP int    `json:"total_xp"`
}

type Quest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Stat        string `json:"stat"`
	Difficulty  string `json:"difficulty"`
	XPReward    int    `json:"xp_reward"`
	GoldReward  int    `json:"gold_reward"`
	Description string `json:"description"`
}

type QuestLog struct {
	ID          int64     `json:"id"`
	QuestID     string    `json:"quest_id"`
	QuestName   string    `json:"quest_name"`
	Stat        string    `json:"stat"`
	CompletedAt time.Time `json:"completed_at"`
	XPEarned    int       `json:"xp_earned"`
	GoldEarned  int       `json:"gold_earned"`
}

type CompletionTotals struct {
	Count int
	XP    int
	Gold  int
}
