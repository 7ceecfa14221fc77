package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hunterline/internal/storage"
)

// Quest is a reward definition. Completing it does not consume it.
type Quest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Stat        Category   `json:"stat"`
	Difficulty  Difficulty `json:"difficulty"`
	XPReward    int        `json:"xp_reward"`
	GoldReward  int        `json:"gold_reward"`
	Description string     `json:"description"`
}

// NewQuestID returns a random, globally unique quest identifier.
func NewQuestID() string {
	return uuid.NewString()
}

// validate enforces the business rules applied before a quest is persisted.
func (q Quest) validate() error {
	if strings.TrimSpace(q.Name) == "" {
		return ValidationError{Field: "name", Reason: "quest name cannot be empty"}
	}
	if !q.Stat.IsValid() {
		return ValidationError{Field: "stat", Reason: "invalid stat type for quest"}
	}
	if !q.Difficulty.IsValid() {
		return ValidationError{Field: "difficulty", Reason: "invalid difficulty for quest"}
	}
	if q.XPReward <= 0 {
		return ValidationError{Field: "xp_reward", Reason: "XP reward must be greater than zero"}
	}
	if q.GoldReward <= 0 {
		return ValidationError{Field: "gold_reward", Reason: "gold reward must be greater than zero"}
	}
	return nil
}

func (q Quest) record() storage.Quest {
	return storage.Quest{
		ID:          q.ID,
		Name:        q.Name,
		Stat:        q.Stat.String(),
		Difficulty:  q.Difficulty.String(),
		XPReward:    q.XPReward,
		GoldReward:  q.GoldReward,
		Description: q.Description,
	}
}

func questFromRecord(r storage.Quest) (Quest, error) {
	stat, err := ParseCategory(r.Stat)
	if err != nil {
		return Quest{}, fmt.Errorf("quest %s: %w", r.ID, err)
	}
	diff, err := ParseDifficulty(r.Difficulty)
	if err != nil {
		return Quest{}, fmt.Errorf("quest %s: %w", r.ID, err)
	}
	return Quest{
		ID:          r.ID,
		Name:        r.Name,
		Stat:        stat,
		Difficulty:  diff,
		XPReward:    r.XPReward,
		GoldReward:  r.GoldReward,
		Description: r.Description,
	}, nil
}

// QuestLog is one append-only completion record.
type QuestLog struct {
	ID          int64     `json:"id"`
	QuestID     string    `json:"quest_id"`
	QuestName   string    `json:"quest_name"`
	Stat        string    `json:"stat"`
	CompletedAt time.Time `json:"completed_at"`
	XPEarned    int       `json:"xp_earned"`
	GoldEarned  int       `json:"gold_earned"`
}

func questLogFromRecord(r storage.QuestLog) QuestLog {
	return QuestLog{
		ID:          r.ID,
		QuestID:     r.QuestID,
		QuestName:   r.QuestName,
		Stat:        r.Stat,
		CompletedAt: r.CompletedAt,
		XPEarned:    r.XPEarned,
		GoldEarned:  r.GoldEarned,
	}
}

type CompletionTotals struct {
	Count int `json:"count"`
	XP    int `json:"total_xp"`
	Gold  int `json:"total_gold"`
}
