package engine

import (
	"context"
	"fmt"

	"hunterline/internal/storage"
)

type CompleteResult struct {
	QuestID   string   `json:"quest_id"`
	QuestName string   `json:"quest_name"`
	Stat      Category `json:"stat"`

	XPGained   int `json:"xp_gained"`
	GoldGained int `json:"gold_gained"`

	LevelBefore int  `json:"level_before"`
	LevelAfter  int  `json:"level_after"`
	LeveledUp   bool `json:"leveled_up"`

	GlobalLevelBefore int `json:"global_level_before"`
	GlobalLevelAfter  int `json:"global_level_after"`

	TotalGold int `json:"total_gold"`

	// Logged is false when the profile was saved but the quest log entry
	// could not be appended.
	Logged bool `json:"logged"`
}

// CompleteQuest applies the quest's rewards to the Hunter and saves the whole
// profile in one write.
//
// A missing quest or an unresolvable stat fails before anything is mutated.
// A failed save returns a *PersistError and no result: the stored profile is
// left as it was.
func (s *Service) CompleteQuest(ctx context.Context, id string) (*CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, err
	}

	q, err := s.GetQuest(ctx, id)
	if err != nil {
		return nil, err
	}

	stat, ok := h.Stat(q.Stat)
	if !ok {
		return nil, ValidationError{Field: "stat", Reason: fmt.Sprintf("quest %s targets unknown stat %s", q.ID, q.Stat)}
	}

	globalBefore := h.GlobalLevel()
	gain, err := stat.AddXP(q.XPReward)
	if err != nil {
		return nil, fmt.Errorf("quest %s: %w", q.ID, err)
	}
	// Stored quests are not validated by the store; a zero gold reward simply pays nothing.
	if q.GoldReward > 0 {
		if err := h.AddGold(q.GoldReward); err != nil {
			return nil, err
		}
	}

	if err := s.profiles.Save(ctx, h); err != nil {
		s.logger.Error("quest completion not saved", "quest_id", q.ID, "error", err)
		return nil, err
	}

	res := &CompleteResult{
		QuestID:           q.ID,
		QuestName:         q.Name,
		Stat:              q.Stat,
		XPGained:          gain.Added,
		GoldGained:        max(q.GoldReward, 0),
		LevelBefore:       gain.LevelBefore,
		LevelAfter:        gain.LevelAfter,
		LeveledUp:         gain.LeveledUp(),
		GlobalLevelBefore: globalBefore,
		GlobalLevelAfter:  h.GlobalLevel(),
		TotalGold:         h.Gold,
	}

	s.logger.Info("quest completed",
		"quest_id", q.ID,
		"stat", q.Stat.String(),
		"xp", res.XPGained,
		"gold", res.GoldGained,
	)
	if res.LeveledUp {
		s.logger.Info("level up", "stat", q.Stat.String(), "from", res.LevelBefore, "to", res.LevelAfter)
	}

	if _, err := s.log.Append(ctx, storage.QuestLog{
		QuestID:     q.ID,
		QuestName:   q.Name,
		Stat:        q.Stat.String(),
		CompletedAt: s.now(),
		XPEarned:    res.XPGained,
		GoldEarned:  res.GoldGained,
	}); err != nil {
		s.logger.Warn("quest log append failed", "quest_id", q.ID, "error", err)
	} else {
		res.Logged = true
	}

	return res, nil
}
