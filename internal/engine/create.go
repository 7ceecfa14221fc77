package engine

import (
	"context"

	"hunterline/internal/storage"
)

type CreateQuestInput struct {
	Name        string
	Stat        Category
	Difficulty  Difficulty
	XPReward    int
	GoldReward  int
	Description string
}

// QuestDraft is quest input as it arrives from outside: enum names as text and
// optional rewards. Omitted rewards take the difficulty tier's suggestion.
type QuestDraft struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Stat        string `json:"stat" yaml:"stat" toml:"stat"`
	Difficulty  string `json:"difficulty" yaml:"difficulty" toml:"difficulty"`
	XPReward    *int   `json:"xp_reward" yaml:"xp_reward" toml:"xp_reward"`
	GoldReward  *int   `json:"gold_reward" yaml:"gold_reward" toml:"gold_reward"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Input resolves the draft into a CreateQuestInput. Rewards are not range
// checked here; CreateQuest does that.
func (d QuestDraft) Input() (CreateQuestInput, error) {
	stat, err := ParseCategory(d.Stat)
	if err != nil {
		return CreateQuestInput{}, err
	}
	diff, err := ParseDifficulty(d.Difficulty)
	if err != nil {
		return CreateQuestInput{}, err
	}
	xp, gold, err := SuggestedRewards(diff)
	if err != nil {
		return CreateQuestInput{}, err
	}
	if d.XPReward != nil {
		xp = *d.XPReward
	}
	if d.GoldReward != nil {
		gold = *d.GoldReward
	}
	return CreateQuestInput{
		Name:        d.Name,
		Stat:        stat,
		Difficulty:  diff,
		XPReward:    xp,
		GoldReward:  gold,
		Description: d.Description,
	}, nil
}

// CreateQuest validates the input, assigns a fresh id and stores the quest.
// Nothing is written when validation fails.
func (s *Service) CreateQuest(ctx context.Context, in CreateQuestInput) (*Quest, error) {
	name, err := normalizeName(in.Name, "name")
	if err != nil {
		return nil, err
	}
	q := Quest{
		ID:          s.newID(),
		Name:        name,
		Stat:        in.Stat,
		Difficulty:  in.Difficulty,
		XPReward:    in.XPReward,
		GoldReward:  in.GoldReward,
		Description: in.Description,
	}
	if err := q.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.quests.Insert(ctx, q.record()); err != nil {
		return nil, persistErr("insert quest", err)
	}
	s.logger.Info("quest created", "quest_id", q.ID, "name", q.Name, "stat", q.Stat.String(), "difficulty", q.Difficulty.String())
	return &q, nil
}

// GetQuest returns the quest with id or a NotFoundError.
func (s *Service) GetQuest(ctx context.Context, id string) (*Quest, error) {
	rec, err := s.quests.Get(ctx, id)
	if err != nil {
		return nil, persistErr("get quest", err)
	}
	if rec == nil {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}
	// A stored quest naming an unknown stat or tier is rejected, not guessed at.
	q, err := questFromRecord(*rec)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListQuests returns every quest, or only those targeting stat when stat is
// non-empty. An unknown stat yields an empty list, not an error.
func (s *Service) ListQuests(ctx context.Context, stat string) ([]Quest, error) {
	var (
		recs []storage.Quest
		err  error
	)
	if stat == "" {
		recs, err = s.quests.List(ctx)
	} else {
		c, perr := ParseCategory(stat)
		if perr != nil {
			return []Quest{}, nil
		}
		recs, err = s.quests.ListByStat(ctx, c.String())
	}
	if err != nil {
		return nil, persistErr("list quests", err)
	}

	out := make([]Quest, 0, len(recs))
	for _, r := range recs {
		q, err := questFromRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// DeleteQuest removes the quest and reports whether it existed. Deleting an
// absent id is not an error.
func (s *Service) DeleteQuest(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.quests.Delete(ctx, id)
	if err != nil {
		return false, persistErr("delete quest", err)
	}
	if ok {
		s.logger.Info("quest deleted", "quest_id", id)
	}
	return ok, nil
}
