package engine

import "context"

// UpdateQuestInput carries the fields to change; nil fields keep their value.
type UpdateQuestInput struct {
	Name        *string
	Stat        *Category
	Difficulty  *Difficulty
	XPReward    *int
	GoldReward  *int
	Description *string
}

func (in UpdateQuestInput) apply(q *Quest) {
	if in.Name != nil {
		q.Name = *in.Name
	}
	if in.Stat != nil {
		q.Stat = *in.Stat
	}
	if in.Difficulty != nil {
		q.Difficulty = *in.Difficulty
	}
	if in.XPReward != nil {
		q.XPReward = *in.XPReward
	}
	if in.GoldReward != nil {
		q.GoldReward = *in.GoldReward
	}
	if in.Description != nil {
		q.Description = *in.Description
	}
}

// UpdateQuest merges in into the stored quest, validates the merged record
// and replaces it as a whole.
func (s *Service) UpdateQuest(ctx context.Context, id string, in UpdateQuestInput) (*Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.GetQuest(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(q)
	name, err := normalizeName(q.Name, "name")
	if err != nil {
		return nil, err
	}
	q.Name = name
	if err := q.validate(); err != nil {
		return nil, err
	}

	ok, err := s.quests.Update(ctx, q.record())
	if err != nil {
		return nil, persistErr("update quest", err)
	}
	if !ok {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}
	s.logger.Info("quest updated", "quest_id", q.ID)
	return q, nil
}
