package engine

import "context"

// Achievement is a milestone derived from the profile and quest log totals.
// Nothing about achievements is stored; they are recomputed on every read.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

type achievementChecker struct {
	hunter *Hunter
	totals CompletionTotals
}

// Achievements lists every milestone with its earned flag, in a fixed order.
func Achievements(h *Hunter, totals CompletionTotals) []Achievement {
	c := achievementChecker{hunter: h, totals: totals}
	return []Achievement{
		// Hunter level milestones
		c.level("awakened", "Awakened", "Reach Hunter level 2", "🌱", 2),
		c.level("rising", "Rising Hunter", "Reach Hunter level 5", "🌿", 5),
		c.level("seasoned", "Seasoned", "Reach Hunter level 10", "⭐", 10),
		c.level("veteran", "Veteran", "Reach Hunter level 20", "🌟", 20),
		c.level("monarch", "Monarch", "Reach the level cap", "💫", MaxLevel()),

		// Completion milestones
		c.completions("first_quest", "First Quest", "Complete 1 quest", "✓", 1),
		c.completions("productive", "Productive", "Complete 10 quests", "📋", 10),
		c.completions("relentless", "Relentless", "Complete 100 quests", "🏅", 100),

		// Stat milestones
		c.stat("strong", "Strong", "Strength level 5", "💪", CategoryStrength, 5),
		c.stat("swift", "Swift", "Agility level 5", "🏃", CategoryAgility, 5),
		c.stat("sharp", "Sharp", "Intelligence level 5", "🧠", CategoryIntelligence, 5),
		c.stat("serene", "Serene", "Spirit level 5", "🧘", CategorySpirit, 5),
		c.stat("sovereign", "Sovereign", "Domain level 5", "👑", CategoryDomain, 5),
		c.balanced("balanced", "Balanced", "Every stat at level 3", "☯️", 3),

		// Gold
		c.gold("hoarder", "Hoarder", "Hold 1000 gold", "🪙", 1000),
	}
}

// CountEarned returns how many achievements in list are earned.
func CountEarned(list []Achievement) int {
	n := 0
	for _, a := range list {
		if a.Earned {
			n++
		}
	}
	return n
}

func (c achievementChecker) level(id, name, desc, icon string, level int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.hunter.GlobalLevel() >= level}
}

func (c achievementChecker) completions(id, name, desc, icon string, count int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.totals.Count >= count}
}

func (c achievementChecker) stat(id, name, desc, icon string, cat Category, level int) Achievement {
	earned := false
	if s, ok := c.hunter.Stat(cat); ok {
		earned = s.Level() >= level
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c achievementChecker) balanced(id, name, desc, icon string, level int) Achievement {
	earned := true
	for _, s := range c.hunter.Stats() {
		if s.Level() < level {
			earned = false
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c achievementChecker) gold(id, name, desc, icon string, amount int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.hunter.Gold >= amount}
}

// Achievements loads the profile and log totals and evaluates every milestone.
func (s *Service) Achievements(ctx context.Context) ([]Achievement, error) {
	h, err := s.Hunter(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.CompletionTotals(ctx)
	if err != nil {
		return nil, err
	}
	return Achievements(h, totals), nil
}
