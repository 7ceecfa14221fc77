package engine

// DefaultHunterName is used for the profile created on first read.
const DefaultHunterName = "Player"

// Hunter is the single player profile. stats is indexed by Category so every
// category is always present exactly once.
type Hunter struct {
	Name  string
	Gold  int
	stats [categoryCount]Stat
}

// NewHunter returns a Hunter with zero gold and every stat at zero XP.
func NewHunter(name string) *Hunter {
	h := &Hunter{Name: name}
	for _, c := range Categories() {
		h.stats[c.index()] = Stat{Category: c}
	}
	return h
}

// Stat returns the stat for c, or false for a category outside the fixed set.
func (h *Hunter) Stat(c Category) (*Stat, bool) {
	if !c.IsValid() {
		return nil, false
	}
	return &h.stats[c.index()], true
}

// StatByName resolves a category name (see ParseCategory) to its stat.
func (h *Hunter) StatByName(name string) (*Stat, bool) {
	c, err := ParseCategory(name)
	if err != nil {
		return nil, false
	}
	return h.Stat(c)
}

// Stats returns a copy of every stat in category order.
func (h *Hunter) Stats() []Stat {
	out := make([]Stat, 0, categoryCount)
	out = append(out, h.stats[:]...)
	return out
}

// GlobalXP is the sum of every stat's XP. It is recomputed on each call.
func (h *Hunter) GlobalXP() int {
	total := 0
	for _, s := range h.stats {
		total += s.TotalXP
	}
	return total
}

func (h *Hunter) GlobalLevel() int { return LevelFor(h.GlobalXP()) }

func (h *Hunter) GlobalXPToNextLevel() int { return XPToNextLevel(h.GlobalXP()) }

// AddGold rejects non-positive amounts without mutating.
func (h *Hunter) AddGold(amount int) error {
	if amount <= 0 {
		return ValidationError{Field: "gold", Reason: "cannot add negative or zero gold"}
	}
	h.Gold += amount
	return nil
}
