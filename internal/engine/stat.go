package engine

// Stat is an experience accumulator for one category. It is owned by a Hunter.
type Stat struct {
	Category Category
	TotalXP  int
}

func (s Stat) Name() string { return s.Category.String() }

func (s Stat) Level() int { return LevelFor(s.TotalXP) }

// XPToNextLevel is 0 once the stat is at the level cap.
func (s Stat) XPToNextLevel() int { return XPToNextLevel(s.TotalXP) }

// XPGain describes one AddXP call. Callers detect a level up by comparing
// LevelBefore and LevelAfter.
type XPGain struct {
	Added       int
	NewTotal    int
	LevelBefore int
	LevelAfter  int
}

func (g XPGain) LeveledUp() bool { return g.LevelAfter > g.LevelBefore }

// AddXP adds amount to the stat. Non-positive amounts are rejected and leave
// the stat untouched.
func (s *Stat) AddXP(amount int) (XPGain, error) {
	if amount <= 0 {
		return XPGain{}, ValidationError{Field: "xp", Reason: "cannot add negative or zero XP"}
	}
	before := s.Level()
	s.TotalXP += amount
	return XPGain{
		Added:       amount,
		NewTotal:    s.TotalXP,
		LevelBefore: before,
		LevelAfter:  s.Level(),
	}, nil
}
