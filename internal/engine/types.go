package engine

import "fmt"

// Category is one of the five fixed skill categories a Hunter levels up.
type Category uint8

const (
	CategoryStrength Category = iota + 1
	CategoryAgility
	CategoryIntelligence
	CategorySpirit
	CategoryDomain
)

const categoryCount = 5

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryStrength, CategoryAgility, CategoryIntelligence, CategorySpirit, CategoryDomain}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStrength, CategoryAgility, CategoryIntelligence, CategorySpirit, CategoryDomain:
		return true
	default:
		return false
	}
}

// String returns the storage/wire spelling of the category.
func (c Category) String() string {
	switch c {
	case CategoryStrength:
		return "Strength"
	case CategoryAgility:
		return "Agility"
	case CategoryIntelligence:
		return "Intelligence"
	case CategorySpirit:
		return "Spirit"
	case CategoryDomain:
		return "Domain"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

func (c Category) index() int { return int(c) - 1 }

func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid category: %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Difficulty is the quest tier. Order matters: DAILY is the lowest tier.
type Difficulty uint8

const (
	DifficultyDaily Difficulty = iota + 1
	DifficultyEasy
	DifficultyNormal
	DifficultyHard
	DifficultyEpic
	DifficultyLegendary
)

func Difficulties() []Difficulty {
	return []Difficulty{DifficultyDaily, DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyEpic, DifficultyLegendary}
}

func (d Difficulty) IsValid() bool {
	return d >= DifficultyDaily && d <= DifficultyLegendary
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyDaily:
		return "DAILY"
	case DifficultyEasy:
		return "EASY"
	case DifficultyNormal:
		return "NORMAL"
	case DifficultyHard:
		return "HARD"
	case DifficultyEpic:
		return "EPIC"
	case DifficultyLegendary:
		return "LEGENDARY"
	default:
		return fmt.Sprintf("Difficulty(%d)", uint8(d))
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid difficulty: %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
