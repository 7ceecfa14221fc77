package engine

import (
	"fmt"
	"strings"
)

// ParseCategory parses user or stored input to a Category.
// Supported: full names (any case) plus str, agi, int, spi, dom.
func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "strength", "str":
		return CategoryStrength, nil
	case "agility", "agi":
		return CategoryAgility, nil
	case "intelligence", "int":
		return CategoryIntelligence, nil
	case "spirit", "spi":
		return CategorySpirit, nil
	case "domain", "dom":
		return CategoryDomain, nil
	default:
		return 0, ValidationError{Field: "stat", Reason: fmt.Sprintf("unknown stat category %q", input)}
	}
}

// ParseDifficulty parses a difficulty tier name, case-insensitively, so both
// "DAILY" and the older "Daily" spelling load.
func ParseDifficulty(input string) (Difficulty, error) {
	s := strings.TrimSpace(strings.ToUpper(input))
	switch s {
	case "DAILY":
		return DifficultyDaily, nil
	case "EASY":
		return DifficultyEasy, nil
	case "NORMAL":
		return DifficultyNormal, nil
	case "HARD":
		return DifficultyHard, nil
	case "EPIC":
		return DifficultyEpic, nil
	case "LEGENDARY":
		return DifficultyLegendary, nil
	default:
		return 0, ValidationError{Field: "difficulty", Reason: fmt.Sprintf("unknown difficulty %q", input)}
	}
}

