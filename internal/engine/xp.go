package engine

import "fmt"

// levelThresholds[i] is the cumulative XP needed to be at least level i+1.
// The table length is the level cap.
var levelThresholds = [...]int{
	0,
	100, 250, 450, 700, 1000,
	1350, 1750, 2200, 2700, 3250,
	3850, 4500, 5200, 5950, 6750,
	7600, 8500, 9450, 10450, 11500,
	12600, 13750, 14950, 16200, 17500,
	18850, 20250, 21700, 23200, 24750,
	26350, 28000, 29700, 31450, 33250,
	35100, 37000, 38950, 40950, 43000,
	45100, 47250, 49450, 51700, 54000,
	56350, 58750, 61200, 63700, 65000,
}

// MaxLevel is the highest reachable level.
func MaxLevel() int { return len(levelThresholds) }

// Thresholds returns a copy of the level table.
func Thresholds() []int {
	out := make([]int, len(levelThresholds))
	copy(out, levelThresholds[:])
	return out
}

// LevelFor returns the level reached with xp cumulative experience. It is
// never below 1 and never above MaxLevel.
func LevelFor(xp int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if xp < threshold {
			break
		}
		level = i + 1
	}
	return level
}

// ThresholdFor returns the cumulative XP at which level starts.
// Levels outside [1, MaxLevel] are clamped.
func ThresholdFor(level int) int {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel() {
		level = MaxLevel()
	}
	return levelThresholds[level-1]
}

// XPToNextLevel returns the gap between xp and the next threshold, or 0 at the cap.
func XPToNextLevel(xp int) int {
	level := LevelFor(xp)
	if level >= MaxLevel() {
		return 0
	}
	return levelThresholds[level] - xp
}

// SuggestedRewards returns the standard xp/gold payout for a difficulty tier.
func SuggestedRewards(d Difficulty) (xp int, gold int, err error) {
	switch d {
	case DifficultyDaily:
		return 50, 10, nil
	case DifficultyEasy:
		return 100, 20, nil
	case DifficultyNormal:
		return 250, 50, nil
	case DifficultyHard:
		return 500, 150, nil
	case DifficultyEpic:
		return 1000, 400, nil
	case DifficultyLegendary:
		return 5000, 1000, nil
	default:
		return 0, 0, fmt.Errorf("invalid difficulty: %d", d)
	}
}
