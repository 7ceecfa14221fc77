package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hunterline/internal/engine"
)

// Hunterline theme shared by the CLI and the board.

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconGold    = "🪙"
	IconTrash   = "🗑️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cEpic    = lipgloss.Color("135") // purple
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Epic  = lipgloss.NewStyle().Bold(true).Foreground(cEpic)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatIcon(c engine.Category) string {
	switch c {
	case engine.CategoryStrength:
		return "💪"
	case engine.CategoryAgility:
		return "🏃"
	case engine.CategoryIntelligence:
		return "🧠"
	case engine.CategorySpirit:
		return "🧘"
	case engine.CategoryDomain:
		return "👑"
	default:
		return IconQuest
	}
}

// DifficultyText colours a tier from muted (DAILY) up to gold (LEGENDARY).
func DifficultyText(d engine.Difficulty) string {
	switch d {
	case engine.DifficultyDaily, engine.DifficultyEasy:
		return Muted.Render(d.String())
	case engine.DifficultyNormal:
		return Good.Render(d.String())
	case engine.DifficultyHard:
		return Warn.Render(d.String())
	case engine.DifficultyEpic:
		return Epic.Render(d.String())
	case engine.DifficultyLegendary:
		return Gold.Render(d.String())
	default:
		return Bad.Render(d.String())
	}
}

// LevelProgress returns how far xp is into its current level and the width of
// that level. At the cap both are zero.
func LevelProgress(xp int) (into, span int) {
	lvl := engine.LevelFor(xp)
	if lvl >= engine.MaxLevel() {
		return 0, 0
	}
	cur := engine.ThresholdFor(lvl)
	return xp - cur, engine.ThresholdFor(lvl+1) - cur
}

// ProgressBar renders an ASCII bar; a zero span renders full.
func ProgressBar(value int, total int, width int) string {
	if width <= 3 {
		width = 3
	}
	if total <= 0 {
		return "[" + strings.Repeat("#", width) + "]"
	}
	value = max(0, min(value, total))
	filled := min(int(float64(value)/float64(total)*float64(width)), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// XPBar is ProgressBar over the current level of xp.
func XPBar(xp int, width int) string {
	into, span := LevelProgress(xp)
	return ProgressBar(into, span, width)
}
