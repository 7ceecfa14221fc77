package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hunterline/internal/engine"
	"hunterline/internal/ui"
)

// boardService is the slice of engine.Service the board drives.
type boardService interface {
	Hunter(ctx context.Context) (*engine.Hunter, error)
	ListQuests(ctx context.Context, stat string) ([]engine.Quest, error)
	CompleteQuest(ctx context.Context, id string) (*engine.CompleteResult, error)
}

type boardModel struct {
	ctx context.Context
	svc boardService

	width  int
	height int

	hunter *engine.Hunter
	quests []engine.Quest

	// filter indexes into filters(); 0 shows every quest.
	filter   int
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	hunter *engine.Hunter
	quests []engine.Quest
	err    error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc boardService) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func filters() []string {
	out := []string{""}
	for _, c := range engine.Categories() {
		out = append(out, c.String())
	}
	return out
}

func (m boardModel) filterName() string {
	if f := filters()[m.filter]; f != "" {
		return f
	}
	return "all"
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	stat := filters()[m.filter]
	return func() tea.Msg {
		h, err := m.svc.Hunter(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		quests, err := m.svc.ListQuests(m.ctx, stat)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{hunter: h, quests: quests}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.hunter = msg.hunter
		m.quests = msg.quests
		m.selected = max(0, min(m.selected, len(m.quests)-1))
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = completionLine(msg.res)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "f", "tab":
			m.filter = (m.filter + 1) % len(filters())
			m.selected = 0
			m.loading = true
			m.lastLog = "Filter: " + m.filterName()
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.quests)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.quests) {
				m.lastLog = "No quest selected."
				return m, nil
			}
			q := m.quests[m.selected]
			m.lastLog = fmt.Sprintf("Completing %s…", q.Name)
			return m, m.completeCmd(q.ID)
		}
	}
	return m, nil
}

func completionLine(res *engine.CompleteResult) string {
	line := fmt.Sprintf("%s: +%d %s XP, +%d gold (%s L%d → L%d)",
		res.QuestName, res.XPGained, res.Stat, res.GoldGained, res.Stat, res.LevelBefore, res.LevelAfter)
	if res.LeveledUp {
		line += " " + ui.BadgeLevelUp
	}
	if !res.Logged {
		line += " (not logged)"
	}
	return line
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 34
	if m.width > 0 {
		leftW = max(min(leftW, m.width/2), 20)
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.hunter == nil {
		return "Hunterline: loading…"
	}
	xp := m.hunter.GlobalXP()
	return fmt.Sprintf("Hunterline | %s | Level %d | XP %d %s | Gold %d",
		m.hunter.Name, m.hunter.GlobalLevel(), xp, ui.XPBar(xp, 30), m.hunter.Gold)
}

func (m boardModel) renderSidebar() string {
	if m.hunter == nil {
		return "Stats\n\nLoading…"
	}
	lines := []string{"Stats"}
	for _, s := range m.hunter.Stats() {
		lines = append(lines, fmt.Sprintf("- %-12s L%-2d %s", s.Name(), s.Level(), ui.XPBar(s.TotalXP, 12)))
	}
	lines = append(lines,
		"",
		"Keys",
		"- ↑/↓ or j/k: move",
		"- c/space: complete",
		"- f/tab: filter by stat",
		"- r: refresh",
		"- q: quit",
	)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	out := []string{fmt.Sprintf("Quests (%s)", m.filterName())}
	if len(m.quests) == 0 {
		out = append(out, "(no quests)")
		return strings.Join(out, "\n")
	}
	for i, q := range m.quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s%s [%s] %s +%dxp +%dg",
			cursor, q.Name, q.Stat, q.Difficulty, q.XPReward, q.GoldReward))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
