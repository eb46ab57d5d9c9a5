package tui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Conner685/Comp2522TermProject/internal/registry"
	"github.com/Conner685/Comp2522TermProject/internal/storage"
)

const (
	maxScores          = 100 // Rows loaded per game
	statsPanelWidth    = 26
	minWidthForPanel   = statsPanelWidth + 50
	scoreboardChrome   = 10 // Lines used by title, tabs, help and borders
	dateLayout         = "Jan 02 15:04"
	defaultScoreHeader = "Score"
)

// scoreUnits names what each game's score counts.
var scoreUnits = map[string]string{
	"vortex":  "Seconds",
	"numbers": "Placed",
	"trivia":  "Points",
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbEmptyStyle  = sbDimStyle.Italic(true).Padding(1, 2)
	sbLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sbNumberStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the saved scores of one game at a time, with its
// totals beside them. A game's console key switches straight to it.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     storage.Store // May be nil
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first game.
func NewScoreboardModel(store storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.selectGame(0)
	return m
}

// gameID returns the id of the game on show, or "" with no games.
func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// unit returns the score column header for the game on show.
func (m ScoreboardModel) unit() string {
	if u, ok := scoreUnits[m.gameID()]; ok {
		return u
	}
	return defaultScoreHeader
}

// selectGame switches to game i, wrapping around, and reloads its scores.
func (m *ScoreboardModel) selectGame(i int) {
	if n := len(m.games); n > 0 {
		m.current = (i%n + n) % n
	}

	m.scores, m.stats = nil, nil
	if id := m.gameID(); id != "" && m.store != nil {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.rebuildTable()
}

// rebuildTable sizes the table to the window and fills it.
func (m *ScoreboardModel) rebuildTable() {
	avail := m.width - 6
	if m.width >= minWidthForPanel {
		avail -= statsPanelWidth + 2
	}
	dateWidth := min(max(avail-18, len(dateLayout)), 20)

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		date := "-"
		if !s.CreatedAt.IsZero() {
			date = s.CreatedAt.Format(dateLayout)
		}
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprint(s.Score), date}
	}

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: m.unit(), Width: 10},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table.SetStyles(s)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if i, ok := m.gameForKey(msg); ok {
			m.selectGame(i)
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.selectGame(m.current + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.selectGame(m.current - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// gameForKey maps a game's console key to its index.
func (m ScoreboardModel) gameForKey(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r := unicode.ToLower([]rune(s)[0])
	for i, g := range m.games {
		if g.Key != 0 && unicode.ToLower(g.Key) == r {
			return i, true
		}
	}
	return 0, false
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render("H I G H   S C O R E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	scores := sbBoxStyle.Render(m.renderTable())
	if m.width >= minWidthForPanel {
		panel := sbBoxStyle.Width(statsPanelWidth).Render(m.renderStats())
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, scores, "  ", panel), m.width))
	} else {
		b.WriteString(centerText(scores, m.width))
		if line := m.statsLine(); line != "" {
			b.WriteString("\n")
			b.WriteString(centerText(sbLabelStyle.Render(line), m.width))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(sbDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs lists every game with its key, highlighting the current one.
func (m ScoreboardModel) renderTabs() string {
	if len(m.games) == 0 {
		return sbDimStyle.Render("No games registered")
	}
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		label := g.Title
		if g.Key != 0 {
			label = fmt.Sprintf("[%c] %s", unicode.ToUpper(g.Key), g.Title)
		}
		if i == m.current {
			tabs[i] = sbActiveTab.Render(label)
		} else {
			tabs[i] = sbTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTable renders the score table or a placeholder.
func (m ScoreboardModel) renderTable() string {
	if len(m.scores) == 0 {
		return sbEmptyStyle.Render("No Scores!\nFinish a game to set one.")
	}
	return m.table.View()
}

// renderStats renders the totals panel for the current game.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return sbDimStyle.Render("No games played")
	}
	row := func(label, value string) string {
		return sbLabelStyle.Render(fmt.Sprintf("%-12s", label)) + sbNumberStyle.Render(value)
	}
	lines := []string{
		row("Games", fmt.Sprint(m.stats.GamesCount)),
		row("Best", fmt.Sprintf("%d %s", m.stats.HighScore, strings.ToLower(m.unit()))),
		row("Average", fmt.Sprintf("%.1f", m.stats.AvgScore)),
		row("Total", fmt.Sprint(m.stats.TotalScore)),
	}
	if !m.stats.LastPlayed.IsZero() {
		lines = append(lines, row("Last played", m.stats.LastPlayed.Format(dateLayout)))
	}
	return strings.Join(lines, "\n")
}

// statsLine is the one-line form of the totals for narrow terminals.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	line := fmt.Sprintf("Games: %d   Best: %d   Average: %.1f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		line += "   Last played: " + m.stats.LastPlayed.Format(dateLayout)
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
