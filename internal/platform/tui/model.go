package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Conner685/Comp2522TermProject/internal/audio"
	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
	"github.com/Conner685/Comp2522TermProject/internal/registry"
	"github.com/Conner685/Comp2522TermProject/internal/replay"
	"github.com/Conner685/Comp2522TermProject/internal/storage"
)

// leaderboardSize is how many saved scores a title screen receives.
const leaderboardSize = 10

// Options are the collaborators of a running game. All are optional.
type Options struct {
	Store    storage.Store
	Sound    *audio.Player
	Recorder *replay.Recorder
	Logger   *log.Logger
}

// GameModel runs one game on the Bubble Tea tick loop.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	board      *storage.Board
	sound      *audio.Player
	recorder   *replay.Recorder
	logger     *log.Logger
	config     core.RuntimeConfig
	input      core.InputFrame
	keys       *KeyMapper
	state      core.GameState
	exitOnBack bool // quit the program instead of signalling BackToMenu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero seed is replaced with the
// current time.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:    storage.NewBoard(opts.Store, game.ID(), logger),
		sound:    opts.Sound,
		recorder: opts.Recorder,
		logger:   logger,
		config:   cfg,
		input:    core.NewInputFrame(),
		keys:     NewKeyMapper(cfg.TickRate),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.refreshLeaderboard()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The games scale to the screen when rendering; the simulation
		// itself does not depend on the terminal size.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.state.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}
	m.keys.Tick(&m.input)

	// Back on a title screen leaves the game.
	if m.state.Idle && m.input.Has(core.ActionBack) {
		m.backToMenu = true
		m.keys.Release()
		m.input.Clear()
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.recorder != nil {
		m.recorder.Record(m.input)
	}

	wasOver := m.state.GameOver
	result := m.game.Step(m.input)
	m.state = result.State
	m.sound.Play(result.Events)

	if m.state.GameOver && !wasOver {
		m.board.Save(m.state.Score)
		m.refreshLeaderboard()
		m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score)
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) refreshLeaderboard() {
	if lb, ok := m.game.(registry.LeaderboardAware); ok {
		lb.SetLeaderboard(m.board.LoadTopN(leaderboardSize))
	}
}

// saveScreenshot writes the current screen as text.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user asked to leave the arcade.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left the game's title screen.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Outcome reports how a standalone game ended.
type Outcome struct {
	BackToMenu bool
	Quit       bool
	Score      int
}

// Run plays game in the terminal until the player quits or backs out of
// its title screen.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Outcome, error) {
	model := NewGameModel(game, cfg, opts)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Outcome{Quit: true}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(GameModel)
	if !ok {
		return Outcome{Quit: true}, nil
	}
	return Outcome{
		BackToMenu: m.BackToMenu(),
		Quit:       m.IsQuitting(),
		Score:      m.State().Score,
	}, nil
}
