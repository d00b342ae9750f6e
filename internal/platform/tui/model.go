package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// holdTicks is how long a key press counts as held. Terminals report
// presses only, so a held key is kept alive by the terminal's key repeat.
const holdTicks = 5

// Options carries the collaborators of a game session.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Sound  core.SoundPlayer
	// FixedSeed replays the same seed on restart instead of drawing a new one.
	FixedSeed bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	opts   Options

	keyMapper *KeyMapper
	// held counts down the ticks each movement or fire key stays pressed.
	held map[core.Action]int
	// pulse collects one-shot presses until the next tick.
	pulse core.InputFrame

	gameState  core.GameState
	interval   time.Duration
	startDelay time.Duration
	runStart   time.Time
	quitting   bool
	scoreSaved bool // Whether the run has been recorded for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if a, ok := game.(registry.Audible); ok && opts.Sound != nil {
		a.SetSoundPlayer(opts.Sound)
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		held:      make(map[core.Action]int),
		pulse:     core.NewInputFrame(),
		runStart:  time.Now(),
		interval:  tickInterval(cfg.TickRate),
	}
	m.startDelay = m.interval
	if p, ok := game.(registry.Paced); ok {
		m.interval = p.TickInterval()
		m.startDelay = p.StartDelay()
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.seedHighScore()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.startDelay)
}

// seedHighScore shows the best score of this session in the game's HUD.
func (m Model) seedHighScore() {
	hs, ok := m.game.(registry.HighScorer)
	if !ok || m.store == nil {
		return
	}
	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return
	}
	hs.SetHighScore(high)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("game quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	switch {
	case isHeld(action):
		m.held[action] = holdTicks
	case action == core.ActionBack:
		// Escape pauses like P while playing.
		m.pulse.Set(core.ActionPause)
	case action != core.ActionNone:
		m.pulse.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The playfield is scaled
// into the new size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// frame builds the input of the coming tick and ages the held keys.
func (m *Model) frame() core.InputFrame {
	in := m.pulse.Clone()
	for action, left := range m.held {
		if left <= 0 {
			delete(m.held, action)
			continue
		}
		in.Set(action)
		m.held[action] = left - 1
	}
	m.pulse.Clear()
	return in
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.frame()

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.opts.FixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.seedHighScore()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.runStart = time.Now()
		clear(m.held)
		m.logger.Info("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.interval)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	for _, e := range result.Events {
		m.logger.Debug("event", "type", e.Type, "value", e.Value)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.interval)
}

// recordRun writes the finished run to the session ledger.
func (m Model) recordRun() {
	run := storage.RunRecord{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Seed:     m.config.Seed,
		Duration: time.Since(m.runStart),
	}
	if r, ok := m.game.(registry.RunReporter); ok {
		run.Wave = r.Wave()
		run.Ticks = r.Ticks()
	}
	m.logger.Info("game over", "score", run.Score, "wave", run.Wave, "ticks", run.Ticks)

	if m.store == nil || run.Score <= 0 {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
