// Package invaders implements Space Invaders: a defender at the bottom of
// a fixed playfield against a sweeping, descending fleet of aliens.
//
// The simulation runs in playfield pixels on its own clock (30 ms ticks by
// default) and is fully deterministic for a given seed and input sequence.
package invaders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry identifier.
const GameID = "invaders"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts Sim to the platform: configuration, pause, restart, the
// high score display and rendering.
type Game struct {
	sim      *Sim
	settings *Settings
	runtime  core.RuntimeConfig

	sound     core.SoundPlayer
	highScore int
	paused    bool

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{
		sound:      core.NopSoundPlayer{},
		minScreenW: 40,
		minScreenH: 12,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return GameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Space Invaders" }

// LoadSettings loads the configuration found from path (see
// config.LoadInvaders) and scales it into settings.
func LoadSettings(path string) (*Settings, error) {
	cfg, err := config.LoadInvaders(path)
	if err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}
	settings, err := NewSettings(cfg)
	if err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}
	return settings, nil
}

// Reset starts a new game with a full fleet and all lives. The best score
// seen so far is kept. A configuration that fails to load falls back to the
// defaults here; callers check it up front with LoadSettings.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	settings, err := LoadSettings(configPath)
	if err != nil {
		settings = DefaultSettings()
	}
	g.ResetWith(runtime, settings)
}

// ResetWith starts a new game with explicit settings instead of loading
// the configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, settings *Settings) {
	g.runtime = runtime
	g.settings = settings
	if g.sim != nil {
		g.highScore = max(g.highScore, g.sim.defender.score)
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.sim = NewSim(settings, rng, g.sound)
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.sim.GameOver() {
		g.ResetWith(g.runtime, g.settings)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.sim.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	events := g.sim.Tick(Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	})
	if g.sim.GameOver() {
		g.highScore = max(g.highScore, g.sim.defender.score)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.defender.score,
		Lives:    g.sim.defender.lives,
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
	}
}

// Sim exposes the running simulation.
func (g *Game) Sim() *Sim { return g.sim }

// Wave returns the number of the current fleet.
func (g *Game) Wave() int { return g.sim.wave }

// Ticks returns how many ticks the current run has played.
func (g *Game) Ticks() uint64 { return g.sim.ticks }

// SetSoundPlayer routes sound effects to p.
func (g *Game) SetSoundPlayer(p core.SoundPlayer) {
	if p == nil {
		p = core.NopSoundPlayer{}
	}
	g.sound = p
	if g.sim != nil {
		g.sim.SetSoundPlayer(p)
	}
}

// SetHighScore seeds the HI-SCORE display, typically from the session ledger.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
}

// TickInterval is the simulation period.
func (g *Game) TickInterval() time.Duration {
	if g.settings == nil {
		return 30 * time.Millisecond
	}
	return g.settings.Tick
}

// StartDelay is the pause before the first tick.
func (g *Game) StartDelay() time.Duration {
	if g.settings == nil {
		return 10 * time.Millisecond
	}
	return g.settings.StartDelay
}

// HUD is the status line shared by every front end.
type HUD struct {
	Score     int
	HighScore int
	Lives     int
	Wave      int
	GameOver  bool
	Paused    bool
}

// HUD returns the values shown in the top bar.
func (g *Game) HUD() HUD {
	return HUD{
		Score:     g.sim.defender.score,
		HighScore: max(g.highScore, g.sim.defender.score),
		Lives:     g.sim.defender.lives,
		Wave:      g.sim.wave,
		GameOver:  g.sim.GameOver(),
		Paused:    g.paused,
	}
}

// Draw hands every visible entity to r, back to front.
func (g *Game) Draw(r Renderer) {
	f := g.sim.fleet
	for _, a := range f.aliens {
		if a.alive {
			r.DrawSprite(a.sprite(), a.frame, a.box)
		}
	}
	for _, b := range f.bombs {
		r.DrawSprite(b.sprite(), b.frame, b.box)
	}
	d := g.sim.defender
	if b := d.bullet; b != nil {
		r.DrawSprite(b.sprite, 0, b.box)
	}
	if d.alive {
		r.DrawSprite(d.sprite, d.frame, d.box)
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
