// Package window runs the game in a desktop window with ebiten. Unlike the
// terminal, the window reports real key state, so held keys are exact.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

const (
	tps       = 100
	hudHeight = 60
	textScale = 3
)

// Options carries the collaborators of a window session.
type Options struct {
	Store     *storage.Store
	Logger    *log.Logger
	Sound     core.SoundPlayer
	FixedSeed bool
}

// Window is the ebiten.Game driving one invaders.Game.
type Window struct {
	game     *invaders.Game
	config   core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	pacer    *pacer
	renderer *spriteRenderer
	face     *text.GoXFace

	// pending keeps one-shot presses until a tick consumes them.
	pending    core.InputFrame
	runStart   time.Time
	scoreSaved bool
}

// New prepares a window for game. The game is reset on creation.
func New(game *invaders.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Sound != nil {
		game.SetSoundPlayer(opts.Sound)
	}

	w := &Window{
		game:     game,
		config:   cfg,
		opts:     opts,
		logger:   logger,
		renderer: newSpriteRenderer(),
		face:     text.NewGoXFace(basicfont.Face7x13),
		pending:  core.NewInputFrame(),
	}
	w.reset()
	return w
}

func (w *Window) reset() {
	w.game.Reset(w.config)
	if w.opts.Store != nil {
		if high, err := w.opts.Store.HighScore(w.game.ID()); err == nil {
			w.game.SetHighScore(high)
		}
	}
	w.pacer = newPacer(tps, w.game.TickInterval(), w.game.StartDelay())
	w.runStart = time.Now()
	w.scoreSaved = false
	w.logger.Info("game started", "game", w.game.ID(), "seed", w.config.Seed, "frontend", "window")
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	pollPresses(&w.pending)
	if w.pending.Has(core.ActionQuit) {
		w.logger.Info("game quit", "score", w.game.State().Score)
		return ebiten.Termination
	}

	for range w.pacer.Advance() {
		w.tick()
	}
	return nil
}

// tick runs one simulation step with the keys held right now.
func (w *Window) tick() {
	in := w.pending.Clone()
	w.pending.Clear()
	pollHeld(&in)

	if in.Has(core.ActionRestart) && w.game.State().GameOver {
		if !w.opts.FixedSeed {
			w.config.Seed = time.Now().UnixNano()
		}
		w.reset()
		return
	}

	res := w.game.Step(in)
	for _, e := range res.Events {
		w.logger.Debug("event", "type", e.Type, "value", e.Value)
	}
	if res.State.GameOver && !w.scoreSaved {
		w.recordRun(res.State.Score)
		w.scoreSaved = true
	}
}

func (w *Window) recordRun(score int) {
	run := storage.RunRecord{
		GameID:   w.game.ID(),
		Score:    score,
		Wave:     w.game.Wave(),
		Ticks:    w.game.Ticks(),
		Seed:     w.config.Seed,
		Duration: time.Since(w.runStart),
	}
	w.logger.Info("game over", "score", run.Score, "wave", run.Wave, "ticks", run.Ticks)
	if w.opts.Store == nil || score <= 0 {
		return
	}
	if _, err := w.opts.Store.SaveRun(run); err != nil {
		w.logger.Warn("could not record run", "error", err)
	}
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	hud := w.game.HUD()
	sw := float32(screen.Bounds().Dx())
	w.drawText(screen, "SCORE "+invaders.FormatScore(hud.Score), 20, 12, colorWhite)
	w.drawCentered(screen, "HI-SCORE "+invaders.FormatScore(hud.HighScore), 12, colorWhite)
	right := fmt.Sprintf("LIVES %d  WAVE %d", hud.Lives, hud.Wave)
	rw, _ := text.Measure(right, w.face, 0)
	w.drawText(screen, right, float64(sw)-rw*textScale-20, 12, colorWhite)
	vector.DrawFilledRect(screen, 0, hudHeight-4, sw, 2, colorGray, false)

	w.renderer.screen = screen
	w.renderer.offsetY = hudHeight
	w.game.Draw(w.renderer)

	mid := float64(screen.Bounds().Dy()) / 2
	switch {
	case hud.GameOver:
		w.drawCentered(screen, "GAME OVER", mid-40, colorRed)
		w.drawCentered(screen, fmt.Sprintf("Score: %d  |  Press R to restart", hud.Score), mid+10, colorWhite)
	case hud.Paused:
		w.drawCentered(screen, "PAUSED", mid-40, colorWhite)
		w.drawCentered(screen, "Press P to resume", mid+10, colorWhite)
	}
}

func (w *Window) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, w.face, op)
}

func (w *Window) drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	tw, _ := text.Measure(s, w.face, 0)
	x := (float64(screen.Bounds().Dx()) - tw*textScale) / 2
	w.drawText(screen, s, x, y, clr)
}

// Layout implements ebiten.Game. The logical screen is the playfield plus
// the top bar; ebiten scales it into the window.
func (w *Window) Layout(_, _ int) (int, int) {
	set := w.game.Sim().Settings()
	return set.Width, set.Height + hudHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *invaders.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, cfg, opts)
	set := game.Sim().Settings()

	ebiten.SetWindowSize(set.Width/2, (set.Height+hudHeight)/2)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
