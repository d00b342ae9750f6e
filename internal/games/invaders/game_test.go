package invaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed}, DefaultSettings())
	return g
}

func scriptedInputs(n int) []core.InputFrame {
	inputs := make([]core.InputFrame, n)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%90 < 40:
			inputs[i].Set(core.ActionLeft)
		case i%90 < 80:
			inputs[i].Set(core.ActionRight)
		}
		if i%7 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}
	return inputs
}

func TestGameDeterminism(t *testing.T) {
	inputs := scriptedInputs(1500)

	run := func() []uint64 {
		g := newTestGame(12345)
		var hashes []uint64
		for i, in := range inputs {
			g.Step(in)
			if i%100 == 0 {
				snap := g.Snapshot()
				hashes = append(hashes, snap.Hash())
			}
		}
		return hashes
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Determinism failed at checkpoint %d: %d != %d", i, first[i], second[i])
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(1)
	for _, in := range scriptedInputs(300) {
		g.Step(in)
	}

	g.ResetWith(g.runtime, g.settings)
	state := g.State()
	if state.Score != 0 || state.Lives != 3 || state.GameOver || state.Paused {
		t.Errorf("State() after reset = %+v", state)
	}
	if g.Sim().Ticks() != 0 || g.Sim().Wave() != 1 {
		t.Error("reset should start a fresh simulation")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame())
	before := g.Snapshot()

	res := g.Step(core.InputOf(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause")
	}
	for i := 0; i < 10; i++ {
		g.Step(core.InputOf(core.ActionRight, core.ActionFire))
	}
	paused := g.Snapshot()
	if paused.Hash() != before.Hash() {
		t.Error("paused game should not advance")
	}

	g.Step(core.InputOf(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameOverAndRestartKeepsHighScore(t *testing.T) {
	g := newTestGame(1)

	g.Sim().defender.score = 120

	// Restart is ignored while playing.
	g.Step(core.InputOf(core.ActionRestart))
	if g.State().Score != 120 || g.Sim().Ticks() != 1 {
		t.Error("restart during play should be ignored")
	}

	for _, a := range g.Sim().Fleet().Aliens() {
		a.Move(0, 400)
	}
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || !res.HasEvent(core.EventGameOver) {
		t.Fatalf("expected game over, got %+v", res)
	}

	res = g.Step(core.NewInputFrame())
	if res.HasEvent(core.EventGameOver) {
		t.Error("game over should be reported exactly once")
	}

	g.Step(core.InputOf(core.ActionRestart))
	hud := g.HUD()
	if hud.GameOver || hud.Score != 0 || hud.Lives != 3 {
		t.Errorf("HUD after restart = %+v", hud)
	}
	if hud.HighScore != 120 {
		t.Errorf("HighScore = %d, expected 120", hud.HighScore)
	}
}

func TestGameSetHighScore(t *testing.T) {
	g := newTestGame(1)
	g.SetHighScore(450)
	g.SetHighScore(90)

	if g.HUD().HighScore != 450 {
		t.Errorf("HighScore = %d, expected 450", g.HUD().HighScore)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)

	before := core.NewScreen(80, 24)
	g.Render(before)
	if !strings.Contains(before.String(), "/o\\") {
		t.Errorf("fresh fleet should show the first squid frame:\n%s", before.String())
	}

	g.Step(core.InputOf(core.ActionFire))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	// The first tick animates the fleet, so squids show their second frame.
	for _, want := range []string{"SCORE 0000", "HI-SCORE 0000", "LIVES 3", "▟█▙", "\\o/"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	cell := screen.GetCell(strings.Index(screen.Row(0), "SCORE"), 0)
	if cell.Color != core.ColorBrightWhite {
		t.Errorf("HUD color = %d, expected bright white", cell.Color)
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(1)
	for _, a := range g.Sim().Fleet().Aliens() {
		a.Move(0, 400)
	}
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(30, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen should show a warning")
	}

	before := g.Sim().Ticks()
	g.Step(core.NewInputFrame())
	if g.Sim().Ticks() != before {
		t.Error("game should not advance while the screen is too small")
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0000"},
		{30, "0030"},
		{9990, "9990"},
		{12340, "2340"},
	}
	for _, tc := range tests {
		if got := FormatScore(tc.score); got != tc.want {
			t.Errorf("FormatScore(%d) = %q, expected %q", tc.score, got, tc.want)
		}
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("invaders should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, ok := g.(registry.Paced); !ok {
		t.Error("invaders should set its own pace")
	}
	if _, ok := g.(registry.Audible); !ok {
		t.Error("invaders should accept a sound player")
	}
	if _, ok := g.(registry.HighScorer); !ok {
		t.Error("invaders should show a high score")
	}
	if _, ok := g.(registry.RunReporter); !ok {
		t.Error("invaders should report its run")
	}
}

func TestScoreTable(t *testing.T) {
	rows := ScoreTable(DefaultSettings())

	want := []struct {
		glyph  string
		points int
	}{
		{"/o\\", 30},
		{"{M}", 20},
		{"<W>", 10},
	}
	if len(rows) != len(want) {
		t.Fatalf("ScoreTable() has %d rows, expected %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Glyph != w.glyph || rows[i].Points != w.points {
			t.Errorf("row %d = %+v, expected %s = %d", i, rows[i], w.glyph, w.points)
		}
	}
}

func writeTestConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	set, err := LoadSettings(writeTestConfig(t, "fast.toml", "[scale]\nspeed = 1.5\n"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if set.FleetStep != 5 || set.Rows != 5 {
		t.Errorf("FleetStep = %d, Rows = %d, expected 5 and 5", set.FleetStep, set.Rows)
	}

	_, err = LoadSettings(writeTestConfig(t, "bad.yaml", "fleet:\n  rows: -4\n"))
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("LoadSettings() of negative rows = %v, expected ErrInvalid", err)
	}

	// Valid on its own, but the fleet no longer fits the playfield.
	_, err = LoadSettings(writeTestConfig(t, "cramped.yaml", "playfield:\n  width: 500\n"))
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("LoadSettings() of a cramped playfield = %v, expected ErrInvalid", err)
	}

	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadSettings() of a missing file should fail")
	}
}

func TestGameResetFallsBackToDefaults(t *testing.T) {
	SetConfigPath(writeTestConfig(t, "bad.yaml", "fleet:\n  rows: -4\n"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if rows := g.Sim().Settings().Rows; rows != 5 {
		t.Errorf("Rows = %d, expected the default 5", rows)
	}
}
