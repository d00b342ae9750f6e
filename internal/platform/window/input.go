package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// pollHeld samples the keys that count while held down.
func pollHeld(in *core.InputFrame) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		in.Set(core.ActionFire)
	}
}

// pollPresses collects one-shot presses of this update.
func pollPresses(in *core.InputFrame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
	}
}
