package invaders

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// hudRows is the height of the top bar above the playfield.
const hudRows = 2

type glyph struct {
	frames []string
	color  core.Color
}

// glyphs is the terminal look of every sprite, one string per frame.
var glyphs = map[Sprite]glyph{
	SpriteDefender:          {[]string{"▟█▙"}, core.ColorBrightGreen},
	SpriteDefenderExplosion: {[]string{"\\*/", "/*\\"}, core.ColorBrightRed},
	SpriteBullet:            {[]string{"│"}, core.ColorBrightWhite},
	SpriteBulletExplosion:   {[]string{"*"}, core.ColorYellow},
	SpriteSquid:             {[]string{"/o\\", "\\o/"}, core.ColorMagenta},
	SpriteCrab:              {[]string{"{M}", "}M{"}, core.ColorCyan},
	SpriteOctopus:           {[]string{"<W>", ">W<"}, core.ColorGreen},
	SpriteAlienExplosion:    {[]string{"*#*"}, core.ColorBrightYellow},
	SpriteBombA:             {[]string{"\\", "|", "/", "|"}, core.ColorWhite},
	SpriteBombB:             {[]string{"+", "x", "+", "x"}, core.ColorWhite},
	SpriteBombC:             {[]string{"ζ", "ς", "ζ", "ς"}, core.ColorWhite},
	SpriteBombExplosion:     {[]string{"#"}, core.ColorYellow},
}

// cellRenderer scales playfield boxes onto terminal cells.
type cellRenderer struct {
	dst   *core.Screen
	field core.Rect
	w, h  int
}

func (r cellRenderer) cell(x, y int) (int, int) {
	cx := r.field.X + x*r.field.W/r.w
	cy := r.field.Y + y*r.field.H/r.h
	return core.Clamp(cx, r.field.X, r.field.Right()-1), core.Clamp(cy, r.field.Y, r.field.Bottom()-1)
}

// DrawSprite writes the sprite's glyph centered on the box.
func (r cellRenderer) DrawSprite(s Sprite, frame int, box core.Box) {
	g, ok := glyphs[s]
	if !ok {
		return
	}
	text := g.frames[frame%len(g.frames)]
	cx, cy := r.cell(box.CenterX(), box.CenterY())
	r.dst.SetPen(g.color)
	r.dst.DrawText(cx-utf8.RuneCountInString(text)/2, cy, text)
	r.dst.SetPen(core.ColorDefault)
}

// Render draws the game into a terminal screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.screenTooSmall = dst.Width() < g.minScreenW || dst.Height() < g.minScreenH
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.Draw(cellRenderer{
		dst:   dst,
		field: core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows),
		w:     g.settings.Width,
		h:     g.settings.Height,
	})
	g.renderOverlay(dst)
}

// renderHUD draws score, high score, lives and wave.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := g.HUD()

	dst.SetPen(core.ColorBrightWhite)
	dst.DrawText(1, 0, "SCORE "+FormatScore(hud.Score))
	dst.DrawTextCentered(0, "HI-SCORE "+FormatScore(hud.HighScore))

	right := fmt.Sprintf("LIVES %d  WAVE %d", hud.Lives, hud.Wave)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	dst.SetPen(core.ColorGray)
	dst.DrawHLine(0, 1, dst.Width(), '─')
	dst.SetPen(core.ColorDefault)
}

// FormatScore renders a score the arcade way: four zero-padded digits.
func FormatScore(score int) string {
	return fmt.Sprintf("%04d", score%10000)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.sim.GameOver():
		dst.SetPen(core.ColorBrightRed)
		g.drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.defender.score))
	case g.paused:
		dst.SetPen(core.ColorBrightYellow)
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
	dst.SetPen(core.ColorDefault)
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// ScoreTableRow is one line of the score advance table.
type ScoreTableRow struct {
	Glyph  string
	Color  core.Color
	Points int
}

// ScoreTable lists every alien kind of the fleet once, top row first.
func ScoreTable(set *Settings) []ScoreTableRow {
	var rows []ScoreTableRow
	seen := make(map[Sprite]bool)
	for _, k := range set.RowKinds {
		if seen[k.Sprite] {
			continue
		}
		seen[k.Sprite] = true
		g := glyphs[k.Sprite]
		rows = append(rows, ScoreTableRow{Glyph: g.frames[0], Color: g.color, Points: k.Points})
	}
	return rows
}
