package flappy

import (
	"fmt"

	"github.com/vovakirdan/flap-arcade/internal/core"
)

const (
	tubeChar    = '█'
	tubeCapChar = '▓'
	birdChar    = '●'
	deadChar    = 'x'
)

// Render draws the current frame scaled to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	vp := core.Viewport{
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		Cols:   dst.Width(),
		Rows:   dst.Height(),
	}

	for _, tube := range snap.Tubes {
		drawTube(dst, vp, tube)
	}
	g.drawBird(dst, vp, snap)

	hud := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	switch {
	case snap.Phase == core.PhaseMenu:
		dst.DrawMessage([]string{
			"FLAPPY BIRD",
			"",
			"SPACE to play",
			fmt.Sprintf("Best: %d", snap.HighScore),
		}, core.ColorBrightYellow)
	case snap.Phase == core.PhaseGameOver:
		dst.DrawMessage([]string{
			"GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore),
			"SPACE for menu, R to retry",
		}, core.ColorBrightRed)
	case snap.Paused:
		dst.DrawMessage([]string{"PAUSED", "Press P to resume"}, core.ColorBrightCyan)
	}
}

func drawTube(dst *core.Screen, vp core.Viewport, tube Tube) {
	upper := vp.CellRect(tube.Upper)
	lower := vp.CellRect(tube.Lower)

	dst.DrawRect(upper, tubeChar, core.ColorGreen)
	dst.DrawRect(lower, tubeChar, core.ColorGreen)

	// Caps face the gap.
	dst.DrawHLine(upper.X, upper.Bottom()-1, upper.W, tubeCapChar, core.ColorBrightGreen)
	dst.DrawHLine(lower.X, lower.Y, lower.W, tubeCapChar, core.ColorBrightGreen)
}

func (g *Game) drawBird(dst *core.Screen, vp core.Viewport, snap Snapshot) {
	p := snap.Player
	size := g.sprites.Size(snap.Sprite)
	r := vp.CellRect(core.Box{X: p.X - size.Width/2, Y: p.Y, W: size.Width, H: size.Height})

	if !p.Alive {
		dst.DrawRect(r, deadChar, core.ColorRed)
		return
	}

	dst.DrawRect(r, birdChar, core.ColorBrightYellow)
	wing := '▲'
	if snap.WingFrame == 1 {
		wing = '▼'
	}
	dst.SetColored(r.X, r.Y+r.H/2, wing, core.ColorOrange)
	dst.SetColored(r.Right()-1, r.Y, '▶', core.ColorBrightRed)
}
