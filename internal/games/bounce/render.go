package bounce

import (
	"fmt"

	"github.com/vovakirdan/flap-arcade/internal/core"
)

const ballChar = '●'

// Render draws the current frame scaled to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	vp := core.Viewport{
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		Cols:   dst.Width(),
		Rows:   dst.Height(),
	}

	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorGray)

	for _, p := range snap.PowerUps {
		dst.SetColored(vp.CellX(p.X), vp.CellY(p.Y), p.Kind.Glyph(), p.Kind.Color())
	}

	b := snap.Ball
	dst.DrawRect(vp.CellRect(core.Box{
		X: b.X - b.Radius,
		Y: b.Y - b.Radius,
		W: 2 * b.Radius,
		H: 2 * b.Radius,
	}), ballChar, core.ColorOrange)

	hud := fmt.Sprintf(" Score: %d  Best: %d  Time: %ds ", snap.Score, snap.HighScore, int(snap.Elapsed.Seconds()))
	if snap.Remaining > 0 {
		hud += fmt.Sprintf("Left: %ds ", int(snap.Remaining.Seconds()))
	}
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)
	dst.DrawTextCentered(dst.Height()-1, " SPACE to change direction ", core.ColorGray)

	switch {
	case snap.Phase == core.PhaseGameOver:
		dst.DrawMessage([]string{
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", snap.Score),
			"Tap to restart",
		}, core.ColorBrightRed)
	case snap.Paused:
		dst.DrawMessage([]string{"PAUSED", "Press P to resume"}, core.ColorBrightCyan)
	}
}
