package bounce

import "github.com/vovakirdan/flap-arcade/internal/core"

// PowerUpKind is the effect a power-up applies when collected.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota // Speeds the ball up
	PowerUpScore                    // Flat bonus
	PowerUpSlow                     // Slows the ball down
	PowerUpCount                    // Sentinel for counting kinds
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "SPEED"
	case PowerUpScore:
		return "SCORE"
	case PowerUpSlow:
		return "SLOW"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpSpeed:
		return '»'
	case PowerUpScore:
		return '$'
	case PowerUpSlow:
		return '«'
	default:
		return '?'
	}
}

// Color returns the display colour for a power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpSpeed:
		return core.ColorBrightGreen
	case PowerUpScore:
		return core.ColorBrightYellow
	case PowerUpSlow:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

// PowerUp is a stationary pickup that expires after Lifetime ticks.
type PowerUp struct {
	Kind     PowerUpKind
	X, Y     float64 // Centre
	Lifetime int     // Remaining ticks
}

// spawnPowerUp places a random power-up inside the spawn margins.
func (g *Game) spawnPowerUp() {
	pc := g.cfg.PowerUps
	w, h := g.cfg.World.Width, g.cfg.World.Height

	p := PowerUp{
		Kind:     PowerUpKind(g.rng.Intn(int(PowerUpCount))),
		X:        pc.MarginX + g.rng.Float64()*(w-2*pc.MarginX),
		Y:        pc.MarginY + g.rng.Float64()*(h-2*pc.MarginY),
		Lifetime: pc.LifetimeTicks,
	}
	g.session.PowerUps = append(g.session.PowerUps, p)
	g.logger.Debug("power-up spawned", "kind", p.Kind, "x", int(p.X), "y", int(p.Y))
}

// updatePowerUps ages every power-up by one tick. Expired ones vanish;
// ones touching the ball are collected and applied. It returns the
// collected kinds in list order.
func (g *Game) updatePowerUps() []PowerUpKind {
	s := &g.session
	reach := s.Ball.Radius + g.cfg.PowerUps.Radius

	var collected []PowerUpKind
	kept := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		p.Lifetime--
		if p.Lifetime <= 0 {
			continue
		}
		if core.Distance(s.Ball.X, s.Ball.Y, p.X, p.Y) < reach {
			g.apply(p.Kind)
			collected = append(collected, p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	s.PowerUps = kept
	return collected
}

// apply performs the effect of a collected power-up.
func (g *Game) apply(kind PowerUpKind) {
	pc := g.cfg.PowerUps
	b := &g.session.Ball

	switch kind {
	case PowerUpSpeed:
		b.VX *= pc.SpeedFactor
		b.VY *= pc.SpeedFactor
		g.session.Score += pc.SpeedBonus
	case PowerUpSlow:
		b.VX *= pc.SlowFactor
		b.VY *= pc.SlowFactor
		g.session.Score += pc.SlowBonus
	case PowerUpScore:
		g.session.Score += pc.ScoreBonus
	}
	g.logger.Debug("power-up collected", "kind", kind, "score", g.session.Score)
}
