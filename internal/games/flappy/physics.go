package flappy

import (
	"github.com/vovakirdan/flap-arcade/internal/config"
	"github.com/vovakirdan/flap-arcade/internal/core"
)

// Integrate advances the player by dt seconds. A flap replaces the
// velocity with the upward impulse before gravity is added; only the
// falling side is capped.
func Integrate(p *Player, phys config.FlappyPhysics, dt float64, flap bool) {
	if dt <= 0 {
		return
	}

	if flap {
		p.Velocity = -phys.FlapImpulse
		p.FlapTicks = 0
	} else {
		p.FlapTicks++
	}

	p.Velocity += phys.Gravity * dt
	if p.Velocity > phys.MaxFallSpeed {
		p.Velocity = phys.MaxFallSpeed
	}

	p.Y -= p.Velocity * dt
	p.Rotation = core.ClampF(p.Velocity*phys.RotationFactor, phys.RotationMin, phys.RotationMax)
}
