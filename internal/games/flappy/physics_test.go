package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/flap-arcade/internal/config"
)

func TestIntegrateFlapSetsImpulse(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics
	dt := 1.0 / 60

	for _, start := range []float64{-500, 0, 250, phys.MaxFallSpeed} {
		p := Player{Y: 500, Velocity: start, FlapTicks: 17}
		Integrate(&p, phys, dt, true)

		want := -phys.FlapImpulse + phys.Gravity*dt
		if math.Abs(p.Velocity-want) > 1e-9 {
			t.Errorf("start %v: velocity = %v, want %v", start, p.Velocity, want)
		}
		if p.FlapTicks != 0 {
			t.Errorf("flap should reset the wing counter, got %d", p.FlapTicks)
		}
		if p.Y <= 500 {
			t.Errorf("flap should move the bird up, y = %v", p.Y)
		}
	}
}

func TestIntegrateTerminalVelocity(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics
	p := Player{Y: 1e6}

	for i := 0; i < 1000; i++ {
		Integrate(&p, phys, 1.0/30, false)
		if p.Velocity > phys.MaxFallSpeed {
			t.Fatalf("tick %d: velocity %v exceeds %v", i, p.Velocity, phys.MaxFallSpeed)
		}
	}
	if p.Velocity != phys.MaxFallSpeed {
		t.Errorf("velocity should settle at terminal velocity, got %v", p.Velocity)
	}
}

func TestIntegrateRotationClamped(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics

	p := Player{Y: 500}
	Integrate(&p, phys, 1.0/60, true)
	if p.Rotation < phys.RotationMin || p.Rotation > phys.RotationMax {
		t.Errorf("rotation %v outside [%v, %v]", p.Rotation, phys.RotationMin, phys.RotationMax)
	}

	p = Player{Y: 500, Velocity: phys.MaxFallSpeed}
	Integrate(&p, phys, 1.0/60, false)
	if p.Rotation != phys.RotationMax {
		t.Errorf("falling rotation = %v, want %v", p.Rotation, phys.RotationMax)
	}
}

func TestIntegrateIgnoresNonPositiveDelta(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics
	p := Player{Y: 300, Velocity: 40}

	Integrate(&p, phys, 0, true)
	Integrate(&p, phys, -1, false)

	if p.Y != 300 || p.Velocity != 40 {
		t.Errorf("non-positive dt changed the player: %+v", p)
	}
}

func TestWingFrame(t *testing.T) {
	tests := []struct {
		ticks int
		want  int
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{19, 1},
		{20, 0},
	}
	for _, tt := range tests {
		p := Player{FlapTicks: tt.ticks}
		if got := p.WingFrame(10); got != tt.want {
			t.Errorf("WingFrame at %d ticks = %d, want %d", tt.ticks, got, tt.want)
		}
	}
}
