package flappy

import "github.com/vovakirdan/flap-arcade/internal/core"

// Player is the bird. X is the horizontal centre and never changes;
// Y is the bottom edge of the sprite in a y-up world.
type Player struct {
	X, Y      float64
	Width     float64
	Height    float64
	Velocity  float64 // Positive is falling
	Rotation  float64 // Degrees, display only
	Alive     bool
	FlapTicks int // Ticks since the last flap, drives the wing frame
}

// Hitbox returns the collision circle around the sprite centre.
func (p Player) Hitbox(fraction float64) core.Circle {
	return core.Circle{
		X:      p.X,
		Y:      p.Y + p.Height/2,
		Radius: p.Width * fraction,
	}
}

// WingFrame returns the animation frame (0 or 1).
func (p Player) WingFrame(frameTicks int) int {
	if frameTicks <= 0 {
		return 0
	}
	return (p.FlapTicks / frameTicks) % 2
}

// Tube is one slot of the obstacle ring.
type Tube struct {
	X       float64 // Left edge
	Offset  float64 // Gap centre relative to the world centre
	Spacing float64 // Distance to the next tube when recycled behind this one
	Passed  bool    // Scored since it was last placed
	Upper   core.Box
	Lower   core.Box
}

// Session is everything that changes while a round is played. The game
// owns it and hands it to each subsystem by pointer.
type Session struct {
	Player     Player
	Tubes      []Tube
	Score      int
	Scoring    int // Ring index of the next tube that can award a point
	Ticks      int
	Taps       int
	Collisions int
}

// clone returns a deep copy used to roll back a failed frame.
func (s *Session) clone() Session {
	c := *s
	c.Tubes = append([]Tube(nil), s.Tubes...)
	return c
}
