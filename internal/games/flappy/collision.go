package flappy

import "github.com/vovakirdan/flap-arcade/internal/core"

// CheckCollision reports whether the circle overlaps either box of any tube.
func CheckCollision(c core.Circle, tubes []Tube) bool {
	for _, tube := range tubes {
		if c.Overlaps(tube.Upper) || c.Overlaps(tube.Lower) {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether the player touched the floor or the ceiling.
func OutOfBounds(p Player, worldHeight float64) bool {
	return p.Y <= 0 || p.Y >= worldHeight-p.Height
}
