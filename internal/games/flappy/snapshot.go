package flappy

import "github.com/vovakirdan/flap-arcade/internal/core"

// Snapshot is a read-only copy of what a renderer needs for one frame.
type Snapshot struct {
	Phase      core.Phase
	Paused     bool
	Player     Player
	WingFrame  int
	Sprite     string // Sprite file for the bird in its current state
	Tubes      []Tube
	Score      int
	HighScore  int
	Scoring    int
	Taps       int
	Collisions int
}

// Snapshot copies the current frame.
func (g *Game) Snapshot() Snapshot {
	s := g.session.clone()
	sprite := SpriteBird
	if !s.Player.Alive {
		sprite = SpriteBirdDead
	}
	return Snapshot{
		Phase:      g.phase,
		Paused:     g.paused,
		Player:     s.Player,
		WingFrame:  s.Player.WingFrame(g.cfg.Player.FlapFrameTicks),
		Sprite:     sprite,
		Tubes:      s.Tubes,
		Score:      s.Score,
		HighScore:  g.scores.HighScore(),
		Scoring:    s.Scoring,
		Taps:       s.Taps,
		Collisions: s.Collisions,
	}
}
