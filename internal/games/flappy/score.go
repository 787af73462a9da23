package flappy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap-arcade/internal/prefs"
)

// ScoreTracker awards points for passed tubes and keeps the persisted
// high score.
type ScoreTracker struct {
	high *prefs.HighScore
}

// NewScoreTracker loads the high score stored under key.
func NewScoreTracker(store prefs.Store, key string, logger *log.Logger) *ScoreTracker {
	return &ScoreTracker{high: prefs.LoadHighScore(store, key, logger)}
}

// OnTubePassed awards a point once the scoring tube is behind the player
// and moves on to the next ring slot. A tube scores at most once until it
// is recycled. It reports whether a point was scored.
func (st *ScoreTracker) OnTubePassed(s *Session, tubeWidth float64) bool {
	if len(s.Tubes) == 0 {
		return false
	}
	tube := &s.Tubes[s.Scoring]
	if tube.Passed || tube.X >= s.Player.X-tubeWidth/2 {
		return false
	}
	tube.Passed = true
	s.Score++
	s.Scoring = (s.Scoring + 1) % len(s.Tubes)
	return true
}

// HighScore returns the best score seen so far.
func (st *ScoreTracker) HighScore() int {
	return st.high.Value()
}

// TrySetHighScore persists score if it beats the high score.
func (st *ScoreTracker) TrySetHighScore(score int) bool {
	return st.high.Offer(score)
}
