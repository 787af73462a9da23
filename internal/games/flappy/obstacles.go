package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flap-arcade/internal/config"
	"github.com/vovakirdan/flap-arcade/internal/core"
)

// Track lays out and scrolls the tube ring. It holds configuration and
// the random source only; the tubes live in the Session.
type Track struct {
	cfg       config.FlappyObstacles
	world     config.World
	tubeWidth float64
	rng       *rand.Rand
}

// NewTrack creates a track drawing offsets and spacings from rng.
func NewTrack(cfg config.FlappyConfig, tubeWidth float64, rng *rand.Rand) *Track {
	return &Track{
		cfg:       cfg.Obstacles,
		world:     cfg.World,
		tubeWidth: tubeWidth,
		rng:       rng,
	}
}

// TubeWidth returns the width of every tube.
func (t *Track) TubeWidth() float64 {
	return t.tubeWidth
}

// OffsetBound returns the largest absolute gap offset the track produces.
func (t *Track) OffsetBound() float64 {
	return max(t.world.Height-t.cfg.Gap-t.cfg.OffsetMargin, 0) / 2
}

// BaseDistance is the nominal horizontal distance between tubes.
func (t *Track) BaseDistance() float64 {
	return t.world.Width * t.cfg.BaseDistanceFactor
}

// Layout returns a fresh ring. The first tube starts one screen width to
// the right of centre and each following tube sits one spacing further.
// Spacings are drawn here and nowhere else.
func (t *Track) Layout() []Tube {
	tubes := make([]Tube, t.cfg.Count)
	base := t.BaseDistance()

	for i := range tubes {
		tubes[i].Spacing = base * (t.cfg.SpacingMin + t.rng.Float64()*(t.cfg.SpacingMax-t.cfg.SpacingMin))
		tubes[i].Offset = t.randomOffset()
		if i == 0 {
			tubes[i].X = t.world.Width/2 - t.tubeWidth/2 + t.world.Width
		} else {
			tubes[i].X = tubes[i-1].X + tubes[i-1].Spacing
		}
		t.updateRects(&tubes[i])
	}
	return tubes
}

// Advance scrolls every tube left by speed. A tube whose right edge has
// left the screen is moved behind the rightmost tube with a new offset
// instead of scrolling this tick. It returns the recycled ring indices.
func (t *Track) Advance(tubes []Tube, speed float64) []int {
	var recycled []int
	for i := range tubes {
		if tubes[i].X < -t.tubeWidth {
			r := rightmost(tubes)
			tubes[i].X = tubes[r].X + tubes[r].Spacing
			tubes[i].Offset = t.randomOffset()
			tubes[i].Passed = false
			recycled = append(recycled, i)
		} else {
			tubes[i].X -= speed
		}
	}

	for i := range tubes {
		t.updateRects(&tubes[i])
	}
	return recycled
}

func (t *Track) randomOffset() float64 {
	return (t.rng.Float64() - 0.5) * 2 * t.OffsetBound()
}

// updateRects recomputes the blocking boxes from the tube's x and offset.
func (t *Track) updateRects(tube *Tube) {
	h := t.world.Height
	gapBottom := h/2 - t.cfg.Gap/2 + tube.Offset
	gapTop := h/2 + t.cfg.Gap/2 + tube.Offset

	tube.Upper = core.Box{X: tube.X, Y: gapTop, W: t.tubeWidth, H: h - gapTop}
	tube.Lower = core.Box{X: tube.X, Y: 0, W: t.tubeWidth, H: gapBottom}
}

func rightmost(tubes []Tube) int {
	best := 0
	for i := range tubes {
		if tubes[i].X > tubes[best].X {
			best = i
		}
	}
	return best
}
