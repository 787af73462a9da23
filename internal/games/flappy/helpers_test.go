package flappy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/flap-arcade/internal/config"
	"github.com/vovakirdan/flap-arcade/internal/core"
	"github.com/vovakirdan/flap-arcade/internal/prefs"
	"github.com/vovakirdan/flap-arcade/internal/registry"
)

const tick = time.Second / 60

// testConfig uses a 960 wide world with 100 wide tubes.
func testConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.World = config.World{Width: 960, Height: 1440}
	cfg.Sprites.TopTube.Width = 100
	cfg.Sprites.BottomTube.Width = 100
	return cfg
}

func newTestGame(t *testing.T, seed int64) (*Game, *prefs.Memory) {
	t.Helper()
	store := prefs.NewMemory()
	g := NewWithConfig(testConfig(), registry.Deps{Prefs: store})
	g.Reset(core.RuntimeConfig{ScreenW: 96, ScreenH: 24, TickRate: 60, Seed: seed})
	return g, store
}

func newTestTrack(seed int64) *Track {
	return NewTrack(testConfig(), 100, rand.New(rand.NewSource(seed)))
}

func jump() core.InputFrame {
	return core.NewInputFrame(core.ActionJump)
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}
