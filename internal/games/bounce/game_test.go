package bounce

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/flap-arcade/internal/config"
	"github.com/vovakirdan/flap-arcade/internal/core"
	"github.com/vovakirdan/flap-arcade/internal/prefs"
	"github.com/vovakirdan/flap-arcade/internal/registry"
)

const tick = time.Second / 60

// quietConfig disables random spawning so tests control every power-up.
func quietConfig() config.BounceConfig {
	cfg := config.DefaultBounceConfig()
	cfg.PowerUps.SpawnChance = 0
	cfg.PowerUps.TouchSpawnChance = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.BounceConfig) (*Game, *prefs.Memory) {
	t.Helper()
	store := prefs.NewMemory()
	g := NewWithConfig(cfg, registry.Deps{Prefs: store})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	g.session.PowerUps = nil
	return g, store
}

func TestBounceWallScenario(t *testing.T) {
	b := Ball{X: 39, Y: 500, VX: -12, VY: 5, Radius: 40}

	hits := Bounce(&b, 960, 1440)

	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if b.VX != 12 {
		t.Errorf("VX = %v, want 12", b.VX)
	}
	if b.VY != 5 {
		t.Errorf("VY should be untouched, got %v", b.VY)
	}
}

func TestBounceTable(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		hits   int
		vx, vy float64
	}{
		{"free", Ball{X: 500, Y: 500, VX: 12, VY: -12, Radius: 40}, 0, 12, -12},
		{"right wall", Ball{X: 925, Y: 500, VX: 12, VY: 12, Radius: 40}, 1, -12, 12},
		{"already inward", Ball{X: 40, Y: 500, VX: 12, VY: 12, Radius: 40}, 1, 12, 12},
		{"floor", Ball{X: 500, Y: 40, VX: 12, VY: -12, Radius: 40}, 1, 12, 12},
		{"corner", Ball{X: 950, Y: 1430, VX: 12, VY: 12, Radius: 40}, 2, -12, -12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			if got := Bounce(&b, 960, 1440); got != tt.hits {
				t.Errorf("hits = %d, want %d", got, tt.hits)
			}
			if b.VX != tt.vx || b.VY != tt.vy {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", b.VX, b.VY, tt.vx, tt.vy)
			}
		})
	}
}

func TestGameStartsPlaying(t *testing.T) {
	g := NewWithConfig(quietConfig(), registry.Deps{})
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	if g.State().Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want PLAYING", g.State().Phase)
	}
	if len(g.session.PowerUps) != 1 {
		t.Errorf("expected one seeded power-up, got %d", len(g.session.PowerUps))
	}
	b := g.session.Ball
	if b.X != 640 || b.Y != 480 || b.VX != 12 || b.VY != 12 {
		t.Errorf("unexpected starting ball %+v", b)
	}
}

func TestGameTapReverses(t *testing.T) {
	g, _ := newTestGame(t, quietConfig())

	res := g.Step(core.NewInputFrame(core.ActionJump), tick)

	b := g.session.Ball
	if b.VX != -12 || b.VY != -12 {
		t.Errorf("velocity = (%v, %v), want (-12, -12)", b.VX, b.VY)
	}
	if b.X != 628 || b.Y != 468 {
		t.Errorf("position = (%v, %v), want (628, 468)", b.X, b.Y)
	}
	if res.State.Score != 8 {
		t.Errorf("score = %d, want touch bonus 8", res.State.Score)
	}
}

func TestGameWallScoresThroughStep(t *testing.T) {
	g, store := newTestGame(t, quietConfig())
	g.session.Ball = Ball{X: 51, Y: 480, VX: -12, VY: 0, Radius: 40}

	res := g.Step(core.NewInputFrame(), tick)

	if g.session.Ball.VX != 12 {
		t.Errorf("VX = %v, want 12", g.session.Ball.VX)
	}
	if res.State.Score != 1 || res.State.HighScore != 1 {
		t.Errorf("score/high = %d/%d, want 1/1", res.State.Score, res.State.HighScore)
	}
	if store.GetInt("bounceHighScore", 0) != 1 {
		t.Errorf("high score not persisted under bounceHighScore")
	}
}

func TestPowerUpCollectedWithinReach(t *testing.T) {
	g, _ := newTestGame(t, quietConfig())
	g.session.Ball = Ball{X: 500, Y: 500, VX: 12, VY: 12, Radius: 40}
	g.session.PowerUps = []PowerUp{
		{Kind: PowerUpScore, X: 554, Y: 500, Lifetime: 300},
		{Kind: PowerUpSpeed, X: 500, Y: 555, Lifetime: 300},
	}

	collected := g.updatePowerUps()

	if len(collected) != 1 || collected[0] != PowerUpScore {
		t.Fatalf("collected = %v, want [SCORE]", collected)
	}
	if g.session.Score != 25 {
		t.Errorf("score = %d, want 25", g.session.Score)
	}
	if len(g.session.PowerUps) != 1 || g.session.PowerUps[0].Kind != PowerUpSpeed {
		t.Errorf("power-up at distance 55 should remain, got %+v", g.session.PowerUps)
	}
	if g.session.PowerUps[0].Lifetime != 299 {
		t.Errorf("lifetime = %d, want 299", g.session.PowerUps[0].Lifetime)
	}
}

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		kind  PowerUpKind
		speed float64
		score int
	}{
		{PowerUpSpeed, 18, 10},
		{PowerUpSlow, 8.4, 5},
		{PowerUpScore, 12, 25},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g, _ := newTestGame(t, quietConfig())
			g.session.Ball = Ball{X: 500, Y: 500, VX: 12, VY: -12, Radius: 40}
			g.session.PowerUps = []PowerUp{{Kind: tt.kind, X: 500, Y: 500, Lifetime: 10}}

			g.updatePowerUps()

			b := g.session.Ball
			if math.Abs(b.VX-tt.speed) > 1e-9 || math.Abs(b.VY+tt.speed) > 1e-9 {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", b.VX, b.VY, tt.speed, -tt.speed)
			}
			if g.session.Score != tt.score {
				t.Errorf("score = %d, want %d", g.session.Score, tt.score)
			}
		})
	}
}

func TestPowerUpExpires(t *testing.T) {
	g, _ := newTestGame(t, quietConfig())
	g.session.Ball = Ball{X: 500, Y: 500, Radius: 40}
	g.session.PowerUps = []PowerUp{
		{Kind: PowerUpScore, X: 500, Y: 500, Lifetime: 1},
		{Kind: PowerUpSlow, X: 900, Y: 800, Lifetime: 2},
	}

	if collected := g.updatePowerUps(); len(collected) != 0 {
		t.Errorf("expired power-up must not apply, got %v", collected)
	}
	if g.session.Score != 0 {
		t.Errorf("score = %d, want 0", g.session.Score)
	}
	if len(g.session.PowerUps) != 1 || g.session.PowerUps[0].Lifetime != 1 {
		t.Errorf("unexpected power-ups %+v", g.session.PowerUps)
	}
}

func TestSpawnWithinMargins(t *testing.T) {
	g, _ := newTestGame(t, quietConfig())
	for i := 0; i < 500; i++ {
		g.spawnPowerUp()
	}

	for _, p := range g.session.PowerUps {
		if p.X < 50 || p.X >= 1280-50 || p.Y < 100 || p.Y >= 960-100 {
			t.Fatalf("power-up outside spawn area: %+v", p)
		}
		if p.Kind < 0 || p.Kind >= PowerUpCount {
			t.Fatalf("invalid kind %d", p.Kind)
		}
		if p.Lifetime != 300 {
			t.Fatalf("lifetime = %d, want 300", p.Lifetime)
		}
	}
}

func TestTimeLimitAndRestart(t *testing.T) {
	cfg := quietConfig()
	cfg.Session.TimeLimitTicks = 5
	g, _ := newTestGame(t, cfg)

	g.Step(core.NewInputFrame(core.ActionJump), tick)
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), tick)
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("round should end at the time limit")
	}
	if g.session.Ticks != 5 {
		t.Errorf("ticks = %d, want 5", g.session.Ticks)
	}
	high := st.HighScore
	if high < 8 {
		t.Errorf("high score = %d, want at least the touch bonus", high)
	}

	res := g.Step(core.NewInputFrame(core.ActionJump), tick)

	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("tap should restart, got %v", res.State.Phase)
	}
	if res.State.Score != 0 || res.State.HighScore != high {
		t.Errorf("score/high = %d/%d, want 0/%d", res.State.Score, res.State.HighScore, high)
	}
	if len(g.session.PowerUps) != 1 {
		t.Errorf("restart should seed one power-up, got %d", len(g.session.PowerUps))
	}
	if b := g.session.Ball; b.X != 640 || b.Y != 480 || b.VX != 12 || b.VY != 12 {
		t.Errorf("ball not reset: %+v", b)
	}
}

func TestUnlimitedRound(t *testing.T) {
	cfg := quietConfig()
	cfg.Session.TimeLimitTicks = 0
	g, _ := newTestGame(t, cfg)

	for i := 0; i < 5000; i++ {
		g.Step(core.NewInputFrame(), tick)
	}
	if g.State().GameOver {
		t.Error("unlimited round must not end on its own")
	}
}

func TestSetActive(t *testing.T) {
	g, _ := newTestGame(t, quietConfig())

	g.SetActive(false)
	if !g.State().GameOver {
		t.Fatal("SetActive(false) should end the round")
	}
	g.SetActive(true)
	if g.State().Phase != core.PhasePlaying {
		t.Error("SetActive(true) should restart")
	}
}

func TestGameRollsBackFailedFrame(t *testing.T) {
	g, _ := newTestGame(t, quietConfig())
	g.session.Ball.VX = math.NaN()
	y := g.session.Ball.Y

	res := g.Step(core.NewInputFrame(), tick)

	if res.Err == nil {
		t.Fatal("expected an error")
	}
	if g.session.Ticks != 0 || g.session.Ball.Y != y {
		t.Error("failed frame should be rolled back")
	}
	if g.LastError() == nil {
		t.Error("LastError should be recorded")
	}
}

func TestIgnoresNonPositiveDelta(t *testing.T) {
	g, _ := newTestGame(t, quietConfig())
	before := g.session.Ball

	g.Step(core.NewInputFrame(core.ActionJump), 0)

	if g.session.Ball != before || g.session.Ticks != 0 {
		t.Error("dt <= 0 must not change the session")
	}
}

func TestPowerUpKindNames(t *testing.T) {
	tests := []struct {
		kind  PowerUpKind
		name  string
		glyph rune
	}{
		{PowerUpSpeed, "SPEED", '»'},
		{PowerUpScore, "SCORE", '$'},
		{PowerUpSlow, "SLOW", '«'},
		{PowerUpCount, "?", '?'},
	}
	for _, tt := range tests {
		if tt.kind.String() != tt.name || tt.kind.Glyph() != tt.glyph {
			t.Errorf("%d: got %s/%c, want %s/%c", tt.kind, tt.kind, tt.kind.Glyph(), tt.name, tt.glyph)
		}
	}
}

func TestRender(t *testing.T) {
	cfg := quietConfig()
	cfg.Session.TimeLimitTicks = 1
	g, _ := newTestGame(t, cfg)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.ContainsRune(scr.String(), ballChar) {
		t.Error("ball should be drawn")
	}

	g.Step(core.NewInputFrame(), tick)
	scr.Clear()
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over message missing")
	}
}
