package flappy

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/flap-arcade/internal/core"
	"github.com/vovakirdan/flap-arcade/internal/prefs"
	"github.com/vovakirdan/flap-arcade/internal/registry"
)

func TestGameStartsInMenu(t *testing.T) {
	g, _ := newTestGame(t, 1)

	if g.State().Phase != core.PhaseMenu {
		t.Fatalf("phase = %v, want MENU", g.State().Phase)
	}

	y := g.session.Player.Y
	g.Step(idle(), tick)
	if g.session.Player.Y != y {
		t.Error("nothing should move in the menu")
	}

	res := g.Step(jump(), tick)
	if res.State.Phase != core.PhasePlaying {
		t.Errorf("tap in menu should start playing, got %v", res.State.Phase)
	}
	if g.session.Player.Y != 1440/2-48/2 {
		t.Errorf("player y = %v, want centred", g.session.Player.Y)
	}
}

func TestGameIgnoresNonPositiveDelta(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(jump(), tick)
	before := g.session.clone()

	g.Step(jump(), 0)
	g.Step(jump(), -tick)

	if g.session.Player != before.Player || g.session.Ticks != before.Ticks {
		t.Error("dt <= 0 must not change the session")
	}
}

func TestGameFlapVelocity(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(jump(), tick)

	g.Step(jump(), tick)

	phys := g.cfg.Physics
	want := -phys.FlapImpulse + phys.Gravity*tick.Seconds()
	if math.Abs(g.session.Player.Velocity-want) > 1e-9 {
		t.Errorf("velocity = %v, want %v", g.session.Player.Velocity, want)
	}
	if g.session.Taps != 2 {
		t.Errorf("taps = %d, want 2", g.session.Taps)
	}
}

func TestGameFallsToGameOver(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(jump(), tick)

	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(idle(), tick)
	}

	st := g.State()
	if !st.GameOver || st.Phase != core.PhaseGameOver {
		t.Fatalf("bird should hit the floor, phase = %v", st.Phase)
	}
	if g.session.Player.Alive {
		t.Error("player should be dead")
	}
	if g.session.Collisions != 1 {
		t.Errorf("collisions = %d, want 1", g.session.Collisions)
	}

	// Frozen until a tap.
	y := g.session.Player.Y
	g.Step(idle(), tick)
	if g.session.Player.Y != y {
		t.Error("game over must freeze the bird")
	}

	if res := g.Step(jump(), tick); res.State.Phase != core.PhaseMenu {
		t.Errorf("tap after game over should return to menu, got %v", res.State.Phase)
	}
}

func TestGameScoresPassedTube(t *testing.T) {
	g, store := newTestGame(t, 1)
	g.Step(jump(), tick)

	s := &g.session
	s.Tubes[0].X = 50
	s.Tubes[0].Offset = 0

	res := g.Step(idle(), tick)

	if res.State.GameOver {
		t.Fatal("bird in the middle of the gap should survive")
	}
	if res.State.Score != 1 || s.Scoring != 1 {
		t.Errorf("score/scoring = %d/%d, want 1/1", res.State.Score, s.Scoring)
	}
	if res.State.HighScore != 1 || store.GetInt("highScore", 0) != 1 {
		t.Errorf("high score not persisted: state %d, store %d", res.State.HighScore, store.GetInt("highScore", 0))
	}
}

func TestGameSingleTubeScoresOncePerPass(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.Count = 1
	// Recycle well right of the bird so the new gap is reached in flight.
	cfg.Obstacles.SpacingMin = 1.2
	cfg.Obstacles.SpacingMax = 1.3
	g := NewWithConfig(cfg, registry.Deps{Prefs: prefs.NewMemory()})
	g.Reset(core.RuntimeConfig{ScreenW: 96, ScreenH: 24, TickRate: 60, Seed: 3})
	g.Step(jump(), tick)

	s := &g.session
	passes := 0
	lastX := s.Tubes[0].X
	for range 1200 {
		// Hold the bird in the middle of the gap.
		s.Player.Y = cfg.World.Height/2 + s.Tubes[0].Offset - s.Player.Height/2
		s.Player.Velocity = 0

		res := g.Step(idle(), tick)
		if res.State.GameOver {
			t.Fatalf("bird held in the gap died at score %d", res.State.Score)
		}
		if s.Tubes[0].X > lastX {
			passes++
		}
		lastX = s.Tubes[0].X
	}

	if passes < 2 {
		t.Fatalf("expected the tube to recycle at least twice, got %d", passes)
	}
	if s.Score < passes || s.Score > passes+1 {
		t.Errorf("score = %d after %d recycles", s.Score, passes)
	}
}

func TestGameRestartResetsSession(t *testing.T) {
	g, _ := newTestGame(t, 9)
	g.Step(jump(), tick)

	g.session.Tubes[0].X = 50
	g.Step(idle(), tick)
	oldOffsets := make([]float64, len(g.session.Tubes))
	for i, tube := range g.session.Tubes {
		oldOffsets[i] = tube.Offset
	}

	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(idle(), tick)
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	res := g.Step(core.NewInputFrame(core.ActionRestart), tick)

	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("restart should start playing, got %v", res.State.Phase)
	}
	if res.State.Score != 0 || g.session.Scoring != 0 {
		t.Errorf("score/scoring = %d/%d, want 0/0", res.State.Score, g.session.Scoring)
	}
	if res.State.HighScore != 1 {
		t.Errorf("high score = %d, want 1", res.State.HighScore)
	}

	same := true
	for i, tube := range g.session.Tubes {
		if math.Abs(tube.Offset) > g.track.OffsetBound() {
			t.Errorf("tube %d offset %v out of bounds", i, tube.Offset)
		}
		if tube.Offset != oldOffsets[i] {
			same = false
		}
	}
	if same {
		t.Error("offsets should be re-randomized on restart")
	}
}

func TestGameHighScoreMonotonic(t *testing.T) {
	g, _ := newTestGame(t, 3)
	g.scores.TrySetHighScore(10)

	prev := g.State().HighScore
	for round := 0; round < 3; round++ {
		g.Step(core.NewInputFrame(core.ActionRestart), tick)
		g.Step(jump(), tick)
		for i := 0; i < 600 && !g.State().GameOver; i++ {
			g.Step(idle(), tick)
			if hs := g.State().HighScore; hs < prev {
				t.Fatalf("high score dropped from %d to %d", prev, hs)
			}
		}
		g.Step(jump(), tick)
	}
}

func TestGamePause(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(jump(), tick)

	res := g.Step(core.NewInputFrame(core.ActionPause), tick)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	y := g.session.Player.Y
	g.Step(idle(), tick)
	if g.session.Player.Y != y {
		t.Error("paused game must not move")
	}

	g.Step(core.NewInputFrame(core.ActionPause), tick)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameRollsBackFailedFrame(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(jump(), tick)
	g.session.Player.Velocity = math.NaN()
	before := g.session.clone()

	res := g.Step(idle(), tick)

	if !errors.Is(res.Err, errNotFinite) {
		t.Fatalf("Err = %v, want errNotFinite", res.Err)
	}
	if g.session.Player.Y != before.Player.Y || g.session.Ticks != before.Ticks {
		t.Error("failed frame should be rolled back")
	}
	if g.LastError() == nil {
		t.Error("LastError should record the failure")
	}
}

func TestGameRecoversPanickingFrame(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(jump(), tick)
	g.session.Scoring = 99
	ticks := g.session.Ticks
	tubeX := g.session.Tubes[0].X

	res := g.Step(idle(), tick)

	var fe *core.FrameError
	if !errors.As(res.Err, &fe) {
		t.Fatalf("Err = %v, want *core.FrameError", res.Err)
	}
	if g.session.Ticks != ticks || g.session.Tubes[0].X != tubeX {
		t.Error("panicking frame should be rolled back")
	}
	if res.State.Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want PLAYING", res.State.Phase)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (Session, core.GameState) {
		g, _ := newTestGame(t, 12345)
		for i := 0; i < 400; i++ {
			in := idle()
			if i%18 == 0 {
				in = jump()
			}
			g.Step(in, tick)
		}
		return g.session, g.State()
	}

	s1, st1 := run()
	s2, st2 := run()

	if st1 != st2 {
		t.Errorf("states differ: %+v vs %+v", st1, st2)
	}
	if s1.Player != s2.Player || s1.Ticks != s2.Ticks {
		t.Error("sessions differ for identical seed and input")
	}
	for i := range s1.Tubes {
		if s1.Tubes[i] != s2.Tubes[i] {
			t.Errorf("tube %d differs", i)
		}
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(t, 1)
	scr := core.NewScreen(96, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), "FLAPPY BIRD") {
		t.Error("menu should show the title")
	}

	g.Step(jump(), tick)
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(idle(), tick)
	}
	scr.Clear()
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over screen missing")
	}
	if !strings.ContainsRune(out, deadChar) {
		t.Error("dead bird should be drawn")
	}
}

func TestGameDebugInfo(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(jump(), tick)

	info := strings.Join(g.DebugInfo(), "\n")
	for _, want := range []string{"phase PLAYING", "taps 1", "last error none"} {
		if !strings.Contains(info, want) {
			t.Errorf("debug info missing %q:\n%s", want, info)
		}
	}
}
