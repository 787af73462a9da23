// Package bounce implements a bouncing ball game. The ball scores on
// every wall it touches; tapping reverses it and collecting power-ups
// changes its speed or awards bonuses.
package bounce

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap-arcade/internal/config"
	"github.com/vovakirdan/flap-arcade/internal/core"
	"github.com/vovakirdan/flap-arcade/internal/prefs"
	"github.com/vovakirdan/flap-arcade/internal/registry"
)

// Ball is the player-controlled ball. Velocity is in world units per tick.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Session is the mutable state of one round.
type Session struct {
	Ball     Ball
	PowerUps []PowerUp
	Score    int
	Ticks    int
	Taps     int
}

func (s *Session) clone() Session {
	c := *s
	c.PowerUps = append([]PowerUp(nil), s.PowerUps...)
	return c
}

// Game implements the bouncing ball mode. It starts playing immediately
// and only knows PLAYING and GAME_OVER.
type Game struct {
	cfg     config.BounceConfig
	logger  *log.Logger
	high    *prefs.HighScore
	runtime core.RuntimeConfig
	rng     *rand.Rand

	phase   core.Phase
	session Session
	paused  bool
	lastErr error
}

// New creates a game from the configuration found on the search path.
func New(deps registry.Deps) *Game {
	deps = deps.WithDefaults()
	cfg, err := config.LoadBounce(deps.ConfigPath)
	if err != nil {
		deps.Logger.Warn("using default bounce config", "error", err)
		cfg = config.DefaultBounceConfig()
	}
	return NewWithConfig(cfg, deps)
}

// NewWithConfig creates a game from an explicit configuration.
func NewWithConfig(cfg config.BounceConfig, deps registry.Deps) *Game {
	deps = deps.WithDefaults()
	logger := deps.Logger.WithPrefix("bounce")
	g := &Game{
		cfg:    cfg,
		logger: logger,
		high:   prefs.LoadHighScore(deps.Prefs, cfg.Scoring.HighScoreKey, logger),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bounce"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bouncing Ball"
}

// Reset reseeds the game and starts a new round.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.paused = false
	g.lastErr = nil
	g.restart()
}

// restart centres the ball, clears the score and seeds one power-up.
func (g *Game) restart() {
	taps := g.session.Taps
	speed := g.cfg.Ball.Speed
	g.session = Session{
		Ball: Ball{
			X:      g.cfg.World.Width / 2,
			Y:      g.cfg.World.Height / 2,
			VX:     speed,
			VY:     speed,
			Radius: g.cfg.Ball.Radius,
		},
		Taps: taps,
	}
	g.phase = core.PhasePlaying
	g.spawnPowerUp()
}

// Step advances the game by one tick. A failed frame is rolled back.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if dt <= 0 {
		return core.StepResult{State: g.State()}
	}

	prev := g.session.clone()
	prevPhase, prevPaused := g.phase, g.paused

	if err := core.Guard(func() error { return g.update(in) }); err != nil {
		g.session = prev
		g.phase, g.paused = prevPhase, prevPaused
		g.lastErr = err
		g.logger.Error("frame discarded", "error", err)
		return core.StepResult{State: g.State(), Err: err}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) update(in core.InputFrame) error {
	tap := in.Has(core.ActionJump)
	if tap {
		g.session.Taps++
	}

	if g.phase == core.PhaseGameOver {
		if tap || in.Has(core.ActionRestart) {
			g.restart()
			g.logger.Debug("restarted")
		}
		return nil
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	if tap {
		g.touch()
	}
	return g.tick()
}

// touch reverses the ball and may spawn a power-up.
func (g *Game) touch() {
	b := &g.session.Ball
	b.VX, b.VY = -b.VX, -b.VY
	g.session.Score += g.cfg.Ball.TouchBonus
	if g.rng.Float64() < g.cfg.PowerUps.TouchSpawnChance {
		g.spawnPowerUp()
	}
}

func (g *Game) tick() error {
	s := &g.session
	s.Ticks++

	s.Ball.X += s.Ball.VX
	s.Ball.Y += s.Ball.VY
	if math.IsNaN(s.Ball.X) || math.IsNaN(s.Ball.Y) {
		return fmt.Errorf("bounce: ball position is not finite at tick %d", s.Ticks)
	}

	s.Score += Bounce(&s.Ball, g.cfg.World.Width, g.cfg.World.Height)
	g.offerHighScore()

	g.updatePowerUps()
	if g.rng.Float64() < g.cfg.PowerUps.SpawnChance {
		g.spawnPowerUp()
	}

	if limit := g.cfg.Session.TimeLimitTicks; limit > 0 && s.Ticks >= limit {
		g.offerHighScore()
		g.phase = core.PhaseGameOver
		g.logger.Info("time up", "score", s.Score, "high", g.high.Value())
	}
	return nil
}

func (g *Game) offerHighScore() {
	if g.high.Offer(g.session.Score) {
		g.logger.Debug("new high score", "score", g.session.Score)
	}
}

// Bounce turns the ball back inside a w by h box, pointing each velocity
// component away from any wall it touches. It returns the number of
// walls touched.
func Bounce(b *Ball, w, h float64) int {
	hits := 0
	if b.X <= b.Radius {
		b.VX = math.Abs(b.VX)
		hits++
	}
	if b.X >= w-b.Radius {
		b.VX = -math.Abs(b.VX)
		hits++
	}
	if b.Y <= b.Radius {
		b.VY = math.Abs(b.VY)
		hits++
	}
	if b.Y >= h-b.Radius {
		b.VY = -math.Abs(b.VY)
		hits++
	}
	return hits
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.session.Score,
		HighScore: g.high.Value(),
		GameOver:  g.phase == core.PhaseGameOver,
		Paused:    g.paused,
	}
}

// Elapsed returns the play time of the current round.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.session.Ticks) * g.runtime.TickDuration()
}

// SetActive ends the round when active is false and restarts a finished
// one when it is true.
func (g *Game) SetActive(active bool) {
	switch {
	case !active && g.phase == core.PhasePlaying:
		g.offerHighScore()
		g.phase = core.PhaseGameOver
	case active && g.phase == core.PhaseGameOver:
		g.restart()
	}
}

// LastError returns the error of the most recently discarded frame.
func (g *Game) LastError() error {
	return g.lastErr
}

// DebugInfo implements registry.Inspector.
func (g *Game) DebugInfo() []string {
	s := &g.session
	lastErr := "none"
	if g.lastErr != nil {
		lastErr = g.lastErr.Error()
	}
	return []string{
		fmt.Sprintf("phase %s", g.phase),
		fmt.Sprintf("score %d  best %d", s.Score, g.high.Value()),
		fmt.Sprintf("ball %.0f,%.0f  v %.1f,%.1f", s.Ball.X, s.Ball.Y, s.Ball.VX, s.Ball.VY),
		fmt.Sprintf("power-ups %d  taps %d", len(s.PowerUps), s.Taps),
		fmt.Sprintf("last error %s", lastErr),
	}
}

func init() {
	registry.Register("bounce", func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
