// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through the gaps of a scrolling ring of tubes.
package flappy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap-arcade/internal/assets"
	"github.com/vovakirdan/flap-arcade/internal/config"
	"github.com/vovakirdan/flap-arcade/internal/core"
	"github.com/vovakirdan/flap-arcade/internal/registry"
)

// Sprite file names looked up in the asset directory.
const (
	SpriteBird       = "bird.png"
	SpriteBirdDead   = "bird2.png"
	SpriteTopTube    = "toptube.png"
	SpriteBottomTube = "bottomtube.png"
)

var errNotFinite = errors.New("flappy: player state is not finite")

// Game implements the MENU -> PLAYING -> GAME_OVER state machine.
type Game struct {
	cfg        config.FlappyConfig
	logger     *log.Logger
	sprites    *assets.Catalog
	difficulty *config.DifficultyManager
	scores     *ScoreTracker
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	track      *Track

	phase   core.Phase
	session Session
	paused  bool
	speed   float64
	lastErr error
}

// New creates a game from the configuration found on the search path.
// An unreadable config or unknown difficulty is logged and ignored.
func New(deps registry.Deps) *Game {
	deps = deps.WithDefaults()

	cfg, err := config.LoadFlappy(deps.ConfigPath)
	if err != nil {
		deps.Logger.Warn("using default flappy config", "error", err)
		cfg = config.DefaultFlappyConfig()
	}

	preset, err := config.ParsePreset(deps.Difficulty)
	if err != nil {
		deps.Logger.Warn("ignoring difficulty", "error", err)
	} else {
		config.ApplyFlappyPreset(&cfg, preset)
	}

	return NewWithConfig(cfg, deps)
}

// NewWithConfig creates a game from an explicit configuration.
func NewWithConfig(cfg config.FlappyConfig, deps registry.Deps) *Game {
	deps = deps.WithDefaults()
	logger := deps.Logger.WithPrefix("flappy")

	g := &Game{
		cfg:    cfg,
		logger: logger,
		sprites: assets.Load(deps.AssetsDir, map[string]assets.Size{
			SpriteBird:       assets.Size(cfg.Sprites.Bird),
			SpriteBirdDead:   assets.Size(cfg.Sprites.BirdDead),
			SpriteTopTube:    assets.Size(cfg.Sprites.TopTube),
			SpriteBottomTube: assets.Size(cfg.Sprites.BottomTube),
		}, logger),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		scores:     NewScoreTracker(deps.Prefs, cfg.Scoring.HighScoreKey, logger),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset reseeds the game and returns to the menu. The high score survives.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.track = NewTrack(g.cfg, g.sprites.Size(SpriteTopTube).Width, g.rng)
	g.phase = core.PhaseMenu
	g.paused = false
	g.lastErr = nil
	g.newSession()
}

// newSession lays out a fresh round, keeping the debug counters.
func (g *Game) newSession() {
	bird := g.sprites.Size(SpriteBird)
	taps, collisions := g.session.Taps, g.session.Collisions

	g.session = Session{
		Player: Player{
			X:      g.cfg.World.Width / 2,
			Y:      g.cfg.World.Height/2 - bird.Height/2,
			Width:  bird.Width,
			Height: bird.Height,
			Alive:  true,
		},
		Tubes:      g.track.Layout(),
		Taps:       taps,
		Collisions: collisions,
	}
	g.speed = g.difficulty.Speed(g.cfg.Obstacles.Speed, 0, 0)
}

// Step advances the game by one frame. A frame that fails or panics is
// discarded and the previous state is restored.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if dt <= 0 {
		return core.StepResult{State: g.State()}
	}

	prev := g.session.clone()
	prevPhase, prevPaused, prevSpeed := g.phase, g.paused, g.speed

	err := core.Guard(func() error {
		return g.update(in, dt.Seconds())
	})
	if err != nil {
		g.session = prev
		g.phase, g.paused, g.speed = prevPhase, prevPaused, prevSpeed
		g.lastErr = err
		g.logger.Error("frame discarded", "phase", g.phase, "error", err)
		return core.StepResult{State: g.State(), Err: err}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) update(in core.InputFrame, dt float64) error {
	tap := in.Has(core.ActionJump)
	if tap {
		g.session.Taps++
	}

	switch g.phase {
	case core.PhaseMenu:
		if tap || in.Has(core.ActionConfirm) {
			g.start()
		}
	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return nil
		}
		return g.play(tap, dt)
	case core.PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart):
			g.start()
		case tap || in.Has(core.ActionConfirm):
			g.phase = core.PhaseMenu
		}
	}
	return nil
}

func (g *Game) start() {
	g.newSession()
	g.phase = core.PhasePlaying
	g.paused = false
	g.logger.Debug("session started", "high", g.scores.HighScore())
}

// play runs one PLAYING tick: physics, tubes, collision, then scoring.
func (g *Game) play(flap bool, dt float64) error {
	s := &g.session
	s.Ticks++

	Integrate(&s.Player, g.cfg.Physics, dt, flap)
	if math.IsNaN(s.Player.Y) || math.IsInf(s.Player.Y, 0) || math.IsNaN(s.Player.Velocity) {
		return errNotFinite
	}

	g.speed = g.difficulty.Speed(g.cfg.Obstacles.Speed, s.Score, s.Ticks)
	for _, i := range g.track.Advance(s.Tubes, g.speed) {
		g.logger.Debug("tube recycled", "tube", i, "x", s.Tubes[i].X, "offset", s.Tubes[i].Offset)
	}

	hit := CheckCollision(s.Player.Hitbox(g.cfg.Player.HitboxFraction), s.Tubes)
	if hit || OutOfBounds(s.Player, g.cfg.World.Height) {
		s.Collisions++
		g.gameOver(hit)
		return nil
	}

	if g.scores.OnTubePassed(s, g.track.TubeWidth()) {
		g.logger.Debug("tube passed", "score", s.Score, "next", s.Scoring)
		if g.scores.TrySetHighScore(s.Score) {
			g.logger.Info("new high score", "score", s.Score)
		}
	}
	return nil
}

func (g *Game) gameOver(hitTube bool) {
	g.phase = core.PhaseGameOver
	g.session.Player.Alive = false
	reason := "out of bounds"
	if hitTube {
		reason = "tube"
	}
	g.logger.Info("game over", "reason", reason, "score", g.session.Score, "y", fmt.Sprintf("%.1f", g.session.Player.Y))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.session.Score,
		HighScore: g.scores.HighScore(),
		GameOver:  g.phase == core.PhaseGameOver,
		Paused:    g.paused,
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
		fmt.Sprintf("score %d  best %d", s.Score, g.scores.HighScore()),
		fmt.Sprintf("y %.1f  v %.1f", s.Player.Y, s.Player.Velocity),
		fmt.Sprintf("taps %d  collisions %d", s.Taps, s.Collisions),
		fmt.Sprintf("scoring tube %d  speed %.2f", s.Scoring, g.speed),
		fmt.Sprintf("last error %s", lastErr),
	}
}

func init() {
	registry.Register("flappy", func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}
