package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap-arcade/internal/core"
	"github.com/vovakirdan/flap-arcade/internal/diag"
	"github.com/vovakirdan/flap-arcade/internal/registry"
	"github.com/vovakirdan/flap-arcade/internal/replay"
	"github.com/vovakirdan/flap-arcade/internal/storage"
)

// Options are the optional collaborators of a game model.
type Options struct {
	Store    *storage.Store   // Score history; nil disables saving
	Diag     *diag.Ring       // Recent log lines for the debug overlay
	Recorder *replay.Recorder // Receives every simulated input frame
	Logger   *log.Logger
}

// Result describes how a game model finished.
type Result struct {
	State      core.GameState
	Steps      int
	BackToMenu bool
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	input      core.InputFrame
	state      core.GameState
	stepper    *Stepper
	rate       *FrameRate
	steps      int
	debug      bool
	embedded   bool // Owned by a SessionModel; back does not quit the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		opts:    opts,
		keys:    NewKeyMapper(),
		input:   core.NewInputFrame(),
		stepper: NewStepper(cfg.TickRate),
		rate:    &FrameRate{},
	}
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.input.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "d":
		m.debug = !m.debug
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.input.Has(core.ActionBack) && m.canLeave() {
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// canLeave reports whether the session is idle enough to abandon.
func (m Model) canLeave() bool {
	return m.state.Phase != core.PhasePlaying || m.state.Paused || m.state.GameOver
}

// handleResize follows the terminal size. The world is scaled to the
// screen, so the running session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs the simulation steps due at now. Buffered input goes
// to the first step only.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || (m.backToMenu && m.embedded) {
		return m, nil
	}
	m.rate.Tick(now)

	n := m.stepper.Advance(now)
	dt := m.stepper.Step()
	for i := range n {
		in := m.input
		if i > 0 {
			in = core.NewInputFrame()
		}
		if m.opts.Recorder != nil {
			m.opts.Recorder.Record(in)
		}

		result := m.game.Step(in, dt)
		m.state = result.State
		m.steps++
		if result.Err != nil {
			m.opts.Logger.Warn("frame rejected", "game", m.game.ID(), "error", result.Err)
		}
	}
	if n > 0 {
		m.input.Clear()
	}

	m.saveScore()
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the final score once per game over.
func (m *Model) saveScore() {
	if !m.state.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.state.Score <= 0 || m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.state.Score); err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// debugLines collects the overlay contents.
func (m Model) debugLines() []string {
	lines := []string{fmt.Sprintf("fps %.0f  steps %d", m.rate.FPS(), m.steps)}
	if in, ok := m.game.(registry.Inspector); ok {
		lines = append(lines, in.DebugInfo()...)
	}
	if m.opts.Diag != nil {
		lines = append(lines, m.opts.Diag.Lines()...)
	}
	return lines
}

func (m Model) render() {
	m.screen.Clear()
	m.game.Render(m.screen)
	if m.debug {
		drawOverlay(m.screen, m.debugLines())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result reports the outcome so far.
func (m Model) Result() Result {
	return Result{State: m.state, Steps: m.steps, BackToMenu: m.backToMenu}
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return Result{}, nil
}
