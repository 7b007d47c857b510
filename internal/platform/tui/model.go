package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-bricks/internal/breakout"
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

// Options configures a play session.
type Options struct {
	Config   config.BreakoutConfig
	Runtime  core.RuntimeConfig // Initial terminal size, tick rate and seed
	Store    *storage.Store     // Optional; nil disables score saving
	Logger   *log.Logger        // Optional; nil discards logs
	Hold     time.Duration      // Held-key window, DefaultHoldWindow if zero
	ShotsDir string             // Screenshot directory, ~/.bricks/screenshots if empty

	NoScreenshots bool
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	game   *breakout.Game
	proj   Projection
	screen *core.Screen
	bounds core.Bounds

	store  *storage.Store
	logger *log.Logger
	keys   KeyMap
	hold   *HoldTracker

	tickRate int
	lastTick time.Time
	now      func() time.Time
	confirm  bool // Confirm pressed since the last tick
	runID    string
	shotsDir string
	noShots  bool
	quitting bool
}

// NewModel creates a new Bubble Tea model from the options.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	proj := NewProjection(opts.Config.Display)
	logger.Debug("session created", "seed", rt.Seed, "cols", rt.ScreenW, "rows", rt.ScreenH)

	return Model{
		game:     breakout.New(opts.Config, core.NewRandom(rt.Seed)),
		proj:     proj,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		bounds:   proj.Bounds(rt.ScreenW, rt.ScreenH),
		store:    opts.Store,
		logger:   logger,
		keys:     DefaultKeyMap(),
		hold:     NewHoldTracker(opts.Hold),
		tickRate: rt.TickRate,
		now:      time.Now,
		shotsDir: opts.ShotsDir,
		noShots:  opts.NoScreenshots,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if !m.noShots {
			m.saveScreenshot()
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.now())
	case core.ActionConfirm:
		m.confirm = true
	}

	return m, nil
}

// handleResize processes window resize events.
// The game keeps running; it reads the new bounds on the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.bounds = m.proj.Bounds(msg.Width, msg.Height)
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height, "bounds", m.bounds)
	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	frame := core.NewInputFrame()
	m.hold.Fill(&frame, now)
	if m.confirm {
		frame.Set(core.ActionConfirm)
		m.confirm = false
	}

	prev := m.game.Phase()
	result := m.game.Step(frame, dt, m.bounds)
	if result.Transitioned {
		m.onTransition(prev, result.State)
	}

	return m, tickCmd(m.tickRate)
}

// onTransition logs phase changes, opens a run id for every new round
// and saves the score of every finished one.
func (m *Model) onTransition(prev breakout.Phase, st core.GameState) {
	phase := m.game.Phase()
	m.logger.Debug("phase changed", "from", prev, "to", phase, "score", st.Score)

	switch phase {
	case breakout.PhasePlaying:
		m.runID = uuid.NewString()
		m.hold.Release()
	case breakout.PhaseDead:
		m.saveScore(st.Score, storage.OutcomeDead)
	case breakout.PhaseLevelCompleted:
		m.saveScore(st.Score, storage.OutcomeCleared)
	}
}

// saveScore records a finished round. Saving is best-effort.
func (m *Model) saveScore(score int, outcome string) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.runID, score, outcome); err != nil {
		m.logger.Warn("could not save score", "run", m.runID, "error", err)
		return
	}
	m.logger.Info("score saved", "run", m.runID, "score", score, "outcome", outcome)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.game.Snapshot(), m.proj)

	dir := m.shotsDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".bricks", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bricks_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.game.Snapshot(), m.proj)
	return RenderScreen(m.screen)
}

// Phase returns the current game phase.
func (m Model) Phase() breakout.Phase {
	return m.game.Phase()
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
