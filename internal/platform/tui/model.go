package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rooftops/internal/config"
	"github.com/vovakirdan/rooftops/internal/core"
	"github.com/vovakirdan/rooftops/internal/registry"
	"github.com/vovakirdan/rooftops/internal/storage"
)

// Options tunes how a game is hosted.
type Options struct {
	// Logger receives run lifecycle events. Nil discards them.
	Logger *log.Logger

	// HoldWindow and RepeatWindow configure the HoldTracker.
	HoldWindow   time.Duration
	RepeatWindow time.Duration

	// Embedded makes Back (when paused or dead) return to a parent menu
	// instead of being ignored.
	Embedded bool
}

// OptionsFromConfig builds host options from the game's input config.
func OptionsFromConfig(in config.InputConfig, logger *log.Logger) Options {
	return Options{
		Logger:       logger,
		HoldWindow:   time.Duration(in.HoldMillis) * time.Millisecond,
		RepeatWindow: time.Duration(in.RepeatMillis) * time.Millisecond,
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *HoldTracker
	pulses     core.InputFrame // one-shot actions since the last tick
	help       help.Model
	gameState  core.GameState
	lastTick   time.Time
	embedded   bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:    store,
		logger:   opts.logger(),
		config:   cfg,
		keys:     NewKeyMapper(),
		holds:    NewHoldTracker(opts.HoldWindow, opts.RepeatWindow),
		pulses:   core.NewInputFrame(),
		help:     h,
		embedded: opts.Embedded,
	}
}

// playfieldHeight leaves the bottom row for the help bar.
func playfieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.embedded && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}

	case IsHeldAction(action):
		m.holds.Press(action, now)

	case action != core.ActionNone:
		m.pulses.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is laid out in its own units, so the run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// A leftover tick chain from an earlier run shows up as ticks closer than half
	// an interval; dropping one ends that chain.
	if !m.lastTick.IsZero() && now.Sub(m.lastTick) < tickInterval(m.config.TickRate)/2 {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	frame := m.pulses.Clone()
	m.holds.Apply(&frame, now)

	result := m.game.Step(dt, frame)
	m.gameState = result.State

	if result.Restarted {
		m.runSaved = false
		m.holds.Reset()
		m.logger.Debug("run restarted", "game", m.game.ID())
	}
	if result.Died {
		m.recordRun()
	}

	// Clear input for next frame
	m.pulses.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun logs the finished run and saves it once.
func (m *Model) recordRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	summary := core.RunSummary{Distance: m.gameState.Score}
	if r, ok := m.game.(registry.RunReporter); ok {
		if last, ok := r.LastRun(); ok {
			summary = last
		}
	}

	m.logger.Info("run finished",
		"game", m.game.ID(),
		"distance", summary.Distance,
		"cause", summary.Cause,
		"duration", summary.Duration.Round(time.Millisecond),
	)

	if m.store == nil || summary.Distance <= 0 {
		return
	}
	if _, err := m.store.SaveRun(storage.NewRun(m.game.ID(), summary)); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".rooftops", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	view := RenderScreen(m.screen)
	if m.config.ScreenH > 1 {
		view += "\n" + m.help.View(m.keys.Keys)
	}
	return view
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
