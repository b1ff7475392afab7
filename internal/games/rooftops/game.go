// Package rooftops implements Endless Rooftops, a side-scrolling runner.
// The player runs and charge-jumps across procedurally generated rooftops,
// avoiding hazards and the deadly ground strip, scored by distance.
package rooftops

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/rooftops/internal/config"
	"github.com/vovakirdan/rooftops/internal/core"
	"github.com/vovakirdan/rooftops/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "rooftops"

// Game adapts the simulation to the platform's registry.Game interface.
type Game struct {
	sim      *Sim
	cfg      config.RooftopsConfig
	runtime  core.RuntimeConfig
	paused   bool
	lastRun  core.RunSummary
	finished bool // lastRun describes the most recent death
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new game instance with the configuration found on the search path.
func New() *Game {
	cfg, err := config.LoadRooftops(configPath)
	if err != nil {
		cfg = config.DefaultRooftopsConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new game instance with an explicit configuration.
func NewWithConfig(cfg config.RooftopsConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Endless Rooftops"
}

// Reset starts a new run, reseeding world generation from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.sim = NewSim(g.cfg, rand.New(rand.NewSource(seed)))
	g.sim.OnDeath(g.recordDeath)

	g.paused = false
	g.finished = false
	g.lastRun = core.RunSummary{}
}

// Step advances the game by one frame.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(g.runtime)
	}

	// Restart is accepted at any time, mid-run included.
	if in.Has(core.ActionRestart) {
		g.sim.Reset()
		g.paused = false
		g.finished = false
		return core.StepResult{State: g.State(), Restarted: true}
	}

	if !g.sim.Alive() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	died := g.sim.Step(dt, in)
	return core.StepResult{State: g.State(), Died: died}
}

// recordDeath keeps a summary of the finished run for the platform.
func (g *Game) recordDeath(ev DeathEvent) {
	cause := ev.Cause.String()
	if ev.Cause == DeathHazard {
		cause = ev.Hazard.Kind.String()
	}
	g.lastRun = core.RunSummary{
		Distance: ev.Distance,
		Duration: ev.Elapsed,
		Cause:    cause,
	}
	g.finished = true
}

// LastRun returns the summary of the most recent finished run, if the current
// run has ended.
func (g *Game) LastRun() (core.RunSummary, bool) {
	return g.lastRun, g.finished
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Distance(),
		GameOver: !g.sim.Alive(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

var _ registry.RunReporter = (*Game)(nil)
