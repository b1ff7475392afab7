package rooftops

import (
	"math"
	"time"

	"github.com/vovakirdan/rooftops/internal/config"
	"github.com/vovakirdan/rooftops/internal/core"
)

// DeathEvent describes the end of a run. It is delivered once per death.
type DeathEvent struct {
	Cause    DeathCause
	Hazard   Hazard // Set when Cause is DeathHazard
	Distance int
	Elapsed  time.Duration
	Player   Player // Player state at the moment of death
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Player    Player
	Camera    Camera
	Platforms []Platform
	Hazards   []Hazard
	Distance  int
	Alive     bool
	Elapsed   time.Duration
	FloorY    float64
}

// Sim owns the whole simulation state: player, camera and world.
// It is not safe for concurrent use; the host calls Step once per frame.
type Sim struct {
	cfg        config.RooftopsConfig
	world      *World
	player     Player
	camera     Camera
	controller Controller
	resolver   Resolver
	viewportW  float64
	elapsed    time.Duration
	deathHooks []func(DeathEvent)
}

// NewSim creates a simulation and lays out a fresh run.
func NewSim(cfg config.RooftopsConfig, rng Rand) *Sim {
	s := &Sim{
		cfg:        cfg,
		world:      NewWorld(cfg.World, cfg.Hazards, rng),
		controller: NewController(cfg.Physics),
		resolver:   NewResolver(cfg.Physics, cfg.World),
		viewportW:  cfg.Viewport.Width,
	}
	s.Reset()
	return s
}

// OnDeath registers a callback fired exactly once per Alive to Dead transition.
func (s *Sim) OnDeath(fn func(DeathEvent)) {
	s.deathHooks = append(s.deathHooks, fn)
}

// Reset regenerates the world and puts the player and camera back at the start.
func (s *Sim) Reset() {
	s.world.Reset()
	s.player = Player{
		X:     s.cfg.Player.StartX,
		Y:     s.cfg.Player.StartY,
		W:     s.cfg.Player.Width,
		H:     s.cfg.Player.Height,
		Alive: true,
	}
	s.camera = Camera{}
	s.elapsed = 0
}

// Step advances the simulation by one frame. dt is the wall-clock time since the
// previous frame; it is clamped to the configured maximum frame time.
// Nothing moves while the player is dead. It reports whether the player died
// during this frame.
func (s *Sim) Step(dt time.Duration, in core.InputFrame) bool {
	if !s.player.Alive {
		return false
	}

	secs := core.ClampF(dt.Seconds(), 0, s.cfg.Physics.MaxFrameTime)
	s.elapsed += time.Duration(secs * float64(time.Second))

	s.controller.Apply(&s.player, secs, in)
	s.resolver.Integrate(&s.player, secs)
	s.resolver.Collide(&s.player, s.world.AllPlatforms())

	cause, hazard := s.resolver.Death(&s.player, s.world.AllHazards())

	// The rest of the frame still runs on the frame the player dies.
	s.camera.Follow(s.player.X, s.cfg.Camera.Lead, s.cfg.Camera.Lerp)

	s.world.ExtendTo(s.camera.X + s.viewportW + s.cfg.World.Lookahead)
	s.world.Prune(s.camera.X - s.cfg.World.Behind)

	s.updateDistance()

	if cause != DeathNone {
		s.die(cause, hazard)
		return true
	}
	return false
}

// updateDistance raises the distance metric; moving backward never lowers it.
func (s *Sim) updateDistance() {
	d := int(math.Floor((s.player.X - s.cfg.Player.StartX) / s.cfg.Player.UnitsPerMeter))
	s.player.Dist = max(s.player.Dist, d)
}

// die ends the run. Calling it on a dead player does nothing.
func (s *Sim) die(cause DeathCause, hazard Hazard) {
	if !s.player.Alive {
		return
	}
	s.player.Alive = false

	ev := DeathEvent{
		Cause:    cause,
		Hazard:   hazard,
		Distance: s.player.Dist,
		Elapsed:  s.elapsed,
		Player:   s.player,
	}
	for _, fn := range s.deathHooks {
		fn(ev)
	}
}

// Player returns a copy of the player.
func (s *Sim) Player() Player {
	return s.player
}

// Camera returns the camera offset.
func (s *Sim) Camera() Camera {
	return s.camera
}

// World returns the world for read access.
func (s *Sim) World() *World {
	return s.world
}

// Platforms returns a copy of the live platforms, leftmost first.
func (s *Sim) Platforms() []Platform {
	return s.world.Platforms()
}

// Hazards returns a copy of the live hazards, leftmost first.
func (s *Sim) Hazards() []Hazard {
	return s.world.Hazards()
}

// Distance returns the best distance reached this run, in meters.
func (s *Sim) Distance() int {
	return s.player.Dist
}

// Alive reports whether the run is still going.
func (s *Sim) Alive() bool {
	return s.player.Alive
}

// Elapsed returns the simulated time of the current run.
func (s *Sim) Elapsed() time.Duration {
	return s.elapsed
}

// Snapshot returns a copy of the state for rendering.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Player:    s.player,
		Camera:    s.camera,
		Platforms: s.world.Platforms(),
		Hazards:   s.world.Hazards(),
		Distance:  s.player.Dist,
		Alive:     s.player.Alive,
		Elapsed:   s.elapsed,
		FloorY:    s.cfg.World.FloorY,
	}
}
