package rooftops

import (
	"github.com/vovakirdan/rooftops/internal/core"
)

// Collision probe insets, in world units.
const (
	feetInset     = 12 // feet probe is narrower than the body on each side
	feetHeight    = 4
	roofStripLift = 4 // roof strip starts this far above the roof line
	roofStripH    = 10
	wallPad       = 2 // walls are inflated by this much on each side
	wallPush      = 1 // clearance left after pushing the player out of a wall
	hitboxInsetX  = 10
	hitboxInsetY  = 6
	hazardInset   = 8
)

// Player is the runner controlled by the user.
type Player struct {
	X, Y     float64 // Top-left corner in world units
	VX, VY   float64 // Velocity in units per second (negative VY is upward)
	W, H     float64 // Bounding box size
	Grounded bool    // Landed on a roof during the last physics step
	Charging bool    // Jump key held while grounded
	JumpHold float64 // Jump charge fraction in [0, 1]
	Alive    bool
	Dist     int // Best distance reached this run, in meters
}

// Rect returns the player's full bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Feet returns the thin probe along the player's bottom edge used for landing.
func (p Player) Feet() core.Rect {
	return core.NewRect(p.X+feetInset, p.Y+p.H-feetHeight/2, p.W-2*feetInset, feetHeight)
}

// Hitbox returns the forgiving body box used against hazards.
func (p Player) Hitbox() core.Rect {
	return p.Rect().Inset(hitboxInsetX, hitboxInsetY)
}

// Platform is one rooftop segment. Its body runs from the roof down past the floor.
type Platform struct {
	X     float64 // Left edge
	RoofY float64 // Top of the roof
	W     float64
	H     float64 // Body height, derived from RoofY and the floor baseline
}

// Rect returns the platform body.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.RoofY, p.W, p.H)
}

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 {
	return p.X + p.W
}

// RoofStrip returns the thin landing strip along the roof line.
func (p Platform) RoofStrip() core.Rect {
	return core.NewRect(p.X, p.RoofY-roofStripLift, p.W, roofStripH)
}

// Wall returns the slightly inflated body used for side collisions.
func (p Platform) Wall() core.Rect {
	return core.NewRect(p.X-wallPad, p.RoofY, p.W+2*wallPad, p.H)
}

// HazardKind distinguishes the two rooftop hazards.
type HazardKind int

const (
	HazardBlade HazardKind = iota
	HazardCreature
)

// String returns a human-readable name for the hazard kind.
func (k HazardKind) String() string {
	switch k {
	case HazardBlade:
		return "blade"
	case HazardCreature:
		return "creature"
	default:
		return "unknown"
	}
}

// Hazard is a static deadly object standing on a roof.
type Hazard struct {
	X, Y float64
	W, H float64
	Kind HazardKind
}

// Rect returns the hazard's full bounding box.
func (h Hazard) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, h.W, h.H)
}

// Right returns the x-coordinate of the right edge.
func (h Hazard) Right() float64 {
	return h.X + h.W
}

// Hitbox returns the inset box that actually kills the player.
func (h Hazard) Hitbox() core.Rect {
	return h.Rect().Inset(hazardInset, hazardInset)
}

// Camera is the world-to-screen offset. Y is always 0.
type Camera struct {
	X, Y float64
}

// Follow eases the camera toward the player, keeping it lead units from the left edge.
// Smoothing is applied once per call, so it depends on the frame rate.
func (c *Camera) Follow(playerX, lead, lerp float64) {
	c.X += (playerX - c.X - lead) * lerp
	c.Y = 0
}

// DeathCause describes how a run ended.
type DeathCause int

const (
	DeathNone DeathCause = iota
	DeathGround
	DeathHazard
)

// String returns a human-readable name for the cause.
func (c DeathCause) String() string {
	switch c {
	case DeathNone:
		return "none"
	case DeathGround:
		return "fell"
	case DeathHazard:
		return "hazard"
	default:
		return "unknown"
	}
}
