package rooftops

import (
	"iter"

	"github.com/vovakirdan/rooftops/internal/config"
	"github.com/vovakirdan/rooftops/internal/core"
)

// Resolver integrates player motion and resolves collisions against the world.
type Resolver struct {
	phys  config.PhysicsConfig
	world config.WorldConfig
}

// NewResolver creates a resolver using the given physics and world tuning.
func NewResolver(phys config.PhysicsConfig, world config.WorldConfig) Resolver {
	return Resolver{phys: phys, world: world}
}

// Integrate applies gravity, clamps fall speed and moves the player by its velocity.
func (r Resolver) Integrate(p *Player, dt float64) {
	p.VY += r.phys.Gravity * dt
	p.VY = core.ClampF(p.VY, -r.phys.MaxFallSpeed, r.phys.MaxFallSpeed)

	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// Collide lands the player on roofs from above and pushes it out of walls.
// Platforms are handled in order; when two roofs match, the last one wins.
func (r Resolver) Collide(p *Player, platforms iter.Seq[Platform]) {
	p.Grounded = false
	for plat := range platforms {
		r.land(p, plat)
		r.pushOut(p, plat)
	}
}

// land snaps a falling or resting player onto the roof when its feet cross the roof line.
func (r Resolver) land(p *Player, plat Platform) {
	if p.VY < 0 || !core.Overlaps(p.Feet(), plat.RoofStrip()) {
		return
	}
	p.Y = plat.RoofY - p.H
	p.VY = 0
	p.Grounded = true
}

// pushOut moves a player embedded in a platform body to the nearer side.
// Only position changes; velocity is kept.
func (r Resolver) pushOut(p *Player, plat Platform) {
	if !core.Overlaps(p.Rect(), plat.Wall()) {
		return
	}
	if p.Rect().CenterX() < plat.Rect().CenterX() {
		p.X = plat.X - p.W - wallPush
	} else {
		p.X = plat.Right() + wallPush
	}
}

// Death reports the first death condition that holds for the player, if any.
// Falling into the ground strip is checked before hazards.
func (r Resolver) Death(p *Player, hazards iter.Seq[Hazard]) (DeathCause, Hazard) {
	if p.Y+p.H > r.world.FloorY-r.world.DeathMargin {
		return DeathGround, Hazard{}
	}

	body := p.Hitbox()
	for h := range hazards {
		if core.Overlaps(body, h.Hitbox()) {
			return DeathHazard, h
		}
	}
	return DeathNone, Hazard{}
}
