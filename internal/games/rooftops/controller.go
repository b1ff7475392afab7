package rooftops

import (
	"github.com/vovakirdan/rooftops/internal/config"
	"github.com/vovakirdan/rooftops/internal/core"
)

// Controller turns held input into horizontal acceleration and charged jumps.
type Controller struct {
	cfg config.PhysicsConfig
}

// NewController creates a controller using the given physics tuning.
func NewController(cfg config.PhysicsConfig) Controller {
	return Controller{cfg: cfg}
}

// Apply updates the player's velocity and jump charge for one frame of dt seconds.
func (c Controller) Apply(p *Player, dt float64, in core.InputFrame) {
	c.run(p, dt, in.Direction())
	c.jump(p, dt, in.IsHeld(core.ActionJump))
}

// run applies horizontal acceleration, ground friction and the speed clamp.
func (c Controller) run(p *Player, dt, dir float64) {
	accel := c.cfg.AirAccel
	if p.Grounded {
		accel = c.cfg.GroundAccel
	}
	p.VX += dir * accel * dt

	if dir == 0 && p.Grounded {
		p.VX = core.ApproachZero(p.VX, c.cfg.Friction*dt)
	}
	p.VX = core.ClampF(p.VX, -c.cfg.MaxSpeedX, c.cfg.MaxSpeedX)
}

// jump charges while the key is held on a roof and launches on release.
func (c Controller) jump(p *Player, dt float64, held bool) {
	if held {
		if p.Grounded {
			p.Charging = true
			p.JumpHold = min(1, p.JumpHold+dt/c.cfg.ChargeTime)
		}
		return
	}

	if p.Charging && p.Grounded {
		p.VY = -core.Lerp(c.cfg.JumpMin, c.cfg.JumpMax, p.JumpHold)
		p.Grounded = false
	}
	p.Charging = false
	// An airborne release keeps the charge unless configured otherwise.
	if p.Grounded || c.cfg.ResetChargeInAir {
		p.JumpHold = 0
	}
}
