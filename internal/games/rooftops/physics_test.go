package rooftops

import (
	"slices"
	"testing"
)

func newTestResolver() Resolver {
	cfg := testConfig()
	return NewResolver(cfg.Physics, cfg.World)
}

func newTestPlayer(x, y float64) Player {
	return Player{X: x, Y: y, W: 56, H: 80, Alive: true}
}

var startRoof = Platform{X: -400, RoofY: 420, W: 800, H: 222}

func TestIntegrateClampsFallSpeed(t *testing.T) {
	r := newTestResolver()
	p := newTestPlayer(0, 0)

	for range 200 {
		r.Integrate(&p, 0.033)
		if p.VY > 1600 {
			t.Fatalf("VY = %v exceeded the fall clamp", p.VY)
		}
	}
	if p.VY != 1600 {
		t.Errorf("VY = %v, expected to converge to 1600", p.VY)
	}
}

func TestIntegrateClampsRiseSpeed(t *testing.T) {
	r := newTestResolver()
	p := newTestPlayer(0, 0)
	p.VY = -5000

	r.Integrate(&p, 0.01)

	if p.VY != -1600 {
		t.Errorf("VY = %v, expected -1600", p.VY)
	}
}

func TestIntegrateMovesByVelocity(t *testing.T) {
	r := newTestResolver()
	p := newTestPlayer(100, 100)
	p.VX = 300

	r.Integrate(&p, 0.01)

	if !approxEqual(p.X, 103) {
		t.Errorf("X = %v, expected 103", p.X)
	}
	if !approxEqual(p.VY, 22) {
		t.Errorf("VY = %v, expected 22", p.VY)
	}
	if !approxEqual(p.Y, 100.22) {
		t.Errorf("Y = %v, expected 100.22", p.Y)
	}
}

func TestLandingOnRoof(t *testing.T) {
	r := newTestResolver()
	p := newTestPlayer(80, 420-80)
	plats := slices.Values([]Platform{startRoof})

	for i := range 120 {
		r.Integrate(&p, 1.0/60)
		r.Collide(&p, plats)

		if !p.Grounded {
			t.Fatalf("frame %d: player should be grounded", i)
		}
		if p.Y != 340 || p.VY != 0 {
			t.Fatalf("frame %d: Y=%v VY=%v, expected 340 and 0", i, p.Y, p.VY)
		}
	}
}

func TestLandingRequiresDownwardMotion(t *testing.T) {
	r := newTestResolver()
	p := newTestPlayer(80, 420-80)
	p.VY = -400

	r.Collide(&p, slices.Values([]Platform{startRoof}))

	if p.Grounded {
		t.Error("a rising player should not land")
	}
	if p.VY != -400 {
		t.Errorf("VY = %v, expected unchanged -400", p.VY)
	}
}

func TestCollideClearsGrounded(t *testing.T) {
	r := newTestResolver()
	p := newTestPlayer(80, 100)
	p.Grounded = true

	r.Collide(&p, slices.Values([]Platform{startRoof}))

	if p.Grounded {
		t.Error("Grounded should be recomputed every step")
	}
}

func TestWallPushOut(t *testing.T) {
	wall := Platform{X: 500, RoofY: 300, W: 300, H: 342}

	tests := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"from left", 460, 500 - 56 - 1},
		{"from right", 790, 800 + 1},
	}

	r := newTestResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(tt.x, 400)
			p.VX = 250

			r.Collide(&p, slices.Values([]Platform{wall}))

			if p.X != tt.wantX {
				t.Errorf("X = %v, expected %v", p.X, tt.wantX)
			}
			if p.VX != 250 {
				t.Errorf("VX = %v, push-out should keep velocity", p.VX)
			}
			if p.Y != 400 {
				t.Errorf("Y = %v, push-out should not move vertically", p.Y)
			}
		})
	}
}

func TestDeathByGround(t *testing.T) {
	r := newTestResolver()

	p := newTestPlayer(0, 620-8-80)
	if cause, _ := r.Death(&p, slices.Values([]Hazard(nil))); cause != DeathNone {
		t.Errorf("feet exactly at the death line: cause = %v, expected none", cause)
	}

	p.Y += 0.5
	if cause, _ := r.Death(&p, slices.Values([]Hazard(nil))); cause != DeathGround {
		t.Errorf("feet below the death line: cause = %v, expected fell", cause)
	}
}

func TestDeathByHazard(t *testing.T) {
	r := newTestResolver()
	blade := Hazard{X: 100, Y: 300, W: 84, H: 120, Kind: HazardBlade}

	p := newTestPlayer(120, 320)
	cause, hit := r.Death(&p, slices.Values([]Hazard{blade}))
	if cause != DeathHazard {
		t.Fatalf("cause = %v, expected hazard", cause)
	}
	if hit != blade {
		t.Errorf("hazard = %+v, expected %+v", hit, blade)
	}
}

func TestHazardHitboxIsForgiving(t *testing.T) {
	r := newTestResolver()
	blade := Hazard{X: 100, Y: 300, W: 84, H: 120, Kind: HazardBlade}

	// Bounding boxes overlap by 10 units, inset hitboxes do not.
	p := newTestPlayer(100-56+10, 320)
	if cause, _ := r.Death(&p, slices.Values([]Hazard{blade})); cause != DeathNone {
		t.Errorf("cause = %v, expected none for a grazing touch", cause)
	}
}

func TestGroundDeathTakesPriority(t *testing.T) {
	r := newTestResolver()
	p := newTestPlayer(0, 600)
	h := Hazard{X: 0, Y: 580, W: 84, H: 120, Kind: HazardCreature}

	if cause, _ := r.Death(&p, slices.Values([]Hazard{h})); cause != DeathGround {
		t.Errorf("cause = %v, expected fell", cause)
	}
}
