package rooftops

import (
	"testing"

	"github.com/vovakirdan/rooftops/internal/core"
)

func grounded() Player {
	p := newTestPlayer(80, 340)
	p.Grounded = true
	return p
}

func TestFullChargeJump(t *testing.T) {
	c := NewController(testConfig().Physics)
	p := grounded()

	for range 100 {
		c.Apply(&p, 0.033, input(core.ActionJump))
	}
	if !p.Charging {
		t.Fatal("player should be charging while jump is held on a roof")
	}
	if p.JumpHold != 1 {
		t.Fatalf("JumpHold = %v, expected to saturate at 1", p.JumpHold)
	}

	c.Apply(&p, 0.033, input())

	if p.VY != -980 {
		t.Errorf("VY = %v, expected -980", p.VY)
	}
	if p.Grounded || p.Charging {
		t.Errorf("Grounded=%v Charging=%v after launch, expected both false", p.Grounded, p.Charging)
	}
}

func TestZeroChargeJump(t *testing.T) {
	c := NewController(testConfig().Physics)
	p := grounded()

	c.Apply(&p, 0, input(core.ActionJump))
	c.Apply(&p, 0, input())

	if p.VY != -520 {
		t.Errorf("VY = %v, expected -520", p.VY)
	}
}

func TestPartialChargeJump(t *testing.T) {
	c := NewController(testConfig().Physics)
	p := grounded()

	// Half of the 2.2s charge time.
	c.Apply(&p, 1.1, input(core.ActionJump))
	c.Apply(&p, 0, input())

	if !approxEqual(p.VY, -750) {
		t.Errorf("VY = %v, expected -750", p.VY)
	}
}

func TestChargeOnlyOnRoof(t *testing.T) {
	c := NewController(testConfig().Physics)
	p := newTestPlayer(80, 100)

	c.Apply(&p, 0.033, input(core.ActionJump))

	if p.Charging || p.JumpHold != 0 {
		t.Errorf("Charging=%v JumpHold=%v in the air, expected no charge", p.Charging, p.JumpHold)
	}

	c.Apply(&p, 0.033, input())
	if p.VY != 0 {
		t.Errorf("VY = %v, releasing in the air should not launch", p.VY)
	}
}

func TestAirReleaseKeepsCharge(t *testing.T) {
	p := newTestPlayer(80, 100)
	p.Charging = true
	p.JumpHold = 0.5

	c := NewController(testConfig().Physics)
	c.Apply(&p, 0.01, input())

	if p.Charging {
		t.Error("Charging should end on release")
	}
	if p.JumpHold != 0.5 {
		t.Errorf("JumpHold = %v, expected the charge to be kept", p.JumpHold)
	}
}

func TestAirReleaseResetsChargeWhenConfigured(t *testing.T) {
	phys := testConfig().Physics
	phys.ResetChargeInAir = true

	p := newTestPlayer(80, 100)
	p.Charging = true
	p.JumpHold = 0.5

	NewController(phys).Apply(&p, 0.01, input())

	if p.JumpHold != 0 {
		t.Errorf("JumpHold = %v, expected 0", p.JumpHold)
	}
}

func TestGroundedReleaseResetsCharge(t *testing.T) {
	c := NewController(testConfig().Physics)
	p := grounded()
	p.JumpHold = 0.4

	c.Apply(&p, 0.01, input())

	if p.JumpHold != 0 {
		t.Errorf("JumpHold = %v, expected 0 on a roof with the key up", p.JumpHold)
	}
}

func TestFrictionDoesNotOvershoot(t *testing.T) {
	c := NewController(testConfig().Physics)

	for _, v := range []float64{10, -10, 100, -50} {
		p := grounded()
		p.VX = v

		c.Apply(&p, 0.033, input())

		if p.VX != 0 {
			t.Errorf("VX %v: got %v after friction, expected 0", v, p.VX)
		}
	}
}

func TestFrictionSlowsFastRunner(t *testing.T) {
	c := NewController(testConfig().Physics)
	p := grounded()
	p.VX = 300

	c.Apply(&p, 0.01, input())

	if !approxEqual(p.VX, 264) {
		t.Errorf("VX = %v, expected 264", p.VX)
	}
}

func TestNoFrictionInAir(t *testing.T) {
	c := NewController(testConfig().Physics)
	p := newTestPlayer(80, 100)
	p.VX = 200

	c.Apply(&p, 0.033, input())

	if p.VX != 200 {
		t.Errorf("VX = %v, expected airborne speed to be kept", p.VX)
	}
}

func TestRunSpeedClamp(t *testing.T) {
	c := NewController(testConfig().Physics)

	right := grounded()
	left := grounded()
	for range 60 {
		c.Apply(&right, 0.033, input(core.ActionRight))
		c.Apply(&left, 0.033, input(core.ActionLeft))
	}

	if right.VX != 380 {
		t.Errorf("VX = %v, expected 380", right.VX)
	}
	if left.VX != -380 {
		t.Errorf("VX = %v, expected -380", left.VX)
	}
}

func TestAirControlIsWeaker(t *testing.T) {
	c := NewController(testConfig().Physics)

	ground := grounded()
	air := newTestPlayer(80, 100)
	c.Apply(&ground, 0.01, input(core.ActionRight))
	c.Apply(&air, 0.01, input(core.ActionRight))

	if !approxEqual(ground.VX, 60) || !approxEqual(air.VX, 24) {
		t.Errorf("ground VX = %v, air VX = %v, expected 60 and 24", ground.VX, air.VX)
	}
}
