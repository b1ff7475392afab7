package config

import (
	_ "embed"
)

//go:embed defaults/rooftops.yaml
var defaultRooftopsYAML []byte

// DefaultRooftopsConfig returns the built-in Endless Rooftops configuration.
// It mirrors defaults/rooftops.yaml and backs the loader if the embedded file cannot be parsed.
func DefaultRooftopsConfig() RooftopsConfig {
	return RooftopsConfig{
		Physics: PhysicsConfig{
			Gravity:      2200,
			AirAccel:     2400,
			GroundAccel:  6000,
			Friction:     3600,
			MaxSpeedX:    380,
			MaxFallSpeed: 1600,
			ChargeTime:   2.2,
			JumpMin:      520,
			JumpMax:      980,
			MaxFrameTime: 0.033,
		},
		Player: PlayerConfig{
			Width:         56,
			Height:        80,
			StartX:        80,
			StartY:        300,
			UnitsPerMeter: 16,
		},
		World: WorldConfig{
			FloorY:         620,
			DeathMargin:    8,
			BodyOverhang:   22,
			MinWidth:       260,
			MaxWidth:       520,
			MinGap:         90,
			MaxGap:         240,
			MinRoofY:       280,
			MaxRoofY:       460,
			StartX:         -400,
			StartWidth:     800,
			StartRoofY:     420,
			StartHazards:   false,
			InitialHorizon: 1600,
			Lookahead:      800,
			Behind:         800,
			PruneMargin:    400,
		},
		Hazards: HazardsConfig{
			SingleChance: 0.7,
			DoubleChance: 0.25,
			Margin:       24,
			Sink:         8,
			Blade:        HazardSize{Width: 84, Height: 120},
			Creature:     HazardSize{Width: 96, Height: 110},
		},
		Camera: CameraConfig{
			Lead: 420,
			Lerp: 0.1,
		},
		Viewport: ViewportConfig{
			Width:  960,
			Height: 640,
		},
		Input: InputConfig{
			HoldMillis:   500,
			RepeatMillis: 120,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultRooftopsYAML
}
