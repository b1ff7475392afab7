// Package config provides YAML-based game configuration loading and
// validation for the rooftops runner.
package config

// RooftopsConfig contains all configuration for the Endless Rooftops game.
// World units are pixels of a virtual viewport; y grows downward.
type RooftopsConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	World    WorldConfig    `yaml:"world"`
	Hazards  HazardsConfig  `yaml:"hazards"`
	Camera   CameraConfig   `yaml:"camera"`
	Viewport ViewportConfig `yaml:"viewport"`
	Input    InputConfig    `yaml:"input"`
}

// PhysicsConfig defines movement and jump parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // px/s^2
	AirAccel     float64 `yaml:"air_accel"`      // horizontal control in air, px/s^2
	GroundAccel  float64 `yaml:"ground_accel"`   // horizontal control on a roof, px/s^2
	Friction     float64 `yaml:"friction"`       // deceleration with no input on a roof, px/s^2
	MaxSpeedX    float64 `yaml:"max_speed_x"`    // px/s
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // px/s, applies in both directions
	ChargeTime   float64 `yaml:"charge_time"`    // seconds to reach a full jump charge
	JumpMin      float64 `yaml:"jump_min"`       // launch speed at zero charge, px/s
	JumpMax      float64 `yaml:"jump_max"`       // launch speed at full charge, px/s
	MaxFrameTime float64 `yaml:"max_frame_time"` // dt clamp in seconds

	// ResetChargeInAir clears the jump charge on every release, airborne or not.
	ResetChargeInAir bool `yaml:"reset_charge_in_air"`
}

// PlayerConfig defines the player body and spawn point.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`

	// UnitsPerMeter converts traveled world units into displayed meters.
	UnitsPerMeter float64 `yaml:"units_per_meter"`
}

// WorldConfig defines rooftop generation.
type WorldConfig struct {
	FloorY         float64 `yaml:"floor_y"`       // ground baseline
	DeathMargin    float64 `yaml:"death_margin"`  // feet below floor_y - margin is a fall death
	BodyOverhang   float64 `yaml:"body_overhang"` // platform body extends this far past floor_y
	MinWidth       float64 `yaml:"min_width"`     // segment width range
	MaxWidth       float64 `yaml:"max_width"`
	MinGap         float64 `yaml:"min_gap"` // gap range between segments
	MaxGap         float64 `yaml:"max_gap"`
	MinRoofY       float64 `yaml:"min_roof_y"` // roof height range (y coordinate)
	MaxRoofY       float64 `yaml:"max_roof_y"`
	StartX         float64 `yaml:"start_x"` // starting platform
	StartWidth     float64 `yaml:"start_width"`
	StartRoofY     float64 `yaml:"start_roof_y"`
	StartHazards   bool    `yaml:"start_hazards"`   // allow hazards on the starting platform
	InitialHorizon float64 `yaml:"initial_horizon"` // generated on reset
	Lookahead      float64 `yaml:"lookahead"`       // generate to camera + viewport + lookahead
	Behind         float64 `yaml:"behind"`          // prune cutoff is camera - behind
	PruneMargin    float64 `yaml:"prune_margin"`    // extra visibility margin inside prune
}

// HazardsConfig defines rooftop hazard placement.
type HazardsConfig struct {
	SingleChance float64    `yaml:"single_chance"` // chance of exactly one hazard
	DoubleChance float64    `yaml:"double_chance"` // of the rest, chance of two
	Margin       float64    `yaml:"margin"`        // keep hazards this far from roof edges
	Sink         float64    `yaml:"sink"`          // hazards sit this far into the roof
	Blade        HazardSize `yaml:"blade"`
	Creature     HazardSize `yaml:"creature"`
}

// HazardSize is the fixed footprint of a hazard kind.
type HazardSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	Lead float64 `yaml:"lead"` // player sits this far right of the camera's left edge
	Lerp float64 `yaml:"lerp"` // smoothing factor applied once per frame
}

// ViewportConfig is the virtual screen the world is laid out for.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InputConfig tunes held-key emulation for terminals without key release events.
type InputConfig struct {
	HoldMillis   int `yaml:"hold_ms"`   // hold after the first press, covers the auto-repeat delay
	RepeatMillis int `yaml:"repeat_ms"` // hold once auto-repeat is flowing
}
