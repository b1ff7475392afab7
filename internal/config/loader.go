package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "rooftops.yaml"

// LoadRooftops loads the game configuration.
// Search order: customPath -> ~/.rooftops/configs/rooftops.yaml -> ./configs/rooftops.yaml -> embedded default.
// Only an explicit customPath can produce an error; the search path falls through silently.
// The returned config is validated.
func LoadRooftops(customPath string) (RooftopsConfig, error) {
	// Start from defaults so partial files only override what they set.
	cfg := DefaultRooftopsConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	fromEmbed := DefaultRooftopsConfig()
	if err := yaml.Unmarshal(defaultRooftopsYAML, &fromEmbed); err != nil || fromEmbed.Validate() != nil {
		return DefaultRooftopsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return fromEmbed, nil
}

// tryLoad reads and validates a config file, reporting whether it is usable.
func tryLoad(path string) (RooftopsConfig, bool) {
	cfg := DefaultRooftopsConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rooftops", "configs", filename)
}

// Validate checks that the configuration describes a playable world.
// Every problem found is reported, joined into one error.
func (c RooftopsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.AirAccel >= 0, "physics.air_accel must not be negative, got %v", p.AirAccel)
	check(p.GroundAccel >= 0, "physics.ground_accel must not be negative, got %v", p.GroundAccel)
	check(p.Friction >= 0, "physics.friction must not be negative, got %v", p.Friction)
	check(p.MaxSpeedX > 0, "physics.max_speed_x must be positive, got %v", p.MaxSpeedX)
	check(p.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %v", p.MaxFallSpeed)
	check(p.ChargeTime > 0, "physics.charge_time must be positive, got %v", p.ChargeTime)
	check(p.JumpMin >= 0 && p.JumpMin <= p.JumpMax,
		"physics.jump_min (%v) must be within [0, jump_max (%v)]", p.JumpMin, p.JumpMax)
	check(p.MaxFrameTime > 0, "physics.max_frame_time must be positive, got %v", p.MaxFrameTime)

	pl := c.Player
	check(pl.Width > 0 && pl.Height > 0, "player size must be positive, got %vx%v", pl.Width, pl.Height)
	check(pl.UnitsPerMeter > 0, "player.units_per_meter must be positive, got %v", pl.UnitsPerMeter)

	w := c.World
	check(w.MinWidth > 0 && w.MinWidth <= w.MaxWidth,
		"world width range [%v, %v] is invalid", w.MinWidth, w.MaxWidth)
	check(w.MinGap >= 0 && w.MinGap <= w.MaxGap,
		"world gap range [%v, %v] is invalid", w.MinGap, w.MaxGap)
	check(w.MinRoofY <= w.MaxRoofY, "world roof range [%v, %v] is invalid", w.MinRoofY, w.MaxRoofY)
	check(w.MaxRoofY < w.FloorY, "world.max_roof_y (%v) must be above floor_y (%v)", w.MaxRoofY, w.FloorY)
	check(w.StartWidth > 0, "world.start_width must be positive, got %v", w.StartWidth)
	check(w.PruneMargin >= 0, "world.prune_margin must not be negative, got %v", w.PruneMargin)

	h := c.Hazards
	check(h.SingleChance >= 0 && h.SingleChance <= 1, "hazards.single_chance must be within [0, 1], got %v", h.SingleChance)
	check(h.DoubleChance >= 0 && h.DoubleChance <= 1, "hazards.double_chance must be within [0, 1], got %v", h.DoubleChance)
	check(h.Margin >= 0, "hazards.margin must not be negative, got %v", h.Margin)
	for _, hs := range []struct {
		name string
		size HazardSize
	}{{"blade", h.Blade}, {"creature", h.Creature}} {
		check(hs.size.Width > 0 && hs.size.Height > 0,
			"hazards.%s size must be positive, got %vx%v", hs.name, hs.size.Width, hs.size.Height)
		check(hs.size.Width <= w.MinWidth,
			"hazards.%s width (%v) must fit on the narrowest roof (%v)", hs.name, hs.size.Width, w.MinWidth)
	}

	check(c.Camera.Lerp > 0 && c.Camera.Lerp <= 1, "camera.lerp must be within (0, 1], got %v", c.Camera.Lerp)
	check(c.Viewport.Width > 0 && c.Viewport.Height > 0,
		"viewport size must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	check(c.Input.HoldMillis > 0 && c.Input.RepeatMillis > 0, "input hold windows must be positive")

	return errors.Join(errs...)
}
