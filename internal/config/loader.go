package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the platformer configuration file name.
const FileName = "platformer.yaml"

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.arcade/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if parsed, ok := readValid(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := readValid(filepath.Join("configs", FileName)); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if parsed, ok := parse(defaultPlatformerYAML); ok {
		return parsed, nil
	}
	return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
}

// parse unmarshals data over the defaults and reports whether the result is usable.
func parse(data []byte) (PlatformerConfig, bool) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// ResolvePath returns the config file LoadPlatformer reads for customPath,
// or empty when the embedded default is used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{UserConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if _, ok := readValid(path); ok {
			return path
		}
	}
	return ""
}

func readValid(path string) (PlatformerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlatformerConfig{}, false
	}
	return parse(data)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", FileName)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Easy keeps the jump buffer generous, hard tightens it
	switch preset {
	case DifficultyEasy:
		cfg.Physics.JumpBufferMs = 150
	case DifficultyHard:
		cfg.Physics.JumpBufferMs = 70
	}
}

// Validate reports malformed values that the game core would reject.
func (c PlatformerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.ViewWidth > 0 && c.World.ViewHeight > 0, "world: view size must be positive, got %dx%d", c.World.ViewWidth, c.World.ViewHeight)
	check(c.World.CameraLerp > 0 && c.World.CameraLerp <= 1, "world: camera_lerp must be in (0, 1], got %v", c.World.CameraLerp)
	check(c.Physics.Gravity > 0, "physics: gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpSpeed > 0, "physics: jump_speed must be positive, got %v", c.Physics.JumpSpeed)
	check(c.Physics.MaxSpeed > 0, "physics: max_speed must be positive, got %v", c.Physics.MaxSpeed)
	check(c.Physics.SubstepSize > 0, "physics: substep_size must be positive, got %v", c.Physics.SubstepSize)
	check(c.Physics.SlipDurationMs >= 0, "physics: slip_duration_ms must not be negative, got %v", c.Physics.SlipDurationMs)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Generation.ChunkWidth > 0, "generation: chunk_width must be positive, got %d", c.Generation.ChunkWidth)
	check(c.Generation.PlatformsPerChunk >= 0, "generation: platforms_per_chunk must not be negative, got %d", c.Generation.PlatformsPerChunk)
	check(c.Generation.AttemptsPerPlatform > 0, "generation: attempts_per_platform must be positive, got %d", c.Generation.AttemptsPerPlatform)
	check(c.Generation.MinWidth > 0 && c.Generation.MinWidth <= c.Generation.MaxWidth, "generation: need 0 < min_width <= max_width, got %d..%d", c.Generation.MinWidth, c.Generation.MaxWidth)
	check(c.Generation.MinWidth-c.Generation.WidthShrinkMin > 0, "generation: width_shrink_min leaves no width")
	check(c.Generation.MinSpeed > 0 && c.Generation.MinSpeed <= c.Generation.MaxSpeed, "generation: need 0 < min_speed <= max_speed, got %d..%d", c.Generation.MinSpeed, c.Generation.MaxSpeed)
	check(c.Generation.Height > 0, "generation: height must be positive, got %d", c.Generation.Height)
	check(c.Generation.MinY <= c.Generation.MaxY, "generation: min_y %d exceeds max_y %d", c.Generation.MinY, c.Generation.MaxY)
	check(c.Generation.StartY >= c.Generation.MinY && c.Generation.StartY <= c.Generation.MaxY, "generation: start_y %d outside [%d, %d]", c.Generation.StartY, c.Generation.MinY, c.Generation.MaxY)
	check(c.Generation.ReachFactor > 0, "generation: reach_factor must be positive, got %v", c.Generation.ReachFactor)
	check(c.Levels.Count > 0, "levels: count must be positive, got %d", c.Levels.Count)
	check(c.Levels.BaseLength > 0, "levels: base_length must be positive, got %d", c.Levels.BaseLength)
	check(c.Levels.LengthStep >= 0, "levels: length_step must not be negative, got %d", c.Levels.LengthStep)
	check(c.Levels.CheckpointEvery > 0, "levels: checkpoint_every must be positive, got %d", c.Levels.CheckpointEvery)
	check(c.Levels.SegmentWidth > 0, "levels: segment_width must be positive, got %d", c.Levels.SegmentWidth)
	check(c.Levels.HoleWidth >= 0 && c.Levels.HoleGrowth >= 0, "levels: hole sizes must not be negative")
	check(c.Levels.GridPitch > 0 && c.Levels.RowPitch > 0, "levels: grid and row pitch must be positive")
	check(c.Levels.MinWidth > 0 && c.Levels.BaseWidth >= c.Levels.MinWidth, "levels: need 0 < min_width <= base_width")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid platformer config: %w", errors.Join(errs...))
	}
	return nil
}
