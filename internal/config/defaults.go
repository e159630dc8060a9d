package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			ViewWidth:    900,
			ViewHeight:   600,
			GroundY:      560,
			GroundHeight: 40,
			DeathMargin:  300,
			CameraLerp:   0.15,
			CameraLead:   0.3333,
			CameraTail:   200,
		},
		Physics: PhysicsConfig{
			Gravity:         0.8,
			JumpSpeed:       17.1,
			MaxSpeed:        4.5,
			SlipAccel:       0.3,
			SlipDurationMs:  400,
			JumpBufferMs:    100,
			BoostMultiplier: 1.45,
			SubstepSize:     10,
			LandingMinVY:    1.0,
		},
		Player: PlayerConfig{
			Width:  48,
			Height: 48,
			SpawnX: 80,
			SpawnY: 480,
		},
		Generation: GenerationConfig{
			ChunkWidth:          300,
			PlatformsPerChunk:   3,
			AttemptsPerPlatform: 5,
			GenAhead:            1400,
			GenBuffer:           400,
			MinWidth:            80,
			MaxWidth:            180,
			WidthShrinkMin:      20,
			WidthShrinkMax:      40,
			Height:              16,
			MinY:                120,
			MaxY:                460,
			StartY:              460,
			ReachFactor:         0.8,
			OverlapMargin:       20,
			OscillateChance:     0.15,
			OscillateChanceGain: 0.10,
			MinSpeed:            1,
			MaxSpeed:            3,
			SpeedGain:           2,
			RangeBack:           80,
			RangeForward:        120,
			RangeOverlap:        100,
		},
		Levels: LevelConfig{
			Count:           5,
			BaseLength:      5000,
			LengthStep:      500,
			CheckpointEvery: 1000,
			SegmentWidth:    400,
			HoleWidth:       100,
			HoleGrowth:      10,
			GridPitch:       220,
			RowPitch:        70,
			BaseWidth:       160,
			WidthDecay:      0.88,
			MinWidth:        60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "distance",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
