// Package config provides YAML-based configuration loading and difficulty
// management for the platformer.
package config

// PlatformerConfig contains all tunable parameters of the platformer.
type PlatformerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Generation GenerationConfig `yaml:"generation"`
	Levels     LevelConfig      `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the viewport and camera in world units.
type WorldConfig struct {
	ViewWidth    int     `yaml:"view_width"`
	ViewHeight   int     `yaml:"view_height"`
	GroundY      int     `yaml:"ground_y"`
	GroundHeight int     `yaml:"ground_height"`
	DeathMargin  int     `yaml:"death_margin"` // Distance below the view that counts as a fall
	CameraLerp   float64 `yaml:"camera_lerp"`
	CameraLead   float64 `yaml:"camera_lead"` // Fraction of the view kept left of the player
	CameraTail   int     `yaml:"camera_tail"` // How far past the level end the camera may scroll
}

// PhysicsConfig defines movement and collision parameters.
// Velocities are in world units per frame, timers in milliseconds.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	JumpSpeed       float64 `yaml:"jump_speed"` // Launch speed magnitude (applied upward)
	MaxSpeed        float64 `yaml:"max_speed"`
	SlipAccel       float64 `yaml:"slip_accel"`
	SlipDurationMs  float64 `yaml:"slip_duration_ms"`
	JumpBufferMs    float64 `yaml:"jump_buffer_ms"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	SubstepSize     float64 `yaml:"substep_size"`
	LandingMinVY    float64 `yaml:"landing_min_vy"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"` // Spawn center x
	SpawnY int `yaml:"spawn_y"` // Spawn center y
}

// GenerationConfig defines the procedural platform generator.
type GenerationConfig struct {
	ChunkWidth          int     `yaml:"chunk_width"`
	PlatformsPerChunk   int     `yaml:"platforms_per_chunk"`
	AttemptsPerPlatform int     `yaml:"attempts_per_platform"`
	GenAhead            int     `yaml:"gen_ahead"`  // Distance ahead of the camera kept generated
	GenBuffer           int     `yaml:"gen_buffer"` // Distance behind the camera before eviction
	MinWidth            int     `yaml:"min_width"`
	MaxWidth            int     `yaml:"max_width"`
	WidthShrinkMin      int     `yaml:"width_shrink_min"` // MinWidth reduction at full progress
	WidthShrinkMax      int     `yaml:"width_shrink_max"` // MaxWidth reduction at full progress
	Height              int     `yaml:"height"`
	MinY                int     `yaml:"min_y"`
	MaxY                int     `yaml:"max_y"`
	StartY              int     `yaml:"start_y"`
	ReachFactor         float64 `yaml:"reach_factor"` // Multiple of the analytic jump height
	OverlapMargin       int     `yaml:"overlap_margin"`
	OscillateChance     float64 `yaml:"oscillate_chance"`
	OscillateChanceGain float64 `yaml:"oscillate_chance_gain"`
	MinSpeed            int     `yaml:"min_speed"`
	MaxSpeed            int     `yaml:"max_speed"`
	SpeedGain           int     `yaml:"speed_gain"`
	RangeBack           int     `yaml:"range_back"`
	RangeForward        int     `yaml:"range_forward"`
	RangeOverlap        int     `yaml:"range_overlap"` // Allowed oscillation overlap into the next chunk
}

// LevelConfig defines the hand-authored level layouts.
type LevelConfig struct {
	Count           int     `yaml:"count"`
	BaseLength      int     `yaml:"base_length"`
	LengthStep      int     `yaml:"length_step"`
	CheckpointEvery int     `yaml:"checkpoint_every"`
	SegmentWidth    int     `yaml:"segment_width"`
	HoleWidth       int     `yaml:"hole_width"`
	HoleGrowth      int     `yaml:"hole_growth"`
	GridPitch       int     `yaml:"grid_pitch"`
	RowPitch        int     `yaml:"row_pitch"`
	BaseWidth       int     `yaml:"base_width"`
	WidthDecay      float64 `yaml:"width_decay"` // Geometric width factor per level index
	MinWidth        int     `yaml:"min_width"`
	GroundY         int     `yaml:"-"` // Filled from WorldConfig
	GroundHeight    int     `yaml:"-"` // Filled from WorldConfig
	SlipDurationMs  float64 `yaml:"-"` // Filled from PhysicsConfig
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type string `yaml:"type"` // "distance" or "none"
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// LevelLayout returns the level section completed with world-derived values.
func (c PlatformerConfig) LevelLayout() LevelConfig {
	l := c.Levels
	l.GroundY = c.World.GroundY
	l.GroundHeight = c.World.GroundHeight
	l.SlipDurationMs = c.Physics.SlipDurationMs
	return l
}
