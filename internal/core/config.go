package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the nominal duration of one tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level    int           // Current level (1-indexed)
	Elapsed  time.Duration // Time spent in the current level
	InMenu   bool          // Whether a menu screen is shown
	Won      bool          // Whether the final level was completed
	GameOver bool          // Whether the session has ended
	Paused   bool          // Whether the game is paused
}

// LevelFinish is reported when the player reaches a goal marker.
type LevelFinish struct {
	Level   int           // Level number (1-indexed)
	Elapsed time.Duration // Time taken for the level
	Final   bool          // Whether this was the last level
	Deaths  int           // Respawns during the attempt
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State    GameState
	Finished *LevelFinish // Non-nil on the tick a goal was reached
}
