package physics

// SlipState tracks the velocity decay after input is released on a slippery surface.
type SlipState struct {
	Active  bool
	TimerMs float64 // Remaining decay time
	TotalMs float64 // Full decay time
	StartVX float64 // Velocity at the moment input was last active
}

// Player is the controllable body plus its gameplay state.
type Player struct {
	Body
	OnGround      bool       // Vertical contact from above this frame
	FacingRight   bool
	LastPlatform  PlatformID // Platform stood on, NoPlatform while airborne
	DesiredVX     float64    // Horizontal intent of the current frame
	JumpBufferMs  float64    // Remaining time of a buffered jump request
	Slip          SlipState
	BoostReady    bool // Next jump is boosted
	DeveloperMode bool // Jumps are always allowed
}

// NewPlayer creates a player of size w x h centered on (cx, cy).
func NewPlayer(cx, cy float64, w, h int) *Player {
	return &Player{
		Body:        NewBodyAt(cx, cy, w, h),
		FacingRight: true,
	}
}

// Grounded reports whether the player stands on a platform.
func (p *Player) Grounded() bool {
	return p.OnGround
}
