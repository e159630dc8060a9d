package physics

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Params holds the tunable physics constants.
type Params struct {
	Gravity         float64 // Added to vy once per airborne frame
	JumpSpeed       float64 // Launch speed magnitude
	MaxSpeed        float64 // Horizontal speed for full input
	SlipAccel       float64 // Max change of vx per frame on slippery surfaces
	SlipDurationMs  float64 // Fallback decay time for slippery platforms
	JumpBufferMs    float64
	BoostMultiplier float64
	SubstepSize     float64 // Max vertical travel per sub-step
	LandingMinVY    float64 // Min impact speed that counts as a landing
}

// ParamsFromConfig converts the physics config section.
func ParamsFromConfig(c config.PhysicsConfig) Params {
	return Params{
		Gravity:         c.Gravity,
		JumpSpeed:       c.JumpSpeed,
		MaxSpeed:        c.MaxSpeed,
		SlipAccel:       c.SlipAccel,
		SlipDurationMs:  c.SlipDurationMs,
		JumpBufferMs:    c.JumpBufferMs,
		BoostMultiplier: c.BoostMultiplier,
		SubstepSize:     c.SubstepSize,
		LandingMinVY:    c.LandingMinVY,
	}
}

// DefaultParams returns the default physics constants.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultPlatformerConfig().Physics)
}

// MaxJumpHeight returns the apex height of a standing jump, v^2 / (2g).
func (p Params) MaxJumpHeight() float64 {
	return p.JumpSpeed * p.JumpSpeed / (2 * p.Gravity)
}

// Frame carries the per-frame timing context.
type Frame struct {
	DtMs float64 // Elapsed time since the previous frame
}

// StepResult reports what happened during one Advance.
type StepResult struct {
	Landed   bool       // Airborne to grounded transition with a real impact
	Blocked  bool       // Horizontal movement was stopped by a platform
	Grounded bool       // Player stands on a platform after the frame
	Jumped   bool       // A buffered jump fired this frame
	Boosted  bool       // The fired jump used a boost
	Platform PlatformID // Platform stood on, NoPlatform when airborne
}

// JumpOutcome is the result of a jump request.
type JumpOutcome int

const (
	JumpBuffered JumpOutcome = iota // Airborne, request queued
	JumpFired
	JumpBoosted // Fired with the boost multiplier
)

// Engine advances players against a platform set.
type Engine struct {
	params   Params
	leftEdge float64
	bounded  bool // leftEdge applies
}

// NewEngine creates an engine with the given constants.
func NewEngine(params Params) *Engine {
	if params.SubstepSize <= 0 {
		panic("physics: substep size must be positive")
	}
	return &Engine{params: params}
}

// WithLeftEdge makes x a wall the body cannot run or ride past.
// A platform pushing the body still moves it beyond x, so the body
// never ends a frame inside a platform.
func (e *Engine) WithLeftEdge(x float64) *Engine {
	e.leftEdge = x
	e.bounded = true
	return e
}

// Params returns the engine constants.
func (e *Engine) Params() Params {
	return e.params
}

// RequestJump handles a jump edge trigger. A grounded player (or one in
// developer mode) launches immediately; otherwise the request is buffered.
func (e *Engine) RequestJump(p *Player) JumpOutcome {
	if p.OnGround || p.DeveloperMode {
		if e.jump(p) {
			return JumpBoosted
		}
		return JumpFired
	}
	p.JumpBufferMs = e.params.JumpBufferMs
	return JumpBuffered
}

// jump launches the player and reports whether a boost was consumed.
func (e *Engine) jump(p *Player) bool {
	p.VY = -e.params.JumpSpeed
	boosted := p.BoostReady
	if boosted {
		p.VY *= e.params.BoostMultiplier
		p.BoostReady = false
	}
	p.OnGround = false
	p.LastPlatform = NoPlatform
	p.JumpBufferMs = 0
	return boosted
}

// Advance runs one frame of movement and collision for p:
// surface-dependent horizontal velocity, sub-stepped collision
// resolution, gravity and the jump buffer.
func (e *Engine) Advance(p *Player, desiredVX float64, platforms *Platforms, frame Frame) StepResult {
	var ridden *Platform
	if p.OnGround {
		ridden, _ = platforms.Lookup(p.LastPlatform)
	}
	wasGrounded := ridden != nil
	impactVY := p.VY

	p.DesiredVX = desiredVX
	e.steer(p, ridden, frame.DtMs)
	switch {
	case desiredVX > 0:
		p.FacingRight = true
	case desiredVX < 0:
		p.FacingRight = false
	}

	c := e.resolve(p, ridden, platforms)

	if !p.OnGround {
		p.VY += e.params.Gravity
	}

	res := StepResult{
		Landed:  !wasGrounded && p.OnGround && impactVY >= e.params.LandingMinVY,
		Blocked: c.hitX,
	}

	if p.JumpBufferMs > 0 {
		p.JumpBufferMs -= frame.DtMs
		if p.OnGround && p.JumpBufferMs > 0 {
			res.Jumped = true
			res.Boosted = e.jump(p)
		}
		if p.JumpBufferMs < 0 {
			p.JumpBufferMs = 0
		}
	}

	res.Grounded = p.OnGround
	res.Platform = p.LastPlatform
	return res
}
