package physics

import "math"

// contact summarizes what the resolver touched during one frame.
type contact struct {
	hitX bool
	hitY bool
}

// resolve moves p by its velocity in sub-steps, resolving the horizontal
// and the vertical axis as separate passes. Horizontal runs first, so a
// body entering a corner diagonally is clamped sideways.
//
// The platform ridden at the start of the frame is skipped by the
// horizontal pass and carries the body by its own displacement.
func (e *Engine) resolve(p *Player, ridden *Platform, platforms *Platforms) contact {
	ignore := NoPlatform
	var inherit float64
	if ridden != nil {
		ignore = ridden.ID
		inherit = ridden.LastDX
	}

	steps := int(math.Abs(p.VY) / e.params.SubstepSize)
	if steps < 1 {
		steps = 1
	}
	dx := (p.VX + inherit) / float64(steps)
	dy := p.VY / float64(steps)

	p.OnGround = false
	p.LastPlatform = NoPlatform

	var c contact
	for i := 0; i < steps; i++ {
		p.X += dx
		if e.clampLeft(p) {
			c.hitX = true
		}
		if collideHorizontal(p, dx, ignore, platforms) {
			c.hitX = true
			dx = 0
		}

		p.Y += dy
		if collideVertical(p, dy, platforms) {
			c.hitY = true
			dy = 0
		}
	}

	// A resting body has zero vertical travel, so contact is probed
	if !c.hitY && p.VY >= 0 {
		if pl := support(p, ridden, platforms); pl != nil {
			p.SetBottom(pl.Box().Y)
			p.OnGround = true
			p.LastPlatform = pl.ID
			p.VY = 0
		}
	}

	// Stepping onto a different moving platform: ride it from this frame on
	if p.OnGround && p.LastPlatform != ignore {
		if pl, ok := platforms.Lookup(p.LastPlatform); ok && pl.Moving() && pl.LastDX != 0 {
			if e.carry(p, pl, platforms) {
				c.hitX = true
			}
		}
	}

	return c
}

// carry moves a body that just landed on pl by the platform's displacement.
// Other platforms and the left edge still block it, and support is probed
// again since the body may have been held back off pl.
func (e *Engine) carry(p *Player, pl *Platform, platforms *Platforms) bool {
	p.X += pl.LastDX
	hit := e.clampLeft(p)
	if collideHorizontal(p, pl.LastDX, pl.ID, platforms) {
		hit = true
	}
	if s := support(p, pl, platforms); s != nil {
		p.LastPlatform = s.ID
	} else {
		p.OnGround = false
		p.LastPlatform = NoPlatform
	}
	return hit
}

// clampLeft keeps p right of the engine's left edge, if one is set.
// Platforms are resolved after it, so a pushing platform wins over the edge.
func (e *Engine) clampLeft(p *Player) bool {
	if !e.bounded || p.X >= e.leftEdge {
		return false
	}
	p.X = e.leftEdge
	if p.VX < 0 {
		p.VX = 0
	}
	return true
}

// collideHorizontal clamps p out of every platform it overlaps after a
// horizontal move of dx. A platform the body moved into pushes it back;
// otherwise the platform moved into the body and pushes it along.
func collideHorizontal(p *Player, dx float64, ignore PlatformID, platforms *Platforms) bool {
	hit := false
	box := p.Box()
	for _, pl := range platforms.All() {
		if pl.ID == ignore {
			continue
		}
		pb := pl.Box()
		if !box.Intersects(pb) {
			continue
		}
		ahead := 2*pb.X+pb.W >= 2*box.X+box.W // Platform centre right of the body's
		switch {
		case dx > 0 && ahead:
			p.SetRight(pb.X)
		case dx < 0 && !ahead:
			p.SetLeft(pb.Right())
		case pl.LastDX > 0:
			p.SetLeft(pb.Right())
		case pl.LastDX < 0:
			p.SetRight(pb.X)
		default:
			continue
		}
		p.VX = 0
		hit = true
		box = p.Box()
	}
	return hit
}

// collideVertical clamps p out of every platform it overlaps after a
// vertical move of dy. Moving down onto a platform top grounds the body.
func collideVertical(p *Player, dy float64, platforms *Platforms) bool {
	hit := false
	box := p.Box()
	for _, pl := range platforms.All() {
		pb := pl.Box()
		if !box.Intersects(pb) {
			continue
		}
		switch {
		case dy > 0:
			p.SetBottom(pb.Y)
			p.OnGround = true
			p.LastPlatform = pl.ID
		case dy < 0:
			p.SetTop(pb.Bottom())
		default:
			continue
		}
		p.VY = 0
		hit = true
		box = p.Box()
	}
	return hit
}

// support returns the platform whose top touches the body's bottom edge,
// preferring the platform ridden at the start of the frame.
func support(p *Player, ridden *Platform, platforms *Platforms) *Platform {
	box := p.Box()
	touching := func(pl *Platform) bool {
		pb := pl.Box()
		return pb.Y == box.Bottom() && box.OverlapsX(pb)
	}
	if ridden != nil && touching(ridden) {
		return ridden
	}
	for _, pl := range platforms.All() {
		if touching(pl) {
			return pl
		}
	}
	return nil
}
