package physics

// steer sets p.VX from the desired velocity and the surface under the
// player at the start of the frame. Airborne players and normal surfaces
// respond instantly; slippery surfaces ease in and decay out.
func (e *Engine) steer(p *Player, surface *Platform, dtMs float64) {
	if surface == nil || surface.Surface != SurfaceSlippery {
		p.VX = p.DesiredVX
		p.Slip = SlipState{}
		return
	}

	if p.DesiredVX != 0 {
		p.VX = approach(p.VX, p.DesiredVX, e.params.SlipAccel)
		d := surface.SlipDurationMs
		if d <= 0 {
			d = e.params.SlipDurationMs
		}
		p.Slip = SlipState{Active: d > 0, TimerMs: d, TotalMs: d, StartVX: p.VX}
		return
	}

	if !p.Slip.Active {
		p.VX = 0
		return
	}

	p.Slip.TimerMs -= dtMs
	if p.Slip.TimerMs <= 0 {
		p.VX = 0
		p.Slip = SlipState{}
		return
	}
	p.VX = p.Slip.StartVX * p.Slip.TimerMs / p.Slip.TotalMs
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if v < target {
		v += step
		if v > target {
			v = target
		}
		return v
	}
	v -= step
	if v < target {
		v = target
	}
	return v
}
