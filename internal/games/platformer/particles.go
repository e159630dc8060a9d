package platformer

import "math/rand"

const (
	particlesPerLanding = 5
	maxParticles        = 50
	particleLifetime    = 20 // Frames
)

// Particle is a short-lived landing puff. Presentation only.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
}

// Particles owns the landing effects and their random source.
type Particles struct {
	items []Particle
	rng   *rand.Rand
}

// NewParticles creates an empty particle set.
func NewParticles(seed int64) *Particles {
	return &Particles{rng: rand.New(rand.NewSource(seed))}
}

// Emit spawns a puff at (x, y) unless the set is full.
func (ps *Particles) Emit(x, y float64) {
	if len(ps.items) >= maxParticles {
		return
	}
	for range particlesPerLanding {
		ps.items = append(ps.items, Particle{
			X:    x,
			Y:    y,
			VX:   ps.rng.Float64()*4 - 2,
			VY:   -ps.rng.Float64() * 2,
			Life: particleLifetime,
		})
	}
}

// Update moves every particle and drops expired ones.
func (ps *Particles) Update() {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.items = alive
}

// Items returns the live particles.
func (ps *Particles) Items() []Particle {
	return ps.items
}

// Clear removes all particles.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}
