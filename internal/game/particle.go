package game

// Particle is a short-lived visual effect in pixel space. Life counts up
// toward MaxLife; alpha and size fade as it ages.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Life    float64
	MaxLife float64
	Col     RGB
}

// ParticleSystem holds a bounded pool of live particles. When the pool is
// full, new spawns overwrite the oldest slots instead of being dropped, so a
// burst is never silently lost during heavy effects.
type ParticleSystem struct {
	cfg       Config
	Particles []Particle
	Max       int
	ovrIdx    int

	rand     *Rand
	spawnSeq uint64
}

func NewParticleSystem(cfg Config, seed uint64) *ParticleSystem {
	max := cfg.MaxParticles
	if max < 1 {
		max = 1
	}
	return &ParticleSystem{
		cfg:       cfg,
		Particles: make([]Particle, 0, max),
		Max:       max,
		rand:      NewRand(seed),
	}
}

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int { return len(ps.Particles) }

// Clear drops all live particles.
func (ps *ParticleSystem) Clear() {
	ps.Particles = ps.Particles[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) add(p Particle) {
	if len(ps.Particles) < ps.Max {
		ps.Particles = append(ps.Particles, p)
		return
	}
	ps.Particles[ps.ovrIdx] = p
	ps.ovrIdx = (ps.ovrIdx + 1) % ps.Max
}
