package game

// Update advances all particles by dt seconds. Gravity pulls velocity
// downward, positions integrate, and expired particles are swap-removed.
func (ps *ParticleSystem) Update(dt float64) {
	i := 0
	for i < len(ps.Particles) {
		p := &ps.Particles[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			last := len(ps.Particles) - 1
			ps.Particles[i] = ps.Particles[last]
			ps.Particles = ps.Particles[:last]
			if ps.ovrIdx > last {
				ps.ovrIdx = 0
			}
			continue
		}
		p.VY += ps.cfg.ParticleGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		i++
	}
}

// RenderData fills buf with [x, y, size, r, g, b, a, rotation] per particle
// and returns the slice. Alpha and size fall off linearly with age.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.Particles {
		p := &ps.Particles[i]
		t := p.Life / p.MaxLife
		alpha := 1.0 - t
		size := p.Size * (1.0 - 0.5*t)
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(size),
			float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255,
			float32(alpha), 0,
		)
	}
	return buf
}
