package game

import "math"

// SpawnEatBurst emits a radial burst of particles from the center of the
// given grid cell. The burst RNG is derived from the cell and a spawn
// sequence counter so identical sessions produce identical effects.
func (ps *ParticleSystem) SpawnEatBurst(cell Position, count int, col RGB) {
	ps.spawnSeq++
	rng := NewRand(hash2D(ps.rand.NextU64(), cell.X, cell.Y) ^ ps.spawnSeq)

	cx := (float64(cell.X) + 0.5) * float64(ps.cfg.CellSize)
	cy := (float64(cell.Y) + 0.5) * float64(ps.cfg.CellSize)

	for i := 0; i < count; i++ {
		ang := rng.RangeF(0, 2*math.Pi)
		spd := rng.RangeF(ps.cfg.ParticleMinSpeed, ps.cfg.ParticleMaxSpeed)
		ps.add(Particle{
			X:       cx,
			Y:       cy,
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang) * spd,
			Size:    rng.RangeF(ps.cfg.ParticleMinSize, ps.cfg.ParticleMaxSize),
			MaxLife: rng.RangeF(ps.cfg.ParticleMinLife, ps.cfg.ParticleMaxLife),
			Col:     col,
		})
	}
}
