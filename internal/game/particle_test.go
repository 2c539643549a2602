package game

import (
	"math"
	"testing"
)

func TestSpawnEatBurstCount(t *testing.T) {
	cfg := DefaultConfig()
	ps := NewParticleSystem(cfg, 1)
	ps.SpawnEatBurst(Position{X: 5, Y: 5}, cfg.BurstRegular, Palette.Particle)
	if ps.Count() != cfg.BurstRegular {
		t.Fatalf("Count = %d, want %d", ps.Count(), cfg.BurstRegular)
	}
	ps.SpawnEatBurst(Position{X: 6, Y: 5}, cfg.BurstSpecial, Palette.SpecialFood)
	if ps.Count() != cfg.BurstRegular+cfg.BurstSpecial {
		t.Fatalf("Count = %d, want %d", ps.Count(), cfg.BurstRegular+cfg.BurstSpecial)
	}
}

func TestBurstOriginAndVelocity(t *testing.T) {
	cfg := DefaultConfig()
	ps := NewParticleSystem(cfg, 2)
	cell := Position{X: 3, Y: 7}
	ps.SpawnEatBurst(cell, 50, Palette.Particle)

	cx := (float64(cell.X) + 0.5) * float64(cfg.CellSize)
	cy := (float64(cell.Y) + 0.5) * float64(cfg.CellSize)
	for i := range ps.Particles {
		p := &ps.Particles[i]
		if p.X != cx || p.Y != cy {
			t.Fatalf("particle %d spawned at (%v,%v), want (%v,%v)", i, p.X, p.Y, cx, cy)
		}
		spd := math.Hypot(p.VX, p.VY)
		if spd < cfg.ParticleMinSpeed-1e-9 || spd > cfg.ParticleMaxSpeed+1e-9 {
			t.Fatalf("particle %d speed %v outside [%v,%v]", i, spd, cfg.ParticleMinSpeed, cfg.ParticleMaxSpeed)
		}
		if p.MaxLife < cfg.ParticleMinLife || p.MaxLife > cfg.ParticleMaxLife {
			t.Fatalf("particle %d MaxLife %v outside range", i, p.MaxLife)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	cfg := DefaultConfig()
	ps := NewParticleSystem(cfg, 3)
	ps.SpawnEatBurst(Position{X: 1, Y: 1}, 30, Palette.Particle)

	// Advance well past the maximum lifetime.
	steps := int(cfg.ParticleMaxLife/0.05) + 2
	for i := 0; i < steps; i++ {
		ps.Update(0.05)
	}
	if ps.Count() != 0 {
		t.Fatalf("Count = %d after max lifetime, want 0", ps.Count())
	}
}

func TestGravityPullsDown(t *testing.T) {
	cfg := DefaultConfig()
	ps := NewParticleSystem(cfg, 4)
	ps.SpawnEatBurst(Position{X: 1, Y: 1}, 10, Palette.Particle)

	before := make([]float64, ps.Count())
	for i := range ps.Particles {
		before[i] = ps.Particles[i].VY
	}
	ps.Update(0.1)
	for i := range ps.Particles {
		if ps.Particles[i].VY <= before[i] {
			t.Fatalf("particle %d VY did not increase under gravity", i)
		}
	}
}

func TestPoolCapOverwrites(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxParticles = 25
	ps := NewParticleSystem(cfg, 5)
	ps.SpawnEatBurst(Position{X: 1, Y: 1}, 100, Palette.Particle)
	if ps.Count() != 25 {
		t.Fatalf("Count = %d, want capped 25", ps.Count())
	}
}

func TestRenderDataAlphaFade(t *testing.T) {
	cfg := DefaultConfig()
	ps := NewParticleSystem(cfg, 6)
	ps.SpawnEatBurst(Position{X: 2, Y: 2}, 5, Palette.Particle)
	ps.Update(0.2)

	buf := ps.RenderData(nil)
	if len(buf) != ps.Count()*8 {
		t.Fatalf("RenderData len = %d, want %d", len(buf), ps.Count()*8)
	}
	for i := 0; i < len(buf); i += 8 {
		alpha := buf[i+6]
		if alpha <= 0 || alpha >= 1 {
			t.Fatalf("sprite %d alpha = %v, want in (0,1) after aging", i/8, alpha)
		}
	}
}
