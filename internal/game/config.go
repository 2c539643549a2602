package game

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Snake"
)

// Sprite buffer cap for a single draw call.
const MaxSpriteRender = 8192

// Config holds every simulation parameter. A session receives its Config at
// construction and never mutates it, so tests can run the engine with varied
// grid sizes and rates.
type Config struct {
	GridWidth  int
	GridHeight int
	CellSize   int // screen pixels per grid cell

	StartLength int // initial snake length

	// Tick rate scaling: BaseSpeed ticks/second at score 0, one SpeedStep
	// added per SpeedStepScore points, clamped to MaxSpeed.
	BaseSpeed      float64
	MaxSpeed       float64
	SpeedStep      float64
	SpeedStepScore int

	RegularPoints int
	SpecialPoints int

	SpecialChance   float64 // probability rolled on each regular (re)spawn
	SpecialLifetime int     // ticks a special food stays on the board

	// Particle tuning (screen-pixel units, per-second rates).
	MaxParticles     int
	BurstRegular     int
	BurstSpecial     int
	ParticleMinSpeed float64
	ParticleMaxSpeed float64
	ParticleGravity  float64
	ParticleMinLife  float64
	ParticleMaxLife  float64
	ParticleMinSize  float64
	ParticleMaxSize  float64
}

func DefaultConfig() Config {
	return Config{
		GridWidth:  40,
		GridHeight: 30,
		CellSize:   20,

		StartLength: 3,

		BaseSpeed:      10.0,
		MaxSpeed:       20.0,
		SpeedStep:      1.0,
		SpeedStepScore: 50,

		RegularPoints: 10,
		SpecialPoints: 50,

		SpecialChance:   0.10,
		SpecialLifetime: 150,

		MaxParticles:     2000,
		BurstRegular:     10,
		BurstSpecial:     20,
		ParticleMinSpeed: 40.0,
		ParticleMaxSpeed: 180.0,
		ParticleGravity:  270.0,
		ParticleMinLife:  0.5,
		ParticleMaxLife:  1.0,
		ParticleMinSize:  2.0,
		ParticleMaxSize:  5.0,
	}
}

// Contains reports whether p lies inside the grid.
func (c Config) Contains(p Position) bool {
	return p.X >= 0 && p.X < c.GridWidth && p.Y >= 0 && p.Y < c.GridHeight
}

// Center returns the grid's center cell.
func (c Config) Center() Position {
	return Position{X: c.GridWidth / 2, Y: c.GridHeight / 2}
}

// SpeedFor returns the tick rate for a score: a step function that rises by
// SpeedStep for every SpeedStepScore points, clamped to MaxSpeed.
func (c Config) SpeedFor(score int) float64 {
	if score < 0 {
		score = 0
	}
	v := c.BaseSpeed + float64(score/c.SpeedStepScore)*c.SpeedStep
	if v > c.MaxSpeed {
		v = c.MaxSpeed
	}
	return v
}
