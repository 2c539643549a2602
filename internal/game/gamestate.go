package game

import (
	log "github.com/sirupsen/logrus"
)

// GameState is the top-level session state.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "invalid"
}

// Command is a logical input decoupled from physical keys. The input layer
// translates key presses into commands; the session interprets them according
// to its state.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdStart
	CmdPause
	CmdQuit
)

// GameSession is the complete simulation: snake, food, score, particles and
// the state machine tying them together. All methods must be called from a
// single goroutine.
type GameSession struct {
	cfg      Config
	seed     uint64
	sessions uint64

	State     GameState
	Snake     *Snake
	Food      *FoodSystem
	Particles *ParticleSystem

	Score     int
	Speed     float64
	HighScore int
	NewHigh   bool
	Quit      bool

	dir     Direction
	nextDir Direction

	bus   *EventBus
	store *HighScoreStore
}

// NewSession creates a session in the menu state. The seed fixes every random
// decision of the run (food placement, special rolls, particle jitter); store
// may be nil to disable high score persistence.
func NewSession(cfg Config, seed uint64, store *HighScoreStore) *GameSession {
	s := &GameSession{
		cfg:       cfg,
		seed:      seed,
		State:     StateMenu,
		Food:      NewFoodSystem(cfg, seed),
		Particles: NewParticleSystem(cfg, splitmix64(seed)),
		Speed:     cfg.BaseSpeed,
		bus:       NewEventBus(),
		store:     store,
	}
	if store != nil {
		s.HighScore = store.Load()
	}
	s.Snake = NewSnake(cfg.Center(), cfg.StartLength, DirRight)
	return s
}

// Config returns the session's immutable parameters.
func (g *GameSession) Config() Config { return g.cfg }

// Bus exposes the event bus for audio and render hooks.
func (g *GameSession) Bus() *EventBus { return g.bus }

// Direction returns the committed movement direction.
func (g *GameSession) Direction() Direction { return g.dir }

// startRun resets the simulation for a fresh run. Each run gets its own
// derived seed so restarting does not replay the previous food sequence.
func (g *GameSession) startRun() {
	g.sessions++
	runSeed := splitmix64(g.seed ^ g.sessions)

	g.Snake = NewSnake(g.cfg.Center(), g.cfg.StartLength, DirRight)
	g.dir = DirRight
	g.nextDir = DirRight
	g.Score = 0
	g.Speed = g.cfg.BaseSpeed
	g.NewHigh = false
	g.Food.Reset(runSeed, g.Snake.Occupies)
	g.Particles.Clear()
	g.State = StatePlaying

	log.WithFields(log.Fields{"run": g.sessions, "high_score": g.HighScore}).
		Info("run started")
}

// Apply feeds one command into the state machine. Direction commands are
// buffered until the next tick; a reversal of the committed direction is
// silently ignored. Unknown or out-of-state commands are no-ops.
func (g *GameSession) Apply(cmd Command) {
	if cmd == CmdQuit {
		g.Quit = true
		return
	}

	switch g.State {
	case StateMenu:
		if cmd == CmdStart {
			g.startRun()
		}

	case StatePlaying:
		switch cmd {
		case CmdUp:
			g.turn(DirUp)
		case CmdDown:
			g.turn(DirDown)
		case CmdLeft:
			g.turn(DirLeft)
		case CmdRight:
			g.turn(DirRight)
		case CmdPause:
			g.State = StatePaused
		}

	case StatePaused:
		if cmd == CmdPause {
			g.State = StatePlaying
		}

	case StateGameOver:
		if cmd == CmdStart {
			g.startRun()
		}
	}
}

func (g *GameSession) turn(d Direction) {
	if d == g.dir.Opposite() {
		return
	}
	g.nextDir = d
}

// Step advances the simulation by exactly one tick. It does nothing outside
// the playing state; particles are driven separately by Animate so they keep
// moving on the menu and game over screens.
func (g *GameSession) Step() {
	if g.State != StatePlaying {
		return
	}

	g.dir = g.nextDir
	newHead := g.Snake.Head().Step(g.dir)

	if !g.cfg.Contains(newHead) || g.Snake.HitsSelf(newHead) {
		g.gameOver()
		return
	}

	kind, eaten := g.Food.ConsumeAt(newHead)
	g.Snake.Advance(g.dir, eaten)

	if eaten {
		g.Score += g.cfg.Points(kind)
		col := Palette.Particle
		count := g.cfg.BurstRegular
		if kind == FoodSpecial {
			col = Palette.SpecialFood
			count = g.cfg.BurstSpecial
		}
		g.Particles.SpawnEatBurst(newHead, count, col)
		g.bus.Emit(Event{Type: EventFoodEaten, Pos: newHead, Kind: kind, Score: g.Score})
		if kind == FoodRegular {
			g.Food.SpawnRegular(g.Snake.Occupies)
		}
	}

	if g.Food.Tick(g.Snake.Occupies) {
		g.bus.Emit(Event{Type: EventSpecialExpired, Score: g.Score})
	}

	g.Speed = g.cfg.SpeedFor(g.Score)
}

// Animate advances time-based effects by dt seconds. Runs every frame in all
// states except paused, where effects freeze with the simulation.
func (g *GameSession) Animate(dt float64) {
	if g.State == StatePaused {
		return
	}
	g.Particles.Update(dt)
}

func (g *GameSession) gameOver() {
	g.State = StateGameOver
	if g.Score > g.HighScore {
		g.HighScore = g.Score
		g.NewHigh = true
		if g.store != nil {
			if err := g.store.Save(g.Score); err != nil {
				log.WithError(err).Warn("high score not saved")
			}
		}
		g.bus.Emit(Event{Type: EventNewHighScore, Score: g.Score})
	}
	g.bus.Emit(Event{Type: EventGameOver, Score: g.Score})

	log.WithFields(log.Fields{
		"score":  g.Score,
		"length": g.Snake.Len(),
		"high":   g.NewHigh,
	}).Info("game over")
}
