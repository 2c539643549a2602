package game

import "testing"

func testSession(t *testing.T) *GameSession {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SpecialChance = 0 // keep runs predictable unless a test opts in
	return NewSession(cfg, 1234, nil)
}

func startPlaying(t *testing.T) *GameSession {
	t.Helper()
	g := testSession(t)
	g.Apply(CmdStart)
	if g.State != StatePlaying {
		t.Fatalf("State = %v after start, want playing", g.State)
	}
	parkFood(g)
	return g
}

// parkFood moves the regular food to a corner so tests that steer the snake
// do not eat it by accident.
func parkFood(g *GameSession) {
	g.Food.regular = Food{Pos: Position{X: 0, Y: 0}, Kind: FoodRegular}
	g.Food.hasRegular = true
}

func TestInitialState(t *testing.T) {
	g := testSession(t)
	if g.State != StateMenu {
		t.Fatalf("State = %v, want menu", g.State)
	}
	if g.Snake.Len() != g.Config().StartLength {
		t.Errorf("initial length = %d, want %d", g.Snake.Len(), g.Config().StartLength)
	}
	if g.Snake.Head() != g.Config().Center() {
		t.Errorf("head = %v, want center %v", g.Snake.Head(), g.Config().Center())
	}
}

func TestStateTransitions(t *testing.T) {
	g := startPlaying(t)

	g.Apply(CmdPause)
	if g.State != StatePaused {
		t.Fatalf("State = %v, want paused", g.State)
	}
	// Direction and start commands are ignored while paused.
	g.Apply(CmdUp)
	g.Apply(CmdStart)
	if g.State != StatePaused {
		t.Fatalf("State = %v, commands leaked through pause", g.State)
	}
	g.Apply(CmdPause)
	if g.State != StatePlaying {
		t.Fatalf("State = %v, want playing after unpause", g.State)
	}
}

func TestStepOnlyWhenPlaying(t *testing.T) {
	g := testSession(t)
	head := g.Snake.Head()
	g.Step() // menu: no-op
	if g.Snake.Head() != head {
		t.Fatal("Step advanced the snake in menu state")
	}

	g.Apply(CmdStart)
	g.Apply(CmdPause)
	head = g.Snake.Head()
	g.Step() // paused: no-op
	if g.Snake.Head() != head {
		t.Fatal("Step advanced the snake while paused")
	}
}

func TestMovementAndGrowth(t *testing.T) {
	g := startPlaying(t)
	head := g.Snake.Head()
	g.Step()
	want := Position{X: head.X + 1, Y: head.Y}
	if g.Snake.Head() != want {
		t.Fatalf("head = %v after one step, want %v", g.Snake.Head(), want)
	}
	if g.Snake.Len() != g.Config().StartLength {
		t.Fatalf("length changed without eating: %d", g.Snake.Len())
	}
}

func TestReversalIgnored(t *testing.T) {
	g := startPlaying(t)
	// Initial direction is right; a left command must be dropped silently.
	g.Apply(CmdLeft)
	head := g.Snake.Head()
	g.Step()
	want := Position{X: head.X + 1, Y: head.Y}
	if g.Snake.Head() != want {
		t.Fatalf("head = %v, want %v (reversal should be ignored)", g.Snake.Head(), want)
	}

	// A perpendicular turn then the old opposite is fine.
	g.Apply(CmdUp)
	g.Step()
	g.Apply(CmdLeft)
	head = g.Snake.Head()
	g.Step()
	want = Position{X: head.X - 1, Y: head.Y}
	if g.Snake.Head() != want {
		t.Fatalf("head = %v, want %v after legal left turn", g.Snake.Head(), want)
	}
}

func TestWallCollision(t *testing.T) {
	g := startPlaying(t)
	// Drive right until the wall.
	for i := 0; i < g.Config().GridWidth; i++ {
		g.Step()
		if g.State == StateGameOver {
			break
		}
	}
	if g.State != StateGameOver {
		t.Fatalf("State = %v after driving into wall, want game over", g.State)
	}
	// Snake is preserved on the game over screen.
	if g.Snake.Len() != g.Config().StartLength {
		t.Errorf("length = %d on game over, want %d", g.Snake.Len(), g.Config().StartLength)
	}
	if !g.Config().Contains(g.Snake.Head()) {
		t.Errorf("head %v left the grid", g.Snake.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpecialChance = 0
	cfg.StartLength = 5
	g := NewSession(cfg, 99, nil)
	g.Apply(CmdStart)
	parkFood(g)

	// Tight turn back into the body: up, left, down lands on a body cell.
	g.Apply(CmdUp)
	g.Step()
	g.Apply(CmdLeft)
	g.Step()
	g.Apply(CmdDown)
	g.Step()
	if g.State != StateGameOver {
		t.Fatalf("State = %v after folding into body, want game over", g.State)
	}
}

func TestEatingScoresAndGrows(t *testing.T) {
	g := startPlaying(t)
	// Plant the regular food directly in the snake's path.
	next := g.Snake.Head().Step(DirRight)
	g.Food.regular = Food{Pos: next, Kind: FoodRegular}
	g.Food.hasRegular = true

	var events []Event
	g.Bus().Subscribe(EventFoodEaten, func(ev Event) { events = append(events, ev) })

	lenBefore := g.Snake.Len()
	g.Step()

	if g.Score != g.Config().RegularPoints {
		t.Fatalf("Score = %d, want %d", g.Score, g.Config().RegularPoints)
	}
	if g.Snake.Len() != lenBefore+1 {
		t.Fatalf("length = %d, want %d", g.Snake.Len(), lenBefore+1)
	}
	if g.Particles.Count() != g.Config().BurstRegular {
		t.Fatalf("particles = %d, want burst of %d", g.Particles.Count(), g.Config().BurstRegular)
	}
	if len(events) != 1 || events[0].Kind != FoodRegular || events[0].Pos != next {
		t.Fatalf("events = %+v, want one regular eat at %v", events, next)
	}
	// The regular food respawned somewhere off the snake.
	pos, ok := g.Food.Regular()
	if !ok {
		t.Fatal("regular food did not respawn")
	}
	if g.Snake.Occupies(pos) {
		t.Fatalf("respawned food at %v is on the snake", pos)
	}
}

func TestSpecialEatenNoRespawnRoll(t *testing.T) {
	g := startPlaying(t)
	next := g.Snake.Head().Step(DirRight)
	g.Food.special = Food{Pos: next, Kind: FoodSpecial, TicksLeft: 100}
	g.Food.hasSpecial = true

	g.Step()

	if g.Score != g.Config().SpecialPoints {
		t.Fatalf("Score = %d, want %d", g.Score, g.Config().SpecialPoints)
	}
	if g.Particles.Count() != g.Config().BurstSpecial {
		t.Fatalf("particles = %d, want burst of %d", g.Particles.Count(), g.Config().BurstSpecial)
	}
	if _, ok := g.Food.Special(); ok {
		t.Fatal("special still present after being eaten")
	}
}

func TestSpeedAppliesAfterScoring(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpecialChance = 0
	cfg.RegularPoints = 50 // one food = one speed step
	g := NewSession(cfg, 5, nil)
	g.Apply(CmdStart)

	if g.Speed != cfg.BaseSpeed {
		t.Fatalf("Speed = %v at start, want %v", g.Speed, cfg.BaseSpeed)
	}
	next := g.Snake.Head().Step(DirRight)
	g.Food.regular = Food{Pos: next, Kind: FoodRegular}
	g.Food.hasRegular = true
	g.Step()
	if g.Speed != cfg.BaseSpeed+cfg.SpeedStep {
		t.Fatalf("Speed = %v after scoring %d, want %v", g.Speed, g.Score, cfg.BaseSpeed+cfg.SpeedStep)
	}
}

func TestRestartResets(t *testing.T) {
	g := startPlaying(t)
	for g.State == StatePlaying {
		g.Step()
	}
	g.Apply(CmdStart)
	if g.State != StatePlaying {
		t.Fatalf("State = %v after restart, want playing", g.State)
	}
	if g.Score != 0 {
		t.Errorf("Score = %d after restart, want 0", g.Score)
	}
	if g.Snake.Len() != g.Config().StartLength {
		t.Errorf("length = %d after restart, want %d", g.Snake.Len(), g.Config().StartLength)
	}
	if g.Snake.Head() != g.Config().Center() {
		t.Errorf("head = %v after restart, want center", g.Snake.Head())
	}
	if g.Particles.Count() != 0 {
		t.Errorf("particles = %d after restart, want 0", g.Particles.Count())
	}
}

func TestHighScoreTracked(t *testing.T) {
	g := startPlaying(t)
	next := g.Snake.Head().Step(DirRight)
	g.Food.special = Food{Pos: next, Kind: FoodSpecial, TicksLeft: 100}
	g.Food.hasSpecial = true
	g.Step()

	var gotHigh bool
	g.Bus().Subscribe(EventNewHighScore, func(ev Event) { gotHigh = true })

	for g.State == StatePlaying {
		g.Step()
	}
	if !g.NewHigh {
		t.Fatal("NewHigh not set for first scoring run")
	}
	if g.HighScore != g.Score {
		t.Fatalf("HighScore = %d, want %d", g.HighScore, g.Score)
	}
	if !gotHigh {
		t.Fatal("EventNewHighScore not emitted")
	}

	// A worse run must not touch the record.
	prev := g.HighScore
	g.Apply(CmdStart)
	parkFood(g)
	for g.State == StatePlaying {
		g.Step()
	}
	if g.NewHigh || g.HighScore != prev {
		t.Fatalf("NewHigh=%v HighScore=%d after scoreless run, want false/%d", g.NewHigh, g.HighScore, prev)
	}
}

func TestAnimateFrozenWhilePaused(t *testing.T) {
	g := startPlaying(t)
	next := g.Snake.Head().Step(DirRight)
	g.Food.regular = Food{Pos: next, Kind: FoodRegular}
	g.Food.hasRegular = true
	g.Step() // burst spawns

	g.Apply(CmdPause)
	px := g.Particles.Particles[0].X
	py := g.Particles.Particles[0].Y
	g.Animate(0.5)
	if g.Particles.Particles[0].X != px || g.Particles.Particles[0].Y != py {
		t.Fatal("particles moved while paused")
	}

	g.Apply(CmdPause)
	g.Animate(0.05)
	if g.Particles.Particles[0].X == px && g.Particles.Particles[0].Y == py {
		t.Fatal("particles did not move after resume")
	}
}

func TestQuitFromAnyState(t *testing.T) {
	for _, setup := range []func(*GameSession){
		func(g *GameSession) {},
		func(g *GameSession) { g.Apply(CmdStart) },
		func(g *GameSession) { g.Apply(CmdStart); g.Apply(CmdPause) },
	} {
		g := testSession(t)
		setup(g)
		g.Apply(CmdQuit)
		if !g.Quit {
			t.Fatalf("Quit not set from state %v", g.State)
		}
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() (int, Position, int) {
		cfg := DefaultConfig()
		g := NewSession(cfg, 777, nil)
		g.Apply(CmdStart)
		moves := []Command{CmdUp, CmdRight, CmdDown, CmdRight, CmdUp}
		for _, m := range moves {
			g.Apply(m)
			for i := 0; i < 3; i++ {
				g.Step()
				if g.State != StatePlaying {
					break
				}
			}
		}
		return g.Score, g.Snake.Head(), g.Snake.Len()
	}
	s1, h1, l1 := run()
	s2, h2, l2 := run()
	if s1 != s2 || h1 != h2 || l1 != l2 {
		t.Fatalf("identical seeds diverged: (%d,%v,%d) vs (%d,%v,%d)", s1, h1, l1, s2, h2, l2)
	}
}

func TestParticlesNeverFeedBackIntoSimulation(t *testing.T) {
	// Two sessions share a seed and a command script. One also runs the
	// particle clock between ticks; the outcomes must not diverge.
	plain := NewSession(DefaultConfig(), 424242, nil)
	animated := NewSession(DefaultConfig(), 424242, nil)
	plain.Apply(CmdStart)
	animated.Apply(CmdStart)

	moves := []Command{CmdUp, CmdRight, CmdDown, CmdRight, CmdUp, CmdLeft, CmdDown}
	for _, m := range moves {
		plain.Apply(m)
		animated.Apply(m)
		for i := 0; i < 4; i++ {
			plain.Step()
			animated.Animate(0.016)
			animated.Step()
			animated.Animate(0.021)
			animated.Particles.Update(0.1)
			if plain.State != StatePlaying {
				break
			}
		}
	}

	if plain.State != animated.State {
		t.Fatalf("state diverged: %v vs %v", plain.State, animated.State)
	}
	if plain.Score != animated.Score {
		t.Fatalf("score diverged: %d vs %d", plain.Score, animated.Score)
	}
	if plain.Snake.Head() != animated.Snake.Head() || plain.Snake.Len() != animated.Snake.Len() {
		t.Fatalf("snake diverged: %v/%d vs %v/%d",
			plain.Snake.Head(), plain.Snake.Len(), animated.Snake.Head(), animated.Snake.Len())
	}
	pr, pok := plain.Food.Regular()
	ar, aok := animated.Food.Regular()
	if pok != aok || pr != ar {
		t.Fatalf("regular food diverged: %v/%v vs %v/%v", pr, pok, ar, aok)
	}
	ps, psok := plain.Food.Special()
	as, asok := animated.Food.Special()
	if psok != asok || ps != as {
		t.Fatalf("special food diverged: %+v/%v vs %+v/%v", ps, psok, as, asok)
	}
}

func TestSpecialExpiryEmitsEvent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpecialChance = 0
	cfg.SpecialLifetime = 3
	g := NewSession(cfg, 8, nil)
	g.Apply(CmdStart)
	parkFood(g)

	// Park a special far from the snake's path too.
	g.Food.special = Food{Pos: Position{X: 0, Y: 1}, Kind: FoodSpecial, TicksLeft: cfg.SpecialLifetime}
	g.Food.hasSpecial = true

	var expired bool
	g.Bus().Subscribe(EventSpecialExpired, func(ev Event) { expired = true })

	score := g.Score
	for i := 0; i < cfg.SpecialLifetime; i++ {
		g.Step()
	}
	if !expired {
		t.Fatal("EventSpecialExpired not emitted")
	}
	if g.Score != score {
		t.Fatalf("expiry changed score: %d -> %d", score, g.Score)
	}
}
