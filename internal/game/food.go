package game

// FoodKind distinguishes the regular food from the timed special.
type FoodKind int

const (
	FoodRegular FoodKind = iota
	FoodSpecial
)

func (k FoodKind) String() string {
	if k == FoodSpecial {
		return "special"
	}
	return "regular"
}

// Food is a consumable on the board. TicksLeft is meaningful only for
// FoodSpecial.
type Food struct {
	Pos       Position
	Kind      FoodKind
	TicksLeft int
}

// FoodSystem owns the regular food and the at-most-one special food.
// Spawning probes uniformly random cells against the caller's occupancy set;
// a saturated grid arms a retry on the next tick instead of spinning.
type FoodSystem struct {
	cfg  Config
	rand *Rand

	regular    Food
	hasRegular bool
	special    Food
	hasSpecial bool

	pendingRegular bool
}

func NewFoodSystem(cfg Config, seed uint64) *FoodSystem {
	return &FoodSystem{cfg: cfg, rand: NewRand(seed)}
}

// Reset clears both foods and spawns the initial regular food (rolling the
// special as every regular spawn does).
func (fs *FoodSystem) Reset(seed uint64, occupied func(Position) bool) {
	fs.rand = NewRand(seed)
	fs.hasRegular = false
	fs.hasSpecial = false
	fs.pendingRegular = false
	fs.SpawnRegular(occupied)
}

// Regular returns the regular food position if one is on the board.
func (fs *FoodSystem) Regular() (Position, bool) {
	return fs.regular.Pos, fs.hasRegular
}

// Special returns the live special food, if any.
func (fs *FoodSystem) Special() (Food, bool) {
	return fs.special, fs.hasSpecial
}

func (fs *FoodSystem) cellFree(p Position, occupied func(Position) bool) bool {
	if occupied(p) {
		return false
	}
	if fs.hasRegular && p == fs.regular.Pos {
		return false
	}
	if fs.hasSpecial && p == fs.special.Pos {
		return false
	}
	return true
}

// randomFreeCell probes uniformly random cells, then falls back to a linear
// scan from a random offset so a nearly full grid still finds the last free
// cell. Returns false only when the grid is completely occupied.
func (fs *FoodSystem) randomFreeCell(occupied func(Position) bool) (Position, bool) {
	w, h := fs.cfg.GridWidth, fs.cfg.GridHeight
	total := w * h
	for i := 0; i < total; i++ {
		p := Position{X: fs.rand.Intn(w), Y: fs.rand.Intn(h)}
		if fs.cellFree(p, occupied) {
			return p, true
		}
	}
	start := fs.rand.Intn(total)
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		p := Position{X: idx % w, Y: idx / w}
		if fs.cellFree(p, occupied) {
			return p, true
		}
	}
	return Position{}, false
}

// SpawnRegular places a new regular food on a free cell and rolls the
// special-food chance. If no free cell is found the spawn re-arms for the
// next tick.
func (fs *FoodSystem) SpawnRegular(occupied func(Position) bool) {
	p, ok := fs.randomFreeCell(occupied)
	if !ok {
		fs.hasRegular = false
		fs.pendingRegular = true
		return
	}
	fs.regular = Food{Pos: p, Kind: FoodRegular}
	fs.hasRegular = true
	fs.pendingRegular = false
	fs.maybeSpawnSpecial(occupied)
}

// maybeSpawnSpecial rolls the special spawn chance. Only one special may be
// live at a time; a live one blocks the roll entirely.
func (fs *FoodSystem) maybeSpawnSpecial(occupied func(Position) bool) {
	if fs.hasSpecial {
		return
	}
	if fs.rand.Float64() >= fs.cfg.SpecialChance {
		return
	}
	p, ok := fs.randomFreeCell(occupied)
	if !ok {
		return
	}
	fs.special = Food{Pos: p, Kind: FoodSpecial, TicksLeft: fs.cfg.SpecialLifetime}
	fs.hasSpecial = true
}

// ConsumeAt removes and returns the food at p, if any.
func (fs *FoodSystem) ConsumeAt(p Position) (FoodKind, bool) {
	if fs.hasRegular && fs.regular.Pos == p {
		fs.hasRegular = false
		return FoodRegular, true
	}
	if fs.hasSpecial && fs.special.Pos == p {
		fs.hasSpecial = false
		return FoodSpecial, true
	}
	return FoodRegular, false
}

// Tick advances food timers by one simulation tick: the special's lifetime
// counts down (expiring silently at zero, no score, no particles) and an
// armed regular respawn is retried. Returns true if the special expired this
// tick.
func (fs *FoodSystem) Tick(occupied func(Position) bool) bool {
	if fs.pendingRegular {
		fs.SpawnRegular(occupied)
	}
	if !fs.hasSpecial {
		return false
	}
	fs.special.TicksLeft--
	if fs.special.TicksLeft <= 0 {
		fs.hasSpecial = false
		return true
	}
	return false
}
