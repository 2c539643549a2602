package game

// Position is a grid cell coordinate. Value type, usable as a map key.
type Position struct {
	X, Y int
}

// Step returns the cell one move from p in direction d.
func (p Position) Step(d Direction) Position {
	v := d.Vector()
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var dirVectors = [4]Position{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

var dirOpposites = [4]Direction{
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

// Vector returns the unit grid vector for d.
func (d Direction) Vector() Position { return dirVectors[d] }

// Opposite returns the reverse direction. A turn into the opposite of the
// current direction is rejected by the session, so the snake can never fold
// back onto its own neck.
func (d Direction) Opposite() Direction { return dirOpposites[d] }

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "invalid"
}
