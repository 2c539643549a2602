package game

// Snake is the player-controlled entity. Body[0] is the head; the tail is the
// last element. An occupancy map mirrors the body so membership tests stay
// O(1) regardless of length. The map counts segments per cell because a
// growth move into the just-vacated tail cell legitimately doubles up for one
// tick.
type Snake struct {
	Body     []Position
	occupied map[Position]int
}

// NewSnake builds a snake of the given length with its head at head, body
// extending opposite to dir (so the first move continues in dir).
func NewSnake(head Position, length int, dir Direction) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().Vector()
	s := &Snake{
		Body:     make([]Position, 0, length+16),
		occupied: make(map[Position]int, length+16),
	}
	for i := 0; i < length; i++ {
		p := Position{X: head.X + back.X*i, Y: head.Y + back.Y*i}
		s.Body = append(s.Body, p)
		s.occupied[p]++
	}
	return s
}

func (s *Snake) Head() Position { return s.Body[0] }

func (s *Snake) Tail() Position { return s.Body[len(s.Body)-1] }

func (s *Snake) Len() int { return len(s.Body) }

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Position) bool { return s.occupied[p] > 0 }

// HitsSelf reports whether moving the head onto p would collide with the
// body. The current tail cell is excluded: it vacates this tick unless the
// move grows the snake, and a growth move onto it is defined as legal too.
func (s *Snake) HitsSelf(p Position) bool {
	n := s.occupied[p]
	if n == 0 {
		return false
	}
	if p == s.Tail() && n == 1 {
		return false
	}
	return true
}

// Advance prepends the new head cell. Unless grow is set, the tail is removed
// in the same move, keeping the length constant; with grow the tail stays and
// the snake nets one segment.
func (s *Snake) Advance(d Direction, grow bool) {
	head := s.Head().Step(d)
	if !grow {
		tail := s.Tail()
		s.Body = s.Body[:len(s.Body)-1]
		if n := s.occupied[tail]; n <= 1 {
			delete(s.occupied, tail)
		} else {
			s.occupied[tail] = n - 1
		}
	}
	s.Body = append(s.Body, Position{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = head
	s.occupied[head]++
}
