package game

import "testing"

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(Position{X: 10, Y: 5}, 3, DirRight)
	want := []Position{{10, 5}, {9, 5}, {8, 5}}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("Body[%d] = %v, want %v", i, s.Body[i], p)
		}
	}
	if s.Head() != want[0] || s.Tail() != want[2] {
		t.Errorf("Head/Tail = %v/%v, want %v/%v", s.Head(), s.Tail(), want[0], want[2])
	}
	for _, p := range want {
		if !s.Occupies(p) {
			t.Errorf("Occupies(%v) = false", p)
		}
	}
}

func TestAdvanceKeepsLength(t *testing.T) {
	s := NewSnake(Position{X: 5, Y: 5}, 3, DirRight)
	oldTail := s.Tail()
	s.Advance(DirRight, false)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if s.Head() != (Position{X: 6, Y: 5}) {
		t.Errorf("Head = %v, want (6,5)", s.Head())
	}
	if s.Occupies(oldTail) {
		t.Errorf("old tail %v still occupied", oldTail)
	}
}

func TestAdvanceGrow(t *testing.T) {
	s := NewSnake(Position{X: 5, Y: 5}, 3, DirRight)
	oldTail := s.Tail()
	s.Advance(DirRight, true)
	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}
	if s.Tail() != oldTail {
		t.Errorf("Tail = %v, want %v", s.Tail(), oldTail)
	}
	if !s.Occupies(Position{X: 6, Y: 5}) {
		t.Errorf("new head not occupied")
	}
}

func TestHitsSelfExcludesTail(t *testing.T) {
	// Snake at (5,5) (4,5) (3,5): moving onto the tail cell is legal because
	// it vacates on the same tick.
	s := NewSnake(Position{X: 5, Y: 5}, 3, DirRight)
	if s.HitsSelf(Position{X: 3, Y: 5}) {
		t.Errorf("tail cell should not count as self collision")
	}
	if !s.HitsSelf(Position{X: 4, Y: 5}) {
		t.Errorf("body cell should count as self collision")
	}
	if s.HitsSelf(Position{X: 6, Y: 5}) {
		t.Errorf("free cell should not count as self collision")
	}
}

func TestOccupancySurvivesLongWalk(t *testing.T) {
	s := NewSnake(Position{X: 10, Y: 10}, 4, DirRight)
	dirs := []Direction{DirRight, DirDown, DirDown, DirLeft, DirLeft, DirUp, DirRight}
	for _, d := range dirs {
		s.Advance(d, false)
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}
	// Occupancy map must exactly mirror the body.
	for _, p := range s.Body {
		if !s.Occupies(p) {
			t.Errorf("body cell %v not in occupancy", p)
		}
	}
	count := 0
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			if s.Occupies(Position{X: x, Y: y}) {
				count++
			}
		}
	}
	if count != 4 {
		t.Errorf("occupied cells = %d, want 4", count)
	}
}
