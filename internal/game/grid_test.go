package game

import "testing"

func TestPositionStep(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Position
	}{
		{DirUp, Position{X: 5, Y: 4}},
		{DirDown, Position{X: 5, Y: 6}},
		{DirLeft, Position{X: 4, Y: 5}},
		{DirRight, Position{X: 6, Y: 5}},
	}
	start := Position{X: 5, Y: 5}
	for _, tt := range tests {
		if got := start.Step(tt.dir); got != tt.want {
			t.Errorf("Step(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite is not identity", d)
		}
		if d.Opposite() == d {
			t.Errorf("%v: opposite equals itself", d)
		}
	}
}

func TestConfigContains(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{cfg.GridWidth - 1, cfg.GridHeight - 1}, true},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
		{Position{cfg.GridWidth, 0}, false},
		{Position{0, cfg.GridHeight}, false},
	}
	for _, tt := range tests {
		if got := cfg.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSpeedFor(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		score int
		want  float64
	}{
		{0, 10},
		{40, 10},
		{49, 10},
		{50, 11},
		{99, 11},
		{100, 12},
		{250, 15},
		{500, 20},
		{5000, 20}, // clamped at MaxSpeed
	}
	for _, tt := range tests {
		if got := cfg.SpeedFor(tt.score); got != tt.want {
			t.Errorf("SpeedFor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestPoints(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Points(FoodRegular); got != 10 {
		t.Errorf("Points(regular) = %d, want 10", got)
	}
	if got := cfg.Points(FoodSpecial); got != 50 {
		t.Errorf("Points(special) = %d, want 50", got)
	}
}
