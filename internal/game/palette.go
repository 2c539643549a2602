package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Palette is the dark theme with neon accents used across the game.
var Palette = struct {
	Background  RGB
	Grid        RGB
	SnakeHead   RGB
	SnakeBody   RGB
	SnakeTail   RGB
	Food        RGB
	SpecialFood RGB
	Text        RGB
	TextShadow  RGB
	GameOver    RGB
	Pause       RGB
	Particle    RGB
}{
	Background:  RGB{R: 15, G: 15, B: 25},
	Grid:        RGB{R: 25, G: 25, B: 35},
	SnakeHead:   RGB{R: 50, G: 255, B: 150},
	SnakeBody:   RGB{R: 40, G: 200, B: 120},
	SnakeTail:   RGB{R: 20, G: 100, B: 60},
	Food:        RGB{R: 255, G: 100, B: 120},
	SpecialFood: RGB{R: 255, G: 215, B: 0},
	Text:        RGB{R: 255, G: 255, B: 255},
	TextShadow:  RGB{R: 100, G: 100, B: 100},
	GameOver:    RGB{R: 255, G: 50, B: 50},
	Pause:       RGB{R: 255, G: 200, B: 50},
	Particle:    RGB{R: 100, G: 255, B: 200},
}
