package game

func appendSprite(buf []float32, x, y, size float32, col RGB, alpha float32) []float32 {
	return append(buf,
		x, y, size,
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255,
		alpha, 0,
	)
}

// RenderGame draws the board, snake, food and particles for one frame. All
// positions scale from grid space to the framebuffer, so HiDPI framebuffers
// render correctly.
func (r *Renderer) RenderGame(g *GameSession, fx *Effects, fbW, fbH int) {
	cfg := g.Config()
	px := float32(fbW) / float32(cfg.GridWidth)
	py := float32(fbH) / float32(cfg.GridHeight)
	cell := px
	if py < cell {
		cell = py
	}
	at := func(p Position) (float32, float32) {
		return (float32(p.X) + 0.5) * px, (float32(p.Y) + 0.5) * py
	}

	// Faint grid dots at cell corners.
	grid := r.cellBuf[:0]
	for y := 1; y < cfg.GridHeight; y++ {
		for x := 1; x < cfg.GridWidth; x++ {
			grid = appendSprite(grid, float32(x)*px, float32(y)*py, cell*0.08, Palette.Grid, 1)
		}
	}
	r.DrawSprites(grid, fbW, fbH)

	// Snake: head to tail colour gradient, rounded cells.
	body := grid[:0]
	n := g.Snake.Len()
	for i, p := range g.Snake.Body {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		var col RGB
		if i == 0 {
			col = Palette.SnakeHead
		} else {
			col = lerpRGB(Palette.SnakeBody, Palette.SnakeTail, t)
		}
		x, y := at(p)
		body = appendSprite(body, x, y, cell, col, 1)
	}

	// Food cells share the buffer: drawn in the same rounded-box pass.
	scale := float32(fx.FoodScale())
	if pos, ok := g.Food.Regular(); ok {
		x, y := at(pos)
		body = appendSprite(body, x, y, cell*scale, Palette.Food, 1)
	}
	if sp, ok := g.Food.Special(); ok {
		alpha := float32(1.0)
		// Blink during the last fifth of the special's lifetime.
		if cfg.SpecialLifetime > 0 && sp.TicksLeft < cfg.SpecialLifetime/5 {
			if sp.TicksLeft%4 < 2 {
				alpha = 0.35
			}
		}
		x, y := at(sp.Pos)
		body = appendSprite(body, x, y, cell*1.1*scale, Palette.SpecialFood, alpha)
	}
	r.DrawCells(body, fbW, fbH)
	r.cellBuf = body[:0]

	// Soft glow under the head and both foods.
	glow := r.glowBuf[:0]
	hx, hy := at(g.Snake.Head())
	glow = appendSprite(glow, hx, hy, cell*2.4, Palette.SnakeHead.Mul(70), 1)
	if pos, ok := g.Food.Regular(); ok {
		x, y := at(pos)
		glow = appendSprite(glow, x, y, cell*2.2, Palette.Food.Mul(80), 1)
	}
	if sp, ok := g.Food.Special(); ok {
		x, y := at(sp.Pos)
		glow = appendSprite(glow, x, y, cell*3.0*scale, Palette.SpecialFood.Mul(90), 1)
	}
	r.DrawGlowSprites(glow, fbW, fbH)
	r.glowBuf = glow[:0]

	// Particles live in logical pixel space; scale them to the framebuffer.
	s := cell / float32(cfg.CellSize)
	buf := g.Particles.RenderData(r.particleBuf)
	for i := 0; i+7 < len(buf); i += 8 {
		buf[i] *= px / float32(cfg.CellSize)
		buf[i+1] *= py / float32(cfg.CellSize)
		buf[i+2] *= s
	}
	r.DrawSprites(buf, fbW, fbH)
	r.particleBuf = buf[:0]
}
