package game

import "fmt"

// dimOverlay darkens the whole board with a tile of large sprites, alpha
// driven by the overlay fade. Tiled because GL point size is driver-capped.
func (r *Renderer) dimOverlay(alpha float32, fbW, fbH int) {
	if alpha <= 0 {
		return
	}
	const tile = 128
	var buf []float32
	for y := tile / 2; y < fbH+tile; y += tile {
		for x := tile / 2; x < fbW+tile; x += tile {
			buf = append(buf, float32(x), float32(y), tile, 0, 0, 0, alpha, 0)
		}
	}
	r.DrawSprites(buf, fbW, fbH)
}

// RenderHUD draws all UI text for the current state.
func (r *Renderer) RenderHUD(g *GameSession, fx *Effects, fbW, fbH int) {
	switch g.State {
	case StateMenu:
		r.dimOverlay(0.35, fbW, fbH)

		title := "SNAKE"
		titleScale := float32(6.0)
		bob := int(8 * fx.PulseT)
		r.DrawString(title, fbW/2-TextWidth(title, titleScale)/2, fbH/2-140+bob, titleScale, Palette.SnakeHead)

		msg := "Press SPACE to start"
		r.DrawString(msg, fbW/2-TextWidth(msg, 1.2)/2, fbH/2+10, 1.2, Palette.Text)

		hint := "Arrows / WASD to steer   P to pause   ESC to quit"
		r.DrawString(hint, fbW/2-TextWidth(hint, 0.8)/2, fbH/2+50, 0.8, Palette.TextShadow)

		if g.HighScore > 0 {
			hi := fmt.Sprintf("High Score: %d", g.HighScore)
			r.DrawString(hi, fbW/2-TextWidth(hi, 1.0)/2, fbH/2+100, 1.0, Palette.SpecialFood)
		}

	case StatePlaying:
		scoreStr := fmt.Sprintf("Score: %d", g.Score)
		r.DrawString(scoreStr, 8, 8, 1.1, Palette.Text)

		hiStr := fmt.Sprintf("High: %d", g.HighScore)
		r.DrawString(hiStr, fbW-TextWidth(hiStr, 1.1)-8, 8, 1.1, Palette.TextShadow)

		spdStr := fmt.Sprintf("Speed: %.0f", g.Speed)
		r.DrawString(spdStr, fbW-TextWidth(spdStr, 0.8)-8, 34, 0.8, Palette.TextShadow)

		if sp, ok := g.Food.Special(); ok {
			bonus := fmt.Sprintf("Bonus: %d", sp.TicksLeft)
			r.DrawString(bonus, fbW/2-TextWidth(bonus, 0.9)/2, 8, 0.9, Palette.SpecialFood)
		}

	case StatePaused:
		r.dimOverlay(0.55*fx.OverlayT, fbW, fbH)

		msg := "PAUSED"
		r.DrawString(msg, fbW/2-TextWidth(msg, 3.0)/2, fbH/2-40, 3.0, Palette.Pause)

		hint := "Press P to resume"
		r.DrawString(hint, fbW/2-TextWidth(hint, 0.9)/2, fbH/2+30, 0.9, Palette.Text)

	case StateGameOver:
		r.dimOverlay(0.6*fx.OverlayT, fbW, fbH)

		msg := "GAME OVER"
		r.DrawString(msg, fbW/2-TextWidth(msg, 3.0)/2, fbH/2-90, 3.0, Palette.GameOver)

		score := fmt.Sprintf("Final Score: %d", g.Score)
		r.DrawString(score, fbW/2-TextWidth(score, 1.2)/2, fbH/2-10, 1.2, Palette.Text)

		if g.NewHigh {
			hi := "NEW HIGH SCORE!"
			r.DrawString(hi, fbW/2-TextWidth(hi, 1.2)/2, fbH/2+30, 1.2, Palette.SpecialFood)
		} else {
			hi := fmt.Sprintf("High Score: %d", g.HighScore)
			r.DrawString(hi, fbW/2-TextWidth(hi, 0.9)/2, fbH/2+30, 0.9, Palette.TextShadow)
		}

		again := "SPACE to play again   ESC to quit"
		r.DrawString(again, fbW/2-TextWidth(again, 0.9)/2, fbH/2+80, 0.9, Palette.Text)
	}

	r.FlushText(fbW, fbH)
}
