package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Effects holds frame-rate driven visual state: the food pulse and the
// overlay fade used by the menu, pause and game over screens. Purely
// cosmetic, never read by the simulation.
type Effects struct {
	pulse     *gween.Tween
	pulseUp   bool
	PulseT    float32
	overlay   *gween.Tween
	OverlayT  float32
	prevState GameState
}

func NewEffects() *Effects {
	return &Effects{
		pulse:     gween.New(0, 1, 0.45, ease.InOutQuad),
		pulseUp:   true,
		overlay:   gween.New(0, 1, 0.4, ease.OutQuad),
		prevState: StateMenu,
		OverlayT:  1,
	}
}

// Update advances the tweens by dt seconds. The food pulse ping-pongs; the
// overlay restarts its fade whenever the session enters an overlay state.
func (fx *Effects) Update(g *GameSession, dt float64) {
	v, done := fx.pulse.Update(float32(dt))
	fx.PulseT = v
	if done {
		if fx.pulseUp {
			fx.pulse = gween.New(1, 0, 0.45, ease.InOutQuad)
		} else {
			fx.pulse = gween.New(0, 1, 0.45, ease.InOutQuad)
		}
		fx.pulseUp = !fx.pulseUp
	}

	if g.State != fx.prevState {
		fx.prevState = g.State
		if g.State != StatePlaying {
			fx.overlay = gween.New(0, 1, 0.4, ease.OutQuad)
		}
	}
	if g.State != StatePlaying {
		ov, _ := fx.overlay.Update(float32(dt))
		fx.OverlayT = ov
	}
}

// FoodScale returns the current pulse scale factor for food sprites.
func (fx *Effects) FoodScale() float64 {
	return 0.88 + 0.24*float64(fx.PulseT)
}
