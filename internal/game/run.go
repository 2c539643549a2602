package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

// HighScoreFile is the default persistence path, relative to the working
// directory.
const HighScoreFile = "high_score.json"

// RunDesktop opens the window and runs the game until quit. The simulation
// advances on a fixed timestep derived from the current speed; rendering runs
// at the display rate.
func RunDesktop() error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if err := InitAudio(); err != nil {
		log.WithError(err).Warn("audio init failed, continuing without sound")
	}
	if s := os.Getenv("SNAKE_VOLUME"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			SetSFXVolume(v)
		} else {
			log.WithField("value", s).Warn("invalid SNAKE_VOLUME, using default")
		}
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		} else {
			log.WithField("value", s).Warn("invalid SNAKE_SEED, using clock")
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	session := NewSession(DefaultConfig(), seed, NewHighScoreStore(HighScoreFile))
	AttachAudio(session.Bus())
	AttachEventLog(session.Bus())
	input := NewInput()
	fx := NewEffects()

	log.WithField("seed", seed).Info("session ready")

	acc := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() && !session.Quit {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		for _, cmd := range input.Poll(window) {
			if cmd == CmdStart && (session.State == StateMenu || session.State == StateGameOver) {
				PlaySound(SoundMenuSelect)
			}
			session.Apply(cmd)
		}
		if session.Quit {
			break
		}

		// Minimized: no framebuffer to draw into. Block on events instead of
		// spinning, and restart the clock so restore does not deliver a jump.
		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			glfw.WaitEvents()
			last = glfw.GetTime()
			continue
		}

		// Fixed-timestep simulation. The tick period is re-read between
		// ticks so a speed change takes effect from the next tick on.
		// Paused and non-playing states discard accumulated time.
		if session.State == StatePlaying {
			acc += dt
			period := 1.0 / session.Speed
			for acc >= period {
				session.Step()
				acc -= period
				if session.State != StatePlaying {
					acc = 0
					break
				}
				period = 1.0 / session.Speed
			}
		} else {
			acc = 0
		}

		session.Animate(dt)
		fx.Update(session, dt)

		rend.BeginFrame(fbW, fbH)
		rend.RenderGame(session, fx, fbW, fbH)
		rend.RenderHUD(session, fx, fbW, fbH)
		window.SwapBuffers()
	}

	return nil
}
