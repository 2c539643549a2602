package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input tracks per-key edge state so a held key fires once.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// keyCommands maps physical keys to logical commands. Arrows and WASD both
// steer; order matters only when two mapped keys fire on the same frame, in
// which case the first listed wins.
var keyCommands = []struct {
	key glfw.Key
	cmd Command
}{
	{glfw.KeyUp, CmdUp},
	{glfw.KeyW, CmdUp},
	{glfw.KeyDown, CmdDown},
	{glfw.KeyS, CmdDown},
	{glfw.KeyLeft, CmdLeft},
	{glfw.KeyA, CmdLeft},
	{glfw.KeyRight, CmdRight},
	{glfw.KeyD, CmdRight},
	{glfw.KeySpace, CmdStart},
	{glfw.KeyP, CmdPause},
	{glfw.KeyEscape, CmdQuit},
}

// Poll returns the commands that fired this frame, in mapping order.
func (in *Input) Poll(window *glfw.Window) []Command {
	var cmds []Command
	for _, kc := range keyCommands {
		if in.JustPressed(window, kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}
	return cmds
}
