package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"racer/internal/game"
)

// keyBinding maps one key to the press/release event pair it produces.
type keyBinding struct {
	key     glfw.Key
	press   game.InputEvent
	release game.InputEvent
}

var bindings = []keyBinding{
	{glfw.KeyLeft, game.SteerLeft, game.ReleaseLeft},
	{glfw.KeyA, game.SteerLeft, game.ReleaseLeft},
	{glfw.KeyRight, game.SteerRight, game.ReleaseRight},
	{glfw.KeyD, game.SteerRight, game.ReleaseRight},
	{glfw.KeyUp, game.Accelerate, game.ReleaseAccelerate},
	{glfw.KeyW, game.Accelerate, game.ReleaseAccelerate},
	{glfw.KeyDown, game.Brake, game.ReleaseBrake},
	{glfw.KeyS, game.Brake, game.ReleaseBrake},
}

// Input polls the keyboard each frame and turns key edges into engine
// input events. Holding two keys bound to the same action keeps it held
// until both are released.
type Input struct {
	window *glfw.Window
	prev   map[glfw.Key]bool
	held   map[game.InputEvent]int // press event -> number of keys holding it
}

func NewInput(window *glfw.Window) *Input {
	return &Input{
		window: window,
		prev:   make(map[glfw.Key]bool),
		held:   make(map[game.InputEvent]int),
	}
}

// Poll emits press/release events for every key edge since the last call.
func (in *Input) Poll(engine *game.Engine) {
	for _, b := range bindings {
		down := in.window.GetKey(b.key) == glfw.Press
		was := in.prev[b.key]
		in.prev[b.key] = down
		if down == was {
			continue
		}
		if down {
			if in.held[b.press] == 0 {
				engine.HandleInput(b.press)
			}
			in.held[b.press]++
		} else {
			in.held[b.press]--
			if in.held[b.press] <= 0 {
				in.held[b.press] = 0
				engine.HandleInput(b.release)
			}
		}
	}
}

// JustPressed reports a rising edge for a key not covered by bindings
// (session controls like pause and restart).
func (in *Input) JustPressed(key glfw.Key) bool {
	down := in.window.GetKey(key) == glfw.Press
	was := in.prev[key]
	in.prev[key] = down
	return down && !was
}
