package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

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

// FlightControls reads the held steering keys. turn is -1 (left), 0, or
// +1 (right); thrust is W, Up, or Space.
func FlightControls(window *glfw.Window) (turn float64, thrust bool) {
	if window.GetKey(glfw.KeyA) == glfw.Press || window.GetKey(glfw.KeyLeft) == glfw.Press {
		turn -= 1
	}
	if window.GetKey(glfw.KeyD) == glfw.Press || window.GetKey(glfw.KeyRight) == glfw.Press {
		turn += 1
	}
	thrust = window.GetKey(glfw.KeyW) == glfw.Press ||
		window.GetKey(glfw.KeyUp) == glfw.Press ||
		window.GetKey(glfw.KeySpace) == glfw.Press
	return turn, thrust
}

// UpdateCameraZoom handles E/R zoom keys.
func UpdateCameraZoom(cam *Camera, window *glfw.Window, dt float64, fbW, fbH int) {
	zoomRate := 1.4
	if window.GetKey(glfw.KeyE) == glfw.Press {
		cam.Zoom *= math.Exp(zoomRate * dt)
	}
	if window.GetKey(glfw.KeyR) == glfw.Press {
		cam.Zoom *= math.Exp(-zoomRate * dt)
	}
	cam.Clamp(fbW, fbH)
}
