package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relativity_simulation_2d/internal/physics"
	"relativity_simulation_2d/internal/renderer"
)

// SimulationState holds the current simulation state affected by input.
type SimulationState struct {
	Paused bool
	Reset  bool
}

// InputConfig holds input configuration settings.
type InputConfig struct {
	PanSpeed        float32
	ZoomSensitivity float32
	ScreenWidth     int
	ScreenHeight    int
}

// InputController coordinates keyboard and mouse input against a 2D
// camera (replaces the teacher's first-person InputController,
// internal/input/controller.go, which drove a rl.Camera3D).
type InputController struct {
	keyboard *KeyboardHandler
	mouse    *MouseHandler
}

// NewInputController creates a new input controller.
func NewInputController() *InputController {
	return &InputController{
		keyboard: NewKeyboardHandler(),
		mouse:    NewMouseHandler(),
	}
}

// ProcessInput processes all input and updates the camera and state.
func (c *InputController) ProcessInput(camera *renderer.Camera, state *SimulationState, config *InputConfig) {
	actions := c.keyboard.ProcessActions()
	if actions.TogglePause {
		state.Paused = !state.Paused
	}
	state.Reset = actions.Reset

	pan := c.keyboard.ProcessMovement(config.PanSpeed)
	if pan.X != 0 || pan.Y != 0 {
		camera.Pan(physics.NewVec2(float64(pan.X), float64(pan.Y)))
	}

	drag := c.mouse.ProcessDrag()
	if drag.Active {
		worldPerPixel := 1 / camera.Zoom
		camera.Pan(physics.NewVec2(float64(-drag.DeltaX)*worldPerPixel, float64(drag.DeltaY)*worldPerPixel))
	}

	if zoom := c.mouse.ProcessZoom(config.ZoomSensitivity); zoom != 1 {
		camera.ZoomBy(float64(zoom))
	}
}

// UpdateFromRaylib updates input states from raylib.
func (c *InputController) UpdateFromRaylib() {
	c.keyboard.UpdateFromRaylib()
	c.mouse.UpdateFromRaylib()
}

// Reset clears all input states.
func (c *InputController) Reset() {
	c.keyboard.keyStates = make(map[int32]bool)
	c.keyboard.keyPressed = make(map[int32]bool)
	c.mouse.buttonStates = make(map[rl.MouseButton]bool)
	c.mouse.deltaX = 0
	c.mouse.deltaY = 0
	c.mouse.wheelMove = 0
}
