package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"relativity_simulation_2d/internal/physics"
	"relativity_simulation_2d/internal/renderer"
)

func TestInputController_Integration(t *testing.T) {
	controller := NewInputController()

	t.Run("controller initializes with handlers", func(t *testing.T) {
		assert.NotNil(t, controller)
		assert.NotNil(t, controller.keyboard)
		assert.NotNil(t, controller.mouse)
	})

	t.Run("controller processes both keyboard and mouse", func(t *testing.T) {
		camera := renderer.NewCamera(physics.NewVec2(0, 0), 100, 800, 600)

		state := &SimulationState{}
		config := &InputConfig{
			PanSpeed:        1.0,
			ZoomSensitivity: 0.1,
			ScreenWidth:     800,
			ScreenHeight:    600,
		}

		controller.keyboard.SetKeyState(rl.KeyW, true)
		controller.keyboard.SetKeyPressed(rl.KeyP, true)
		controller.mouse.SetButtonDown(rl.MouseLeftButton, true)
		controller.mouse.SetMouseDelta(10, 5)
		controller.mouse.SetWheelMove(1)

		controller.ProcessInput(camera, state, config)

		assert.True(t, state.Paused)
		assert.NotEqual(t, physics.NewVec2(0, 0), camera.Center)
		assert.Greater(t, camera.Zoom, 100.0)
	})
}

func TestInputController_UpdateFromRaylib(t *testing.T) {
	controller := NewInputController()

	t.Run("updates handlers from raylib", func(t *testing.T) {
		controller.UpdateFromRaylib()
		assert.NotNil(t, controller)
	})
}

func TestInputController_Reset(t *testing.T) {
	controller := NewInputController()

	t.Run("reset clears input states", func(t *testing.T) {
		controller.keyboard.SetKeyState(rl.KeyW, true)
		controller.mouse.SetButtonDown(rl.MouseLeftButton, true)

		controller.Reset()

		assert.False(t, controller.keyboard.IsKeyDown(rl.KeyW))
		assert.False(t, controller.mouse.IsButtonDown(rl.MouseLeftButton))
	})
}
