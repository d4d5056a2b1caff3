package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DragPan is a mouse-drag-driven camera pan, in screen pixels (replaces
// the teacher's Rotation, internal/input/mouse.go, whose yaw/pitch
// deltas drove a first-person look; this table view only ever pans and
// zooms).
type DragPan struct {
	Active       bool
	DeltaX       float32
	DeltaY       float32
	ShouldCenter bool
}

// MouseHandler handles mouse input.
type MouseHandler struct {
	buttonStates map[rl.MouseButton]bool
	deltaX       float32
	deltaY       float32
	wheelMove    float32
}

// NewMouseHandler creates a new mouse handler.
func NewMouseHandler() *MouseHandler {
	return &MouseHandler{
		buttonStates: make(map[rl.MouseButton]bool),
	}
}

// SetButtonDown sets the state of a mouse button (for testing).
func (m *MouseHandler) SetButtonDown(button rl.MouseButton, down bool) {
	m.buttonStates[button] = down
}

// SetMouseDelta sets the mouse delta (for testing).
func (m *MouseHandler) SetMouseDelta(x, y float32) {
	m.deltaX = x
	m.deltaY = y
}

// SetWheelMove sets the mouse wheel delta (for testing).
func (m *MouseHandler) SetWheelMove(delta float32) {
	m.wheelMove = delta
}

// IsButtonDown checks if a mouse button is held down.
func (m *MouseHandler) IsButtonDown(button rl.MouseButton) bool {
	return m.buttonStates[button]
}

// GetMouseDelta gets the mouse movement delta.
func (m *MouseHandler) GetMouseDelta() (float32, float32) {
	return m.deltaX, m.deltaY
}

// GetWheelMove gets the mouse wheel delta.
func (m *MouseHandler) GetWheelMove() float32 {
	return m.wheelMove
}

// ProcessDrag processes left-button drag-to-pan input.
func (m *MouseHandler) ProcessDrag() *DragPan {
	drag := &DragPan{}

	if !m.IsButtonDown(rl.MouseLeftButton) {
		drag.ShouldCenter = false
		return drag
	}

	drag.Active = true
	drag.DeltaX, drag.DeltaY = m.GetMouseDelta()
	return drag
}

// ProcessZoom converts the mouse wheel delta into a zoom factor, 1
// meaning no change.
func (m *MouseHandler) ProcessZoom(sensitivity float32) float32 {
	wheel := m.GetWheelMove()
	if wheel == 0 {
		return 1
	}
	return 1 + wheel*sensitivity
}

// UpdateFromRaylib updates mouse state from raylib (for production use).
func (m *MouseHandler) UpdateFromRaylib() {
	m.buttonStates[rl.MouseLeftButton] = rl.IsMouseButtonDown(rl.MouseLeftButton)

	delta := rl.GetMouseDelta()
	m.deltaX = delta.X
	m.deltaY = delta.Y

	m.wheelMove = rl.GetMouseWheelMove()
}
