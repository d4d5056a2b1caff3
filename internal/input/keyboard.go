package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pan2D is a keyboard-driven camera pan delta, in world units (replaces
// the teacher's 3D Movement, internal/input/keyboard.go, whose
// Forward/Right/Up triple described first-person flight this top-down
// table view has no use for).
type Pan2D struct {
	X float32
	Y float32
}

// Actions represents action inputs from keyboard.
type Actions struct {
	TogglePause bool
	Reset       bool
}

// KeyboardHandler handles keyboard input.
type KeyboardHandler struct {
	keyStates  map[int32]bool
	keyPressed map[int32]bool
}

// NewKeyboardHandler creates a new keyboard handler.
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		keyStates:  make(map[int32]bool),
		keyPressed: make(map[int32]bool),
	}
}

// SetKeyState sets the state of a key (for testing).
func (k *KeyboardHandler) SetKeyState(key int32, pressed bool) {
	k.keyStates[key] = pressed
}

// SetKeyPressed sets whether a key was just pressed (for testing).
func (k *KeyboardHandler) SetKeyPressed(key int32, pressed bool) {
	k.keyPressed[key] = pressed
}

// IsKeyDown checks if a key is currently held down.
func (k *KeyboardHandler) IsKeyDown(key int32) bool {
	return k.keyStates[key]
}

// IsKeyPressed checks if a key was just pressed.
func (k *KeyboardHandler) IsKeyPressed(key int32) bool {
	return k.keyPressed[key]
}

// ProcessMovement processes pan keys (WASD and arrows) and returns the
// world-space pan delta for this frame.
func (k *KeyboardHandler) ProcessMovement(panSpeed float32) *Pan2D {
	pan := &Pan2D{}

	if k.IsKeyDown(rl.KeyW) || k.IsKeyDown(rl.KeyUp) {
		pan.Y += panSpeed
	}
	if k.IsKeyDown(rl.KeyS) || k.IsKeyDown(rl.KeyDown) {
		pan.Y -= panSpeed
	}
	if k.IsKeyDown(rl.KeyA) || k.IsKeyDown(rl.KeyLeft) {
		pan.X -= panSpeed
	}
	if k.IsKeyDown(rl.KeyD) || k.IsKeyDown(rl.KeyRight) {
		pan.X += panSpeed
	}

	return pan
}

// ProcessActions processes action keys and returns action flags.
func (k *KeyboardHandler) ProcessActions() *Actions {
	return &Actions{
		TogglePause: k.IsKeyPressed(rl.KeyP),
		Reset:       k.IsKeyPressed(rl.KeyR),
	}
}

// UpdateFromRaylib updates key states from raylib (for production use).
func (k *KeyboardHandler) UpdateFromRaylib() {
	k.keyPressed = make(map[int32]bool)

	k.keyPressed[rl.KeyP] = rl.IsKeyPressed(rl.KeyP)
	k.keyPressed[rl.KeyR] = rl.IsKeyPressed(rl.KeyR)

	k.keyStates[rl.KeyW] = rl.IsKeyDown(rl.KeyW)
	k.keyStates[rl.KeyS] = rl.IsKeyDown(rl.KeyS)
	k.keyStates[rl.KeyA] = rl.IsKeyDown(rl.KeyA)
	k.keyStates[rl.KeyD] = rl.IsKeyDown(rl.KeyD)
	k.keyStates[rl.KeyUp] = rl.IsKeyDown(rl.KeyUp)
	k.keyStates[rl.KeyDown] = rl.IsKeyDown(rl.KeyDown)
	k.keyStates[rl.KeyLeft] = rl.IsKeyDown(rl.KeyLeft)
	k.keyStates[rl.KeyRight] = rl.IsKeyDown(rl.KeyRight)
}
