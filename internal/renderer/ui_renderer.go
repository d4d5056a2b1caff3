package renderer

import (
	"errors"
	"fmt"
)

// RunState distinguishes the two terminal conditions the evolution
// driver can report for the live demo (spec §7 Diagnostics), in
// addition to the steady "running" state.
type RunState int

const (
	// RunStateActive means the particle is still bouncing.
	RunStateActive RunState = iota
	// RunStateEscaped means the last collision time was +Inf with no
	// periodic wall to fall back on.
	RunStateEscaped
	// RunStatePinned means a magnetic particle's orbit never left its
	// starting cell.
	RunStatePinned
)

// UIColor represents an RGB color for UI elements.
type UIColor struct {
	R, G, B, A uint8
}

// UIState is the billiard-specific display state (replaces the
// teacher's N-body UIState, internal/renderer/ui_renderer.go, whose
// ParticleCount/Mode/GPUFallback fields described a feature this domain
// doesn't have).
type UIState struct {
	CollisionCount int
	AccumulatedSec float64
	Omega          float64 // 0 for straight particles
	State          RunState
	TargetFPS      int
	ActualFPS      int
	FrameTime      float64
	Paused         bool
}

// UIRenderer handles UI rendering for the billiard demo.
type UIRenderer struct {
	screenWidth  int
	screenHeight int
	fontSize     int

	title          string
	collisionCount int
	accumulatedSec float64
	omega          float64
	state          RunState
	targetFPS      int
	actualFPS      int
	frameTime      float64
	paused         bool
}

// NewUIRenderer creates a new UI renderer.
func NewUIRenderer(screenWidth, screenHeight int) *UIRenderer {
	return &UIRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontSize:     20,
		title:        "2D Dynamical Billiard",
	}
}

// GetScreenDimensions returns the screen dimensions.
func (ui *UIRenderer) GetScreenDimensions() (int, int) {
	return ui.screenWidth, ui.screenHeight
}

// SetTitle sets the UI title.
func (ui *UIRenderer) SetTitle(title string) { ui.title = title }

// GetTitle returns the UI title.
func (ui *UIRenderer) GetTitle() string { return ui.title }

// UpdateState updates the UI state from a UIState struct.
func (ui *UIRenderer) UpdateState(state UIState) {
	ui.collisionCount = state.CollisionCount
	ui.accumulatedSec = state.AccumulatedSec
	ui.omega = state.Omega
	ui.state = state.State
	ui.targetFPS = state.TargetFPS
	ui.actualFPS = state.ActualFPS
	ui.frameTime = state.FrameTime
	ui.paused = state.Paused
}

// GetStateString returns the run-state display string.
func (ui *UIRenderer) GetStateString() string {
	switch ui.state {
	case RunStateEscaped:
		return "State: escaped to infinity"
	case RunStatePinned:
		return "State: pinned (Larmor orbit never left its cell)"
	default:
		return "State: running"
	}
}

// GetStateColor returns the color for the run-state display.
func (ui *UIRenderer) GetStateColor() UIColor {
	switch ui.state {
	case RunStateEscaped:
		return UIColor{R: 255, G: 80, B: 80, A: 255}
	case RunStatePinned:
		return UIColor{R: 255, G: 255, B: 0, A: 255}
	default:
		return UIColor{R: 0, G: 255, B: 0, A: 255}
	}
}

// GetControlInstructions returns the control instruction lines.
func (ui *UIRenderer) GetControlInstructions() []string {
	return []string{
		"Arrow keys / WASD to pan",
		"Mouse wheel to zoom",
		"P to pause, R to reset",
	}
}

// SetTargetFPS sets the target FPS.
func (ui *UIRenderer) SetTargetFPS(fps int) { ui.targetFPS = fps }

// GetTargetFPS returns the target FPS.
func (ui *UIRenderer) GetTargetFPS() int { return ui.targetFPS }

// SetActualFPS sets the actual FPS.
func (ui *UIRenderer) SetActualFPS(fps int) { ui.actualFPS = fps }

// GetActualFPS returns the actual FPS.
func (ui *UIRenderer) GetActualFPS() int { return ui.actualFPS }

// IsPaused returns the pause state.
func (ui *UIRenderer) IsPaused() bool { return ui.paused }

// SetPaused sets the pause state.
func (ui *UIRenderer) SetPaused(paused bool) { ui.paused = paused }

// GetPauseText returns the pause indicator text.
func (ui *UIRenderer) GetPauseText() string {
	return "PAUSED (Press P to unpause)"
}

// GetTitlePosition returns the title position.
func (ui *UIRenderer) GetTitlePosition() (int, int) { return 10, 10 }

// GetCollisionCountPosition returns the collision-count display position.
func (ui *UIRenderer) GetCollisionCountPosition() (int, int) { return 10, 40 }

// GetStatePosition returns the run-state display position.
func (ui *UIRenderer) GetStatePosition() (int, int) { return 10, 70 }

// GetFPSPosition returns the FPS display position.
func (ui *UIRenderer) GetFPSPosition() (int, int) { return ui.screenWidth - 200, 10 }

// GetPausePosition returns the pause indicator position.
func (ui *UIRenderer) GetPausePosition() (int, int) {
	return ui.screenWidth/2 - 150, ui.screenHeight/2 - 10
}

// GetTitleColor returns the title color (lime/green).
func (ui *UIRenderer) GetTitleColor() UIColor { return UIColor{R: 0, G: 255, B: 0, A: 255} }

// GetDefaultTextColor returns the default text color (white).
func (ui *UIRenderer) GetDefaultTextColor() UIColor { return UIColor{R: 255, G: 255, B: 255, A: 255} }

// GetPauseColor returns the pause indicator color (yellow).
func (ui *UIRenderer) GetPauseColor() UIColor { return UIColor{R: 255, G: 255, B: 0, A: 255} }

// GetFontSize returns the font size.
func (ui *UIRenderer) GetFontSize() int { return ui.fontSize }

// SetFontSize sets the font size.
func (ui *UIRenderer) SetFontSize(size int) { ui.fontSize = size }

// Render renders the UI. The actual draw calls live in
// cmd/billiardsview, which owns the raylib window context; this keeps
// the package testable headlessly, same separation as the teacher's
// Render() "graphics context not available" stub.
func (ui *UIRenderer) Render() error {
	return errors.New("graphics context not available")
}

// GetCollisionCountText returns formatted collision-count text.
func (ui *UIRenderer) GetCollisionCountText() string {
	return fmt.Sprintf("Collisions: %d", ui.collisionCount)
}

// GetAccumulatedTimeText returns formatted accumulated-time text.
func (ui *UIRenderer) GetAccumulatedTimeText() string {
	return fmt.Sprintf("Elapsed: %.3fs", ui.accumulatedSec)
}

// GetOmegaText returns formatted cyclotron-frequency text.
func (ui *UIRenderer) GetOmegaText() string {
	if ui.omega == 0 {
		return "Omega: 0 (straight)"
	}
	return fmt.Sprintf("Omega: %.3f", ui.omega)
}

// GetTargetFPSText returns formatted target FPS text.
func (ui *UIRenderer) GetTargetFPSText() string {
	return fmt.Sprintf("Target FPS: %d", ui.targetFPS)
}

// GetActualFPSText returns formatted actual FPS text.
func (ui *UIRenderer) GetActualFPSText() string {
	return fmt.Sprintf("Actual FPS: %d", ui.actualFPS)
}

// GetFrameTimeText returns formatted frame time text.
func (ui *UIRenderer) GetFrameTimeText() string {
	return fmt.Sprintf("Frame Time: %.3fs", ui.frameTime)
}

// GetControlPosition returns the position for control instruction at
// the given index.
func (ui *UIRenderer) GetControlPosition(index int) (int, int) {
	return 10, 130 + index*30
}

// GetActualFPSPosition returns the actual FPS display position.
func (ui *UIRenderer) GetActualFPSPosition() (int, int) { return ui.screenWidth - 200, 35 }

// GetFrameTimePosition returns the frame time display position.
func (ui *UIRenderer) GetFrameTimePosition() (int, int) { return ui.screenWidth - 200, 60 }
