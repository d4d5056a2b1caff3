package renderer

import "relativity_simulation_2d/internal/physics"

// Camera is a 2D pan/zoom camera over the billiard's world coordinates,
// replacing the teacher's 3D look-at camera (deveworld-relativity_simul
// internal/renderer/camera.go): a table viewed top-down has no yaw,
// pitch, or frustum, only a translation and a scale.
type Camera struct {
	Center physics.Vec2
	Zoom   float64 // world units per pixel is 1/Zoom

	screenWidth, screenHeight int
}

// NewCamera centers the view on center with the given zoom level
// (pixels per world unit).
func NewCamera(center physics.Vec2, zoom float64, screenWidth, screenHeight int) *Camera {
	return &Camera{Center: center, Zoom: zoom, screenWidth: screenWidth, screenHeight: screenHeight}
}

// WorldToScreen projects a world-space point to pixel coordinates.
func (c *Camera) WorldToScreen(p physics.Vec2) (x, y float64) {
	x = float64(c.screenWidth)/2 + (p.X-c.Center.X)*c.Zoom
	y = float64(c.screenHeight)/2 - (p.Y-c.Center.Y)*c.Zoom
	return x, y
}

// ScreenToWorld is WorldToScreen's inverse.
func (c *Camera) ScreenToWorld(x, y float64) physics.Vec2 {
	wx := (x-float64(c.screenWidth)/2)/c.Zoom + c.Center.X
	wy := -(y-float64(c.screenHeight)/2)/c.Zoom + c.Center.Y
	return physics.NewVec2(wx, wy)
}

// Pan shifts the camera center by a world-space delta.
func (c *Camera) Pan(delta physics.Vec2) {
	c.Center = c.Center.Add(delta)
}

// ZoomBy multiplies the zoom level, clamped to a sane range so the
// table never shrinks to a point or blows past pixel precision.
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom *= factor
	if c.Zoom < 5 {
		c.Zoom = 5
	}
	if c.Zoom > 4000 {
		c.Zoom = 4000
	}
}

// Resize updates the camera's screen dimensions (e.g. on window resize).
func (c *Camera) Resize(width, height int) {
	c.screenWidth, c.screenHeight = width, height
}

// ScreenSize returns the camera's current screen dimensions.
func (c *Camera) ScreenSize() (int, int) {
	return c.screenWidth, c.screenHeight
}

// ScaledRadius converts a world-space radius to a pixel radius at the
// camera's current zoom.
func (c *Camera) ScaledRadius(r float64) float64 {
	return r * c.Zoom
}
