package renderer

import (
	"errors"

	"relativity_simulation_2d/internal/physics"
)

// TrailPoint is one recorded sample of the moving particle's path, used
// to draw a trail behind it (adapted from the teacher's particle
// trail concept, deveworld-relativity_simul main.go's Particle.Trail).
type TrailPoint struct {
	Pos physics.Vec2
}

// BilliardRenderer draws a Billiard's obstacles and the evolving
// particle's trail (replaces the teacher's N-body ParticleRenderer,
// internal/renderer/particle_renderer.go — a single particle and a
// fixed obstacle set stand in for a variable-size point cloud).
type BilliardRenderer struct {
	bd     *physics.Billiard
	camera *Camera

	trail       []TrailPoint
	maxTrailLen int
}

// NewBilliardRenderer creates a renderer bound to a billiard's obstacle
// geometry; maxTrailLen bounds the particle trail's memory.
func NewBilliardRenderer(bd *physics.Billiard, maxTrailLen int) *BilliardRenderer {
	return &BilliardRenderer{
		bd:          bd,
		trail:       make([]TrailPoint, 0, maxTrailLen),
		maxTrailLen: maxTrailLen,
	}
}

// SetCamera sets the camera used for world-to-screen projection.
func (r *BilliardRenderer) SetCamera(camera *Camera) {
	r.camera = camera
}

// PushTrailPoint appends a particle position to the trail, dropping the
// oldest sample once maxTrailLen is exceeded.
func (r *BilliardRenderer) PushTrailPoint(pos physics.Vec2) {
	r.trail = append(r.trail, TrailPoint{Pos: pos})
	if len(r.trail) > r.maxTrailLen {
		r.trail = r.trail[1:]
	}
}

// Trail returns the current trail points, oldest first.
func (r *BilliardRenderer) Trail() []TrailPoint {
	return r.trail
}

// ClearTrail empties the trail (e.g. on a periodic teleport, where a
// straight line between tiles would be visually misleading).
func (r *BilliardRenderer) ClearTrail() {
	r.trail = r.trail[:0]
}

// ObstacleShape is a renderer-friendly projection of an Obstacle's
// geometry, resolved by type switch since Obstacle itself exposes no
// drawing primitives (spec §3's tagged-variant design, carried through
// to the demo layer).
type ObstacleShape struct {
	Kind       string
	Start, End physics.Vec2 // walls
	Center     physics.Vec2 // disks
	Radius     float64
}

// Shapes resolves every obstacle in the bound billiard into a drawable
// shape description.
func (r *BilliardRenderer) Shapes() []ObstacleShape {
	shapes := make([]ObstacleShape, 0, r.bd.Len())
	for i := 0; i < r.bd.Len(); i++ {
		shapes = append(shapes, shapeOf(r.bd.At(i)))
	}
	return shapes
}

func shapeOf(o physics.Obstacle) ObstacleShape {
	switch v := o.(type) {
	case *physics.InfiniteWall:
		return ObstacleShape{Kind: "wall", Start: v.Start, End: v.End}
	case *physics.FiniteWall:
		return ObstacleShape{Kind: "wall", Start: v.Start, End: v.End}
	case *physics.PeriodicWall:
		return ObstacleShape{Kind: "periodic", Start: v.Start, End: v.End}
	case *physics.RandomWall:
		return ObstacleShape{Kind: "wall", Start: v.Start, End: v.End}
	case *physics.SplitterWall:
		return ObstacleShape{Kind: "splitter", Start: v.Start, End: v.End}
	case *physics.Disk:
		return ObstacleShape{Kind: "disk", Center: v.Center, Radius: v.Radius}
	case *physics.RandomDisk:
		return ObstacleShape{Kind: "disk", Center: v.Center, Radius: v.Radius}
	case *physics.Antidot:
		return ObstacleShape{Kind: "antidot", Center: v.Center, Radius: v.Radius}
	case *physics.Semicircle:
		return ObstacleShape{Kind: "semicircle", Center: v.Center, Radius: v.Radius}
	default:
		return ObstacleShape{Kind: "unknown"}
	}
}

// Render draws nothing itself: it only reports an error when no camera
// is bound. The actual raylib draw calls live in cmd/billiardsview,
// which owns the window context (this package stays testable without
// one, same separation the teacher's Render enforced via its "OpenGL
// context not available" error).
func (r *BilliardRenderer) Render() error {
	if r.camera == nil {
		return errors.New("camera not set")
	}
	return nil
}
