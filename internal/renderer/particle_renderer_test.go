package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relativity_simulation_2d/internal/physics"
)

func testBilliard() *physics.Billiard {
	return physics.NewBilliard(
		&physics.FiniteWall{OName: "right", Start: physics.NewVec2(1, 0), End: physics.NewVec2(1, 1), NormalVec: physics.NewVec2(-1, 0)},
		&physics.Disk{OName: "d", Center: physics.NewVec2(0.5, 0.5), Radius: 0.2},
	)
}

func TestShapesResolvesWallAndDiskKinds(t *testing.T) {
	r := NewBilliardRenderer(testBilliard(), 10)
	shapes := r.Shapes()

	require.Len(t, shapes, 2)
	assert.Equal(t, "wall", shapes[0].Kind)
	assert.Equal(t, "disk", shapes[1].Kind)
	assert.Equal(t, 0.2, shapes[1].Radius)
}

func TestPushTrailPointCapsLength(t *testing.T) {
	r := NewBilliardRenderer(testBilliard(), 3)
	for i := 0; i < 5; i++ {
		r.PushTrailPoint(physics.NewVec2(float64(i), 0))
	}

	trail := r.Trail()
	require.Len(t, trail, 3)
	assert.Equal(t, 2.0, trail[0].Pos.X)
	assert.Equal(t, 4.0, trail[len(trail)-1].Pos.X)
}

func TestClearTrailEmptiesTrail(t *testing.T) {
	r := NewBilliardRenderer(testBilliard(), 10)
	r.PushTrailPoint(physics.NewVec2(1, 1))
	r.ClearTrail()
	assert.Empty(t, r.Trail())
}

func TestRenderRequiresCamera(t *testing.T) {
	r := NewBilliardRenderer(testBilliard(), 10)
	assert.Error(t, r.Render())

	r.SetCamera(NewCamera(physics.NewVec2(0, 0), 100, 800, 600))
	assert.NoError(t, r.Render())
}
