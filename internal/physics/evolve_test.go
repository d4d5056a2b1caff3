package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvolveUnitSquareRecordsFourWallCollisions(t *testing.T) {
	bd := NewBilliard(unitSquare()...)
	p := NewStraightParticle(NewVec2(0.5, 0.5), NewVec2(1, 0))

	es, err := Evolve(p, bd, 4, TargetCollisions, EvolveOptions{})
	require.NoError(t, err)
	require.Len(t, es.Times, 4)

	for _, v := range es.Vel {
		assert.InDelta(t, 1.0, v.Length(), 1e-9)
	}
}

func TestEvolveDoesNotMutateOriginalParticle(t *testing.T) {
	bd := NewBilliard(unitSquare()...)
	p := NewStraightParticle(NewVec2(0.5, 0.5), NewVec2(1, 0))
	orig := p.Pos()

	_, err := Evolve(p, bd, 4, TargetCollisions, EvolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, orig, p.Pos())
}

func TestEvolveRejectsNonPositiveTarget(t *testing.T) {
	bd := NewBilliard(unitSquare()...)
	p := NewStraightParticle(NewVec2(0.5, 0.5), NewVec2(1, 0))

	_, err := Evolve(p, bd, 0, TargetCollisions, EvolveOptions{})
	assert.Error(t, err)
	var argErr *ArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestEvolveEscapesOpenDiskBilliard(t *testing.T) {
	d := &Disk{OName: "d", Center: NewVec2(0, 0), Radius: 0.5}
	bd := NewBilliard(d)
	p := NewStraightParticle(NewVec2(5, 5), NewVec2(1, 0))

	es, err := Evolve(p, bd, 10, TargetCollisions, EvolveOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, es.Times)
	assert.True(t, math.IsInf(es.Times[len(es.Times)-1], 1))
}

func TestEvolvePinnedMagneticParticleInPeriodicCell(t *testing.T) {
	// A unit periodic cell (walls at x=0,1 and y=0,1, each translating
	// by the opposing edge vector) with a Larmor radius small enough
	// that the orbit never reaches any wall from the cell's center.
	bd := NewBilliard(
		&PeriodicWall{OName: "right", Start: NewVec2(1, 0), End: NewVec2(1, 1), NormalVec: NewVec2(-1, 0)},
		&PeriodicWall{OName: "left", Start: NewVec2(0, 0), End: NewVec2(0, 1), NormalVec: NewVec2(1, 0)},
		&PeriodicWall{OName: "top", Start: NewVec2(0, 1), End: NewVec2(1, 1), NormalVec: NewVec2(0, -1)},
		&PeriodicWall{OName: "bottom", Start: NewVec2(0, 0), End: NewVec2(1, 0), NormalVec: NewVec2(0, 1)},
	)
	// omega=10 -> Larmor radius 0.1; starting at the cell center, the
	// nearest wall is 0.5 away, comfortably outside the orbit.
	p := NewMagneticParticle(NewVec2(0.5, 0.5), NewVec2(1, 0), 10.0)

	es, err := Evolve(p, bd, 1, TargetTime, EvolveOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, es.Times)
	assert.True(t, math.IsInf(es.Times[len(es.Times)-1], 1))
}

func TestEvolveTargetTimeAccumulatesAcrossCollisions(t *testing.T) {
	bd := NewBilliard(unitSquare()...)
	p := NewStraightParticle(NewVec2(0.5, 0.5), NewVec2(1, 0))

	es, err := Evolve(p, bd, 1.8, TargetTime, EvolveOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, es.Times)
	// Each recorded time is the interval since the previous recorded
	// collision; the run stops once their sum reaches the target.
	var total float64
	for _, dt := range es.Times {
		total += dt
	}
	assert.GreaterOrEqual(t, total, 1.8)
}

func TestEvolveWithRaySplittingFlipsObstacleAcrossTransmissions(t *testing.T) {
	a := &Antidot{OName: "a", Center: NewVec2(2, 0), Radius: 0.5, Flag: true}
	bd := NewBilliard(a)
	rs := &RaySplitter{
		OIdx:         []int{0},
		Affect:       []int{0},
		Transmission: func(phi float64, pflag bool, omega float64) float64 { return 1 },
		Refraction:   func(phi float64, pflag bool, omega float64) float64 { return phi },
	}
	p := NewStraightParticle(NewVec2(0, 0), NewVec2(1, 0))

	_, err := Evolve(p, bd, 1, TargetCollisions, EvolveOptions{Splitters: []*RaySplitter{rs}, RNG: NewSource(1)})
	require.NoError(t, err)
	assert.False(t, a.PFlag(), "always-transmit splitter must flip the antidot's pflag exactly once")
}

func TestEvolveDiagnosticsReceivesEscapeWarning(t *testing.T) {
	d := &Disk{OName: "d", Center: NewVec2(0, 0), Radius: 0.5}
	bd := NewBilliard(d)
	p := NewStraightParticle(NewVec2(5, 5), NewVec2(1, 0))

	var got []Warning
	sink := diagFunc(func(w Warning) { got = append(got, w) })

	_, err := Evolve(p, bd, 10, TargetCollisions, EvolveOptions{Diagnostics: sink})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, WarningEscape, got[0].Kind)
}

func TestEvolveRejectsOverlappingSplitters(t *testing.T) {
	bd := NewBilliard(&Antidot{OName: "a"})
	rs1 := &RaySplitter{OIdx: []int{0}, Affect: []int{0}}
	rs2 := &RaySplitter{OIdx: []int{0}, Affect: []int{0}}
	p := NewStraightParticle(NewVec2(0, 0), NewVec2(1, 0))

	_, err := Evolve(p, bd, 1, TargetCollisions, EvolveOptions{Splitters: []*RaySplitter{rs1, rs2}})
	assert.Error(t, err)
}

type diagFunc func(Warning)

func (f diagFunc) Warn(w Warning) { f(w) }
