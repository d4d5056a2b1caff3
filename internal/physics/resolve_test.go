package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecularReflectsAcrossNormal(t *testing.T) {
	w := &FiniteWall{OName: "w", Start: NewVec2(1, 0), End: NewVec2(1, 1), NormalVec: NewVec2(-1, 0)}
	p := NewStraightParticle(NewVec2(1, 0.5), NewVec2(1, 0))

	Specular(p, w)
	assert.InDelta(t, -1.0, p.Vel().X, 1e-12)
	assert.InDelta(t, 0.0, p.Vel().Y, 1e-12)
}

func TestSpecularPreservesSpeed(t *testing.T) {
	d := &Disk{OName: "d", Center: NewVec2(0, 0), Radius: 1}
	p := NewStraightParticle(NewVec2(1, 0), NewVec2(-0.6, 0.8))

	before := p.Vel().Length()
	Specular(p, d)
	assert.InDelta(t, before, p.Vel().Length(), 1e-12)
}

func TestRandomSpecularStaysWithinBand(t *testing.T) {
	w := &RandomWall{OName: "rw", Start: NewVec2(1, 0), End: NewVec2(1, 1), NormalVec: NewVec2(-1, 0)}
	p := NewStraightParticle(NewVec2(1, 0.5), NewVec2(1, 0))
	rng := NewSource(7)

	base := w.NormalVec.Angle()
	band := 0.95 * math.Pi / 2
	for i := 0; i < 50; i++ {
		RandomSpecular(p, w, rng)
		// base is pi, so compare the angular offset wrapped into
		// [-pi, pi] rather than the raw atan2 value, which wraps to -pi.
		offset := math.Remainder(p.Vel().Angle()-base, 2*math.Pi)
		assert.InDelta(t, 0, offset, band+1e-9)
		assert.InDelta(t, 1.0, p.Vel().Length(), 1e-12)
	}
}

func TestPeriodicityShiftsPosAndCurrentCell(t *testing.T) {
	w := &PeriodicWall{OName: "p", Start: NewVec2(1, 0), End: NewVec2(1, 1), NormalVec: NewVec2(1, 0)}
	p := NewStraightParticle(NewVec2(1, 0.5), NewVec2(1, 0))

	Periodicity(p, w)
	assert.InDelta(t, 2.0, p.Pos().X, 1e-12)
	assert.InDelta(t, -1.0, p.CurrentCell().X, 1e-12)
}

func TestPeriodicityShiftsMagneticCenter(t *testing.T) {
	w := &PeriodicWall{OName: "p", Start: NewVec2(1, 0), End: NewVec2(1, 1), NormalVec: NewVec2(1, 0)}
	p := NewMagneticParticle(NewVec2(1, 0.5), NewVec2(0, 1), 1.0)
	before := p.Center()

	Periodicity(p, w)
	assert.InDelta(t, before.X+1, p.Center().X, 1e-12)
	assert.InDelta(t, before.Y, p.Center().Y, 1e-12)
}
