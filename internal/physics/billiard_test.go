package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCollisionPicksMinimumAcrossObstacles(t *testing.T) {
	near := &Disk{OName: "near", Center: NewVec2(2, 0), Radius: 0.5}
	far := &Disk{OName: "far", Center: NewVec2(5, 0), Radius: 0.5}
	bd := NewBilliard(far, near) // deliberately out of geometric order

	p := NewStraightParticle(NewVec2(0, 0), NewVec2(1, 0))
	tmin, idx := bd.NextCollision(p)

	assert.InDelta(t, 1.5, tmin, 1e-12)
	assert.Equal(t, "near", bd.At(idx).Name())
}

func TestNextCollisionTiesGoToLowestIndex(t *testing.T) {
	a := &InfiniteWall{OName: "a", Start: NewVec2(1, 0), End: NewVec2(1, 1), NormalVec: NewVec2(-1, 0)}
	b := &InfiniteWall{OName: "b", Start: NewVec2(1, 0), End: NewVec2(1, 1), NormalVec: NewVec2(-1, 0)}
	bd := NewBilliard(a, b)

	p := NewStraightParticle(NewVec2(0, 0), NewVec2(1, 0))
	_, idx := bd.NextCollision(p)
	assert.Equal(t, 0, idx)
}

func TestNextCollisionInfiniteWhenNothingReachable(t *testing.T) {
	d := &Disk{OName: "d", Center: NewVec2(0, 5), Radius: 0.5}
	bd := NewBilliard(d)
	p := NewStraightParticle(NewVec2(0, 0), NewVec2(1, 0))

	tmin, _ := bd.NextCollision(p)
	assert.True(t, math.IsInf(tmin, 1))
}

func TestHasPeriodicWall(t *testing.T) {
	plain := NewBilliard(&Disk{OName: "d", Center: NewVec2(0, 0), Radius: 1})
	assert.False(t, plain.HasPeriodicWall())

	withPeriodic := NewBilliard(
		&Disk{OName: "d", Center: NewVec2(0, 0), Radius: 1},
		&PeriodicWall{OName: "p", Start: NewVec2(1, 0), End: NewVec2(1, 1), NormalVec: NewVec2(1, 0)},
	)
	assert.True(t, withPeriodic.HasPeriodicWall())
}

func TestResetFlagsSetsAllPFlaggedTrue(t *testing.T) {
	a := &Antidot{OName: "a", Center: NewVec2(0, 0), Radius: 1, Flag: false}
	s := &SplitterWall{OName: "s", Start: NewVec2(0, 0), End: NewVec2(0, 1), NormalVec: NewVec2(1, 0), Flag: false}
	bd := NewBilliard(a, s)

	bd.ResetFlags()
	assert.True(t, a.PFlag())
	assert.True(t, s.PFlag())
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	a := &Antidot{OName: "a", Center: NewVec2(0, 0), Radius: 1, Flag: true}
	bd := NewBilliard(a)

	cp := bd.Clone()
	cp.At(0).(*Antidot).SetPFlag(false)

	assert.True(t, a.PFlag(), "mutating the clone must not affect the original obstacle")
	assert.False(t, cp.At(0).(PFlagged).PFlag())
}

func TestCloneCoversEveryObstacleKind(t *testing.T) {
	bd := NewBilliard(
		&InfiniteWall{OName: "iw"},
		&FiniteWall{OName: "fw"},
		&PeriodicWall{OName: "pw", NormalVec: NewVec2(1, 0)},
		&RandomWall{OName: "rw"},
		&Disk{OName: "d"},
		&RandomDisk{OName: "rd"},
		&Semicircle{OName: "sc", FaceDir: NewVec2(1, 0)},
		&Antidot{OName: "ad"},
		&SplitterWall{OName: "sw"},
	)
	cp := bd.Clone()
	for i := 0; i < bd.Len(); i++ {
		assert.Equal(t, bd.At(i).Name(), cp.At(i).Name())
		assert.NotSame(t, bd.At(i), cp.At(i))
	}
}
