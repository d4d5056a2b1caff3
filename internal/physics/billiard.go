package physics

import "math"

// Billiard is an ordered, duplicate-free collection of obstacles.
// Index identity is stable for the lifetime of a simulation run
// (ray-splitter indices reference it) — spec §3 "Billiard".
type Billiard struct {
	obstacles []Obstacle
}

// NewBilliard builds a Billiard from an ordered obstacle list.
func NewBilliard(obstacles ...Obstacle) *Billiard {
	cp := make([]Obstacle, len(obstacles))
	copy(cp, obstacles)
	return &Billiard{obstacles: cp}
}

// Len returns the number of obstacles.
func (b *Billiard) Len() int { return len(b.obstacles) }

// At returns the obstacle at index i (0-based).
func (b *Billiard) At(i int) Obstacle { return b.obstacles[i] }

// Obstacles returns the underlying obstacle slice. Callers must not
// mutate its length; pflag mutation through the returned elements is
// the sanctioned way ray-splitting changes billiard state.
func (b *Billiard) Obstacles() []Obstacle { return b.obstacles }

// NextCollision scans every obstacle's CollisionTime and returns the
// minimum time and its (0-based) index. Ties go to the lowest index.
// Pure with respect to the billiard: no mutation (spec §4.C).
func (b *Billiard) NextCollision(p Particle) (tmin float64, idx int) {
	tmin = math.Inf(1)
	idx = -1
	for i, o := range b.obstacles {
		t := o.CollisionTime(p)
		if t < tmin {
			tmin = t
			idx = i
		}
	}
	return tmin, idx
}

// HasPeriodicWall reports whether the billiard carries any periodic
// boundary. A billiard built entirely of periodic walls has no true
// spatial infinity to escape to: an infinite next_collision time for a
// magnetic particle there means its Larmor orbit fits inside one cell
// without ever crossing a wall, not that it flew off to infinity (spec
// §9 Open Question, see EvolveInPlace).
func (b *Billiard) HasPeriodicWall() bool {
	for _, o := range b.obstacles {
		if _, ok := o.(*PeriodicWall); ok {
			return true
		}
	}
	return false
}

// ResetFlags sets every ray-splittable obstacle's pflag to true (spec
// §4.C).
func (b *Billiard) ResetFlags() {
	for _, o := range b.obstacles {
		if pf, ok := o.(PFlagged); ok {
			pf.SetPFlag(true)
		}
	}
}

// Clone deep-copies the billiard, including obstacle pflag state, so
// independent concurrent runs can each own their own mutable copy
// (spec §5).
func (b *Billiard) Clone() *Billiard {
	cp := make([]Obstacle, len(b.obstacles))
	for i, o := range b.obstacles {
		cp[i] = cloneObstacle(o)
	}
	return &Billiard{obstacles: cp}
}

func cloneObstacle(o Obstacle) Obstacle {
	switch v := o.(type) {
	case *InfiniteWall:
		c := *v
		return &c
	case *FiniteWall:
		c := *v
		return &c
	case *PeriodicWall:
		c := *v
		return &c
	case *RandomWall:
		c := *v
		return &c
	case *Disk:
		c := *v
		return &c
	case *RandomDisk:
		c := *v
		return &c
	case *Semicircle:
		c := *v
		return &c
	case *Antidot:
		c := *v
		return &c
	case *SplitterWall:
		c := *v
		return &c
	default:
		return o
	}
}
