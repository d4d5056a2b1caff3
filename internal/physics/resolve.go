package physics

import "math"

// Specular reflects p's velocity across the normal of o at p's
// current position: vel -= 2*(vel.n)*n (spec §4.G).
func Specular(p Particle, o Obstacle) {
	n := o.NormalAt(p.Pos())
	v := p.Vel()
	d := v.Dot(n)
	p.SetVel(v.Sub(n.Scale(2 * d)))
}

// RandomSpecular samples a new direction uniformly in
// (atan2(n) - 0.95*pi/2, atan2(n) + 0.95*pi/2) for RandomDisk/RandomWall
// obstacles (spec §4.G). The 0.95 factor keeps outputs away from
// grazing angles numerically indistinguishable from +-pi/2.
func RandomSpecular(p Particle, o Obstacle, src *Source) {
	n := o.NormalAt(p.Pos())
	base := n.Angle()
	band := 0.95 * math.Pi / 2
	theta := src.UniformRange(base-band, base+band)
	p.SetVel(Vec2{X: math.Cos(theta), Y: math.Sin(theta)})
}

// Periodicity applies a PeriodicWall's translation: pos += w.normal,
// current_cell -= w.normal (and, for magnetic particles, center
// shifts by the same vector) — spec §4.G.
func Periodicity(p Particle, w *PeriodicWall) {
	p.SetPos(p.Pos().Add(w.NormalVec))
	p.SetCurrentCell(p.CurrentCell().Sub(w.NormalVec))
	if mp, ok := p.(*MagneticParticle); ok {
		mp.SetCenter(mp.Center().Add(w.NormalVec))
	}
}
