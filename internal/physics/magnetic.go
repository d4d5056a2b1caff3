package physics

import "math"

// Magnetic collision solving (spec §4.B "Magnetic x Disk/Wall"):
// intersect the particle's circle of radius R = |1/omega| centered at
// `center` with the obstacle's geometry, convert to a traversal angle
// via realAngle, then t = |angle|*R.
//
// Position on the particle's circle as a function of elapsed time t
// is C + R*(cos(psi0+omega*t), sin(psi0+omega*t)), where
// psi0 = atan2(pos-C). This falls directly out of the propagation
// formula in particle.go: substituting phi = omega*t + phi0 and psi = phi - pi/2
// turns the propagation formula's (sin phi, -cos phi) displacement
// into the ordinary polar form (cos psi, sin psi).

// realAngle returns the signed angular displacement delta from psi0 to
// psiTarget such that delta has the same sign as omega (the direction
// of travel) and |delta| is the smallest non-negative representative,
// i.e. the first time the particle's circular motion reaches
// psiTarget going forward in time.
func realAngle(psi0, psiTarget, omega float64) float64 {
	raw := math.Mod(psiTarget-psi0, 2*math.Pi)
	if raw < 0 {
		raw += 2 * math.Pi
	}
	// raw is now in [0, 2*pi): the forward angle traveled by a
	// positive-omega (counter-clockwise) particle.
	if omega > 0 {
		return raw
	}
	return raw - 2*math.Pi
}

// dsqrtEps guards against re-detecting the obstacle a magnetic
// particle just left: intersections closer than sqrt(eps) to the
// particle's current position are discarded (spec §4.B).
var dsqrtEps = DistanceCheckEps[float64]()

func magneticCircleTime(pt *MagneticParticle, obCenter Vec2, obRadius float64, accept func(Vec2) bool) float64 {
	c := pt.Center()
	r := pt.Radius()
	omega := pt.Omega()
	pos := pt.Pos()

	d := obCenter.Sub(c).Length()
	if d == 0 || d > r+obRadius+geomEps || d < math.Abs(r-obRadius)-geomEps {
		return math.Inf(1)
	}
	a := (r*r - obRadius*obRadius + d*d) / (2 * d)
	h2 := r*r - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	dirCO := obCenter.Sub(c).Scale(1 / d)
	mid := c.Add(dirCO.Scale(a))
	perp := dirCO.Perp()

	candidates := [2]Vec2{mid.Add(perp.Scale(h)), mid.Sub(perp.Scale(h))}
	psi0 := pos.Sub(c).Angle()

	best := math.Inf(1)
	for _, q := range candidates {
		if q.Sub(pos).Length() < dsqrtEps {
			continue
		}
		if accept != nil && !accept(q) {
			continue
		}
		psiQ := q.Sub(c).Angle()
		delta := realAngle(psi0, psiQ, omega)
		t := delta / omega
		if t > geomEps && t < best {
			best = t
		}
	}
	return best
}

func magneticLineTime(pt *MagneticParticle, lineStart, lineNormal Vec2, accept func(Vec2) bool) float64 {
	c := pt.Center()
	r := pt.Radius()
	omega := pt.Omega()
	pos := pt.Pos()

	n := lineNormal.Normalize()
	dist := c.Sub(lineStart).Dot(n)
	h2 := r*r - dist*dist
	if h2 < 0 {
		return math.Inf(1)
	}
	h := math.Sqrt(h2)
	foot := c.Sub(n.Scale(dist))
	along := n.Perp()

	candidates := [2]Vec2{foot.Add(along.Scale(h)), foot.Sub(along.Scale(h))}
	psi0 := pos.Sub(c).Angle()

	best := math.Inf(1)
	for _, q := range candidates {
		if q.Sub(pos).Length() < dsqrtEps {
			continue
		}
		if accept != nil && !accept(q) {
			continue
		}
		psiQ := q.Sub(c).Angle()
		delta := realAngle(psi0, psiQ, omega)
		t := delta / omega
		if t > geomEps && t < best {
			best = t
		}
	}
	return best
}
