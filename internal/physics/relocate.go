package physics

// timePrecSign returns the sign the relocator tests distance against:
// -1 for standard obstacles (particle must end up just outside, i.e.
// distance >= 0), +1 for PeriodicWall (particle must end up just past
// the wall so the periodicity translation lands it correctly in the
// next tile) — spec §4.F.
func timePrecSign(o Obstacle) float64 {
	if _, ok := o.(*PeriodicWall); ok {
		return 1
	}
	return -1
}

// relocationTimePrec picks the precision constant for the relocation
// loop: the forward (coarser) constant applies to magnetic particles
// colliding with a PeriodicWall (the shallow-angle regime spec §4.F
// calls out), the standard constant otherwise.
func relocationTimePrec(p Particle, o Obstacle) float64 {
	_, magnetic := p.(*MagneticParticle)
	_, periodic := o.(*PeriodicWall)
	forward := magnetic && periodic
	return TimePrec[float64](forward, false)
}

const relocateMaxIter = 20

// Relocate adjusts tmin geometrically until the particle's new
// position is on the correct side of obstacle o, per spec §4.F:
//
//	sig = timeprec_sign(o)
//	i = 1
//	newpos = propagate_pos(pos, p, tmin)
//	while distance(newpos, o) * sig > 0:
//	    tmin += i * sig * timeprec(p, o)
//	    newpos = propagate_pos(pos, p, tmin)
//	    i *= 10
//	commit newpos, tmin
//
// It mutates p's position (and, for magnetic particles, velocity) to
// the relocated state and returns the corrected tmin.
func Relocate(p Particle, o Obstacle, tmin float64) float64 {
	sig := timePrecSign(o)
	prec := relocationTimePrec(p, o)

	newpos := PropagatePos(p, tmin)
	i := 1.0
	for iter := 0; o.Distance(newpos)*sig > 0 && iter < relocateMaxIter; iter++ {
		tmin += i * sig * prec
		newpos = PropagatePos(p, tmin)
		i *= 10
	}
	p.PropagateTo(newpos, tmin)
	return tmin
}

// RelocateRaySplit is the ray-splitting variant of relocation (spec
// §4.F "relocate_rayspl"): the direction of the correction flips
// depending on whether transmission occurred. If trans, the particle
// must end up inside the obstacle (negative distance); ineq = 2*trans-1.
// A position exactly on the boundary (distance 0) is nudged as well.
func RelocateRaySplit(p Particle, o Obstacle, tmin float64, trans bool) float64 {
	ineq := -1.0
	if trans {
		ineq = 1.0
	}
	prec := relocationTimePrec(p, o)

	newpos := PropagatePos(p, tmin)
	i := 1.0
	for iter := 0; ineq*o.Distance(newpos) >= 0 && iter < relocateMaxIter; iter++ {
		tmin += i * ineq * prec
		newpos = PropagatePos(p, tmin)
		i *= 10
	}
	p.PropagateTo(newpos, tmin)
	return tmin
}

// sign is a small helper used by the ray-splitting engine.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
