package physics

import "math"

// RaySplitter governs probabilistic transmission/refraction across a
// set of obstacles (spec §3 "RaySplitter").
//
//   - OIdx: indices of obstacles this splitter governs.
//   - Affect: indices whose pflag must be flipped atomically on
//     transmission (superset of OIdx).
//   - Transmission/Refraction/NewOmega: the splitter's physics.
//
// Invariant: every element of OIdx appears in Affect; across all
// splitters on one billiard, OIdx sets are disjoint.
type RaySplitter struct {
	OIdx   []int
	Affect []int

	// Transmission returns a probability in [0,1] given the incidence
	// angle phi, the obstacle's current pflag, and the particle's omega
	// (0 for straight particles).
	Transmission func(phi float64, pflag bool, omega float64) float64
	// Refraction returns the angle (relative to the departure-side
	// normal) the transmitted ray takes.
	Refraction func(phi float64, pflag bool, omega float64) float64
	// NewOmega returns the post-transmission cyclotron frequency.
	// Defaults to identity (omega unchanged) when nil.
	NewOmega func(omega float64, pflag bool) float64
}

func (rs *RaySplitter) newOmega(omega float64, pflag bool) float64 {
	if rs.NewOmega == nil {
		return omega
	}
	return rs.NewOmega(omega, pflag)
}

// raysIndex is the derived obstacle-index -> splitter-index lookup
// table (1-based splitter index; 0 = none), built once per evolution
// call (spec §3 "Lifecycle").
type raysIndex []int

func buildRaysIndex(n int, splitters []*RaySplitter) raysIndex {
	idx := make(raysIndex, n)
	for si, rs := range splitters {
		for _, oi := range rs.OIdx {
			idx[oi] = si + 1
		}
	}
	return idx
}

// incidenceAngle computes phi (spec §4.H):
//
//	n = normal_at(pos); phi = acos(clamp(vel.(-n), -1, 1))
//	signed by sign(cross2D(vel, n)); domain [-pi/2, pi/2].
func incidenceAngle(p Particle, o Obstacle) float64 {
	n := o.NormalAt(p.Pos())
	v := p.Vel()
	cosphi := v.Dot(n.Scale(-1))
	if cosphi > 1 {
		cosphi = 1
	}
	if cosphi < -1 {
		cosphi = -1
	}
	phi := math.Acos(cosphi)
	if sign(v.Cross2D(n)) < 0 {
		phi = -phi
	}
	return phi
}

// pflagOf returns the pflag of a PFlagged obstacle, or true if the
// obstacle does not carry one (callers should have already validated
// ray-splitter obstacles are all PFlagged).
func pflagOf(o Obstacle) bool {
	if pf, ok := o.(PFlagged); ok {
		return pf.PFlag()
	}
	return true
}

// particleOmega returns 0 for straight particles, omega for magnetic.
func particleOmega(p Particle) float64 {
	if mp, ok := p.(*MagneticParticle); ok {
		return mp.Omega()
	}
	return 0
}

// ResolveRaySplit implements the post-relocation step of spec §4.H:
// on transmission, flip every obstacle in splitter.Affect, recompute
// the (already relocated) normal on the new side, set the new
// absolute direction, and update omega for magnetic particles. On
// non-transmission, fall back to ordinary specular reflection.
func ResolveRaySplit(p Particle, bd *Billiard, o Obstacle, rs *RaySplitter, phi float64, trans bool) {
	if !trans {
		Specular(p, o)
		return
	}

	oldPflag := pflagOf(o)
	omega := particleOmega(p)
	theta := rs.Refraction(phi, oldPflag, omega)

	flipAffected(bd, rs)

	n := o.NormalAt(p.Pos())
	Theta := theta + n.Angle()
	p.SetVel(Vec2{X: math.Cos(Theta), Y: math.Sin(Theta)})

	if mp, ok := p.(*MagneticParticle); ok {
		newOmega := rs.newOmega(omega, !oldPflag)
		mp.SetOmega(newOmega)
	}
}

// flipAffected flips the pflag of every obstacle listed in
// splitter.Affect, atomically (before the velocity update, so the
// normal ResolveRaySplit reads afterward reflects the new side).
func flipAffected(bd *Billiard, rs *RaySplitter) {
	for _, idx := range rs.Affect {
		if pf, ok := bd.At(idx).(PFlagged); ok {
			pf.SetPFlag(!pf.PFlag())
		}
	}
}

// SampleTransmission draws the transmission decision: trans =
// transmission(phi, pflag, omega) > uniform_rand().
func SampleTransmission(rs *RaySplitter, phi float64, pflag bool, omega float64, src *Source) bool {
	prob := rs.Transmission(phi, pflag, omega)
	return prob > src.Float64()
}

// AcceptableRaySplitter validates the structural invariants of a
// RaySplitter against a billiard (spec §3 invariants, §7
// InvalidArgument / UnsupportedObstacle):
//
//   - every element of OIdx is in range and appears in Affect,
//   - every referenced obstacle is PFlagged,
//   - (checked by the caller across all splitters) OIdx sets disjoint.
func AcceptableRaySplitter(rs *RaySplitter, bd *Billiard) error {
	affectSet := make(map[int]bool, len(rs.Affect))
	for _, a := range rs.Affect {
		if a < 0 || a >= bd.Len() {
			return newArgumentError("raysplitter: affect index %d out of range [0,%d)", a, bd.Len())
		}
		affectSet[a] = true
	}
	for _, o := range rs.OIdx {
		if o < 0 || o >= bd.Len() {
			return newArgumentError("raysplitter: oidx index %d out of range [0,%d)", o, bd.Len())
		}
		if !affectSet[o] {
			return newArgumentError("raysplitter: oidx %d not present in affect", o)
		}
		if _, ok := bd.At(o).(PFlagged); !ok {
			return newUnsupportedObstacleError("raysplitter: obstacle %d (%s) has no pflag", o, bd.At(o).Name())
		}
	}
	return nil
}

// ValidateSplitters checks AcceptableRaySplitter for every splitter
// plus the cross-splitter disjointness invariant (spec §3).
func ValidateSplitters(splitters []*RaySplitter, bd *Billiard) error {
	seen := make(map[int]int) // obstacle idx -> splitter idx
	for si, rs := range splitters {
		if err := AcceptableRaySplitter(rs, bd); err != nil {
			return err
		}
		for _, o := range rs.OIdx {
			if owner, ok := seen[o]; ok {
				return newArgumentError("raysplitter: obstacle %d claimed by splitters %d and %d", o, owner, si)
			}
			seen[o] = si
		}
	}
	return nil
}

const sweepPhiStep = 0.01
const sweepOmegaStep = 0.1

// IsPhysical validates a RaySplitter's transmission/refraction pair
// against the consistency checks of spec §6 "RaySplitter validation".
// When onlyMandatory is false, the even/odd and reversal checks are
// also run.
func IsPhysical(rs *RaySplitter, onlyMandatory bool) bool {
	for phi := -1.5; phi <= 1.5; phi += sweepPhiStep {
		for omega := -1.0; omega <= 1.0; omega += sweepOmegaStep {
			for _, pflag := range []bool{true, false} {
				t := rs.Transmission(phi, pflag, omega)
				theta, ok := tryRefraction(rs, phi, pflag, omega)
				if ok && theta >= math.Pi/2 && t != 0 {
					return false
				}
			}
		}
	}

	if onlyMandatory {
		return true
	}

	for phi := -1.5; phi <= 1.5; phi += sweepPhiStep {
		tPos := rs.Transmission(phi, true, 0)
		tNeg := rs.Transmission(-phi, true, 0)
		if math.Abs(tPos-tNeg) > 1e-6 {
			return false
		}
		thetaPos, okPos := tryRefraction(rs, phi, true, 0)
		thetaNeg, okNeg := tryRefraction(rs, -phi, true, 0)
		if okPos && okNeg && math.Abs(thetaPos+thetaNeg) > 1e-6 {
			return false
		}
	}

	for phi := -1.5; phi <= 1.5; phi += sweepPhiStep {
		for omega := -1.0; omega <= 1.0; omega += sweepOmegaStep {
			for _, pflag := range []bool{true, false} {
				theta, ok := tryRefraction(rs, phi, pflag, omega)
				if !ok {
					continue
				}
				back, ok2 := tryRefraction(rs, theta, !pflag, omega)
				if ok2 && math.Abs(back-phi) > 1e-6 {
					return false
				}
				no1 := rs.newOmega(omega, pflag)
				no2 := rs.newOmega(no1, !pflag)
				if math.Abs(no2-omega) > 1e-6 {
					return false
				}
			}
		}
	}

	return true
}

// tryRefraction evaluates Refraction, tolerating panics/NaN the way
// spec §6 requires ("evaluation of refraction may fail ... must be
// silently tolerated iff the corresponding T evaluates to 0").
func tryRefraction(rs *RaySplitter, phi float64, pflag bool, omega float64) (theta float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	theta = rs.Refraction(phi, pflag, omega)
	if math.IsNaN(theta) {
		return 0, false
	}
	return theta, true
}
