package physics

import "math"

// PropagatePos computes the would-be position of p after time dt
// without mutating p (spec §4.D: "functional helpers that compute the
// *would-be* position ... without mutating the particle").
func PropagatePos(p Particle, dt float64) Vec2 {
	switch pt := p.(type) {
	case *StraightParticle:
		return pt.position.Add(pt.velocity.Scale(dt))
	case *MagneticParticle:
		phi0 := pt.velocity.Angle()
		phi := pt.omega*dt + phi0
		dx := (math.Sin(phi) - math.Sin(phi0)) / pt.omega
		dy := (-math.Cos(phi) + math.Cos(phi0)) / pt.omega
		return pt.position.Add(Vec2{X: dx, Y: dy})
	default:
		panic("physics: unknown particle kind in PropagatePos")
	}
}
