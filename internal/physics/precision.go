package physics

import "math"

// Float is the set of floating-point widths the collision kernel's
// numeric-precision helpers are generic over (spec: "expose the
// simulation generically over float width").
type Float interface {
	~float32 | ~float64
}

const (
	epsilon32 = 1.1920929e-7
	epsilon64 = 2.220446049250313e-16
)

// Epsilon returns the machine epsilon for T.
func Epsilon[T Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(epsilon32)
	default:
		return T(epsilon64)
	}
}

// TimePrec returns the relocation time-precision constant for T.
//
// Standard regime: eps(T)^(4/5). Forward regime (forward set: the
// shallow-angle magnetic + periodic wall case): eps(T)^(3/4). For an
// extended-precision float
// the spec calls for a fixed 1e-12 rather than a derived exponent;
// Go has no built-in extended float type, so callers opt in with
// fixedExtended.
func TimePrec[T Float](forward bool, fixedExtended bool) T {
	if fixedExtended {
		return T(1e-12)
	}
	e := float64(Epsilon[T]())
	if forward {
		return T(math.Pow(e, 3.0/4.0))
	}
	return T(math.Pow(e, 4.0/5.0))
}

// DistanceCheckEps is the minimum distance (in position space)
// a magnetic collision solver must clear to avoid re-detecting the
// obstacle the particle just left. Spec: "skip intersections closer
// than sqrt(eps)".
func DistanceCheckEps[T Float]() T {
	return T(math.Sqrt(float64(Epsilon[T]())))
}
