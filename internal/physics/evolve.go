package physics

import (
	"math"

	"github.com/google/uuid"
)

// TargetKind disambiguates the bounce loop's termination predicate
// (spec §4.I "increment disambiguates the termination predicate"):
// an integer target counts collisions, a floating target counts time.
type TargetKind int

const (
	// TargetCollisions terminates after N recorded collisions.
	TargetCollisions TargetKind = iota
	// TargetTime terminates once accumulated time reaches the target.
	TargetTime
)

// EventStream accumulates the evolution driver's time-ordered output
// (spec §5 "only the result-recording arrays grow, amortized").
type EventStream struct {
	Times  []float64
	Pos    []Vec2
	Vel    []Vec2
	Omegas []float64 // empty unless the particle is magnetic

	// RunID is a fresh identifier for this run; the kernel does not
	// attach it to diagnostics itself.
	RunID uuid.UUID
}

func newEventStream(magnetic bool, hint int) *EventStream {
	es := &EventStream{
		Times: make([]float64, 0, hint),
		Pos:   make([]Vec2, 0, hint),
		Vel:   make([]Vec2, 0, hint),
		RunID: uuid.New(),
	}
	if magnetic {
		es.Omegas = make([]float64, 0, hint)
	}
	return es
}

func (es *EventStream) record(t float64, pos, vel Vec2, omega float64, magnetic bool) {
	es.Times = append(es.Times, t)
	es.Pos = append(es.Pos, pos)
	es.Vel = append(es.Vel, vel)
	if magnetic {
		es.Omegas = append(es.Omegas, omega)
	}
}

// Diagnostics receives non-fatal warnings when enabled (spec §7
// "warning flag (default off) toggles a diagnostic emission"). nil is
// a valid value and means diagnostics are disabled.
type Diagnostics interface {
	Warn(w Warning)
}

// EvolveOptions configures a single Evolve/Bounce call.
type EvolveOptions struct {
	Splitters   []*RaySplitter
	RNG         *Source
	Diagnostics Diagnostics
}

// increment returns how much a single recorded collision advances the
// termination counter for the given target kind.
func increment(kind TargetKind, tAccumulated float64) float64 {
	if kind == TargetTime {
		return tAccumulated
	}
	return 1
}

// Evolve deep-copies p and runs the bounce loop until count reaches
// target (spec §6 "evolve deep-copies p; evolve! mutates it"). target
// is a time if kind == TargetTime, a collision count if
// kind == TargetCollisions.
func Evolve(p Particle, bd *Billiard, target float64, kind TargetKind, opts EvolveOptions) (*EventStream, error) {
	return EvolveInPlace(p.Clone(), bd, target, kind, opts)
}

// EvolveInPlace is Evolve's mutating twin.
func EvolveInPlace(p Particle, bd *Billiard, target float64, kind TargetKind, opts EvolveOptions) (*EventStream, error) {
	if target <= 0 {
		return nil, newArgumentError("evolve: target must be > 0, got %g", target)
	}
	if len(opts.Splitters) > 0 {
		if err := ValidateSplitters(opts.Splitters, bd); err != nil {
			return nil, err
		}
	}
	if opts.RNG == nil {
		opts.RNG = NewSource(1)
	}

	_, magnetic := p.(*MagneticParticle)
	raysidx := buildRaysIndex(bd.Len(), opts.Splitters)
	es := newEventStream(magnetic, estimateHint(kind, target))

	var count float64
	var tAccumulated float64
	for count < target {
		i, tmin, escaped := bounceOnce(p, bd, raysidx, opts.Splitters, opts.RNG)
		if escaped {
			// A magnetic particle inside a periodic billiard has nowhere
			// to escape to: an infinite collision time there means its
			// Larmor circle never leaves the cell it started in, which is
			// pinned, not escaped (spec §9 Open Question; see
			// HasPeriodicWall's doc comment).
			if magnetic && bd.HasPeriodicWall() {
				// No finite collision time at all means the orbit never
				// reaches any wall from here; pinning is only confirmed
				// once a full Larmor period has elapsed without one
				// (spec §4.I/§9), so charge that period onto the reported
				// accumulated time rather than whatever partial amount
				// happened to be on the clock when this was detected.
				period := 2 * math.Pi / math.Abs(p.(*MagneticParticle).Omega())
				tAccumulated += period
				if opts.Diagnostics != nil {
					opts.Diagnostics.Warn(Warning{Kind: WarningPinned, ObstacleIndex: -1, AccumulatedSec: tAccumulated})
				}
				es.record(math.Inf(1), p.Pos().Add(p.CurrentCell()), p.Vel(), particleOmega(p), magnetic)
				break
			}
			if opts.Diagnostics != nil {
				opts.Diagnostics.Warn(Warning{Kind: WarningEscape, ObstacleIndex: -1, AccumulatedSec: tAccumulated})
			}
			es.record(math.Inf(1), p.Pos().Add(p.CurrentCell()), p.Vel(), particleOmega(p), magnetic)
			break
		}

		if magnetic {
			p.(*MagneticParticle).RefreshCenter()
		}
		tAccumulated += tmin

		if _, isPeriodic := bd.At(i).(*PeriodicWall); isPeriodic {
			if magnetic {
				mp := p.(*MagneticParticle)
				period := 2 * math.Pi / math.Abs(mp.Omega())
				if tAccumulated >= period {
					if opts.Diagnostics != nil {
						opts.Diagnostics.Warn(Warning{Kind: WarningPinned, ObstacleIndex: i, AccumulatedSec: tAccumulated})
					}
					es.record(math.Inf(1), p.Pos().Add(p.CurrentCell()), p.Vel(), particleOmega(p), magnetic)
					break
				}
			}
			continue
		}

		es.record(tAccumulated, p.Pos().Add(p.CurrentCell()), p.Vel(), particleOmega(p), magnetic)
		count += increment(kind, tAccumulated)
		tAccumulated = 0
	}

	return es, nil
}

// Bounce runs a single collision step on a deep copy of p and returns
// the collided obstacle index, elapsed time, and the particle's
// resulting position/velocity.
func Bounce(p Particle, bd *Billiard, splitters []*RaySplitter, rng *Source) (idx int, t float64, pos, vel Vec2) {
	clone := p.Clone()
	raysidx := buildRaysIndex(bd.Len(), splitters)
	if rng == nil {
		rng = NewSource(1)
	}
	i, tmin, _ := bounceOnce(clone, bd, raysidx, splitters, rng)
	return i, tmin, clone.Pos(), clone.Vel()
}

// BounceInPlace is Bounce's mutating twin, matching spec §6's
// bounce(p, bd, raysidx, raysplitters) signature (raysidx is rebuilt
// internally from splitters rather than threaded by the caller, since
// Go callers always have the splitter slice in hand).
func BounceInPlace(p Particle, bd *Billiard, splitters []*RaySplitter, rng *Source) (idx int, t float64, escaped bool) {
	raysidx := buildRaysIndex(bd.Len(), splitters)
	if rng == nil {
		rng = NewSource(1)
	}
	return bounceOnce(p, bd, raysidx, splitters, rng)
}

// bounceOnce is the shared core of the two modes (spec §4.I "Two
// modes share a single loop (bounce! per step)"). NOTE ON A SPEC
// AMBIGUITY (spec §9 Open Questions): the Julia source's ray-splitting
// branch references a free variable named `rays` rather than the
// `raysplitters` tuple actually in scope; this implementation always
// uses the `splitters` parameter explicitly, never a stray closure
// variable.
func bounceOnce(p Particle, bd *Billiard, raysidx raysIndex, splitters []*RaySplitter, rng *Source) (idx int, t float64, escaped bool) {
	tmin, i := bd.NextCollision(p)
	if math.IsInf(tmin, 1) {
		return i, tmin, true
	}
	o := bd.At(i)

	if si := raysidx[i]; si != 0 {
		rs := splitters[si-1]
		// Propagate to the (uncorrected) collision point first so the
		// incidence angle and transmission draw see the right pos/vel
		// (spec §4.H). RelocateRaySplit then runs the geometric
		// escalation as a small correction *relative to this already-
		// propagated state* (its local t starts at 0), and the caller
		// adds that correction back onto tmin (spec §4.F: "tmin += dt_corr").
		p.Propagate(tmin)
		phi := incidenceAngle(p, o)
		trans := SampleTransmission(rs, phi, pflagOf(o), particleOmega(p), rng)
		dtCorr := RelocateRaySplit(p, o, 0, trans)
		ResolveRaySplit(p, bd, o, rs, phi, trans)
		tmin += dtCorr
	} else {
		tmin = Relocate(p, o, tmin)
		resolve(p, o, rng)
	}

	return i, tmin, false
}

// resolve dispatches to the non-splitting collision resolver
// appropriate to the obstacle kind (spec §4.G).
func resolve(p Particle, o Obstacle, rng *Source) {
	switch v := o.(type) {
	case *PeriodicWall:
		Periodicity(p, v)
	case *RandomWall, *RandomDisk:
		RandomSpecular(p, o, rng)
	default:
		Specular(p, o)
	}
}

// estimateHint sizes the initial event-array capacity to avoid
// repeated reallocation on the common paths.
func estimateHint(kind TargetKind, target float64) int {
	if kind == TargetCollisions {
		return int(target) + 1
	}
	return 64
}
