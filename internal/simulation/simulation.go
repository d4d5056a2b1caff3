package simulation

import (
	"math"

	"go.uber.org/zap"

	"relativity_simulation_2d/internal/config"
	"relativity_simulation_2d/internal/logging"
	"relativity_simulation_2d/internal/physics"
)

// Simulation drives a single particle through a billiard one collision
// at a time for interactive display (replaces the teacher's N-body
// Simulation, internal/simulation/simulation.go, whose grid/FFT fields
// described a field solver this domain has no use for: the collision
// kernel has no continuous field to step, only discrete bounce events).
type Simulation struct {
	Config    *config.Config
	Billiard  *physics.Billiard
	particle  physics.Particle
	splitters []*physics.RaySplitter
	rng       *physics.Source
	log       *zap.Logger

	CollisionCount int
	AccumulatedSec float64
	Escaped        bool
	Pinned         bool

	lastIdx int
	lastT   float64
}

// NewSimulation creates a simulation for the given billiard and initial
// particle, seeded from cfg.RandomSeed. splitters is ignored unless
// cfg.RaySplitting is set.
func NewSimulation(cfg *config.Config, bd *physics.Billiard, initial physics.Particle, splitters []*physics.RaySplitter, log *zap.Logger) *Simulation {
	return &Simulation{
		Config:    cfg,
		Billiard:  bd,
		particle:  initial.Clone(),
		splitters: splitters,
		rng:       physics.NewSource(cfg.RandomSeed),
		log:       log,
		lastIdx:   -1,
	}
}

// Warn implements physics.Diagnostics, logging non-fatal evolution
// warnings through the teacher's structured logger instead of printing.
// Nothing is logged unless Config.Warnings is set.
func (s *Simulation) Warn(w physics.Warning) {
	if s.log == nil || !s.Config.Warnings {
		return
	}
	(&logging.DiagnosticsSink{Logger: s.log}).Warn(w)
}

// Step advances the particle through exactly one collision, mutating
// its state in place and recording the outcome. It is a no-op once the
// particle has escaped or pinned.
func (s *Simulation) Step() {
	if s.Escaped || s.Pinned {
		return
	}

	var splitters []*physics.RaySplitter
	if s.Config.RaySplitting {
		splitters = s.splitters
	}

	idx, t, escaped := physics.BounceInPlace(s.particle, s.Billiard, splitters, s.rng)
	if escaped {
		if mp, magnetic := s.particle.(*physics.MagneticParticle); magnetic && s.Billiard.HasPeriodicWall() {
			s.Pinned = true
			// Matches EvolveInPlace: pinning is only confirmed after a
			// full Larmor period with no collision, so charge that
			// period onto the reported accumulated time.
			s.AccumulatedSec += 2 * math.Pi / math.Abs(mp.Omega())
		} else {
			s.Escaped = true
		}
		s.Warn(physics.Warning{Kind: warningKindFor(s.Pinned), ObstacleIndex: -1, AccumulatedSec: s.AccumulatedSec})
		return
	}

	if mp, ok := s.particle.(*physics.MagneticParticle); ok {
		mp.RefreshCenter()
	}

	s.lastIdx = idx
	s.lastT = t
	s.AccumulatedSec += t
	s.CollisionCount++
}

func warningKindFor(pinned bool) physics.WarningKind {
	if pinned {
		return physics.WarningPinned
	}
	return physics.WarningEscape
}

// Reset restores the simulation to its given initial particle.
func (s *Simulation) Reset(initial physics.Particle) {
	s.particle = initial.Clone()
	s.CollisionCount = 0
	s.AccumulatedSec = 0
	s.Escaped = false
	s.Pinned = false
	s.lastIdx = -1
	s.lastT = 0
}

// Particle returns the live particle (read its Pos/Vel for rendering).
func (s *Simulation) Particle() physics.Particle {
	return s.particle
}

// Omega returns the particle's cyclotron frequency, or 0 if straight.
func (s *Simulation) Omega() float64 {
	if mp, ok := s.particle.(*physics.MagneticParticle); ok {
		return mp.Omega()
	}
	return 0
}

// LastCollision returns the obstacle index and elapsed time of the
// most recently resolved collision; idx is -1 before any collision.
func (s *Simulation) LastCollision() (idx int, t float64) {
	return s.lastIdx, s.lastT
}

// Run evolves a fresh copy of the given particle to completion and
// returns the resulting event stream, for the non-interactive
// scenario/benchmark paths (spec §6's Evolve entry point).
func Run(cfg *config.Config, bd *physics.Billiard, initial physics.Particle, splitters []*physics.RaySplitter, log *zap.Logger) (*physics.EventStream, error) {
	kind := physics.TargetCollisions
	if cfg.TargetIsTime {
		kind = physics.TargetTime
	}

	opts := physics.EvolveOptions{
		RNG: physics.NewSource(cfg.RandomSeed),
	}
	if cfg.RaySplitting {
		opts.Splitters = splitters
	}
	if cfg.Warnings && log != nil {
		opts.Diagnostics = &logging.DiagnosticsSink{Logger: log}
	}

	return physics.Evolve(initial, bd, cfg.Target, kind, opts)
}
