package integration_test

import (
	"testing"

	"relativity_simulation_2d/internal/physics"
)

// BenchmarkBounceInPlace measures the cost of a single collision step
// in the unit square, the kernel's innermost loop.
func BenchmarkBounceInPlace(b *testing.B) {
	bd := physics.NewBilliard(unitSquare()...)
	p := physics.NewStraightParticle(physics.NewVec2(0.5, 0.5), physics.NewVec2(1, 0))
	rng := physics.NewSource(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, escaped := physics.BounceInPlace(p, bd, nil, rng)
		if escaped {
			p.SetPos(physics.NewVec2(0.5, 0.5))
			p.SetVel(physics.NewVec2(1, 0))
		}
	}
}

// BenchmarkEvolveVaryingTargets benchmarks a full evolution run across
// a range of collision-count targets.
func BenchmarkEvolveVaryingTargets(b *testing.B) {
	targets := []float64{10, 100, 1000, 10000}

	for _, target := range targets {
		b.Run(benchName(target), func(b *testing.B) {
			bd := physics.NewBilliard(unitSquare()...)
			p := physics.NewStraightParticle(physics.NewVec2(0.1, 0.23), physics.NewVec2(0.6, 0.8))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := physics.Evolve(p, bd, target, physics.TargetCollisions, physics.EvolveOptions{})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEvolveSinaiBilliard benchmarks evolution against a
// dispersing billiard, which does more per-collision geometry work
// (disk root-finding) than the flat-walled square.
func BenchmarkEvolveSinaiBilliard(b *testing.B) {
	obstacles := append(unitSquare(), &physics.Disk{OName: "scatterer", Center: physics.NewVec2(0.5, 0.5), Radius: 0.3})
	bd := physics.NewBilliard(obstacles...)
	p := physics.NewStraightParticle(physics.NewVec2(0.05, 0.2), physics.NewVec2(0.6, 0.8))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := physics.Evolve(p, bd, 500, physics.TargetCollisions, physics.EvolveOptions{})
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvolveMagneticParticle benchmarks evolution of a magnetic
// particle, which pays for cyclotron center bookkeeping on every step.
func BenchmarkEvolveMagneticParticle(b *testing.B) {
	bd := physics.NewBilliard(unitSquare()...)
	p := physics.NewMagneticParticle(physics.NewVec2(0.5, 0.5), physics.NewVec2(1, 0), 5.0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := physics.Evolve(p, bd, 500, physics.TargetCollisions, physics.EvolveOptions{})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func benchName(target float64) string {
	switch target {
	case 10:
		return "10collisions"
	case 100:
		return "100collisions"
	case 1000:
		return "1000collisions"
	default:
		return "10000collisions"
	}
}
