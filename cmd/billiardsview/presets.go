package main

import (
	"relativity_simulation_2d/internal/physics"
)

// buildPreset constructs one of the demo's three billiard geometries.
// These are demo-only conveniences (SPEC_FULL.md §2 component M) —
// not part of the kernel's public contract, same as the teacher's
// standalone N-body initial-condition helpers.
func buildPreset(name string) *physics.Billiard {
	switch name {
	case "rectangle":
		return rectangleBilliard()
	case "periodic_square":
		return periodicSquareBilliard()
	default:
		return sinaiBilliard()
	}
}

// rectangleBilliard is a plain 10x6 box with specular walls.
func rectangleBilliard() *physics.Billiard {
	w, h := 10.0, 6.0
	return physics.NewBilliard(
		&physics.FiniteWall{OName: "bottom", Start: physics.NewVec2(0, 0), End: physics.NewVec2(w, 0), NormalVec: physics.NewVec2(0, 1)},
		&physics.FiniteWall{OName: "right", Start: physics.NewVec2(w, 0), End: physics.NewVec2(w, h), NormalVec: physics.NewVec2(-1, 0)},
		&physics.FiniteWall{OName: "top", Start: physics.NewVec2(w, h), End: physics.NewVec2(0, h), NormalVec: physics.NewVec2(0, -1)},
		&physics.FiniteWall{OName: "left", Start: physics.NewVec2(0, h), End: physics.NewVec2(0, 0), NormalVec: physics.NewVec2(1, 0)},
	)
}

// sinaiBilliard is a square box with a central circular scatterer, the
// archetypal chaotic (dispersing) billiard.
func sinaiBilliard() *physics.Billiard {
	w, h := 10.0, 10.0
	return physics.NewBilliard(
		&physics.FiniteWall{OName: "bottom", Start: physics.NewVec2(0, 0), End: physics.NewVec2(w, 0), NormalVec: physics.NewVec2(0, 1)},
		&physics.FiniteWall{OName: "right", Start: physics.NewVec2(w, 0), End: physics.NewVec2(w, h), NormalVec: physics.NewVec2(-1, 0)},
		&physics.FiniteWall{OName: "top", Start: physics.NewVec2(w, h), End: physics.NewVec2(0, h), NormalVec: physics.NewVec2(0, -1)},
		&physics.FiniteWall{OName: "left", Start: physics.NewVec2(0, h), End: physics.NewVec2(0, 0), NormalVec: physics.NewVec2(1, 0)},
		&physics.Disk{OName: "scatterer", Center: physics.NewVec2(w/2, h/2), Radius: 2.5},
	)
}

// periodicSquareBilliard is a single unit cell with all four sides
// periodic, exercising the pinned/escape classification for magnetic
// particles (spec §9 Open Question).
func periodicSquareBilliard() *physics.Billiard {
	w, h := 10.0, 10.0
	return physics.NewBilliard(
		&physics.PeriodicWall{OName: "bottom", Start: physics.NewVec2(0, 0), End: physics.NewVec2(w, 0), NormalVec: physics.NewVec2(0, h)},
		&physics.PeriodicWall{OName: "top", Start: physics.NewVec2(0, h), End: physics.NewVec2(w, h), NormalVec: physics.NewVec2(0, -h)},
		&physics.PeriodicWall{OName: "left", Start: physics.NewVec2(0, 0), End: physics.NewVec2(0, h), NormalVec: physics.NewVec2(w, 0)},
		&physics.PeriodicWall{OName: "right", Start: physics.NewVec2(w, 0), End: physics.NewVec2(w, h), NormalVec: physics.NewVec2(-w, 0)},
	)
}
