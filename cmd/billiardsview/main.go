// Command billiardsview is an interactive viewer for the 2D dynamical
// billiard collision kernel: it drives a single particle one collision
// at a time against a chosen preset geometry and renders its path with
// raylib, adapted from the teacher's N-body demo command
// (deveworld-relativity_simul/main.go).
package main

import (
	"flag"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"relativity_simulation_2d/internal/config"
	"relativity_simulation_2d/internal/input"
	"relativity_simulation_2d/internal/logging"
	"relativity_simulation_2d/internal/physics"
	"relativity_simulation_2d/internal/renderer"
	"relativity_simulation_2d/internal/simulation"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	debug := flag.Bool("debug", false, "enable development logging")
	flag.Parse()

	log, err := logging.New(*debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatal("failed to load config", zap.Error(err))
		}
		cfg = loaded
	}

	bd := buildPreset(cfg.Preset)
	initial := initialParticle(cfg)

	sim := simulation.NewSimulation(cfg, bd, initial, nil, log)

	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "2D Dynamical Billiard")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := renderer.NewCamera(physics.NewVec2(5, 5), 60, cfg.ScreenWidth, cfg.ScreenHeight)
	billiardRenderer := renderer.NewBilliardRenderer(bd, 2000)
	billiardRenderer.SetCamera(camera)
	ui := renderer.NewUIRenderer(cfg.ScreenWidth, cfg.ScreenHeight)
	ui.SetTargetFPS(60)

	controller := input.NewInputController()
	inputState := &input.SimulationState{Paused: cfg.StartPaused}
	inputConfig := &input.InputConfig{
		PanSpeed:        cfg.MoveSpeed,
		ZoomSensitivity: cfg.ZoomSpeed,
		ScreenWidth:     cfg.ScreenWidth,
		ScreenHeight:    cfg.ScreenHeight,
	}

	loop := renderer.NewRenderLoop()
	loop.SetTargetFPS(60)
	loop.SetUpdateCallback(func(dt float64) {
		controller.UpdateFromRaylib()
		controller.ProcessInput(camera, inputState, inputConfig)
		if inputState.Reset {
			sim.Reset(initial)
			billiardRenderer.ClearTrail()
		}
		if !inputState.Paused {
			sim.Step()
			billiardRenderer.PushTrailPoint(sim.Particle().Pos().Add(sim.Particle().CurrentCell()))
		}
		ui.UpdateState(renderer.UIState{
			CollisionCount: sim.CollisionCount,
			AccumulatedSec: sim.AccumulatedSec,
			Omega:          sim.Omega(),
			State:          runState(sim),
			TargetFPS:      loop.GetTargetFPS(),
			ActualFPS:      loop.GetActualFPS(),
			FrameTime:      loop.GetLastFrameTime(),
			Paused:         inputState.Paused,
		})
	})
	loop.SetRenderCallback(func(dt float64) {
		drawFrame(camera, billiardRenderer, ui)
	})
	loop.SetBeginCallback(func() {
		if rl.WindowShouldClose() {
			loop.RequestClose()
		}
	})

	log.Info("billiardsview started", zap.String("preset", cfg.Preset), zap.Uint64("seed", cfg.RandomSeed))
	loop.Run()
	os.Exit(0)
}

func initialParticle(cfg *config.Config) physics.Particle {
	pos := physics.NewVec2(1, 1)
	vel := physics.NewVec2(0.6, 0.8)
	if cfg.Omega != 0 {
		return physics.NewMagneticParticle(pos, vel, cfg.Omega)
	}
	return physics.NewStraightParticle(pos, vel)
}

func runState(sim *simulation.Simulation) renderer.RunState {
	switch {
	case sim.Escaped:
		return renderer.RunStateEscaped
	case sim.Pinned:
		return renderer.RunStatePinned
	default:
		return renderer.RunStateActive
	}
}

func drawFrame(camera *renderer.Camera, br *renderer.BilliardRenderer, ui *renderer.UIRenderer) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	for _, shape := range br.Shapes() {
		drawShape(camera, shape)
	}
	drawTrail(camera, br)

	rl.DrawText(ui.GetTitle(), 10, 10, int32(ui.GetFontSize()), rl.Lime)
	rl.DrawText(ui.GetCollisionCountText(), 10, 40, 18, rl.White)
	rl.DrawText(ui.GetAccumulatedTimeText(), 10, 65, 18, rl.White)
	rl.DrawText(ui.GetOmegaText(), 10, 90, 18, rl.White)
	rl.DrawText(ui.GetStateString(), 10, 115, 18, uiColorToRaylib(ui.GetStateColor()))
	if ui.IsPaused() {
		px, py := ui.GetPausePosition()
		rl.DrawText(ui.GetPauseText(), int32(px), int32(py), 24, rl.Yellow)
	}
}

func drawShape(camera *renderer.Camera, shape renderer.ObstacleShape) {
	switch shape.Kind {
	case "wall", "splitter":
		sx, sy := camera.WorldToScreen(shape.Start)
		ex, ey := camera.WorldToScreen(shape.End)
		rl.DrawLine(int32(sx), int32(sy), int32(ex), int32(ey), rl.RayWhite)
	case "periodic":
		sx, sy := camera.WorldToScreen(shape.Start)
		ex, ey := camera.WorldToScreen(shape.End)
		rl.DrawLine(int32(sx), int32(sy), int32(ex), int32(ey), rl.SkyBlue)
	case "disk", "antidot":
		cx, cy := camera.WorldToScreen(shape.Center)
		rl.DrawCircleLines(int32(cx), int32(cy), float32(camera.ScaledRadius(shape.Radius)), rl.Orange)
	case "semicircle":
		cx, cy := camera.WorldToScreen(shape.Center)
		rl.DrawCircleLines(int32(cx), int32(cy), float32(camera.ScaledRadius(shape.Radius)), rl.Purple)
	}
}

func drawTrail(camera *renderer.Camera, br *renderer.BilliardRenderer) {
	trail := br.Trail()
	for i := 1; i < len(trail); i++ {
		sx, sy := camera.WorldToScreen(trail[i-1].Pos)
		ex, ey := camera.WorldToScreen(trail[i].Pos)
		rl.DrawLine(int32(sx), int32(sy), int32(ex), int32(ey), rl.Green)
	}
	if len(trail) > 0 {
		x, y := camera.WorldToScreen(trail[len(trail)-1].Pos)
		rl.DrawCircle(int32(x), int32(y), 4, rl.Red)
	}
}

func uiColorToRaylib(c renderer.UIColor) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
