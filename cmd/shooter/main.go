package main

import (
	"flag"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calluna/strafe/config"
	"github.com/calluna/strafe/debugui"
	"github.com/calluna/strafe/ecs"
	"github.com/calluna/strafe/game"
	"github.com/calluna/strafe/input"
)

const windowTitle = "Strafe"

// Game implements ebiten.Game: each display frame it feeds keyboard state to
// the shared input map, advances the fixed-timestep loop (zero or more
// logical ticks), then draws the current slot sequence.
type Game struct {
	cfg      config.Config
	loop     *game.Loop
	renderer game.Renderer
	in       *input.State
	overlay  *debugui.Overlay
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	pollKeys(g.in)

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}
	over := g.loop.Advance()
	if g.overlay != nil {
		g.overlay.Update(over)
		g.overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.loop.World)
	if g.loop.Over() {
		g.renderer.DrawGameOver(screen)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// ImGui draws into the logical screen image, so it gets the logical
	// size, not the window size.
	if g.overlay != nil {
		g.overlay.Layout(g.cfg.ScreenWidth, g.cfg.ScreenHeight)
	}
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

func pollKeys(s *input.State) {
	record := func(k input.Key, held bool) {
		if held {
			s.Set(k, input.Pressed)
		} else {
			s.Set(k, input.Released)
		}
	}
	record(input.Left, ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA))
	record(input.Right, ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD))
	record(input.Up, ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW))
	record(input.Down, ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS))
	record(input.Fire, ebiten.IsKeyPressed(ebiten.KeySpace))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	return logCfg.Build()
}

func main() {
	configPath := flag.String("config", "strafe.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	clock := ecs.SystemClock{}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed<<1|1))

	var overlay *debugui.Overlay
	if cfg.DebugOverlay {
		overlay = debugui.NewOverlay(windowTitle, cfg.ScreenWidth, cfg.ScreenHeight, 120)
	} else {
		ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
		ebiten.SetWindowTitle(windowTitle)
	}

	in := input.NewState()
	screenW := float64(cfg.ScreenWidth)
	screenH := float64(cfg.ScreenHeight)

	sinks := []game.CountSink{game.NewLogCountSink(log)}
	if overlay != nil {
		sinks = append(sinks, overlay)
	}

	// Registration order is frame-significant; the end-game check is not
	// registered here, the loop evaluates it after each tick.
	seedWorld := func(w *ecs.World) {
		w.AddSystem(game.BoundarySystem{})
		w.AddSystem(game.MovementSystem{})
		w.AddSystem(game.CollisionSystem{})
		w.AddSystem(game.BoundaryRemovalSystem{})
		w.AddSystem(game.InteractableSystem{})
		w.AddSystem(game.NewStatsSystem(sinks...))
		w.AddSystem(game.NewSpawnSystem(rng, screenW, screenH))
		w.AddEntity(game.NewPlayerShip(screenW, screenH, in))
		w.AddEntity(game.NewSpawner())
	}

	loop := game.NewLoop(ecs.NewWorld(), clock, cfg.Step(), cfg.ResetEvery(), seedWorld, log)

	log.Info("starting",
		zap.Int("screen_width", cfg.ScreenWidth),
		zap.Int("screen_height", cfg.ScreenHeight),
		zap.Int("tick_rate", cfg.TickRate),
		zap.Uint64("seed", seed),
	)

	g := &Game{cfg: cfg, loop: loop, in: in, overlay: overlay}
	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
