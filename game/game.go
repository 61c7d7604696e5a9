// Package game hosts the scene: an ebiten window for interactive runs and a
// ticker loop for headless ones.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vaultworn/debugui"
	debugui_ebiten "github.com/plus3/vaultworn/debugui/ebiten"
	"github.com/plus3/vaultworn/ecs"
	"github.com/plus3/vaultworn/input"
	"github.com/plus3/vaultworn/render"
	"github.com/plus3/vaultworn/scene"
)

// World is the scene storage with its update and render schedulers.
// Both schedulers share one storage; the render stage only reads it.
type World struct {
	Storage  *ecs.Storage
	Update   *ecs.Scheduler
	Render   *ecs.Scheduler
	Renderer *render.System
}

// NewWorld registers components, installs the scene and builds the render
// stage. With debug set the ImGui overlay is installed ahead of input polling.
func NewWorld(reader input.KeyReader, debug bool) *World {
	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	if debug {
		debugui.RegisterComponents(registry)
	}
	storage := ecs.NewStorage(registry)

	update := ecs.NewScheduler(storage)
	if debug {
		debugui.Install(update)
	}
	scene.Install(update, reader)

	ecs.NewSingleton(storage, render.Target{})
	renderer := &render.System{}
	draw := ecs.NewScheduler(storage)
	draw.Register(renderer)
	draw.Register(&render.HUDSystem{})

	return &World{
		Storage:  storage,
		Update:   update,
		Render:   draw,
		Renderer: renderer,
	}
}

// Game implements ebiten.Game.
type Game struct {
	world  *World
	target *ecs.Singleton[render.Target]
	imgui  *ecs.Singleton[debugui_ebiten.ImguiBackend]
	last   time.Time
}

func NewGame(world *World) *Game {
	g := &Game{
		world:  world,
		target: ecs.NewSingleton[render.Target](world.Storage),
	}
	var backend *debugui_ebiten.ImguiBackend
	if world.Storage.ReadSingleton(&backend) {
		g.imgui = ecs.NewSingleton[debugui_ebiten.ImguiBackend](world.Storage)
	}
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if g.imgui != nil {
		g.imgui.Get().BeginFrame()
	}
	g.world.Update.Once(dt)
	if g.imgui != nil {
		g.imgui.Get().EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	target := g.target.Get()
	target.Image = screen
	g.world.Render.Once(0)
	target.Image = nil

	if g.imgui != nil {
		g.imgui.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Get().Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// RunWindow opens the window and runs until it is closed.
func RunWindow(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	world := NewWorld(ebiten.IsKeyPressed, cfg.Debug)
	if cfg.Debug {
		ecs.NewSingleton(world.Storage,
			debugui_ebiten.NewImguiBackend(cfg.Title, cfg.Width, cfg.Height, cfg.Resizable))
	} else {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle(cfg.Title)
		if cfg.Resizable {
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		}
	}

	if err := ebiten.RunGame(NewGame(world)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
