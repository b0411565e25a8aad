package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"voxelview/internal/config"
	"voxelview/internal/graphics"
	"voxelview/internal/graphics/renderables/blocks"
	"voxelview/internal/graphics/renderables/hud"
	"voxelview/internal/graphics/renderer"
	"voxelview/internal/player"
	"voxelview/internal/world"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load("voxelview.yaml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %v", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow(cfg)
	if err != nil {
		log.Fatalf("window: %v", err)
	}

	if err := setupGL(); err != nil {
		log.Fatalf("opengl: %v", err)
	}

	device := graphics.NewDevice()
	manager := world.NewChunkManager(device, config.GetRenderDistance())
	closer.Bind(manager.Dispose)

	switch cfg.Generator {
	case "flat":
		world.GenerateFlat(manager, cfg.WorldRadius)
	default:
		world.GenerateTerrain(manager, cfg.WorldRadius, world.NewGenerator(cfg.Seed))
	}

	blocksRenderable := blocks.NewBlocksRenderable()
	hudRenderable := hud.NewHUDRenderable(cfg.FontPath, cfg.Window.Width, cfg.Window.Height)

	r, err := renderer.NewRenderer(cfg.Window.Width, cfg.Window.Height,
		blocksRenderable,
		hudRenderable,
	)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	closer.Bind(r.Dispose)

	p := player.NewPlayer()

	setupInputHandlers(window, r, p)

	runGameLoop(window, r, p, manager)

	closer.Close()
}
