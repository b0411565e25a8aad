package main

import (
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"voxelview/internal/graphics/renderer"
	"voxelview/internal/player"
	"voxelview/internal/profiling"
	"voxelview/internal/world"
)

func runGameLoop(window *glfw.Window, r *renderer.Renderer, p *player.Player, m *world.ChunkManager) {
	frames := 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		func() { defer profiling.Track("player.Update")(); p.Update(dt, window) }()
		m.Update(p.Position)

		func() { defer profiling.Track("render.Render")(); r.Render(m, p, dt) }()
		frames++

		if time.Since(lastFPSCheckTime) >= time.Second {
			log.Printf("FPS: %d", frames)
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	}
}
