package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"voxelview/internal/config"
	"voxelview/internal/graphics/renderer"
	"voxelview/internal/player"
)

func setupWindow(cfg config.Settings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, "voxelview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func setupGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return nil
}

func setupInputHandlers(window *glfw.Window, r *renderer.Renderer, p *player.Player) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		p.HandleMouseMovement(w, xpos, ypos)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyF && action == glfw.Press {
			p.Wireframe = !p.Wireframe
		}
		if key == glfw.KeyEscape && action == glfw.Press {
			p.Paused = !p.Paused
			if p.Paused {
				w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
			} else {
				w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
				p.FirstMouse = true
			}
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		r.UpdateViewport(width, height)
	})
}
