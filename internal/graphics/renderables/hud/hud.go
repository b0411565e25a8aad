package hud

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"voxelview/internal/graphics"
	"voxelview/internal/graphics/renderer"
	"voxelview/internal/profiling"
)

const fontPixels = 24

// HUDRenderable draws the debug text overlay: frame rate, player position,
// chunk counts and frame timings.
type HUDRenderable struct {
	fontPath string
	font     *graphics.FontRenderer
	width    int
	height   int

	// FPS accumulation
	frames  int
	elapsed float64
	fps     int
}

// NewHUDRenderable creates the overlay. fontPath points at a TrueType file.
func NewHUDRenderable(fontPath string, width, height int) *HUDRenderable {
	return &HUDRenderable{fontPath: fontPath, width: width, height: height}
}

// Init bakes the font atlas. A missing font disables the overlay instead of
// failing startup.
func (h *HUDRenderable) Init() error {
	atlas, err := graphics.BuildFontAtlas(h.fontPath, fontPixels)
	if err != nil {
		log.Printf("hud: font unavailable, overlay disabled: %v", err)
		return nil
	}
	font, err := graphics.NewFontRenderer(atlas, h.width, h.height)
	if err != nil {
		return fmt.Errorf("hud font renderer: %w", err)
	}
	h.font = font
	return nil
}

// Render draws the overlay lines in the top-left corner.
func (h *HUDRenderable) Render(ctx renderer.RenderContext) {
	h.frames++
	h.elapsed += ctx.DT
	if h.elapsed >= 1.0 {
		h.fps = h.frames
		h.frames = 0
		h.elapsed = 0
	}

	if h.font == nil {
		return
	}

	p := ctx.Player.Position
	loaded, visible, pending := ctx.Manager.Counts()

	lines := []string{
		fmt.Sprintf("fps: %d", h.fps),
		fmt.Sprintf("x: %.2f y: %.2f z: %.2f", p.X(), p.Y(), p.Z()),
		fmt.Sprintf("chunks: %d loaded, %d visible, %d pending", loaded, visible, pending),
	}
	if timings := profiling.TopN(4); timings != "" {
		lines = append(lines, timings)
	}

	h.font.RenderLines(lines, 10, 28, float32(fontPixels)+4, 1.0, mgl32.Vec3{1, 1, 1})
}

// Dispose releases font resources.
func (h *HUDRenderable) Dispose() {
	if h.font != nil {
		h.font.Release()
	}
}

// SetViewport rebuilds the text projection after a resize.
func (h *HUDRenderable) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.font != nil {
		h.font.SetViewport(width, height)
	}
}
