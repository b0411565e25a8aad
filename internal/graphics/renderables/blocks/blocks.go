package blocks

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"voxelview/internal/graphics"
	"voxelview/internal/graphics/renderer"
	"voxelview/internal/profiling"
	"voxelview/internal/world"
)

// BlocksRenderable draws every visible chunk mesh with a single shader.
type BlocksRenderable struct {
	shader  *graphics.Shader
	scratch []world.ChunkDrawInfo
}

// NewBlocksRenderable creates the chunk pass.
func NewBlocksRenderable() *BlocksRenderable {
	return &BlocksRenderable{}
}

// Init compiles the block shader.
func (b *BlocksRenderable) Init() error {
	shader, err := graphics.NewShader(blockVertexShader, blockFragmentShader)
	if err != nil {
		return fmt.Errorf("blocks shader: %w", err)
	}
	b.shader = shader
	return nil
}

// Render draws all chunks the manager currently considers visible.
func (b *BlocksRenderable) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.blocks")()

	b.shader.Use()
	b.shader.SetMatrix4("view", &ctx.View[0])
	b.shader.SetMatrix4("projection", &ctx.Proj[0])
	b.shader.SetVector3("lightDir", -0.5, -1.0, -0.3)

	if ctx.Player != nil && ctx.Player.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	b.scratch = ctx.Manager.AppendVisible(b.scratch[:0])
	for _, info := range b.scratch {
		mesh := info.Mesh
		if mesh == nil || mesh.Buffers == nil {
			continue
		}
		mesh.Buffers.Draw()
	}
}

// Dispose releases the shader.
func (b *BlocksRenderable) Dispose() {
	if b.shader != nil {
		b.shader.Release()
	}
}

// SetViewport is a no-op; the block pass uses the shared camera.
func (b *BlocksRenderable) SetViewport(width, height int) {}
