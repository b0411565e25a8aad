package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the projection parameters for the scene.
type Camera struct {
	AspectRatio float32
	FOV         float32
	Near        float32
	Far         float32
}

// NewCamera returns a camera with the default vertical field of view.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		AspectRatio: 1,
		FOV:         60,
		Near:        0.1,
		Far:         1000,
	}
	c.SetViewport(width, height)
	return c
}

// GetProjectionMatrix returns the perspective projection matrix.
func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.Near, c.Far)
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}
