package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"voxelview/internal/geometry"
	"voxelview/internal/world"
)

// Device uploads chunk meshes to GPU buffers. It implements world.Device.
type Device struct{}

// NewDevice returns a Device. The GL context must be current.
func NewDevice() *Device {
	return &Device{}
}

type glMesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// Upload creates a vertex array with interleaved position/color/normal
// attributes and an element buffer for the given mesh data.
func (d *Device) Upload(vertices []geometry.Vertex, indices []uint32) world.MeshBuffers {
	m := &glMesh{count: int32(len(indices))}

	data := geometry.Flatten(vertices)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	stride := int32(geometry.VertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Draw renders the mesh. A shader must already be bound.
func (m *glMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Release frees the GPU buffers.
func (m *glMesh) Release() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
}
