package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of float32 per vertex (pos.xyz + color.rgb + normal.xyz).
const VertexStride = 9

// Vertex is the interleaved attribute layout shared by every mesh in the engine.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Normal   mgl32.Vec3
}

// QuadIndexFan triangulates the four vertices of a quad into two triangles.
// The winding matches the quad emitted by Quad; do not reorder.
var QuadIndexFan = [6]uint32{0, 3, 2, 2, 1, 0}

// Quad returns the four corners of a parallelogram spanning width and height
// from origin. Every vertex carries the same flat color and normal.
func Quad(origin, width, height, normal, color mgl32.Vec3) [4]Vertex {
	return [4]Vertex{
		{Position: origin, Color: color, Normal: normal},
		{Position: origin.Add(width), Color: color, Normal: normal},
		{Position: origin.Add(width).Add(height), Color: color, Normal: normal},
		{Position: origin.Add(height), Color: color, Normal: normal},
	}
}

// QuadIndices returns the index fan rebased onto a running vertex offset.
func QuadIndices(offset uint32) [6]uint32 {
	return [6]uint32{
		offset + QuadIndexFan[0],
		offset + QuadIndexFan[1],
		offset + QuadIndexFan[2],
		offset + QuadIndexFan[3],
		offset + QuadIndexFan[4],
		offset + QuadIndexFan[5],
	}
}

// Flatten interleaves vertices into a float32 slice for buffer upload.
func Flatten(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		out = append(out,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Color.X(), v.Color.Y(), v.Color.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
		)
	}
	return out
}
