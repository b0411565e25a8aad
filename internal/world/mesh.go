package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelview/internal/geometry"
)

// Device turns raw geometry into GPU-resident buffers. It is the only
// collaborator the meshing core needs from the render stack.
type Device interface {
	Upload(vertices []geometry.Vertex, indices []uint32) MeshBuffers
}

// MeshBuffers is an opaque handle to uploaded geometry, used only to issue
// a draw call later and to release the buffers.
type MeshBuffers interface {
	Draw()
	Release()
}

// ChunkMesh is the cached surface geometry of one chunk.
type ChunkMesh struct {
	Buffers     MeshBuffers
	NumElements int32
}

// activeBlock returns the slot's block when it is present and active;
// out-of-range coordinates are air.
func (c *Chunk) activeBlock(x, y, z int) *Block {
	if !inChunkRange(x, y, z) {
		return nil
	}
	b := c.blocks[BlockIndex(x, y, z)]
	if b == nil || !b.Active {
		return nil
	}
	return b
}

// GreedyMesh rebuilds the chunk's cached mesh from its block grid.
//
// For each sweep axis d (with in-plane axes u=(d+1)%3, v=(d+2)%3) the plane
// index runs from -1 to ChunkSize-1 inclusive, so both outer boundary planes
// are visited and faces on the chunk hull are treated as exposed to air —
// neighbor chunks are never sampled. At every plane a ChunkSize×ChunkSize
// mask marks cells whose occupancy differs across the plane; the mask is then
// merged row-major into maximal rectangles, each emitted as a single quad
// with normal unit(d).
//
// The chunk is marked active whether or not geometry was produced; the mesh
// is cached only when at least one quad was emitted, otherwise it is cleared.
func (c *Chunk) GreedyMesh(dev Device) {
	var (
		vertices []geometry.Vertex
		indices  []uint32
		offset   uint32
	)

	base := c.position.WorldOrigin()
	var mask [ChunkSize * ChunkSize]*Block

	for d := 0; d < 3; d++ {
		u := (d + 1) % 3
		v := (d + 2) % 3

		var x, q [3]int
		q[d] = 1

		var normal mgl32.Vec3
		normal[d] = 1

		for x[d] = -1; x[d] < ChunkSize; {
			// Mark every cell whose occupancy flips across the plane. Out of
			// range on either side counts as air, which keeps hull faces in.
			n := 0
			for x[v] = 0; x[v] < ChunkSize; x[v]++ {
				for x[u] = 0; x[u] < ChunkSize; x[u]++ {
					here := c.activeBlock(x[0], x[1], x[2])
					next := c.activeBlock(x[0]+q[0], x[1]+q[1], x[2]+q[2])
					switch {
					case (here != nil) == (next != nil):
						mask[n] = nil
					case here != nil:
						mask[n] = here
					default:
						mask[n] = next
					}
					n++
				}
			}
			x[d]++

			// Greedy merge: grow width along u, then height along v, zero out
			// the consumed rectangle, emit one quad per rectangle.
			n = 0
			for j := 0; j < ChunkSize; j++ {
				for i := 0; i < ChunkSize; {
					if mask[n] == nil {
						i++
						n++
						continue
					}
					w := 1
					for i+w < ChunkSize && mask[n+w] != nil {
						w++
					}
					h := 1
				grow:
					for ; j+h < ChunkSize; h++ {
						for k := 0; k < w; k++ {
							if mask[n+k+h*ChunkSize] == nil {
								break grow
							}
						}
					}

					x[u], x[v] = i, j
					var du, dv [3]int
					du[u] = w
					dv[v] = h

					origin := base.Add(mgl32.Vec3{float32(x[0]), float32(x[1]), float32(x[2])})
					width := mgl32.Vec3{float32(du[0]), float32(du[1]), float32(du[2])}
					height := mgl32.Vec3{float32(dv[0]), float32(dv[1]), float32(dv[2])}

					quad := mask[n].Quad(origin, width, height, normal)
					vertices = append(vertices, quad[:]...)
					fan := geometry.QuadIndices(offset)
					indices = append(indices, fan[:]...)
					offset += 4

					for l := 0; l < h; l++ {
						for k := 0; k < w; k++ {
							mask[n+k+l*ChunkSize] = nil
						}
					}
					i += w
					n += w
				}
			}
		}
	}

	c.isActive = true

	if c.mesh != nil {
		if c.mesh.Buffers != nil {
			c.mesh.Buffers.Release()
		}
		c.mesh = nil
	}
	if len(vertices) == 0 || len(indices) == 0 {
		return
	}
	c.mesh = &ChunkMesh{
		Buffers:     dev.Upload(vertices, indices),
		NumElements: int32(len(indices)),
	}
}
