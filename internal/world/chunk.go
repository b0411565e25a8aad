package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ChunkSize is the edge length of a chunk in blocks.
	ChunkSize = 16
	// ChunkVolume is the number of block slots per chunk.
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// ChunkPos is a chunk-grid coordinate and the unique key of the chunk index.
// World position = ChunkPos * ChunkSize.
type ChunkPos struct {
	X, Y, Z int
}

// WorldOrigin returns the world-space position of the chunk's (0,0,0) corner.
func (p ChunkPos) WorldOrigin() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(p.X * ChunkSize),
		float32(p.Y * ChunkSize),
		float32(p.Z * ChunkSize),
	}
}

// Chunk is a fixed-size 3D grid of optional block slots plus the cached mesh
// built from them. It owns meshing of its own contents; neighbor chunks are
// never consulted.
type Chunk struct {
	position ChunkPos
	blocks   []*Block
	isActive bool
	mesh     *ChunkMesh
}

// NewChunk creates an empty chunk at the given chunk-grid position.
func NewChunk(pos ChunkPos) *Chunk {
	return &Chunk{
		position: pos,
		blocks:   make([]*Block, ChunkVolume),
	}
}

// BlockIndex flattens local coordinates into a slot index. The axis order is
// load-bearing: changing it changes every occupancy query.
func BlockIndex(x, y, z int) int {
	return (x*ChunkSize+y)*ChunkSize + z
}

func inChunkRange(x, y, z int) bool {
	return x >= 0 && x < ChunkSize &&
		y >= 0 && y < ChunkSize &&
		z >= 0 && z < ChunkSize
}

// Position returns the chunk-grid coordinate.
func (c *Chunk) Position() ChunkPos {
	return c.position
}

// InsertBlock places a block into a slot. Out-of-range coordinates and
// occupied slots are silently ignored (first write wins); no error is ever
// signaled.
func (c *Chunk) InsertBlock(b Block, x, y, z int) {
	if !inChunkRange(x, y, z) {
		return
	}
	idx := BlockIndex(x, y, z)
	if c.blocks[idx] != nil {
		return
	}
	c.blocks[idx] = &b
}

// RemoveBlock clears a slot. Out-of-range coordinates and empty slots are
// silently ignored.
func (c *Chunk) RemoveBlock(x, y, z int) {
	if !inChunkRange(x, y, z) {
		return
	}
	c.blocks[BlockIndex(x, y, z)] = nil
}

// BlockAt returns the block in a slot and whether the slot is occupied.
// Out-of-range coordinates report an empty slot.
func (c *Chunk) BlockAt(x, y, z int) (Block, bool) {
	if !inChunkRange(x, y, z) {
		return Block{}, false
	}
	b := c.blocks[BlockIndex(x, y, z)]
	if b == nil {
		return Block{}, false
	}
	return *b, true
}

// BlockActive reports whether a slot holds an active block. Out-of-range
// coordinates are air. This is the sole occupancy oracle for meshing.
func (c *Chunk) BlockActive(x, y, z int) bool {
	if !inChunkRange(x, y, z) {
		return false
	}
	b := c.blocks[BlockIndex(x, y, z)]
	return b != nil && b.Active
}

// Active reports whether the chunk has been meshed at least once. It is a
// readiness flag, not a visibility flag.
func (c *Chunk) Active() bool {
	return c.isActive
}

// Mesh returns the cached surface geometry, or nil when the last mesh pass
// found no exposed faces.
func (c *Chunk) Mesh() *ChunkMesh {
	return c.mesh
}
