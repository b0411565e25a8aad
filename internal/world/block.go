package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelview/internal/geometry"
)

// Block is the smallest unit of the world: an opaque numeric identity plus
// an active flag. Trivially copyable; a chunk slot is its only owner.
type Block struct {
	ID     uint32
	Active bool
}

// NewBlock returns an active block with the given id.
func NewBlock(id uint32) Block {
	return Block{ID: id, Active: true}
}

// Quad emits the four vertices of one exposed face: a parallelogram spanning
// width and height from origin, every vertex carrying a flat color and the
// face normal. Coordinates are chunk-local and already offset to world space
// by the caller. Pairs with geometry.QuadIndexFan.
func (b Block) Quad(origin, width, height, normal mgl32.Vec3) [4]geometry.Vertex {
	return geometry.Quad(origin, width, height, normal, FaceColor(FaceForNormal(normal)))
}

// BlockFace identifies a face of a block.
type BlockFace int

const (
	FaceNorth  BlockFace = iota // +X
	FaceSouth                   // -X
	FaceTop                     // +Y
	FaceBottom                  // -Y
	FaceEast                    // +Z
	FaceWest                    // -Z
)

// FaceColor returns the flat color for a block face.
func FaceColor(face BlockFace) mgl32.Vec3 {
	switch face {
	case FaceNorth:
		return mgl32.Vec3{0.60, 0.20, 0.15}
	case FaceSouth:
		return mgl32.Vec3{0.50, 0.16, 0.12}
	case FaceTop:
		return mgl32.Vec3{0.70, 0.26, 0.18}
	case FaceBottom:
		return mgl32.Vec3{0.35, 0.10, 0.08}
	case FaceEast:
		return mgl32.Vec3{0.55, 0.18, 0.13}
	case FaceWest:
		return mgl32.Vec3{0.45, 0.14, 0.10}
	default:
		return mgl32.Vec3{0.4, 0.0, 0.0}
	}
}

// FaceForNormal maps an axis-aligned normal to the face it points out of.
func FaceForNormal(n mgl32.Vec3) BlockFace {
	switch {
	case n.X() > 0:
		return FaceNorth
	case n.X() < 0:
		return FaceSouth
	case n.Y() > 0:
		return FaceTop
	case n.Y() < 0:
		return FaceBottom
	case n.Z() > 0:
		return FaceEast
	default:
		return FaceWest
	}
}
