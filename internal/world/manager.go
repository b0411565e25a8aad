package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelview/internal/profiling"
)

// MaxRebuildPerFrame caps how many dirty chunks a single RebuildChunks call
// remeshes. Backpressure against CPU spikes when many chunks go dirty at
// once; the cost is pop-in proportional to queue length over the cap.
const MaxRebuildPerFrame = 2

// ChunkManager owns every loaded chunk, the set of chunks pending a remesh,
// and the set of chunks currently in view. It is single-threaded by design:
// all mutation happens inside the per-frame Update → RebuildChunks chain.
type ChunkManager struct {
	device Device

	chunks  map[ChunkPos]*Chunk
	rebuild map[ChunkPos]struct{}
	render  map[ChunkPos]struct{}

	renderDist  int
	oldChunkPos ChunkPos
}

// NewChunkManager creates a manager streaming within renderDist chunks of
// the observer, uploading meshes through dev.
func NewChunkManager(dev Device, renderDist int) *ChunkManager {
	return &ChunkManager{
		device:  dev,
		chunks:  make(map[ChunkPos]*Chunk),
		rebuild: make(map[ChunkPos]struct{}),
		render:  make(map[ChunkPos]struct{}),

		renderDist: renderDist,
		// Sentinel so the first Update always recomputes the visible set.
		oldChunkPos: ChunkPos{math.MinInt32, math.MinInt32, math.MinInt32},
	}
}

// AddChunk registers a chunk under its position. A position already occupied
// keeps its existing chunk; duplicate registration is silently ignored.
func (m *ChunkManager) AddChunk(c *Chunk) {
	if _, ok := m.chunks[c.Position()]; ok {
		return
	}
	m.chunks[c.Position()] = c
}

// GetChunk returns the chunk at pos, or nil when none is loaded there.
func (m *ChunkManager) GetChunk(pos ChunkPos) *Chunk {
	return m.chunks[pos]
}

// MarkDirty queues a loaded chunk for remeshing. World-edit collaborators
// call this after mutating block content; unknown positions are ignored.
func (m *ChunkManager) MarkDirty(pos ChunkPos) {
	if _, ok := m.chunks[pos]; !ok {
		return
	}
	m.rebuild[pos] = struct{}{}
}

// ObserverChunk converts a world-space position into chunk-grid coordinates.
// Horizontal axes are offset by half a chunk so the streaming window stays
// centered on the observer; the vertical axis snaps to raw chunk boundaries.
// The sign-aware rounding keeps the window symmetric around the origin.
func ObserverChunk(pos mgl32.Vec3) ChunkPos {
	return ChunkPos{
		X: horizontalChunk(pos.X()),
		Y: verticalChunk(pos.Y()),
		Z: horizontalChunk(pos.Z()),
	}
}

func horizontalChunk(p float32) int {
	const s = float64(ChunkSize)
	v := float64(p)
	if v >= 0 {
		return int(math.Floor((v + s/2) / s))
	}
	return int(math.Ceil((v - s/2) / s))
}

func verticalChunk(p float32) int {
	const s = float64(ChunkSize)
	v := float64(p)
	if v >= 0 {
		return int(math.Floor(v / s))
	}
	return int(math.Ceil(v / s))
}

// Update advances streaming state for this frame. The visible set is
// recomputed only when the observer crossed a chunk boundary; afterwards a
// bounded number of dirty chunks is remeshed.
func (m *ChunkManager) Update(observer mgl32.Vec3) {
	defer profiling.Track("world.Update")()

	cp := ObserverChunk(observer)
	if cp != m.oldChunkPos {
		m.refreshVisible(cp)
		m.oldChunkPos = cp
	}
	m.RebuildChunks()
}

// refreshVisible replaces the render set with every loaded chunk inside the
// render-distance cube around center (vertical axis clamped to >= 0) and
// marks loaded-but-meshless chunks dirty.
func (m *ChunkManager) refreshVisible(center ChunkPos) {
	visible := make(map[ChunkPos]struct{})

	minY := center.Y - m.renderDist
	if minY < 0 {
		minY = 0
	}
	for x := center.X - m.renderDist; x <= center.X+m.renderDist; x++ {
		for y := minY; y <= center.Y+m.renderDist; y++ {
			for z := center.Z - m.renderDist; z <= center.Z+m.renderDist; z++ {
				pos := ChunkPos{x, y, z}
				c, ok := m.chunks[pos]
				if !ok {
					continue
				}
				if c.Mesh() == nil {
					m.rebuild[pos] = struct{}{}
				}
				visible[pos] = struct{}{}
			}
		}
	}
	m.render = visible
}

// RebuildChunks drains at most MaxRebuildPerFrame entries from the rebuild
// set, remeshing each. An entry is consumed whether or not meshing produced
// geometry; a meshless chunk is only retried when a later streaming
// transition re-marks it.
func (m *ChunkManager) RebuildChunks() {
	defer profiling.Track("world.RebuildChunks")()

	n := 0
	for pos := range m.rebuild {
		if n == MaxRebuildPerFrame {
			break
		}
		if c, ok := m.chunks[pos]; ok {
			c.GreedyMesh(m.device)
		}
		delete(m.rebuild, pos)
		n++
	}
}

// ChunkDrawInfo is one visible chunk as seen by the draw path.
type ChunkDrawInfo struct {
	Pos  ChunkPos
	Mesh *ChunkMesh // nil when the chunk has no exposed faces
}

// AppendVisible appends draw info for every chunk in the current visible set
// into dst and returns the resulting slice. The draw path skips entries with
// a nil mesh.
func (m *ChunkManager) AppendVisible(dst []ChunkDrawInfo) []ChunkDrawInfo {
	for pos := range m.render {
		c, ok := m.chunks[pos]
		if !ok {
			continue
		}
		dst = append(dst, ChunkDrawInfo{Pos: pos, Mesh: c.Mesh()})
	}
	return dst
}

// Counts reports loaded, visible and rebuild-pending chunk totals for the
// HUD.
func (m *ChunkManager) Counts() (loaded, visible, pending int) {
	return len(m.chunks), len(m.render), len(m.rebuild)
}

// Dispose releases every cached mesh. Called once on shutdown.
func (m *ChunkManager) Dispose() {
	for _, c := range m.chunks {
		if c.mesh != nil && c.mesh.Buffers != nil {
			c.mesh.Buffers.Release()
			c.mesh = nil
		}
	}
}
