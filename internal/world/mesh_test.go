package world

import (
	"testing"

	"voxelview/internal/geometry"
)

type fakeBuffers struct {
	dev      *fakeDevice
	released bool
}

func (b *fakeBuffers) Draw() {}

func (b *fakeBuffers) Release() {
	b.released = true
	b.dev.releases++
}

// fakeDevice records uploads so tests can inspect geometry without a GL
// context.
type fakeDevice struct {
	uploads  int
	releases int

	lastVertices []geometry.Vertex
	lastIndices  []uint32
}

func (d *fakeDevice) Upload(vertices []geometry.Vertex, indices []uint32) MeshBuffers {
	d.uploads++
	d.lastVertices = vertices
	d.lastIndices = indices
	return &fakeBuffers{dev: d}
}

func TestGreedyMeshSingleBlock(t *testing.T) {
	dev := &fakeDevice{}
	c := NewChunk(ChunkPos{})
	c.InsertBlock(NewBlock(1), 0, 0, 0)

	c.GreedyMesh(dev)

	if got, want := len(dev.lastVertices), 24; got != want {
		t.Fatalf("single block: got %d vertices, want %d", got, want)
	}
	if got, want := len(dev.lastIndices), 36; got != want {
		t.Fatalf("single block: got %d indices, want %d", got, want)
	}
	if c.Mesh() == nil {
		t.Fatal("single block: mesh not cached")
	}
	if got, want := c.Mesh().NumElements, int32(36); got != want {
		t.Fatalf("single block: got %d elements, want %d", got, want)
	}
	if !c.Active() {
		t.Fatal("single block: chunk not marked active after meshing")
	}

	// Both faces of each sweep axis carry the positive axis normal.
	perAxis := map[int]int{}
	for i := 0; i < len(dev.lastVertices); i += 4 {
		n := dev.lastVertices[i].Normal
		switch {
		case n.X() == 1 && n.Y() == 0 && n.Z() == 0:
			perAxis[0]++
		case n.X() == 0 && n.Y() == 1 && n.Z() == 0:
			perAxis[1]++
		case n.X() == 0 && n.Y() == 0 && n.Z() == 1:
			perAxis[2]++
		default:
			t.Fatalf("quad %d: unexpected normal %v", i/4, n)
		}
	}
	for axis := 0; axis < 3; axis++ {
		if perAxis[axis] != 2 {
			t.Fatalf("axis %d: got %d quads, want 2", axis, perAxis[axis])
		}
	}
}

func TestGreedyMeshTwoBlocksTouching(t *testing.T) {
	dev := &fakeDevice{}
	c := NewChunk(ChunkPos{})
	c.InsertBlock(NewBlock(1), 0, 0, 0)
	c.InsertBlock(NewBlock(1), 1, 0, 0)

	c.GreedyMesh(dev)

	// The 2x1x1 cuboid still merges into six quads.
	if got, want := len(dev.lastVertices), 24; got != want {
		t.Fatalf("touching blocks: got %d vertices, want %d", got, want)
	}
}

func TestGreedyMeshTwoBlocksSeparated(t *testing.T) {
	dev := &fakeDevice{}
	c := NewChunk(ChunkPos{})
	c.InsertBlock(NewBlock(1), 0, 0, 0)
	c.InsertBlock(NewBlock(1), 2, 0, 0)

	c.GreedyMesh(dev)

	// Two isolated cubes, 12 quads total.
	if got, want := len(dev.lastVertices), 48; got != want {
		t.Fatalf("separated blocks: got %d vertices, want %d", got, want)
	}
	if got, want := len(dev.lastIndices), 72; got != want {
		t.Fatalf("separated blocks: got %d indices, want %d", got, want)
	}
}

func TestGreedyMeshFullChunk(t *testing.T) {
	dev := &fakeDevice{}
	c := NewChunk(ChunkPos{})
	fillChunk(c)

	c.GreedyMesh(dev)

	// A solid chunk merges every boundary plane to one 16x16 quad.
	if got, want := len(dev.lastVertices), 24; got != want {
		t.Fatalf("full chunk: got %d vertices, want %d", got, want)
	}
	if got, want := len(dev.lastIndices), 36; got != want {
		t.Fatalf("full chunk: got %d indices, want %d", got, want)
	}
}

func TestGreedyMeshEmptyChunk(t *testing.T) {
	dev := &fakeDevice{}
	c := NewChunk(ChunkPos{})

	c.GreedyMesh(dev)

	if dev.uploads != 0 {
		t.Fatalf("empty chunk: got %d uploads, want 0", dev.uploads)
	}
	if c.Mesh() != nil {
		t.Fatal("empty chunk: expected nil mesh")
	}
	if !c.Active() {
		t.Fatal("empty chunk: chunk must be active even without geometry")
	}
}

func TestGreedyMeshChunkSeamsPreserved(t *testing.T) {
	// Adjacent solid chunks mesh independently; each keeps the face on the
	// shared boundary since neighbors are never consulted.
	dev := &fakeDevice{}

	left := NewChunk(ChunkPos{X: 0})
	fillChunk(left)
	left.GreedyMesh(dev)
	leftSeam := countVerticesAtX(dev.lastVertices, float32(ChunkSize))

	right := NewChunk(ChunkPos{X: 1})
	fillChunk(right)
	right.GreedyMesh(dev)
	rightSeam := countVerticesAtX(dev.lastVertices, float32(ChunkSize))

	if leftSeam == 0 {
		t.Fatal("left chunk: no face on the shared boundary plane")
	}
	if rightSeam == 0 {
		t.Fatal("right chunk: no face on the shared boundary plane")
	}
}

func TestGreedyMeshRemeshReleasesOldBuffers(t *testing.T) {
	dev := &fakeDevice{}
	c := NewChunk(ChunkPos{})
	c.InsertBlock(NewBlock(1), 0, 0, 0)

	c.GreedyMesh(dev)
	first := c.Mesh().Buffers.(*fakeBuffers)

	c.GreedyMesh(dev)
	if !first.released {
		t.Fatal("remesh: old buffers not released")
	}
	if dev.uploads != 2 {
		t.Fatalf("remesh: got %d uploads, want 2", dev.uploads)
	}

	// Removing the only block clears the mesh on the next pass.
	c.RemoveBlock(0, 0, 0)
	c.GreedyMesh(dev)
	if c.Mesh() != nil {
		t.Fatal("remesh: expected nil mesh after block removal")
	}
	if dev.releases != 2 {
		t.Fatalf("remesh: got %d releases, want 2", dev.releases)
	}
}

func TestGreedyMeshSurfaceRowMerges(t *testing.T) {
	dev := &fakeDevice{}
	c := NewChunk(ChunkPos{})
	// One full layer at y=0.
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			c.InsertBlock(NewBlock(1), x, 0, z)
		}
	}

	c.GreedyMesh(dev)

	// Slab: top and bottom merge to one quad each; each side wall is a
	// single 16x1 quad. Six quads total.
	if got, want := len(dev.lastVertices), 24; got != want {
		t.Fatalf("slab: got %d vertices, want %d", got, want)
	}
}

func fillChunk(c *Chunk) {
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				c.InsertBlock(NewBlock(1), x, y, z)
			}
		}
	}
}

func countVerticesAtX(vertices []geometry.Vertex, x float32) int {
	n := 0
	for _, v := range vertices {
		if v.Position.X() == x {
			n++
		}
	}
	return n
}

func BenchmarkGreedyMeshFullChunk(b *testing.B) {
	dev := &fakeDevice{}
	c := NewChunk(ChunkPos{})
	fillChunk(c)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GreedyMesh(dev)
	}
}
