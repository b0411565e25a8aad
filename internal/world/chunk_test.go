package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInsertBlockFirstWriteWins(t *testing.T) {
	c := NewChunk(ChunkPos{})
	c.InsertBlock(NewBlock(1), 3, 4, 5)
	c.InsertBlock(NewBlock(2), 3, 4, 5)

	b, ok := c.BlockAt(3, 4, 5)
	if !ok {
		t.Fatal("slot unexpectedly empty")
	}
	if got, want := b.ID, uint32(1); got != want {
		t.Fatalf("got block id %d, want %d", got, want)
	}
}

func TestInsertBlockOutOfRangeIgnored(t *testing.T) {
	c := NewChunk(ChunkPos{})
	coords := [][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{ChunkSize, 0, 0}, {0, ChunkSize, 0}, {0, 0, ChunkSize},
	}
	for _, xyz := range coords {
		c.InsertBlock(NewBlock(1), xyz[0], xyz[1], xyz[2])
		c.RemoveBlock(xyz[0], xyz[1], xyz[2])
		if c.BlockActive(xyz[0], xyz[1], xyz[2]) {
			t.Fatalf("out-of-range %v reported active", xyz)
		}
		if _, ok := c.BlockAt(xyz[0], xyz[1], xyz[2]); ok {
			t.Fatalf("out-of-range %v reported occupied", xyz)
		}
	}
}

func TestRemoveBlock(t *testing.T) {
	c := NewChunk(ChunkPos{})
	c.InsertBlock(NewBlock(7), 1, 2, 3)
	c.RemoveBlock(1, 2, 3)

	if _, ok := c.BlockAt(1, 2, 3); ok {
		t.Fatal("slot still occupied after RemoveBlock")
	}
	// Removing an already empty slot is a no-op.
	c.RemoveBlock(1, 2, 3)

	// The freed slot accepts a new block.
	c.InsertBlock(NewBlock(9), 1, 2, 3)
	b, _ := c.BlockAt(1, 2, 3)
	if got, want := b.ID, uint32(9); got != want {
		t.Fatalf("got block id %d, want %d", got, want)
	}
}

func TestBlockIndexDistinct(t *testing.T) {
	seen := make(map[int]struct{}, ChunkVolume)
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				idx := BlockIndex(x, y, z)
				if idx < 0 || idx >= ChunkVolume {
					t.Fatalf("index %d out of bounds for (%d,%d,%d)", idx, x, y, z)
				}
				if _, dup := seen[idx]; dup {
					t.Fatalf("index collision at (%d,%d,%d)", x, y, z)
				}
				seen[idx] = struct{}{}
			}
		}
	}
}

func TestWorldOrigin(t *testing.T) {
	got := ChunkPos{X: 2, Y: -1, Z: 0}.WorldOrigin()
	want := mgl32.Vec3{32, -16, 0}
	if got != want {
		t.Fatalf("got origin %v, want %v", got, want)
	}
}
