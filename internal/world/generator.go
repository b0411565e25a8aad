package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenerateFlat registers a square region of fully populated chunks around
// the origin: (2*radius+1)² chunks at y=0, every slot holding an active
// block. Chunks are created once and never evicted.
func GenerateFlat(m *ChunkManager, radius int) {
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			c := NewChunk(ChunkPos{X: x, Y: 0, Z: z})
			for bx := 0; bx < ChunkSize; bx++ {
				for by := 0; by < ChunkSize; by++ {
					for bz := 0; bz < ChunkSize; bz++ {
						c.InsertBlock(NewBlock(1), bx, by, bz)
					}
				}
			}
			m.AddChunk(c)
		}
	}
}

// Generator derives terrain heights from simplex noise.
type Generator struct {
	noise opensimplex.Noise32

	scale      float32
	baseHeight int
	amp        float32
}

// NewGenerator creates a generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		noise:      opensimplex.New32(seed),
		scale:      1.0 / 64.0,
		baseHeight: 12,
		amp:        10,
	}
}

// HeightAt computes the surface height (in blocks) at world column x,z.
// Never negative.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	n := g.noise.Eval2(float32(worldX)*g.scale, float32(worldZ)*g.scale)
	h := float32(g.baseHeight) + n*g.amp
	if h < 1 {
		h = 1
	}
	return int(h)
}

// PopulateChunk fills a chunk column-by-column up to the noise heightmap.
func (g *Generator) PopulateChunk(c *Chunk) {
	pos := c.Position()
	baseY := pos.Y * ChunkSize
	for bx := 0; bx < ChunkSize; bx++ {
		for bz := 0; bz < ChunkSize; bz++ {
			h := g.HeightAt(pos.X*ChunkSize+bx, pos.Z*ChunkSize+bz)
			top := h - baseY
			if top > ChunkSize {
				top = ChunkSize
			}
			for by := 0; by < top; by++ {
				c.InsertBlock(NewBlock(1), bx, by, bz)
			}
		}
	}
}

// GenerateTerrain registers noise-shaped terrain chunks in a square region
// around the origin, stacking chunks vertically up to the column's surface
// height.
func GenerateTerrain(m *ChunkManager, radius int, g *Generator) {
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			maxY := columnMaxChunkY(g, x, z)
			for y := 0; y <= maxY; y++ {
				c := NewChunk(ChunkPos{X: x, Y: y, Z: z})
				g.PopulateChunk(c)
				m.AddChunk(c)
			}
		}
	}
}

// columnMaxChunkY returns the highest chunk Y a column needs, sampled over
// the column's corners and center.
func columnMaxChunkY(g *Generator, chunkX, chunkZ int) int {
	x0 := chunkX * ChunkSize
	z0 := chunkZ * ChunkSize
	h := g.HeightAt(x0+ChunkSize/2, z0+ChunkSize/2)
	for _, p := range [4][2]int{
		{x0, z0},
		{x0 + ChunkSize - 1, z0},
		{x0, z0 + ChunkSize - 1},
		{x0 + ChunkSize - 1, z0 + ChunkSize - 1},
	} {
		if hh := g.HeightAt(p[0], p[1]); hh > h {
			h = hh
		}
	}
	maxY := (h - 1) / ChunkSize
	if maxY < 0 {
		maxY = 0
	}
	return maxY
}
