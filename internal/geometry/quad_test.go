package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestQuadCorners(t *testing.T) {
	origin := mgl32.Vec3{1, 2, 3}
	width := mgl32.Vec3{4, 0, 0}
	height := mgl32.Vec3{0, 0, 2}
	normal := mgl32.Vec3{0, 1, 0}
	color := mgl32.Vec3{0.4, 0, 0}

	q := Quad(origin, width, height, normal, color)

	wantPositions := [4]mgl32.Vec3{
		{1, 2, 3},
		{5, 2, 3},
		{5, 2, 5},
		{1, 2, 5},
	}
	for i, v := range q {
		if v.Position != wantPositions[i] {
			t.Fatalf("corner %d: got %v, want %v", i, v.Position, wantPositions[i])
		}
		if v.Normal != normal {
			t.Fatalf("corner %d: got normal %v, want %v", i, v.Normal, normal)
		}
		if v.Color != color {
			t.Fatalf("corner %d: got color %v, want %v", i, v.Color, color)
		}
	}
}

func TestQuadIndicesOffset(t *testing.T) {
	got := QuadIndices(8)
	want := [6]uint32{8, 11, 10, 10, 9, 8}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFlattenLayout(t *testing.T) {
	vs := []Vertex{
		{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{4, 5, 6}, Normal: mgl32.Vec3{7, 8, 9}},
		{Position: mgl32.Vec3{-1, -2, -3}, Color: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 1, 0}},
	}
	out := Flatten(vs)

	if got, want := len(out), 2*VertexStride; got != want {
		t.Fatalf("got %d floats, want %d", got, want)
	}
	want := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i, f := range want {
		if out[i] != f {
			t.Fatalf("float %d: got %v, want %v", i, out[i], f)
		}
	}
}
