package player

import (
	"math"
	"testing"
)

func TestHandleMouseMovementFirstSampleOnlyPrimes(t *testing.T) {
	p := NewPlayer()
	yaw, pitch := p.CamYaw, p.CamPitch

	p.HandleMouseMovement(nil, 400, 300)

	if p.CamYaw != yaw || p.CamPitch != pitch {
		t.Fatal("first mouse sample must not rotate the camera")
	}
	if p.FirstMouse {
		t.Fatal("first sample should clear FirstMouse")
	}
}

func TestHandleMouseMovementClampsPitch(t *testing.T) {
	p := NewPlayer()
	p.HandleMouseMovement(nil, 0, 0)

	// Drag far downward then far upward.
	p.HandleMouseMovement(nil, 0, 100000)
	if p.CamPitch != -89 {
		t.Fatalf("got pitch %v, want -89", p.CamPitch)
	}
	p.HandleMouseMovement(nil, 0, -100000)
	if p.CamPitch != 89 {
		t.Fatalf("got pitch %v, want 89", p.CamPitch)
	}
}

func TestHandleMouseMovementIgnoredWhilePaused(t *testing.T) {
	p := NewPlayer()
	p.HandleMouseMovement(nil, 0, 0)
	yaw := p.CamYaw

	p.Paused = true
	p.HandleMouseMovement(nil, 500, 0)

	if p.CamYaw != yaw {
		t.Fatal("paused player rotated the camera")
	}
}

func TestGetFrontVectorNormalized(t *testing.T) {
	p := NewPlayer()
	for _, angles := range [][2]float64{{0, 0}, {45, -20}, {180, 89}, {-90, -89}} {
		p.CamYaw, p.CamPitch = angles[0], angles[1]
		f := p.GetFrontVector()
		if math.Abs(float64(f.Len())-1) > 1e-5 {
			t.Fatalf("yaw %v pitch %v: front length %v", angles[0], angles[1], f.Len())
		}
	}
}
