package player

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	flySpeed     = 12.0
	sprintFactor = 2.5
)

// Player is a free-flying observer. It has no collision; movement is a
// simple fly camera driven by keyboard and mouse.
type Player struct {
	Position mgl32.Vec3

	CamYaw   float64
	CamPitch float64

	FirstMouse bool
	LastMouseX float64
	LastMouseY float64

	Wireframe bool
	Paused    bool
}

// NewPlayer spawns the observer at the default viewpoint.
func NewPlayer() *Player {
	return &Player{
		Position:   mgl32.Vec3{-13, 16, -12},
		CamYaw:     45,
		CamPitch:   -20,
		FirstMouse: true,
	}
}

// HandleMouseMovement applies a mouse delta to yaw and pitch.
func (p *Player) HandleMouseMovement(w *glfw.Window, xpos, ypos float64) {
	if p.Paused {
		return
	}
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := xpos - p.LastMouseX
	yoffset := p.LastMouseY - ypos
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	sensitivity := 0.1
	xoffset *= sensitivity
	yoffset *= sensitivity

	p.CamYaw += xoffset
	p.CamPitch += yoffset

	// Constrain pitch
	if p.CamPitch > 89.0 {
		p.CamPitch = 89.0
	}
	if p.CamPitch < -89.0 {
		p.CamPitch = -89.0
	}
}

// Update moves the player according to held keys.
func (p *Player) Update(dt float64, w *glfw.Window) {
	if p.Paused {
		return
	}

	speed := float32(flySpeed * dt)
	if w.GetKey(glfw.KeyLeftControl) == glfw.Press {
		speed *= sprintFactor
	}

	front := p.GetFrontVector()
	// Horizontal movement stays level regardless of pitch
	flat := mgl32.Vec3{front.X(), 0, front.Z()}
	if flat.Len() > 0 {
		flat = flat.Normalize()
	}
	right := flat.Cross(mgl32.Vec3{0, 1, 0})

	if w.GetKey(glfw.KeyW) == glfw.Press {
		p.Position = p.Position.Add(flat.Mul(speed))
	}
	if w.GetKey(glfw.KeyS) == glfw.Press {
		p.Position = p.Position.Sub(flat.Mul(speed))
	}
	if w.GetKey(glfw.KeyD) == glfw.Press {
		p.Position = p.Position.Add(right.Mul(speed))
	}
	if w.GetKey(glfw.KeyA) == glfw.Press {
		p.Position = p.Position.Sub(right.Mul(speed))
	}
	if w.GetKey(glfw.KeySpace) == glfw.Press {
		p.Position = p.Position.Add(mgl32.Vec3{0, speed, 0})
	}
	if w.GetKey(glfw.KeyLeftShift) == glfw.Press {
		p.Position = p.Position.Sub(mgl32.Vec3{0, speed, 0})
	}
}

// GetFrontVector returns the normalized look direction.
func (p *Player) GetFrontVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	pt := mgl32.DegToRad(float32(p.CamPitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// GetViewMatrix returns the camera view matrix.
func (p *Player) GetViewMatrix() mgl32.Mat4 {
	front := p.GetFrontVector()
	target := p.Position.Add(front)
	return mgl32.LookAtV(p.Position, target, mgl32.Vec3{0, 1, 0})
}
