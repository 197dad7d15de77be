// Package particle implements the ambient particle network drawn behind the
// landing scene: free-floating dots that bounce inside the surface and link to
// each other, and to the pointer, with lines that fade out with distance.
//
// The simulation runs independently of scroll progress. It is driven by a
// FrameScheduler, receives resize and pointer-move notifications from Events,
// and draws onto a Surface.
package particle

// State is the lifecycle state of a Network.
//
//	StateUninitialized --Start--> StateRunning --Stop--> StateTornDown
//
// Stop from StateUninitialized also moves to StateTornDown.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTornDown:
		return "tornDown"
	default:
		return "unknown"
	}
}

// Particle is a single dot. Velocity is expressed in pixels per frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
}

// step integrates one frame and reflects the velocity at the surface bounds.
//
// Reflection only flips a component that still points outward, so a particle
// left outside the bounds by a shrinking surface always heads back in instead
// of oscillating at the edge.
func (p *Particle) step(width, height float64) {
	p.X += p.VX
	p.Y += p.VY

	if (p.X < 0 && p.VX < 0) || (p.X > width && p.VX > 0) {
		p.VX = -p.VX
	}
	if (p.Y < 0 && p.VY < 0) || (p.Y > height && p.VY > 0) {
		p.VY = -p.VY
	}
}

// ResizeEvent carries the new surface size in pixels.
type ResizeEvent struct {
	Width, Height int
}

// PointerMoveEvent carries the pointer position in surface pixels.
type PointerMoveEvent struct {
	X, Y float64
}
