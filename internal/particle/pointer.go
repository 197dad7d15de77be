package particle

// PointerOffscreen is the initial pointer coordinate, far enough away that no
// particle connects to it before the first pointer-move event.
const PointerOffscreen = -1000.0

// PointerState holds the last known pointer position.
//
// It has exactly one writer, the pointer-move handler registered by
// Network.Start, and one reader, the frame tick. Both run on the game loop
// goroutine, so no locking is needed; the latest write wins.
type PointerState struct {
	x, y float64
}

// NewPointerState returns a pointer parked off-screen.
func NewPointerState() *PointerState {
	return &PointerState{x: PointerOffscreen, y: PointerOffscreen}
}

// Set records a new pointer position.
func (p *PointerState) Set(x, y float64) {
	p.x, p.y = x, y
}

// Position returns the last recorded position.
func (p *PointerState) Position() (x, y float64) {
	return p.x, p.y
}
