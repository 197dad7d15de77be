package particle

import (
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gonewx/cinescroll/pkg/config"
)

// Network is the ambient particle network.
//
// All methods must be called from the game loop goroutine.
type Network struct {
	cfg       config.NetworkConfig
	surface   Surface
	theme     *config.Theme
	events    *Events
	scheduler FrameScheduler
	pointer   *PointerState

	rng       *rand.Rand
	particles []Particle
	width     float64
	height    float64

	state        State
	frame        FrameHandle
	unsubResize  func()
	unsubPointer func()
	framesDrawn  int
}

// NewNetwork creates a network in StateUninitialized. Nothing is allocated or
// subscribed until Start.
//
// surface may be nil (no drawing target available); Start then does nothing.
func NewNetwork(cfg config.NetworkConfig, surface Surface, theme *config.Theme, events *Events, scheduler FrameScheduler) *Network {
	return &Network{
		cfg:       cfg,
		surface:   surface,
		theme:     theme,
		events:    events,
		scheduler: scheduler,
		pointer:   NewPointerState(),
	}
}

// State returns the lifecycle state.
func (n *Network) State() State {
	return n.state
}

// Particles returns a copy of the current particles.
func (n *Network) Particles() []Particle {
	out := make([]Particle, len(n.particles))
	copy(out, n.particles)
	return out
}

// Pointer returns the last pointer position seen by the network.
func (n *Network) Pointer() (x, y float64) {
	return n.pointer.Position()
}

// FramesDrawn returns how many frames have been drawn since Start.
func (n *Network) FramesDrawn() int {
	return n.framesDrawn
}

// Start allocates the particles, subscribes to resize and pointer-move events
// and requests the first frame.
//
// Start is a no-op unless the network is uninitialized. Without a surface it
// returns silently and the network stays uninitialized.
func (n *Network) Start() {
	if n.state != StateUninitialized {
		return
	}
	if n.surface == nil || n.scheduler == nil {
		log.Printf("[ParticleNetwork] no drawing surface, network disabled")
		return
	}

	w, h := n.surface.Size()
	n.width, n.height = float64(w), float64(h)

	seed := n.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	n.rng = rand.New(rand.NewSource(seed))

	n.particles = make([]Particle, n.cfg.Count)
	for i := range n.particles {
		n.particles[i] = Particle{
			X:  n.rng.Float64() * n.width,
			Y:  n.rng.Float64() * n.height,
			VX: (n.rng.Float64() - 0.5) * n.cfg.Speed,
			VY: (n.rng.Float64() - 0.5) * n.cfg.Speed,
		}
	}

	if n.events != nil {
		n.unsubResize = n.events.Resize.Subscribe(n.onResize)
		n.unsubPointer = n.events.PointerMove.Subscribe(n.onPointerMove)
	}

	n.state = StateRunning
	n.frame = n.scheduler.RequestFrame(n.tick)

	log.Printf("[ParticleNetwork] started: %d particles on %dx%d", len(n.particles), w, h)
}

// Stop cancels the pending frame and removes both listeners.
// It is safe to call in any state and any number of times.
func (n *Network) Stop() {
	if n.frame != 0 && n.scheduler != nil {
		n.scheduler.CancelFrame(n.frame)
		n.frame = 0
	}
	if n.unsubResize != nil {
		n.unsubResize()
		n.unsubResize = nil
	}
	if n.unsubPointer != nil {
		n.unsubPointer()
		n.unsubPointer = nil
	}
	if n.state != StateTornDown {
		log.Printf("[ParticleNetwork] stopped after %d frames", n.framesDrawn)
	}
	n.state = StateTornDown
}

func (n *Network) onResize(ev ResizeEvent) {
	n.surface.Resize(ev.Width, ev.Height)
	w, h := n.surface.Size()
	n.width, n.height = float64(w), float64(h)
}

func (n *Network) onPointerMove(ev PointerMoveEvent) {
	n.pointer.Set(ev.X, ev.Y)
}

// tick advances and draws one frame, then requests the next one.
func (n *Network) tick() {
	n.frame = 0
	if n.state != StateRunning {
		return
	}

	// the token is resolved every frame so theme changes apply immediately
	base := n.theme.Color(n.cfg.ColorToken, n.cfg.FallbackColor)

	n.surface.Clear()

	for i := range n.particles {
		n.particles[i].step(n.width, n.height)
	}

	dot := withAlpha(base, n.cfg.ParticleAlpha)
	for _, p := range n.particles {
		n.surface.FillCircle(p.X, p.Y, n.cfg.ParticleRadius, dot)
	}

	px, py := n.pointer.Position()
	for i := range n.particles {
		a := n.particles[i]
		for j := i + 1; j < len(n.particles); j++ {
			b := n.particles[j]
			if alpha, ok := edgeAlpha(a.X, a.Y, b.X, b.Y, n.cfg.ConnectionDistance); ok {
				n.surface.StrokeLine(a.X, a.Y, b.X, b.Y, n.cfg.LineWidth, withAlpha(base, alpha))
			}
		}
		if alpha, ok := edgeAlpha(a.X, a.Y, px, py, n.cfg.PointerDistance); ok {
			n.surface.StrokeLine(a.X, a.Y, px, py, n.cfg.PointerLineWidth, withAlpha(base, alpha))
		}
	}

	n.framesDrawn++
	n.frame = n.scheduler.RequestFrame(n.tick)
}

// edgeAlpha returns the opacity of a connection between two points:
// 1 - d/threshold for d < threshold, and ok=false otherwise.
func edgeAlpha(x1, y1, x2, y2, threshold float64) (float64, bool) {
	d := math.Hypot(x1-x2, y1-y2)
	if d >= threshold {
		return 0, false
	}
	return 1 - d/threshold, true
}

func withAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	return n
}
