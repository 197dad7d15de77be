package particle

import (
	"image/color"
	"math"
	"testing"

	"github.com/gonewx/cinescroll/pkg/config"
)

type circleCall struct {
	x, y, r float64
	clr     color.NRGBA
}

type lineCall struct {
	x1, y1, x2, y2, width float64
	clr                   color.NRGBA
}

// recordingSurface records every draw call instead of rasterizing
type recordingSurface struct {
	width, height int
	clears        int
	circles       []circleCall
	lines         []lineCall
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{width: w, height: h}
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }

func (s *recordingSurface) Resize(w, h int) { s.width, s.height = w, h }

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
	s.lines = s.lines[:0]
}

func (s *recordingSurface) FillCircle(x, y, r float64, clr color.Color) {
	s.circles = append(s.circles, circleCall{x, y, r, color.NRGBAModel.Convert(clr).(color.NRGBA)})
}

func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	s.lines = append(s.lines, lineCall{x1, y1, x2, y2, width, color.NRGBAModel.Convert(clr).(color.NRGBA)})
}

func (s *recordingSurface) draws() int {
	return s.clears + len(s.circles) + len(s.lines)
}

func testNetworkConfig() config.NetworkConfig {
	cfg := config.DefaultNetworkConfig()
	cfg.Seed = 42
	return cfg
}

func newTestNetwork(cfg config.NetworkConfig, surface Surface) (*Network, *Events, *FrameQueue, *config.Theme) {
	events := NewEvents()
	frames := NewFrameQueue()
	theme := config.NewTheme(map[string]string{"primary": "#00f2ff"})
	return NewNetwork(cfg, surface, theme, events, frames), events, frames, theme
}

// TestNetwork_StartAllocatesParticles 启动后粒子位于画布内且速度在 [-0.4, 0.4)
func TestNetwork_StartAllocatesParticles(t *testing.T) {
	surface := newRecordingSurface(800, 600)
	n, events, frames, _ := newTestNetwork(testNetworkConfig(), surface)

	n.Start()

	if n.State() != StateRunning {
		t.Fatalf("State = %v, want running", n.State())
	}
	particles := n.Particles()
	if len(particles) != 80 {
		t.Fatalf("len(particles) = %d, want 80", len(particles))
	}
	for i, p := range particles {
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("粒子 %d 位置越界: (%v, %v)", i, p.X, p.Y)
		}
		if p.VX < -0.4 || p.VX >= 0.4 || p.VY < -0.4 || p.VY >= 0.4 {
			t.Errorf("粒子 %d 速度越界: (%v, %v)", i, p.VX, p.VY)
		}
	}
	if events.ListenerCount() != 2 {
		t.Errorf("ListenerCount = %d, want 2", events.ListenerCount())
	}
	if frames.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", frames.Pending())
	}
	if x, y := n.Pointer(); x != PointerOffscreen || y != PointerOffscreen {
		t.Errorf("初始指针 = (%v, %v), want (-1000, -1000)", x, y)
	}
}

// TestNetwork_TickDraws 每帧清屏、绘制 80 个粒子并重新请求下一帧
func TestNetwork_TickDraws(t *testing.T) {
	surface := newRecordingSurface(800, 600)
	n, _, frames, _ := newTestNetwork(testNetworkConfig(), surface)
	n.Start()

	frames.Tick()

	if surface.clears != 1 {
		t.Errorf("clears = %d, want 1", surface.clears)
	}
	if len(surface.circles) != 80 {
		t.Errorf("circles = %d, want 80", len(surface.circles))
	}
	for _, c := range surface.circles {
		if c.r != 2.5 {
			t.Fatalf("粒子半径 = %v, want 2.5", c.r)
		}
		if c.clr.A != 204 {
			t.Fatalf("粒子 alpha = %d, want 204", c.clr.A)
		}
	}
	if frames.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", frames.Pending())
	}
	if n.FramesDrawn() != 1 {
		t.Errorf("FramesDrawn = %d, want 1", n.FramesDrawn())
	}
}

// TestNetwork_TeardownScenario 80 个粒子运行后拆除：不再绘制，监听器全部移除
func TestNetwork_TeardownScenario(t *testing.T) {
	surface := newRecordingSurface(800, 600)
	n, events, frames, _ := newTestNetwork(testNetworkConfig(), surface)
	n.Start()
	frames.Tick()
	frames.Tick()

	n.Stop()

	drawsBefore := surface.draws()
	clearsBefore := surface.clears
	frames.Tick()
	frames.Tick()
	if surface.draws() != drawsBefore || surface.clears != clearsBefore {
		t.Error("拆除后仍有绘制")
	}
	if frames.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", frames.Pending())
	}
	if events.ListenerCount() != 0 {
		t.Errorf("ListenerCount = %d, want 0", events.ListenerCount())
	}

	events.PointerMove.Emit(PointerMoveEvent{X: 10, Y: 20})
	if x, y := n.Pointer(); x != PointerOffscreen || y != PointerOffscreen {
		t.Errorf("拆除后指针被修改为 (%v, %v)", x, y)
	}
	events.Resize.Emit(ResizeEvent{Width: 100, Height: 100})
	if w, h := surface.Size(); w != 800 || h != 600 {
		t.Errorf("拆除后画布被调整为 %dx%d", w, h)
	}

	// 幂等
	n.Stop()
	n.Stop()
	if n.State() != StateTornDown {
		t.Errorf("State = %v, want tornDown", n.State())
	}
}

// TestNetwork_StopBeforeStart 未启动时拆除同样安全，之后不能再启动
func TestNetwork_StopBeforeStart(t *testing.T) {
	surface := newRecordingSurface(800, 600)
	n, events, frames, _ := newTestNetwork(testNetworkConfig(), surface)

	n.Stop()
	n.Start()

	if n.State() != StateTornDown {
		t.Errorf("State = %v, want tornDown", n.State())
	}
	if events.ListenerCount() != 0 || frames.Pending() != 0 {
		t.Error("拆除后启动不应产生任何订阅或帧请求")
	}
}

// TestNetwork_NilSurface 没有画布时静默放弃
func TestNetwork_NilSurface(t *testing.T) {
	n, events, frames, _ := newTestNetwork(testNetworkConfig(), nil)

	n.Start()

	if n.State() != StateUninitialized {
		t.Errorf("State = %v, want uninitialized", n.State())
	}
	if len(n.Particles()) != 0 || events.ListenerCount() != 0 || frames.Pending() != 0 {
		t.Error("没有画布时不应分配粒子、订阅事件或请求帧")
	}
	n.Stop()
}

// TestNetwork_PointerAndResize 事件更新指针与画布尺寸
func TestNetwork_PointerAndResize(t *testing.T) {
	surface := newRecordingSurface(800, 600)
	n, events, _, _ := newTestNetwork(testNetworkConfig(), surface)
	n.Start()

	events.PointerMove.Emit(PointerMoveEvent{X: 1, Y: 2})
	events.PointerMove.Emit(PointerMoveEvent{X: 30, Y: 40})
	if x, y := n.Pointer(); x != 30 || y != 40 {
		t.Errorf("Pointer = (%v, %v), want (30, 40)", x, y)
	}

	events.Resize.Emit(ResizeEvent{Width: 1024, Height: 768})
	if w, h := surface.Size(); w != 1024 || h != 768 {
		t.Errorf("Size = %dx%d, want 1024x768", w, h)
	}
	if n.width != 1024 || n.height != 768 {
		t.Errorf("网络边界 = %vx%v, want 1024x768", n.width, n.height)
	}
}

// TestParticle_Reflection 越界时速度反向，越界且已朝内时保持
func TestParticle_Reflection(t *testing.T) {
	tests := []struct {
		name   string
		p      Particle
		wantVX float64
		wantVY float64
	}{
		{"左边界", Particle{X: 0.1, Y: 50, VX: -0.3, VY: 0}, 0.3, 0},
		{"右边界", Particle{X: 99.9, Y: 50, VX: 0.3, VY: 0}, -0.3, 0},
		{"上边界", Particle{X: 50, Y: 0.1, VX: 0, VY: -0.3}, 0, 0.3},
		{"下边界", Particle{X: 50, Y: 99.9, VX: 0, VY: 0.3}, 0, -0.3},
		{"内部", Particle{X: 50, Y: 50, VX: 0.3, VY: -0.2}, 0.3, -0.2},
		{"界外已朝内", Particle{X: 150, Y: 50, VX: -0.3, VY: 0}, -0.3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			p.step(100, 100)
			if p.VX != tt.wantVX || p.VY != tt.wantVY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", p.VX, p.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

// TestParticle_StaysNearBounds 长时间运行后粒子不会逃出画布
func TestParticle_StaysNearBounds(t *testing.T) {
	p := Particle{X: 10, Y: 10, VX: 0.37, VY: -0.29}
	for i := 0; i < 100000; i++ {
		p.step(100, 80)
		if p.X < -0.4 || p.X > 100.4 || p.Y < -0.4 || p.Y > 80.4 {
			t.Fatalf("frame %d: 粒子逃出画布 (%v, %v)", i, p.X, p.Y)
		}
	}
}

// TestEdgeAlpha 连线透明度随距离线性衰减
func TestEdgeAlpha(t *testing.T) {
	tests := []struct {
		name      string
		d         float64
		threshold float64
		want      float64
		wantOK    bool
	}{
		{"重合", 0, 150, 1, true},
		{"一半", 75, 150, 0.5, true},
		{"恰好阈值", 150, 150, 0, false},
		{"超出", 151, 150, 0, false},
		{"指针一半", 100, 200, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := edgeAlpha(0, 0, tt.d, 0, tt.threshold)
			if ok != tt.wantOK || math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("edgeAlpha(%v) = %v, %v; want %v, %v", tt.d, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestNetwork_Connections 两个粒子与指针之间的连线
func TestNetwork_Connections(t *testing.T) {
	cfg := testNetworkConfig()
	cfg.Count = 2
	surface := newRecordingSurface(1000, 1000)
	n, events, frames, _ := newTestNetwork(cfg, surface)
	n.Start()

	n.particles[0] = Particle{X: 100, Y: 100}
	n.particles[1] = Particle{X: 175, Y: 100}
	events.PointerMove.Emit(PointerMoveEvent{X: 100, Y: 200})

	frames.Tick()

	var pair, pointer []lineCall
	for _, l := range surface.lines {
		switch l.width {
		case 1:
			pair = append(pair, l)
		case 1.5:
			pointer = append(pointer, l)
		}
	}

	if len(pair) != 1 {
		t.Fatalf("粒子连线 = %d, want 1", len(pair))
	}
	if pair[0].clr.A != 128 { // 1 - 75/150 = 0.5
		t.Errorf("粒子连线 alpha = %d, want 128", pair[0].clr.A)
	}

	// 粒子0 距指针 100，粒子1 距指针 125
	if len(pointer) != 2 {
		t.Fatalf("指针连线 = %d, want 2", len(pointer))
	}
	if pointer[0].clr.A != 128 {
		t.Errorf("指针连线0 alpha = %d, want 128", pointer[0].clr.A)
	}
	want := uint8(math.Round((1 - 125.0/200) * 255))
	if pointer[1].clr.A != want {
		t.Errorf("指针连线1 alpha = %d, want %d", pointer[1].clr.A, want)
	}
}

// TestNetwork_ThemeColor 每帧读取主题令牌，缺失或无效时使用黑色
func TestNetwork_ThemeColor(t *testing.T) {
	cfg := testNetworkConfig()
	cfg.Count = 1
	surface := newRecordingSurface(100, 100)
	n, _, frames, theme := newTestNetwork(cfg, surface)
	n.Start()
	n.particles[0] = Particle{X: 50, Y: 50}

	tests := []struct {
		name  string
		token string
		want  color.NRGBA
	}{
		{"主题色", "#00f2ff", color.NRGBA{R: 0x00, G: 0xf2, B: 0xff, A: 204}},
		{"修改后立即生效", "#ff0000", color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 204}},
		{"无效令牌", "not-a-color", color.NRGBA{A: 204}},
		{"空令牌", "", color.NRGBA{A: 204}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme.Set("primary", tt.token)
			frames.Tick()
			if len(surface.circles) != 1 {
				t.Fatalf("circles = %d, want 1", len(surface.circles))
			}
			if got := surface.circles[0].clr; got != tt.want {
				t.Errorf("color = %+v, want %+v", got, tt.want)
			}
		})
	}
}
