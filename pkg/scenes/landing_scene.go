package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/cinescroll/internal/particle"
	"github.com/gonewx/cinescroll/pkg/config"
	"github.com/gonewx/cinescroll/pkg/ecs"
	"github.com/gonewx/cinescroll/pkg/entities"
	"github.com/gonewx/cinescroll/pkg/scroll"
	"github.com/gonewx/cinescroll/pkg/systems"
	"github.com/gonewx/cinescroll/pkg/utils"
)

const (
	// 滚动提示在进度 [0, scrollHintFadeEnd] 内从完全可见线性淡出
	scrollHintFadeEnd = 0.1

	scrollHintFontSize = 14
	scrollHintMargin   = 48
)

var (
	backgroundColor = color.RGBA{R: 0x05, G: 0x05, B: 0x08, A: 0xff}
	scrollHintColor = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
)

// LandingOptions 着陆页场景的运行参数
type LandingOptions struct {
	Width, Height int

	// NetworkEnabled 是否挂载背景粒子网络
	NetworkEnabled bool

	// Debug 在左上角显示进度与镜头状态
	Debug bool
}

// LandingScene 滚动驱动的着陆页英雄区
//
// 每帧按固定顺序：
//
//	输入 -> 视口 -> 原始进度 -> 弹簧平滑 -> 镜头 -> 文字 cue -> 轨道 -> 粒子网络
//
// 平滑后的进度作为普通参数向下传递，场景本身不保存任何时间相关的编排状态。
type LandingScene struct {
	cfg  *config.SceneConfig
	opts LandingOptions

	viewport *scroll.Viewport
	region   scroll.Region
	tracker  *scroll.Tracker
	touch    utils.TouchScroller
	pointer  utils.PointerTracker

	entityManager *ecs.EntityManager
	cameraSystem  *systems.CameraSystem
	textSystem    *systems.CinematicTextSystem
	orbitSystem   *systems.OrbitSystem
	renderSystem  *systems.RenderSystem

	theme   *config.Theme
	events  *particle.Events
	frames  *particle.FrameQueue
	canvas  *particle.Canvas
	network *particle.Network

	hintFace *text.GoTextFace
	hintText string

	closed bool
}

// NewLandingScene 创建着陆页场景
//
// 参数：
//   - cfg: 场景配置（已校验）
//   - opts: 窗口尺寸与开关
//
// 返回：
//   - *LandingScene: 场景实例
//   - error: cue 配置无效或字体加载失败时返回错误
func NewLandingScene(cfg *config.SceneConfig, opts LandingOptions) (*LandingScene, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.WindowWidth, config.WindowHeight
	}

	s := &LandingScene{
		cfg:           cfg,
		opts:          opts,
		viewport:      scroll.NewViewport(0, 0),
		tracker:       scroll.NewTracker(cfg.Scroll.Spring, config.TicksPerSecond),
		entityManager: ecs.NewEntityManager(),
		theme:         config.NewTheme(cfg.Theme),
		events:        particle.NewEvents(),
		frames:        particle.NewFrameQueue(),
		hintText:      "Scroll to explore",
	}
	if utils.IsMobile() {
		s.hintText = "Swipe to explore"
	}

	cameraEntity := entities.NewCameraEntity(s.entityManager, cfg.Camera)
	globeEntity := entities.NewGlobeEntity(s.entityManager, cfg.Globe)
	for i, orbit := range cfg.Orbits {
		if _, err := entities.NewOrbitEntity(s.entityManager, globeEntity, orbit); err != nil {
			return nil, fmt.Errorf("orbit %d: %w", i, err)
		}
	}
	if _, err := entities.NewCueEntities(s.entityManager, cfg.Cues); err != nil {
		return nil, err
	}
	log.Printf("[LandingScene] 创建 %d 个实体 (%d 个 cue, %d 个轨道天体)",
		s.entityManager.EntityCount(), len(cfg.Cues), len(cfg.Orbits))

	s.cameraSystem = systems.NewCameraSystem(s.entityManager, cameraEntity)
	s.textSystem = systems.NewCinematicTextSystem(s.entityManager)
	s.orbitSystem = systems.NewOrbitSystem(s.entityManager)

	renderSystem, err := systems.NewRenderSystem(s.entityManager, cameraEntity, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	s.renderSystem = renderSystem
	s.hintFace = &text.GoTextFace{Source: renderSystem.FontSource(), Size: scrollHintFontSize}

	s.Resize(opts.Width, opts.Height)

	// 初始帧：所有 cue 处于进度 0 的状态
	s.textSystem.Update(0)

	if opts.NetworkEnabled {
		s.startNetwork()
	}

	return s, nil
}

func (s *LandingScene) startNetwork() {
	if !s.cfg.Network.Enabled {
		return
	}
	if s.canvas == nil {
		s.canvas = particle.NewCanvas(s.opts.Width, s.opts.Height)
	} else {
		s.canvas.Resize(s.opts.Width, s.opts.Height)
	}
	s.network = particle.NewNetwork(s.cfg.Network, s.canvas, s.theme, s.events, s.frames)
	s.network.Start()
}

// SetNetworkEnabled 运行中开关背景粒子网络
// 关闭时拆除当前网络；重新开启时以当前窗口尺寸创建新的网络
func (s *LandingScene) SetNetworkEnabled(enabled bool) {
	if s.closed {
		return
	}
	s.opts.NetworkEnabled = enabled
	running := s.network != nil && s.network.State() == particle.StateRunning
	switch {
	case enabled && !running:
		s.startNetwork()
	case !enabled && s.network != nil:
		s.network.Stop()
		s.network = nil
	}
}

// Resize 窗口尺寸变化时重新计算文档布局并通知粒子网络
func (s *LandingScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.opts.Width, s.opts.Height = width, height

	h := float64(height)
	heroHeight := s.cfg.Scroll.HeroViewports * h
	documentHeight := heroHeight + s.cfg.Scroll.TrailingViewports*h

	// 按可滚动范围的比例保持滚动位置，英雄区之后的位置同样保留
	fraction := 0.0
	if maxOffset := s.viewport.MaxOffset(); maxOffset > 0 {
		fraction = s.viewport.Offset() / maxOffset
	}
	s.region = scroll.Region{Top: 0, Height: heroHeight}
	s.viewport.Resize(h, documentHeight)
	s.viewport.ScrollTo(fraction * s.viewport.MaxOffset())

	s.renderSystem.Resize(width, height)
	s.events.Resize.Emit(particle.ResizeEvent{Width: width, Height: height})
}

// Update 读取输入并推进一帧
func (s *LandingScene) Update(deltaTime float64) {
	if s.closed {
		return
	}
	s.handleInput()
	s.Step(deltaTime)
}

func (s *LandingScene) handleInput() {
	steps := utils.ScrollSteps{
		Wheel: s.cfg.Scroll.WheelStep,
		Key:   s.cfg.Scroll.KeyStep,
		Page:  s.viewport.Height() * utils.PageScrollRatio,
	}
	intent := utils.ResolveScroll(utils.PollScrollKeys(), steps)
	intent.Delta += s.touch.Update()
	s.ApplyScroll(intent)

	if x, y, moved := s.pointer.Update(); moved {
		s.events.PointerMove.Emit(particle.PointerMoveEvent{X: float64(x), Y: float64(y)})
	}
}

// ApplyScroll 把滚动意图作用到视口
func (s *LandingScene) ApplyScroll(intent utils.ScrollIntent) {
	switch {
	case intent.ToTop:
		s.viewport.ScrollTo(0)
	case intent.ToBottom:
		s.viewport.ScrollTo(s.viewport.MaxOffset())
	case intent.Delta != 0:
		s.viewport.ScrollBy(intent.Delta)
	}
}

// Step 不读取输入，按当前视口推进一帧
func (s *LandingScene) Step(deltaTime float64) {
	raw := s.region.RawProgress(s.viewport.Offset())
	s.tracker.Update(deltaTime, raw)
	progress := s.tracker.Progress()

	s.cameraSystem.Update(progress)
	s.textSystem.Update(progress)
	s.orbitSystem.Update(deltaTime)

	s.frames.Tick()
}

// Progress 返回平滑后的滚动进度
func (s *LandingScene) Progress() float64 {
	return s.tracker.Progress()
}

// Viewport 返回滚动视口
func (s *LandingScene) Viewport() *scroll.Viewport {
	return s.viewport
}

// EntityManager 返回场景的实体管理器
func (s *LandingScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Network 返回背景粒子网络，未启用时为 nil
func (s *LandingScene) Network() *particle.Network {
	return s.network
}

// Theme 返回场景主题，修改颜色令牌会在下一帧生效
func (s *LandingScene) Theme() *config.Theme {
	return s.theme
}

// ScrollHintOpacity 滚动提示的透明度：进度 0 时为 1，进度 0.1 及以后为 0
func ScrollHintOpacity(progress float64) float64 {
	return utils.MapRange(progress, 0, scrollHintFadeEnd, 1, 0)
}

// Draw 绘制背景网络、3D 英雄区与滚动提示
func (s *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if s.canvas != nil && s.network != nil && s.network.State() == particle.StateRunning {
		screen.DrawImage(s.canvas.Image(), nil)
	}

	s.renderSystem.Draw(screen)
	s.drawScrollHint(screen)

	if s.opts.Debug {
		s.drawDebug(screen)
	}
}

func (s *LandingScene) drawScrollHint(screen *ebiten.Image) {
	opacity := ScrollHintOpacity(s.tracker.Progress())
	if opacity <= 0 {
		return
	}

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	op.GeoM.Translate(float64(s.opts.Width)/2, float64(s.opts.Height-scrollHintMargin))
	op.ColorScale.ScaleWithColor(scrollHintColor)
	op.ColorScale.ScaleAlpha(float32(opacity))
	text.Draw(screen, s.hintText, s.hintFace, op)
}

func (s *LandingScene) drawDebug(screen *ebiten.Image) {
	camZ := 0.0
	if cam, ok := s.cameraSystem.Camera(); ok {
		camZ = cam.Z
	}
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nscroll %.0f/%.0f\nraw %.3f  progress %.3f\ncamera z %.2f  t %.1fs",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		s.viewport.Offset(), s.viewport.MaxOffset(),
		s.tracker.Target(), s.tracker.Progress(),
		camZ, s.orbitSystem.Elapsed())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

// Close 拆除粒子网络（幂等）
func (s *LandingScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.network != nil {
		s.network.Stop()
	}
	log.Printf("[LandingScene] closed")
}
