// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cinescroll/pkg/config"
	"github.com/gonewx/cinescroll/pkg/embedded"
	"github.com/gonewx/cinescroll/pkg/game"
	"github.com/gonewx/cinescroll/pkg/scenes"
)

// AppName gdata 存储使用的应用名
const AppName = "cinescroll"

// SceneConfigPath 嵌入的默认场景配置路径
const SceneConfigPath = "data/scene.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 显示调试覆盖层
	Debug bool
	// ConfigPath 外部场景配置文件，为空时使用嵌入的 data/scene.yaml
	ConfigPath string
	// Seed 粒子网络随机种子，0 表示使用配置文件中的值
	Seed int64
	// NoNetwork 本次运行禁用背景粒子网络（不修改已保存的设置）
	NoNetwork bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	noNetwork                bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadSceneConfig 按优先级加载场景配置：外部文件 > 嵌入文件 > 内置默认值
func LoadSceneConfig(path string) (*config.SceneConfig, error) {
	if path != "" {
		cfg, err := config.LoadSceneConfig(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载场景配置: %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Warning: 嵌入资源未初始化，使用内置默认配置")
		return config.DefaultSceneConfig(), nil
	}

	data, err := embedded.ReadFile(SceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config: %w", err)
	}
	cfg, err := config.ParseSceneConfig(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载嵌入场景配置: %s (%d 个 cue)", SceneConfigPath, len(cfg.Cues))
	return cfg, nil
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := LoadSceneConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	if cfg.Seed != 0 {
		sceneConfig.Network.Seed = cfg.Seed
	}

	settingsManager := game.OpenSettingsManager(AppName)
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) (game.Scene, error) {
		if name != scenes.LandingSceneName {
			return nil, fmt.Errorf("unknown scene %q", name)
		}
		return scenes.NewLandingScene(sceneConfig, scenes.LandingOptions{
			Width:          config.WindowWidth,
			Height:         config.WindowHeight,
			NetworkEnabled: settingsManager.GetSettings().BackgroundNetwork && !cfg.NoNetwork,
			Debug:          cfg.Debug,
		})
	})

	if !sceneManager.LoadScene(scenes.LandingSceneName) {
		return nil, fmt.Errorf("无法创建场景: %s", scenes.LandingSceneName)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		noNetwork:       cfg.NoNetwork,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// N 切换背景粒子网络
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.toggleBackgroundNetwork()
	}

	a.sceneManager.Update(config.FrameDelta)
	return nil
}

func (a *App) toggleFullscreen() {
	enable := !ebiten.IsFullscreen()
	if !enable {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(enable)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// toggleBackgroundNetwork 翻转并保存背景网络设置，同时作用到当前场景
//
// --no-network 只影响本次运行：设置照常翻转保存，但场景中的网络保持关闭。
func (a *App) toggleBackgroundNetwork() bool {
	enabled := !a.settingsManager.GetSettings().BackgroundNetwork
	a.settingsManager.SetBackgroundNetwork(enabled)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}

	if s, ok := a.sceneManager.GetCurrentScene().(game.NetworkSwitchable); ok {
		s.SetNetworkEnabled(enabled && !a.noNetwork)
	}
	log.Printf("[App] Background network: %v", enabled)
	return enabled
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 场景随窗口尺寸自适应：逻辑尺寸即窗口尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = config.WindowWidth, config.WindowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 关闭当前场景（窗口关闭时调用）
func (a *App) Close() {
	a.sceneManager.Close()
}
