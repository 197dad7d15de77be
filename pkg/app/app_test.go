package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/cinescroll/pkg/embedded"
	"github.com/gonewx/cinescroll/pkg/game"
)

// TestLoadSceneConfig_Fallback 嵌入资源未初始化时使用内置默认配置
func TestLoadSceneConfig_Fallback(t *testing.T) {
	embedded.Init(nil)

	cfg, err := LoadSceneConfig("")
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if len(cfg.Cues) != 7 {
		t.Errorf("len(Cues) = %d, want 7", len(cfg.Cues))
	}
}

// TestLoadSceneConfig_Embedded 从嵌入文件系统加载，缺失字段保留默认值
func TestLoadSceneConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		SceneConfigPath: &fstest.MapFile{Data: []byte("camera:\n  fov: 50\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	cfg, err := LoadSceneConfig("")
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Camera.FOV != 50 {
		t.Errorf("Camera.FOV = %v, want 50", cfg.Camera.FOV)
	}
	if cfg.Camera.TargetZ != 12 {
		t.Errorf("Camera.TargetZ = %v, want 12", cfg.Camera.TargetZ)
	}
}

// TestLoadSceneConfig_File 外部文件优先，无效 cue 返回错误
func TestLoadSceneConfig_File(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("network:\n  count: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSceneConfig(good)
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Network.Count != 12 {
		t.Errorf("Network.Count = %d, want 12", cfg.Network.Count)
	}

	bad := filepath.Join(dir, "bad.yaml")
	data := "cues:\n  - text: X\n    scrollStart: 0.5\n    scrollEnd: 0.5\n"
	if err := os.WriteFile(bad, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSceneConfig(bad); err == nil {
		t.Error("expected error for empty cue range")
	}

	if _, err := LoadSceneConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// networkScene 记录 SetNetworkEnabled 调用的测试场景
type networkScene struct {
	calls []bool
}

func (s *networkScene) Update(deltaTime float64) {}
func (s *networkScene) Draw(screen *ebiten.Image) {}
func (s *networkScene) SetNetworkEnabled(enabled bool) { s.calls = append(s.calls, enabled) }

func newToggleTestApp(t *testing.T, noNetwork bool) (*App, *networkScene, *gdata.Manager) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	gdataManager, err := gdata.Open(gdata.Config{AppName: "test_cinescroll_app_toggle"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	settingsManager, _ := game.NewSettingsManager(gdataManager)

	scene := &networkScene{}
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		noNetwork:       noNetwork,
	}, scene, gdataManager
}

// TestToggleBackgroundNetwork 切换背景网络会保存设置并作用到当前场景
func TestToggleBackgroundNetwork(t *testing.T) {
	a, scene, gdataManager := newToggleTestApp(t, false)

	if a.toggleBackgroundNetwork() {
		t.Fatal("默认开启，第一次切换应关闭")
	}
	if len(scene.calls) != 1 || scene.calls[0] {
		t.Fatalf("scene calls = %v, want [false]", scene.calls)
	}

	reloaded, _ := game.NewSettingsManager(gdataManager)
	if reloaded.GetSettings().BackgroundNetwork {
		t.Error("关闭状态应已持久化")
	}

	if !a.toggleBackgroundNetwork() {
		t.Fatal("第二次切换应重新开启")
	}
	if len(scene.calls) != 2 || !scene.calls[1] {
		t.Errorf("scene calls = %v, want [false true]", scene.calls)
	}
	reloaded, _ = game.NewSettingsManager(gdataManager)
	if !reloaded.GetSettings().BackgroundNetwork {
		t.Error("开启状态应已持久化")
	}
}

// TestToggleBackgroundNetwork_NoNetworkFlag --no-network 时设置照常保存，但场景保持关闭
func TestToggleBackgroundNetwork_NoNetworkFlag(t *testing.T) {
	a, scene, gdataManager := newToggleTestApp(t, true)

	a.toggleBackgroundNetwork()
	a.toggleBackgroundNetwork()

	if len(scene.calls) != 2 || scene.calls[0] || scene.calls[1] {
		t.Errorf("scene calls = %v, want [false false]", scene.calls)
	}
	reloaded, _ := game.NewSettingsManager(gdataManager)
	if !reloaded.GetSettings().BackgroundNetwork {
		t.Error("设置应翻转两次后回到开启")
	}
}
