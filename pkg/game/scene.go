package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a top-level screen of the application.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在窗口逻辑尺寸变化时收到通知
type Resizable interface {
	Resize(width, height int)
}

// Closable 是一个可选接口，用于在场景被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - SceneManager.SwitchTo 切换到其他场景
//   - 游戏窗口关闭
//
// Close 必须是幂等的。
type Closable interface {
	Close()
}

// NetworkSwitchable 是一个可选接口，场景实现后可以在运行中开关背景粒子网络
type NetworkSwitchable interface {
	SetNetworkEnabled(enabled bool)
}
