// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PageScrollRatio 翻页键滚动的视口高度比例（与浏览器一致，保留一小段重叠）
const PageScrollRatio = 0.9

// ScrollKeys 当前帧与滚动相关的输入快照
type ScrollKeys struct {
	// WheelY 滚轮刻度，正值向上（ebiten.Wheel 的约定）
	WheelY float64

	// 按住即连续滚动
	Up, Down bool

	// 按下瞬间触发一次
	PageUp, PageDown bool
	Space, Shift     bool
	Home, End        bool
}

// ScrollIntent 解析后的滚动意图
type ScrollIntent struct {
	// Delta 相对滚动像素，正值向下
	Delta float64
	// ToTop/ToBottom 跳转到文档开头/结尾，优先于 Delta
	ToTop, ToBottom bool
}

// ScrollSteps 滚动步长配置
type ScrollSteps struct {
	Wheel float64 // 每个滚轮刻度的像素数
	Key   float64 // 方向键每帧的像素数
	Page  float64 // 翻页的像素数
}

// ResolveScroll 把输入快照转换为滚动意图
func ResolveScroll(k ScrollKeys, steps ScrollSteps) ScrollIntent {
	intent := ScrollIntent{
		ToTop:    k.Home,
		ToBottom: k.End,
	}

	intent.Delta -= k.WheelY * steps.Wheel
	if k.Up {
		intent.Delta -= steps.Key
	}
	if k.Down {
		intent.Delta += steps.Key
	}
	if k.PageUp || (k.Space && k.Shift) {
		intent.Delta -= steps.Page
	}
	if k.PageDown || (k.Space && !k.Shift) {
		intent.Delta += steps.Page
	}
	return intent
}

// PollScrollKeys 读取当前帧的键盘与滚轮状态
func PollScrollKeys() ScrollKeys {
	_, wheelY := ebiten.Wheel()
	return ScrollKeys{
		WheelY:   wheelY,
		Up:       ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		PageUp:   inpututil.IsKeyJustPressed(ebiten.KeyPageUp),
		PageDown: inpututil.IsKeyJustPressed(ebiten.KeyPageDown),
		Space:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Shift:    ebiten.IsKeyPressed(ebiten.KeyShift),
		Home:     inpututil.IsKeyJustPressed(ebiten.KeyHome),
		End:      inpututil.IsKeyJustPressed(ebiten.KeyEnd),
	}
}

// PointerTracker 只在指针真正移动时报告位置
//
// 鼠标：第一帧仅记录光标基准位置，之后光标坐标变化才算一次移动。
// 触摸：按下期间触摸点变化即报告；触摸结束后不会回落到光标位置。
type PointerTracker struct {
	cursorX, cursorY int
	cursorSeen       bool
	touchX, touchY   int
	touching         bool
}

// Feed 输入本帧的光标与第一个触摸点，返回指针位置以及本帧是否发生了移动
func (pt *PointerTracker) Feed(cursorX, cursorY int, touching bool, touchX, touchY int) (int, int, bool) {
	cursorMoved := pt.cursorSeen && (cursorX != pt.cursorX || cursorY != pt.cursorY)
	pt.cursorX, pt.cursorY, pt.cursorSeen = cursorX, cursorY, true

	if touching {
		moved := !pt.touching || touchX != pt.touchX || touchY != pt.touchY
		pt.touching, pt.touchX, pt.touchY = true, touchX, touchY
		return touchX, touchY, moved
	}
	pt.touching = false

	if cursorMoved {
		return cursorX, cursorY, true
	}
	return 0, 0, false
}

// Update 读取光标与触摸输入，见 Feed
func (pt *PointerTracker) Update() (int, int, bool) {
	cx, cy := ebiten.CursorPosition()
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		return pt.Feed(cx, cy, true, tx, ty)
	}
	return pt.Feed(cx, cy, false, 0, 0)
}

// ============================================================================
// 触摸拖拽滚动 - 移动端没有滚轮，手指上下拖动即滚动页面
// ============================================================================

// TouchScroller 把单指拖拽转换为滚动增量
type TouchScroller struct {
	active bool
	lastY  int
}

// Feed 输入本帧的触摸状态，返回滚动增量（手指上移为正，即向下滚动）
func (ts *TouchScroller) Feed(pressed bool, y int) float64 {
	if !pressed {
		ts.active = false
		return 0
	}
	if !ts.active {
		ts.active = true
		ts.lastY = y
		return 0
	}
	delta := float64(ts.lastY - y)
	ts.lastY = y
	return delta
}

// Dragging 返回是否正在拖拽
func (ts *TouchScroller) Dragging() bool {
	return ts.active
}

// Update 读取第一个触摸点并返回滚动增量
func (ts *TouchScroller) Update() float64 {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) == 0 {
		return ts.Feed(false, 0)
	}
	_, y := ebiten.TouchPosition(touchIDs[0])
	return ts.Feed(true, y)
}
