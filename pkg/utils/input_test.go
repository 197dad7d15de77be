package utils

import (
	"testing"
)

func TestResolveScroll(t *testing.T) {
	steps := ScrollSteps{Wheel: 60, Key: 12, Page: 648}

	tests := []struct {
		name string
		keys ScrollKeys
		want ScrollIntent
	}{
		{"无输入", ScrollKeys{}, ScrollIntent{}},
		{"滚轮向下", ScrollKeys{WheelY: -1}, ScrollIntent{Delta: 60}},
		{"滚轮向上两格", ScrollKeys{WheelY: 2}, ScrollIntent{Delta: -120}},
		{"方向键下", ScrollKeys{Down: true}, ScrollIntent{Delta: 12}},
		{"方向键同时按下抵消", ScrollKeys{Up: true, Down: true}, ScrollIntent{}},
		{"空格翻页", ScrollKeys{Space: true}, ScrollIntent{Delta: 648}},
		{"Shift+空格向上翻页", ScrollKeys{Space: true, Shift: true}, ScrollIntent{Delta: -648}},
		{"PageUp", ScrollKeys{PageUp: true}, ScrollIntent{Delta: -648}},
		{"Home", ScrollKeys{Home: true}, ScrollIntent{ToTop: true}},
		{"End", ScrollKeys{End: true}, ScrollIntent{ToBottom: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveScroll(tt.keys, steps); got != tt.want {
				t.Errorf("ResolveScroll() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTouchScroller(t *testing.T) {
	var ts TouchScroller

	if d := ts.Feed(true, 500); d != 0 {
		t.Errorf("按下首帧 delta = %v, want 0", d)
	}
	if !ts.Dragging() {
		t.Error("按下后应处于拖拽状态")
	}
	if d := ts.Feed(true, 450); d != 50 {
		t.Errorf("上移 50 delta = %v, want 50", d)
	}
	if d := ts.Feed(true, 470); d != -20 {
		t.Errorf("下移 20 delta = %v, want -20", d)
	}
	if d := ts.Feed(false, 0); d != 0 {
		t.Errorf("释放 delta = %v, want 0", d)
	}
	if ts.Dragging() {
		t.Error("释放后不应处于拖拽状态")
	}

	// 再次按下不应产生跳变
	if d := ts.Feed(true, 100); d != 0 {
		t.Errorf("再次按下 delta = %v, want 0", d)
	}
}

// TestPointerTracker 只有真实移动才会报告，首帧与触摸结束后都保持静默
func TestPointerTracker(t *testing.T) {
	type frame struct {
		cursorX, cursorY int
		touching         bool
		touchX, touchY   int
		wantX, wantY     int
		wantMoved        bool
	}

	tests := []struct {
		name   string
		frames []frame
	}{
		{
			name: "首帧光标不算移动",
			frames: []frame{
				{cursorX: 0, cursorY: 0},
				{cursorX: 0, cursorY: 0},
			},
		},
		{
			name: "光标移动后报告新位置",
			frames: []frame{
				{cursorX: 10, cursorY: 20},
				{cursorX: 30, cursorY: 20, wantX: 30, wantY: 20, wantMoved: true},
				{cursorX: 30, cursorY: 20},
			},
		},
		{
			name: "触摸按下与拖动",
			frames: []frame{
				{touching: true, touchX: 100, touchY: 200, wantX: 100, wantY: 200, wantMoved: true},
				{touching: true, touchX: 100, touchY: 200, wantX: 100, wantY: 200},
				{touching: true, touchX: 110, touchY: 190, wantX: 110, wantY: 190, wantMoved: true},
			},
		},
		{
			name: "触摸结束不回落到光标",
			frames: []frame{
				{cursorX: 5, cursorY: 5},
				{cursorX: 5, cursorY: 5, touching: true, touchX: 300, touchY: 400, wantX: 300, wantY: 400, wantMoved: true},
				{cursorX: 5, cursorY: 5},
				{cursorX: 5, cursorY: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pt PointerTracker
			for i, f := range tt.frames {
				x, y, moved := pt.Feed(f.cursorX, f.cursorY, f.touching, f.touchX, f.touchY)
				if moved != f.wantMoved {
					t.Fatalf("frame %d: moved = %v, want %v", i, moved, f.wantMoved)
				}
				if moved && (x != f.wantX || y != f.wantY) {
					t.Errorf("frame %d: position = (%d, %d), want (%d, %d)", i, x, y, f.wantX, f.wantY)
				}
			}
		})
	}
}
