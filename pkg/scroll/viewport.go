package scroll

import "github.com/gonewx/cinescroll/pkg/utils"

// Viewport 宿主页面的滚动视口
//
// Offset 是视口顶部相对文档顶部的像素偏移，始终限制在 [0, DocumentHeight-Height]。
type Viewport struct {
	offset         float64
	height         float64
	documentHeight float64
}

// NewViewport 创建视口
func NewViewport(height, documentHeight float64) *Viewport {
	v := &Viewport{}
	v.Resize(height, documentHeight)
	return v
}

// Resize 更新视口高度与文档高度，并重新限制偏移
func (v *Viewport) Resize(height, documentHeight float64) {
	if height < 0 {
		height = 0
	}
	if documentHeight < height {
		documentHeight = height
	}
	v.height = height
	v.documentHeight = documentHeight
	v.offset = utils.Clamp(v.offset, 0, v.MaxOffset())
}

// ScrollBy 相对滚动 delta 像素（正值向下）
func (v *Viewport) ScrollBy(delta float64) {
	v.ScrollTo(v.offset + delta)
}

// ScrollTo 滚动到绝对偏移
func (v *Viewport) ScrollTo(offset float64) {
	v.offset = utils.Clamp(offset, 0, v.MaxOffset())
}

// Offset 返回当前滚动偏移
func (v *Viewport) Offset() float64 {
	return v.offset
}

// Height 返回视口高度
func (v *Viewport) Height() float64 {
	return v.height
}

// MaxOffset 返回最大可滚动偏移
func (v *Viewport) MaxOffset() float64 {
	return v.documentHeight - v.height
}
