package components

import "image/color"

// TextLayerKind 文字图层类型
type TextLayerKind int

const (
	// TextLayerPrimary 高亮发光主图层
	TextLayerPrimary TextLayerKind = iota
	// TextLayerShadow 位于主图层后方的暗色阴影图层，制造立体感
	TextLayerShadow
)

// TextLayerCount 每个 cue 拥有的图层数量
const TextLayerCount = 2

// TextLayer 单个文字图层的材质状态
type TextLayer struct {
	Kind        TextLayerKind
	Color       color.RGBA
	Glow        color.RGBA // 发光色，A 为 0 表示不发光
	DepthOffset float64    // 相对 cue 位置的 Z 偏移
	BaseOpacity float64    // 材质自身的不透明度，绘制时与 Opacity 相乘
	Opacity     float64
}

// EffectiveOpacity 返回绘制时的实际不透明度
func (l TextLayer) EffectiveOpacity() float64 {
	return l.Opacity * l.BaseOpacity
}

// TextLayersComponent cue 实体显式拥有的图层列表
//
// 图层数量固定，透明度通过遍历该数组统一设置，所有图层同步淡入淡出。
type TextLayersComponent struct {
	Text     string
	FontSize float64 // 世界单位
	Layers   [TextLayerCount]TextLayer
}

// SetOpacity 将透明度统一应用到所有图层
func (c *TextLayersComponent) SetOpacity(opacity float64) {
	for i := range c.Layers {
		c.Layers[i].Opacity = opacity
	}
}
