package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCue 表示 cue 配置无效（例如滚动区间为空）
var ErrInvalidCue = errors.New("invalid cue")

// Cue 默认值
const (
	// DefaultCueFontSize 默认字号（世界单位）
	DefaultCueFontSize = 0.7

	// DefaultCueZStart 默认起始深度，文字从远处飞向镜头
	DefaultCueZStart = -12.0

	// CueRestZ 所有 cue 的静止深度；静态 cue 始终位于此深度
	CueRestZ = 5.0
)

// Cue 一条文字揭示片段的配置
//
// 每个 cue 把全局滚动进度的子区间 [ScrollStart, ScrollEnd] 映射为局部进度，
// 再映射为位置、旋转与透明度。创建后不可修改。
type Cue struct {
	Text         string  `yaml:"text"`
	ScrollStart  float64 `yaml:"scrollStart"`
	ScrollEnd    float64 `yaml:"scrollEnd"`
	YOffset      float64 `yaml:"yOffset"`
	XOffset      float64 `yaml:"xOffset"`
	EntryXOffset float64 `yaml:"entryXOffset"` // 入场时的水平偏移，收敛到 XOffset
	IsStatic     bool    `yaml:"isStatic"`     // 静态 cue 不做深度飞行与旋转
	PersistEnd   bool    `yaml:"persistEnd"`   // 完全淡入后不再淡出
	FontSize     float64 `yaml:"fontSize"`
	ZStart       float64 `yaml:"zStart"`
}

// NewCue 创建并校验 cue
//
// 参数：
//   - text: 文字内容
//   - scrollStart, scrollEnd: 全局进度子区间，要求 0 <= scrollStart < scrollEnd <= 1
//   - opts: 可选的修改函数，用于设置偏移、字号等字段
//
// 返回：
//   - Cue: 校验通过的 cue
//   - error: 配置无效时返回包装了 ErrInvalidCue 的错误
func NewCue(text string, scrollStart, scrollEnd float64, opts ...func(*Cue)) (Cue, error) {
	c := Cue{
		Text:        text,
		ScrollStart: scrollStart,
		ScrollEnd:   scrollEnd,
		FontSize:    DefaultCueFontSize,
		ZStart:      DefaultCueZStart,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Cue{}, err
	}
	return c, nil
}

// Validate 校验 cue 配置
//
// ScrollEnd == ScrollStart 会导致局部进度除零，必须在构造时拒绝。
func (c Cue) Validate() error {
	if c.ScrollStart < 0 || c.ScrollStart > 1 || c.ScrollEnd < 0 || c.ScrollEnd > 1 {
		return fmt.Errorf("%w %q: scroll range [%.3f, %.3f] outside [0, 1]",
			ErrInvalidCue, c.Text, c.ScrollStart, c.ScrollEnd)
	}
	if c.ScrollEnd <= c.ScrollStart {
		return fmt.Errorf("%w %q: scrollEnd(%.3f) must be greater than scrollStart(%.3f)",
			ErrInvalidCue, c.Text, c.ScrollEnd, c.ScrollStart)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w %q: fontSize must be positive, got %.3f", ErrInvalidCue, c.Text, c.FontSize)
	}
	return nil
}

// UnmarshalYAML 先填充默认值再解码，未出现的字段保留默认
func (c *Cue) UnmarshalYAML(node *yaml.Node) error {
	type rawCue Cue
	raw := rawCue{FontSize: DefaultCueFontSize, ZStart: DefaultCueZStart}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*c = Cue(raw)
	return c.Validate()
}

// WithOffset 设置静止位置
func WithOffset(x, y float64) func(*Cue) {
	return func(c *Cue) {
		c.XOffset = x
		c.YOffset = y
	}
}

// WithEntryX 设置入场水平偏移
func WithEntryX(dx float64) func(*Cue) {
	return func(c *Cue) { c.EntryXOffset = dx }
}

// WithStatic 标记为静态 cue
func WithStatic() func(*Cue) {
	return func(c *Cue) { c.IsStatic = true }
}

// WithPersistEnd 标记为淡入后常驻
func WithPersistEnd() func(*Cue) {
	return func(c *Cue) { c.PersistEnd = true }
}

// WithFontSize 设置字号
func WithFontSize(size float64) func(*Cue) {
	return func(c *Cue) { c.FontSize = size }
}

// WithZStart 设置起始深度
func WithZStart(z float64) func(*Cue) {
	return func(c *Cue) { c.ZStart = z }
}
