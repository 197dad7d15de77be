package config

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme 视觉主题：命名颜色令牌到十六进制颜色字符串的映射
//
// 粒子网络每帧都重新查询颜色令牌（不缓存），因此运行时修改主题会在下一帧生效。
type Theme struct {
	tokens map[string]string
}

// NewTheme 创建主题，tokens 会被复制
func NewTheme(tokens map[string]string) *Theme {
	t := &Theme{tokens: make(map[string]string, len(tokens))}
	for k, v := range tokens {
		t.tokens[k] = v
	}
	return t
}

// Set 设置颜色令牌
func (t *Theme) Set(name, value string) {
	t.tokens[name] = value
}

// Lookup 返回令牌的原始字符串（已去除首尾空白），不存在或为空时 ok=false
func (t *Theme) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	v := strings.TrimSpace(t.tokens[name])
	return v, v != ""
}

// Color 解析令牌颜色，令牌缺失或无法解析时使用 fallback
//
// fallback 本身也无法解析时返回黑色。
func (t *Theme) Color(name, fallback string) color.Color {
	if v, ok := t.Lookup(name); ok {
		if c, err := ParseHexColor(v); err == nil {
			return c
		}
	}
	if c, err := ParseHexColor(fallback); err == nil {
		return c
	}
	return color.Black
}

// ParseHexColor 解析 "#rrggbb" 或 "#rgb" 格式的颜色
func ParseHexColor(s string) (color.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
