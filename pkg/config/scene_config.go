package config

import (
	"fmt"
	"math"
	"os"

	"github.com/gonewx/cinescroll/pkg/types"
	"gopkg.in/yaml.v3"
)

// SceneConfig 着陆页主场景配置
//
// 配置文件位置: data/scene.yaml
// 文件中缺失的字段保留 DefaultSceneConfig 中的默认值。
type SceneConfig struct {
	Scroll  ScrollConfig      `yaml:"scroll"`
	Camera  CameraConfig      `yaml:"camera"`
	Globe   GlobeConfig       `yaml:"globe"`
	Orbits  []OrbitConfig     `yaml:"orbits"`
	Network NetworkConfig     `yaml:"network"`
	Theme   map[string]string `yaml:"theme"`
	Cues    []Cue             `yaml:"cues"`
}

// ScrollConfig 滚动区域与弹簧平滑配置
type ScrollConfig struct {
	// HeroViewports 英雄区高度（以视口高度为单位），原页面为 400vh
	HeroViewports float64 `yaml:"heroViewports"`
	// TrailingViewports 英雄区之后的文档长度（以视口高度为单位）
	TrailingViewports float64 `yaml:"trailingViewports"`
	// WheelStep 每个滚轮刻度滚动的像素数
	WheelStep float64 `yaml:"wheelStep"`
	// KeyStep 方向键每帧滚动的像素数
	KeyStep float64 `yaml:"keyStep"`

	Spring SpringConfig `yaml:"spring"`
}

// SpringConfig 弹簧滤波参数
type SpringConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	Mass      float64 `yaml:"mass"`
	RestDelta float64 `yaml:"restDelta"`
	RestSpeed float64 `yaml:"restSpeed"`
}

// CameraConfig 镜头配置
type CameraConfig struct {
	InitialZ  float64 `yaml:"initialZ"`
	TargetZ   float64 `yaml:"targetZ"`
	Smoothing float64 `yaml:"smoothing"` // 每帧向目标插值的比例
	FOV       float64 `yaml:"fov"`       // 垂直视场角（度）
}

// GlobeConfig 神经地球配置
type GlobeConfig struct {
	Radius          float64 `yaml:"radius"`
	Detail          int     `yaml:"detail"`
	GroupScale      float64 `yaml:"groupScale"`
	SpinPerFrame    float64 `yaml:"spinPerFrame"`    // 主组每帧绕 Y 轴的旋转增量（弧度）
	WobbleFrequency float64 `yaml:"wobbleFrequency"` // X 轴摆动频率
	WobbleAmplitude float64 `yaml:"wobbleAmplitude"` // X 轴摆动幅度（弧度）
	PulseFrequency  float64 `yaml:"pulseFrequency"`
	PulseAmplitude  float64 `yaml:"pulseAmplitude"`
	InnerRadius     float64 `yaml:"innerRadius"`
	WireOpacity     float64 `yaml:"wireOpacity"`
	InnerOpacity    float64 `yaml:"innerOpacity"`
	NodeSize        float64 `yaml:"nodeSize"`
	GlowColor       string  `yaml:"glowColor"`
	InnerColor      string  `yaml:"innerColor"`
}

// OrbitConfig 单个轨道天体配置
type OrbitConfig struct {
	Mode         types.OrbitMode `yaml:"mode"`
	Radius       float64         `yaml:"radius"`
	Speed        float64         `yaml:"speed"`
	Tilt         float64         `yaml:"tilt"`         // 仅 tilted 轨道使用（弧度）
	BobAmplitude float64         `yaml:"bobAmplitude"` // flat/vertical 轨道的次级摆动幅度
	BobRatio     float64         `yaml:"bobRatio"`     // 次级摆动频率与主频之比
	SpinAxis     string          `yaml:"spinAxis"`     // 自转轴 x / y / z
	SpinPerFrame float64         `yaml:"spinPerFrame"`
	BodyRadius   float64         `yaml:"bodyRadius"`
	Color        string          `yaml:"color"`
}

// NetworkConfig 环境粒子网络配置
type NetworkConfig struct {
	Enabled            bool    `yaml:"enabled"`
	Count              int     `yaml:"count"`
	ConnectionDistance float64 `yaml:"connectionDistance"`
	PointerDistance    float64 `yaml:"pointerDistance"`
	Speed              float64 `yaml:"speed"` // 速度分量取自 (rand-0.5)*Speed，单位像素/帧
	ParticleRadius     float64 `yaml:"particleRadius"`
	ParticleAlpha      float64 `yaml:"particleAlpha"`
	LineWidth          float64 `yaml:"lineWidth"`
	PointerLineWidth   float64 `yaml:"pointerLineWidth"`
	ColorToken         string  `yaml:"colorToken"`
	FallbackColor      string  `yaml:"fallbackColor"`
	Seed               int64   `yaml:"seed"` // 0 表示使用当前时间
}

// DefaultSceneConfig 返回与原着陆页一致的默认配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Scroll: ScrollConfig{
			HeroViewports:     4,
			TrailingViewports: 1,
			WheelStep:         60,
			KeyStep:           12,
			Spring: SpringConfig{
				Stiffness: 100,
				Damping:   30,
				Mass:      1,
				RestDelta: 0.001,
				RestSpeed: 0.01,
			},
		},
		Camera: CameraConfig{
			InitialZ:  12,
			TargetZ:   12,
			Smoothing: 0.1,
			FOV:       45,
		},
		Globe: GlobeConfig{
			Radius:          2.5,
			Detail:          3,
			GroupScale:      0.9,
			SpinPerFrame:    0.002,
			WobbleFrequency: 0.2,
			WobbleAmplitude: 0.05,
			PulseFrequency:  2,
			PulseAmplitude:  0.05,
			InnerRadius:     2.45,
			WireOpacity:     0.4,
			InnerOpacity:    0.2,
			NodeSize:        0.15,
			GlowColor:       "#00f2ff",
			InnerColor:      "#002233",
		},
		Orbits:  DefaultOrbits(),
		Network: DefaultNetworkConfig(),
		Theme: map[string]string{
			"primary": "#00f2ff",
		},
		Cues: DefaultCues(),
	}
}

// DefaultOrbits 返回三个轨道天体：近而快、中速倾斜、远而慢的竖直轨道
func DefaultOrbits() []OrbitConfig {
	return []OrbitConfig{
		{Mode: types.OrbitFlat, Radius: 4.5, Speed: 1.2, BobAmplitude: 1.5, BobRatio: 0.5,
			SpinAxis: "y", SpinPerFrame: 0.02, BodyRadius: 0.4, Color: "#9ca3af"},
		{Mode: types.OrbitTilted, Radius: 6, Speed: 0.8, Tilt: math.Pi / 4,
			SpinAxis: "x", SpinPerFrame: 0.01, BodyRadius: 0.3, Color: "#9ca3af"},
		{Mode: types.OrbitVertical, Radius: 7.5, Speed: 0.5, BobAmplitude: 2, BobRatio: 0.8,
			SpinAxis: "z", SpinPerFrame: 0.01, BodyRadius: 0.5, Color: "#9ca3af"},
	}
}

// DefaultNetworkConfig 返回默认粒子网络配置
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Enabled:            true,
		Count:              80,
		ConnectionDistance: 150,
		PointerDistance:    200,
		Speed:              0.8,
		ParticleRadius:     2.5,
		ParticleAlpha:      0.8,
		LineWidth:          1,
		PointerLineWidth:   1.5,
		ColorToken:         "primary",
		FallbackColor:      "#000000",
	}
}

// DefaultCues 返回英雄区的文字序列
//
// 第一段 (0.1 -> 0.3)：BUILDING / DIGITAL / REALITIES 三行，上下两行从两侧汇入
// 第二段 (0.4 -> 0.9)：“We empower” 常驻，下方依次替换 businesses / startups / innovators
func DefaultCues() []Cue {
	return []Cue{
		{Text: "BUILDING", ScrollStart: 0.1, ScrollEnd: 0.3, YOffset: 1.2, EntryXOffset: -3,
			FontSize: DefaultCueFontSize, ZStart: DefaultCueZStart},
		{Text: "DIGITAL", ScrollStart: 0.1, ScrollEnd: 0.3, IsStatic: true,
			FontSize: DefaultCueFontSize, ZStart: DefaultCueZStart},
		{Text: "REALITIES", ScrollStart: 0.1, ScrollEnd: 0.3, YOffset: -1.2, EntryXOffset: 3,
			FontSize: DefaultCueFontSize, ZStart: DefaultCueZStart},
		{Text: "We empower", ScrollStart: 0.4, ScrollEnd: 0.9, YOffset: 0.6, IsStatic: true,
			PersistEnd: true, FontSize: 0.5, ZStart: DefaultCueZStart},
		{Text: "businesses", ScrollStart: 0.45, ScrollEnd: 0.55, YOffset: -0.1, FontSize: 0.3, ZStart: -4},
		{Text: "startups", ScrollStart: 0.58, ScrollEnd: 0.68, YOffset: -0.1, FontSize: 0.3, ZStart: -4},
		{Text: "innovators", ScrollStart: 0.71, ScrollEnd: 0.85, YOffset: -0.1, FontSize: 0.3, ZStart: -4,
			PersistEnd: true},
	}
}

// LoadSceneConfig 从文件加载场景配置
//
// 参数:
//   - path: 配置文件路径（如 "data/scene.yaml"）
//
// 返回:
//   - *SceneConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return ParseSceneConfig(data)
}

// ParseSceneConfig 解析 YAML 格式的场景配置并校验
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *SceneConfig) Validate() error {
	s := c.Scroll
	if s.HeroViewports <= 0 {
		return fmt.Errorf("scroll.heroViewports must be positive, got %.2f", s.HeroViewports)
	}
	if s.TrailingViewports < 0 {
		return fmt.Errorf("scroll.trailingViewports must not be negative, got %.2f", s.TrailingViewports)
	}
	if s.Spring.Stiffness <= 0 || s.Spring.Mass <= 0 || s.Spring.Damping < 0 {
		return fmt.Errorf("scroll.spring invalid: stiffness=%.2f damping=%.2f mass=%.2f",
			s.Spring.Stiffness, s.Spring.Damping, s.Spring.Mass)
	}
	if s.Spring.RestDelta < 0 || s.Spring.RestSpeed < 0 {
		return fmt.Errorf("scroll.spring rest thresholds must not be negative")
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov must be in (0, 180), got %.2f", c.Camera.FOV)
	}
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		return fmt.Errorf("camera.smoothing must be in (0, 1], got %.2f", c.Camera.Smoothing)
	}

	if c.Globe.Radius <= 0 || c.Globe.Detail < 0 {
		return fmt.Errorf("globe invalid: radius=%.2f detail=%d", c.Globe.Radius, c.Globe.Detail)
	}

	for i, o := range c.Orbits {
		if o.Radius <= 0 || o.BodyRadius <= 0 {
			return fmt.Errorf("orbits[%d]: radius and bodyRadius must be positive", i)
		}
		switch o.SpinAxis {
		case "x", "y", "z", "":
		default:
			return fmt.Errorf("orbits[%d]: unknown spinAxis %q", i, o.SpinAxis)
		}
	}

	n := c.Network
	if n.Count < 0 {
		return fmt.Errorf("network.count must not be negative, got %d", n.Count)
	}
	if n.ConnectionDistance <= 0 || n.PointerDistance <= 0 {
		return fmt.Errorf("network distances must be positive: connection=%.1f pointer=%.1f",
			n.ConnectionDistance, n.PointerDistance)
	}

	for i, cue := range c.Cues {
		if err := cue.Validate(); err != nil {
			return fmt.Errorf("cues[%d]: %w", i, err)
		}
	}

	return nil
}
