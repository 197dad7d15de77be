package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/gonewx/cinescroll/pkg/config"
	"github.com/gonewx/cinescroll/pkg/utils"
)

// Tracker 弹簧平滑的滚动进度
//
// 以 stiffness/damping/mass 描述的阻尼弹簧追随原始进度，消除滚轮的阶跃抖动。
// 弹簧积分由 harmonica 完成：
//
//	angularFrequency = sqrt(stiffness / mass)
//	dampingRatio     = damping / (2 * sqrt(stiffness * mass))
//
// 当距离目标小于 RestDelta 且速度小于 RestSpeed 时直接吸附到目标，避免无限逼近。
type Tracker struct {
	cfg    config.SpringConfig
	fps    int
	spring harmonica.Spring

	position float64
	velocity float64
	target   float64
	atRest   bool
}

// NewTracker 创建进度跟踪器
//
// 参数：
//   - cfg: 弹簧参数
//   - fps: 逻辑帧率，Update 的 dt 通常为 1/fps
func NewTracker(cfg config.SpringConfig, fps int) *Tracker {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	if fps <= 0 {
		fps = config.TicksPerSecond
	}
	return &Tracker{
		cfg:    cfg,
		fps:    fps,
		spring: newSpring(harmonica.FPS(fps), cfg),
		atRest: true,
	}
}

func newSpring(dt float64, cfg config.SpringConfig) harmonica.Spring {
	freq := math.Sqrt(cfg.Stiffness / cfg.Mass)
	ratio := cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*cfg.Mass))
	return harmonica.NewSpring(dt, freq, ratio)
}

// AngularFrequency 返回弹簧角频率
func (t *Tracker) AngularFrequency() float64 {
	return math.Sqrt(t.cfg.Stiffness / t.cfg.Mass)
}

// DampingRatio 返回阻尼比（1 为临界阻尼）
func (t *Tracker) DampingRatio() float64 {
	return t.cfg.Damping / (2 * math.Sqrt(t.cfg.Stiffness*t.cfg.Mass))
}

// Update 推进一帧
//
// 参数：
//   - dt: 帧时长（秒），与构造时的帧率不一致时会重建弹簧系数
//   - raw: 原始进度，先限制到 [0, 1]
func (t *Tracker) Update(dt float64, raw float64) {
	raw = utils.Clamp01(raw)
	if raw != t.target {
		t.target = raw
		t.atRest = false
	}
	if t.atRest {
		return
	}

	spring := t.spring
	if dt > 0 && math.Abs(dt-harmonica.FPS(t.fps)) > 1e-9 {
		spring = newSpring(dt, t.cfg)
	}

	t.position, t.velocity = spring.Update(t.position, t.velocity, t.target)

	if math.Abs(t.target-t.position) < t.cfg.RestDelta && math.Abs(t.velocity) < t.cfg.RestSpeed {
		t.position = t.target
		t.velocity = 0
		t.atRest = true
	}
}

// Progress 返回平滑后的进度，始终位于 [0, 1]
func (t *Tracker) Progress() float64 {
	return utils.Clamp01(t.position)
}

// Target 返回当前追随的原始进度
func (t *Tracker) Target() float64 {
	return t.target
}

// AtRest 返回弹簧是否已静止
func (t *Tracker) AtRest() bool {
	return t.atRest
}
