package components

import (
	"image/color"

	"github.com/gonewx/cinescroll/pkg/types"
)

// OrbitComponent 轨道天体的运动参数
// 位置是经过时间的闭式函数，天体之间互不影响。
type OrbitComponent struct {
	Mode         types.OrbitMode
	Radius       float64
	Speed        float64
	Tilt         float64
	BobAmplitude float64
	BobRatio     float64

	// SpinAxis 自转轴：'x' / 'y' / 'z'，0 表示不自转
	SpinAxis     byte
	SpinPerFrame float64
}

// SphereComponent 球体渲染参数
type SphereComponent struct {
	Radius  float64
	Color   color.RGBA
	Opacity float64
}
