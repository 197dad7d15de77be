package components

import (
	"image/color"

	"github.com/gonewx/cinescroll/pkg/utils"
)

// GlobeComponent 神经地球主组
//
// 主组自身的旋转写在 TransformComponent.Rotation 中；
// 轨道天体以该实体为 Parent，因此随主组一起旋转。
type GlobeComponent struct {
	SpinPerFrame    float64
	WobbleFrequency float64
	WobbleAmplitude float64
	PulseFrequency  float64
	PulseAmplitude  float64

	// NodeScale 节点脉动缩放（每帧由 OrbitSystem 更新）
	NodeScale float64

	// 渲染数据
	Mesh         utils.WireMesh
	GroupScale   float64
	InnerRadius  float64
	WireOpacity  float64
	InnerOpacity float64
	NodeSize     float64
	GlowColor    color.RGBA
	InnerColor   color.RGBA
}
