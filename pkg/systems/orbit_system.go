package systems

import (
	"math"

	"github.com/gonewx/cinescroll/pkg/components"
	"github.com/gonewx/cinescroll/pkg/ecs"
	"github.com/gonewx/cinescroll/pkg/types"
)

// OrbitSystem 轨道编排系统
//
// 驱动神经地球主组的自转与摆动、节点脉动，以及三个轨道天体。
// 天体位置是经过时间 t 的闭式函数，与滚动无关；自转是每帧固定增量。
type OrbitSystem struct {
	entityManager *ecs.EntityManager
	elapsed       float64
}

// NewOrbitSystem 创建轨道系统。
func NewOrbitSystem(em *ecs.EntityManager) *OrbitSystem {
	return &OrbitSystem{entityManager: em}
}

// Elapsed 返回累计经过时间（秒）
func (s *OrbitSystem) Elapsed() float64 {
	return s.elapsed
}

// OrbitPosition 计算轨道天体在时间 t 的局部位置
func OrbitPosition(o *components.OrbitComponent, t float64) types.Vec3 {
	phase := t * o.Speed
	switch o.Mode {
	case types.OrbitTilted:
		return types.Vec3{
			X: math.Cos(phase) * o.Radius,
			Y: math.Sin(phase) * o.Radius * math.Sin(o.Tilt),
			Z: math.Sin(phase) * o.Radius * math.Cos(o.Tilt),
		}
	case types.OrbitVertical:
		return types.Vec3{
			X: math.Sin(phase*o.BobRatio) * o.BobAmplitude,
			Y: math.Cos(phase) * o.Radius,
			Z: math.Sin(phase) * o.Radius,
		}
	default:
		return types.Vec3{
			X: math.Cos(phase) * o.Radius,
			Y: math.Sin(phase*o.BobRatio) * o.BobAmplitude,
			Z: math.Sin(phase) * o.Radius,
		}
	}
}

// PulseScale 节点脉动缩放：1 + sin(t·frequency)·amplitude
func PulseScale(t, frequency, amplitude float64) float64 {
	return 1 + math.Sin(t*frequency)*amplitude
}

// Update 推进 dt 秒
func (s *OrbitSystem) Update(dt float64) {
	s.elapsed += dt
	t := s.elapsed

	for _, id := range ecs.GetEntitiesWith2[*components.GlobeComponent, *components.TransformComponent](s.entityManager) {
		globe, _ := ecs.GetComponent[*components.GlobeComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		transform.Rotation.Y += globe.SpinPerFrame
		transform.Rotation.X = math.Sin(t*globe.WobbleFrequency) * globe.WobbleAmplitude
		globe.NodeScale = PulseScale(t, globe.PulseFrequency, globe.PulseAmplitude)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.OrbitComponent, *components.TransformComponent](s.entityManager) {
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		transform.Position = OrbitPosition(orbit, t)
		switch orbit.SpinAxis {
		case 'x':
			transform.Rotation.X += orbit.SpinPerFrame
		case 'y':
			transform.Rotation.Y += orbit.SpinPerFrame
		case 'z':
			transform.Rotation.Z += orbit.SpinPerFrame
		}
	}
}
