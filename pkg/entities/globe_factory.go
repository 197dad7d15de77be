package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/cinescroll/pkg/components"
	"github.com/gonewx/cinescroll/pkg/config"
	"github.com/gonewx/cinescroll/pkg/ecs"
	"github.com/gonewx/cinescroll/pkg/types"
	"github.com/gonewx/cinescroll/pkg/utils"
)

func vec(x, y, z float64) types.Vec3 {
	return types.Vec3{X: x, Y: y, Z: z}
}

// toRGBA 解析十六进制颜色，失败时返回 fallback
func toRGBA(hex string, fallback color.RGBA) color.RGBA {
	c, err := config.ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// NewGlobeEntity 创建神经地球主组实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 地球配置
//
// 返回:
//   - ecs.EntityID: 主组实体ID（轨道天体以此为 Parent）
func NewGlobeEntity(em *ecs.EntityManager, cfg config.GlobeConfig) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.TransformComponent{Scale: 1})

	ecs.AddComponent(em, entityID, &components.GlobeComponent{
		SpinPerFrame:    cfg.SpinPerFrame,
		WobbleFrequency: cfg.WobbleFrequency,
		WobbleAmplitude: cfg.WobbleAmplitude,
		PulseFrequency:  cfg.PulseFrequency,
		PulseAmplitude:  cfg.PulseAmplitude,
		NodeScale:       1,
		Mesh:            utils.NewIcosphere(cfg.Radius, cfg.Detail),
		GroupScale:      cfg.GroupScale,
		InnerRadius:     cfg.InnerRadius,
		WireOpacity:     cfg.WireOpacity,
		InnerOpacity:    cfg.InnerOpacity,
		NodeSize:        cfg.NodeSize,
		GlowColor:       toRGBA(cfg.GlowColor, color.RGBA{0x00, 0xf2, 0xff, 0xff}),
		InnerColor:      toRGBA(cfg.InnerColor, color.RGBA{0x00, 0x22, 0x33, 0xff}),
	})

	return entityID
}

// NewOrbitEntity 创建轨道天体实体
//
// 参数:
//   - em: 实体管理器
//   - parent: 主组实体ID
//   - cfg: 轨道配置
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 自转轴配置无效时返回错误
func NewOrbitEntity(em *ecs.EntityManager, parent ecs.EntityID, cfg config.OrbitConfig) (ecs.EntityID, error) {
	var axis byte
	switch cfg.SpinAxis {
	case "x", "y", "z":
		axis = cfg.SpinAxis[0]
	case "":
	default:
		return 0, fmt.Errorf("unknown spin axis %q", cfg.SpinAxis)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Position: vec(cfg.Radius, 0, 0),
		Scale:    1,
		Parent:   parent,
	})

	ecs.AddComponent(em, entityID, &components.OrbitComponent{
		Mode:         cfg.Mode,
		Radius:       cfg.Radius,
		Speed:        cfg.Speed,
		Tilt:         cfg.Tilt,
		BobAmplitude: cfg.BobAmplitude,
		BobRatio:     cfg.BobRatio,
		SpinAxis:     axis,
		SpinPerFrame: cfg.SpinPerFrame,
	})

	ecs.AddComponent(em, entityID, &components.SphereComponent{
		Radius:  cfg.BodyRadius,
		Color:   toRGBA(cfg.Color, color.RGBA{0x9c, 0xa3, 0xaf, 0xff}),
		Opacity: 1,
	})

	return entityID, nil
}

// NewCameraEntity 创建镜头实体
func NewCameraEntity(em *ecs.EntityManager, cfg config.CameraConfig) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.CameraComponent{
		Z:         cfg.InitialZ,
		TargetZ:   cfg.TargetZ,
		Smoothing: cfg.Smoothing,
		FOV:       cfg.FOV,
	})
	return entityID
}
