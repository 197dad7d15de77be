package systems

import (
	"github.com/gonewx/cinescroll/pkg/components"
	"github.com/gonewx/cinescroll/pkg/ecs"
	"github.com/gonewx/cinescroll/pkg/utils"
)

// CameraSystem 镜头系统
// 每帧将镜头距离以指数方式缓动到目标距离：current = lerp(current, target, smoothing)。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
}

// NewCameraSystem 创建镜头系统。
func NewCameraSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
	}
}

// Update 推进一帧镜头缓动。
//
// progress 当前不参与计算：镜头距离与滚动解耦，滚动只驱动文字序列。
// 按滚动进度在 45°~50° 之间调整视场角的耦合逻辑暂不启用。
func (cs *CameraSystem) Update(progress float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	cam.Z = utils.Lerp(cam.Z, cam.TargetZ, cam.Smoothing)
}

// Camera 返回镜头组件
func (cs *CameraSystem) Camera() (*components.CameraComponent, bool) {
	return ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
}
