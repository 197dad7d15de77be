package components

import (
	"github.com/gonewx/cinescroll/pkg/ecs"
	"github.com/gonewx/cinescroll/pkg/types"
)

// TransformComponent 实体在 3D 场景中的变换
//
// Position/Rotation 是相对于父实体的局部变换；Parent 为 0 时即世界坐标。
// 渲染时先按自身 Scale 缩放，再按父实体的 Rotation（XYZ 欧拉）旋转并叠加父实体位置。
type TransformComponent struct {
	Position types.Vec3
	Rotation types.Vec3 // 欧拉角（弧度）
	Scale    float64    // 均匀缩放，1.0 = 原始大小
	Parent   ecs.EntityID
}
