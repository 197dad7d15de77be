package systems

import (
	"github.com/gonewx/cinescroll/pkg/components"
	"github.com/gonewx/cinescroll/pkg/config"
	"github.com/gonewx/cinescroll/pkg/ecs"
	"github.com/gonewx/cinescroll/pkg/types"
	"github.com/gonewx/cinescroll/pkg/utils"
)

const (
	// CueFadeMargin 淡入/淡出占局部进度的比例
	CueFadeMargin = 0.05

	// CueEntryTilt 运动 cue 入场时的前倾角（弧度），随进度回正
	CueEntryTilt = 0.2
)

// CueState 某一滚动进度下 cue 的派生状态（每帧重新计算，不存储）
type CueState struct {
	LocalProgress float64
	EasedProgress float64
	Position      types.Vec3
	RotationX     float64
	Opacity       float64
}

// CueLocalProgress 把全局进度映射为 cue 的局部进度，结果限制在 [0, 1]
func CueLocalProgress(cue config.Cue, progress float64) float64 {
	progress = utils.Clamp01(progress)
	return utils.Clamp01((progress - cue.ScrollStart) / (cue.ScrollEnd - cue.ScrollStart))
}

// CueOpacity 按局部进度计算透明度
//
// 前 5% 线性淡入，中段保持 1；非 persistEnd 的 cue 在最后 5% 线性淡出。
func CueOpacity(local float64, persistEnd bool) float64 {
	local = utils.Clamp01(local)
	opacity := 1.0
	if local < CueFadeMargin {
		opacity = local / CueFadeMargin
	}
	if !persistEnd && local > 1-CueFadeMargin {
		opacity = (1 - local) / CueFadeMargin
	}
	return utils.Clamp01(opacity)
}

// EvaluateCue 计算 cue 在给定全局进度下的状态
//
// 纯函数：相同的 (cue, progress) 总是得到完全相同的结果，因此滚动可以前后来回拖动。
func EvaluateCue(cue config.Cue, progress float64) CueState {
	local := CueLocalProgress(cue, progress)
	eased := utils.Smootherstep(local)

	z := config.CueRestZ
	rotX := 0.0
	if !cue.IsStatic {
		z = utils.Lerp(cue.ZStart, config.CueRestZ, eased)
		rotX = utils.Lerp(CueEntryTilt, 0, eased)
	}
	x := utils.Lerp(cue.XOffset+cue.EntryXOffset, cue.XOffset, eased)

	return CueState{
		LocalProgress: local,
		EasedProgress: eased,
		Position:      types.Vec3{X: x, Y: cue.YOffset, Z: z},
		RotationX:     rotX,
		Opacity:       CueOpacity(local, cue.PersistEnd),
	}
}

// CinematicTextSystem 文字序列系统
// 每帧根据滚动进度更新所有 cue 实体的变换与图层透明度。
type CinematicTextSystem struct {
	entityManager *ecs.EntityManager
}

// NewCinematicTextSystem 创建文字序列系统。
func NewCinematicTextSystem(em *ecs.EntityManager) *CinematicTextSystem {
	return &CinematicTextSystem{entityManager: em}
}

// Update 将 progress 下的 cue 状态写入实体
func (s *CinematicTextSystem) Update(progress float64) {
	entities := ecs.GetEntitiesWith3[
		*components.CueComponent,
		*components.TransformComponent,
		*components.TextLayersComponent,
	](s.entityManager)

	for _, id := range entities {
		cueComp, _ := ecs.GetComponent[*components.CueComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		layers, _ := ecs.GetComponent[*components.TextLayersComponent](s.entityManager, id)

		state := EvaluateCue(cueComp.Cue, progress)
		transform.Position = state.Position
		transform.Rotation.X = state.RotationX
		layers.SetOpacity(state.Opacity)
	}
}
