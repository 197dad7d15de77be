package components

import "github.com/gonewx/cinescroll/pkg/config"

// CueComponent 标记一个文字 cue 实体，保存其不可变配置。
// 每帧的位置、旋转与透明度由 CinematicTextSystem 根据滚动进度重新计算，
// 写入同一实体的 TransformComponent 与 TextLayersComponent。
type CueComponent struct {
	Cue config.Cue
}
