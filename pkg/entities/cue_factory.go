package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/cinescroll/pkg/components"
	"github.com/gonewx/cinescroll/pkg/config"
	"github.com/gonewx/cinescroll/pkg/ecs"
)

// 文字图层材质
var (
	cuePrimaryColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	cueGlowColor    = color.RGBA{R: 0x00, G: 0xf2, B: 0xff, A: 0xff}
	cueShadowColor  = color.RGBA{R: 0x00, G: 0x22, B: 0x33, A: 0xff}
)

const (
	// CueShadowDepthOffset 阴影图层相对主图层的 Z 偏移
	CueShadowDepthOffset = -0.05
	// CueShadowOpacity 阴影图层的材质不透明度
	CueShadowOpacity = 0.5
)

// NewCueEntity 创建文字 cue 实体
//
// 参数:
//   - em: 实体管理器
//   - cue: cue 配置（会再次校验）
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: cue 配置无效时返回错误（包装 config.ErrInvalidCue），不创建实体
func NewCueEntity(em *ecs.EntityManager, cue config.Cue) (ecs.EntityID, error) {
	if err := cue.Validate(); err != nil {
		return 0, fmt.Errorf("failed to create cue entity: %w", err)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.CueComponent{Cue: cue})

	// 初始状态：位于起始深度，完全透明，等待第一帧计算
	startZ := cue.ZStart
	if cue.IsStatic {
		startZ = config.CueRestZ
	}
	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Position: vec(cue.XOffset+cue.EntryXOffset, cue.YOffset, startZ),
		Scale:    1,
	})

	ecs.AddComponent(em, entityID, &components.TextLayersComponent{
		Text:     cue.Text,
		FontSize: cue.FontSize,
		Layers: [components.TextLayerCount]components.TextLayer{
			{Kind: components.TextLayerPrimary, Color: cuePrimaryColor, Glow: cueGlowColor, BaseOpacity: 1},
			{Kind: components.TextLayerShadow, Color: cueShadowColor, DepthOffset: CueShadowDepthOffset, BaseOpacity: CueShadowOpacity},
		},
	})

	return entityID, nil
}

// NewCueEntities 批量创建 cue 实体，遇到第一个无效 cue 即返回错误
// 已创建的实体会被标记删除，保证要么全部创建要么全部不创建
func NewCueEntities(em *ecs.EntityManager, cues []config.Cue) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, len(cues))
	for i, cue := range cues {
		id, err := NewCueEntity(em, cue)
		if err != nil {
			for _, created := range ids {
				em.DestroyEntity(created)
			}
			em.RemoveMarkedEntities()
			return nil, fmt.Errorf("cue %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
