package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/gonewx/cinescroll/pkg/components"
	"github.com/gonewx/cinescroll/pkg/ecs"
	"github.com/gonewx/cinescroll/pkg/types"
	"github.com/gonewx/cinescroll/pkg/utils"
)

// 发光描边的偏移（像素）
var glowOffsets = [...][2]float64{{-1.5, 0}, {1.5, 0}, {0, -1.5}, {0, 1.5}}

// drawItem 画家算法中的一个绘制单元
type drawItem struct {
	depth float64
	draw  func(screen *ebiten.Image)
}

// RenderSystem 场景渲染系统
//
// 把 ECS 中的 3D 状态透视投影到屏幕：地球（内球、线框、节点）、轨道天体、文字图层。
// 所有绘制单元按深度从远到近排序后依次绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
	projector     utils.Projector
	fontSource    *text.GoTextFaceSource
}

// NewRenderSystem 创建渲染系统。
//
// 返回：
//   - *RenderSystem: 渲染系统
//   - error: 字体加载失败时返回错误
func NewRenderSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID, width, height int) (*RenderSystem, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load cue font: %w", err)
	}
	rs := &RenderSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
		fontSource:    src,
	}
	rs.Resize(width, height)
	return rs, nil
}

// Resize 更新投影的屏幕尺寸
func (rs *RenderSystem) Resize(width, height int) {
	rs.projector.Width = float64(width)
	rs.projector.Height = float64(height)
}

// FontSource 返回场景字体，供覆盖层文字复用
func (rs *RenderSystem) FontSource() *text.GoTextFaceSource {
	return rs.fontSource
}

// withAlpha 以非预乘形式附加透明度
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(utils.Clamp01(alpha) * 255))}
}

// worldPosition 计算实体的世界坐标（仅支持一级父子关系）
func (rs *RenderSystem) worldPosition(t *components.TransformComponent) types.Vec3 {
	if t.Parent == 0 {
		return t.Position
	}
	parent, ok := ecs.GetComponent[*components.TransformComponent](rs.entityManager, t.Parent)
	if !ok {
		return t.Position
	}
	return parent.Position.Add(t.Position.RotateEuler(parent.Rotation))
}

// Draw 绘制整个 3D 场景
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](rs.entityManager, rs.cameraEntity)
	if !ok {
		return
	}
	rs.projector.FOV = cam.FOV

	items := make([]drawItem, 0, 16)
	items = rs.collectGlobes(items, cam.Z)
	items = rs.collectBodies(items, cam.Z)
	items = rs.collectText(items, cam.Z)

	sort.SliceStable(items, func(i, j int) bool { return items[i].depth > items[j].depth })
	for _, item := range items {
		item.draw(screen)
	}
}

func (rs *RenderSystem) collectGlobes(items []drawItem, cameraZ float64) []drawItem {
	for _, id := range ecs.GetEntitiesWith2[*components.GlobeComponent, *components.TransformComponent](rs.entityManager) {
		globe, _ := ecs.GetComponent[*components.GlobeComponent](rs.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](rs.entityManager, id)

		center, ok := rs.projector.Project(transform.Position, cameraZ)
		if !ok {
			continue
		}

		// 线框与节点顶点共享同一组投影
		wire := make([]utils.Projected, len(globe.Mesh.Vertices))
		wireOK := make([]bool, len(globe.Mesh.Vertices))
		nodes := make([]utils.Projected, len(globe.Mesh.Vertices))
		nodesOK := make([]bool, len(globe.Mesh.Vertices))
		for i, v := range globe.Mesh.Vertices {
			local := v.Scale(globe.GroupScale).RotateEuler(transform.Rotation)
			wire[i], wireOK[i] = rs.projector.Project(transform.Position.Add(local), cameraZ)
			pulsed := v.Scale(globe.GroupScale * globe.NodeScale).RotateEuler(transform.Rotation)
			nodes[i], nodesOK[i] = rs.projector.Project(transform.Position.Add(pulsed), cameraZ)
		}

		g := globe
		items = append(items, drawItem{
			depth: center.Depth,
			draw: func(screen *ebiten.Image) {
				innerR := float32(g.InnerRadius * g.GroupScale * center.Scale)
				vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), innerR,
					withAlpha(g.InnerColor, g.InnerOpacity), true)

				wireColor := withAlpha(g.GlowColor, g.WireOpacity)
				for _, e := range g.Mesh.Edges {
					if !wireOK[e[0]] || !wireOK[e[1]] {
						continue
					}
					a, b := wire[e[0]], wire[e[1]]
					vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, wireColor, true)
				}

				nodeColor := withAlpha(g.GlowColor, 1)
				for i, p := range nodes {
					if !nodesOK[i] {
						continue
					}
					r := float32(math.Max(1, g.NodeSize/2*p.Scale))
					vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, nodeColor, true)
				}
			},
		})
	}
	return items
}

func (rs *RenderSystem) collectBodies(items []drawItem, cameraZ float64) []drawItem {
	for _, id := range ecs.GetEntitiesWith2[*components.SphereComponent, *components.TransformComponent](rs.entityManager) {
		sphere, _ := ecs.GetComponent[*components.SphereComponent](rs.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](rs.entityManager, id)

		p, ok := rs.projector.Project(rs.worldPosition(transform), cameraZ)
		if !ok {
			continue
		}

		s := sphere
		items = append(items, drawItem{
			depth: p.Depth,
			draw: func(screen *ebiten.Image) {
				r := float32(s.Radius * p.Scale)
				vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, withAlpha(s.Color, s.Opacity), true)
				// 哑光高光
				highlight := color.RGBA{
					R: uint8(min(255, int(s.Color.R)+40)),
					G: uint8(min(255, int(s.Color.G)+40)),
					B: uint8(min(255, int(s.Color.B)+40)),
					A: 255,
				}
				vector.DrawFilledCircle(screen, float32(p.X)-r*0.3, float32(p.Y)-r*0.3, r*0.45,
					withAlpha(highlight, 0.5*s.Opacity), true)
			},
		})
	}
	return items
}

func (rs *RenderSystem) collectText(items []drawItem, cameraZ float64) []drawItem {
	for _, id := range ecs.GetEntitiesWith2[*components.TextLayersComponent, *components.TransformComponent](rs.entityManager) {
		layers, _ := ecs.GetComponent[*components.TextLayersComponent](rs.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](rs.entityManager, id)

		for i := range layers.Layers {
			layer := layers.Layers[i]
			if layer.EffectiveOpacity() <= 0 {
				continue
			}
			pos := transform.Position.Add(types.Vec3{Z: layer.DepthOffset})
			p, ok := rs.projector.Project(pos, cameraZ)
			if !ok {
				continue
			}

			// 字号按 0.5px 量化，避免字形缓存频繁失效
			size := math.Round(layers.FontSize*p.Scale*2) / 2
			if size < 1 {
				continue
			}
			face := &text.GoTextFace{Source: rs.fontSource, Size: size}
			content := layers.Text
			tilt := math.Cos(transform.Rotation.X)

			items = append(items, drawItem{
				depth: p.Depth,
				draw: func(screen *ebiten.Image) {
					drawLayerText(screen, content, face, p, tilt, layer)
				},
			})
		}
	}
	return items
}

// drawLayerText 以 (p.X, p.Y) 为中心绘制一层文字
func drawLayerText(screen *ebiten.Image, content string, face *text.GoTextFace, p utils.Projected, tilt float64, layer components.TextLayer) {
	draw := func(dx, dy float64, clr color.Color, alpha float64) {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Scale(1, tilt)
		op.GeoM.Translate(p.X+dx, p.Y+dy)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, content, face, op)
	}

	opacity := layer.EffectiveOpacity()
	if layer.Glow.A > 0 {
		for _, off := range glowOffsets {
			draw(off[0], off[1], layer.Glow, 0.45*opacity)
		}
	}
	draw(0, 0, layer.Color, opacity)
}
