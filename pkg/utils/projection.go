// Package utils 提供场景渲染中常用的工具函数
//
// projection.go 提供透视投影工具，用于将 3D 场景坐标转换为屏幕坐标。
//
// # 坐标系统概述
//
//   - **世界坐标**：右手系，Y 轴向上，镜头位于 (0, 0, cameraZ) 沿 -Z 方向观察
//   - **屏幕坐标**：相对于窗口左上角，Y 轴向下（Ebiten 默认行为）
//
// # 核心转换公式
//
//	focal   = (screenHeight / 2) / tan(fov / 2)
//	depth   = cameraZ - p.Z
//	screenX = screenWidth/2  + p.X * focal / depth
//	screenY = screenHeight/2 - p.Y * focal / depth
//
// depth 小于近裁剪面时点不可见（Project 返回 ok=false）。
package utils

import (
	"math"

	"github.com/gonewx/cinescroll/pkg/types"
)

// NearPlane 近裁剪面距离（世界单位）
const NearPlane = 0.1

// Projector 透视投影器
type Projector struct {
	// FOV 垂直视场角（度）
	FOV float64
	// Width/Height 屏幕逻辑尺寸（像素）
	Width, Height float64
}

// Projected 投影结果
type Projected struct {
	X, Y float64
	// Scale 该深度处每个世界单位对应的像素数
	Scale float64
	// Depth 到镜头的距离，用于画家算法排序
	Depth float64
}

// Focal 返回焦距（像素）
func (p Projector) Focal() float64 {
	half := p.FOV * math.Pi / 360
	return (p.Height / 2) / math.Tan(half)
}

// Project 将世界坐标投影到屏幕坐标
//
// 参数：
//   - point: 世界坐标
//   - cameraZ: 镜头 Z 坐标
//
// 返回：
//   - Projected: 屏幕坐标、缩放与深度
//   - bool: 点位于近裁剪面之后时为 false
func (p Projector) Project(point types.Vec3, cameraZ float64) (Projected, bool) {
	depth := cameraZ - point.Z
	if depth < NearPlane {
		return Projected{}, false
	}
	scale := p.Focal() / depth
	return Projected{
		X:     p.Width/2 + point.X*scale,
		Y:     p.Height/2 - point.Y*scale,
		Scale: scale,
		Depth: depth,
	}, true
}
