package scroll

import "github.com/gonewx/cinescroll/pkg/utils"

// Region 被跟踪的滚动区域
//
// 起止标记对应 “区域顶部到达视口顶部” 与 “区域底部到达视口顶部”：
// 进度 = (scrollY - Top) / Height，限制在 [0, 1]。
type Region struct {
	Top    float64
	Height float64
}

// Bound 返回区域是否已挂载（高度为正）
func (r *Region) Bound() bool {
	return r != nil && r.Height > 0
}

// RawProgress 计算未平滑的原始进度
// 区域未挂载时返回 0，不报错
func (r *Region) RawProgress(scrollY float64) float64 {
	if !r.Bound() {
		return 0
	}
	return utils.Clamp01((scrollY - r.Top) / r.Height)
}
