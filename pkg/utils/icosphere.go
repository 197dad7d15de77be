package utils

import (
	"math"

	"github.com/gonewx/cinescroll/pkg/types"
)

// WireMesh 线框网格：顶点加去重后的边
type WireMesh struct {
	Vertices []types.Vec3
	Edges    [][2]int
}

var icosahedronFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

func icosahedronVertices() [12]types.Vec3 {
	t := (1 + math.Sqrt(5)) / 2
	return [12]types.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
}

// NewIcosphere 生成细分二十面体线框
//
// 每个面的每条边被等分为 detail+1 段，细分点投影到半径为 radius 的球面上。
// detail=3 时得到 162 个顶点、480 条边。
func NewIcosphere(radius float64, detail int) WireMesh {
	if detail < 0 {
		detail = 0
	}
	n := detail + 1
	base := icosahedronVertices()

	mesh := WireMesh{}
	index := make(map[[3]int64]int)
	edgeSet := make(map[[2]int]struct{})

	vertexID := func(v types.Vec3) int {
		p := v.Normalize().Scale(radius)
		key := [3]int64{
			int64(math.Round(p.X * 1e6)),
			int64(math.Round(p.Y * 1e6)),
			int64(math.Round(p.Z * 1e6)),
		}
		if id, ok := index[key]; ok {
			return id
		}
		id := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, p)
		index[key] = id
		return id
	}

	addEdge := func(a, b int) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, ok := edgeSet[key]; ok {
			return
		}
		edgeSet[key] = struct{}{}
		mesh.Edges = append(mesh.Edges, key)
	}

	for _, f := range icosahedronFaces {
		a, b, c := base[f[0]], base[f[1]], base[f[2]]
		ab := types.Vec3{X: b.X - a.X, Y: b.Y - a.Y, Z: b.Z - a.Z}.Scale(1 / float64(n))
		ac := types.Vec3{X: c.X - a.X, Y: c.Y - a.Y, Z: c.Z - a.Z}.Scale(1 / float64(n))
		point := func(i, j int) int {
			return vertexID(a.Add(ab.Scale(float64(i))).Add(ac.Scale(float64(j))))
		}

		for i := 0; i < n; i++ {
			for j := 0; i+j < n; j++ {
				p00 := point(i, j)
				p10 := point(i+1, j)
				p01 := point(i, j+1)
				addEdge(p00, p10)
				addEdge(p00, p01)
				addEdge(p10, p01)
			}
		}
	}

	return mesh
}
