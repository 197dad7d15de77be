package types

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestVec3_Rotate(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"绕Y轴90度", Vec3{1, 0, 0}.RotateY(math.Pi / 2), Vec3{0, 0, -1}},
		{"绕X轴90度", Vec3{0, 1, 0}.RotateX(math.Pi / 2), Vec3{0, 0, 1}},
		{"绕Z轴90度", Vec3{1, 0, 0}.RotateZ(math.Pi / 2), Vec3{0, 1, 0}},
		{"零角度", Vec3{1, 2, 3}.RotateEuler(Vec3{}), Vec3{1, 2, 3}},
		{"欧拉顺序先Z后X", Vec3{1, 0, 0}.RotateEuler(Vec3{X: math.Pi / 2, Z: math.Pi / 2}), Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.want) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize length = %v, want 1", n.Length())
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector should stay zero, got %+v", z)
	}
}

func TestParseOrbitMode(t *testing.T) {
	for _, m := range []OrbitMode{OrbitFlat, OrbitTilted, OrbitVertical} {
		parsed, err := ParseOrbitMode(m.String())
		if err != nil || parsed != m {
			t.Errorf("ParseOrbitMode(%q) = %v, %v", m.String(), parsed, err)
		}
	}
	if _, err := ParseOrbitMode("spiral"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
