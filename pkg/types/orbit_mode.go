package types

import "fmt"

// OrbitMode 定义轨道天体的轨道平面类型
type OrbitMode int

const (
	// OrbitFlat 水平轨道，附带半频的垂直起伏
	OrbitFlat OrbitMode = iota
	// OrbitTilted 倾斜轨道，y/z 分量按 sin(tilt)/cos(tilt) 分配
	OrbitTilted
	// OrbitVertical 竖直轨道，x 方向由独立的次频率摆动
	OrbitVertical
)

// String 返回轨道类型的字符串表示
func (m OrbitMode) String() string {
	switch m {
	case OrbitFlat:
		return "flat"
	case OrbitTilted:
		return "tilted"
	case OrbitVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseOrbitMode 将配置字符串解析为 OrbitMode
func ParseOrbitMode(s string) (OrbitMode, error) {
	switch s {
	case "flat":
		return OrbitFlat, nil
	case "tilted":
		return OrbitTilted, nil
	case "vertical":
		return OrbitVertical, nil
	}
	return OrbitFlat, fmt.Errorf("unknown orbit mode %q (want flat, tilted or vertical)", s)
}

// UnmarshalText 实现 encoding.TextUnmarshaler，供 YAML 配置直接解析
func (m *OrbitMode) UnmarshalText(text []byte) error {
	parsed, err := ParseOrbitMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
func (m OrbitMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
