package config

// 布局配置常量
// 本文件定义了窗口尺寸与主循环频率

const (
	// WindowWidth 默认窗口宽度（像素）
	WindowWidth = 1280

	// WindowHeight 默认窗口高度（像素）
	WindowHeight = 720

	// TicksPerSecond 逻辑帧率
	// 粒子速度、地球自转等“每帧增量”参数都以此帧率为基准
	TicksPerSecond = 60

	// FrameDelta 单帧时长（秒）
	FrameDelta = 1.0 / TicksPerSecond
)
