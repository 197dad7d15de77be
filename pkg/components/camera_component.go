package components

// CameraComponent 管理镜头的位置与缓动状态。
// 镜头位于 (0, 0, Z)，沿 -Z 方向观察场景原点。
type CameraComponent struct {
	// Z 当前镜头距离
	Z float64

	// TargetZ 目标镜头距离
	TargetZ float64

	// Smoothing 每帧向目标插值的比例（低通滤波系数）
	Smoothing float64

	// FOV 垂直视场角（度）
	FOV float64
}
