// Package scroll 提供滚动进度源
//
// 数据流：
//
//	Viewport（宿主滚动偏移）→ Region（被跟踪区域，计算原始进度）→ Tracker（弹簧平滑）
//
// 每帧由场景拉取：先 Tracker.Update(dt, region.RawProgress(viewport.Offset()))，
// 再把 Tracker.Progress() 作为普通参数传给镜头与文字系统，不存在订阅/通知层。
package scroll
