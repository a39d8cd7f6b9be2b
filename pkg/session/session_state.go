// Package session 管理引导之旅的会话输入与进度持久化
//
// 宿主应用在构造时把当前用户（用户名、角色）和启动方式显式传入，
// 引擎自身不持有任何环境全局状态（阶段/步骤建模在 components.TourComponent 中）。
package session

import "image"

// SessionState 引导会话的显式输入
//
// Story 21.1: 引导之旅状态机
//
// 对应宿主应用传入的 props：{userName, role, onComplete, startImmediate}
type SessionState struct {
	// UserName 当前用户的显示名
	UserName string

	// Role 当前用户的角色标签（任意字符串，未识别的角色按教师端处理）
	Role string

	// StartImmediate 为 true 时跳过欢迎对话框和完成状态检查，
	// 直接从第 0 步开始导览（用于显式的重播请求）
	StartImmediate bool

	// OnComplete 引导结束时的回调（完成或跳过），可为 nil
	OnComplete func()
}

// Viewport 当前视口状态快照
type Viewport struct {
	Width   int     // 视口宽度（像素）
	Height  int     // 视口高度（像素）
	ScrollY float64 // 当前垂直滚动偏移（文档坐标）
}

// Surface 宿主渲染表面
//
// 引导引擎通过该接口访问宿主界面，而不直接依赖具体场景。
// 定位符保持稳定是宿主的责任；定位符无匹配时引导降级为居中步骤。
type Surface interface {
	// LocateRegion 查找第一个匹配定位符的界面区域
	// 返回区域的视口坐标包围盒；无匹配时 ok 为 false
	LocateRegion(locator string) (bounds image.Rectangle, ok bool)

	// Viewport 返回当前视口尺寸与滚动偏移
	Viewport() Viewport

	// SmoothScrollTo 请求平滑滚动到指定的垂直偏移（文档坐标）
	// 对同一目标的重复请求应当是幂等的
	SmoothScrollTo(y float64)
}
